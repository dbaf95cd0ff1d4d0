package marketplace

import (
	"context"
	"strconv"

	"github.com/loppen/marketplace-go/httpclient"
)

// ActivityService exposes view history, dashboards, and recommendations.
type ActivityService struct {
	client *httpclient.Client
}

// ViewHistory returns the current user's recently viewed products.
// limit <= 0 uses the server default.
func (s *ActivityService) ViewHistory(ctx context.Context, limit int) (*ViewHistory, error) {
	h, err := httpclient.Get[ViewHistory](ctx, s.client, "/activity/history/views", limitOpt(limit)...)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

// RecentActivity returns the admin dashboard's combined activity feed.
func (s *ActivityService) RecentActivity(ctx context.Context, limit int) (*ActivityFeed, error) {
	f, err := httpclient.Get[ActivityFeed](ctx, s.client, "/activity/admin/recent-activity", limitOpt(limit)...)
	if err != nil {
		return nil, err
	}
	return &f, nil
}

// PopularProducts returns listings ranked by views and favorites.
func (s *ActivityService) PopularProducts(ctx context.Context, limit int) (*PopularProducts, error) {
	p, err := httpclient.Get[PopularProducts](ctx, s.client, "/activity/popular-products", limitOpt(limit)...)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Recommendations returns listings similar to the given product.
func (s *ActivityService) Recommendations(ctx context.Context, productID, limit int) (*Recommendations, error) {
	path := "/activity/products/" + strconv.Itoa(productID) + "/recommendations"
	r, err := httpclient.Get[Recommendations](ctx, s.client, path, limitOpt(limit)...)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

func limitOpt(limit int) []httpclient.RequestOption {
	if limit <= 0 {
		return nil
	}
	return []httpclient.RequestOption{httpclient.WithQueryParam("limit", strconv.Itoa(limit))}
}
