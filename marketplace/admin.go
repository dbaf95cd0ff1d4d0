package marketplace

import (
	"context"
	"strconv"

	"github.com/loppen/marketplace-go/httpclient"
)

// AdminService exposes the admin-only endpoints. Calls fail with 403
// unless the session user is an admin.
type AdminService struct {
	client *httpclient.Client
}

// Users returns a page of all users.
func (s *AdminService) Users(ctx context.Context, page PageOptions) ([]User, error) {
	return httpclient.Get[[]User](ctx, s.client, "/admin/users", queryOpts(page.query())...)
}

// Products returns a page of all products, sold ones included by default.
func (s *AdminService) Products(ctx context.Context, page PageOptions, includeSold bool) (*ProductList, error) {
	opts := queryOpts(page.query())
	opts = append(opts, httpclient.WithQueryParam("include_sold", strconv.FormatBool(includeSold)))
	list, err := httpclient.Get[ProductList](ctx, s.client, "/admin/products", opts...)
	if err != nil {
		return nil, err
	}
	return &list, nil
}

// Stats returns the platform statistics summary.
func (s *AdminService) Stats(ctx context.Context) (*PlatformStats, error) {
	st, err := httpclient.Get[PlatformStats](ctx, s.client, "/admin/stats")
	if err != nil {
		return nil, err
	}
	return &st, nil
}
