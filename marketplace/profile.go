package marketplace

import (
	"context"
	"strconv"
	"time"

	"github.com/loppen/marketplace-go/httpclient"
)

// Profile is the current user's detailed profile.
type Profile struct {
	User
	ProductCount *int `json:"product_count,omitempty"`
}

// PublicProfile is the subset of a profile visible to everyone.
type PublicProfile struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	FullName     string    `json:"full_name,omitempty"`
	Location     *Location `json:"location,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	ProductCount *int      `json:"product_count,omitempty"`
}

// ProfileUpdate changes the current user's profile. Nil fields are left
// unchanged.
type ProfileUpdate struct {
	Email    *string `json:"email,omitempty" validate:"omitempty,email"`
	FullName *string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Phone    *string `json:"phone,omitempty" validate:"omitempty,max=64"`
}

// LocationCreate sets the current user's location.
type LocationCreate struct {
	City     string `json:"city" validate:"required,min=1,max=120"`
	Postcode string `json:"postcode" validate:"required,min=1,max=32"`
}

// ProfileService handles the current user's profile and public profiles.
type ProfileService struct {
	client *httpclient.Client
}

// Me returns the current user's detailed profile.
func (s *ProfileService) Me(ctx context.Context) (*Profile, error) {
	p, err := httpclient.Get[Profile](ctx, s.client, "/profile/me")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdateMe changes the current user's profile and returns the result.
func (s *ProfileService) UpdateMe(ctx context.Context, req ProfileUpdate) (*Profile, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	p, err := httpclient.Put[Profile](ctx, s.client, "/profile/me", req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// MyProducts returns the current user's products in all statuses.
func (s *ProfileService) MyProducts(ctx context.Context, skip, limit int) ([]Product, error) {
	return httpclient.Get[[]Product](ctx, s.client, "/profile/me/products", skipLimitOpts(skip, limit)...)
}

// SetLocation adds or replaces the current user's location.
func (s *ProfileService) SetLocation(ctx context.Context, req LocationCreate) (*Profile, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	p, err := httpclient.Post[Profile](ctx, s.client, "/profile/me/location", req)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// ClearLocation removes the current user's location.
func (s *ProfileService) ClearLocation(ctx context.Context) (*Profile, error) {
	p, err := httpclient.Delete[Profile](ctx, s.client, "/profile/me/location")
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// Public returns the public profile of any user.
func (s *ProfileService) Public(ctx context.Context, userID int) (*PublicProfile, error) {
	p, err := httpclient.Get[PublicProfile](ctx, s.client, "/profile/"+strconv.Itoa(userID))
	if err != nil {
		return nil, err
	}
	return &p, nil
}

// UserProducts returns a user's active products.
func (s *ProfileService) UserProducts(ctx context.Context, userID, skip, limit int) ([]Product, error) {
	path := "/profile/" + strconv.Itoa(userID) + "/products"
	return httpclient.Get[[]Product](ctx, s.client, path, skipLimitOpts(skip, limit)...)
}

func skipLimitOpts(skip, limit int) []httpclient.RequestOption {
	var opts []httpclient.RequestOption
	if skip > 0 {
		opts = append(opts, httpclient.WithQueryParam("skip", strconv.Itoa(skip)))
	}
	if limit > 0 {
		opts = append(opts, httpclient.WithQueryParam("limit", strconv.Itoa(limit)))
	}
	return opts
}
