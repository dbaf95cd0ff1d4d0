package marketplace

import (
	"context"
	"strconv"

	"github.com/loppen/marketplace-go/httpclient"
)

// FavoritesService manages the current user's favorite products.
type FavoritesService struct {
	client *httpclient.Client
}

// Add puts a product on the user's favorites list.
func (s *FavoritesService) Add(ctx context.Context, productID int) error {
	_, err := httpclient.Post[StatusMessage](ctx, s.client, "/favorites/"+strconv.Itoa(productID), nil)
	return err
}

// Remove takes a product off the user's favorites list.
func (s *FavoritesService) Remove(ctx context.Context, productID int) error {
	_, err := httpclient.Delete[StatusMessage](ctx, s.client, "/favorites/"+strconv.Itoa(productID))
	return err
}

// Status reports whether a product is in the user's favorites.
func (s *FavoritesService) Status(ctx context.Context, productID int) (*FavoriteStatus, error) {
	st, err := httpclient.Get[FavoriteStatus](ctx, s.client, "/favorites/"+strconv.Itoa(productID)+"/status")
	if err != nil {
		return nil, err
	}
	return &st, nil
}

// List returns all products in the user's favorites.
func (s *FavoritesService) List(ctx context.Context) ([]Product, error) {
	return httpclient.Get[[]Product](ctx, s.client, "/favorites/")
}
