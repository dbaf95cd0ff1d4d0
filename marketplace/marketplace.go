package marketplace

import (
	"github.com/loppen/marketplace-go/httpclient"
)

// API bundles the per-resource services over a shared client.
type API struct {
	Auth      *AuthService
	Products  *ProductsService
	Favorites *FavoritesService
	Messages  *MessagesService
	Activity  *ActivityService
	Profile   *ProfileService
	Admin     *AdminService

	client *httpclient.Client
}

// New creates the API bundle. The client is shared by all services; a
// login through Auth sets its token for every subsequent call.
func New(client *httpclient.Client) *API {
	return &API{
		Auth:      &AuthService{client: client},
		Products:  &ProductsService{client: client},
		Favorites: &FavoritesService{client: client},
		Messages:  &MessagesService{client: client},
		Activity:  &ActivityService{client: client},
		Profile:   &ProfileService{client: client},
		Admin:     &AdminService{client: client},
		client:    client,
	}
}

// Client returns the underlying HTTP client.
func (a *API) Client() *httpclient.Client {
	return a.client
}
