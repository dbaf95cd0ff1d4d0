// Package marketplace provides typed access to the marketplace REST API:
// authentication, products, favorites, messaging, activity, profiles, and
// admin operations. All services share one httpclient.Client, which owns
// the session bearer token.
//
//	client, _ := httpclient.New(httpclient.Config{BaseURL: baseURL})
//	api := marketplace.New(client)
//
//	token, err := api.Auth.Login(ctx, marketplace.LoginRequest{
//	    Username: "alice", Password: "secret",
//	})
//	// the client now carries the session token
//	products, err := api.Products.List(ctx, marketplace.ProductListOptions{Page: 1})
package marketplace
