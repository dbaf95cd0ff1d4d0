// Package httpclient provides the authenticated HTTP client used by all
// marketplace API services. It owns the session bearer token, serializes
// JSON and multipart request bodies, and normalizes non-2xx responses into
// typed API errors.
//
// The client is constructed explicitly and shared by reference; the token
// is its only mutable state and is updated through SetToken/ClearToken
// (typically after login/logout). Each request reads the token once while
// building headers, so rotating the token never affects requests already
// in flight.
//
// # Basic Usage
//
//	client, err := httpclient.New(httpclient.Config{
//	    BaseURL: "https://market.example.com/api",
//	})
//
//	client.SetToken(token)
//	user, err := httpclient.Get[User](ctx, client, "/profile/me")
//
// There is no retry, backoff, or timeout logic at this layer: transport
// failures propagate unchanged, and cancellation is driven by the request
// context.
package httpclient
