package marketplace

import (
	"context"

	"github.com/loppen/marketplace-go/auth"
	"github.com/loppen/marketplace-go/httpclient"
)

// RegisterRequest creates a new account.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Username string `json:"username" validate:"required,min=3,max=50"`
	FullName string `json:"full_name,omitempty" validate:"omitempty,max=100"`
	Password string `json:"password" validate:"required,min=8,max=100"`
}

// LoginRequest authenticates an existing account.
type LoginRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Password string `json:"password" validate:"required,max=100"`
}

// AuthService handles registration and the session token lifecycle.
type AuthService struct {
	client *httpclient.Client
}

// Register creates a new user account.
func (s *AuthService) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	user, err := httpclient.Post[User](ctx, s.client, "/auth/register", req)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Login authenticates and stores the returned access token on the shared
// client, so every subsequent call carries it.
func (s *AuthService) Login(ctx context.Context, req LoginRequest) (*Token, error) {
	if err := checkPayload(req); err != nil {
		return nil, err
	}
	token, err := httpclient.Post[Token](ctx, s.client, "/auth/login", req)
	if err != nil {
		return nil, err
	}
	s.client.SetToken(token.AccessToken)
	return &token, nil
}

// Logout clears the session token from the shared client.
func (s *AuthService) Logout() {
	s.client.ClearToken()
}

// SessionExpired reports whether the current session token is missing or
// past its expiry.
func (s *AuthService) SessionExpired() bool {
	return auth.IsExpired(s.client.Token())
}
