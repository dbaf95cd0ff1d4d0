package auth

import (
	"errors"
	"time"

	gojwt "github.com/golang-jwt/jwt/v5"
)

// TokenInfo holds the claims read from an access token.
type TokenInfo struct {
	// Username is the token subject.
	Username string
	// IssuedAt is the "iat" claim, zero if absent.
	IssuedAt time.Time
	// ExpiresAt is the "exp" claim, zero if absent.
	ExpiresAt time.Time
}

// Decode reads the claims of a JWT access token without verifying its
// signature. Verification is the server's job; the client only needs the
// subject and expiry.
func Decode(token string) (*TokenInfo, error) {
	if token == "" {
		return nil, errors.New("auth: empty token")
	}

	var claims gojwt.RegisteredClaims
	parser := gojwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, &claims); err != nil {
		return nil, err
	}

	info := &TokenInfo{Username: claims.Subject}
	if claims.IssuedAt != nil {
		info.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		info.ExpiresAt = claims.ExpiresAt.Time
	}
	return info, nil
}

// IsExpired reports whether the token's expiry has passed. Undecodable
// tokens count as expired; tokens without an exp claim never expire.
func IsExpired(token string) bool {
	return ExpiresWithin(token, 0)
}

// ExpiresWithin reports whether the token expires within the given
// duration from now.
func ExpiresWithin(token string, d time.Duration) bool {
	info, err := Decode(token)
	if err != nil {
		return true
	}
	if info.ExpiresAt.IsZero() {
		return false
	}
	return info.ExpiresAt.Before(time.Now().Add(d))
}
