// Package auth extracts the caller identity from bearer-token claims.
// Token signatures are verified by the upstream gateway; this layer only
// reads the decoded claims.
package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the validated owner identity attached to every request
// before it reaches a service.
type Identity struct {
	UserID string
	Email  string
}

// Development placeholder identity, substituted for missing or
// incomplete credentials outside production.
const (
	DevUserID = "dev-user-001"
	DevEmail  = "dev@localhost"
)

var (
	ErrNoIdentity   = errors.New("no identity on request context")
	ErrMissingToken = errors.New("missing bearer token")
	ErrInvalidToken = errors.New("invalid bearer token")
)

type contextKey string

const identityKey contextKey = "lifetracker-identity"

// WithIdentity stores the identity on the context.
func WithIdentity(ctx context.Context, id *Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// GetIdentityFromContext retrieves the identity placed by the middleware.
func GetIdentityFromContext(ctx context.Context) (*Identity, error) {
	id, ok := ctx.Value(identityKey).(*Identity)
	if !ok || id == nil || id.UserID == "" {
		return nil, ErrNoIdentity
	}
	return id, nil
}

// FromAuthorizationHeader decodes the bearer token's claims without
// verifying the signature. Prefers the `sub` claim, falls back to `oid`.
func FromAuthorizationHeader(header string) (*Identity, error) {
	if header == "" {
		return nil, ErrMissingToken
	}
	if !strings.HasPrefix(strings.ToLower(header), "bearer ") {
		return nil, ErrInvalidToken
	}
	raw := strings.TrimSpace(header[len("Bearer "):])
	if raw == "" {
		return nil, ErrMissingToken
	}

	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return nil, ErrInvalidToken
	}

	userID, _ := claims["sub"].(string)
	if userID == "" {
		userID, _ = claims["oid"].(string)
	}
	if userID == "" {
		return nil, ErrInvalidToken
	}
	email, _ := claims["email"].(string)

	return &Identity{UserID: userID, Email: email}, nil
}
