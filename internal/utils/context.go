// Package utils provides small helpers shared by the transport layer:
// request-scoped identity, JSON responses and trace identifiers.
package utils

import (
	"context"

	"github.com/IvanovPete/test-backend/models"
)

// contextKey is a private type for context keys.
type contextKey string

func (c contextKey) String() string {
	return string(c)
}

// IdentityCtxKey is the key under which the resolved caller is stored.
var IdentityCtxKey = contextKey("identity")

// WithIdentity returns a copy of ctx carrying user as the caller's identity.
// A nil user marks the request as anonymous.
func WithIdentity(ctx context.Context, user *models.User) context.Context {
	return context.WithValue(ctx, IdentityCtxKey, user)
}

// IdentityFromContext returns the caller stored by WithIdentity, or nil for
// anonymous requests and contexts that never passed the identify middleware.
func IdentityFromContext(ctx context.Context) *models.User {
	user, _ := ctx.Value(IdentityCtxKey).(*models.User)
	return user
}
