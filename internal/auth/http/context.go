// Package http provides HTTP middleware and handlers for API key authentication.
package http

import (
	"context"

	authDomain "github.com/bearodactyl/apiodactyl/internal/auth/domain"
)

// principalKey is a context key type for storing authenticated principals.
type principalKey struct{}

// adminPrincipalKey is a context key type for storing admin principals.
type adminPrincipalKey struct{}

// WithPrincipal stores an authenticated principal in the context.
// Called by the authentication middleware after successful key validation.
func WithPrincipal(ctx context.Context, principal *authDomain.Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, principal)
}

// GetPrincipal retrieves the authenticated principal from the context.
// Returns (nil, false) if the authentication middleware did not run.
func GetPrincipal(ctx context.Context) (*authDomain.Principal, bool) {
	principal, ok := ctx.Value(principalKey{}).(*authDomain.Principal)
	return principal, ok
}

// WithAdminPrincipal stores an admin principal in the context.
// Called by the admin middleware after the capability check succeeds.
func WithAdminPrincipal(ctx context.Context, admin *authDomain.AdminPrincipal) context.Context {
	return context.WithValue(ctx, adminPrincipalKey{}, admin)
}

// GetAdminPrincipal retrieves the admin principal from the context.
// Returns (nil, false) if the admin middleware did not run.
func GetAdminPrincipal(ctx context.Context) (*authDomain.AdminPrincipal, bool) {
	admin, ok := ctx.Value(adminPrincipalKey{}).(*authDomain.AdminPrincipal)
	return admin, ok
}
