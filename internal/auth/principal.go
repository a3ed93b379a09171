package auth

import (
	"context"

	"todolist-api/internal/models"
)

// Principal is the authenticated identity making the current request.
type Principal struct {
	ID    int64
	Email string
	Role  string
}

// IsAdmin reports whether the principal holds the ADMIN role.
func (p Principal) IsAdmin() bool {
	return p.Role == models.RoleAdminName
}

type principalKey struct{}

// WithPrincipal returns a context carrying the authenticated principal.
// The principal travels explicitly with the request context rather than
// through any process-global state.
func WithPrincipal(ctx context.Context, p Principal) context.Context {
	return context.WithValue(ctx, principalKey{}, p)
}

// PrincipalFrom extracts the principal from the request context.
func PrincipalFrom(ctx context.Context) (Principal, bool) {
	p, ok := ctx.Value(principalKey{}).(Principal)
	return p, ok
}
