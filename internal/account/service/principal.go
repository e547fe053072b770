package service

import (
	"context"

	"github.com/aussiebroadwan/roster/internal/account/domain"
)

type principalKey struct{}

// WithPrincipal returns a copy of ctx carrying the authenticated user.
func WithPrincipal(ctx context.Context, u domain.User) context.Context {
	return context.WithValue(ctx, principalKey{}, u)
}

// PrincipalFromContext returns the user attached by WithPrincipal.
func PrincipalFromContext(ctx context.Context) (domain.User, bool) {
	u, ok := ctx.Value(principalKey{}).(domain.User)
	if !ok || u.IsZero() {
		return domain.User{}, false
	}
	return u, true
}
