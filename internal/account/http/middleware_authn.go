package http

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/aussiebroadwan/roster/internal/account/service"
	"github.com/aussiebroadwan/roster/pkg/httpx"
	"github.com/aussiebroadwan/roster/pkg/rostersdk"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

const authRealm = "roster"

// RequireAuth resolves the Authorization header to a user and stores it in the
// request context. Every rejection gets the same 401 body, the reason only
// goes to the log.
func RequireAuth(auth *service.AuthService) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			user, err := auth.Authenticate(ctx, r.Header.Get("Authorization"))
			if err != nil {
				if !errors.Is(err, service.ErrMissingToken) && !errors.Is(err, service.ErrUnauthenticated) {
					slogx.FromContext(ctx).Error("authentication failed", slog.Any("error", err))
					rostersdk.ErrServerError.WriteError(w)
					return
				}
				httpx.WriteBearerChallenge(w, authRealm)
				rostersdk.ErrUnauthenticated.WriteError(w)
				return
			}

			ctx = service.WithPrincipal(ctx, user)
			ctx = slogx.WithUserID(ctx, user.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
