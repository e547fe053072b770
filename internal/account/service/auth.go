package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

// AuthService resolves the principal behind an Authorization header.
type AuthService struct {
	Store  store.Store
	Tokens *TokenService
}

// Authenticate accepts "Bearer <token>" or the bare token. Every way a
// credential can be bad (malformed, forged, expired, unknown subject) comes
// back as ErrUnauthenticated, or ErrMissingToken when there is none at all.
// The cause is wrapped for logging only.
func (s *AuthService) Authenticate(ctx context.Context, header string) (domain.User, error) {
	log := slogx.FromContext(ctx)

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return domain.User{}, ErrMissingToken
	}

	subject, err := s.Tokens.Verify(token)
	if err != nil {
		log.Debug("bearer token rejected", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("%w: %w", ErrUnauthenticated, err)
	}

	user, err := s.Store.Users().GetUserByID(ctx, subject)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			log.Info("bearer token for unknown user", slog.String("user_id", subject))
			return domain.User{}, fmt.Errorf("%w: unknown subject", ErrUnauthenticated)
		}
		log.Error("failed to load principal", slog.Any("error", err))
		return domain.User{}, fmt.Errorf("load principal: %w", err)
	}

	return user, nil
}
