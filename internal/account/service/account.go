package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/aussiebroadwan/roster/internal/account/domain"
	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/aussiebroadwan/roster/pkg/cryptox"
	"github.com/aussiebroadwan/roster/pkg/idx"
	"github.com/aussiebroadwan/roster/pkg/otelx"
	"github.com/aussiebroadwan/roster/pkg/slogx"
)

const minUsernameLen = 3

type RegisterInput struct {
	Username string
	Email    string
	Password string
}

type LoginInput struct {
	Email    string
	Password string
}

// AuthResult is what register and login hand back to the caller.
type AuthResult struct {
	User  domain.User
	Token string
}

// AccountService handles registration and password login.
type AccountService struct {
	Store  store.Store
	Hasher *cryptox.PasswordHasher
	Tokens *TokenService
	Now    func() time.Time

	dummyOnce sync.Once
	dummyHash string
}

// NewAccountService returns an AccountService with its login timing hash
// already computed, so no request pays for it.
func NewAccountService(st store.Store, hasher *cryptox.PasswordHasher, tokens *TokenService) (*AccountService, error) {
	s := &AccountService{Store: st, Hasher: hasher, Tokens: tokens}
	if err := s.prepareDummyHash(); err != nil {
		return nil, fmt.Errorf("failed to prepare dummy hash: %w", err)
	}
	return s, nil
}

func (s *AccountService) prepareDummyHash() error {
	var err error
	s.dummyOnce.Do(func() {
		s.dummyHash, err = s.Hasher.Hash("roster-timing-equaliser")
	})
	return err
}

func (s *AccountService) now() time.Time {
	if s.Now != nil {
		return s.Now().UTC()
	}
	return time.Now().UTC()
}

// NormalizeEmail trims and lowercases an email address.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a user and issues a token for it.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (AuthResult, error) {
	ctx, span := otelx.Tracer().Start(ctx, "AccountService.Register")
	defer span.End()
	log := slogx.FromContext(ctx)

	username := strings.TrimSpace(in.Username)
	email := NormalizeEmail(in.Email)

	switch {
	case username == "":
		return AuthResult{}, invalid("username", "is required")
	case email == "":
		return AuthResult{}, invalid("email", "is required")
	case in.Password == "":
		return AuthResult{}, invalid("password", "is required")
	case len([]rune(username)) < minUsernameLen:
		return AuthResult{}, invalid("username", fmt.Sprintf("must be at least %d characters", minUsernameLen))
	}

	exists, err := s.Store.Users().ExistsByEmailOrUsername(ctx, email, username)
	if err != nil {
		log.Error("failed to check for existing user", slog.Any("error", err))
		return AuthResult{}, err
	}
	if exists {
		log.Info("registration rejected, user exists", slog.String("username", username))
		return AuthResult{}, ErrDuplicateUser
	}

	hash, err := s.Hasher.Hash(in.Password)
	if err != nil {
		if errors.Is(err, cryptox.ErrPasswordTooLong) {
			return AuthResult{}, invalid("password", "must be at most 72 bytes")
		}
		log.Error("failed to hash password", slog.Any("error", err))
		return AuthResult{}, err
	}

	now := s.now()
	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		// Lost a race with a concurrent registration
		if errors.Is(err, store.ErrAlreadyExists) {
			return AuthResult{}, ErrDuplicateUser
		}
		log.Error("failed to create user", slog.Any("error", err))
		return AuthResult{}, err
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue token", slog.Any("error", err))
		return AuthResult{}, err
	}

	log.Info("user registered", slog.String("user_id", user.ID), slog.String("username", user.Username))
	return AuthResult{User: user, Token: token}, nil
}

// Login checks an email and password. An unknown email and a wrong password
// are both ErrInvalidCredentials and cost the same bcrypt comparison.
func (s *AccountService) Login(ctx context.Context, in LoginInput) (AuthResult, error) {
	ctx, span := otelx.Tracer().Start(ctx, "AccountService.Login")
	defer span.End()
	log := slogx.FromContext(ctx)

	email := NormalizeEmail(in.Email)
	switch {
	case email == "":
		return AuthResult{}, invalid("email", "is required")
	case in.Password == "":
		return AuthResult{}, invalid("password", "is required")
	}

	user, err := s.Store.Users().GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			s.burnComparison(in.Password)
			log.Info("login failed", slog.String("reason", "unknown email"))
			return AuthResult{}, ErrInvalidCredentials
		}
		log.Error("failed to load user", slog.Any("error", err))
		return AuthResult{}, err
	}

	ok, err := s.Hasher.Verify(in.Password, user.PasswordHash)
	if err != nil {
		log.Error("stored password hash unusable", slog.String("user_id", user.ID), slog.Any("error", err))
		return AuthResult{}, err
	}
	if !ok {
		log.Info("login failed", slog.String("reason", "wrong password"), slog.String("user_id", user.ID))
		return AuthResult{}, ErrInvalidCredentials
	}

	token, err := s.Tokens.Issue(user.ID)
	if err != nil {
		log.Error("failed to issue token", slog.Any("error", err))
		return AuthResult{}, err
	}

	log.Info("user logged in", slog.String("user_id", user.ID))
	return AuthResult{User: user, Token: token}, nil
}

// burnComparison runs a bcrypt comparison against a throwaway hash so a login
// for an unknown email takes as long as one with a wrong password.
func (s *AccountService) burnComparison(password string) {
	_ = s.prepareDummyHash()
	if s.dummyHash != "" {
		_, _ = s.Hasher.Verify(password, s.dummyHash)
	}
}
