package service

import (
	"fmt"
	"time"

	"github.com/aussiebroadwan/roster/pkg/jwtx"
)

// TokenService issues and checks bearer tokens. Tokens are not stored
// anywhere, a token is valid until exp and cannot be revoked.
type TokenService struct {
	Signer   jwtx.Signer
	Verifier jwtx.Verifier
	Issuer   string
	TTL      time.Duration    // defaults to jwtx.DefaultTokenTTL
	Now      func() time.Time // defaults to time.Now
}

func (s *TokenService) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

func (s *TokenService) ttl() time.Duration {
	if s.TTL > 0 {
		return s.TTL
	}
	return jwtx.DefaultTokenTTL
}

// Issue signs a token for subject.
func (s *TokenService) Issue(subject string) (string, error) {
	claims := jwtx.NewClaims(subject, s.Issuer, s.ttl(), s.now())
	token, err := s.Signer.Sign(claims)
	if err != nil {
		return "", fmt.Errorf("issue token: %w", err)
	}
	return token, nil
}

// Verify checks token and returns its subject. The error is ErrTokenExpired
// for a genuine but stale token and ErrInvalidToken for anything else, with
// the underlying cause wrapped for logging.
func (s *TokenService) Verify(token string) (string, error) {
	claims, err := s.Verifier.Verify(token, s.now())
	if err != nil {
		if jwtx.IsExpired(err) {
			return "", fmt.Errorf("%w: %w", ErrTokenExpired, err)
		}
		return "", fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}
	return claims.Subject, nil
}
