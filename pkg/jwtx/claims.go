package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL is how long a bearer token stays valid after issue. There is
// no refresh flow, so it is deliberately long.
const DefaultTokenTTL = 7 * 24 * time.Hour

// Claims are the claims carried by a bearer token. Subject is the user id.
type Claims struct {
	jwt.RegisteredClaims
}

// NewClaims builds claims for subject valid from now until now+ttl.
func NewClaims(subject, issuer string, ttl time.Duration, now time.Time) Claims {
	now = now.UTC()
	return Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        NewJTI(),
		},
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim.
func NewJTI() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

// ValidateIssuer checks if the issuer matches expected value.
func (c *Claims) ValidateIssuer(expected string) error {
	if expected == "" {
		return nil // nothing to enforce
	}

	if c.Issuer != expected {
		return ErrIssuer
	}

	return nil
}

// ValidateSubject ensures the token names who it was issued to.
func (c *Claims) ValidateSubject() error {
	if c.Subject == "" {
		return ErrInvalidClaim
	}
	return nil
}

// ValidateExpiry ensures the token hasn't expired (exp) and isn't before nbf,
// both judged against now. A token without exp never validates since every
// token we mint carries one.
func (c *Claims) ValidateExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return ErrInvalidClaim
	}

	// exp is exclusive: at the expiry instant the token is already dead
	if !now.Before(c.ExpiresAt.Time) {
		return ErrExpired
	}

	if c.NotBefore != nil && now.Before(c.NotBefore.Time) {
		return ErrNotYetValid
	}

	return nil
}
