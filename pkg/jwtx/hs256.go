package jwtx

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// HS256Signer signs tokens with HMAC-SHA256 under a shared secret.
type HS256Signer struct {
	secret []byte
}

// NewHS256Signer creates a signer for the given secret.
func NewHS256Signer(secret []byte) (*HS256Signer, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256Signer{secret: secret}, nil
}

func (s *HS256Signer) Alg() string { return jwt.SigningMethodHS256.Alg() }

// Sign takes your claims and turns them into a signed JWT string.
func (s *HS256Signer) Sign(claims Claims) (string, error) {
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := t.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// HS256Verifier validates tokens produced by an HS256Signer with the same
// secret.
type HS256Verifier struct {
	secret []byte
	issuer string
}

// NewHS256Verifier creates a verifier. An empty issuer disables the iss check.
func NewHS256Verifier(secret []byte, issuer string) (*HS256Verifier, error) {
	if len(secret) == 0 {
		return nil, ErrEmptySecret
	}
	return &HS256Verifier{secret: secret, issuer: issuer}, nil
}

// Verify checks structure and signature first, then the claims. A token whose
// MAC does not match is ErrInvalidSig even if it is also expired; ErrExpired
// is only ever reported for tokens we actually signed.
func (v *HS256Verifier) Verify(tokenStr string, now time.Time) (Claims, error) {
	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithStrictDecoding(),
		jwt.WithoutClaimsValidation(), // exp/nbf are checked below against now
	)

	var claims Claims
	token, err := parser.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (any, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, ErrAlgMismatch
		}
		return v.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return Claims{}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		// Wrong alg, bad MAC, undecodable signature
		return Claims{}, fmt.Errorf("%w: %v", ErrInvalidSig, err)
	}
	if !token.Valid {
		return Claims{}, ErrInvalidSig
	}

	if err := claims.ValidateIssuer(v.issuer); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateSubject(); err != nil {
		return Claims{}, err
	}
	if err := claims.ValidateExpiry(now.UTC()); err != nil {
		return Claims{}, err
	}

	return claims, nil
}
