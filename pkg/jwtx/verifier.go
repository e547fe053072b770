package jwtx

import (
	"errors"
	"time"
)

// Verifier validates a JWT and gives you back the claims if it's legit. The
// caller supplies the current time so expiry can be tested without sleeping.
type Verifier interface {
	Verify(token string, now time.Time) (Claims, error)
}

var (
	ErrEmptySecret = errors.New("jwtx: empty signing secret")

	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrAlgMismatch = errors.New("jwtx: algorithm mismatch")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")

	ErrIssuer       = errors.New("jwtx: issuer mismatch")
	ErrExpired      = errors.New("jwtx: token expired")
	ErrNotYetValid  = errors.New("jwtx: token not yet valid")
	ErrInvalidClaim = errors.New("jwtx: invalid claims")
)

// IsExpired reports whether err means the token was genuine but stale.
// Everything else a Verifier returns means the token cannot be trusted.
func IsExpired(err error) bool {
	return errors.Is(err, ErrExpired)
}
