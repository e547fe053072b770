package cryptox

import (
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// DefaultPasswordCost is the bcrypt work factor used when none is configured.
// Each increment doubles the time taken to hash and verify.
const DefaultPasswordCost = 10

// bcrypt only looks at the first 72 bytes of input, we refuse anything longer
// instead of silently truncating it.
const maxPasswordBytes = 72

var (
	ErrPasswordTooLong = errors.New("cryptox: password exceeds 72 bytes")
	ErrMalformedHash   = errors.New("cryptox: malformed password hash")
	ErrInvalidCost     = errors.New("cryptox: bcrypt cost out of range")
)

// PasswordHasher produces and checks self-describing bcrypt records of the
// form $2a$<cost>$<22 char salt><31 char digest>. A fresh salt is drawn for
// every Hash call.
type PasswordHasher struct {
	Cost int
}

// NewPasswordHasher returns a hasher with the given cost, 0 selects
// DefaultPasswordCost.
func NewPasswordHasher(cost int) *PasswordHasher {
	if cost == 0 {
		cost = DefaultPasswordCost
	}
	return &PasswordHasher{Cost: cost}
}

// Validate checks the configured cost is one bcrypt accepts.
func (h *PasswordHasher) Validate() error {
	if h.Cost < bcrypt.MinCost || h.Cost > bcrypt.MaxCost {
		return fmt.Errorf("%w: %d (want %d-%d)", ErrInvalidCost, h.Cost, bcrypt.MinCost, bcrypt.MaxCost)
	}
	return nil
}

// Hash salts and hashes plaintext.
func (h *PasswordHasher) Hash(plaintext string) (string, error) {
	if len(plaintext) > maxPasswordBytes {
		return "", ErrPasswordTooLong
	}
	if err := h.Validate(); err != nil {
		return "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.Cost)
	if err != nil {
		return "", fmt.Errorf("cryptox: hash password: %w", err)
	}
	return string(hash), nil
}

// Verify re-derives the digest using the cost and salt embedded in record and
// compares in constant time. A wrong password is (false, nil); only a record
// that cannot be parsed produces an error.
func (h *PasswordHasher) Verify(plaintext, record string) (bool, error) {
	if len(plaintext) > maxPasswordBytes {
		// Nothing this long was ever hashed, but bcrypt would truncate and
		// could match on the first 72 bytes.
		if _, err := RecordCost(record); err != nil {
			return false, err
		}
		return false, nil
	}

	err := bcrypt.CompareHashAndPassword([]byte(record), []byte(plaintext))
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, bcrypt.ErrMismatchedHashAndPassword):
		return false, nil
	default:
		return false, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
}

// RecordCost returns the work factor stored in a bcrypt record.
func RecordCost(record string) (int, error) {
	cost, err := bcrypt.Cost([]byte(record))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrMalformedHash, err)
	}
	return cost, nil
}
