package service

import (
	"errors"
	"fmt"
)

var (
	ErrValidation          = errors.New("validation failed")
	ErrDuplicateUser       = errors.New("user already exists")
	ErrDuplicateMembership = errors.New("user is already a member of this company")
	ErrInvalidCredentials  = errors.New("invalid credentials")
	ErrMissingToken        = errors.New("missing bearer token")
	ErrUnauthenticated     = errors.New("unauthenticated")
	ErrInvalidToken        = errors.New("invalid token")
	ErrTokenExpired        = errors.New("token expired")
	ErrNotFound            = errors.New("not found")
	ErrTransactionFailure  = errors.New("transaction failed")
)

// ValidationError names the input field that was rejected and why.
// errors.Is(err, ErrValidation) holds for every ValidationError.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s %s", ErrValidation, e.Field, e.Reason)
}

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

func invalid(field, reason string) error {
	return &ValidationError{Field: field, Reason: reason}
}
