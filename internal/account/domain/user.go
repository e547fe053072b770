package domain

import "time"

type User struct {
	ID           string
	Username     string
	Email        string // stored trimmed and lowercased
	PasswordHash string // bcrypt encoded, never leaves the service
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsZero reports whether u is the zero User, i.e. no principal.
func (u User) IsZero() bool { return u.ID == "" }
