package store

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roster/internal/account/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite, postgres)
// implement this. It exposes sub-repositories to keep concerns tidy and
// testable, and so a transaction can only be started from the root.
type Store interface {
	Users() Users
	Companies() Companies
	Memberships() Memberships

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes a function within a transaction.
	// If fn returns an error, the transaction is rolled back.
	// If fn returns nil, the transaction is committed.
	// This is the recommended way to handle transactions as it automatically
	// handles commit/rollback logic.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store. It embeds the same repos but adds Commit/Rollback.
// Nested transactions are not supported.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByEmail is used during login. email must already be normalized.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// ExistsByEmailOrUsername reports whether any user has either value.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// CreateUser inserts a new user (id is provided by app via ULID).
	// Returns ErrAlreadyExists when email or username is taken.
	CreateUser(ctx context.Context, u domain.User) error

	// ListUsers returns all users ordered by creation.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

type Companies interface {
	// CreateCompany inserts a new company.
	CreateCompany(ctx context.Context, c domain.Company) error

	// GetCompanyByID returns a company by id.
	GetCompanyByID(ctx context.Context, id string) (domain.Company, error)

	// ListCompaniesForUser returns the companies userID is a member of,
	// ordered by when the membership was created.
	ListCompaniesForUser(ctx context.Context, userID string) ([]domain.Company, error)
}

type Memberships interface {
	// CreateMembership inserts a membership. Returns ErrAlreadyExists when
	// the (user, company) pair is already present.
	CreateMembership(ctx context.Context, m domain.Membership) error

	// GetMembership returns the membership of userID in companyID.
	GetMembership(ctx context.Context, userID, companyID string) (domain.Membership, error)

	// ListMembershipsByCompany returns a company's memberships ordered by creation.
	ListMembershipsByCompany(ctx context.Context, companyID string) ([]domain.Membership, error)
}
