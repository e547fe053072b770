package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	"github.com/aussiebroadwan/roster/internal/account/store"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Per-connection settings. They go in the DSN rather than a one-off PRAGMA
// so every connection in the pool gets them. Each is added only when the
// caller's DSN does not already set it.
var defaultDSNParams = []struct{ key, param string }{
	{"_pragma=foreign_keys(", "_pragma=foreign_keys(1)"},
	{"_pragma=busy_timeout(", "_pragma=busy_timeout(5000)"},
	{"_pragma=journal_mode(", "_pragma=journal_mode(WAL)"},
	{"_time_format=", "_time_format=sqlite"},
}

// dbtx is satisfied by both *sql.DB and *sql.Tx so repos run unchanged
// inside and outside a transaction.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type Store struct {
	db  *sql.DB
	dsn string
}

// NewStore opens the sqlite database at dsn, a file path optionally followed
// by query parameters. Foreign keys are enforced unless dsn explicitly sets
// the foreign_keys pragma.
func NewStore(dsn string) (*Store, error) {
	dsn = withDefaultParams(dsn)

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}

	if err := db.PingContext(context.Background()); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, dsn: dsn}, nil
}

func withDefaultParams(dsn string) string {
	lower := strings.ToLower(dsn)
	for _, d := range defaultDSNParams {
		if strings.Contains(lower, d.key) {
			continue
		}
		if strings.Contains(dsn, "?") {
			dsn += "&" + d.param
		} else {
			dsn += "?" + d.param
		}
	}
	return dsn
}

func (s *Store) Close() error { return s.db.Close() }

// Ping verifies the database connection is still alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Tx starts a read/write transaction and returns a Tx-scoped Store.
func (s *Store) Tx(ctx context.Context) (store.Tx, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	return newTx(tx), nil
}

// WithTx executes fn within a transaction, automatically handling commit/rollback.
func (s *Store) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.Tx(ctx)
	if err != nil {
		return err
	}

	// Ensure rollback is called if we panic or return early with error
	defer func() {
		_ = tx.Rollback() // safe to call even after commit
	}()

	if err := fn(tx); err != nil {
		return err // rollback happens in defer
	}

	return tx.Commit()
}

func (s *Store) Users() store.Users             { return &usersRepo{db: s.db} }
func (s *Store) Companies() store.Companies     { return &companiesRepo{db: s.db} }
func (s *Store) Memberships() store.Memberships { return &membershipsRepo{db: s.db} }

func mapNotFound(err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	return err
}

// mapConstraint turns a unique or primary key violation into
// store.ErrAlreadyExists.
func mapConstraint(err error) error {
	if err == nil {
		return nil
	}

	var se *sqlite.Error
	if errors.As(err, &se) {
		switch se.Code() {
		case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
			return store.ErrAlreadyExists
		}
	}

	// Older builds report the primary code only
	if strings.Contains(err.Error(), "UNIQUE constraint failed") {
		return store.ErrAlreadyExists
	}
	return err
}
