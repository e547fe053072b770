package postgres

import (
	"context"
	"errors"

	"github.com/aussiebroadwan/roster/internal/account/store"
	"github.com/jackc/pgx/v5"
)

var errNestedTx = errors.New("postgres: nested transactions are not supported")

type txStore struct {
	ctx context.Context // the context the transaction was started with
	tx  pgx.Tx
}

func (t *txStore) Commit() error { return t.tx.Commit(t.ctx) }

func (t *txStore) Rollback() error {
	err := t.tx.Rollback(t.ctx)
	if errors.Is(err, pgx.ErrTxClosed) {
		return nil
	}
	return err
}

func (t *txStore) Close() error { return nil }

func (t *txStore) Ping(ctx context.Context) error { return nil }

func (t *txStore) Tx(ctx context.Context) (store.Tx, error) {
	return nil, errNestedTx
}

func (t *txStore) WithTx(ctx context.Context, fn func(tx store.Tx) error) error {
	return errNestedTx
}

func (t *txStore) Users() store.Users             { return &usersRepo{db: t.tx} }
func (t *txStore) Companies() store.Companies     { return &companiesRepo{db: t.tx} }
func (t *txStore) Memberships() store.Memberships { return &membershipsRepo{db: t.tx} }

func (t *txStore) ApplyMigrations() error { return nil } // no-op; migrations should be applied before starting a tx
