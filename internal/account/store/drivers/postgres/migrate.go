package postgres

import (
	"errors"
	"strings"

	"github.com/aussiebroadwan/roster/internal/account/store/drivers/postgres/migrations"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/pgx/v5"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// ApplyMigrations applies the embedded migrations. golang-migrate opens its
// own connection from the DSN using the pgx/v5 driver.
func (s *Store) ApplyMigrations() error {
	if s.dsn == "" {
		return errors.New("postgres: no dsn to migrate")
	}

	src, err := iofs.New(migrations.Migrations, ".")
	if err != nil {
		return err
	}

	instance, err := migrate.NewWithSourceInstance("iofs", src, migrateURL(s.dsn))
	if err != nil {
		return err
	}
	defer func() { _, _ = instance.Close() }()

	err = instance.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return err
	}
	return nil
}

// migrateURL rewrites a postgres:// URL to the pgx5:// scheme the migrate
// driver registers under.
func migrateURL(dsn string) string {
	for _, prefix := range []string{"postgres://", "postgresql://"} {
		if strings.HasPrefix(dsn, prefix) {
			return "pgx5://" + strings.TrimPrefix(dsn, prefix)
		}
	}
	return dsn
}
