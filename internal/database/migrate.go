package database

import (
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	migratedb "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

// Each SQL backend has its own dialect directory with the same versions.
//
//go:embed migrations/sqlite/*.sql migrations/postgres/*.sql
var migrationsFS embed.FS

// migrateUp applies every pending migration of dialect through driver and
// closes the migrator, which also closes the driver's connection.
func migrateUp(dialect string, driver migratedb.Driver) error {
	source, err := iofs.New(migrationsFS, "migrations/"+dialect)
	if err != nil {
		driver.Close()
		return fmt.Errorf("failed to open %s migrations: %w", dialect, err)
	}

	m, err := migrate.NewWithInstance("iofs", source, dialect, driver)
	if err != nil {
		driver.Close()
		return fmt.Errorf("failed to create migrator: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to run %s migrations: %w", dialect, err)
	}

	return nil
}
