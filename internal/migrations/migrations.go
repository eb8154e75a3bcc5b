package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"generator-stats-service/internal/platform/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed *.sql
var files embed.FS

// Run applies pending migrations to db. With autoMigrate off it only reports
// the current schema version.
func Run(db *sql.DB, autoMigrate bool) error {
	log := logger.Named("migrations")

	source, err := iofs.New(files, ".")
	if err != nil {
		return fmt.Errorf("create migration source: %w", err)
	}

	driver, err := postgres.WithInstance(db, &postgres.Config{})
	if err != nil {
		return fmt.Errorf("create migration driver: %w", err)
	}

	m, err := migrate.NewWithInstance("iofs", source, "postgres", driver)
	if err != nil {
		return fmt.Errorf("create migrate instance: %w", err)
	}

	version, dirty, err := m.Version()
	if err != nil && !errors.Is(err, migrate.ErrNilVersion) {
		return fmt.Errorf("read schema version: %w", err)
	}
	if dirty {
		return fmt.Errorf("schema is dirty at version %d, fix it manually and force the version", version)
	}

	if !autoMigrate {
		log.Info().Uint("version", version).Msg("auto-migration disabled")
		return nil
	}

	if err := m.Up(); err != nil {
		if errors.Is(err, migrate.ErrNoChange) {
			log.Info().Uint("version", version).Msg("schema is up to date")
			return nil
		}
		return fmt.Errorf("apply migrations: %w", err)
	}

	current, _, err := m.Version()
	if err != nil {
		return fmt.Errorf("read schema version: %w", err)
	}
	log.Info().Uint("from", version).Uint("to", current).Msg("migrations applied")

	return nil
}
