package db

import (
	"embed"
	"errors"
	"fmt"

	"textmud/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/database/sqlite3"
	"github.com/golang-migrate/migrate/v4/source/iofs"
)

//go:embed migrations
var migrationFiles embed.FS

const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
)

// MigrationsDir is where versioned migrations for dialect live in the source
// tree.
func MigrationsDir(dialect string) string {
	return "internal/db/migrations/" + dialect
}

// Dialect names the SQL dialect cfg connects to.
func Dialect(cfg config.Config) string {
	if cfg.UsesPostgres() {
		return DialectPostgres
	}
	return DialectSQLite
}

// NewMigrator returns a golang-migrate instance reading the embedded
// migrations for the configured database.
func NewMigrator(cfg config.Config) (*migrate.Migrate, error) {
	dialect := Dialect(cfg)
	src, err := iofs.New(migrationFiles, "migrations/"+dialect)
	if err != nil {
		return nil, fmt.Errorf("migration source: %w", err)
	}
	url := cfg.DatabaseURL
	if dialect == DialectSQLite {
		url = "sqlite3://" + cfg.DatabasePath
	}
	m, err := migrate.NewWithSourceInstance("iofs", src, url)
	if err != nil {
		return nil, fmt.Errorf("migration setup: %w", err)
	}
	return m, nil
}

// MigrateUp applies every pending migration. An up-to-date database is not
// an error.
func MigrateUp(cfg config.Config) error {
	m, err := NewMigrator(cfg)
	if err != nil {
		return err
	}
	defer m.Close()
	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("migrate up: %w", err)
	}
	return nil
}
