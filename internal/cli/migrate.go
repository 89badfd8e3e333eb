package cli

import (
	"errors"
	"fmt"

	"textmud/internal/db"

	"github.com/golang-migrate/migrate/v4"
	"github.com/spf13/cobra"
)

func MigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply versioned SQL migrations",
	}
	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if err := db.MigrateUp(cfg); err != nil {
				return err
			}
			success(cmd.OutOrStdout(), "%s migrations applied", db.Dialect(cfg))
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "down",
		Short: "Roll back the most recent migration",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := migrator(cmd)
			if err != nil {
				return err
			}
			defer m.Close()
			if err := m.Steps(-1); err != nil {
				if errors.Is(err, migrate.ErrNoChange) {
					notice(cmd.OutOrStdout(), "nothing to roll back")
					return nil
				}
				return fmt.Errorf("migrate down: %w", err)
			}
			success(cmd.OutOrStdout(), "rolled back one migration")
			return nil
		},
	})
	cmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the current migration version",
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := migrator(cmd)
			if err != nil {
				return err
			}
			defer m.Close()
			version, dirty, err := m.Version()
			if errors.Is(err, migrate.ErrNilVersion) {
				notice(cmd.OutOrStdout(), "no migrations applied")
				return nil
			}
			if err != nil {
				return fmt.Errorf("migration version: %w", err)
			}
			if dirty {
				notice(cmd.OutOrStdout(), "version %d (dirty)", version)
				return nil
			}
			success(cmd.OutOrStdout(), "version %d", version)
			return nil
		},
	})
	return cmd
}

func migrator(cmd *cobra.Command) (*migrate.Migrate, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	return db.NewMigrator(cfg)
}
