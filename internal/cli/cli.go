package cli

import (
	"context"
	"fmt"
	"io"

	"textmud/internal/config"
	"textmud/internal/db"
	"textmud/internal/logger"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

// RootCmd assembles mudctl.
func RootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "mudctl",
		Short: "Operate a textmud database",
		Long: `mudctl manages the database behind the textmud server: versioned
migrations, the starting world, bulk world loading and row counts.
Connection settings come from the same environment as the server.`,
		SilenceUsage: true,
	}
	root.PersistentFlags().String("env-file", ".env", "dotenv file to load before reading the environment")
	root.AddCommand(MigrateCmd())
	root.AddCommand(SeedCmd())
	root.AddCommand(LoadWorldCmd())
	root.AddCommand(StatsCmd())
	return root
}

func loadConfig(cmd *cobra.Command) (config.Config, error) {
	envFile, _ := cmd.Flags().GetString("env-file")
	if err := config.LoadDotEnv(envFile); err != nil {
		return config.Config{}, fmt.Errorf("load %s: %w", envFile, err)
	}
	return config.Load()
}

// openGateway connects and migrates so every command sees the full schema.
func openGateway(cmd *cobra.Command) (*db.Gateway, func(), error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, nil, err
	}
	log := logger.New(cmd.ErrOrStderr(), cfg)
	conn, err := db.Open(cfg, logger.Gorm(log, cfg.DBEcho))
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() { _ = db.Close(conn) }
	if err := db.Migrate(conn); err != nil {
		closeFn()
		return nil, nil, err
	}
	return db.NewGateway(conn), closeFn, nil
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgGreen).Sprint("✓"), fmt.Sprintf(format, args...))
}

func notice(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", color.New(color.FgYellow).Sprint("!"), fmt.Sprintf(format, args...))
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
