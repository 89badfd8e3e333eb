package config

import (
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// LoadDotEnv loads environment variables from a .env file if present.
// Existing environment variables are not overwritten.
func LoadDotEnv(path string) error {
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	return godotenv.Load(path)
}

type Config struct {
	Port                     string `env:"PORT" envDefault:"8080"`
	Environment              string `env:"ENVIRONMENT" envDefault:"development"`
	LogLevel                 string `env:"LOG_LEVEL" envDefault:"info"`
	DatabaseURL              string `env:"DATABASE_URL"`
	DatabasePath             string `env:"DATABASE_PATH" envDefault:"chrismud.db"`
	DBMaxOpenConns           int    `env:"DB_MAX_OPEN_CONNS" envDefault:"10"`
	DBMaxIdleConns           int    `env:"DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetimeSeconds int    `env:"DB_CONN_MAX_LIFETIME_SECONDS" envDefault:"300"`
	DBConnMaxIdleTimeSeconds int    `env:"DB_CONN_MAX_IDLE_SECONDS" envDefault:"60"`
	DBEcho                   bool   `env:"DB_ECHO" envDefault:"false"`
	AutoMigrate              bool   `env:"AUTO_MIGRATE" envDefault:"true"`
	SeedWorld                bool   `env:"SEED_WORLD" envDefault:"true"`
	StrictNotFound           bool   `env:"STRICT_NOT_FOUND" envDefault:"true"`
	EnforceReferences        bool   `env:"ENFORCE_REFERENCES" envDefault:"false"`
}

func Default() Config {
	return Config{
		Port:                     "8080",
		Environment:              "development",
		LogLevel:                 "info",
		DatabasePath:             "chrismud.db",
		DBMaxOpenConns:           10,
		DBMaxIdleConns:           10,
		DBConnMaxLifetimeSeconds: 300,
		DBConnMaxIdleTimeSeconds: 60,
		AutoMigrate:              true,
		SeedWorld:                true,
		StrictNotFound:           true,
	}
}

// Load parses the environment on top of Default.
func Load() (Config, error) {
	cfg := Default()
	if err := env.Parse(&cfg); err != nil {
		return Default(), fmt.Errorf("parse env: %w", err)
	}
	if cfg.DBMaxOpenConns <= 0 {
		cfg.DBMaxOpenConns = Default().DBMaxOpenConns
	}
	if cfg.DBMaxIdleConns <= 0 {
		cfg.DBMaxIdleConns = Default().DBMaxIdleConns
	}
	return cfg, nil
}

// UsesPostgres reports whether DATABASE_URL selects a Postgres database
// instead of the local sqlite file.
func (c Config) UsesPostgres() bool {
	return strings.TrimSpace(c.DatabaseURL) != ""
}

func (c Config) SlogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(c.LogLevel)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
