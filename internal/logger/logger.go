package logger

import (
	"io"
	"log/slog"
	"os"
	"time"

	"textmud/internal/config"

	"github.com/lmittmann/tint"
	gormlogger "gorm.io/gorm/logger"
)

// Setup configures the global slog logger based on environment.
func Setup(cfg config.Config) *slog.Logger {
	return New(os.Stdout, cfg)
}

// New builds a logger writing to w. Production gets JSON, everything else
// the tinted console format.
func New(w io.Writer, cfg config.Config) *slog.Logger {
	var handler slog.Handler
	if cfg.Environment == "production" {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{Level: cfg.SlogLevel()})
	} else {
		handler = tint.NewHandler(w, &tint.Options{
			Level:      cfg.SlogLevel(),
			TimeFormat: time.Kitchen,
		})
	}
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger
}

// WithRequestID adds request ID to logger context
func WithRequestID(logger *slog.Logger, requestID string) *slog.Logger {
	return logger.With("request_id", requestID)
}

// Gorm bridges gorm's statement logger onto slog. With echo set every
// statement is logged at info, otherwise only errors surface.
func Gorm(logger *slog.Logger, echo bool) gormlogger.Interface {
	level := gormlogger.Error
	if echo {
		level = gormlogger.Info
	}
	writer := slog.NewLogLogger(logger.Handler(), slog.LevelInfo)
	writer.SetFlags(0)
	return gormlogger.New(writer, gormlogger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}
