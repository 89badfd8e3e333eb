package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"textmud/internal/config"
	"textmud/internal/db"
	"textmud/internal/logger"
	"textmud/internal/server"

	"github.com/gin-gonic/gin"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}
	appLog := logger.Setup(cfg)
	if err := run(cfg, appLog); err != nil {
		appLog.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(cfg config.Config, appLog *slog.Logger) error {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	conn, err := db.Open(cfg, logger.Gorm(appLog, cfg.DBEcho))
	if err != nil {
		return fmt.Errorf("database connection: %w", err)
	}
	defer db.Close(conn)

	if cfg.AutoMigrate {
		if err := db.Migrate(conn); err != nil {
			return fmt.Errorf("database migration: %w", err)
		}
		appLog.Info("database migration complete", "dialect", db.Dialect(cfg))
	}

	gateway := db.NewGateway(conn)
	if cfg.SeedWorld {
		result, err := db.Seed(context.Background(), gateway)
		if err != nil {
			return err
		}
		if result.Seeded {
			appLog.Info("world seeded",
				"location", result.Location.ID,
				"player", result.Player.ID,
				"thing", result.Thing.ID)
		}
	}

	srv := server.New(gateway, cfg, appLog)
	httpServer := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	serveErr := make(chan error, 1)
	go func() {
		appLog.Info("textmud server listening", "addr", httpServer.Addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
	case <-ctx.Done():
	}

	appLog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
