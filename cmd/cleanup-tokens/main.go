// Command cleanup-tokens deletes expired and revoked refresh tokens. The
// server runs the same job hourly; this command is for cron setups that
// disable it or need an immediate purge.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/token"
	"github.com/heartmarshall/realty-crm/internal/app"
	"github.com/heartmarshall/realty-crm/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	deleted, err := token.New(pool).DeleteExpired(ctx)
	if err != nil {
		logger.Error("cleanup tokens", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("refresh tokens cleaned up", slog.Int("deleted", deleted))
}
