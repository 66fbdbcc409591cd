// Command server runs the CRM HTTP API.
//
// Configuration is read from CONFIG_PATH (YAML) and the environment; see
// internal/config. The process stops gracefully on SIGINT, SIGTERM and
// SIGQUIT.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/realty-crm/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("server: %v", err)
	}
}
