// Command seeder fills the workspace of one identity with demo leads,
// listings, tasks and activity. Without --email it seeds the oldest
// identity. Re-running it overwrites the same rows.
//
// Flags:
//
//	--email          identity to seed (default: oldest)
//	--dry-run        report what would be written without writing
//	--seeder-config  path to seeder YAML config file
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"

	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/activity"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/contact"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/property"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/task"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/user"
	"github.com/heartmarshall/realty-crm/internal/app"
	"github.com/heartmarshall/realty-crm/internal/app/seeder"
	"github.com/heartmarshall/realty-crm/internal/config"
)

// Compile-time interface assertion.
var _ seeder.IdentityLister = (*user.Repo)(nil)

func main() {
	emailFlag := flag.String("email", "", "email of the identity to seed (default: oldest)")
	dryRunFlag := flag.Bool("dry-run", false, "report what would be written without writing")
	seederConfigFlag := flag.String("seeder-config", "", "path to seeder YAML config file")
	flag.Usage = config.Usage(flag.Usage)
	flag.Parse()

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log)

	seederCfg, err := seeder.LoadConfig(*seederConfigFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}

	if err := seederCfg.Override(*emailFlag, *dryRunFlag); err != nil {
		logger.Error("seeder flags", slog.String("error", err.Error()))
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), seederCfg.Timeout)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	pipeline := seeder.NewPipeline(logger, user.New(pool), seeder.Stores{
		Contacts:   contact.New(pool),
		Properties: property.New(pool),
		Tasks:      task.New(pool),
		Activities: activity.New(pool),
	}, *seederCfg)

	owner, err := pipeline.Run(ctx)
	if err != nil {
		logger.Error("seed failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("seed complete", slog.String("email", owner.Email), slog.Bool("dry_run", seederCfg.DryRun))
}
