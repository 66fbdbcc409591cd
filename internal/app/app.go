// Package app wires configuration, storage, services and the HTTP server
// into a running process.
package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/heartmarshall/realty-crm/internal/adapter/kafka"
	"github.com/heartmarshall/realty-crm/internal/adapter/mail"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	activityrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/activity"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/confirmation"
	contactrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/contact"
	propertyrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/property"
	taskrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/task"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/token"
	userrepo "github.com/heartmarshall/realty-crm/internal/adapter/postgres/user"
	"github.com/heartmarshall/realty-crm/internal/auth"
	"github.com/heartmarshall/realty-crm/internal/config"
	"github.com/heartmarshall/realty-crm/internal/navigation"
	"github.com/heartmarshall/realty-crm/internal/observability"
	"github.com/heartmarshall/realty-crm/internal/service/activity"
	authsvc "github.com/heartmarshall/realty-crm/internal/service/auth"
	"github.com/heartmarshall/realty-crm/internal/service/contact"
	"github.com/heartmarshall/realty-crm/internal/service/insight"
	"github.com/heartmarshall/realty-crm/internal/service/property"
	"github.com/heartmarshall/realty-crm/internal/service/task"
	"github.com/heartmarshall/realty-crm/internal/session"
	"github.com/heartmarshall/realty-crm/internal/transport/dataloader"
	"github.com/heartmarshall/realty-crm/internal/transport/middleware"
	"github.com/heartmarshall/realty-crm/internal/transport/rest"
)

// tokenCleanupInterval is how often expired refresh tokens are purged.
const tokenCleanupInterval = time.Hour

// eventPublisher is the outbound event stream: Kafka or a no-op.
type eventPublisher interface {
	Publish(ctx context.Context, key string, event any) error
	Close() error
}

type confirmationMailer interface {
	SendConfirmation(ctx context.Context, to, fullName, token string) error
}

// Run starts the service and blocks until ctx is cancelled, then shuts the
// HTTP server down gracefully.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, stop := context.WithCancel(ctx)
	defer stop()

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, cfg.Database.DSN, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	var metrics *observability.Metrics
	if cfg.Metrics.Enabled {
		metrics = observability.NewMetrics()
	}

	probes := []rest.Probe{rest.PostgresProbe(pool)}
	var publisher eventPublisher = kafka.Discard{}
	if cfg.Kafka.Enabled {
		producer := kafka.NewProducer(logger, cfg.Kafka)
		publisher = producer
		probes = append(probes, rest.KafkaProbe(producer))
	}
	defer publisher.Close() //nolint:errcheck

	// Storage.
	txm := postgres.NewTxManager(pool)
	users := userrepo.New(pool)
	contacts := contactrepo.New(pool)
	properties := propertyrepo.New(pool)
	tasks := taskrepo.New(pool)

	// Services.
	activities := activity.NewService(logger, activityrepo.New(pool), publisher)
	authService := authsvc.NewService(
		logger,
		users,
		token.New(pool),
		confirmation.New(pool),
		txm,
		auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
		newMailer(logger, cfg.Mail),
		cfg.Auth,
	)
	contactService := contact.NewService(logger, contacts, activities, txm)
	propertyService := property.NewService(logger, properties, activities, txm)
	taskService := task.NewService(logger, tasks, activities, txm)
	insightService := insight.NewService(logger, contacts, properties, tasks, activities)

	sessions := session.NewProvider(logger, authService, users, cfg.Session)
	defer sessions.Close() //nolint:errcheck

	var observer eventObserver = nopObserver{}
	if metrics != nil {
		observer = metrics
		sessions.OnDropped(func(kind session.EventKind) { metrics.ObserveDroppedEvent(string(kind)) })
	}

	var wg sync.WaitGroup
	events, cancelEvents := sessions.Subscribe()
	defer cancelEvents()
	wg.Add(1)
	go func() {
		defer wg.Done()
		forwardSessionEvents(ctx, logger, events, publisher, observer)
	}()

	wg.Add(1)
	go func() {
		defer wg.Done()
		runPeriodic(ctx, logger.With("job", "delete_refresh_tokens"), tokenCleanupInterval, func(ctx context.Context) error {
			_, err := authService.CleanupExpiredTokens(ctx)
			return err
		})
	}()

	// HTTP.
	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handlers := rest.Handlers{
		Health:     rest.NewHealthHandler(BuildVersion(), probes...),
		Auth:       rest.NewAuthHandler(authService, sessions, logger),
		Pages:      rest.NewPageHandler(insightService, logger),
		Leads:      rest.NewLeadHandler(contactService, logger),
		Properties: rest.NewPropertyHandler(propertyService, logger),
		Tasks:      rest.NewTaskHandler(taskService, time.Now, logger),
		Admin:      rest.NewAdminHandler(authService, sessions, logger),
	}
	mws := rest.Middlewares{
		RequestID: middleware.RequestID(),
		Recovery:  middleware.Recovery(logger),
		Session:   middleware.Session(sessions),
		Logger:    middleware.Logger(logger),
		CORS:      middleware.CORS(cfg.CORS),
		AuthLimit: limiter.Limit(cfg.RateLimit.AuthPerMinute),
		Loaders: dataloader.Middleware(&dataloader.Repos{
			Contacts:   contacts,
			Properties: properties,
		}),
	}
	var observeGuard func(string)
	if metrics != nil {
		handlers.Metrics = metrics.Handler()
		handlers.MetricsPath = cfg.Metrics.Path
		mws.Metrics = metrics.HTTPMiddleware
		observeGuard = metrics.ObserveGuard
	}
	mws.Guard = middleware.Guard(navigation.NewGuard(), observeGuard)

	server := &http.Server{
		Addr:              net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:           rest.NewRouter(handlers, mws),
		ReadTimeout:       cfg.Server.ReadTimeout,
		ReadHeaderTimeout: cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	serverErr := make(chan error, 1)
	go func() {
		logger.Info("http server started", slog.String("addr", server.Addr))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		logger.Info("shutting down")
	case err := <-serverErr:
		if err != nil {
			return fmt.Errorf("listen and serve: %w", err)
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", slog.String("error", err.Error()))
	}

	cancelEvents()
	wg.Wait()
	logger.Info("http server stopped")
	return nil
}

// newMailer logs confirmation links instead of sending them when no Resend
// key is configured.
func newMailer(logger *slog.Logger, cfg config.MailConfig) confirmationMailer {
	if cfg.ResendAPIKey == "" {
		logger.Warn("resend api key not set, confirmation links are logged")
		return mail.NewLogMailer(logger, cfg)
	}
	return mail.NewResendMailer(logger, cfg)
}
