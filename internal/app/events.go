package app

import (
	"context"
	"log/slog"
	"time"

	"github.com/heartmarshall/realty-crm/internal/session"
)

type eventObserver interface {
	ObserveSessionEvent(kind string)
	ObservePublishFailure()
}

type nopObserver struct{}

func (nopObserver) ObserveSessionEvent(string) {}
func (nopObserver) ObservePublishFailure()     {}

type publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// forwardSessionEvents publishes session transitions keyed by identity
// until events is closed or ctx is done. Failed deliveries are counted and
// logged, never retried.
func forwardSessionEvents(
	ctx context.Context,
	logger *slog.Logger,
	events <-chan session.Event,
	pub publisher,
	observer eventObserver,
) {
	l := logger.With("job", "session_events")
	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-events:
			if !ok {
				l.Debug("session event stream closed")
				return
			}
			observer.ObserveSessionEvent(string(ev.Kind))
			if err := pub.Publish(ctx, ev.UserID.String(), ev); err != nil {
				observer.ObservePublishFailure()
				l.WarnContext(ctx, "session event publish failed",
					slog.String("kind", string(ev.Kind)),
					slog.String("error", err.Error()))
			}
		}
	}
}

// runPeriodic calls fn right away and then every interval until ctx is
// done.
func runPeriodic(ctx context.Context, l *slog.Logger, interval time.Duration, fn func(ctx context.Context) error) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		l.Debug("job started")
		if err := fn(ctx); err != nil {
			l.Error("job failed", slog.String("error", err.Error()))
		} else {
			l.Debug("job finished")
		}

		select {
		case <-ctx.Done():
			l.Debug("job stopped by ctx")
			return
		case <-ticker.C:
		}
	}
}
