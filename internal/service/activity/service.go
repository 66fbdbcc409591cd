// Package activity records the per-owner activity feed and announces new
// entries to the event stream once they are committed.
package activity

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

// RecentLimit is the size of the dashboard feed.
const RecentLimit = 5

type activityStore interface {
	Insert(ctx context.Context, values map[string]any) (domain.Activity, error)
	List(ctx context.Context, f domain.RecordFilter) ([]domain.Activity, error)
}

type publisher interface {
	Publish(ctx context.Context, key string, event any) error
}

// Event is the payload published for every recorded activity.
type Event struct {
	ID         uuid.UUID      `json:"id"`
	OwnerID    uuid.UUID      `json:"owner_id"`
	Action     string         `json:"action"`
	EntityType string         `json:"entity_type"`
	EntityID   *uuid.UUID     `json:"entity_id,omitempty"`
	Metadata   map[string]any `json:"metadata,omitempty"`
	OccurredAt time.Time      `json:"occurred_at"`
}

type Service struct {
	log       *slog.Logger
	store     activityStore
	publisher publisher
}

func NewService(logger *slog.Logger, store activityStore, pub publisher) *Service {
	return &Service{
		log:       logger.With("service", "activity"),
		store:     store,
		publisher: pub,
	}
}

// Record appends an entry for the caller. Run it inside the transaction
// that made the change so the feed never mentions rolled back work.
func (s *Service) Record(ctx context.Context, entry domain.Activity) (domain.Activity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return domain.Activity{}, domain.ErrUnauthorized
	}
	if !entry.Action.IsValid() {
		return domain.Activity{}, domain.NewValidationError("action", "unknown action")
	}
	if !entry.EntityType.IsValid() {
		return domain.Activity{}, domain.NewValidationError("entity_type", "unknown entity type")
	}

	metadata := entry.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}

	created, err := s.store.Insert(ctx, map[string]any{
		"action":      entry.Action.String(),
		"entity_type": entry.EntityType.String(),
		"entity_id":   entry.EntityID,
		"metadata":    metadata,
	})
	if err != nil {
		return domain.Activity{}, fmt.Errorf("activity.Record: %w", err)
	}
	return created, nil
}

// Announce publishes committed entries. Delivery failures are logged and
// not retried; the feed in the database stays authoritative.
func (s *Service) Announce(ctx context.Context, entries ...domain.Activity) {
	for _, a := range entries {
		event := Event{
			ID:         a.ID,
			OwnerID:    a.UserID,
			Action:     a.Action.String(),
			EntityType: a.EntityType.String(),
			EntityID:   a.EntityID,
			Metadata:   a.Metadata,
			OccurredAt: a.CreatedAt,
		}
		if err := s.publisher.Publish(ctx, a.UserID.String(), event); err != nil {
			s.log.WarnContext(ctx, "activity announce failed",
				slog.String("activity_id", a.ID.String()),
				slog.String("error", err.Error()))
		}
	}
}

// Recent returns the caller's newest entries, newest first.
func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Activity, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if limit <= 0 {
		limit = RecentLimit
	}

	items, err := s.store.List(ctx, domain.RecordFilter{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("activity.Recent: %w", err)
	}
	return items, nil
}
