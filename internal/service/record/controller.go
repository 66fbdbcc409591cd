// Package record implements the list and form logic shared by every record
// collection: search and facet listing, validated create and update,
// idempotent delete, and the activity entry each successful write leaves.
package record

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/google/uuid"

	"github.com/heartmarshall/realty-crm/internal/domain"
	"github.com/heartmarshall/realty-crm/pkg/ctxutil"
)

// Identifiable is implemented by every stored record.
type Identifiable interface {
	RecordID() uuid.UUID
}

// Form is the validated input of a create or update. Values returns the
// column set to write and is only called after Validate succeeded.
type Form interface {
	Validate() error
	Values() map[string]any
}

// Store is the owner-scoped gateway of one collection.
type Store[T any] interface {
	List(ctx context.Context, f domain.RecordFilter) ([]T, error)
	Get(ctx context.Context, id uuid.UUID) (T, error)
	Insert(ctx context.Context, values map[string]any) (T, error)
	Update(ctx context.Context, id uuid.UUID, values map[string]any) (T, error)
	Delete(ctx context.Context, id uuid.UUID) (bool, error)
}

// ActivityLog records feed entries inside the write transaction and
// announces them after commit.
type ActivityLog interface {
	Record(ctx context.Context, entry domain.Activity) (domain.Activity, error)
	Announce(ctx context.Context, entries ...domain.Activity)
}

type TxManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// Descriptor tells the controller what it is managing.
type Descriptor[T any] struct {
	Kind domain.EntityKind
	// Facets lists the accepted facet values besides "" and domain.FilterAll.
	Facets []string
	// Describe returns the activity metadata naming a record, e.g. {"name": ...}.
	Describe func(T) map[string]any
}

// Query is the listing request of a page.
type Query struct {
	Search string
	Facet  string
}

// Change is the outcome of a Modify callback.
type Change struct {
	Values   map[string]any
	Action   domain.ActivityAction
	Metadata map[string]any
}

// Controller is instantiated once per collection.
type Controller[T Identifiable, F Form] struct {
	log      *slog.Logger
	desc     Descriptor[T]
	store    Store[T]
	activity ActivityLog
	tx       TxManager
}

func NewController[T Identifiable, F Form](
	logger *slog.Logger,
	desc Descriptor[T],
	store Store[T],
	activity ActivityLog,
	tx TxManager,
) *Controller[T, F] {
	return &Controller[T, F]{
		log:      logger.With("service", desc.Kind.String()),
		desc:     desc,
		store:    store,
		activity: activity,
		tx:       tx,
	}
}

// Kind returns the collection the controller manages.
func (c *Controller[T, F]) Kind() domain.EntityKind { return c.desc.Kind }

// List returns the caller's records matching q.
func (c *Controller[T, F]) List(ctx context.Context, q Query) ([]T, error) {
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return nil, domain.ErrUnauthorized
	}
	if q.Facet != "" && q.Facet != domain.FilterAll && !slices.Contains(c.desc.Facets, q.Facet) {
		return nil, domain.NewValidationError("filter", "unknown value")
	}

	items, err := c.store.List(ctx, domain.RecordFilter{Search: q.Search, Facet: q.Facet})
	if err != nil {
		return nil, fmt.Errorf("%s.List: %w", c.desc.Kind, err)
	}
	return items, nil
}

// Get returns one of the caller's records.
func (c *Controller[T, F]) Get(ctx context.Context, id uuid.UUID) (T, error) {
	var zero T
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return zero, domain.ErrUnauthorized
	}

	item, err := c.store.Get(ctx, id)
	if err != nil {
		return zero, fmt.Errorf("%s.Get: %w", c.desc.Kind, err)
	}
	return item, nil
}

// Create validates the form and stores a new record. Nothing is written
// when validation fails.
func (c *Controller[T, F]) Create(ctx context.Context, form F) (T, error) {
	var zero T
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return zero, domain.ErrUnauthorized
	}
	if err := form.Validate(); err != nil {
		return zero, err
	}

	var (
		created T
		entry   domain.Activity
	)
	err := c.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		created, err = c.store.Insert(ctx, form.Values())
		if err != nil {
			return err
		}
		entry, err = c.activity.Record(ctx, c.entry(created, domain.ActivityCreated, nil))
		return err
	})
	if err != nil {
		return zero, fmt.Errorf("%s.Create: %w", c.desc.Kind, err)
	}

	c.activity.Announce(ctx, entry)
	c.log.InfoContext(ctx, "record created",
		slog.String("user_id", userID.String()),
		slog.String("id", created.RecordID().String()))
	return created, nil
}

// Update validates the form and overwrites the record's writable columns.
func (c *Controller[T, F]) Update(ctx context.Context, id uuid.UUID, form F) (T, error) {
	var zero T
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return zero, domain.ErrUnauthorized
	}
	if err := form.Validate(); err != nil {
		return zero, err
	}

	var (
		updated T
		entry   domain.Activity
	)
	err := c.tx.RunInTx(ctx, func(ctx context.Context) error {
		var err error
		updated, err = c.store.Update(ctx, id, form.Values())
		if err != nil {
			return err
		}
		entry, err = c.activity.Record(ctx, c.entry(updated, domain.ActivityUpdated, nil))
		return err
	})
	if err != nil {
		return zero, fmt.Errorf("%s.Update: %w", c.desc.Kind, err)
	}

	c.activity.Announce(ctx, entry)
	return updated, nil
}

// Modify applies fn to the current record and writes the change it returns.
// fn runs inside the transaction and may reject the change with an error.
func (c *Controller[T, F]) Modify(ctx context.Context, id uuid.UUID, fn func(current T) (Change, error)) (T, error) {
	var zero T
	if _, ok := ctxutil.UserIDFromCtx(ctx); !ok {
		return zero, domain.ErrUnauthorized
	}

	var (
		updated T
		entry   domain.Activity
	)
	err := c.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := c.store.Get(ctx, id)
		if err != nil {
			return err
		}
		change, err := fn(current)
		if err != nil {
			return err
		}
		updated, err = c.store.Update(ctx, id, change.Values)
		if err != nil {
			return err
		}

		action := change.Action
		if action == "" {
			action = domain.ActivityUpdated
		}
		entry, err = c.activity.Record(ctx, c.entry(updated, action, change.Metadata))
		return err
	})
	if err != nil {
		return zero, fmt.Errorf("%s.Modify: %w", c.desc.Kind, err)
	}

	c.activity.Announce(ctx, entry)
	return updated, nil
}

// Delete removes a record. Deleting a missing record succeeds and leaves no
// activity behind.
func (c *Controller[T, F]) Delete(ctx context.Context, id uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}

	var (
		entry   domain.Activity
		removed bool
	)
	err := c.tx.RunInTx(ctx, func(ctx context.Context) error {
		current, err := c.store.Get(ctx, id)
		if err != nil {
			return err
		}
		removed, err = c.store.Delete(ctx, id)
		if err != nil || !removed {
			return err
		}
		entry, err = c.activity.Record(ctx, c.entry(current, domain.ActivityDeleted, nil))
		return err
	})
	if errors.Is(err, domain.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("%s.Delete: %w", c.desc.Kind, err)
	}

	if removed {
		c.activity.Announce(ctx, entry)
		c.log.InfoContext(ctx, "record deleted",
			slog.String("user_id", userID.String()),
			slog.String("id", id.String()))
	}
	return nil
}

func (c *Controller[T, F]) entry(item T, action domain.ActivityAction, extra map[string]any) domain.Activity {
	metadata := map[string]any{}
	if c.desc.Describe != nil {
		for k, v := range c.desc.Describe(item) {
			metadata[k] = v
		}
	}
	for k, v := range extra {
		metadata[k] = v
	}

	id := item.RecordID()
	return domain.Activity{
		Action:     action,
		EntityType: c.desc.Kind,
		EntityID:   &id,
		Metadata:   metadata,
	}
}
