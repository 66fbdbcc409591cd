// Package dataloader provides per-request DataLoaders that batch the
// lookups of records linked from a task into single owner-scoped queries.
// Loaders call the stores directly, bypassing the service layer;
// ownership is enforced by the stores' WHERE user_id filters.
package dataloader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type contactRepo interface {
	GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Contact, error)
}

type propertyRepo interface {
	GetMany(ctx context.Context, ids []uuid.UUID) ([]domain.Property, error)
}

// Repos holds the stores required by the loaders.
type Repos struct {
	Contacts   contactRepo
	Properties propertyRepo
}

// Loaders is created per request. Missing and foreign ids load as nil.
type Loaders struct {
	ContactByID  *dataloader.Loader[uuid.UUID, *domain.Contact]
	PropertyByID *dataloader.Loader[uuid.UUID, *domain.Property]
}

// NewLoaders must be called per request: loaders cache results.
func NewLoaders(repos *Repos) *Loaders {
	return &Loaders{
		ContactByID:  newLoader(byID(repos.Contacts.GetMany, func(c domain.Contact) uuid.UUID { return c.ID })),
		PropertyByID: newLoader(byID(repos.Properties.GetMany, func(p domain.Property) uuid.UUID { return p.ID })),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

func byID[T any](
	getMany func(ctx context.Context, ids []uuid.UUID) ([]T, error),
	key func(T) uuid.UUID,
) dataloader.BatchFunc[uuid.UUID, *T] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[*T] {
		rows, err := getMany(ctx, keys)
		if err != nil {
			return errorResults[*T](len(keys), err)
		}

		found := make(map[uuid.UUID]*T, len(rows))
		for i := range rows {
			found[key(rows[i])] = &rows[i]
		}

		results := make([]*dataloader.Result[*T], len(keys))
		for i, k := range keys {
			results[i] = &dataloader.Result[*T]{Data: found[k]}
		}
		return results
	}
}

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

type contextKey string

const loadersKey contextKey = "dataloaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("dataloader: loaders not found in context, is middleware configured?")
	}
	return l
}

// Middleware creates per-request loaders and stores them in the request
// context.
func Middleware(repos *Repos) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), NewLoaders(repos))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
