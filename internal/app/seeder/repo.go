// Package seeder fills an identity's workspace with demo records.
package seeder

import (
	"context"

	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Upserter writes rows keyed by "id" into one owner-scoped collection.
// Implemented by the postgres record stores.
type Upserter interface {
	Upsert(ctx context.Context, rows []map[string]any) (int, error)
}

// IdentityLister returns identities oldest first. Implemented by user.Repo.
type IdentityLister interface {
	List(ctx context.Context, limit, offset int) ([]domain.User, int, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
}

// Stores groups the collections the seeder writes to.
type Stores struct {
	Contacts   Upserter
	Properties Upserter
	Tasks      Upserter
	Activities Upserter
}
