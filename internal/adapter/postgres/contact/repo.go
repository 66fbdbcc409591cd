// Package contact binds the contacts table to the generic record store.
package contact

import (
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/record"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Table describes contacts. Search covers name and email; the facet is the
// pipeline status.
var Table = record.Table{
	Name:   "contacts",
	Entity: "contact",
	Columns: []string{
		"id", "user_id", "full_name", "email", "phone", "company",
		"source", "notes", "status", "created_at", "updated_at",
	},
	Writable:      []string{"full_name", "email", "phone", "company", "source", "notes", "status"},
	SearchColumns: []string{"full_name", "email"},
	FacetColumn:   "status",
	OrderBy:       []string{"created_at DESC", "id"},
	Touch:         true,
}

func New(db postgres.Querier) *record.Store[domain.Contact] {
	return record.NewStore[domain.Contact](db, Table)
}
