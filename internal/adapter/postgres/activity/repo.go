// Package activity binds the append-only activity feed to the record store.
package activity

import (
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/record"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

var Table = record.Table{
	Name:          "activities",
	Entity:        "activity",
	Columns:       []string{"id", "user_id", "action", "entity_type", "entity_id", "metadata", "created_at"},
	Writable:      []string{"action", "entity_type", "entity_id", "metadata"},
	SearchColumns: nil,
	FacetColumn:   "entity_type",
	OrderBy:       []string{"created_at DESC", "id"},
}

func New(db postgres.Querier) *record.Store[domain.Activity] {
	return record.NewStore[domain.Activity](db, Table)
}
