// Package property binds the properties table to the generic record store.
package property

import (
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/record"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

var Table = record.Table{
	Name:   "properties",
	Entity: "property",
	Columns: []string{
		"id", "user_id", "title", "address", "property_type", "status", "price",
		"bedrooms", "bathrooms", "area_sqft", "description", "contact_id",
		"created_at", "updated_at",
	},
	Writable: []string{
		"title", "address", "property_type", "status", "price",
		"bedrooms", "bathrooms", "area_sqft", "description", "contact_id",
	},
	SearchColumns: []string{"title", "address"},
	FacetColumn:   "property_type",
	OrderBy:       []string{"created_at DESC", "id"},
	Touch:         true,
}

func New(db postgres.Querier) *record.Store[domain.Property] {
	return record.NewStore[domain.Property](db, Table)
}
