// Package task binds the tasks table to the generic record store.
package task

import (
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres"
	"github.com/heartmarshall/realty-crm/internal/adapter/postgres/record"
	"github.com/heartmarshall/realty-crm/internal/domain"
)

// Table lists tasks by due date, undated ones last.
var Table = record.Table{
	Name:   "tasks",
	Entity: "task",
	Columns: []string{
		"id", "user_id", "title", "description", "due_date", "priority",
		"status", "contact_id", "property_id", "created_at", "updated_at",
	},
	Writable: []string{
		"title", "description", "due_date", "priority",
		"status", "contact_id", "property_id",
	},
	SearchColumns: []string{"title", "description"},
	FacetColumn:   "status",
	OrderBy:       []string{"due_date ASC NULLS LAST", "created_at DESC"},
	Touch:         true,
}

func New(db postgres.Querier) *record.Store[domain.Task] {
	return record.NewStore[domain.Task](db, Table)
}
