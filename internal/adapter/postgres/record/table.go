// Package record implements owner-scoped storage for the CRM collections
// (contacts, properties, tasks, activities). One generic Store serves every
// collection; a Table describes the columns it may read, write, search and
// group by.
package record

import "slices"

// Table describes a collection's SQL shape.
type Table struct {
	// Name is the SQL table. Entity names one row in error messages.
	Name   string
	Entity string

	// Columns are selected on every read and must cover every db-tagged
	// field of the row type.
	Columns []string

	// Writable lists columns accepted by Insert, Update and Upsert.
	Writable []string

	// SearchColumns are matched with ILIKE by RecordFilter.Search.
	SearchColumns []string

	// FacetColumn is compared for equality with RecordFilter.Facet.
	FacetColumn string

	OrderBy []string

	// Touch sets updated_at on every update.
	Touch bool
}

func (t Table) isWritable(col string) bool {
	return slices.Contains(t.Writable, col)
}

func (t Table) hasColumn(col string) bool {
	return slices.Contains(t.Columns, col)
}
