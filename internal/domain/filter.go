package domain

// FilterAll is the facet value that disables facet filtering.
const FilterAll = "all"

// RecordFilter narrows a collection listing. Search is matched
// case-insensitively against the collection's searchable columns and Facet
// against its facet column (status for contacts and tasks, type for
// properties). An empty Facet or FilterAll matches every row.
type RecordFilter struct {
	Search string
	Facet  string
	Limit  int
}

// HasFacet reports whether the facet filter is active.
func (f RecordFilter) HasFacet() bool {
	return f.Facet != "" && f.Facet != FilterAll
}
