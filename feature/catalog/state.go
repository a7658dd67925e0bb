package catalog

import (
	"slices"

	"catalog-browser/feature/catalog/models"
)

// CatalogState is the view state of one browsing session: what is selected and what it yields.
type CatalogState struct {
	Criteria models.FilterCriteria
	Sort     models.SortSpec
	Revealer Revealer
	// Filtered is the full filtered and sorted view, not just the revealed part.
	Filtered []models.Item
}

// NewCatalogState returns the initial state: no filters, name ascending, page 1.
func NewCatalogState(pageSize int) CatalogState {
	return CatalogState{
		Sort:     models.DefaultSort(),
		Revealer: NewRevealer(pageSize),
	}
}

// WithFilters recomputes the filtered view for criteria, re-sorts it and rewinds the revealer.
func (s CatalogState) WithFilters(items []models.Item, criteria models.FilterCriteria, opts FilterOptions) CatalogState {
	s.Criteria = criteria
	s.Filtered = Filter(items, criteria, opts)
	return s.WithSort(s.Sort)
}

// WithSort reorders the filtered view and rewinds the revealer.
// The receiver's Filtered is left untouched, so views taken from earlier states stay valid.
func (s CatalogState) WithSort(spec models.SortSpec) CatalogState {
	s.Sort = spec
	s.Filtered = slices.Clone(s.Filtered)
	Sort(s.Filtered, spec)
	s.Revealer.Reset()
	return s
}

// Visible returns the revealed prefix of the view.
func (s CatalogState) Visible() []models.Item {
	return s.Revealer.Window(s.Filtered)
}
