package catalog

import "catalog-browser/feature/catalog/models"

// DefaultPageSize is the number of rows revealed per page.
const DefaultPageSize = 20

// Revealer exposes a growing prefix of the filtered view.
type Revealer struct {
	Page     int `json:"page"`
	PageSize int `json:"page_size"`
}

// NewRevealer starts at page 1. A non-positive size falls back to DefaultPageSize.
func NewRevealer(pageSize int) Revealer {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return Revealer{Page: 1, PageSize: pageSize}
}

// VisibleCount is min(total, page*pageSize).
// A zero Revealer behaves like NewRevealer(DefaultPageSize).
func (r Revealer) VisibleCount(total int) int {
	return min(total, r.page()*r.size())
}

// Advance reveals one more page if anything is still hidden.
// It returns false when the signal was a no-op.
func (r *Revealer) Advance(total int) bool {
	if r.VisibleCount(total) >= total {
		return false
	}
	r.Page = r.page() + 1
	return true
}

func (r Revealer) page() int {
	return max(r.Page, 1)
}

func (r Revealer) size() int {
	if r.PageSize <= 0 {
		return DefaultPageSize
	}
	return r.PageSize
}

// Reset goes back to the first page.
func (r *Revealer) Reset() {
	r.Page = 1
}

// Window returns the revealed prefix of items.
func (r Revealer) Window(items []models.Item) []models.Item {
	return items[:r.VisibleCount(len(items))]
}
