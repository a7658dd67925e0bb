package catalog

import (
	"strings"

	"catalog-browser/feature/catalog/models"
)

// FilterOptions carries the taxonomy-specific parts of the level rule.
type FilterOptions struct {
	// NumericTierTag is the accepted-tier tag that groups every numeric level (1 to 3 digits).
	NumericTierTag string
	// ExemptCategory is never filtered by level.
	ExemptCategory string
}

// DefaultFilterOptions matches the game's tier checkboxes.
func DefaultFilterOptions() FilterOptions {
	return FilterOptions{
		NumericTierTag: "1-99",
		ExemptCategory: models.CategoryItem,
	}
}

// Filter returns the items matching every clause of c, in input order.
// The input slice is never modified.
func Filter(items []models.Item, c models.FilterCriteria, opts FilterOptions) []models.Item {
	q := strings.ToLower(strings.TrimSpace(c.Query))

	out := make([]models.Item, 0, len(items))
	for _, it := range items {
		if Matches(it, q, c, opts) {
			out = append(out, it)
		}
	}
	return out
}

// Matches evaluates the filter predicate for one item. q must already be trimmed and lower-cased.
func Matches(it models.Item, q string, c models.FilterCriteria, opts FilterOptions) bool {
	if q != "" && !strings.Contains(strings.ToLower(it.Name), q) {
		return false
	}

	if len(c.Categories) > 0 && !c.Categories.Has(it.Category) {
		return false
	}

	// Items without path tags are exempt from path filtering.
	if len(it.Path) > 0 && len(c.Paths) > 0 && !anyIn(it.Path, c.Paths) {
		return false
	}

	return levelMatches(it, c.Tiers, opts)
}

func levelMatches(it models.Item, tiers models.Set, opts FilterOptions) bool {
	if it.Category == opts.ExemptCategory || len(tiers) == 0 {
		return true
	}
	if tiers.Has(it.LevelTier) {
		return true
	}
	return opts.NumericTierTag != "" && tiers.Has(opts.NumericTierTag) && isNumericTier(it.LevelTier)
}

// isNumericTier reports whether tier is 1 to 3 ASCII digits.
func isNumericTier(tier string) bool {
	if len(tier) < 1 || len(tier) > 3 {
		return false
	}
	for i := 0; i < len(tier); i++ {
		if tier[i] < '0' || tier[i] > '9' {
			return false
		}
	}
	return true
}

func anyIn(values []string, set models.Set) bool {
	for _, v := range values {
		if set.Has(v) {
			return true
		}
	}
	return false
}
