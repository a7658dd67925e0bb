package catalog

import (
	"sort"
	"strings"

	"catalog-browser/core/utils"
	"catalog-browser/feature/catalog/models"
)

const (
	// missingACValue ranks items without AC last in the (always ascending) AC order.
	missingACValue = 9999
	// missingStatValue ranks items without the stat last in a descending order.
	missingStatValue = -9999
)

// Sort orders items in place. Equal keys keep their relative order.
func Sort(items []models.Item, spec models.SortSpec) {
	if spec.Key == models.SortStat {
		sortByStat(items, spec)
		return
	}
	sortByField(items, spec)
}

func sortByStat(items []models.Item, spec models.SortSpec) {
	sign := float64(spec.EffectiveDirection().Sign())

	keys := make([]float64, len(items))
	for i := range items {
		keys[i] = StatValue(items[i], spec.StatKey)
	}

	sort.Stable(&byKey[float64]{items: items, keys: keys, less: func(a, b float64) bool {
		return a*sign < b*sign
	}})
}

func sortByField(items []models.Item, spec models.SortSpec) {
	sign := spec.EffectiveDirection().Sign()

	keys := make([]string, len(items))
	for i := range items {
		keys[i] = strings.ToLower(FieldValue(items[i], spec.Key))
	}

	sort.Stable(&byKey[string]{items: items, keys: keys, less: func(a, b string) bool {
		return strings.Compare(a, b)*sign < 0
	}})
}

// StatValue is the numeric sort key of item for stat. Missing and non-numeric values take the
// sentinel for that stat.
func StatValue(item models.Item, stat string) float64 {
	missing := float64(missingStatValue)
	if stat == models.StatAC {
		missing = missingACValue
	}

	raw, ok := item.Stats.Get(stat)
	if !ok {
		return missing
	}
	f, ok := utils.ToFloat(raw)
	if !ok {
		return missing
	}
	return f
}

// FieldValue is the string a field sort compares, before lower-casing.
func FieldValue(item models.Item, key models.SortKey) string {
	switch key {
	case models.SortName:
		return item.Name
	case models.SortCategory:
		return item.Category
	case models.SortLevelTier:
		return item.LevelTier
	case models.SortInfo:
		return item.Info
	case models.SortStats:
		return item.Stats.Join("|")
	case models.SortPath:
		return strings.Join(item.Path, "|")
	case models.SortEnchants:
		return strings.Join(item.Enchants, "|")
	case models.SortObtain:
		return strings.Join(item.Obtain, "|")
	default:
		return ""
	}
}

// byKey sorts items and their precomputed keys together.
type byKey[K any] struct {
	items []models.Item
	keys  []K
	less  func(a, b K) bool
}

func (s *byKey[K]) Len() int           { return len(s.items) }
func (s *byKey[K]) Less(i, j int) bool { return s.less(s.keys[i], s.keys[j]) }
func (s *byKey[K]) Swap(i, j int) {
	s.items[i], s.items[j] = s.items[j], s.items[i]
	s.keys[i], s.keys[j] = s.keys[j], s.keys[i]
}
