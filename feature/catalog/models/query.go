package models

import (
	"encoding/json"
	"sort"
)

// Set is a set of accepted tokens for one filter dimension.
type Set map[string]struct{}

// NewSet builds a set from values.
func NewSet(values ...string) Set {
	s := make(Set, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Has reports whether v is in the set.
func (s Set) Has(v string) bool {
	_, ok := s[v]
	return ok
}

// Values returns the members sorted.
func (s Set) Values() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}

// MarshalJSON writes the set as a sorted array.
func (s Set) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.Values())
}

// UnmarshalJSON reads the set from an array of strings.
func (s *Set) UnmarshalJSON(data []byte) error {
	var values []string
	if err := json.Unmarshal(data, &values); err != nil {
		return err
	}
	*s = NewSet(values...)
	return nil
}

// FilterCriteria is the filter input derived from UI state each time filters run.
// An empty set accepts everything for its dimension.
type FilterCriteria struct {
	Query      string `json:"query"`
	Categories Set    `json:"categories"`
	Paths      Set    `json:"paths"`
	Tiers      Set    `json:"tiers"`
}

// IsZero reports whether the criteria accept every item.
func (c FilterCriteria) IsZero() bool {
	return c.Query == "" && len(c.Categories) == 0 && len(c.Paths) == 0 && len(c.Tiers) == 0
}

// SortKey names the column the view is ordered by.
type SortKey string

const (
	SortName      SortKey = "name"
	SortCategory  SortKey = "category"
	SortPath      SortKey = "path"
	SortLevelTier SortKey = "level_tier"
	SortStats     SortKey = "stats"
	SortEnchants  SortKey = "enchants"
	SortInfo      SortKey = "info"
	SortObtain    SortKey = "obtain"
	// SortStat orders by one numeric stat named in SortSpec.StatKey.
	SortStat SortKey = "stat"
)

// Valid reports whether k is a known sort key.
func (k SortKey) Valid() bool {
	switch k {
	case SortName, SortCategory, SortPath, SortLevelTier, SortStats, SortEnchants, SortInfo, SortObtain, SortStat:
		return true
	}
	return false
}

// Direction is the sort direction.
type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// Toggle returns the opposite direction.
func (d Direction) Toggle() Direction {
	if d == Asc {
		return Desc
	}
	return Asc
}

// Sign is +1 for ascending and -1 for descending.
func (d Direction) Sign() int {
	if d == Desc {
		return -1
	}
	return 1
}

// StatAC is the armor class stat: lower is better, so it always sorts ascending.
const StatAC = "AC"

// SortSpec selects the ordering of the filtered view.
type SortSpec struct {
	Key       SortKey   `json:"key"`
	Direction Direction `json:"direction"`
	// StatKey is only meaningful when Key is SortStat.
	StatKey string `json:"stat_key,omitempty"`
}

// DefaultSort is name ascending.
func DefaultSort() SortSpec {
	return SortSpec{Key: SortName, Direction: Asc}
}

// EffectiveDirection is the direction actually applied: AC stat sorts ignore Direction.
func (s SortSpec) EffectiveDirection() Direction {
	if s.Key == SortStat && s.StatKey == StatAC {
		return Asc
	}
	return s.Direction
}

// DefaultStatDirection is the direction a stat sort starts with.
func DefaultStatDirection(stat string) Direction {
	if stat == StatAC {
		return Asc
	}
	return Desc
}
