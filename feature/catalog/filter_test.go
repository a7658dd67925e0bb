package catalog_test

import (
	"testing"

	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"

	"github.com/stretchr/testify/assert"
)

func filterFixture() []models.Item {
	return []models.Item{
		newItem("Iron Sword", "weapon", withTier("25"), withPath("warrior")),
		newItem("Iron Helm", "helm", withTier("100+"), withPath("knight")),
		newItem("Wooden Staff", "weapon", withTier("7"), withPath("mage")),
		newItem("Iron Ore", "item", withTier("")),
		newItem("Plain Ring", "subaccessory", withTier("50")),
	}
}

func TestFilter(t *testing.T) {
	items := filterFixture()
	opts := catalog.DefaultFilterOptions()

	t.Run("EmptyCriteriaAcceptsEverything", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{}, opts)
		assert.Equal(t, names(items), names(got))
	})

	t.Run("QueryIsCaseInsensitiveSubstring", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Query: "  IRON "}, opts)
		assert.Equal(t, []string{"Iron Sword", "Iron Helm", "Iron Ore"}, names(got))
	})

	t.Run("Categories", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Categories: models.NewSet("weapon")}, opts)
		assert.Equal(t, []string{"Iron Sword", "Wooden Staff"}, names(got))
	})

	t.Run("ItemsWithoutPathAreExempt", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Paths: models.NewSet("mage")}, opts)
		assert.Equal(t, []string{"Wooden Staff", "Iron Ore", "Plain Ring"}, names(got))
	})

	t.Run("NumericTierTagGroupsDigitLevels", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Tiers: models.NewSet("1-99")}, opts)
		assert.Equal(t, []string{"Iron Sword", "Wooden Staff", "Iron Ore", "Plain Ring"}, names(got))
	})

	t.Run("LiteralTier", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Tiers: models.NewSet("100+")}, opts)
		assert.Equal(t, []string{"Iron Helm", "Iron Ore"}, names(got))
	})

	t.Run("ExemptCategoryIgnoresLevel", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{Tiers: models.NewSet("nonexistent")}, opts)
		assert.Equal(t, []string{"Iron Ore"}, names(got))
	})

	t.Run("ExemptCategoryWithLevel", func(t *testing.T) {
		tiered := []models.Item{
			newItem("Health Potion", "item", withTier("50")),
			newItem("Iron Sword", "weapon", withTier("50")),
		}

		got := catalog.Filter(tiered, models.FilterCriteria{}, opts)
		assert.Equal(t, []string{"Health Potion", "Iron Sword"}, names(got))

		got = catalog.Filter(tiered, models.FilterCriteria{Tiers: models.NewSet("100+")}, opts)
		assert.Equal(t, []string{"Health Potion"}, names(got))
	})

	t.Run("ClausesCombine", func(t *testing.T) {
		got := catalog.Filter(items, models.FilterCriteria{
			Query:      "iron",
			Categories: models.NewSet("weapon", "helm"),
			Tiers:      models.NewSet("1-99"),
		}, opts)
		assert.Equal(t, []string{"Iron Sword"}, names(got))
	})

	t.Run("DoesNotModifyInput", func(t *testing.T) {
		before := names(items)
		_ = catalog.Filter(items, models.FilterCriteria{Query: "staff"}, opts)
		assert.Equal(t, before, names(items))
	})

	t.Run("ConfigurableTag", func(t *testing.T) {
		custom := catalog.FilterOptions{NumericTierTag: "numeric", ExemptCategory: "none"}
		got := catalog.Filter(items, models.FilterCriteria{Tiers: models.NewSet("numeric")}, custom)
		assert.Equal(t, []string{"Iron Sword", "Wooden Staff", "Plain Ring"}, names(got))
	})
}

func TestMatchesNumericTier(t *testing.T) {
	opts := catalog.DefaultFilterOptions()
	tiers := models.FilterCriteria{Tiers: models.NewSet("1-99")}

	tests := []struct {
		tier string
		want bool
	}{
		{"1", true},
		{"99", true},
		{"100", true},
		{"1000", false},
		{"100+", false},
		{"", false},
		{"1a", false},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.tier, func(t *testing.T) {
			it := newItem("x", "weapon", withTier(tt.tier))
			assert.Equal(t, tt.want, catalog.Matches(it, "", tiers, opts))
		})
	}
}
