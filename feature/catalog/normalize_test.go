package catalog_test

import (
	"encoding/json"
	"testing"

	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeRaw(t *testing.T, data string) models.RawRecord {
	t.Helper()
	var raw models.RawRecord
	require.NoError(t, json.Unmarshal([]byte(data), &raw))
	return raw
}

func TestNormalize(t *testing.T) {
	t.Run("EmptyRecord", func(t *testing.T) {
		it := catalog.Normalize(decodeRaw(t, `{}`))

		assert.NotEmpty(t, it.ID)
		assert.Equal(t, "", it.Name)
		assert.Equal(t, models.CategoryItem, it.Category)
		assert.Equal(t, []string{}, it.Path)
		assert.Equal(t, "", it.LevelTier)
		assert.Equal(t, models.Stats{}, it.Stats)
		assert.Equal(t, []string{}, it.Enchants)
		assert.Equal(t, []string{}, it.Obtain)
		assert.Nil(t, it.StackSize)
		assert.Nil(t, it.Crafts)
		assert.Nil(t, it.Effect)
	})

	t.Run("GeneratedIDsAreUnique", func(t *testing.T) {
		a := catalog.Normalize(models.RawRecord{Name: "A"})
		b := catalog.Normalize(models.RawRecord{Name: "A"})
		assert.NotEqual(t, a.ID, b.ID)
	})

	t.Run("KeepsExplicitFields", func(t *testing.T) {
		it := catalog.Normalize(decodeRaw(t, `{
			"id": "iron-sword",
			"name": "Iron Sword",
			"category": "Weapon",
			"path": ["Warrior", "KNIGHT"],
			"level_tier": " 25 ",
			"stats": {"STR": 4, "AC": "2"},
			"enchants": ["Sharp"],
			"info": "A sword",
			"obtain": ["Shop"]
		}`))

		assert.Equal(t, "iron-sword", it.ID)
		assert.Equal(t, "weapon", it.Category)
		assert.Equal(t, []string{"warrior", "knight"}, it.Path)
		assert.Equal(t, "25", it.LevelTier)
		assert.Equal(t, []string{"STR:4", "AC:2"}, it.Stats.Pairs())
		assert.Equal(t, []string{"Sharp"}, it.Enchants)
		assert.Equal(t, []string{"Shop"}, it.Obtain)
	})

	t.Run("ScalarPathIsWrapped", func(t *testing.T) {
		it := catalog.Normalize(decodeRaw(t, `{"name": "Cap", "path": "Mage"}`))
		assert.Equal(t, []string{"mage"}, it.Path)
	})

	t.Run("ConsumableFields", func(t *testing.T) {
		it := catalog.Normalize(decodeRaw(t, `{
			"name": "Herb",
			"stack_size": 50,
			"crafts": ["Potion"],
			"other_uses": [],
			"effect": "Heals",
			"npc_buys": 3
		}`))

		require.NotNil(t, it.StackSize)
		assert.Equal(t, 50.0, *it.StackSize)
		assert.Equal(t, []string{"Potion"}, it.Crafts)
		assert.Nil(t, it.OtherUses)
		require.NotNil(t, it.Effect)
		assert.Equal(t, "Heals", *it.Effect)
		require.NotNil(t, it.NPCBuys)
		assert.Equal(t, 3.0, *it.NPCBuys)
		assert.Nil(t, it.Comments)
	})

	t.Run("NormalizeAllKeepsOrder", func(t *testing.T) {
		items := catalog.NormalizeAll([]models.RawRecord{{Name: "b"}, {Name: "a"}, {Name: "c"}})
		assert.Equal(t, []string{"b", "a", "c"}, names(items))
	})
}

func TestInferCategory(t *testing.T) {
	tests := []struct {
		name string
		raw  models.RawRecord
		want string
	}{
		{"ExplicitCategoryWins", models.RawRecord{Category: "Armor", Slot: "head"}, "armor"},
		{"KnownSlot", models.RawRecord{Slot: "Shield"}, "shield"},
		{"SubaccessorySlot", models.RawRecord{Slot: "subaccessory"}, "subaccessory"},
		{"UnknownSlot", models.RawRecord{Slot: "ring"}, models.CategoryItem},
		{"NoSlot", models.RawRecord{}, models.CategoryItem},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, catalog.InferCategory(tt.raw))
		})
	}
}
