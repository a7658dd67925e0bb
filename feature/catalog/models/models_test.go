package models_test

import (
	"encoding/json"
	"testing"

	"catalog-browser/feature/catalog/models"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStats_OrderPreserved(t *testing.T) {
	var s models.Stats
	require.NoError(t, json.Unmarshal([]byte(`{"Vita":100,"AC":-5,"Mana":"12","AC":3}`), &s))

	assert.Equal(t, models.Stats{
		{Key: "Vita", Value: 100.0},
		{Key: "AC", Value: 3.0},
		{Key: "Mana", Value: "12"},
	}, s)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `{"Vita":100,"AC":3,"Mana":"12"}`, string(out))
	assert.Equal(t, "Vita:100|AC:3|Mana:12", s.Join("|"))
}

func TestStats_Unmarshal(t *testing.T) {
	t.Run("Null", func(t *testing.T) {
		s := models.Stats{{Key: "x", Value: 1.0}}
		require.NoError(t, json.Unmarshal([]byte(`null`), &s))
		assert.Equal(t, models.Stats{}, s)
	})

	t.Run("NotAnObject", func(t *testing.T) {
		var s models.Stats
		assert.Error(t, json.Unmarshal([]byte(`[1,2]`), &s))
	})
}

func TestStats_Get(t *testing.T) {
	s := models.Stats{{Key: "STR", Value: 4.0}}
	v, ok := s.Get("STR")
	assert.True(t, ok)
	assert.Equal(t, 4.0, v)

	_, ok = s.Get("str")
	assert.False(t, ok)
}

func TestRawRecord_Lenient(t *testing.T) {
	data := dedent.Dedent(`
		{
		  "id": 0,
		  "name": "Bone Helm",
		  "slot": "Helm",
		  "level_tier": 42,
		  "path": "Warrior",
		  "stats": {"AC": -2, "Vita": 30},
		  "enchants": "not a list",
		  "obtain": ["Drop: Skeleton"],
		  "stack_size": 0,
		  "effect": null,
		  "comments": ""
		}`)

	var r models.RawRecord
	require.NoError(t, json.Unmarshal([]byte(data), &r))

	assert.Equal(t, "", r.ID)
	assert.Equal(t, "Bone Helm", r.Name)
	assert.Equal(t, "Helm", r.Slot)
	assert.Equal(t, "42", r.LevelTier)
	assert.Equal(t, "Warrior", r.Path)
	assert.Equal(t, models.Stats{{Key: "AC", Value: -2.0}, {Key: "Vita", Value: 30.0}}, r.Stats)
	assert.Nil(t, r.Enchants)
	assert.Equal(t, []string{"Drop: Skeleton"}, r.Obtain)
	require.NotNil(t, r.StackSize)
	assert.Equal(t, 0.0, *r.StackSize)
	assert.Nil(t, r.Effect)
	require.NotNil(t, r.Comments)
	assert.Equal(t, "", *r.Comments)
	assert.Nil(t, r.NPCBuys)
}

func TestRawRecord_PathForms(t *testing.T) {
	tests := []struct {
		name string
		json string
		want any
	}{
		{"Array", `{"path":["Rogue",3]}`, []string{"Rogue", "3"}},
		{"Scalar", `{"path":"Mage"}`, "Mage"},
		{"Empty", `{"path":""}`, nil},
		{"Absent", `{}`, nil},
		{"False", `{"path":false}`, nil},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var r models.RawRecord
			require.NoError(t, json.Unmarshal([]byte(tt.json), &r))
			assert.Equal(t, tt.want, r.Path)
		})
	}
}

func TestRawRecord_RejectsNonObject(t *testing.T) {
	var r models.RawRecord
	assert.Error(t, json.Unmarshal([]byte(`"nope"`), &r))
}

func TestChunk_Decode(t *testing.T) {
	var c models.Chunk
	require.NoError(t, json.Unmarshal([]byte(`{"items":[{"name":"A"},{"name":"B"}]}`), &c))
	require.Len(t, c.Items, 2)
	assert.Equal(t, "B", c.Items[1].Name)
	assert.Zero(t, c.Skipped)

	t.Run("NonObjectEntriesAreSkipped", func(t *testing.T) {
		var c models.Chunk
		require.NoError(t, json.Unmarshal([]byte(`{"items":[{"name":"Iron Sword"},null,7,"x",{"name":"Health Potion"}]}`), &c))
		require.Len(t, c.Items, 2)
		assert.Equal(t, "Iron Sword", c.Items[0].Name)
		assert.Equal(t, "Health Potion", c.Items[1].Name)
		assert.Equal(t, 3, c.Skipped)
	})

	t.Run("MissingItems", func(t *testing.T) {
		var c models.Chunk
		require.NoError(t, json.Unmarshal([]byte(`{"items":null}`), &c))
		assert.Empty(t, c.Items)
	})

	t.Run("ItemsNotAList", func(t *testing.T) {
		var c models.Chunk
		assert.Error(t, json.Unmarshal([]byte(`{"items":{"name":"A"}}`), &c))
		assert.Error(t, json.Unmarshal([]byte(`[]`), &c))
	})
}

func TestRawRecord_NumericStrings(t *testing.T) {
	var r models.RawRecord
	require.NoError(t, json.Unmarshal([]byte(`{"stack_size":"5","npc_buys":" 12.5 ","crafts":[]}`), &r))
	require.NotNil(t, r.StackSize)
	assert.Equal(t, 5.0, *r.StackSize)
	require.NotNil(t, r.NPCBuys)
	assert.Equal(t, 12.5, *r.NPCBuys)

	require.NoError(t, json.Unmarshal([]byte(`{"stack_size":"many","npc_buys":""}`), &r))
	assert.Nil(t, r.StackSize)
	assert.Nil(t, r.NPCBuys)
}

func TestSet_JSON(t *testing.T) {
	var s models.Set
	require.NoError(t, json.Unmarshal([]byte(`["b","a","b"]`), &s))
	assert.True(t, s.Has("a"))
	assert.Len(t, s, 2)

	out, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `["a","b"]`, string(out))
}

func TestSortSpec(t *testing.T) {
	assert.Equal(t, models.Asc, models.SortSpec{Key: models.SortStat, StatKey: "AC", Direction: models.Desc}.EffectiveDirection())
	assert.Equal(t, models.Desc, models.SortSpec{Key: models.SortStat, StatKey: "STR", Direction: models.Desc}.EffectiveDirection())
	assert.Equal(t, models.Desc, models.SortSpec{Key: models.SortName, Direction: models.Desc}.EffectiveDirection())

	assert.Equal(t, models.Asc, models.DefaultStatDirection("AC"))
	assert.Equal(t, models.Desc, models.DefaultStatDirection("Vita"))
	assert.Equal(t, models.Asc, models.Desc.Toggle())
	assert.True(t, models.SortLevelTier.Valid())
	assert.False(t, models.SortKey("price").Valid())
}
