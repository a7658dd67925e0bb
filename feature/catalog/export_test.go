package catalog_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"

	"github.com/lithammer/dedent"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExportJSON(t *testing.T) {
	t.Run("RoundTripsFilteredView", func(t *testing.T) {
		stack := 20.0
		herb := newItem("Herb", "item")
		herb.StackSize = &stack
		herb.Crafts = []string{"Potion"}

		items := catalog.Filter(append(filterFixture(), herb), models.FilterCriteria{Categories: models.NewSet("item")}, catalog.DefaultFilterOptions())

		var buf bytes.Buffer
		require.NoError(t, catalog.ExportJSON(&buf, items))

		var doc catalog.ExportDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, items, doc.Items)
	})

	t.Run("Indentation", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, catalog.ExportJSON(&buf, []models.Item{newItem("A", "item")}))
		assert.Contains(t, buf.String(), "{\n  \"items\": [\n    {\n      \"id\": \"A\",")
	})

	t.Run("EmptyViewIsEmptyArray", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, catalog.ExportJSON(&buf, nil))
		assert.JSONEq(t, `{"items": []}`, buf.String())
	})
}

func TestExportCSV(t *testing.T) {
	t.Run("QuotesEveryField", func(t *testing.T) {
		it := newItem(`Sword "Edge"`, "weapon", withTier("25"), withPath("warrior", "knight"), withStat("STR", 4.0), withStat("AC", "1"))
		it.Enchants = []string{"fire", "ice"}
		it.Info = "line one\nline two"
		it.Obtain = []string{"Shop", "Quest"}

		var buf bytes.Buffer
		require.NoError(t, catalog.ExportCSV(&buf, []models.Item{it, newItem("Ore", "item")}))

		want := dedent.Dedent(`
			name,category,path,level_tier,stats,enchants,info,obtain
			"Sword ""Edge""","weapon","warrior; knight","25","STR:4; AC:1","fire; ice","line one line two","Shop; Quest"
			"Ore","item","","","","","",""`)
		assert.Equal(t, want[1:], buf.String())
	})

	t.Run("HeaderOnly", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, catalog.ExportCSV(&buf, nil))
		assert.Equal(t, "name,category,path,level_tier,stats,enchants,info,obtain", buf.String())
	})
}
