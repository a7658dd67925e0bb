package catalog_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"
	"catalog-browser/feature/catalog/source"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() catalog.Config {
	return catalog.Config{
		PageSize:          2,
		NumericTierTag:    "1-99",
		ExemptCategory:    "item",
		SessionTTLMinutes: 30,
	}
}

func fixtureCatalog(t *testing.T) string {
	t.Helper()
	return writeCatalog(t, map[string][]map[string]any{
		"a.json": {
			{"name": "Iron Sword", "category": "weapon", "level_tier": "25", "stats": map[string]any{"STR": 4}},
			{"name": "Iron Helm", "slot": "helm", "level_tier": "100+", "stats": map[string]any{"AC": 3}},
		},
		"b.json": {
			{"name": "Leather Cap", "slot": "head", "level_tier": "5", "stats": map[string]any{"AC": 1}},
			{"name": "Iron Ore", "slot": "ore"},
		},
	}, nil, "a.json", "b.json")
}

func loadedService(t *testing.T) (*catalog.Service, string) {
	t.Helper()
	dir := fixtureCatalog(t)
	svc := catalog.NewService(catalog.NewStore(source.NewDirSource(dir), zap.NewNop()), testConfig(), zap.NewNop())
	_, err := svc.Reload(context.Background())
	require.NoError(t, err)
	return svc, dir
}

func TestServiceSessions(t *testing.T) {
	svc, _ := loadedService(t)

	id, view, err := svc.CreateSession(nil)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	assert.Equal(t, 4, view.Total)
	assert.Equal(t, 2, view.Visible)
	assert.Equal(t, []string{"Iron Helm", "Iron Ore"}, names(view.Items))

	t.Run("Filters", func(t *testing.T) {
		view, err := svc.ApplyFilters(id, models.FilterCriteria{Query: "iron", Tiers: models.NewSet("1-99")})
		require.NoError(t, err)
		assert.Equal(t, []string{"Iron Ore", "Iron Sword"}, names(view.Items))
	})

	t.Run("StatClick", func(t *testing.T) {
		_, err := svc.ApplyFilters(id, models.FilterCriteria{})
		require.NoError(t, err)

		view, err := svc.ClickStat(id, "AC", false)
		require.NoError(t, err)
		assert.Equal(t, []string{"Leather Cap", "Iron Helm"}, names(view.Items))
		assert.Equal(t, "Sorted by AC ↑", view.SortIndicator)

		_, err = svc.ClickStat(id, "", false)
		assert.ErrorIs(t, err, catalog.ErrInvalidInput)
	})

	t.Run("Reveal", func(t *testing.T) {
		view, err := svc.Reveal(id)
		require.NoError(t, err)
		assert.Equal(t, 4, view.Visible)
		assert.False(t, view.HasMore)
	})

	t.Run("Reset", func(t *testing.T) {
		view, err := svc.Reset(id)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSort(), view.Sort)
		assert.Equal(t, 1, view.Page)
	})

	t.Run("SessionsAreIndependent", func(t *testing.T) {
		other, _, err := svc.CreateSession(&models.SortSpec{Key: models.SortName, Direction: models.Desc})
		require.NoError(t, err)

		_, err = svc.SelectColumn(other, models.SortCategory)
		require.NoError(t, err)

		view, err := svc.View(id)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultSort(), view.Sort)
		assert.Equal(t, 2, svc.Status().Sessions)
	})

	t.Run("Close", func(t *testing.T) {
		require.NoError(t, svc.CloseSession(id))
		_, err := svc.View(id)
		assert.ErrorIs(t, err, catalog.ErrSessionNotFound)
		assert.ErrorIs(t, svc.CloseSession(id), catalog.ErrSessionNotFound)
	})
}

func TestServiceNotLoaded(t *testing.T) {
	svc := catalog.NewService(catalog.NewStore(source.NewDirSource(t.TempDir()), nil), testConfig(), nil)

	_, _, err := svc.CreateSession(nil)
	assert.ErrorIs(t, err, catalog.ErrNotLoaded)
	assert.False(t, svc.Status().Loaded)

	_, err = svc.Reload(context.Background())
	assert.ErrorIs(t, err, catalog.ErrManifest)
}

func TestServiceReloadRefreshesSessions(t *testing.T) {
	svc, dir := loadedService(t)

	id, _, err := svc.CreateSession(nil)
	require.NoError(t, err)
	_, err = svc.ApplyFilters(id, models.FilterCriteria{Query: "iron"})
	require.NoError(t, err)

	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), []byte(`{"files":["c.json"]}`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "c.json"), []byte(`{"items":[{"name":"Iron Bar"},{"name":"Gold Bar"}]}`), 0o644))

	_, err = svc.Reload(context.Background())
	require.NoError(t, err)

	view, err := svc.View(id)
	require.NoError(t, err)
	assert.Equal(t, []string{"Iron Bar"}, names(view.Items))
	assert.Equal(t, "iron", view.Criteria.Query)
	assert.Equal(t, 2, svc.Status().Items)
}

func TestServiceExport(t *testing.T) {
	svc, _ := loadedService(t)
	id, _, err := svc.CreateSession(nil)
	require.NoError(t, err)

	_, err = svc.ApplyFilters(id, models.FilterCriteria{Query: "iron"})
	require.NoError(t, err)

	t.Run("JSONContainsWholeFilteredView", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Export(id, "json", &buf))

		var doc catalog.ExportDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))
		assert.Equal(t, []string{"Iron Helm", "Iron Ore", "Iron Sword"}, names(doc.Items))
	})

	t.Run("CSV", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, svc.Export(id, "csv", &buf))
		assert.Contains(t, buf.String(), `"Iron Sword","weapon","","25","STR:4","","",""`)
	})

	t.Run("UnknownFormat", func(t *testing.T) {
		assert.ErrorIs(t, svc.Export(id, "xml", &bytes.Buffer{}), catalog.ErrUnknownFormat)
	})
}

// Run with -race: exports and views of a session are read after its lock is released.
func TestServiceConcurrentSessionUse(t *testing.T) {
	svc, _ := loadedService(t)

	id, _, err := svc.CreateSession(nil)
	require.NoError(t, err)

	var wg sync.WaitGroup
	wg.Add(3)
	go func() {
		defer wg.Done()
		for n := 0; n < 50; n++ {
			assert.NoError(t, svc.Export(id, "json", io.Discard))
		}
	}()
	go func() {
		defer wg.Done()
		for n := 0; n < 50; n++ {
			view, err := svc.View(id)
			if assert.NoError(t, err) {
				_, err = json.Marshal(view)
				assert.NoError(t, err)
			}
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 50; i++ {
			_, err := svc.ClickStat(id, "STR", i%2 == 0)
			assert.NoError(t, err)
		}
	}()
	wg.Wait()

	view, err := svc.View(id)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Total)
}
