package catalog_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"catalog-browser/feature/catalog/models"

	"github.com/stretchr/testify/require"
)

type itemOpt func(*models.Item)

func newItem(name, category string, opts ...itemOpt) models.Item {
	it := models.Item{
		ID:       name,
		Name:     name,
		Category: category,
		Path:     []string{},
		Stats:    models.Stats{},
		Enchants: []string{},
		Obtain:   []string{},
	}
	for _, opt := range opts {
		opt(&it)
	}
	return it
}

func withTier(tier string) itemOpt {
	return func(it *models.Item) { it.LevelTier = tier }
}

func withPath(path ...string) itemOpt {
	return func(it *models.Item) { it.Path = path }
}

func withStat(key string, value any) itemOpt {
	return func(it *models.Item) { it.Stats.Set(key, value) }
}

func names(items []models.Item) []string {
	out := make([]string, len(items))
	for i, it := range items {
		out[i] = it.Name
	}
	return out
}

// writeCatalog lays out a data directory with a manifest and one file per chunk.
// A nil chunk value is written as the raw string stored under the same key in raw.
func writeCatalog(t *testing.T, chunks map[string][]map[string]any, raw map[string]string, order ...string) string {
	t.Helper()
	dir := t.TempDir()

	manifest, err := json.Marshal(models.Manifest{Files: order})
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "manifest.json"), manifest, 0o644))

	for name, items := range chunks {
		data, err := json.Marshal(map[string]any{"items": items})
		require.NoError(t, err)
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
	for name, body := range raw {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644))
	}
	return dir
}
