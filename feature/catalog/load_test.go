package catalog_test

import (
	"bytes"
	"context"
	"io"
	"testing"

	"catalog-browser/core/storage/mocks"
	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"
	"catalog-browser/feature/catalog/source"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestLoad(t *testing.T) {
	ctx := context.Background()

	t.Run("ChunksInManifestOrder", func(t *testing.T) {
		dir := writeCatalog(t, map[string][]map[string]any{
			"b.json": {{"name": "Second"}},
			"a.json": {{"name": "First"}, {"name": "Also First"}},
		}, nil, "a.json", "b.json")

		raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.NewNop())
		require.NoError(t, err)

		assert.Len(t, raws, 3)
		assert.Equal(t, "First", raws[0].Name)
		assert.Equal(t, "Second", raws[2].Name)
		assert.Equal(t, 2, report.ChunksLoaded)
		assert.Equal(t, 0, report.ChunksFailed)
		assert.Equal(t, 3, report.TotalRecords)
		assert.False(t, report.Degraded())
	})

	t.Run("FailedChunksAreSkipped", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)

		dir := writeCatalog(t, map[string][]map[string]any{
			"a.json": {{"name": "Kept"}},
		}, map[string]string{
			"bad.json": `{"items": [`,
		}, "a.json", "missing.json", "bad.json")

		raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.New(core))
		require.NoError(t, err)

		assert.Len(t, raws, 1)
		assert.Equal(t, 1, report.ChunksLoaded)
		assert.Equal(t, 2, report.ChunksFailed)
		assert.Equal(t, []string{"missing.json", "bad.json"}, report.FailedChunks)
		assert.True(t, report.Degraded())
		assert.Equal(t, 2, logs.FilterMessage("Skipping catalog chunk").Len())
	})

	t.Run("NonObjectRecordsKeepTheChunk", func(t *testing.T) {
		dir := writeCatalog(t, nil, map[string]string{
			"a.json": `{"items":[{"name":"Iron Sword"},null,{"name":"Health Potion"}]}`,
		}, "a.json")

		raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.NewNop())
		require.NoError(t, err)

		require.Len(t, raws, 2)
		assert.Equal(t, "Health Potion", raws[1].Name)
		assert.Equal(t, 1, report.ChunksLoaded)
		assert.Equal(t, 0, report.ChunksFailed)
		assert.Empty(t, report.FailedChunks)
	})

	t.Run("LoadNormalizeFilter", func(t *testing.T) {
		dir := writeCatalog(t, map[string][]map[string]any{
			"weapons.json": {{"name": "Iron Sword", "category": "weapon", "level_tier": "30"}},
			"items.json":   {{"name": "Health Potion", "category": "item", "level_tier": ""}},
		}, nil, "weapons.json", "items.json")

		raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, 2, report.ChunksLoaded)

		items := catalog.NormalizeAll(raws)
		got := catalog.Filter(items, models.FilterCriteria{Query: "iron"}, catalog.DefaultFilterOptions())
		assert.Equal(t, []string{"Iron Sword"}, names(got))
	})

	t.Run("MissingManifestIsFatal", func(t *testing.T) {
		_, _, err := catalog.Load(ctx, source.NewDirSource(t.TempDir()), zap.NewNop())
		assert.ErrorIs(t, err, catalog.ErrManifest)
		assert.ErrorIs(t, err, source.ErrNotFound)
	})

	t.Run("MalformedManifestIsFatal", func(t *testing.T) {
		dir := writeCatalog(t, nil, map[string]string{"manifest.json": "not json"})
		_, _, err := catalog.Load(ctx, source.NewDirSource(dir), zap.NewNop())
		assert.ErrorIs(t, err, catalog.ErrManifest)
	})

	t.Run("EmptyCatalogWarns", func(t *testing.T) {
		core, logs := observer.New(zapcore.WarnLevel)
		dir := writeCatalog(t, map[string][]map[string]any{"a.json": {}}, nil, "a.json")

		raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.New(core))
		require.NoError(t, err)
		assert.Empty(t, raws)
		assert.True(t, report.Empty)
		assert.Equal(t, 1, logs.FilterMessage("Catalog loaded without any items").Len())
	})

	t.Run("FromStorage", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalog", "data/manifest.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"files":["otk-items-chunk-1.json"]}`))), nil)
		client.On("GetObject", mock.Anything, "catalog", "data/otk-items-chunk-1.json", mock.Anything).
			Return(io.NopCloser(bytes.NewReader([]byte(`{"items":[{"name":"Iron Ore","slot":"ore"}]}`))), nil)

		raws, report, err := catalog.Load(ctx, source.NewStorageSource(client, "catalog", "data"), zap.NewNop())
		require.NoError(t, err)
		require.Len(t, raws, 1)
		assert.Equal(t, "Iron Ore", raws[0].Name)
		assert.Equal(t, 1, report.ChunksLoaded)
		client.AssertExpectations(t)
	})

	t.Run("StorageMissingObject", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("GetObject", mock.Anything, "catalog", "data/manifest.json", mock.Anything).
			Return(nil, minio.ErrorResponse{Code: "NoSuchKey", StatusCode: 404})

		_, _, err := catalog.Load(ctx, source.NewStorageSource(client, "catalog", "data"), zap.NewNop())
		assert.ErrorIs(t, err, catalog.ErrManifest)
	})
}
