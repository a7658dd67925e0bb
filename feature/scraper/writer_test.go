package scraper_test

import (
	"context"
	"fmt"
	"testing"

	"catalog-browser/core/storage/mocks"
	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/source"
	"catalog-browser/feature/scraper"

	"github.com/minio/minio-go/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func records(n int) []scraper.Record {
	out := make([]scraper.Record, n)
	for i := range out {
		out[i] = scraper.Record{ID: fmt.Sprintf("item_%d", i), Name: fmt.Sprintf("Item %d", i), Category: "item"}
	}
	return out
}

func TestChunks(t *testing.T) {
	chunks := scraper.Chunks(records(5), 2, "otk-items-chunk-")
	require.Len(t, chunks, 3)
	assert.Equal(t, "otk-items-chunk-1.json", chunks[0].Name)
	assert.Equal(t, "otk-items-chunk-3.json", chunks[2].Name)
	assert.Len(t, chunks[2].Items, 1)

	assert.Len(t, scraper.Chunks(records(3), 0, "c-"), 3)
	assert.Empty(t, scraper.Chunks(nil, 80, "c-"))
}

func TestWriteCatalogIsLoadable(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	manifest, err := scraper.WriteCatalog(ctx, scraper.NewDirWriter(dir), scraper.Chunks(records(5), 2, "chunk-"))
	require.NoError(t, err)
	assert.Equal(t, []string{"chunk-1.json", "chunk-2.json", "chunk-3.json"}, manifest.Files)

	raws, report, err := catalog.Load(ctx, source.NewDirSource(dir), zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, raws, 5)
	assert.Equal(t, 3, report.ChunksLoaded)

	items := catalog.NormalizeAll(raws)
	assert.Equal(t, "item_0", items[0].ID)
	assert.Equal(t, "item", items[0].Category)
}

func TestStorageWriter(t *testing.T) {
	client := new(mocks.Client)
	client.On("BucketExists", mock.Anything, "catalog").Return(true, nil)
	client.On("PutObject", mock.Anything, "catalog", "data/chunk-1.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()
	client.On("PutObject", mock.Anything, "catalog", "data/manifest.json", mock.Anything, mock.Anything, mock.Anything).
		Return(minio.UploadInfo{}, nil).Once()

	w := scraper.NewStorageWriter(client, "catalog", "data")
	_, err := scraper.WriteCatalog(context.Background(), w, scraper.Chunks(records(1), 80, "chunk-"))
	require.NoError(t, err)
	assert.Equal(t, "storage:catalog/data", w.Describe())
	client.AssertExpectations(t)
}
