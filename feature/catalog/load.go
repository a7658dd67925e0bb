package catalog

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"catalog-browser/feature/catalog/models"
	"catalog-browser/feature/catalog/source"

	"go.uber.org/zap"
)

// ManifestName is the manifest file name, relative to the data root.
const ManifestName = "manifest.json"

// ErrManifest marks a fatal load failure: without a manifest there is no catalog.
var ErrManifest = errors.New("failed to load catalog manifest")

// Load fetches the manifest and then every chunk it lists, one at a time and in manifest order.
//
// A chunk that cannot be fetched or decoded is skipped with a warning and recorded in the report;
// only a missing or malformed manifest aborts the load.
func Load(ctx context.Context, src source.Source, logger *zap.Logger) ([]models.RawRecord, models.LoadReport, error) {
	start := time.Now()
	report := models.LoadReport{FailedChunks: []string{}}

	logger.Debug("Loading manifest", zap.String("source", src.Describe()))
	manifest, err := loadManifest(ctx, src)
	if err != nil {
		return nil, report, err
	}
	report.Files = manifest.Files

	logger.Info("Loading catalog chunks", zap.Int("files", len(manifest.Files)))

	var records []models.RawRecord
	for _, file := range manifest.Files {
		if err := ctx.Err(); err != nil {
			return nil, report, err
		}

		chunk, err := loadChunk(ctx, src, file)
		if err != nil {
			logger.Warn("Skipping catalog chunk", zap.String("file", file), zap.Error(err))
			report.ChunksFailed++
			report.FailedChunks = append(report.FailedChunks, file)
			continue
		}

		logger.Debug("Chunk loaded",
			zap.String("file", file),
			zap.Int("count", len(chunk.Items)),
			zap.Int("skipped", chunk.Skipped))
		records = append(records, chunk.Items...)
		report.ChunksLoaded++
	}

	report.TotalRecords = len(records)
	report.Empty = len(records) == 0
	report.LoadedAt = time.Now()
	report.Duration = time.Since(start)

	if report.Empty {
		logger.Warn("Catalog loaded without any items",
			zap.Int("chunks_loaded", report.ChunksLoaded),
			zap.Int("chunks_failed", report.ChunksFailed))
	}

	return records, report, nil
}

func loadManifest(ctx context.Context, src source.Source) (models.Manifest, error) {
	var manifest models.Manifest

	data, err := source.ReadAll(ctx, src, ManifestName)
	if err != nil {
		return manifest, fmt.Errorf("%w: %w", ErrManifest, err)
	}
	if err := json.Unmarshal(data, &manifest); err != nil {
		return manifest, fmt.Errorf("%w: malformed json: %w", ErrManifest, err)
	}
	return manifest, nil
}

func loadChunk(ctx context.Context, src source.Source, file string) (models.Chunk, error) {
	var chunk models.Chunk

	data, err := source.ReadAll(ctx, src, file)
	if err != nil {
		return chunk, err
	}
	if err := json.Unmarshal(data, &chunk); err != nil {
		return chunk, fmt.Errorf("malformed chunk %s: %w", file, err)
	}
	return chunk, nil
}
