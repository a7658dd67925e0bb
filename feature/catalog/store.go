package catalog

import (
	"context"
	"errors"
	"sync"

	"catalog-browser/feature/catalog/models"
	"catalog-browser/feature/catalog/source"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// ErrNotLoaded is returned while no load cycle has succeeded yet.
var ErrNotLoaded = errors.New("catalog not loaded")

// Snapshot is one immutable load result. Items must not be modified.
type Snapshot struct {
	Items  []models.Item
	Report models.LoadReport
}

// Store holds the current catalog snapshot. A reload replaces it wholesale.
type Store struct {
	src    source.Source
	logger *zap.Logger

	mu       sync.RWMutex
	snapshot *Snapshot
	sf       singleflight.Group
}

// NewStore creates an empty store reading from src.
func NewStore(src source.Source, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{src: src, logger: logger}
}

// Snapshot returns the current snapshot, or ErrNotLoaded.
func (s *Store) Snapshot() (*Snapshot, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.snapshot == nil {
		return nil, ErrNotLoaded
	}
	return s.snapshot, nil
}

// Replace installs a snapshot built from already normalized items.
func (s *Store) Replace(items []models.Item, report models.LoadReport) *Snapshot {
	snap := &Snapshot{Items: items, Report: report}
	s.mu.Lock()
	s.snapshot = snap
	s.mu.Unlock()
	return snap
}

// Reload runs a full load cycle and swaps the snapshot in on success.
// Concurrent calls share one load. On a fatal error the previous snapshot stays in place.
func (s *Store) Reload(ctx context.Context) (*Snapshot, error) {
	v, err, _ := s.sf.Do("reload", func() (interface{}, error) {
		raws, report, err := Load(ctx, s.src, s.logger)
		if err != nil {
			s.logger.Error("Catalog load failed", zap.String("source", s.src.Describe()), zap.Error(err))
			return nil, err
		}

		snap := s.Replace(NormalizeAll(raws), report)
		s.logger.Info("Catalog loaded",
			zap.Int("items", len(snap.Items)),
			zap.Int("chunks_loaded", report.ChunksLoaded),
			zap.Int("chunks_failed", report.ChunksFailed),
			zap.Duration("duration", report.Duration))
		return snap, nil
	})
	if err != nil {
		return nil, err
	}
	return v.(*Snapshot), nil
}
