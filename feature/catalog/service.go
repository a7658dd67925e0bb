package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"catalog-browser/core/logger"
	"catalog-browser/feature/catalog/models"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrSessionNotFound is returned for unknown or expired view sessions.
var ErrSessionNotFound = errors.New("view session not found")

// ErrUnknownFormat is returned for unsupported export formats.
var ErrUnknownFormat = errors.New("unknown export format")

// Status summarises the loaded catalog.
type Status struct {
	Loaded   bool               `json:"loaded"`
	Items    int                `json:"items"`
	Sessions int                `json:"sessions"`
	Report   *models.LoadReport `json:"report,omitempty"`
}

type session struct {
	// mu guards ctrl and snapshot; lastSeen is guarded by Service.mu.
	mu       sync.Mutex
	ctrl     *Controller
	snapshot *Snapshot
	lastSeen time.Time
}

// Service serves catalog views. The item set is shared; each session owns its own Controller.
type Service struct {
	store  *Store
	cfg    Config
	logger *zap.Logger
	now    func() time.Time

	mu       sync.Mutex
	sessions map[string]*session
}

// NewService creates a catalog service over store.
func NewService(store *Store, cfg Config, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{
		store:    store,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
		sessions: make(map[string]*session),
	}
}

// Reload rebuilds the catalog from its source. Sessions pick the new items up on their next access.
func (s *Service) Reload(ctx context.Context) (models.LoadReport, error) {
	snap, err := s.store.Reload(ctx)
	if err != nil {
		return models.LoadReport{}, err
	}
	return snap.Report, nil
}

// Status reports the load state.
func (s *Service) Status() Status {
	s.mu.Lock()
	st := Status{Sessions: len(s.sessions)}
	s.mu.Unlock()

	snap, err := s.store.Snapshot()
	if err != nil {
		return st
	}
	report := snap.Report
	st.Loaded = true
	st.Items = len(snap.Items)
	st.Report = &report
	return st
}

// CreateSession opens a view session, optionally starting from a saved sort.
func (s *Service) CreateSession(initial *models.SortSpec) (string, View, error) {
	snap, err := s.store.Snapshot()
	if err != nil {
		return "", View{}, err
	}

	ctrl := NewController(snap.Items, s.cfg.ControllerConfig())
	if initial != nil {
		if err := ctrl.SetSort(*initial); err != nil {
			return "", View{}, err
		}
	}

	id := uuid.NewString()
	now := s.now()

	s.mu.Lock()
	s.evictLocked(now)
	s.sessions[id] = &session{ctrl: ctrl, snapshot: snap, lastSeen: now}
	s.mu.Unlock()

	logger.WithSession(s.logger, id).Debug("View session created", zap.Int("items", len(snap.Items)))
	return id, ctrl.View(), nil
}

// CloseSession drops a view session.
func (s *Service) CloseSession(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.sessions[id]; !ok {
		return ErrSessionNotFound
	}
	delete(s.sessions, id)
	return nil
}

// View returns the current view of a session.
func (s *Service) View(id string) (View, error) {
	return s.withSession(id, func(c *Controller) error { return nil })
}

// ApplyFilters replaces the session's filter criteria.
func (s *Service) ApplyFilters(id string, criteria models.FilterCriteria) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		c.ApplyFilters(criteria)
		return nil
	})
}

// SelectColumn applies a column header click.
func (s *Service) SelectColumn(id string, key models.SortKey) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		return c.SelectColumn(key)
	})
}

// ClickStat applies a stat badge click.
func (s *Service) ClickStat(id, stat string, modifier bool) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		if stat == "" {
			return fmt.Errorf("%w: stat is required", ErrInvalidInput)
		}
		c.ClickStat(stat, modifier)
		return nil
	})
}

// Reveal applies a scroll-proximity signal.
func (s *Service) Reveal(id string) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		c.Advance()
		return nil
	})
}

// Reset clears the session's filters and sort.
func (s *Service) Reset(id string) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		c.Reset()
		return nil
	})
}

// ToggleDebug opens or closes the session's diagnostic surface.
func (s *Service) ToggleDebug(id string) (View, error) {
	return s.withSession(id, func(c *Controller) error {
		c.ToggleDebug()
		return nil
	})
}

// Debug returns the session's diagnostic line, whether or not the debug surface is open.
func (s *Service) Debug(id string) (string, error) {
	var meta string
	_, err := s.withSession(id, func(c *Controller) error {
		meta = c.DebugMeta()
		return nil
	})
	return meta, err
}

// Export writes the session's whole filtered view as "json" or "csv".
func (s *Service) Export(id, format string, w io.Writer) error {
	var items []models.Item
	if _, err := s.withSession(id, func(c *Controller) error {
		items = c.Filtered()
		return nil
	}); err != nil {
		return err
	}

	switch format {
	case "json":
		return ExportJSON(w, items)
	case "csv":
		return ExportCSV(w, items)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownFormat, format)
	}
}

func (s *Service) withSession(id string, fn func(c *Controller) error) (View, error) {
	now := s.now()

	s.mu.Lock()
	sess, ok := s.sessions[id]
	if ok && now.Sub(sess.lastSeen) > s.cfg.SessionTTL() {
		delete(s.sessions, id)
		ok = false
	}
	if ok {
		sess.lastSeen = now
	}
	s.mu.Unlock()
	if !ok {
		return View{}, ErrSessionNotFound
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	if snap, err := s.store.Snapshot(); err == nil && snap != sess.snapshot {
		sess.ctrl.SetItems(snap.Items)
		sess.snapshot = snap
	}

	if err := fn(sess.ctrl); err != nil {
		return View{}, err
	}
	return sess.ctrl.View(), nil
}

func (s *Service) evictLocked(now time.Time) {
	ttl := s.cfg.SessionTTL()
	for id, sess := range s.sessions {
		if now.Sub(sess.lastSeen) > ttl {
			delete(s.sessions, id)
		}
	}
}
