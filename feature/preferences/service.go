package preferences

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	catalogmodels "catalog-browser/feature/catalog/models"
	"catalog-browser/feature/preferences/models"

	"go.uber.org/zap"
)

// ErrInvalid is returned for preference updates that fail validation.
var ErrInvalid = errors.New("invalid preference")

const maxClientIDLength = 64

// UpdateRequest is the body of PUT /preferences/:client.
type UpdateRequest struct {
	Theme string                  `json:"theme"`
	Sort  catalogmodels.SortSpec `json:"sort"`
}

// Service validates and stores client preferences.
type Service struct {
	repo   *Repository
	logger *zap.Logger
	now    func() time.Time
}

// NewService creates a preferences service.
func NewService(repo *Repository, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{repo: repo, logger: logger, now: time.Now}
}

// Get returns the saved preference of client.
func (s *Service) Get(ctx context.Context, client string) (models.Preference, error) {
	if err := validateClient(client); err != nil {
		return models.Preference{}, err
	}
	return s.repo.Get(ctx, client)
}

// Put validates req and stores it as the preference of client.
// The sort is replaced as given; an empty theme leaves the saved theme in place.
func (s *Service) Put(ctx context.Context, client string, req UpdateRequest) (models.Preference, error) {
	if err := validateClient(client); err != nil {
		return models.Preference{}, err
	}

	theme := strings.ToLower(strings.TrimSpace(req.Theme))
	switch theme {
	case "", models.ThemeLight, models.ThemeDark:
	default:
		return models.Preference{}, fmt.Errorf("%w: unknown theme %q", ErrInvalid, req.Theme)
	}

	spec := req.Sort
	if spec.Key == "" {
		spec = catalogmodels.DefaultSort()
	}
	if !spec.Key.Valid() {
		return models.Preference{}, fmt.Errorf("%w: unknown sort key %q", ErrInvalid, spec.Key)
	}
	if spec.Key == catalogmodels.SortStat && spec.StatKey == "" {
		return models.Preference{}, fmt.Errorf("%w: stat sort requires a stat key", ErrInvalid)
	}
	if spec.Key != catalogmodels.SortStat {
		spec.StatKey = ""
	}
	if spec.Direction != catalogmodels.Desc {
		spec.Direction = catalogmodels.Asc
	}

	// An omitted theme keeps the saved one.
	if theme == "" {
		saved, err := s.repo.Get(ctx, client)
		switch {
		case err == nil:
			theme = saved.Theme
		case !errors.Is(err, ErrNotFound):
			return models.Preference{}, err
		}
	}

	pref := models.Preference{
		ClientID:      client,
		Theme:         theme,
		SortKey:       string(spec.Key),
		SortDirection: string(spec.Direction),
		StatKey:       spec.StatKey,
		UpdatedAt:     s.now().UTC(),
	}
	if err := s.repo.Save(ctx, &pref); err != nil {
		return models.Preference{}, err
	}

	s.logger.Debug("Preference saved", zap.String("client", client), zap.String("sort", pref.SortKey))
	return pref, nil
}

// SavedSort returns the saved sort of client, or nil when there is none.
func (s *Service) SavedSort(ctx context.Context, client string) (*catalogmodels.SortSpec, error) {
	pref, err := s.Get(ctx, client)
	if errors.Is(err, ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &catalogmodels.SortSpec{
		Key:       catalogmodels.SortKey(pref.SortKey),
		Direction: catalogmodels.Direction(pref.SortDirection),
		StatKey:   pref.StatKey,
	}, nil
}

func validateClient(client string) error {
	if client == "" || len(client) > maxClientIDLength {
		return fmt.Errorf("%w: client id must be 1 to %d characters", ErrInvalid, maxClientIDLength)
	}
	return nil
}
