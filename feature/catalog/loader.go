package catalog

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
}

// NewFeature creates the catalog feature over store.
func NewFeature(store *Store, cfg Config, logger *zap.Logger) *Feature {
	svc := NewService(store, cfg, logger)
	return &Feature{service: svc, handler: NewHandler(svc)}
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "catalog"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return true
}

// Load registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	f.handler.RegisterRoutes(app)
	return nil
}

// UsePreferences lets new sessions start from a client's saved sort.
func (f *Feature) UsePreferences(prefs SortPreferences) {
	f.handler.prefs = prefs
}

// Service exposes the feature's service, e.g. for the initial load at startup.
func (f *Feature) Service() *Service {
	return f.service
}
