package preferences

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Feature implements the loader.Feature interface.
type Feature struct {
	service *Service
	handler *Handler
	repo    *Repository
	db      *gorm.DB
}

// NewFeature creates the preferences feature. It is disabled when db is nil.
func NewFeature(db *gorm.DB, logger *zap.Logger) *Feature {
	f := &Feature{db: db}
	if db == nil {
		return f
	}
	f.repo = NewRepository(db)
	f.service = NewService(f.repo, logger)
	f.handler = NewHandler(f.service)
	return f
}

// Name returns the name of the feature.
func (f *Feature) Name() string {
	return "preferences"
}

// IsEnabled checks if the feature is enabled.
func (f *Feature) IsEnabled() bool {
	return f.db != nil
}

// Load migrates the table and registers the feature's routes.
func (f *Feature) Load(app fiber.Router) error {
	if err := f.repo.Migrate(); err != nil {
		return err
	}
	f.handler.RegisterRoutes(app)
	return nil
}

// Service returns the feature's service, or nil when the feature is disabled.
func (f *Feature) Service() *Service {
	return f.service
}
