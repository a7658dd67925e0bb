package preferences

import (
	"context"
	"errors"
	"fmt"

	"catalog-browser/feature/preferences/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrNotFound is returned when a client has no saved preference.
var ErrNotFound = errors.New("preference not found")

// Repository persists preferences with gorm.
type Repository struct {
	db *gorm.DB
}

// NewRepository creates a repository over db.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Migrate creates or updates the preferences table.
func (r *Repository) Migrate() error {
	if err := r.db.AutoMigrate(&models.Preference{}); err != nil {
		return fmt.Errorf("failed to migrate preferences: %w", err)
	}
	return nil
}

// Get loads the preference of client.
func (r *Repository) Get(ctx context.Context, client string) (models.Preference, error) {
	var pref models.Preference
	err := r.db.WithContext(ctx).Where("client_id = ?", client).First(&pref).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return pref, ErrNotFound
	}
	if err != nil {
		return pref, fmt.Errorf("failed to load preference: %w", err)
	}
	return pref, nil
}

// Save inserts or replaces the preference.
func (r *Repository) Save(ctx context.Context, pref *models.Preference) error {
	err := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "client_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"theme", "sort_key", "sort_direction", "stat_key", "updated_at"}),
	}).Create(pref).Error
	if err != nil {
		return fmt.Errorf("failed to save preference: %w", err)
	}
	return nil
}
