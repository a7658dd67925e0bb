package models

import "time"

// Theme values accepted for Preference.Theme. Empty means the client default.
const (
	ThemeLight = "light"
	ThemeDark  = "dark"
)

// Preference is the saved UI state of one client, stored in the 'catalog_preferences' table.
type Preference struct {
	ClientID      string    `gorm:"column:client_id;primaryKey;size:64" json:"client_id"`
	Theme         string    `gorm:"column:theme;size:16" json:"theme"`
	SortKey       string    `gorm:"column:sort_key;size:32" json:"sort_key"`
	SortDirection string    `gorm:"column:sort_direction;size:4" json:"sort_direction"`
	StatKey       string    `gorm:"column:stat_key;size:32" json:"stat_key,omitempty"`
	UpdatedAt     time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName overrides the table name used by Preference to `catalog_preferences`.
func (Preference) TableName() string {
	return "catalog_preferences"
}
