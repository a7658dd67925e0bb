package catalog

import (
	"fmt"
	"time"

	"catalog-browser/core/storage"
	"catalog-browser/feature/catalog/source"
)

// Source kinds accepted by Config.Source.
const (
	SourceStorage = "storage"
	SourceHTTP    = "http"
	SourceDir     = "dir"
)

// Config holds the catalog settings.
type Config struct {
	// Source selects where manifest and chunks are read from: storage, http or dir.
	Source string `mapstructure:"source" default:"storage"`
	// BaseURL is the data root for the http source, e.g. https://example.org/data/.
	BaseURL string `mapstructure:"base_url" default:""`
	// Dir is the data root for the dir source.
	Dir string `mapstructure:"dir" default:"./data"`
	// Prefix is the object key prefix for the storage source.
	Prefix string `mapstructure:"prefix" default:"data"`
	// HTTPTimeoutSeconds bounds each http fetch.
	HTTPTimeoutSeconds int `mapstructure:"http_timeout_seconds" default:"35"`

	PageSize          int    `mapstructure:"page_size" default:"20"`
	NumericTierTag    string `mapstructure:"numeric_tier_tag" default:"1-99"`
	ExemptCategory    string `mapstructure:"exempt_category" default:"item"`
	QueryDebounceMs   int    `mapstructure:"query_debounce_ms" default:"120"`
	SessionTTLMinutes int    `mapstructure:"session_ttl_minutes" default:"30"`
}

// FilterOptions returns the level-rule settings.
func (c Config) FilterOptions() FilterOptions {
	return FilterOptions{
		NumericTierTag: c.NumericTierTag,
		ExemptCategory: c.ExemptCategory,
	}
}

// ControllerConfig returns the settings for new controllers.
func (c Config) ControllerConfig() ControllerConfig {
	return ControllerConfig{PageSize: c.PageSize, Filter: c.FilterOptions()}
}

// QueryDebounce returns the query input quiet period.
func (c Config) QueryDebounce() time.Duration {
	if c.QueryDebounceMs <= 0 {
		return DefaultQueryDebounce
	}
	return time.Duration(c.QueryDebounceMs) * time.Millisecond
}

// SessionTTL returns how long an idle view session is kept.
func (c Config) SessionTTL() time.Duration {
	if c.SessionTTLMinutes <= 0 {
		return 30 * time.Minute
	}
	return time.Duration(c.SessionTTLMinutes) * time.Minute
}

// NewSource builds the configured catalog source. newClient is only called for the storage source.
func (c Config) NewSource(newClient func() (storage.Client, error), bucket string) (source.Source, error) {
	switch c.Source {
	case SourceStorage, "":
		client, err := newClient()
		if err != nil {
			return nil, fmt.Errorf("failed to create storage client: %w", err)
		}
		return source.NewStorageSource(client, bucket, c.Prefix), nil
	case SourceHTTP:
		if c.BaseURL == "" {
			return nil, fmt.Errorf("catalog source %q requires a base url", c.Source)
		}
		timeout := time.Duration(c.HTTPTimeoutSeconds) * time.Second
		if timeout <= 0 {
			timeout = 35 * time.Second
		}
		return source.NewHTTPSource(c.BaseURL, timeout), nil
	case SourceDir:
		return source.NewDirSource(c.Dir), nil
	default:
		return nil, fmt.Errorf("unknown catalog source %q", c.Source)
	}
}
