package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"

	"catalog-browser/core/config"
	"catalog-browser/core/logger"
	"catalog-browser/core/storage"
	"catalog-browser/feature/catalog"
	"catalog-browser/feature/catalog/models"

	"go.uber.org/zap"
)

// setup loads the configuration and builds the logger shared by every command.
func setup() (*config.Config, *zap.Logger) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return cfg, logg
}

// newStore builds the configured catalog source and wraps it in a store.
func newStore(cfg *config.Config, logg *zap.Logger) (*catalog.Store, error) {
	src, err := cfg.Catalog.NewSource(func() (storage.Client, error) {
		return storage.NewClient(cfg.Storage)
	}, cfg.Storage.Bucket)
	if err != nil {
		return nil, err
	}
	return catalog.NewStore(src, logg), nil
}

// loadCatalog builds the store and runs the first load cycle.
func loadCatalog(ctx context.Context, cfg *config.Config, logg *zap.Logger) (*catalog.Snapshot, error) {
	store, err := newStore(cfg, logg)
	if err != nil {
		return nil, err
	}
	return store.Reload(ctx)
}

// printView renders the revealed rows and the footer line.
func printView(v catalog.View) {
	if v.Empty {
		fmt.Println("No results.")
	}
	for _, it := range v.Items {
		fmt.Printf("%-32s %-13s %-6s %-28s %s\n",
			it.Name, it.Category, it.LevelTier, strings.Join(it.Path, ","), it.Stats.Join(" "))
	}

	footer := v.ResultsInfo
	if v.SortIndicator != "" {
		footer += "  " + v.SortIndicator
	}
	if v.HasMore {
		footer += "  (more)"
	}
	fmt.Println(footer)
	if v.Debug != "" {
		fmt.Println("debug:", v.Debug)
	}
}

// splitList parses "a,b, c" into a set, ignoring blanks.
func splitList(s string) models.Set {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.ToLower(strings.TrimSpace(v)); v != "" {
			values = append(values, v)
		}
	}
	return models.NewSet(values...)
}

// export writes items in format to path, or to stdout when path is empty or "-".
func export(format, path string, items []models.Item) error {
	out := os.Stdout
	if path != "" && path != "-" {
		f, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %w", path, err)
		}
		defer f.Close()
		out = f
	}

	switch format {
	case "json":
		return catalog.ExportJSON(out, items)
	case "csv":
		return catalog.ExportCSV(out, items)
	default:
		return fmt.Errorf("%w: %s", catalog.ErrUnknownFormat, format)
	}
}
