package catalog

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"catalog-browser/feature/catalog/models"
)

// CSVHeader is the header row of CSV exports.
var CSVHeader = []string{"name", "category", "path", "level_tier", "stats", "enchants", "info", "obtain"}

// ExportDocument is the JSON export shape.
type ExportDocument struct {
	Items []models.Item `json:"items"`
}

// ExportJSON writes {"items": [...]} with two-space indentation.
func ExportJSON(w io.Writer, items []models.Item) error {
	if items == nil {
		items = []models.Item{}
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(ExportDocument{Items: items}); err != nil {
		return fmt.Errorf("failed to encode json export: %w", err)
	}
	return nil
}

// ExportCSV writes the items as CSV. Every field is quoted; rows end with "\n".
func ExportCSV(w io.Writer, items []models.Item) error {
	var b strings.Builder
	b.WriteString(strings.Join(CSVHeader, ","))
	for _, it := range items {
		b.WriteByte('\n')
		row := []string{
			it.Name,
			it.Category,
			strings.Join(it.Path, "; "),
			it.LevelTier,
			it.Stats.Join("; "),
			strings.Join(it.Enchants, "; "),
			strings.ReplaceAll(it.Info, "\n", " "),
			strings.Join(it.Obtain, "; "),
		}
		for i, field := range row {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(quoteCSV(field))
		}
	}

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write csv export: %w", err)
	}
	return nil
}

// quoteCSV wraps s in double quotes, doubling embedded quotes.
func quoteCSV(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
