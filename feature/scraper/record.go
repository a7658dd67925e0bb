package scraper

import "catalog-browser/feature/catalog/models"

// Record is one scraped item in the chunk file shape read by the catalog loader.
// Scraped pages only list consumables and materials, so Category is always "item".
type Record struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Category  string       `json:"category"`
	LevelTier string       `json:"level_tier"`
	Stats     models.Stats `json:"stats"`
	Path      []string     `json:"path,omitempty"`
	StackSize *float64     `json:"stack_size,omitempty"`
	Crafts    []string     `json:"crafts,omitempty"`
	OtherUses []string     `json:"other_uses,omitempty"`
	Effect    *string      `json:"effect,omitempty"`
	Obtain    []string     `json:"obtain,omitempty"`
	Comments  *string      `json:"comments,omitempty"`
	NPCBuys   *float64     `json:"npc_buys,omitempty"`
}

func newRecord(name string) Record {
	return Record{
		ID:       slugify(name),
		Name:     name,
		Category: models.CategoryItem,
		Stats:    models.Stats{},
	}
}
