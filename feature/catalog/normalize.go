package catalog

import (
	"strings"

	"catalog-browser/core/utils"
	"catalog-browser/feature/catalog/models"

	"github.com/google/uuid"
)

// Normalize converts a raw chunk record into the canonical Item shape.
// It never fails: missing fields take their empty defaults, including a missing name.
func Normalize(raw models.RawRecord) models.Item {
	item := models.Item{
		ID:        raw.ID,
		Name:      raw.Name,
		Category:  strings.ToLower(raw.Category),
		Path:      normalizePath(raw.Path),
		LevelTier: strings.ToLower(strings.TrimSpace(raw.LevelTier)),
		Stats:     raw.Stats,
		Enchants:  raw.Enchants,
		Info:      raw.Info,
		Obtain:    raw.Obtain,

		StackSize: raw.StackSize,
		Crafts:    nonEmpty(raw.Crafts),
		OtherUses: nonEmpty(raw.OtherUses),
		Effect:    raw.Effect,
		Comments:  raw.Comments,
		NPCBuys:   raw.NPCBuys,
	}

	if item.ID == "" {
		item.ID = uuid.NewString()
	}
	if item.Category == "" {
		item.Category = InferCategory(raw)
	}
	if item.Stats == nil {
		item.Stats = models.Stats{}
	}
	if item.Enchants == nil {
		item.Enchants = []string{}
	}
	if item.Obtain == nil {
		item.Obtain = []string{}
	}

	return item
}

// NormalizeAll normalizes a batch of raw records, keeping their order.
func NormalizeAll(raws []models.RawRecord) []models.Item {
	items := make([]models.Item, len(raws))
	for i, raw := range raws {
		items[i] = Normalize(raw)
	}
	return items
}

// InferCategory derives a category from the record's slot. Unknown slots fall back to "item".
func InferCategory(raw models.RawRecord) string {
	if cat := strings.ToLower(raw.Category); cat != "" {
		return cat
	}
	slot := strings.ToLower(raw.Slot)
	if models.IsKnownCategory(slot) {
		return slot
	}
	return models.CategoryItem
}

func normalizePath(p any) []string {
	switch v := p.(type) {
	case []string:
		return utils.LowerStrings(v)
	case string:
		if v == "" {
			return []string{}
		}
		return []string{strings.ToLower(v)}
	default:
		return []string{}
	}
}

// nonEmpty maps an empty optional list to absent; an empty list carries no information.
func nonEmpty(list []string) []string {
	if len(list) == 0 {
		return nil
	}
	return list
}
