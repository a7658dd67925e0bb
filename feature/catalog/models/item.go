package models

// Item is the canonical, normalized catalog record.
//
// Optional fields are pointers or nil slices: a stack size of 0 is a different thing from an item
// that has no stack size at all.
type Item struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Category  string   `json:"category"`
	Path      []string `json:"path"`
	LevelTier string   `json:"level_tier"`
	Stats     Stats    `json:"stats"`
	Enchants  []string `json:"enchants"`
	Info      string   `json:"info"`
	Obtain    []string `json:"obtain"`

	// Only consumables/materials (category "item") carry these.
	StackSize *float64 `json:"stack_size,omitempty"`
	Crafts    []string `json:"crafts,omitempty"`
	OtherUses []string `json:"other_uses,omitempty"`
	Effect    *string  `json:"effect,omitempty"`
	Comments  *string  `json:"comments,omitempty"`
	NPCBuys   *float64 `json:"npc_buys,omitempty"`
}

// Category tokens recognised when inferring a category from an item slot.
const (
	CategoryHand         = "hand"
	CategoryHead         = "head"
	CategoryHelm         = "helm"
	CategoryShield       = "shield"
	CategorySubaccessory = "subaccessory"
	CategoryArmor        = "armor"
	CategoryWeapon       = "weapon"
	CategoryItem         = "item"
)

// KnownCategories lists the fixed category tokens.
var KnownCategories = []string{
	CategoryHand,
	CategoryHead,
	CategoryHelm,
	CategoryShield,
	CategorySubaccessory,
	CategoryArmor,
	CategoryWeapon,
	CategoryItem,
}

// IsKnownCategory reports whether token is one of KnownCategories.
func IsKnownCategory(token string) bool {
	for _, c := range KnownCategories {
		if c == token {
			return true
		}
	}
	return false
}
