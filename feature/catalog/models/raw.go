package models

import (
	"fmt"

	"catalog-browser/core/utils"

	"github.com/tidwall/gjson"
)

// RawRecord is an item as found in a chunk file, before normalization.
//
// Chunk files are produced by different scraper revisions, so decoding is lenient: wrongly typed
// scalars are read through their string form, falsy scalars (0, false, null, "") count as absent and
// wrongly typed lists are dropped.
type RawRecord struct {
	ID       string
	Name     string
	Category string
	Slot     string
	// Path is a []string, a string, or nil.
	Path      any
	LevelTier string
	Stats     Stats
	Enchants  []string
	Info      string
	Obtain    []string

	StackSize *float64
	Crafts    []string
	OtherUses []string
	Effect    *string
	Comments  *string
	NPCBuys   *float64
}

// UnmarshalJSON decodes a raw record leniently.
func (r *RawRecord) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("raw record: expected object, got %s", res.Type)
	}
	*r = recordFromResult(res)
	return nil
}

func recordFromResult(res gjson.Result) RawRecord {
	r := RawRecord{
		ID:        scalar(res.Get("id")),
		Name:      scalar(res.Get("name")),
		Category:  scalar(res.Get("category")),
		Slot:      scalar(res.Get("slot")),
		LevelTier: scalar(res.Get("level_tier")),
		Info:      scalar(res.Get("info")),
		Enchants:  list(res.Get("enchants")),
		Obtain:    list(res.Get("obtain")),
		Crafts:    list(res.Get("crafts")),
		OtherUses: list(res.Get("other_uses")),
		StackSize: number(res.Get("stack_size")),
		NPCBuys:   number(res.Get("npc_buys")),
		Effect:    optionalText(res.Get("effect")),
		Comments:  optionalText(res.Get("comments")),
	}

	if stats := res.Get("stats"); stats.IsObject() {
		r.Stats = statsFromResult(stats)
	}

	path := res.Get("path")
	switch {
	case path.IsArray():
		r.Path = list(path)
	case truthy(path):
		r.Path = path.String()
	}

	return r
}

func truthy(v gjson.Result) bool {
	switch v.Type {
	case gjson.Null, gjson.False:
		return false
	case gjson.Number:
		return v.Float() != 0
	case gjson.String:
		return v.Str != ""
	default:
		return v.Exists()
	}
}

func scalar(v gjson.Result) string {
	if !truthy(v) || v.IsArray() || v.IsObject() {
		return ""
	}
	return v.String()
}

func list(v gjson.Result) []string {
	if !v.IsArray() {
		return nil
	}
	arr := v.Array()
	out := make([]string, 0, len(arr))
	for _, e := range arr {
		out = append(out, e.String())
	}
	return out
}

// number reads JSON numbers and numeric strings ("5").
func number(v gjson.Result) *float64 {
	var f float64
	switch v.Type {
	case gjson.Number:
		f = v.Float()
	case gjson.String:
		parsed, ok := utils.ToFloat(v.Str)
		if !ok || v.Str == "" {
			return nil
		}
		f = parsed
	default:
		return nil
	}
	return &f
}

func optionalText(v gjson.Result) *string {
	if v.Type == gjson.Null || !v.Exists() {
		return nil
	}
	s := v.String()
	return &s
}
