package scraper

import (
	"sort"
	"strings"

	"catalog-browser/core/utils"
	"catalog-browser/feature/catalog/models"
)

// Consolidate merges records sharing a case-insensitive name and sorts the result by name.
func Consolidate(records []Record) []Record {
	index := make(map[string]int, len(records))
	var out []Record

	for _, rec := range records {
		key := strings.ToLower(rec.Name)
		if i, ok := index[key]; ok {
			out[i] = merge(out[i], rec)
			continue
		}
		index[key] = len(out)
		out = append(out, rec)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return strings.ToLower(out[i].Name) < strings.ToLower(out[j].Name)
	})
	return out
}

// merge combines two records of the same item: numbers take the maximum, lists their union, and
// differing texts are joined with " | ". The first record keeps its id and name.
func merge(a, b Record) Record {
	out := newRecord(a.Name)
	out.ID = a.ID

	out.Stats = mergeStats(a.Stats, b.Stats)
	out.StackSize = mergeNumber(a.StackSize, b.StackSize)
	out.NPCBuys = mergeNumber(a.NPCBuys, b.NPCBuys)
	out.Crafts = uniq(append(append([]string{}, a.Crafts...), b.Crafts...))
	out.OtherUses = uniq(append(append([]string{}, a.OtherUses...), b.OtherUses...))
	out.Obtain = uniq(append(append([]string{}, a.Obtain...), b.Obtain...))
	out.Path = uniq(append(append([]string{}, a.Path...), b.Path...))
	out.Effect = mergeText(a.Effect, b.Effect)
	out.Comments = mergeText(a.Comments, b.Comments)

	return out
}

func mergeStats(a, b models.Stats) models.Stats {
	out := models.Stats{}
	for _, e := range a {
		out.Set(e.Key, e.Value)
	}
	for _, e := range b {
		cur, ok := out.Get(e.Key)
		if !ok {
			out.Set(e.Key, e.Value)
			continue
		}
		x, okx := utils.ToFloat(cur)
		y, oky := utils.ToFloat(e.Value)
		if okx && oky && y > x {
			out.Set(e.Key, e.Value)
		}
	}
	return out
}

func mergeNumber(a, b *float64) *float64 {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	case *b > *a:
		return b
	default:
		return a
	}
}

func mergeText(a, b *string) *string {
	var x, y string
	if a != nil {
		x = normText(*a)
	}
	if b != nil {
		y = normText(*b)
	}

	var v string
	switch {
	case x == "" && y == "":
		return nil
	case x == "":
		v = y
	case y == "" || hasPart(x, y):
		v = x
	default:
		v = x + textSeparator + y
	}
	return &v
}

const textSeparator = " | "

// hasPart reports whether joined already holds v as one of its separated values.
func hasPart(joined, v string) bool {
	for _, part := range strings.Split(joined, textSeparator) {
		if strings.EqualFold(part, v) {
			return true
		}
	}
	return false
}
