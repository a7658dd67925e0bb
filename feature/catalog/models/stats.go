package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"catalog-browser/core/utils"

	"github.com/tidwall/gjson"
)

// StatEntry is one stat of an item. Value is a float64 or a string.
type StatEntry struct {
	Key   string
	Value any
}

// Stats is an insertion-ordered stat mapping. Keys are unique; the source order is kept for display
// and export, lookups go through Get.
type Stats []StatEntry

// Get returns the value stored under key.
func (s Stats) Get(key string) (any, bool) {
	for _, e := range s {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Set stores value under key. An existing key keeps its position.
func (s *Stats) Set(key string, value any) {
	for i := range *s {
		if (*s)[i].Key == key {
			(*s)[i].Value = value
			return
		}
	}
	*s = append(*s, StatEntry{Key: key, Value: value})
}

// Pairs renders the stats as "key:value" strings in order.
func (s Stats) Pairs() []string {
	out := make([]string, len(s))
	for i, e := range s {
		out[i] = e.Key + ":" + utils.ToString(e.Value)
	}
	return out
}

// Join renders the stats as "key:value" pairs joined by sep.
func (s Stats) Join(sep string) string {
	return strings.Join(s.Pairs(), sep)
}

// MarshalJSON writes the stats as a JSON object in insertion order.
func (s Stats) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range s {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, fmt.Errorf("stat %q: %w", e.Key, err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// UnmarshalJSON reads a JSON object keeping its key order. null yields empty stats.
func (s *Stats) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	switch {
	case res.Type == gjson.Null:
		*s = Stats{}
		return nil
	case !res.IsObject():
		return fmt.Errorf("stats: expected object, got %s", res.Type)
	}
	*s = statsFromResult(res)
	return nil
}

func statsFromResult(res gjson.Result) Stats {
	out := Stats{}
	res.ForEach(func(k, v gjson.Result) bool {
		out.Set(k.String(), statValue(v))
		return true
	})
	return out
}

func statValue(v gjson.Result) any {
	switch v.Type {
	case gjson.Number:
		return v.Float()
	case gjson.String:
		return v.String()
	case gjson.Null:
		return nil
	default:
		return v.Raw
	}
}
