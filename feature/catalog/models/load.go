package models

import (
	"fmt"
	"time"

	"github.com/tidwall/gjson"
)

// Manifest lists the chunk files of a catalog, in load order.
type Manifest struct {
	Files []string `json:"files"`
}

// Chunk is one catalog shard.
type Chunk struct {
	Items []RawRecord `json:"items"`
	// Skipped counts entries of items that were not objects.
	Skipped int `json:"-"`
}

// UnmarshalJSON decodes a chunk, dropping entries that are not records instead of failing the
// whole chunk. A missing or null items list is an empty chunk.
func (c *Chunk) UnmarshalJSON(data []byte) error {
	res := gjson.ParseBytes(data)
	if !res.IsObject() {
		return fmt.Errorf("chunk: expected object, got %s", res.Type)
	}

	*c = Chunk{}
	items := res.Get("items")
	if !items.Exists() || items.Type == gjson.Null {
		return nil
	}
	if !items.IsArray() {
		return fmt.Errorf("chunk: items must be an array, got %s", items.Type)
	}

	items.ForEach(func(_, v gjson.Result) bool {
		if !v.IsObject() {
			c.Skipped++
			return true
		}
		c.Items = append(c.Items, recordFromResult(v))
		return true
	})
	return nil
}

// LoadReport summarises one load cycle.
type LoadReport struct {
	Files        []string      `json:"files"`
	ChunksLoaded int           `json:"chunks_loaded"`
	ChunksFailed int           `json:"chunks_failed"`
	FailedChunks []string      `json:"failed_chunks"`
	TotalRecords int           `json:"total_records"`
	Empty        bool          `json:"empty"`
	LoadedAt     time.Time     `json:"loaded_at"`
	Duration     time.Duration `json:"duration"`
}

// Degraded reports whether some chunks were skipped.
func (r LoadReport) Degraded() bool {
	return r.ChunksFailed > 0
}
