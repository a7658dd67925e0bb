package scraper

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path"
	"path/filepath"

	"catalog-browser/core/storage"
	"catalog-browser/feature/catalog/models"
)

// ManifestName is the name of the manifest written next to the chunks.
const ManifestName = "manifest.json"

// Writer stores generated catalog files.
type Writer interface {
	Write(ctx context.Context, name string, data []byte) error
	Describe() string
}

// DirWriter writes catalog files into a local directory, creating it if needed.
type DirWriter struct {
	dir string
}

// NewDirWriter creates a writer for dir.
func NewDirWriter(dir string) *DirWriter {
	return &DirWriter{dir: dir}
}

// Write implements Writer.
func (w *DirWriter) Write(_ context.Context, name string, data []byte) error {
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("failed to create output directory: %w", err)
	}
	if err := os.WriteFile(filepath.Join(w.dir, name), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", name, err)
	}
	return nil
}

// Describe implements Writer.
func (w *DirWriter) Describe() string {
	return w.dir
}

// StorageWriter uploads catalog files to a bucket under a prefix.
type StorageWriter struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageWriter creates a writer for <prefix>/<name> objects in bucket.
func NewStorageWriter(client storage.Client, bucket, prefix string) *StorageWriter {
	return &StorageWriter{client: client, bucket: bucket, prefix: prefix}
}

// Write implements Writer.
func (w *StorageWriter) Write(ctx context.Context, name string, data []byte) error {
	return storage.WriteObject(ctx, w.client, w.bucket, path.Join(w.prefix, name), data, "application/json")
}

// Describe implements Writer.
func (w *StorageWriter) Describe() string {
	return "storage:" + w.bucket + "/" + w.prefix
}

// Chunk is one generated chunk file.
type Chunk struct {
	Name  string
	Items []Record
}

// Chunks splits records into files of at most size items named <prefix><n>.json, n starting at 1.
func Chunks(records []Record, size int, prefix string) []Chunk {
	size = max(1, size)

	var chunks []Chunk
	for i := 0; i < len(records); i += size {
		end := min(i+size, len(records))
		chunks = append(chunks, Chunk{
			Name:  fmt.Sprintf("%s%d.json", prefix, i/size+1),
			Items: records[i:end],
		})
	}
	return chunks
}

// WriteCatalog writes every chunk and then the manifest listing them in order.
func WriteCatalog(ctx context.Context, w Writer, chunks []Chunk) (models.Manifest, error) {
	manifest := models.Manifest{Files: make([]string, 0, len(chunks))}

	for _, chunk := range chunks {
		data, err := encode(struct {
			Items []Record `json:"items"`
		}{Items: chunk.Items})
		if err != nil {
			return manifest, fmt.Errorf("failed to encode %s: %w", chunk.Name, err)
		}
		if err := w.Write(ctx, chunk.Name, data); err != nil {
			return manifest, err
		}
		manifest.Files = append(manifest.Files, chunk.Name)
	}

	data, err := encode(manifest)
	if err != nil {
		return manifest, fmt.Errorf("failed to encode manifest: %w", err)
	}
	if err := w.Write(ctx, ManifestName, data); err != nil {
		return manifest, err
	}
	return manifest, nil
}

func encode(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
