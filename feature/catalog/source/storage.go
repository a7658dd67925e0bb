package source

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"path"

	"catalog-browser/core/storage"
)

// StorageSource reads catalog files from an object storage bucket under a key prefix.
type StorageSource struct {
	client storage.Client
	bucket string
	prefix string
}

// NewStorageSource creates a source for objects at <prefix>/<name> in bucket.
func NewStorageSource(client storage.Client, bucket, prefix string) *StorageSource {
	return &StorageSource{client: client, bucket: bucket, prefix: prefix}
}

// Open implements Source.
func (s *StorageSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	data, err := storage.ReadObject(ctx, s.client, s.bucket, s.Key(name))
	if err != nil {
		if errors.Is(err, storage.ErrObjectNotFound) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, err
	}
	return io.NopCloser(bytes.NewReader(data)), nil
}

// Key returns the object key of a catalog file.
func (s *StorageSource) Key(name string) string {
	return path.Join(s.prefix, name)
}

// Describe implements Source.
func (s *StorageSource) Describe() string {
	return "storage:" + s.bucket + "/" + s.prefix
}
