package source

import (
	"context"
	"errors"
	"fmt"
	"io"
)

// ErrNotFound is returned when a catalog file does not exist at the source.
var ErrNotFound = errors.New("catalog file not found")

// StatusError reports a non-success response from a remote source.
type StatusError struct {
	Name   string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Name, e.Status)
}

// Source opens catalog files (the manifest and its chunks) by name, relative to the data root.
type Source interface {
	// Open returns the file contents. The caller closes the reader.
	Open(ctx context.Context, name string) (io.ReadCloser, error)
	// Describe names the source for logs.
	Describe() string
}

// ReadAll opens name and reads it fully.
func ReadAll(ctx context.Context, src Source, name string) ([]byte, error) {
	rc, err := src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	data, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", name, err)
	}
	return data, nil
}
