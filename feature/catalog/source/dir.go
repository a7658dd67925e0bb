package source

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
)

// DirSource reads catalog files from a local directory.
type DirSource struct {
	Root string
}

// NewDirSource creates a source rooted at dir.
func NewDirSource(dir string) *DirSource {
	return &DirSource{Root: dir}
}

// Open implements Source.
func (s *DirSource) Open(ctx context.Context, name string) (io.ReadCloser, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !fs.ValidPath(name) {
		return nil, fmt.Errorf("invalid catalog file name %q", name)
	}

	f, err := os.Open(filepath.Join(s.Root, filepath.FromSlash(name)))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%s: %w", name, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to open %s: %w", name, err)
	}
	return f, nil
}

// Describe implements Source.
func (s *DirSource) Describe() string {
	return "dir:" + s.Root
}
