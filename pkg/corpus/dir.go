package corpus

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
)

// Dir implements Source on top of a local directory tree.
type Dir struct {
	root string
}

// NewDir creates a Source rooted at dir.
func NewDir(dir string) (*Dir, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}
	return &Dir{root: abs}, nil
}

// resolve turns a source path into an absolute filesystem path.
func (d *Dir) resolve(p string) string {
	return filepath.Join(d.root, filepath.FromSlash(p))
}

// List returns the regular files directly under dir, sorted.
func (d *Dir) List(_ context.Context, dir string) ([]string, error) {
	entries, err := os.ReadDir(d.resolve(dir))
	if err != nil {
		return nil, err
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, path.Join(dir, e.Name()))
	}
	sort.Strings(names)
	return names, nil
}

// Open opens the named file for reading.
func (d *Dir) Open(_ context.Context, p string) (io.ReadCloser, error) {
	return os.Open(d.resolve(p))
}

// Compile-time interface check.
var _ Source = (*Dir)(nil)
