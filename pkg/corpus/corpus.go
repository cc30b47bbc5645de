// Package corpus locates and parses the MIDI files a dataset is built
// from. A Source abstracts where the files live so the pipeline can read
// a local directory tree or an S3 bucket without changing code.
package corpus

import (
	"context"
	"io"
)

// Source is a minimal interface for enumerating and reading corpus files.
//
// Paths are forward-slash separated and relative to the source root.
// Implementations must be safe for concurrent use.
type Source interface {
	// List returns the paths of the files directly under dir, sorted
	// lexicographically. It does not recurse.
	List(ctx context.Context, dir string) ([]string, error)

	// Open opens the named file for reading.
	// The caller must close the returned ReadCloser when done.
	Open(ctx context.Context, path string) (io.ReadCloser, error)
}
