package corpus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"gitlab.com/gomidi/midi/v2/smf"

	"github.com/kimberly-brown/bach-propagation/pkg/midi"
)

// DefaultCollections names the Bach corpus directories scanned when the
// configuration does not narrow the set.
var DefaultCollections = []string{
	"aof", "brandenb", "cantatas", "cellosui", "chorales",
	"fugues", "gold", "invent", "organ", "organcho",
	"partitas", "sinfon", "suites", "wtcbki", "wtcbkii",
}

// DefaultExtension filters corpus files by name.
const DefaultExtension = ".mid"

// ErrNoPieces is returned by Load when no file in any collection parses.
var ErrNoPieces = errors.New("corpus: no pieces loaded")

// Loader reads every parseable MIDI file from a set of collections.
type Loader struct {
	src         Source
	collections []string
	ext         string
}

// NewLoader creates a Loader over src. Empty collections or ext fall
// back to DefaultCollections and DefaultExtension.
func NewLoader(src Source, collections []string, ext string) *Loader {
	if len(collections) == 0 {
		collections = DefaultCollections
	}
	if ext == "" {
		ext = DefaultExtension
	}
	return &Loader{src: src, collections: collections, ext: ext}
}

// Load scans each collection in order and parses its MIDI files. Files
// that fail to parse are skipped with a debug log; a missing collection
// aborts the load. Pieces are returned in collection order, file names
// sorted within each collection.
func (l *Loader) Load(ctx context.Context) ([]*midi.Piece, error) {
	var pieces []*midi.Piece
	for _, coll := range l.collections {
		names, err := l.src.List(ctx, coll)
		if err != nil {
			return nil, fmt.Errorf("corpus: list collection %q: %w", coll, err)
		}
		before := len(pieces)
		for _, name := range names {
			if !strings.HasSuffix(name, l.ext) {
				continue
			}
			p, err := l.load(ctx, name)
			if err != nil {
				slog.Debug("skipping unparseable file", "path", name, "error", err)
				continue
			}
			pieces = append(pieces, p)
		}
		slog.Info("scanned collection", "collection", coll, "pieces", len(pieces)-before)
	}
	if len(pieces) == 0 {
		return nil, ErrNoPieces
	}
	return pieces, nil
}

func (l *Loader) load(ctx context.Context, name string) (*midi.Piece, error) {
	r, err := l.src.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer r.Close()
	s, err := smf.ReadFrom(r)
	if err != nil {
		return nil, err
	}
	return midi.FromSMF(name, s)
}
