// Package score transforms event-stream pieces into fixed-grid piano-roll
// token sequences: key normalization toward a common tonal center, grid
// resampling of individual tracks, and per-step chord serialization.
package score

import "fmt"

// keyOffsets maps key names to the semitone shift that moves the piece to
// the common tonal center: major keys toward C, minor keys toward A (the
// relative minor). Enharmonic spellings are listed so that every name the
// corpus can declare resolves without a fallback.
var keyOffsets = map[string]int{
	"B#": 0, "C": 0, "C#": -1, "Db": -1, "D": -2, "D#": -3, "Eb": -3,
	"E": -4, "Fb": -4, "E#": -5, "F": -5, "F#": -6, "Gb": -6, "G": 5,
	"G#": 4, "Ab": 4, "A": 3, "A#": 2, "Bb": 2, "B": 1, "Cb": 1,

	"B#m": -3, "Cm": -3, "C#m": -4, "Dbm": -4, "Dm": -5, "D#m": -6, "Ebm": -6,
	"Em": -7, "Fbm": -7, "E#m": 4, "Fm": 4, "F#m": 3, "Gbm": 3, "Gm": 2,
	"G#m": 1, "Abm": 1, "Am": 0, "A#m": -1, "Bbm": -1, "Bm": -2, "Cbm": -2,
}

// KeyOffset returns the semitone transposition for a key name.
// An unrecognized name is an error, never a silent default.
func KeyOffset(name string) (int, error) {
	off, ok := keyOffsets[name]
	if !ok {
		return 0, fmt.Errorf("score: unrecognized key signature %q", name)
	}
	return off, nil
}
