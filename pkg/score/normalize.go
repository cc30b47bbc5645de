package score

import (
	"github.com/kimberly-brown/bach-propagation/pkg/midi"
)

// NormalizedTicksPerBeat is the timing resolution every piece is stamped
// with during normalization. The overwrite does not rescale any delta-time;
// it only standardizes the granularity the sampling grid is derived from.
const NormalizedTicksPerBeat = 120

// DefaultKey is the governing key assumed for pieces that declare none.
const DefaultKey = "C"

// Normalize transposes a piece to the common tonal center and stamps it
// with [NormalizedTicksPerBeat].
//
// The governing key is the last key-signature message encountered while
// scanning the tracks in order; a piece without one defaults to
// [DefaultKey]. The offset is applied to note-on pitches only; note-off
// messages keep their original pitch.
//
// Normalize consumes its argument: the caller must drop p and continue
// with the returned piece. An unrecognized key signature is a hard error
// and leaves pitches untouched.
func Normalize(p *midi.Piece) (*midi.Piece, error) {
	key := DefaultKey
	for _, tr := range p.Tracks {
		for _, m := range tr {
			if m.Type == midi.MsgKeySignature {
				key = m.Key
			}
		}
	}

	offset, err := KeyOffset(key)
	if err != nil {
		return nil, err
	}

	p.TicksPerBeat = NormalizedTicksPerBeat
	for _, tr := range p.Tracks {
		for i := range tr {
			if tr[i].Type == midi.MsgNoteOn {
				tr[i].Pitch += offset
			}
		}
	}
	return p, nil
}
