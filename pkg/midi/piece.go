// Package midi defines the in-memory event-stream model the preprocessing
// pipeline operates on: a [Piece] is a named set of parallel [Track]s sharing
// one ticks-per-beat timing base, and a [Track] is an ordered sequence of
// delta-timed [Message]s.
//
// Wire-format parsing is delegated to gitlab.com/gomidi/midi/v2/smf; the
// [FromSMF] conversion is the only place the pipeline touches raw MIDI.
package midi

import (
	"fmt"

	"gitlab.com/gomidi/midi/v2/smf"
)

// MsgType classifies the messages the pipeline cares about. Everything that
// is not a note event or a key signature (tempo, lyrics, controllers, ...)
// is MsgOther: it still carries its delta-time, so track durations and
// sampling positions stay exact.
type MsgType uint8

const (
	MsgOther MsgType = iota
	MsgNoteOn
	MsgNoteOff
	MsgKeySignature
)

// Message is one timed event within a track.
type Message struct {
	// Type of the message.
	Type MsgType

	// Delta is the time in ticks since the previous message in the track.
	Delta uint32

	// Pitch is the note number for note messages.
	Pitch int

	// Velocity is the note-on/note-off velocity. A note-on with velocity 0
	// is equivalent to a note-off and is preserved as-is.
	Velocity int

	// Key is the key name for key-signature messages, e.g. "D" or "Bbm".
	Key string
}

// Track is an ordered event stream for one instrument or voice.
type Track []Message

// Duration returns the track's total length in ticks (the sum of all deltas).
func (t Track) Duration() int64 {
	var d int64
	for _, m := range t {
		d += int64(m.Delta)
	}
	return d
}

// Piece is a named collection of tracks sharing one timing base.
type Piece struct {
	// Name identifies the piece, typically its corpus-relative path.
	Name string

	// TicksPerBeat is the timing resolution in ticks per quarter note.
	TicksPerBeat int

	// Tracks holds the piece's event streams in file order. By SMF
	// convention the first track carries metadata only.
	Tracks []Track
}

// FromSMF converts a parsed standard MIDI file into a Piece.
// SMPTE-timed files are rejected: the sampling grid is defined in
// ticks per beat, which SMPTE division does not provide.
func FromSMF(name string, s *smf.SMF) (*Piece, error) {
	ticks, ok := s.TimeFormat.(smf.MetricTicks)
	if !ok {
		return nil, fmt.Errorf("midi: %s: unsupported time format %v", name, s.TimeFormat)
	}

	p := &Piece{
		Name:         name,
		TicksPerBeat: int(ticks),
		Tracks:       make([]Track, 0, len(s.Tracks)),
	}
	for _, tr := range s.Tracks {
		track := make(Track, 0, len(tr))
		for _, ev := range tr {
			m := Message{Type: MsgOther, Delta: ev.Delta}

			var (
				ch, key, vel uint8
				root, num    uint8
				major, flat  bool
			)
			switch {
			case ev.Message.GetNoteOn(&ch, &key, &vel):
				m.Type = MsgNoteOn
				m.Pitch = int(key)
				m.Velocity = int(vel)
			case ev.Message.GetNoteOff(&ch, &key, &vel):
				m.Type = MsgNoteOff
				m.Pitch = int(key)
				m.Velocity = int(vel)
			case ev.Message.GetMetaKeySig(&root, &num, &major, &flat):
				m.Type = MsgKeySignature
				m.Key = keyName(num, major, flat)
			}
			track = append(track, m)
		}
		p.Tracks = append(p.Tracks, track)
	}
	return p, nil
}
