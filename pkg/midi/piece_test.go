package midi

import (
	"bytes"
	"encoding/binary"
	"testing"

	"gitlab.com/gomidi/midi/v2/smf"
)

// smfBytes assembles a minimal standard MIDI file from raw track payloads.
// Each payload is a sequence of delta-timed events without the end-of-track
// marker, which is appended here.
func smfBytes(ticksPerBeat uint16, tracks ...[]byte) []byte {
	var buf bytes.Buffer
	buf.WriteString("MThd")
	binary.Write(&buf, binary.BigEndian, uint32(6))
	binary.Write(&buf, binary.BigEndian, uint16(1)) // format 1
	binary.Write(&buf, binary.BigEndian, uint16(len(tracks)))
	binary.Write(&buf, binary.BigEndian, ticksPerBeat)
	for _, tr := range tracks {
		payload := append(append([]byte{}, tr...), 0x00, 0xFF, 0x2F, 0x00)
		buf.WriteString("MTrk")
		binary.Write(&buf, binary.BigEndian, uint32(len(payload)))
		buf.Write(payload)
	}
	return buf.Bytes()
}

// Deltas must stay below 0x80 so they encode as a single VLQ byte.
func noteOn(delta, key, vel byte) []byte  { return []byte{delta, 0x90, key, vel} }
func noteOff(delta, key, vel byte) []byte { return []byte{delta, 0x80, key, vel} }
func keySig(delta byte, sf int8, minor bool) []byte {
	mi := byte(0)
	if minor {
		mi = 1
	}
	return []byte{delta, 0xFF, 0x59, 0x02, byte(sf), mi}
}

func cat(events ...[]byte) []byte {
	var out []byte
	for _, e := range events {
		out = append(out, e...)
	}
	return out
}

func parsePiece(t *testing.T, data []byte) *Piece {
	t.Helper()
	s, err := smf.ReadFrom(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadFrom: %v", err)
	}
	p, err := FromSMF("test.mid", s)
	if err != nil {
		t.Fatalf("FromSMF: %v", err)
	}
	return p
}

func TestFromSMF_NoteEvents(t *testing.T) {
	data := smfBytes(480,
		cat(keySig(0, 2, false)),
		cat(noteOn(0, 62, 100), noteOff(96, 62, 64)),
	)
	p := parsePiece(t, data)

	if p.TicksPerBeat != 480 {
		t.Errorf("TicksPerBeat = %d; want 480", p.TicksPerBeat)
	}
	if len(p.Tracks) != 2 {
		t.Fatalf("len(Tracks) = %d; want 2", len(p.Tracks))
	}

	tr := p.Tracks[1]
	var notes []Message
	for _, m := range tr {
		if m.Type == MsgNoteOn || m.Type == MsgNoteOff {
			notes = append(notes, m)
		}
	}
	if len(notes) != 2 {
		t.Fatalf("note events = %d; want 2", len(notes))
	}
	if notes[0].Type != MsgNoteOn || notes[0].Pitch != 62 || notes[0].Velocity != 100 || notes[0].Delta != 0 {
		t.Errorf("note-on = %+v; want pitch 62 vel 100 delta 0", notes[0])
	}
	if notes[1].Type != MsgNoteOff || notes[1].Pitch != 62 || notes[1].Delta != 96 {
		t.Errorf("note-off = %+v; want pitch 62 delta 96", notes[1])
	}
}

func TestFromSMF_KeySignature(t *testing.T) {
	tests := []struct {
		sf    int8
		minor bool
		want  string
	}{
		{0, false, "C"},
		{2, false, "D"},
		{-1, false, "F"},
		{-2, true, "Gm"},
		{3, true, "F#m"},
		{0, true, "Am"},
	}
	for _, tc := range tests {
		data := smfBytes(120, cat(keySig(0, tc.sf, tc.minor)))
		p := parsePiece(t, data)

		key := ""
		for _, m := range p.Tracks[0] {
			if m.Type == MsgKeySignature {
				key = m.Key
			}
		}
		if key != tc.want {
			t.Errorf("keySig(sf=%d, minor=%v) = %q; want %q", tc.sf, tc.minor, key, tc.want)
		}
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		num   uint8
		major bool
		flat  bool
		want  string
	}{
		{0, true, false, "C"},
		{7, true, false, "C#"},
		{7, true, true, "Cb"},
		{0, false, false, "Am"},
		{7, false, false, "A#m"},
		{7, false, true, "Abm"},
	}
	for _, tc := range tests {
		if got := keyName(tc.num, tc.major, tc.flat); got != tc.want {
			t.Errorf("keyName(%d, %v, %v) = %q; want %q", tc.num, tc.major, tc.flat, got, tc.want)
		}
	}

	// Corrupt accidental counts must not map to a recognized key.
	if got := keyName(9, true, false); got != "invalid-key(9)" {
		t.Errorf("keyName(9, true, false) = %q; want placeholder", got)
	}
}

func TestTrackDuration(t *testing.T) {
	tr := Track{
		{Type: MsgNoteOn, Delta: 0},
		{Type: MsgNoteOff, Delta: 96},
		{Type: MsgNoteOn, Delta: 32},
		{Type: MsgNoteOff, Delta: 96},
	}
	if d := tr.Duration(); d != 224 {
		t.Errorf("Duration = %d; want 224", d)
	}
	if d := (Track{}).Duration(); d != 0 {
		t.Errorf("empty Duration = %d; want 0", d)
	}
}
