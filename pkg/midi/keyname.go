package midi

import "fmt"

// Key signature meta events store the accidental count and mode rather than
// a name. The tables below follow the circle of fifths; names use the
// conventional spelling with an "m" suffix for minor keys.
var (
	majorSharps = [8]string{"C", "G", "D", "A", "E", "B", "F#", "C#"}
	majorFlats  = [8]string{"C", "F", "Bb", "Eb", "Ab", "Db", "Gb", "Cb"}
	minorSharps = [8]string{"Am", "Em", "Bm", "F#m", "C#m", "G#m", "D#m", "A#m"}
	minorFlats  = [8]string{"Am", "Dm", "Gm", "Cm", "Fm", "Bbm", "Ebm", "Abm"}
)

// keyName maps an accidental count and mode to a key name.
// Counts above 7 cannot come from a well-formed key signature; the
// returned placeholder is not a valid key name, so the later
// transposition-table lookup rejects the corrupt declaration.
func keyName(num uint8, major, flat bool) string {
	if num > 7 {
		return fmt.Sprintf("invalid-key(%d)", num)
	}
	switch {
	case major && flat:
		return majorFlats[num]
	case major:
		return majorSharps[num]
	case flat:
		return minorFlats[num]
	default:
		return minorSharps[num]
	}
}
