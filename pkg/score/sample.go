package score

import (
	"github.com/kimberly-brown/bach-propagation/pkg/midi"
)

// SampleTrack reads a track at a fixed tick interval and returns the pitch
// sounding at each grid point. The read cursor starts a quarter interval
// into the track so each sample lands inside a step rather than on its
// boundary.
//
// A grid point takes the pitch of the current message when that message
// ends a note, either an explicit note-off or a note-on with velocity
// zero. Grid points that fall during silence, or past the end of the
// track, stay zero.
func SampleTrack(t midi.Track, interval int64, numSamples int) []int {
	samples := make([]int, numSamples)
	cursor := interval / 4
	var elapsed int64
	i := 0
	for _, msg := range t {
		elapsed += int64(msg.Delta)
		for cursor < elapsed && i < numSamples {
			if msg.Type == midi.MsgNoteOff || (msg.Type == midi.MsgNoteOn && msg.Velocity == 0) {
				samples[i] = msg.Pitch
			}
			cursor += interval
			i++
		}
	}
	return samples
}
