package score

import (
	"fmt"
	"math/rand"
	"sort"
	"strconv"
	"strings"

	"github.com/kimberly-brown/bach-propagation/pkg/midi"
)

// DefaultGridDivisor yields a sampling interval of half a beat.
const DefaultGridDivisor = 2

// maxVoices is the number of tracks a roll is built from.
const maxVoices = 3

// BuildRoll samples a normalized piece onto a fixed time grid and joins
// the per-voice pitches at each step into a single chord token.
//
// The first track is dropped; convention places non-note metadata there.
// When more than three tracks remain, three are chosen by a shuffle
// seeded with the length of the first remaining track, so the same piece
// always yields the same voices. Each grid step becomes a token of the
// sounding pitches sorted ascending and joined with "-", e.g. "60-64-67";
// silent voices contribute 0.
func BuildRoll(p *midi.Piece, gridDivisor int) ([]string, error) {
	if len(p.Tracks) < 2 {
		return nil, fmt.Errorf("score: piece %q has %d tracks, need at least 2", p.Name, len(p.Tracks))
	}
	tracks := p.Tracks[1:]
	if len(tracks) > maxVoices {
		rng := rand.New(rand.NewSource(int64(len(tracks[0]))))
		perm := rng.Perm(len(tracks))
		picked := make([]midi.Track, maxVoices)
		for i := 0; i < maxVoices; i++ {
			picked[i] = tracks[perm[i]]
		}
		tracks = picked
	}

	interval := int64(p.TicksPerBeat / gridDivisor)
	if interval <= 0 {
		return nil, fmt.Errorf("score: piece %q has invalid sampling interval (ticks per beat %d, divisor %d)", p.Name, p.TicksPerBeat, gridDivisor)
	}
	var maxDur int64
	for _, t := range tracks {
		if d := t.Duration(); d > maxDur {
			maxDur = d
		}
	}
	numSamples := int((maxDur + interval/4 + interval - 1) / interval)

	voices := make([][]int, len(tracks))
	for i, t := range tracks {
		voices[i] = SampleTrack(t, interval, numSamples)
	}

	tokens := make([]string, numSamples)
	chord := make([]int, len(voices))
	parts := make([]string, len(voices))
	for step := 0; step < numSamples; step++ {
		for v := range voices {
			chord[v] = voices[v][step]
		}
		sort.Ints(chord)
		for v, pitch := range chord {
			parts[v] = strconv.Itoa(pitch)
		}
		tokens[step] = strings.Join(parts, "-")
	}
	return tokens, nil
}
