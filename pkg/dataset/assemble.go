package dataset

import (
	"errors"
	"fmt"

	"github.com/kimberly-brown/bach-propagation/pkg/vocab"
)

// Defaults for [Options].
const (
	DefaultSplitFraction = 0.8
	DefaultStarterLen    = 64
)

// ErrEmptyCorpus is returned when no tokens are available to assemble.
var ErrEmptyCorpus = errors.New("dataset: no tokens to assemble")

// Options control how the corpus stream is split and sampled.
type Options struct {
	// SplitFraction is the share of the stream used for training,
	// in (0, 1). Zero means DefaultSplitFraction.
	SplitFraction float64

	// StarterLen is the number of opening tokens kept per piece.
	// Zero means DefaultStarterLen.
	StarterLen int
}

// Assemble concatenates the pieces' token sequences into one stream,
// splits it at floor(SplitFraction * total), builds the vocabulary from
// exactly the training inputs, and encodes both halves as next-token
// pairs: input i is labeled with the id at i+1. The token just before
// the boundary appears only as the final training label, so it stays
// out of the vocabulary; like unknown test-half tokens, it falls back
// to id 0 if it occurs nowhere earlier. Assemble also records each
// piece's opening tokens as a starter sequence, encoded with the same
// vocabulary.
func Assemble(rolls [][]string, opts Options) (*Dataset, error) {
	if opts.SplitFraction == 0 {
		opts.SplitFraction = DefaultSplitFraction
	}
	if opts.StarterLen == 0 {
		opts.StarterLen = DefaultStarterLen
	}
	if opts.SplitFraction <= 0 || opts.SplitFraction >= 1 {
		return nil, fmt.Errorf("dataset: split fraction %v outside (0, 1)", opts.SplitFraction)
	}
	if opts.StarterLen < 0 {
		return nil, fmt.Errorf("dataset: negative starter length %d", opts.StarterLen)
	}

	var total int
	for _, r := range rolls {
		total += len(r)
	}
	if total == 0 {
		return nil, ErrEmptyCorpus
	}
	if total < 2 {
		return nil, fmt.Errorf("dataset: %d tokens, need at least 2 to split", total)
	}
	stream := make([]string, 0, total)
	for _, r := range rolls {
		stream = append(stream, r...)
	}

	boundary := int(opts.SplitFraction * float64(total))
	if boundary < 1 {
		boundary = 1
	}
	if boundary >= total {
		boundary = total - 1
	}

	v := vocab.Build(stream[:boundary-1])
	testIDs := v.IDs(stream[boundary:])

	d := &Dataset{
		TrainInputs: v.IDs(stream[:boundary-1]),
		TrainLabels: v.IDs(stream[1:boundary]),
		TestInputs:  testIDs[:len(testIDs)-1],
		TestLabels:  testIDs[1:],
		Vocab:       v,
	}
	for _, r := range rolls {
		n := opts.StarterLen
		if len(r) < n {
			n = len(r)
		}
		d.Starters = append(d.Starters, v.IDs(r[:n]))
	}
	return d, nil
}
