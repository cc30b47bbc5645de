// Package dataset assembles tokenized pieces into aligned training and
// evaluation sequences.
package dataset

import "github.com/kimberly-brown/bach-propagation/pkg/vocab"

// Dataset holds the encoded corpus split into a training and a test
// portion. Inputs and labels are the same stream offset by one step, so
// each input id is labeled with its successor.
type Dataset struct {
	// TrainInputs and TrainLabels are aligned id sequences drawn from
	// the first part of the corpus stream.
	TrainInputs []int
	TrainLabels []int

	// TestInputs and TestLabels cover the remainder of the stream.
	TestInputs []int
	TestLabels []int

	// Starters holds the opening ids of each piece, for seeding
	// generation. Encoded with the training vocabulary.
	Starters [][]int

	// Vocab is the token table built from the training portion.
	Vocab *vocab.Vocab
}
