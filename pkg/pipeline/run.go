package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kimberly-brown/bach-propagation/pkg/corpus"
	"github.com/kimberly-brown/bach-propagation/pkg/dataset"
	"github.com/kimberly-brown/bach-propagation/pkg/midi"
	"github.com/kimberly-brown/bach-propagation/pkg/score"
)

// Result carries the assembled dataset plus run diagnostics.
type Result struct {
	Dataset *dataset.Dataset

	// Pieces is the number of pieces that contributed tokens.
	Pieces int

	// Skipped is the number of pieces dropped for having too few tracks.
	Skipped int
}

// Run executes the full preprocessing flow against src: load every piece
// from the configured collections, normalize each to C at the standard
// resolution, sample it onto the grid, and assemble the resulting token
// sequences into a dataset.
//
// Pieces are processed concurrently, bounded by cfg.Workers, and their
// token sequences keep corpus order regardless of completion order. A
// piece with an unrecognized key signature aborts the run; a piece with
// too few tracks is skipped with a warning.
//
// Zero-valued Config fields get their documented defaults; the caller's
// Config is not modified.
func Run(ctx context.Context, cfg *Config, src corpus.Source) (*Result, error) {
	runCfg := *cfg
	runCfg.ApplyDefaults()
	cfg = &runCfg

	loader := corpus.NewLoader(src, cfg.Collections, cfg.Extension)
	pieces, err := loader.Load(ctx)
	if err != nil {
		return nil, err
	}
	slog.Info("corpus loaded", "pieces", len(pieces))

	rolls, skipped, err := rollAll(pieces, cfg)
	if err != nil {
		return nil, err
	}

	d, err := dataset.Assemble(rolls, dataset.Options{
		SplitFraction: cfg.SplitFraction,
		StarterLen:    cfg.StarterLen,
	})
	if err != nil {
		return nil, err
	}
	slog.Info("dataset assembled",
		"pieces", len(rolls),
		"train", len(d.TrainInputs),
		"test", len(d.TestInputs),
		"vocab", d.Vocab.Size())
	return &Result{Dataset: d, Pieces: len(rolls), Skipped: skipped}, nil
}

// rollAll normalizes and tokenizes every piece with a bounded worker
// pool. Results land in a slice indexed by piece so order is stable;
// skipped pieces leave nil gaps that are compacted afterwards.
func rollAll(pieces []*midi.Piece, cfg *Config) ([][]string, int, error) {
	rolls := make([][]string, len(pieces))
	errs := make([]error, len(pieces))

	var wg sync.WaitGroup
	sem := make(chan struct{}, cfg.Workers)
	for i, p := range pieces {
		wg.Add(1)
		sem <- struct{}{}
		go func(i int, p *midi.Piece) {
			defer wg.Done()
			defer func() { <-sem }()
			errs[i] = rollOne(p, cfg.GridDivisor, rolls, i)
		}(i, p)
	}
	wg.Wait()

	out := make([][]string, 0, len(pieces))
	skipped := 0
	for i := range pieces {
		if errs[i] != nil {
			return nil, 0, errs[i]
		}
		if rolls[i] == nil {
			skipped++
			continue
		}
		out = append(out, rolls[i])
	}
	return out, skipped, nil
}

func rollOne(p *midi.Piece, gridDivisor int, rolls [][]string, i int) error {
	name := p.Name
	p, err := score.Normalize(p)
	if err != nil {
		return fmt.Errorf("pipeline: normalize %s: %w", name, err)
	}
	tokens, err := score.BuildRoll(p, gridDivisor)
	if err != nil {
		slog.Warn("skipping piece", "piece", name, "error", err)
		return nil
	}
	rolls[i] = tokens
	slog.Debug("piece tokenized", "piece", name, "tokens", len(tokens))
	return nil
}
