// Package pipeline runs the preprocessing flow end to end: load a MIDI
// corpus, normalize and tokenize each piece, and assemble the dataset.
package pipeline

import (
	"fmt"
	"os"
	"runtime"

	"github.com/goccy/go-yaml"

	"github.com/kimberly-brown/bach-propagation/pkg/dataset"
	"github.com/kimberly-brown/bach-propagation/pkg/score"
)

// S3Config points the pipeline at an S3 bucket instead of a local
// directory. Credentials and region come from the default AWS config
// chain.
type S3Config struct {
	// Bucket is the bucket name.
	Bucket string `yaml:"bucket"`

	// Prefix is prepended to all object keys; empty for none.
	Prefix string `yaml:"prefix,omitempty"`
}

// Config describes a preprocessing run.
type Config struct {
	// CorpusRoot is the local directory holding the collections.
	// Ignored when S3 is set.
	CorpusRoot string `yaml:"corpus_root,omitempty"`

	// S3, when set, reads the corpus from an S3 bucket.
	S3 *S3Config `yaml:"s3,omitempty"`

	// Collections narrows which corpus directories are scanned.
	// Empty means the standard Bach collections.
	Collections []string `yaml:"collections,omitempty"`

	// Extension filters corpus files by name. Empty means ".mid".
	Extension string `yaml:"extension,omitempty"`

	// SplitFraction is the training share of the token stream.
	// Zero means 0.8.
	SplitFraction float64 `yaml:"split_fraction,omitempty"`

	// StarterLen is the number of opening tokens kept per piece.
	// Zero means 64.
	StarterLen int `yaml:"starter_len,omitempty"`

	// GridDivisor divides the beat into sampling steps. Zero means 2.
	GridDivisor int `yaml:"grid_divisor,omitempty"`

	// Workers bounds concurrent piece processing. Zero means GOMAXPROCS.
	Workers int `yaml:"workers,omitempty"`
}

// LoadConfig reads a YAML run configuration from path and applies
// defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pipeline: read config: %w", err)
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("pipeline: parse config %s: %w", path, err)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// ApplyDefaults fills zero-valued fields.
func (c *Config) ApplyDefaults() {
	if c.Extension == "" {
		c.Extension = ".mid"
	}
	if c.SplitFraction == 0 {
		c.SplitFraction = dataset.DefaultSplitFraction
	}
	if c.StarterLen == 0 {
		c.StarterLen = dataset.DefaultStarterLen
	}
	if c.GridDivisor == 0 {
		c.GridDivisor = score.DefaultGridDivisor
	}
	if c.Workers <= 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}
}

// Validate checks the configuration for contradictions.
func (c *Config) Validate() error {
	if c.CorpusRoot == "" && c.S3 == nil {
		return fmt.Errorf("pipeline: config needs corpus_root or s3")
	}
	if c.S3 != nil && c.S3.Bucket == "" {
		return fmt.Errorf("pipeline: s3 config needs a bucket")
	}
	if c.SplitFraction <= 0 || c.SplitFraction >= 1 {
		return fmt.Errorf("pipeline: split_fraction %v outside (0, 1)", c.SplitFraction)
	}
	if c.GridDivisor < 1 {
		return fmt.Errorf("pipeline: grid_divisor %d below 1", c.GridDivisor)
	}
	return nil
}
