package pipeline

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfigDefaults(t *testing.T) {
	path := writeConfig(t, "corpus_root: /data/midi\n")
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.CorpusRoot != "/data/midi" {
		t.Errorf("CorpusRoot = %q", cfg.CorpusRoot)
	}
	if cfg.Extension != ".mid" {
		t.Errorf("Extension = %q, want .mid", cfg.Extension)
	}
	if cfg.SplitFraction != 0.8 {
		t.Errorf("SplitFraction = %v, want 0.8", cfg.SplitFraction)
	}
	if cfg.StarterLen != 64 {
		t.Errorf("StarterLen = %d, want 64", cfg.StarterLen)
	}
	if cfg.GridDivisor != 2 {
		t.Errorf("GridDivisor = %d, want 2", cfg.GridDivisor)
	}
	if cfg.Workers < 1 {
		t.Errorf("Workers = %d, want >= 1", cfg.Workers)
	}
}

func TestLoadConfigExplicit(t *testing.T) {
	path := writeConfig(t, `
corpus_root: /data/midi
collections: [chorales, fugues]
split_fraction: 0.9
starter_len: 32
grid_divisor: 4
workers: 2
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if len(cfg.Collections) != 2 || cfg.Collections[0] != "chorales" {
		t.Errorf("Collections = %v", cfg.Collections)
	}
	if cfg.SplitFraction != 0.9 {
		t.Errorf("SplitFraction = %v", cfg.SplitFraction)
	}
	if cfg.StarterLen != 32 {
		t.Errorf("StarterLen = %d", cfg.StarterLen)
	}
	if cfg.GridDivisor != 4 {
		t.Errorf("GridDivisor = %d", cfg.GridDivisor)
	}
	if cfg.Workers != 2 {
		t.Errorf("Workers = %d", cfg.Workers)
	}
}

func TestLoadConfigS3(t *testing.T) {
	path := writeConfig(t, `
s3:
  bucket: midi-corpus
  prefix: bach
`)
	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.S3 == nil || cfg.S3.Bucket != "midi-corpus" || cfg.S3.Prefix != "bach" {
		t.Errorf("S3 = %+v", cfg.S3)
	}
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no source", "workers: 2\n"},
		{"s3 without bucket", "s3: {prefix: bach}\n"},
		{"bad split", "corpus_root: /data\nsplit_fraction: 1.2\n"},
		{"bad divisor", "corpus_root: /data\ngrid_divisor: -1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.body)
			if _, err := LoadConfig(path); err == nil {
				t.Errorf("LoadConfig accepted %q", tt.body)
			}
		})
	}
}
