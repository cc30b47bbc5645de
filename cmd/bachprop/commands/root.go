package commands

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "bachprop",
	Short: "Preprocess symbolic music corpora for sequence models",
	Long: `bachprop turns a MIDI corpus into a tokenized training dataset.

Each piece is transposed to C, sampled onto a fixed time grid, and its
voices joined into chord tokens. The token stream is split into aligned
input/label sequences plus per-piece starter prefixes for generation.

Examples:
  # Run the pipeline from a YAML config
  bachprop preprocess -f run.yaml

  # Run and persist the result for later inspection
  bachprop preprocess -f run.yaml --save bach-chorales --store-dir ./store

  # Inspect saved datasets
  bachprop dataset list --store-dir ./store
  bachprop dataset show bach-chorales --store-dir ./store`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initLogging)

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initLogging() {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})))
}

// IsVerbose reports whether --verbose was set.
func IsVerbose() bool {
	return verbose
}
