// Package main is the entry point for the bachprop CLI.
//
// Usage:
//
//	bachprop [flags] <command> [subcommand] [args]
//
// Commands:
//
//	preprocess - Tokenize a MIDI corpus into a training dataset
//	dataset    - Inspect datasets saved by preprocess (list, show, delete)
//	version    - Show version information
package main

import (
	"fmt"
	"os"

	"github.com/kimberly-brown/bach-propagation/cmd/bachprop/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
