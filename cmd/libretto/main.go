// Package main is the entry point for the Libretto CLI: a thin cobra
// wrapper around the libretto package's Compile/Evaluate surface, grounded in
// akashmaji946-go-mix/main/main.go's REPL-vs-file dispatch but restructured
// into spf13/cobra subcommands (run / repl / check) per SPEC_FULL.md's
// "Configuration" section.
package main

import (
	"log/slog"
	"os"
)

func main() {
	if err := NewRootCmd().Execute(); err != nil {
		slog.Error("libretto command failed", "error", err)
		os.Exit(1)
	}
}
