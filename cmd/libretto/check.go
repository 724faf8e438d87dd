package main

import (
	"log/slog"
	"os"

	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/libretto-lang/libretto"
)

// newCheckCmd builds the `libretto check <file>` subcommand: compile only,
// print every compile error, and exit nonzero if any were recorded. This is
// the CLI surface for spec §7's policy that "callers are expected not to
// evaluate an AST whose error list is non-empty" — check lets a host verify
// that ahead of time without running the script.
func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check <file>",
		Short: "Compile a Libretto script file and report compile errors",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return checkFile(args[0])
		},
	}
	return cmd
}

func checkFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		wrapped := oops.In("libretto").With("file", path).Wrapf(err, "read script file")
		slog.Error("could not read script file", "error", wrapped, "file", path)
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", wrapped)
		os.Exit(1)
	}

	_, cc := libretto.Compile(string(source), nil)
	if !cc.HasErrors() {
		greenColor.Fprintf(os.Stdout, "%s: OK\n", path)
		return nil
	}

	for _, cerr := range cc.Errors {
		redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %s\n", cerr)
	}
	slog.Error("check failed", "file", path, "error_count", len(cc.Errors))
	os.Exit(1)
	return nil
}
