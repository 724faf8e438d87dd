package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/samber/oops"
	"github.com/spf13/cobra"

	"github.com/libretto-lang/libretto"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/runtime"
)

var (
	redColor   = color.New(color.FgRed)
	greenColor = color.New(color.FgGreen)
)

// newRunCmd builds the `libretto run <file>` subcommand: compile and
// evaluate a script file in one shot, grounded in
// akashmaji946-go-mix/main/main.go's runFile/executeFileWithRecovery.
func newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run <file>",
		Short: "Compile and evaluate a Libretto script file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFile(args[0])
		},
	}
	return cmd
}

func runFile(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		wrapped := oops.In("libretto").With("file", path).Wrapf(err, "read script file")
		slog.Error("could not read script file", "error", wrapped, "file", path)
		redColor.Fprintf(os.Stderr, "[FILE ERROR] %v\n", wrapped)
		os.Exit(1)
	}

	root, cc := libretto.Compile(string(source), nil)
	if cc.HasErrors() {
		for _, cerr := range cc.Errors {
			redColor.Fprintf(os.Stderr, "[COMPILE ERROR] %s\n", cerr)
		}
		slog.Error("compile failed", "file", path, "error_count", len(cc.Errors))
		os.Exit(1)
	}
	slog.Debug("compiled script", "file", path)

	rc := runtime.New()
	result, err := evaluateWithStepLimit(root, rc, flags.stepLimit)
	if err != nil {
		wrapped := oops.In("libretto").With("file", path).Wrapf(err, "evaluate script")
		slog.Error("evaluate failed", "error", wrapped, "file", path)
		redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", wrapped)
		os.Exit(1)
	}

	if _, isNone := result.(lson.None); !isNone {
		greenColor.Fprintf(os.Stdout, "%s\n", result.String())
	}
	return nil
}
