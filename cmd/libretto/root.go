package main

import (
	"log/slog"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/libretto-lang/libretto/version"
)

// globalFlags holds the flags shared by every subcommand, mirroring
// SPEC_FULL.md's Configuration section: --log-level, --no-color,
// --step-limit.
type globalFlags struct {
	logLevel  string
	noColor   bool
	stepLimit int
}

var flags globalFlags

// NewRootCmd builds the root `libretto` command and wires its subcommands.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "libretto",
		Short:   "Libretto - an embeddable dialogue scripting language",
		Version: version.Number,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			configureLogging(flags.logLevel)
			color.NoColor = flags.noColor
		},
	}

	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info",
		"log level: debug, info, warn, error")
	cmd.PersistentFlags().BoolVar(&flags.noColor, "no-color", false,
		"disable colorized output")
	cmd.PersistentFlags().IntVar(&flags.stepLimit, "step-limit", 0,
		"abort evaluation after this many milliseconds (0 = unlimited); see spec §5 on host-side cancellation")

	cmd.AddCommand(newRunCmd())
	cmd.AddCommand(newReplCmd())
	cmd.AddCommand(newCheckCmd())

	return cmd
}

// configureLogging installs a text-handler slog.Logger at the requested
// level as the process default, per SPEC_FULL.md's Logging section: the core
// packages stay logging-free, only the CLI/REPL boundary logs.
func configureLogging(level string) {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	slog.SetDefault(slog.New(handler))
}
