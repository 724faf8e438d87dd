package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/libretto-lang/libretto/repl"
	"github.com/libretto-lang/libretto/version"
)

const (
	banner = `
 _      ___ ____  ____  _____ _____ _____ ___
| |    |_ _|  _ \|  _ \| ____|_   _|_   _/ _ \
| |     | || |_) | |_) |  _|   | |   | || | | |
| |___  | ||  _ <|  _ <| |___  | |   | || |_| |
|_____||___|_| \_\_| \_\_____| |_|   |_| \___/
`
	author  = "Libretto Contributors"
	license = "MIT"
	line    = "----------------------------------------------------------------"
	prompt  = "libretto >>> "
)

// newReplCmd builds the `libretto repl` subcommand, grounded in
// akashmaji946-go-mix/main/main.go's default REPL-mode dispatch.
func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive Libretto REPL",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			r := repl.NewRepl(banner, version.Number, author, line, license, prompt)
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
