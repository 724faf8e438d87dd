/*
File    : libretto/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the Read-Eval-Print Loop (REPL) for Libretto.
The REPL provides an interactive environment where users can:
- Enter Libretto expressions and statements line by line
- See immediate results of compiling and evaluating their input
- Navigate command history using arrow keys
- Receive colored feedback for different types of output

Unlike one-shot file execution, the REPL keeps a single compiler.Context and
runtime.Context alive across lines, so a `let` on one line is visible to the
next (spec §8 scenario 6). The REPL uses the readline library for enhanced
line editing capabilities and integrates with the parser and evaluator to
execute user input.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/parser"
	"github.com/libretto-lang/libretto/runtime"
)

// Color definitions for REPL output.
// These colors provide visual feedback to enhance user experience:
// - blueColor: decorative lines and separators
// - yellowColor: expression results
// - redColor: compile/runtime error messages
// - greenColor: banner text
// - cyanColor: informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents the Read-Eval-Print Loop instance.
// It encapsulates all the configuration needed to run an interactive session.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the Libretto module
	Author  string // Author/maintainer attribution
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user (e.g., "libretto >>> ")

	// Registry, if non-nil, is used to register Prometheus metrics for the
	// session's compiler.Context and runtime.Context (domain-stack addition;
	// nil is the common case for interactive use).
	Registry prometheus.Registerer
}

// NewRepl creates and initializes a new Repl instance.
// This constructor sets up all the visual elements and configuration needed
// for the interactive session.
//
// Parameters:
//
//	banner  - ASCII art logo to display at startup
//	version - Version string of the Libretto module
//	author  - Author/maintainer attribution
//	line    - Separator line for formatting
//	license - Software license information
//	prompt  - Command prompt string
//
// Returns:
//
//	A pointer to a newly created Repl instance
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
// This function is called when the REPL starts to provide users with:
// - The Libretto logo (ASCII art)
// - Version and author information
// - Basic usage instructions
// - Command history navigation tips
//
// Parameters:
//
//	writer - The io.Writer to output the banner to (typically os.Stdout)
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	// Print top separator line in blue
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print the ASCII art banner in green
	greenColor.Fprintf(writer, "%s\n", r.Banner)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print version, author, and license information in yellow
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)

	// Print separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)

	// Print welcome message and usage instructions in cyan
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Libretto!")
	cyanColor.Fprintf(writer, "%s\n", "Type your code and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")

	// Print bottom separator line
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop.
// This is the core function that handles the interactive session:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Creates one shared compiler.Context/runtime.Context for the whole session
// 4. Enters the main read-eval-print loop
// 5. Processes user input until exit
//
// The loop continues until:
// - User types '.exit'
// - EOF is encountered (Ctrl+D)
// - An error occurs in readline
//
// Parameters:
//
//	reader - Input source (typically os.Stdin, though not directly used due to readline)
//	writer - Output destination (typically os.Stdout)
//
// Features:
// - Command history (accessible via up/down arrows)
// - Line editing capabilities (backspace, cursor movement, etc.)
// - Automatic whitespace trimming
// - Empty line handling
// - Panic recovery for robust error handling
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	// Print the welcome banner and usage instructions
	r.PrintBannerInfo(writer)

	// Create a new readline instance for enhanced line editing
	// This provides features like command history, cursor movement, etc.
	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	// One compiler.Context and one runtime.Context for the entire session,
	// so a `let`/assignment on one line stays visible to the next. Both share
	// one metrics.Recorder: registering a second set of the same instruments
	// with r.Registry would panic.
	cc := compiler.WithRegistry(nil, r.Registry)
	rc := runtime.New()
	rc.Metrics = cc.Metrics

	// Main REPL loop - continues until user exits or error occurs
	for {
		// Read a line of input from the user; this blocks until Enter
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Trim whitespace from the input
		line = strings.Trim(line, " \n\t\r")

		// Skip empty lines
		if line == "" {
			continue
		}

		// Check for exit command
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the command to history for up/down arrow navigation
		rl.SaveHistory(line)

		// Execute the input against the shared session state, with panic
		// recovery so one bad line never kills the session
		r.executeWithRecovery(writer, line, cc, rc)
	}
}

// executeWithRecovery compiles and evaluates line against the session's
// shared cc/rc, recovering from any panic raised during either phase.
// cc and rc persist across calls, which is how `let`/assignment state
// survives from one line to the next (spec §8 scenario 6).
//
// Parameters:
//
//	writer - Output destination for results and error messages
//	line   - The trimmed, non-empty source line just read from the user
//	cc     - The session's shared compile-time context (errors accumulate here)
//	rc     - The session's shared runtime context (scope mutations persist here)
func (r *Repl) executeWithRecovery(writer io.Writer, line string, cc *compiler.Context, rc *runtime.Context) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[RUNTIME ERROR] %v\n", recovered)
		}
	}()

	// Compile (lex, parse, validate) just this line against the session's
	// accumulated scope; only the errors this line added are reported.
	errCountBefore := len(cc.Errors)
	root := parser.New(line).ParseProgram(cc)
	root.Validate(cc)
	cc.Metrics.ObserveCompile(len(cc.Errors) - errCountBefore)

	if len(cc.Errors) > errCountBefore {
		for _, err := range cc.Errors[errCountBefore:] {
			redColor.Fprintf(writer, "[COMPILE ERROR] %s\n", err)
		}
		return
	}

	// Evaluate against the session's shared runtime scope
	result, err := root.Evaluate(rc)
	if err != nil {
		redColor.Fprintf(writer, "[RUNTIME ERROR] %s\n", err)
		return
	}

	// Print the result unless the line was a statement that yields None
	if _, isNone := result.(lson.None); !isNone {
		yellowColor.Fprintf(writer, "%s\n", result.String())
	}
}
