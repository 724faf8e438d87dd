/*
File    : libretto/libretto.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package libretto is the embedded scripting surface named in spec §6:
// Compile (lex, parse, validate) and Evaluate (tree-walk) are the only two
// operations a host needs to run a Libretto expression/statement program.
// Scope access (scope_push/scope_pop/scope_get/scope_insert) is exposed
// directly through runtime.Context and compiler.Context — both already
// implement exactly that surface (see scope.Scope) — so this package adds
// no further wrapping around them.
package libretto

import (
	"time"

	"github.com/libretto-lang/libretto/ast"
	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/parser"
	"github.com/libretto-lang/libretto/runtime"
)

// Compile lexes, parses, and validates sourceText against initialTypeBindings
// and returns the resulting AST together with the compile-time context that
// accumulated any errors. The AST is returned regardless of errors (§6):
// callers decide whether ctx.HasErrors() should block evaluation.
func Compile(sourceText string, initialTypeBindings map[string]lson.Type) (*ast.Root, *compiler.Context) {
	cc := compiler.WithBindings(initialTypeBindings)
	root := parser.New(sourceText).ParseProgram(cc)
	root.Validate(cc)
	cc.Metrics.ObserveCompile(len(cc.Errors))
	return root, cc
}

// Evaluate tree-walks root against rc, mutating rc's runtime scope as it
// goes, and returns the resulting LSON value or the first runtime error
// encountered (§6, §7: evaluation short-circuits on the first runtime
// error).
func Evaluate(root *ast.Root, rc *runtime.Context) (lson.Value, error) {
	start := time.Now()
	v, err := root.Evaluate(rc)
	if rc.Metrics != nil {
		rc.Metrics.ObserveEvaluateDuration(time.Since(start))
	}
	return v, err
}
