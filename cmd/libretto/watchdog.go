package main

import (
	"fmt"
	"time"

	"github.com/libretto-lang/libretto/ast"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/runtime"
)

// evaluateWithStepLimit runs root.Evaluate on its own goroutine and returns a
// timeout error if it does not finish within limitMillis. §5 explicitly
// leaves cancellation to the host ("if the host requires them, they wrap the
// evaluator"); limitMillis <= 0 means no bound, and Evaluate runs inline on
// the calling goroutine so a program with no limit pays no goroutine cost.
func evaluateWithStepLimit(root *ast.Root, rc *runtime.Context, limitMillis int) (lson.Value, error) {
	if limitMillis <= 0 {
		return root.Evaluate(rc)
	}

	type outcome struct {
		v   lson.Value
		err error
	}
	done := make(chan outcome, 1)
	go func() {
		v, err := root.Evaluate(rc)
		done <- outcome{v, err}
	}()

	select {
	case o := <-done:
		return o.v, o.err
	case <-time.After(time.Duration(limitMillis) * time.Millisecond):
		return nil, fmt.Errorf("evaluation exceeded step-limit of %dms", limitMillis)
	}
}
