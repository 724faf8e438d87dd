package repl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"

	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/runtime"
)

func newTestRepl() *Repl {
	return NewRepl("LIBRETTO", "0.1.0", "test", "----", "MIT", "lb >>> ")
}

func TestPrintBannerInfo(t *testing.T) {
	var buf bytes.Buffer
	newTestRepl().PrintBannerInfo(&buf)

	out := buf.String()
	assert.Contains(t, out, "LIBRETTO")
	assert.Contains(t, out, "0.1.0")
	assert.Contains(t, out, ".exit")
}

func TestExecuteWithRecovery_LetPersistsAcrossLines(t *testing.T) {
	defer goleak.VerifyNone(t)

	r := newTestRepl()
	cc := compiler.New()
	rc := runtime.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "let x: int = 2;", cc, rc)
	assert.Empty(t, buf.String())

	buf.Reset()
	r.executeWithRecovery(&buf, "x + 3", cc, rc)
	assert.Contains(t, buf.String(), "5")
}

func TestExecuteWithRecovery_CompileErrorReported(t *testing.T) {
	r := newTestRepl()
	cc := compiler.New()
	rc := runtime.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "y = 1;", cc, rc)
	assert.Contains(t, buf.String(), "COMPILE ERROR")
}

func TestExecuteWithRecovery_RuntimeErrorReported(t *testing.T) {
	r := newTestRepl()
	cc := compiler.New()
	rc := runtime.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "1 / 0", cc, rc)
	assert.Contains(t, buf.String(), "RUNTIME ERROR")
}

func TestExecuteWithRecovery_NoneResultPrintsNothing(t *testing.T) {
	r := newTestRepl()
	cc := compiler.New()
	rc := runtime.New()
	var buf bytes.Buffer

	r.executeWithRecovery(&buf, "let z: int;", cc, rc)
	assert.Empty(t, buf.String())
}
