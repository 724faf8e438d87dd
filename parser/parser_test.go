/*
File    : libretto/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libretto-lang/libretto/ast"
	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/runtime"
)

func compileAndRun(t *testing.T, src string) (lson.Value, *compiler.Context) {
	t.Helper()
	cc := compiler.New()
	root := New(src).ParseProgram(cc)
	root.Validate(cc)
	rc := runtime.New()
	v, err := root.Evaluate(rc)
	require.NoError(t, err)
	return v, cc
}

// Seed end-to-end scenarios from spec §8.

func TestScenario1_SimpleSum(t *testing.T) {
	v, cc := compileAndRun(t, "2 + 3")
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Int(5), v)
}

func TestScenario2_PrecedenceChain(t *testing.T) {
	v, cc := compileAndRun(t, "2 * 2 + 2 * 2")
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Int(8), v)
}

func TestScenario3_FloatPromotion(t *testing.T) {
	v, cc := compileAndRun(t, "5 / 2.5")
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Float(2.0), v)
}

func TestScenario4_ComparisonChain(t *testing.T) {
	v, cc := compileAndRun(t, "10 < 15 < 20 > 15 > 10")
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Bool(true), v)
}

func TestScenario5_DefaultFiresOnMissingVariable(t *testing.T) {
	cc := compiler.WithBindings(map[string]lson.Type{"bar": lson.BoolType})
	root := New(`bar ? true`).ParseProgram(cc)
	root.Validate(cc)
	require.False(t, cc.HasErrors())

	rc := runtime.New()
	rc.Scope.Insert("bar", lson.Bool(true))
	v, err := root.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Bool(true), v)

	// No binding for bar: lookup yields None, default fires.
	cc2 := compiler.WithBindings(map[string]lson.Type{"bar": lson.BoolType})
	root2 := New(`bar ? true`).ParseProgram(cc2)
	root2.Validate(cc2)
	rc2 := runtime.New()
	v2, err := root2.Evaluate(rc2)
	require.NoError(t, err)
	assert.Equal(t, lson.Bool(true), v2)
}

func TestScenario6_LetThenUseAcrossStatements(t *testing.T) {
	v, cc := compileAndRun(t, `let x : float = 2.0; x + 1`)
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Float(3.0), v)
}

func TestScenario7_LetBoolThenArithmeticIsCompileError(t *testing.T) {
	cc := compiler.New()
	root := New(`let y = false; y + 1`).ParseProgram(cc)
	root.Validate(cc)
	require.True(t, cc.HasErrors())
}

func TestScenario8_AssignUndeclaredIsCompileError(t *testing.T) {
	cc := compiler.New()
	root := New(`z = 1;`).ParseProgram(cc)
	root.Validate(cc)
	require.True(t, cc.HasErrors())
	assert.Equal(t, compiler.AssignmentToUndeclaredVariable("z"), cc.Errors[0])
}

// TestParseAssignStmt_ConsumesIdentAndRhs guards against checkAssignStmt
// committing its look-ahead cursor: it must rewind, not Mark, so
// parseAssignStmt's own Pop calls land on the real ident/'=' tokens rather
// than the tokens one look-ahead step ahead of them.
func TestParseAssignStmt_ConsumesIdentAndRhs(t *testing.T) {
	cc := compiler.New()
	root := New(`let z = 0; z = 1;`).ParseProgram(cc)
	require.Len(t, root.Statements, 2)

	stmt, ok := root.Statements[1].(*ast.AssignStmt)
	require.True(t, ok)
	assert.Equal(t, "z", stmt.Ident)

	rc := runtime.New()
	root.Validate(cc)
	require.False(t, cc.HasErrors())
	_, err := root.Evaluate(rc)
	require.NoError(t, err)
	v, ok := rc.Scope.Get("z")
	require.True(t, ok)
	assert.Equal(t, lson.Int(1), v)
}

// TestParseProgram_IllegalTokenDoesNotHang guards the ParseProgram progress
// invariant: a token that can't start any statement (here an ILLEGAL lexeme
// from a stray '@') must still be consumed so the parse loop terminates,
// per §4.1's "a lex error ... does not terminate lexing" and §6's "compile
// ... returns the AST regardless of errors".
func TestParseProgram_IllegalTokenDoesNotHang(t *testing.T) {
	cc := compiler.New()
	done := make(chan *ast.Root, 1)
	go func() { done <- New(`@`).ParseProgram(cc) }()

	select {
	case root := <-done:
		require.NotNil(t, root)
		assert.True(t, cc.HasErrors())
	case <-time.After(2 * time.Second):
		t.Fatal("ParseProgram did not terminate on an illegal token")
	}
}

func TestParser_ArrayAndStructLiterals(t *testing.T) {
	cc := compiler.New()
	root := New(`[1, 2, 3]`).ParseProgram(cc)
	root.Validate(cc)
	require.False(t, cc.HasErrors())
	rc := runtime.New()
	v, err := root.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Array{lson.Int(1), lson.Int(2), lson.Int(3)}, v)

	cc2 := compiler.New()
	root2 := New(`{a: 1, b: "x"}`).ParseProgram(cc2)
	root2.Validate(cc2)
	require.False(t, cc2.HasErrors())
	rc2 := runtime.New()
	v2, err := root2.Evaluate(rc2)
	require.NoError(t, err)
	assert.Equal(t, lson.Struct{"a": lson.Int(1), "b": lson.String("x")}, v2)
}

func TestParser_ParenthesizedExpression(t *testing.T) {
	v, cc := compileAndRun(t, `(2 + 3) * 4`)
	assert.False(t, cc.HasErrors())
	assert.Equal(t, lson.Int(20), v)
}

func TestParser_LetWithoutTypeOrInitializerIsCompileError(t *testing.T) {
	cc := compiler.New()
	root := New(`let x;`).ParseProgram(cc)
	root.Validate(cc)
	assert.True(t, cc.HasErrors())
}

func TestParser_UnaryBangOnNonBoolIsCompileError(t *testing.T) {
	cc := compiler.New()
	root := New(`!5`).ParseProgram(cc)
	root.Validate(cc)
	assert.True(t, cc.HasErrors())
}
