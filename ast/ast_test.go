package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/runtime"
	"github.com/libretto-lang/libretto/token"
)

func lit(v lson.Value) *ValueExpr { return &ValueExpr{Literal: v} }

func TestLetStmt_NeitherTypeNorInitializerIsError(t *testing.T) {
	cc := compiler.New()
	stmt := &LetStmt{Ident: "x"}
	stmt.Validate(cc)
	assert.True(t, cc.HasErrors())
}

func TestLetStmt_DeclaredTypeMismatchIsError(t *testing.T) {
	cc := compiler.New()
	stmt := &LetStmt{Ident: "x", HasDeclaredType: true, DeclaredType: lson.IntType, Rhs: lit(lson.Bool(true))}
	stmt.Validate(cc)
	assert.True(t, cc.HasErrors())
}

func TestAssignStmt_ToUndeclaredIsError(t *testing.T) {
	cc := compiler.New()
	stmt := &AssignStmt{Ident: "z", Rhs: lit(lson.Int(1))}
	stmt.Validate(cc)
	assert.True(t, cc.HasErrors())
}

func TestTermExpr_IntPlusFloatPromotes(t *testing.T) {
	term := NewTermExpr(lit(lson.Int(2)), []token.Type{token.PLUS}, []Node{lit(lson.Float(2.0))})
	cc := compiler.New()
	assert.Equal(t, lson.FloatType, term.Validate(cc))

	rc := runtime.New()
	v, err := term.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Float(4.0), v)
}

func TestComparisonExpr_ChainIsConjunction(t *testing.T) {
	// 10 < 15 > 20 -> (10<15) && (15>20) -> true && false -> false
	cmp := NewComparisonExpr(lit(lson.Int(10)), []token.Type{token.LT, token.GT}, []Node{lit(lson.Int(15)), lit(lson.Int(20))})
	rc := runtime.New()
	v, err := cmp.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Bool(false), v)
}

func TestExpr_DefaultFiresWhenInnerIsNone(t *testing.T) {
	missing := &ValueExpr{IsVariable: true, Name: "nope"}
	expr := &Expr{Inner: missing, HasDefault: true, Default: lson.Bool(true), DefaultType: lson.BoolType}

	cc := compiler.New()
	assert.Equal(t, lson.BoolType, expr.Validate(cc))
	assert.False(t, cc.HasErrors())

	rc := runtime.New()
	v, err := expr.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Bool(true), v)
}

func TestExpr_DefaultTypeMismatchIsError(t *testing.T) {
	expr := &Expr{Inner: lit(lson.Int(5)), HasDefault: true, Default: lson.Bool(true), DefaultType: lson.BoolType}
	cc := compiler.New()
	assert.Equal(t, lson.NoneType, expr.Validate(cc))
	assert.True(t, cc.HasErrors())
}

func TestUnaryExpr_NegateFloat(t *testing.T) {
	u := &UnaryExpr{Op: token.MINUS, Operand: lit(lson.Float(2.5))}
	rc := runtime.New()
	v, err := u.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.Float(-2.5), v)
}

func TestValueExpr_VariableLookupMissingYieldsNoneNoError(t *testing.T) {
	v := &ValueExpr{IsVariable: true, Name: "missing"}
	cc := compiler.New()
	assert.Equal(t, lson.NoneType, v.Validate(cc))
	assert.False(t, cc.HasErrors())

	rc := runtime.New()
	val, err := v.Evaluate(rc)
	require.NoError(t, err)
	assert.Equal(t, lson.None{}, val)
}

func TestRoot_EvaluateShortCircuitsOnRuntimeError(t *testing.T) {
	root := &Root{Statements: []Node{
		NewFactorExpr(lit(lson.Int(1)), []token.Type{token.SLASH}, []Node{lit(lson.Int(0))}),
		lit(lson.Int(99)),
	}}
	rc := runtime.New()
	_, err := root.Evaluate(rc)
	assert.Error(t, err)
}
