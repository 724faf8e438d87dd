/*
File    : libretto/ast/ast.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package ast defines Libretto's AST node types and implements the
// validate/evaluate half of spec §4.3's combinator quartet directly on each
// node (parsing lives in package parser, which constructs these nodes; the
// nodes themselves have no RawCheck/Check/Parse methods). Validator and evaluator are kept as two
// independent passes per node rather than a single visitor trait, one of the
// two encodings §9's Design Notes explicitly permits.
package ast

import (
	"github.com/libretto-lang/libretto/compiler"
	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/runtime"
	"github.com/libretto-lang/libretto/token"
)

// Node is implemented by every statement and expression node: Validate
// assigns (and records errors for) a static LsonType, Evaluate computes the
// runtime LSON value. The two passes share the same method set because
// spec §4.3 specifies both as part of a single per-node quartet.
type Node interface {
	Validate(cc *compiler.Context) lson.Type
	Evaluate(rc *runtime.Context) (lson.Value, error)
}

// Root is the parsed program: a flat sequence of statements.
type Root struct {
	Statements []Node
}

// Validate validates every statement in order, returning the last
// statement's type (or NoneType for an empty program).
func (r *Root) Validate(cc *compiler.Context) lson.Type {
	t := lson.NoneType
	for _, stmt := range r.Statements {
		t = stmt.Validate(cc)
	}
	return t
}

// Evaluate evaluates every statement in order against rc, returning the
// last statement's value (or None for an empty program). Evaluation
// short-circuits on the first runtime error (§7).
func (r *Root) Evaluate(rc *runtime.Context) (lson.Value, error) {
	var last lson.Value = lson.None{}
	for _, stmt := range r.Statements {
		v, err := stmt.Evaluate(rc)
		if err != nil {
			return nil, err
		}
		last = v
	}
	return last, nil
}

// LetStmt parses `let ident (':' type)? ('=' expr)? ';'`.
type LetStmt struct {
	Ident           string
	HasDeclaredType bool
	DeclaredType    lson.Type
	Rhs             Node // nil if no initializer
}

// Validate implements the let-statement logic from
// original_source/src/parse/logic_let_stmt.rs: a declared type and an
// inferred RHS type reconcile into the variable's compile-time binding;
// neither present is a LetWithoutType error; both present but mismatched is
// an AssignmentTypeMismatch error. LetStmt's own static type is always None
// (§3: statements may return None).
func (s *LetStmt) Validate(cc *compiler.Context) lson.Type {
	rhsType := lson.NoneType
	if s.Rhs != nil {
		rhsType = s.Rhs.Validate(cc)
	}

	switch {
	case !s.HasDeclaredType && rhsType == lson.NoneType:
		cc.PushError(compiler.LetWithoutType(s.Ident))
	case !s.HasDeclaredType:
		cc.Scope.Insert(s.Ident, rhsType)
	case rhsType == lson.NoneType:
		cc.Scope.Insert(s.Ident, s.DeclaredType)
	case s.DeclaredType != rhsType:
		cc.PushError(compiler.AssignmentTypeMismatch(s.DeclaredType, rhsType))
		cc.Scope.Insert(s.Ident, s.DeclaredType)
	default:
		cc.Scope.Insert(s.Ident, s.DeclaredType)
	}
	return lson.NoneType
}

// Evaluate evaluates the initializer (if any, else None) and inserts it
// into the top runtime frame under Ident.
func (s *LetStmt) Evaluate(rc *runtime.Context) (lson.Value, error) {
	var v lson.Value = lson.None{}
	if s.Rhs != nil {
		var err error
		v, err = s.Rhs.Evaluate(rc)
		if err != nil {
			return nil, err
		}
	}
	rc.Scope.Insert(s.Ident, v)
	return lson.None{}, nil
}

// AssignStmt parses `ident '=' expr ';'`.
type AssignStmt struct {
	Ident string
	Rhs   Node
}

// Validate requires Ident to already own a binding in the compile-time
// scope; assigning to an undeclared name is always a compile error,
// regardless of the RHS's type (§4.3 edge cases).
func (s *AssignStmt) Validate(cc *compiler.Context) lson.Type {
	declared, ok := cc.Scope.Get(s.Ident)
	rhsType := s.Rhs.Validate(cc)
	if !ok {
		cc.PushError(compiler.AssignmentToUndeclaredVariable(s.Ident))
		return lson.NoneType
	}
	if rhsType != lson.NoneType && declared != rhsType {
		cc.PushError(compiler.AssignmentTypeMismatch(declared, rhsType))
	}
	return lson.NoneType
}

// Evaluate evaluates the RHS, then replaces the binding in the frame that
// owns Ident. A runtime VariableNotDefined error fires if no frame does
// (the validator should have already caught this, but the evaluator is
// defensive per §4.5).
func (s *AssignStmt) Evaluate(rc *runtime.Context) (lson.Value, error) {
	v, err := s.Rhs.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	if !rc.Scope.Replace(s.Ident, v) {
		return nil, runtime.VariableNotDefined(s.Ident)
	}
	return lson.None{}, nil
}

// ExprStmt evaluates an expression for effect and discards its value.
type ExprStmt struct {
	Inner Node
}

// Validate returns the inner expression's type so Root.Validate can surface
// the final statement's type, but the statement
// itself carries no binding obligations.
func (s *ExprStmt) Validate(cc *compiler.Context) lson.Type {
	return s.Inner.Validate(cc)
}

// Evaluate evaluates the inner expression. Per §4.5 an ExprStmt "discards
// the value, returns None" when used as a non-final statement; Root keeps
// the real value around so a REPL can still display it for the last
// statement in a program.
func (s *ExprStmt) Evaluate(rc *runtime.Context) (lson.Value, error) {
	return s.Inner.Evaluate(rc)
}

// Expr is the top grammar level: an EqualityExpr plus an optional `?
// default` literal tail fired when Inner evaluates to None (§3, §4.5).
type Expr struct {
	Inner       Node
	HasDefault  bool
	Default     lson.Value
	DefaultType lson.Type
}

// Validate validates Inner; if a default is present, reconciles its type
// against Inner's per the rule in §4.3's edge cases: Inner yielding None
// (e.g. an absent variable) adopts the default's type, any other mismatch is
// a DefaultTypeMismatch error.
func (e *Expr) Validate(cc *compiler.Context) lson.Type {
	t := e.Inner.Validate(cc)
	if !e.HasDefault {
		return t
	}
	if t == lson.NoneType {
		return e.DefaultType
	}
	if t != e.DefaultType {
		cc.PushError(compiler.DefaultTypeMismatch(t, e.DefaultType))
		return lson.NoneType
	}
	return t
}

// Evaluate evaluates Inner; if the result is None and a default is present,
// returns the default instead (§4.5, §8 boundary behavior).
func (e *Expr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	v, err := e.Inner.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	if e.HasDefault {
		if _, isNone := v.(lson.None); isNone {
			return e.Default, nil
		}
	}
	return v, nil
}

// binaryStep is one (operator, right-hand-side) pair in a left-associative
// chain. EqualityExpr, ComparisonExpr, TermExpr, and FactorExpr are each a
// Left operand followed by zero or more binaryStep pairs (§4.3: "Each binary
// level implements `lhs (op rhs)*`").
type binaryStep struct {
	Op  token.Type
	Rhs Node
}

// EqualityExpr parses `Comparison {(== | !=) Comparison}*`.
type EqualityExpr struct {
	Left  Node
	Steps []binaryStep
}

// NewEqualityExpr is the constructor parser.go uses; it keeps binaryStep
// unexported while still letting the parser build chains.
func NewEqualityExpr(left Node, ops []token.Type, rhs []Node) *EqualityExpr {
	return &EqualityExpr{Left: left, Steps: zip(ops, rhs)}
}

func zip(ops []token.Type, rhs []Node) []binaryStep {
	steps := make([]binaryStep, len(ops))
	for i := range ops {
		steps[i] = binaryStep{Op: ops[i], Rhs: rhs[i]}
	}
	return steps
}

// Validate folds the equality/inequality chain left to right: the type of
// step i compares the *previous step's type* against the new RHS's type
// (the accumulator, per §4.5's "state machine for operator chains"),
// recording an UnsupportedBinaryOperator error and collapsing to None on the
// first invalid pair.
func (e *EqualityExpr) Validate(cc *compiler.Context) lson.Type {
	acc := e.Left.Validate(cc)
	ok := true
	for _, step := range e.Steps {
		rt := step.Rhs.Validate(cc)
		if ok {
			if lson.Equality(acc, rt) == lson.NoneType {
				cc.PushError(compiler.UnsupportedBinaryOperator(acc, string(step.Op), rt))
				ok = false
			}
		}
		acc = rt
	}
	if !ok {
		return lson.NoneType
	}
	if len(e.Steps) == 0 {
		return acc
	}
	return lson.BoolType
}

// Evaluate implements the accumulator/carry state machine from §4.5: acc
// starts as Left's value; each step computes Equal(acc, rhs) (negated for
// !=), ANDs it into carry, then replaces acc with rhs for the next step.
func (e *EqualityExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	acc, err := e.Left.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	if len(e.Steps) == 0 {
		return acc, nil
	}
	carry := true
	for _, step := range e.Steps {
		rhs, err := step.Rhs.Evaluate(rc)
		if err != nil {
			return nil, err
		}
		eq, err := lson.Equal(acc, rhs)
		if err != nil {
			return nil, runtime.TypeMismatch(err.Error())
		}
		if step.Op == token.NEQ {
			eq = !eq
		}
		carry = carry && eq
		acc = rhs
	}
	return lson.Bool(carry), nil
}

// ComparisonExpr parses `Term {(< | > | <= | >=) Term}*`.
type ComparisonExpr struct {
	Left  Node
	Steps []binaryStep
}

func NewComparisonExpr(left Node, ops []token.Type, rhs []Node) *ComparisonExpr {
	return &ComparisonExpr{Left: left, Steps: zip(ops, rhs)}
}

// Validate mirrors EqualityExpr.Validate but against the Comparison
// algebra, which is stricter (numeric pairs only).
func (c *ComparisonExpr) Validate(cc *compiler.Context) lson.Type {
	acc := c.Left.Validate(cc)
	ok := true
	for _, step := range c.Steps {
		rt := step.Rhs.Validate(cc)
		if ok {
			if lson.Comparison(acc, rt) == lson.NoneType {
				cc.PushError(compiler.UnsupportedBinaryOperator(acc, string(step.Op), rt))
				ok = false
			}
		}
		acc = rt
	}
	if !ok {
		return lson.NoneType
	}
	if len(c.Steps) == 0 {
		return acc
	}
	return lson.BoolType
}

// Evaluate implements the conjunction reading of comparison chains
// committed to in §9's Open Question (b): `10 < 15 < 20` is `(10<15) &&
// (15<20)`, via the same accumulator/carry machine as EqualityExpr.
func (c *ComparisonExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	acc, err := c.Left.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	if len(c.Steps) == 0 {
		return acc, nil
	}
	carry := true
	for _, step := range c.Steps {
		rhs, err := step.Rhs.Evaluate(rc)
		if err != nil {
			return nil, err
		}
		cmp, err := lson.Compare(acc, rhs)
		if err != nil {
			return nil, runtime.TypeMismatch(err.Error())
		}
		var result bool
		switch step.Op {
		case token.LT:
			result = cmp < 0
		case token.GT:
			result = cmp > 0
		case token.LEQ:
			result = cmp <= 0
		case token.GEQ:
			result = cmp >= 0
		}
		carry = carry && result
		acc = rhs
	}
	return lson.Bool(carry), nil
}

// TermExpr parses `Factor {(+ | -) Factor}*`.
type TermExpr struct {
	Left  Node
	Steps []binaryStep
}

func NewTermExpr(left Node, ops []token.Type, rhs []Node) *TermExpr {
	return &TermExpr{Left: left, Steps: zip(ops, rhs)}
}

func (t *TermExpr) Validate(cc *compiler.Context) lson.Type {
	return validateArithmeticChain(cc, t.Left, t.Steps)
}

func (t *TermExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	return evaluateArithmeticChain(rc, t.Left, t.Steps)
}

// FactorExpr parses `Unary {(* | /) Unary}*`.
type FactorExpr struct {
	Left  Node
	Steps []binaryStep
}

func NewFactorExpr(left Node, ops []token.Type, rhs []Node) *FactorExpr {
	return &FactorExpr{Left: left, Steps: zip(ops, rhs)}
}

func (f *FactorExpr) Validate(cc *compiler.Context) lson.Type {
	return validateArithmeticChain(cc, f.Left, f.Steps)
}

func (f *FactorExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	return evaluateArithmeticChain(rc, f.Left, f.Steps)
}

// validateArithmeticChain folds +/-/*// type algebra left to right, shared
// by TermExpr and FactorExpr since both are "fold left, accumulator becomes
// the operation's result type" chains (unlike Equality/Comparison, whose
// accumulator becomes the raw RHS type).
func validateArithmeticChain(cc *compiler.Context, left Node, steps []binaryStep) lson.Type {
	acc := left.Validate(cc)
	for _, step := range steps {
		rt := step.Rhs.Validate(cc)
		var result lson.Type
		switch step.Op {
		case token.PLUS:
			result = lson.Sum(acc, rt)
		case token.MINUS:
			result = lson.Difference(acc, rt)
		case token.STAR:
			result = lson.Product(acc, rt)
		case token.SLASH:
			result = lson.Quotient(acc, rt)
		}
		if result == lson.NoneType {
			cc.PushError(compiler.UnsupportedBinaryOperator(acc, string(step.Op), rt))
			return lson.NoneType
		}
		acc = result
	}
	return acc
}

func evaluateArithmeticChain(rc *runtime.Context, left Node, steps []binaryStep) (lson.Value, error) {
	acc, err := left.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	for _, step := range steps {
		rhs, err := step.Rhs.Evaluate(rc)
		if err != nil {
			return nil, err
		}
		var result lson.Value
		var opErr error
		switch step.Op {
		case token.PLUS:
			result, opErr = lson.Add(acc, rhs)
		case token.MINUS:
			result, opErr = lson.Sub(acc, rhs)
		case token.STAR:
			result, opErr = lson.Mul(acc, rhs)
		case token.SLASH:
			result, opErr = lson.Div(acc, rhs)
		}
		if opErr != nil {
			if opErr == lson.ErrDivideByZero {
				return nil, runtime.DivideByZero()
			}
			return nil, runtime.TypeMismatch(opErr.Error())
		}
		acc = result
	}
	return acc, nil
}

// UnaryExpr parses `([! | -])? Value`.
type UnaryExpr struct {
	Op      token.Type // zero value ("") means no operator
	Operand Node
}

// Validate requires `-` on a numeric operand and `!` on Bool; any other
// combination is an UnsupportedUnaryOperator error (§4.3, §8 boundary
// behavior: "Unary ! on non-Bool is a compile error").
func (u *UnaryExpr) Validate(cc *compiler.Context) lson.Type {
	t := u.Operand.Validate(cc)
	switch u.Op {
	case "":
		return t
	case token.MINUS:
		if t != lson.IntType && t != lson.FloatType {
			cc.PushError(compiler.UnsupportedUnaryOperator(string(u.Op), t))
			return lson.NoneType
		}
		return t
	case token.BANG:
		if t != lson.BoolType {
			cc.PushError(compiler.UnsupportedUnaryOperator(string(u.Op), t))
			return lson.NoneType
		}
		return t
	default:
		return t
	}
}

// Evaluate computes the operand, then applies `-` or `!`. The evaluator is
// defensive here per §4.5: a type mismatch the validator should have caught
// still surfaces as a runtime.TypeMismatch rather than panicking.
func (u *UnaryExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	v, err := u.Operand.Evaluate(rc)
	if err != nil {
		return nil, err
	}
	switch u.Op {
	case "":
		return v, nil
	case token.MINUS:
		result, err := lson.Negate(v)
		if err != nil {
			return nil, runtime.TypeMismatch(err.Error())
		}
		return result, nil
	case token.BANG:
		result, err := lson.Not(v)
		if err != nil {
			return nil, runtime.TypeMismatch(err.Error())
		}
		return result, nil
	default:
		return v, nil
	}
}

// ValueExpr is the grammar's `Value` production: either a variable
// reference or an embedded LSON literal. Named ValueExpr rather than Value
// to avoid shadowing lson.Value in call sites that import both packages
// unqualified.
type ValueExpr struct {
	IsVariable bool
	Name       string     // set iff IsVariable
	Literal    lson.Value // set iff !IsVariable
}

// Validate returns the literal's own type, or the variable's compile-time
// scope type (NoneType, with no error, if the variable is absent — per
// §4.3: "a variable reference absent from the compile-time scope
// contributes type None and produces no error by itself").
func (v *ValueExpr) Validate(cc *compiler.Context) lson.Type {
	if v.IsVariable {
		if t, ok := cc.Scope.Get(v.Name); ok {
			return t
		}
		return lson.NoneType
	}
	return v.Literal.Type()
}

// Evaluate returns the literal by value, or the variable's runtime lookup
// (None if unbound).
func (v *ValueExpr) Evaluate(rc *runtime.Context) (lson.Value, error) {
	if v.IsVariable {
		if val, ok := rc.Scope.Get(v.Name); ok {
			return val, nil
		}
		return lson.None{}, nil
	}
	return v.Literal, nil
}
