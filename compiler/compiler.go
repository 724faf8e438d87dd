/*
File    : libretto/compiler/compiler.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package compiler implements the compile-time context and error taxonomy
// described in spec §7: a scope of static LsonType bindings plus an
// append-only buffer of compile errors, threaded through Parse and Validate.
package compiler

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/metrics"
	"github.com/libretto-lang/libretto/scope"
)

// Context is the compile-time context: a scope of LsonType bindings plus the
// accumulated compile error list, per spec §3 "Compile-time context". Metrics
// is nil unless the caller opts in via WithRegistry (domain-stack addition;
// the core pipeline never requires it).
type Context struct {
	Scope   *scope.Scope[lson.Type]
	Errors  []Error
	Metrics *metrics.Recorder
}

// New creates a Context with a fresh top-level type scope and no errors.
func New() *Context {
	return &Context{Scope: scope.New[lson.Type]()}
}

// WithBindings creates a Context whose top-level scope is pre-populated with
// initial_type_bindings, matching the `compile(source_text,
// initial_type_bindings)` signature from §6.
func WithBindings(bindings map[string]lson.Type) *Context {
	ctx := New()
	for name, t := range bindings {
		ctx.Scope.Insert(name, t)
	}
	return ctx
}

// WithRegistry is like WithBindings but additionally registers Compile-outcome
// metrics with reg. reg may be nil (no-op), mirroring runtime.WithRegistry.
func WithRegistry(bindings map[string]lson.Type, reg prometheus.Registerer) *Context {
	ctx := WithBindings(bindings)
	ctx.Metrics = metrics.NewRecorder(reg)
	return ctx
}

// PushScope enters a new block-scoped frame.
func (c *Context) PushScope() { c.Scope = c.Scope.Push() }

// PopScope exits the current block-scoped frame.
func (c *Context) PopScope() { c.Scope = c.Scope.Pop() }

// PushError appends a compile error. Compile-time errors are accumulated,
// never halt compilation (§7).
func (c *Context) PushError(err Error) { c.Errors = append(c.Errors, err) }

// HasErrors reports whether any compile error was recorded.
func (c *Context) HasErrors() bool { return len(c.Errors) > 0 }

// Error is the compile-time error taxonomy from spec §7. Each variant is its
// own struct carrying the payload named in §7 (operand types, identifiers,
// ...) as typed fields, so a host can recover them with errors.As rather
// than re-parsing Error(); this mirrors the named-payload shape of the
// original_source's thiserror enum (see DESIGN.md).
type Error interface {
	error
	compileError()
}

// NullValue reports a literal disallowed to be None in that position.
type NullValueError struct{}

func NullValue() Error               { return NullValueError{} }
func (NullValueError) Error() string { return "null value not allowed here" }
func (NullValueError) compileError() {}

// UnsupportedUnaryOperator reports a unary operator applied to an
// unsupported operand type.
type UnsupportedUnaryOperatorError struct {
	Op      string
	Operand lson.Type
}

func UnsupportedUnaryOperator(op string, operand lson.Type) Error {
	return UnsupportedUnaryOperatorError{Op: op, Operand: operand}
}

func (e UnsupportedUnaryOperatorError) Error() string {
	return fmt.Sprintf("unsupported unary operator %q for operand type %s", e.Op, e.Operand)
}
func (UnsupportedUnaryOperatorError) compileError() {}

// UnsupportedBinaryOperator reports a binary operator applied to an
// unsupported pair of operand types.
type UnsupportedBinaryOperatorError struct {
	Lhs lson.Type
	Op  string
	Rhs lson.Type
}

func UnsupportedBinaryOperator(lhs lson.Type, op string, rhs lson.Type) Error {
	return UnsupportedBinaryOperatorError{Lhs: lhs, Op: op, Rhs: rhs}
}

func (e UnsupportedBinaryOperatorError) Error() string {
	return fmt.Sprintf("unsupported binary operator: %s %s %s", e.Lhs, e.Op, e.Rhs)
}
func (UnsupportedBinaryOperatorError) compileError() {}

// ParseCheckInconsistent reports that a production could not be parsed. The
// parser records it when a Value, a `? default` literal, a numeric literal or
// a let type annotation cannot be parsed from the source, so malformed user
// source (e.g. an ILLEGAL token) surfaces as this error too.
type ParseCheckInconsistentError struct {
	Production string
}

func ParseCheckInconsistent(production string) Error {
	return ParseCheckInconsistentError{Production: production}
}

func (e ParseCheckInconsistentError) Error() string {
	return fmt.Sprintf("pre-parse check inconsistent for %s", e.Production)
}
func (ParseCheckInconsistentError) compileError() {}

// DefaultTypeMismatch reports `expr ? default` where default's static type
// differs from expr's.
type DefaultTypeMismatchError struct {
	ExprType    lson.Type
	DefaultType lson.Type
}

func DefaultTypeMismatch(exprType, defaultType lson.Type) Error {
	return DefaultTypeMismatchError{ExprType: exprType, DefaultType: defaultType}
}

func (e DefaultTypeMismatchError) Error() string {
	return fmt.Sprintf("default type mismatch: expression is %s, default is %s", e.ExprType, e.DefaultType)
}
func (DefaultTypeMismatchError) compileError() {}

// AssignmentTypeMismatch reports an assignment whose RHS type does not match
// the target's declared type.
type AssignmentTypeMismatchError struct {
	Declared lson.Type
	Rhs      lson.Type
}

func AssignmentTypeMismatch(declared, rhs lson.Type) Error {
	return AssignmentTypeMismatchError{Declared: declared, Rhs: rhs}
}

func (e AssignmentTypeMismatchError) Error() string {
	return fmt.Sprintf("assignment type mismatch: declared %s, got %s", e.Declared, e.Rhs)
}
func (AssignmentTypeMismatchError) compileError() {}

// AssignmentToUndeclaredVariable reports `ident = expr;` with no prior `let
// ident`.
type AssignmentToUndeclaredVariableError struct {
	Name string
}

func AssignmentToUndeclaredVariable(name string) Error {
	return AssignmentToUndeclaredVariableError{Name: name}
}

func (e AssignmentToUndeclaredVariableError) Error() string {
	return fmt.Sprintf("assignment to undeclared variable %q", e.Name)
}
func (AssignmentToUndeclaredVariableError) compileError() {}

// LetWithoutType reports `let ident;` with neither a declared type nor an
// initializer.
type LetWithoutTypeError struct {
	Name string
}

func LetWithoutType(name string) Error { return LetWithoutTypeError{Name: name} }

func (e LetWithoutTypeError) Error() string {
	return fmt.Sprintf("let %q has no declared type and no initializer", e.Name)
}
func (LetWithoutTypeError) compileError() {}
