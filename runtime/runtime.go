/*
File    : libretto/runtime/runtime.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package runtime implements the runtime context and error taxonomy from
// spec §6/§7: a scope of LSON values, an opaque host event-listener list, and
// the Runtime interface host-supplied Function values receive. One Context
// is owned per evaluate invocation (§5: "each invocation owns its own...
// RuntimeContext"), tagged with a ULID session id (Context.ID), grounded in
// holomush-holomush's ratelimit.go session-keying idiom. The id is stored
// only; it is not attached to log lines or metric labels.
package runtime

import (
	"fmt"

	"github.com/oklog/ulid/v2"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/libretto-lang/libretto/lson"
	"github.com/libretto-lang/libretto/metrics"
	"github.com/libretto-lang/libretto/scope"
)

// EventListener is the opaque host-integration surface named in §1; the
// core never inspects it beyond holding the slice, since event dispatch is
// an external collaborator.
type EventListener interface {
	// Name identifies the listener for diagnostics only.
	Name() string
}

// Context is the runtime context: a scope of LSON bindings, the host's
// event listeners, and a session id unique to this evaluation.
type Context struct {
	ID        ulid.ULID
	Scope     *scope.Scope[lson.Value]
	Listeners []EventListener
	Metrics   *metrics.Recorder
}

// New creates a Context with a fresh top-level runtime scope and no
// listeners. Its ID comes from ulid.Make: the current time plus the ulid
// package's default monotonic entropy source.
func New() *Context {
	return &Context{
		ID:    ulid.Make(),
		Scope: scope.New[lson.Value](),
	}
}

// WithRegistry is like New but additionally registers this context's metrics
// with reg. reg may be nil, matching holomush's NewRateLimiterWithRegistry
// nil-safe pattern — metrics are opt-in.
func WithRegistry(reg prometheus.Registerer) *Context {
	ctx := New()
	ctx.Metrics = metrics.NewRecorder(reg)
	return ctx
}

// PushScope enters a new block-scoped frame.
func (c *Context) PushScope() {
	c.Scope = c.Scope.Push()
	if c.Metrics != nil {
		c.Metrics.ObserveScopeDepth(c.Scope.Depth())
	}
}

// PopScope exits the current block-scoped frame.
func (c *Context) PopScope() {
	c.Scope = c.Scope.Pop()
	if c.Metrics != nil {
		c.Metrics.ObserveScopeDepth(c.Scope.Depth())
	}
}

// Error is the runtime error taxonomy from spec §7: propagates out of
// Evaluate and halts it.
type Error interface {
	error
	runtimeError()
}

type baseError struct{ msg string }

func (e baseError) Error() string { return e.msg }
func (baseError) runtimeError()   {}

// VariableNotDefined reports an assignment to a name with no owning scope
// frame.
func VariableNotDefined(name string) Error {
	return baseError{fmt.Sprintf("variable %q is not defined", name)}
}

// DivideByZero wraps lson.ErrDivideByZero as a runtime.Error.
func DivideByZero() Error {
	return baseError{lson.ErrDivideByZero.Error()}
}

// TypeMismatch reports an operator applied to an incompatible runtime value;
// defensive only, since a well-typed AST should never reach this (§4.5).
func TypeMismatch(detail string) Error {
	return baseError{fmt.Sprintf("type mismatch: %s", detail)}
}
