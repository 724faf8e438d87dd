package compiler

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/libretto-lang/libretto/lson"
)

func TestContext_WithBindingsPrePopulatesScope(t *testing.T) {
	cc := WithBindings(map[string]lson.Type{"foo": lson.FloatType})
	v, ok := cc.Scope.Get("foo")
	assert.True(t, ok)
	assert.Equal(t, lson.FloatType, v)
}

func TestContext_PushErrorAccumulates(t *testing.T) {
	cc := New()
	assert.False(t, cc.HasErrors())
	cc.PushError(LetWithoutType("x"))
	cc.PushError(NullValue())
	assert.True(t, cc.HasErrors())
	assert.Len(t, cc.Errors, 2)
}

func TestContext_PushPopScope(t *testing.T) {
	cc := New()
	cc.Scope.Insert("x", lson.IntType)
	cc.PushScope()
	cc.Scope.Insert("y", lson.BoolType)
	cc.PopScope()

	_, ok := cc.Scope.Get("y")
	assert.False(t, ok)
	_, ok = cc.Scope.Get("x")
	assert.True(t, ok)
}
