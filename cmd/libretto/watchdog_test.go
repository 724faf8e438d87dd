package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/libretto-lang/libretto"
	"github.com/libretto-lang/libretto/runtime"
)

func TestEvaluateWithStepLimit_NoLimitRunsInline(t *testing.T) {
	defer goleak.VerifyNone(t)

	root, cc := libretto.Compile("2 + 3", nil)
	require.False(t, cc.HasErrors())

	v, err := evaluateWithStepLimit(root, runtime.New(), 0)
	require.NoError(t, err)
	assert.Equal(t, "5", v.String())
}

func TestEvaluateWithStepLimit_WithinLimit(t *testing.T) {
	defer goleak.VerifyNone(t)

	root, cc := libretto.Compile("2 * 2 + 2 * 2", nil)
	require.False(t, cc.HasErrors())

	v, err := evaluateWithStepLimit(root, runtime.New(), 1000)
	require.NoError(t, err)
	assert.Equal(t, "8", v.String())
}
