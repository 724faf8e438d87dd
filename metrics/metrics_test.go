package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRecorder_NilRegistererYieldsNilRecorder(t *testing.T) {
	r := NewRecorder(nil)
	assert.Nil(t, r)
	// Nil-safe: must not panic.
	r.ObserveCompile(1)
	r.ObserveScopeDepth(3)
}

func TestNewRecorder_RegistersInstruments(t *testing.T) {
	reg := prometheus.NewRegistry()
	r := NewRecorder(reg)
	require.NotNil(t, r)

	r.ObserveCompile(0)
	r.ObserveCompile(2)
	r.ObserveScopeDepth(4)

	mfs, err := reg.Gather()
	require.NoError(t, err)
	assert.NotEmpty(t, mfs)
}
