package version

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompatible_WithinRange(t *testing.T) {
	ok, err := Compatible(">=0.1.0, <0.5.0")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestCompatible_OutsideRange(t *testing.T) {
	ok, err := Compatible(">=1.0.0")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestCompatible_InvalidConstraintErrors(t *testing.T) {
	_, err := Compatible("not-a-constraint")
	assert.Error(t, err)
}
