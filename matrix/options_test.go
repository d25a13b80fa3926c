// SPDX-License-Identifier: MIT
package matrix_test

import (
	"testing"

	"github.com/katalvlaran/cacheoblivious/matrix"
	"github.com/stretchr/testify/require"
)

// TestDefaultOptions_Documented verifies that no options resolve to the documented defaults.
func TestDefaultOptions_Documented(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly()
	require.Equal(t, matrix.DefaultBoxThreshold, o.BoxThreshold)
	require.Equal(t, matrix.DefaultMulThreshold, o.MulThreshold)

	o = matrix.GatherOptionsSnapshot_TestOnly(nil, nil)
	require.Equal(t, matrix.DefaultMulThreshold, o.MulThreshold, "nil options are skipped")
}

// TestOptions_LastWriterWins ensures each Option toggles exactly its own field.
func TestOptions_LastWriterWins(t *testing.T) {
	o := matrix.GatherOptionsSnapshot_TestOnly(matrix.WithMulThreshold(3), matrix.WithMulThreshold(8))
	require.Equal(t, 8, o.MulThreshold)
	require.Equal(t, matrix.DefaultBoxThreshold, o.BoxThreshold)

	o = matrix.GatherOptionsSnapshot_TestOnly(matrix.WithBoxThreshold(5))
	require.Equal(t, 5, o.BoxThreshold)
	require.Equal(t, matrix.DefaultMulThreshold, o.MulThreshold)
}

// TestOptions_PanicOnInvalid checks the stable panic messages.
func TestOptions_PanicOnInvalid(t *testing.T) {
	require.PanicsWithValue(t, matrix.PanicBoxThresholdInvalid_TestOnly, func() { matrix.WithBoxThreshold(0) })
	require.PanicsWithValue(t, matrix.PanicMulThresholdInvalid_TestOnly, func() { matrix.WithMulThreshold(-1) })
}
