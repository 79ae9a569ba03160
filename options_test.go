// SPDX-License-Identifier: MIT

package cellbounds_test

import (
	"testing"

	"github.com/katalvlaran/cellbounds"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestBoundsDim_Default checks the documented default.
func TestBoundsDim_Default(t *testing.T) {
	assert.Equal(t, cellbounds.DefaultBoundsDim, cellbounds.BoundsDim())
	assert.Equal(t, "bnds", cellbounds.DefaultBoundsDim)
}

// TestSetBoundsDim_ScopedRestore verifies the set/restore pair and the
// explicit reset.
func TestSetBoundsDim_ScopedRestore(t *testing.T) {
	t.Cleanup(cellbounds.ResetBoundsDim)

	restore, err := cellbounds.SetBoundsDim("bounds")
	require.NoError(t, err)
	assert.Equal(t, "bounds", cellbounds.BoundsDim())

	restore()
	assert.Equal(t, "bnds", cellbounds.BoundsDim(), "restore reinstates the previous value")

	_, err = cellbounds.SetBoundsDim("nv")
	require.NoError(t, err)
	cellbounds.ResetBoundsDim()
	assert.Equal(t, cellbounds.DefaultBoundsDim, cellbounds.BoundsDim())
}

// TestSetBoundsDim_Invalid rejects unusable dimension names.
func TestSetBoundsDim_Invalid(t *testing.T) {
	_, err := cellbounds.SetBoundsDim("")
	assert.ErrorIs(t, err, cellbounds.ErrConfiguration)

	_, err = cellbounds.SetBoundsDim("two words")
	assert.ErrorIs(t, err, cellbounds.ErrConfiguration)

	assert.Equal(t, cellbounds.DefaultBoundsDim, cellbounds.BoundsDim(),
		"failed sets leave the value untouched")
}
