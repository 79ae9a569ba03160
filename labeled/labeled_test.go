// SPDX-License-Identifier: MIT

package labeled_test

import (
	"testing"

	"github.com/katalvlaran/cellbounds/labeled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNewCoord_CopiesValues ensures caller mutations cannot leak into a
// constructed coordinate.
func TestNewCoord_CopiesValues(t *testing.T) {
	values := []float64{1, 2, 3}
	c := labeled.NewCoord("x", values)
	values[0] = 99

	assert.Equal(t, []float64{1, 2, 3}, c.Values)
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, "x", c.Name)
}

// TestCoord_Copy verifies the copy is deep for both values and attributes.
func TestCoord_Copy(t *testing.T) {
	c := labeled.NewCoord("x", []float64{1, 2})
	c.Attrs["units"] = "m"

	cp := c.Copy()
	cp.Values[0] = 99
	cp.Attrs["units"] = "km"

	assert.Equal(t, []float64{1, 2}, c.Values, "values are independent")
	assert.Equal(t, "m", c.Attrs["units"], "attributes are independent")
}

// TestStaticResolver resolves exact dimension names before aliases and
// rejects unknown keys.
func TestStaticResolver(t *testing.T) {
	r := labeled.StaticResolver{
		Dims:    []string{"time", "x"},
		Aliases: map[string]string{"T": "time", "X": "x", "Z": "depth"},
	}

	dim, err := r.ResolveDim("time")
	require.NoError(t, err)
	assert.Equal(t, "time", dim)

	dim, err = r.ResolveDim("T")
	require.NoError(t, err)
	assert.Equal(t, "time", dim)

	_, err = r.ResolveDim("y")
	assert.ErrorIs(t, err, labeled.ErrUnknownDim)

	_, err = r.ResolveDim("Z")
	assert.ErrorIs(t, err, labeled.ErrUnknownDim, "aliases must target a known dimension")
}
