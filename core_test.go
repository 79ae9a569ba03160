// SPDX-License-Identifier: MIT

package cellbounds_test

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/katalvlaran/cellbounds"
	"github.com/katalvlaran/cellbounds/interval"
	"github.com/katalvlaran/cellbounds/labeled"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// TestInferBounds_Basic covers the canonical numeric case: left labels,
// left-closed cells, one edge extrapolated past the end.
func TestInferBounds_Basic(t *testing.T) {
	coord := labeled.NewCoord("x", []float64{1, 2, 3})

	bounds, err := cellbounds.InferBounds(coord)
	require.NoError(t, err)

	assert.Equal(t, "x_bnds", bounds.Name)
	assert.Equal(t, [2]string{"x", "bnds"}, bounds.Dims)
	assert.Empty(t, cmp.Diff([][]float64{{1, 2}, {2, 3}, {3, 4}}, bounds.Data))
	assert.Equal(t, "left", bounds.Attrs[cellbounds.AttrClosed])

	axis := bounds.Coords["x"]
	require.NotNil(t, axis, "the coordinate rides along")
	assert.Equal(t, []float64{1, 2, 3}, axis.Values)
	assert.Equal(t, "x_bnds", axis.Attrs[cellbounds.AttrBounds], "back-reference to the bounds array")
	assert.NotContains(t, coord.Attrs, cellbounds.AttrBounds, "the input coordinate is never mutated")
}

// TestInferBounds_ShapeLaw checks that every result is (n, 2) and each
// label lies within its own cell.
func TestInferBounds_ShapeLaw(t *testing.T) {
	values := []float64{0, 10, 20, 30, 40}
	for _, side := range []interval.Side{interval.SideLeft, interval.SideMiddle, interval.SideRight} {
		bounds, err := cellbounds.InferBounds(labeled.NewCoord("x", values), cellbounds.WithLabel(side))
		require.NoError(t, err)
		require.Equal(t, len(values), bounds.Rows(), "side %v", side)
		for i, row := range bounds.Data {
			require.Len(t, row, 2)
			assert.LessOrEqual(t, row[0], values[i], "side %v row %d", side, i)
			assert.GreaterOrEqual(t, row[1], values[i], "side %v row %d", side, i)
		}
	}
}

// TestInferBounds_Options verifies explicit label/closed directives and
// the per-call bounds dimension.
func TestInferBounds_Options(t *testing.T) {
	coord := labeled.NewCoord("x", []float64{1, 2, 3})

	bounds, err := cellbounds.InferBounds(coord,
		cellbounds.WithLabel(interval.SideRight),
		cellbounds.WithClosed(interval.ClosedRight),
	)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]float64{{0, 1}, {1, 2}, {2, 3}}, bounds.Data))
	assert.Equal(t, "right", bounds.Attrs[cellbounds.AttrClosed])

	bounds, err = cellbounds.InferBounds(coord, cellbounds.WithBoundsDim("bounds"))
	require.NoError(t, err)
	assert.Equal(t, "x_bounds", bounds.Name)
	assert.Equal(t, [2]string{"x", "bounds"}, bounds.Dims)
}

// TestInferBounds_Errors covers nil input, unnamed coordinates, bad
// option values and builder failures surfacing unchanged.
func TestInferBounds_Errors(t *testing.T) {
	_, err := cellbounds.InferBounds(nil)
	assert.ErrorIs(t, err, cellbounds.ErrInputShape)

	_, err = cellbounds.InferBounds(labeled.NewCoord("", []float64{1, 2}))
	assert.ErrorIs(t, err, cellbounds.ErrConfiguration)

	_, err = cellbounds.InferBounds(labeled.NewCoord("x", []float64{1, 2}), cellbounds.WithBoundsDim(""))
	assert.ErrorIs(t, err, cellbounds.ErrConfiguration)

	_, err = cellbounds.InferBounds(labeled.NewCoord("x", []float64{1, 2, 4}))
	assert.ErrorIs(t, err, interval.ErrIrregularSpacing)

	_, err = cellbounds.InferBounds(labeled.NewCoord("x", []float64{1}))
	assert.ErrorIs(t, err, interval.ErrInsufficientData)
}

// TestInferTimeBounds_MonthStarts checks the calendar path end to end.
func TestInferTimeBounds_MonthStarts(t *testing.T) {
	coord := labeled.NewCoord("time", []time.Time{
		date(2000, 1, 1), date(2000, 2, 1), date(2000, 3, 1),
	})

	bounds, err := cellbounds.InferTimeBounds(coord)
	require.NoError(t, err)

	assert.Equal(t, "time_bnds", bounds.Name)
	assert.Equal(t, [2]string{"time", "bnds"}, bounds.Dims)
	assert.Equal(t, "left", bounds.Attrs[cellbounds.AttrClosed])
	assert.Empty(t, cmp.Diff([][]time.Time{
		{date(2000, 1, 1), date(2000, 2, 1)},
		{date(2000, 2, 1), date(2000, 3, 1)},
		{date(2000, 3, 1), date(2000, 4, 1)},
	}, bounds.Data))
}

// TestInferTimeBounds_MonthStartDecade checks a ten-month axis: every
// cell runs from its month start to the next month start.
func TestInferTimeBounds_MonthStartDecade(t *testing.T) {
	labels := make([]time.Time, 10)
	for i := range labels {
		labels[i] = date(2000, 1, 1).AddDate(0, i, 0)
	}
	bounds, err := cellbounds.InferTimeBounds(labeled.NewCoord("time", labels))
	require.NoError(t, err)
	require.Equal(t, 10, bounds.Rows())
	assert.Equal(t, "left", bounds.Attrs[cellbounds.AttrClosed])
	for i, row := range bounds.Data {
		assert.Equal(t, labels[i], row[0], "row %d left edge", i)
		assert.Equal(t, labels[i].AddDate(0, 1, 0), row[1], "row %d right edge", i)
	}
}

// TestInferTimeBounds_EqualDeltaMonths checks that a monthly axis whose
// consecutive gaps happen to be equal still gets calendar cells: the last
// September cell must end on October 1st, not 31 days after its start.
func TestInferTimeBounds_EqualDeltaMonths(t *testing.T) {
	coord := labeled.NewCoord("time", []time.Time{
		date(2001, 7, 1), date(2001, 8, 1), date(2001, 9, 1),
	})

	bounds, err := cellbounds.InferTimeBounds(coord)
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]time.Time{
		{date(2001, 7, 1), date(2001, 8, 1)},
		{date(2001, 8, 1), date(2001, 9, 1)},
		{date(2001, 9, 1), date(2001, 10, 1)},
	}, bounds.Data))
}

// TestInferTimeBounds_Normalize verifies the midnight truncation option.
func TestInferTimeBounds_Normalize(t *testing.T) {
	at6 := 6 * time.Hour
	coord := labeled.NewCoord("time", []time.Time{
		date(2000, 1, 1).Add(at6), date(2000, 1, 2).Add(at6), date(2000, 1, 3).Add(at6),
	})

	bounds, err := cellbounds.InferTimeBounds(coord, cellbounds.WithNormalize())
	require.NoError(t, err)
	assert.Empty(t, cmp.Diff([][]time.Time{
		{date(2000, 1, 1), date(2000, 1, 2)},
		{date(2000, 1, 2), date(2000, 1, 3)},
		{date(2000, 1, 3), date(2000, 1, 4)},
	}, bounds.Data))
}

// TestInferTimeBounds_Containment checks the cell-membership law over a
// mixed bag of alias families and label sides.
func TestInferTimeBounds_Containment(t *testing.T) {
	axes := map[string][]time.Time{
		"daily":     {date(2000, 1, 1), date(2000, 1, 2), date(2000, 1, 3)},
		"monthly":   {date(2000, 1, 1), date(2000, 2, 1), date(2000, 3, 1)},
		"monthEnds": {date(2000, 1, 31), date(2000, 2, 29), date(2000, 3, 31)},
		"yearly":    {date(2000, 1, 1), date(2001, 1, 1), date(2002, 1, 1)},
	}
	for name, labels := range axes {
		bounds, err := cellbounds.InferTimeBounds(labeled.NewCoord("time", labels))
		require.NoError(t, err, name)
		for i, row := range bounds.Data {
			assert.False(t, labels[i].Before(row[0]), "%s row %d: label before left edge", name, i)
			assert.False(t, labels[i].After(row[1]), "%s row %d: label after right edge", name, i)
		}
	}
}
