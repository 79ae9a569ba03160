// SPDX-License-Identifier: MIT

// Package freq: midpoint spacing inference.
// The labels here are assumed to be interval midpoints, not edges. The
// generating grid is recovered by a staged cascade; each stage catches the
// previous stage's failure and only exhaustion surfaces an error.
package freq

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds/offsets"
)

// InferMidpoint recovers the periodic spacing whose regular intervals have
// the given strictly increasing datetime sequence as their midpoints.
//
// snapToEnd selects the month boundary used by the final snapping stage:
// false snaps to month starts (left-closed / start-aligned contexts), true
// snaps to month ends.
//
// Stages:
//  1. If the labels themselves sit on a daily grid, the answer is daily —
//     midpoints of daily intervals are daily spaced.
//  2. Shift each label left by half its local gap to approximate the left
//     edges of the originating intervals (the first label has no gap and
//     is dropped), then attempt direct detection on the shifted sequence.
//  3. Accept a stage-2 result only for day-class or coarser bases;
//     sub-daily results from shifted midpoints are detection artifacts.
//  4. Snap the shifted edges to the nearest month boundary and retry:
//     every case that survives to this stage is an exact multiple of a
//     month, so a coarse regular grid is still recoverable. Snapping also
//     repairs the point lost to differencing.
//
// Fails with ErrInsufficientData for fewer than four labels (three are
// needed for detection, one is lost to differencing), ErrNotMonotonic for
// non-increasing input, and ErrIrregularSpacing on exhaustion.
func InferMidpoint(times []time.Time, snapToEnd bool) (offsets.Alias, error) {
	if len(times) < 4 {
		return offsets.Alias{}, fmt.Errorf("%w: midpoint inference needs at least 4, got %d",
			ErrInsufficientData, len(times))
	}
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return offsets.Alias{}, ErrNotMonotonic
		}
	}

	// Stage 1: daily fast path.
	if a, err := Infer(times); err == nil && a.Base == offsets.BaseDay && a.N == 1 {
		return a, nil
	}

	shifted := HalfGapShift(times)

	// Stage 2 and 3: direct detection on approximate edges, day-class or
	// coarser only.
	if a, err := Infer(shifted); err == nil {
		switch a.Base {
		case offsets.BaseDay, offsets.BaseWeek, offsets.BaseMonth,
			offsets.BaseQuarter, offsets.BaseYear:
			return a, nil
		}
	}

	// Stage 4: snap to the month grid and retry.
	snapped := make([]time.Time, len(shifted))
	for i, t := range shifted {
		if snapToEnd {
			snapped[i] = offsets.SnapToMonthEnd(t)
		} else {
			snapped[i] = offsets.SnapToMonthStart(t)
		}
	}
	if a, err := Infer(snapped); err == nil {
		return a, nil
	}
	return offsets.Alias{}, ErrIrregularSpacing
}

// HalfGapShift shifts each label left by half its local (preceding) gap,
// approximating the left edges of the intervals the labels are midpoints
// of. The first label has no preceding gap and is dropped, so the result
// has one element fewer than the input.
func HalfGapShift(times []time.Time) []time.Time {
	shifted := make([]time.Time, 0, len(times)-1)
	for i := 1; i < len(times); i++ {
		gap := times[i].Sub(times[i-1])
		shifted = append(shifted, times[i].Add(-gap/2))
	}
	return shifted
}
