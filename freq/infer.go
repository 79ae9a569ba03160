// SPDX-License-Identifier: MIT

// Package freq: direct frequency detection on datetime labels.
// Two families are recognized. Calendar aliases (MS, ME and their
// quarterly/annual multiples) sit on a month-start or month-end grid with a
// constant month stride; fixed-delta aliases (s, min, h, D, W) show a
// constant difference between consecutive labels. Calendar detection runs
// first: a short month-class run can have equal consecutive differences
// (Jul/Aug/Sep starts are 31 days apart) and must still classify as a
// calendar grid, not as a day multiple.
package freq

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds/offsets"
)

const day = 24 * time.Hour

// Infer determines the offset alias that explains a strictly increasing
// datetime label sequence, treating the labels as literal grid points.
//
// Fails with ErrInsufficientData for fewer than three labels,
// ErrNotMonotonic for unsorted or duplicated labels, and
// ErrIrregularSpacing when no recognized alias fits.
func Infer(times []time.Time) (offsets.Alias, error) {
	if len(times) < 3 {
		return offsets.Alias{}, fmt.Errorf("%w: need at least 3, got %d",
			ErrInsufficientData, len(times))
	}
	for i := 1; i < len(times); i++ {
		if !times[i].After(times[i-1]) {
			return offsets.Alias{}, ErrNotMonotonic
		}
	}

	// Calendar grids take precedence: equal deltas do not rule them out.
	if a, ok := monthGridAlias(times); ok {
		return a, nil
	}
	if d, ok := constantDelta(times); ok {
		return classifyDelta(times[0], d)
	}
	return offsets.Alias{}, ErrIrregularSpacing
}

// constantDelta reports the shared consecutive difference, if any.
func constantDelta(times []time.Time) (time.Duration, bool) {
	d := times[1].Sub(times[0])
	for i := 2; i < len(times); i++ {
		if times[i].Sub(times[i-1]) != d {
			return 0, false
		}
	}
	return d, true
}

// classifyDelta maps a constant difference onto the coarsest fixed-width
// alias that divides it evenly.
func classifyDelta(first time.Time, d time.Duration) (offsets.Alias, error) {
	switch {
	case d%(7*day) == 0:
		return offsets.Alias{
			N:      int(d / (7 * day)),
			Base:   offsets.BaseWeek,
			Anchor: offsets.WeekdayToken(first.Weekday()),
		}, nil
	case d%day == 0:
		return offsets.Alias{N: int(d / day), Base: offsets.BaseDay}, nil
	case d%time.Hour == 0:
		return offsets.Alias{N: int(d / time.Hour), Base: offsets.BaseHour}, nil
	case d%time.Minute == 0:
		return offsets.Alias{N: int(d / time.Minute), Base: offsets.BaseMinute}, nil
	case d%time.Second == 0:
		return offsets.Alias{N: int(d / time.Second), Base: offsets.BaseSecond}, nil
	}
	// Sub-second grids are out of scope for cell bounds.
	return offsets.Alias{}, ErrIrregularSpacing
}

// monthGridAlias detects month-start and month-end grids with a constant
// month stride and maps the stride onto the annual/quarterly/monthly alias
// hierarchy, anchored on the first label's month.
func monthGridAlias(times []time.Time) (offsets.Alias, bool) {
	onStart, onEnd := true, true
	for _, t := range times {
		h, m, s := t.Clock()
		if h != 0 || m != 0 || s != 0 || t.Nanosecond() != 0 {
			return offsets.Alias{}, false
		}
		if t.Day() != 1 {
			onStart = false
		}
		if t.AddDate(0, 0, 1).Day() != 1 {
			onEnd = false
		}
	}
	if !onStart && !onEnd {
		return offsets.Alias{}, false
	}

	stride := monthsBetween(times[0], times[1])
	if stride <= 0 {
		return offsets.Alias{}, false
	}
	for i := 2; i < len(times); i++ {
		if monthsBetween(times[i-1], times[i]) != stride {
			return offsets.Alias{}, false
		}
	}

	align := offsets.AlignStart
	if !onStart {
		align = offsets.AlignEnd
	}
	anchor := offsets.MonthToken(times[0].Month())
	switch {
	case stride%12 == 0:
		return offsets.Alias{N: stride / 12, Base: offsets.BaseYear, Alignment: align, Anchor: anchor}, true
	case stride%3 == 0:
		return offsets.Alias{N: stride / 3, Base: offsets.BaseQuarter, Alignment: align, Anchor: anchor}, true
	default:
		return offsets.Alias{N: stride, Base: offsets.BaseMonth, Alignment: align}, true
	}
}

func monthsBetween(a, b time.Time) int {
	return (b.Year()-a.Year())*12 + int(b.Month()) - int(a.Month())
}
