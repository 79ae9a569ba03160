// SPDX-License-Identifier: MIT

// Package offsets: calendar arithmetic for aliases.
// Grid membership ignores the multiplier (any anchored month start is on
// the "3MS" grid); stepping applies the full multiplier. Off-grid stepping
// consumes the partial period first, so Step(t, 1) from an off-grid t lands
// on the next grid point.
package offsets

import "time"

// OnGrid reports whether t is a grid point of the alias.
//
// Fixed-width bases (s/min/h/D) form a pure delta grid with no phase, so
// every instant is on grid. Weekly grids require the anchor weekday.
// Month-class grids require midnight on the anchored month start or end.
func (a Alias) OnGrid(t time.Time) bool {
	switch a.Base {
	case BaseSecond, BaseMinute, BaseHour, BaseDay:
		return true
	case BaseWeek:
		return t.Weekday() == a.anchorWeekday()
	}
	if !isMidnight(t) {
		return false
	}
	switch a.Alignment {
	case AlignStart:
		return t.Day() == 1 && a.monthAnchored(t.Month())
	case AlignEnd:
		return t.Day() == daysIn(t.Year(), t.Month()) && a.monthAnchored(t.Month())
	}
	return false
}

// monthAnchored reports whether m lies on the anchored month cycle.
func (a Alias) monthAnchored(m time.Month) bool {
	switch a.Base {
	case BaseMonth:
		return true
	case BaseQuarter:
		return mod(int(m)-int(a.anchorMonth()), 3) == 0
	case BaseYear:
		return m == a.anchorMonth()
	}
	return false
}

// Step advances t by k periods of the alias.
//
// On-grid times step exactly; off-grid times roll onto the grid in the
// direction of travel, which consumes one period. Step(t, 0) returns t.
func (a Alias) Step(t time.Time, k int) time.Time {
	if k == 0 {
		return t
	}
	switch a.Base {
	case BaseSecond, BaseMinute, BaseHour, BaseDay:
		if a.Base == BaseDay {
			return t.AddDate(0, 0, k*a.N)
		}
		return t.Add(time.Duration(k) * a.fixedPeriod())
	case BaseWeek:
		if a.OnGrid(t) {
			return t.AddDate(0, 0, 7*k*a.N)
		}
		if k > 0 {
			return a.rollForwardWeek(t).AddDate(0, 0, 7*(k-1)*a.N)
		}
		return a.rollBackWeek(t).AddDate(0, 0, 7*(k+1)*a.N)
	}

	// Month-class bases.
	per := a.monthsPerPeriod()
	if a.OnGrid(t) {
		return a.monthGridPoint(t, k*per)
	}
	if k > 0 {
		return a.monthGridPoint(a.rollForwardMonth(t), (k-1)*per)
	}
	return a.monthGridPoint(a.rollBackMonth(t), (k+1)*per)
}

// RollBackOne returns the grid point strictly before t when t is on the
// grid, and otherwise the nearest grid point at or before t. This mirrors
// a shift of minus one period applied to an arbitrary timestamp.
func (a Alias) RollBackOne(t time.Time) time.Time {
	if a.OnGrid(t) {
		return a.Step(t, -1)
	}
	switch a.Base {
	case BaseWeek:
		return a.rollBackWeek(t)
	case BaseMonth, BaseQuarter, BaseYear:
		return a.rollBackMonth(t)
	}
	// Fixed-width bases are always on grid; unreachable.
	return a.Step(t, -1)
}

// monthGridPoint shifts an on-grid month-class time by the given number of
// months, preserving the alignment edge.
func (a Alias) monthGridPoint(t time.Time, months int) time.Time {
	y, m := t.Year(), t.Month()
	if a.Alignment == AlignEnd {
		// Normalize to the first of the month before shifting so that
		// short target months do not spill over.
		first := time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
		return monthEnd(first.Year(), first.Month(), t.Location())
	}
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location()).AddDate(0, months, 0)
}

// rollForwardMonth returns the first grid point strictly after an off-grid t.
func (a Alias) rollForwardMonth(t time.Time) time.Time {
	y, m, loc := t.Year(), t.Month(), t.Location()
	for i := 0; i < 13; i++ {
		var cand time.Time
		if a.Alignment == AlignEnd {
			cand = monthEnd(y, m, loc)
		} else {
			cand = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		}
		if cand.After(t) && a.monthAnchored(m) {
			return cand
		}
		y, m = nextMonth(y, m)
	}
	return t // unreachable: a cycle of 13 months always contains a grid point
}

// rollBackMonth returns the last grid point at or before an off-grid t.
func (a Alias) rollBackMonth(t time.Time) time.Time {
	y, m, loc := t.Year(), t.Month(), t.Location()
	for i := 0; i < 13; i++ {
		var cand time.Time
		if a.Alignment == AlignEnd {
			cand = monthEnd(y, m, loc)
		} else {
			cand = time.Date(y, m, 1, 0, 0, 0, 0, loc)
		}
		if !cand.After(t) && a.monthAnchored(m) {
			return cand
		}
		y, m = prevMonth(y, m)
	}
	return t // unreachable
}

// rollForwardWeek returns the next anchor weekday strictly after t,
// preserving the clock time.
func (a Alias) rollForwardWeek(t time.Time) time.Time {
	d := mod(int(a.anchorWeekday())-int(t.Weekday()), 7)
	if d == 0 {
		d = 7
	}
	return t.AddDate(0, 0, d)
}

// rollBackWeek returns the previous anchor weekday strictly before t,
// preserving the clock time.
func (a Alias) rollBackWeek(t time.Time) time.Time {
	d := mod(int(t.Weekday())-int(a.anchorWeekday()), 7)
	if d == 0 {
		d = 7
	}
	return t.AddDate(0, 0, -d)
}

// SnapToMonthStart rounds t to the nearest first-of-month midnight,
// choosing the earlier candidate on an exact tie.
func SnapToMonthStart(t time.Time) time.Time {
	lo := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, t.Location())
	hi := lo.AddDate(0, 1, 0)
	if t.Sub(lo) <= hi.Sub(t) {
		return lo
	}
	return hi
}

// SnapToMonthEnd rounds t to the nearest last-of-month midnight, choosing
// the earlier candidate on an exact tie.
func SnapToMonthEnd(t time.Time) time.Time {
	hi := monthEnd(t.Year(), t.Month(), t.Location())
	py, pm := prevMonth(t.Year(), t.Month())
	lo := monthEnd(py, pm, t.Location())
	if t.Before(lo) {
		return lo
	}
	if t.Sub(lo) <= hi.Sub(t) {
		return lo
	}
	return hi
}

// Normalize truncates t to midnight in its own location.
func Normalize(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// monthEnd returns the last day of the month at midnight.
func monthEnd(y int, m time.Month, loc *time.Location) time.Time {
	return time.Date(y, m, daysIn(y, m), 0, 0, 0, 0, loc)
}

// daysIn returns the number of days in a month; day zero of the following
// month normalizes to the last day of this one.
func daysIn(y int, m time.Month) int {
	return time.Date(y, m+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

func nextMonth(y int, m time.Month) (int, time.Month) {
	if m == time.December {
		return y + 1, time.January
	}
	return y, m + 1
}

func prevMonth(y int, m time.Month) (int, time.Month) {
	if m == time.January {
		return y - 1, time.December
	}
	return y, m - 1
}

func isMidnight(t time.Time) bool {
	h, m, s := t.Clock()
	return h == 0 && m == 0 && s == 0 && t.Nanosecond() == 0
}

// mod is the always-non-negative remainder.
func mod(a, b int) int {
	return ((a % b) + b) % b
}
