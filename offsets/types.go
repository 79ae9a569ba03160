// SPDX-License-Identifier: MIT

// Package offsets: alias value type and its components.
// This file defines Base, Alignment and Alias plus rendering and the
// end-alignment rule. Parsing lives in parse.go, calendar arithmetic in
// calendar.go.
package offsets

import (
	"strconv"
	"time"
)

// Base is the base unit of a periodic spacing.
type Base uint8

const (
	// BaseSecond steps in fixed one-second units.
	BaseSecond Base = iota
	// BaseMinute steps in fixed one-minute units.
	BaseMinute
	// BaseHour steps in fixed one-hour units.
	BaseHour
	// BaseDay steps in calendar days.
	BaseDay
	// BaseWeek steps in calendar weeks anchored on a weekday.
	BaseWeek
	// BaseMonth steps in calendar months.
	BaseMonth
	// BaseQuarter steps in calendar quarters (three months).
	BaseQuarter
	// BaseYear steps in calendar years (twelve months).
	BaseYear
)

// String returns the alias token for the base unit.
func (b Base) String() string {
	switch b {
	case BaseSecond:
		return "s"
	case BaseMinute:
		return "min"
	case BaseHour:
		return "h"
	case BaseDay:
		return "D"
	case BaseWeek:
		return "W"
	case BaseMonth:
		return "M"
	case BaseQuarter:
		return "Q"
	case BaseYear:
		return "Y"
	default:
		return "?"
	}
}

// IsCalendar reports whether the base has variable width (month-class units).
func (b Base) IsCalendar() bool {
	return b == BaseMonth || b == BaseQuarter || b == BaseYear
}

// Alignment states which period edge the alias labels.
type Alignment uint8

const (
	// AlignNone applies to bases without an alignment letter (D, W, h, ...).
	AlignNone Alignment = iota
	// AlignStart labels the period start (MS, QS, YS).
	AlignStart
	// AlignEnd labels the period end (ME, QE, YE).
	AlignEnd
)

// String returns the alignment suffix letter, empty for AlignNone.
func (a Alignment) String() string {
	switch a {
	case AlignStart:
		return "S"
	case AlignEnd:
		return "E"
	default:
		return ""
	}
}

// Alias is a parsed periodic-spacing specifier.
//
// The zero Alias is not meaningful; construct via Parse or compose the
// fields directly and rely on String for the canonical rendering.
type Alias struct {
	// N is the multiplier; negative in descending contexts.
	N int
	// Base is the base unit.
	Base Base
	// Alignment is the period edge the alias labels (month-class only).
	Alignment Alignment
	// Anchor is the optional sub-unit qualifier: a month token (JAN..DEC)
	// for quarterly/annual bases, a weekday token (MON..SUN) for weeks.
	// Empty means the documented default for the base.
	Anchor string
}

// String renders the alias back to its canonical specifier form:
// [multiplier]base[alignment][-anchor]. The multiplier is omitted when it
// equals one, so Parse(a.String()) == a holds up to normalization.
func (a Alias) String() string {
	s := a.Base.String() + a.Alignment.String()
	if a.N < 0 || a.N > 1 {
		s = strconv.Itoa(a.N) + s
	}
	if a.Anchor != "" {
		s += "-" + a.Anchor
	}
	return s
}

// IsEndAligned reports whether labels conventionally sit at the period end:
// true for weekly aliases and any *E alignment.
func (a Alias) IsEndAligned() bool {
	return a.Base == BaseWeek || a.Alignment == AlignEnd
}

// monthsPerPeriod returns the calendar months covered by one period, or 0
// for non-calendar bases.
func (a Alias) monthsPerPeriod() int {
	switch a.Base {
	case BaseMonth:
		return a.N
	case BaseQuarter:
		return 3 * a.N
	case BaseYear:
		return 12 * a.N
	default:
		return 0
	}
}

// fixedPeriod returns the fixed duration of one period for sub-monthly
// bases, or 0 for calendar bases.
func (a Alias) fixedPeriod() time.Duration {
	switch a.Base {
	case BaseSecond:
		return time.Duration(a.N) * time.Second
	case BaseMinute:
		return time.Duration(a.N) * time.Minute
	case BaseHour:
		return time.Duration(a.N) * time.Hour
	case BaseWeek:
		return time.Duration(a.N) * 7 * 24 * time.Hour
	case BaseDay:
		return time.Duration(a.N) * 24 * time.Hour
	default:
		return 0
	}
}

// anchorMonth resolves the effective anchor month for quarterly and annual
// aliases, applying the documented defaults (JAN for start-aligned, DEC for
// end-aligned).
func (a Alias) anchorMonth() time.Month {
	if m, ok := monthByToken[a.Anchor]; ok {
		return m
	}
	if a.Alignment == AlignEnd {
		return time.December
	}
	return time.January
}

// anchorWeekday resolves the effective weekday anchor for weekly aliases,
// defaulting to Sunday ("W" == "W-SUN").
func (a Alias) anchorWeekday() time.Weekday {
	if d, ok := weekdayByToken[a.Anchor]; ok {
		return d
	}
	return time.Sunday
}

var monthByToken = map[string]time.Month{
	"JAN": time.January, "FEB": time.February, "MAR": time.March,
	"APR": time.April, "MAY": time.May, "JUN": time.June,
	"JUL": time.July, "AUG": time.August, "SEP": time.September,
	"OCT": time.October, "NOV": time.November, "DEC": time.December,
}

var weekdayByToken = map[string]time.Weekday{
	"MON": time.Monday, "TUE": time.Tuesday, "WED": time.Wednesday,
	"THU": time.Thursday, "FRI": time.Friday, "SAT": time.Saturday,
	"SUN": time.Sunday,
}

// MonthToken returns the JAN..DEC token for a month.
func MonthToken(m time.Month) string {
	return [...]string{
		"JAN", "FEB", "MAR", "APR", "MAY", "JUN",
		"JUL", "AUG", "SEP", "OCT", "NOV", "DEC",
	}[m-1]
}

// WeekdayToken returns the MON..SUN token for a weekday.
func WeekdayToken(d time.Weekday) string {
	return [...]string{"SUN", "MON", "TUE", "WED", "THU", "FRI", "SAT"}[d]
}
