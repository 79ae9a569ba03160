// Package offsets models periodic-spacing specifiers ("frequency aliases")
// for regularly spaced time axes, and the calendar arithmetic they imply.
//
// 🚀 What is an offset alias?
//
//	A compact string describing the step rule of a regular time axis:
//	  • "D", "7D"        — every (seven) calendar day(s)
//	  • "W-SUN"          — weekly, anchored on Sundays
//	  • "MS" / "ME"      — month start / month end
//	  • "QS-OCT", "YE"   — quarter start anchored on October, year end
//	  • "h", "min", "s"  — sub-daily fixed steps
//
//	The general shape is [multiplier]base[alignment][-anchor].
//
// ✨ Key features:
//   - Parse / String round-trip: equivalent spellings ("1MS", "MS")
//     normalize to one canonical form
//   - IsEndAligned: whether labels conventionally sit at period end
//     (weekly and *E aliases)
//   - Calendar stepping: Step, RollBackOne, OnGrid, month snapping and
//     midnight normalization — the primitives interval builders need
//
// ⚙️ Usage:
//
//	a, err := offsets.Parse("3MS")
//	if err != nil { ... }
//	next := a.Step(t, 1)   // t plus three month-starts
//	prev := a.RollBackOne(t)
//
// All arithmetic is calendar-aware (month lengths vary); nothing here is
// safe across DST transitions, which callers must reject explicitly.
package offsets
