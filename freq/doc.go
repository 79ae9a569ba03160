// Package freq infers the spacing rule of an ordered, evenly spaced label
// sequence — the step of a numeric axis, or the offset alias of a datetime
// axis.
//
// 🚀 Three inference problems, hardest last:
//
//	• InferStep      — numeric labels: the constant difference, within
//	                   floating tolerance, or nothing.
//	• Infer          — datetime labels treated as literal grid points:
//	                   fixed-delta classes (s/min/h/D/W) and calendar
//	                   classes (month/quarter/year, start- or end-aligned).
//	• InferMidpoint  — datetime labels that are interval *midpoints*.
//	                   Midpoints under-determine the generating grid once a
//	                   point is lost to differencing, so inference cascades:
//	                   daily fast path → half-gap shift → reject sub-daily
//	                   artifacts → snap the shifted edges to the nearest
//	                   month boundary and retry. The month snap works
//	                   because every case surviving the earlier stages is
//	                   an exact multiple of a month.
//
// Each stage of the cascade swallows the previous stage's failure; only
// exhausting all stages surfaces ErrIrregularSpacing.
//
// ⚙️ Usage:
//
//	a, err := freq.Infer(times)          // offsets.Alias, e.g. "MS"
//	step, err := freq.InferStep(values)  // 2.5
//	a, err := freq.InferMidpoint(mids, false)
//
// All functions treat their input as read-only. InferStep needs at least
// two labels, Infer three, InferMidpoint four.
package freq
