// Package interval converts between label sequences and sequences of
// half-open intervals — the cell bounds implied by a regularly spaced axis.
//
// 🚀 The model:
//
//	A label marks one point of its cell: the left edge, the right edge, or
//	the midpoint (Side). One edge of every cell includes its boundary
//	point (Closed). Given a label sequence plus resolved Side/Closed
//	directives, the builders reconstruct the cells:
//
//	  labels:   1     2     3        side=left, closed=left
//	  cells:  [1,2) [2,3) [3,4)
//
// ✨ Key features:
//   - Resolve — the documented defaulting rules for missing Side/Closed
//     directives, spacing-alignment aware
//   - FromLabels / FromTimeLabels — contract A: infer spacing, extrapolate
//     breakpoints, handle ascending and descending label order
//   - FromBreaks / FromTimeBreaks — contract B: pure structural pairing of
//     n+1 explicit breakpoints into n intervals
//   - Sequence[T] — an ordered interval collection carrying a name and a
//     single closed side, positionally aligned with its labels
//
// Descending label sequences build ascending internally with the closed
// side flipped, preserving the geometric meaning of "closed side" relative
// to axis direction rather than array order.
//
// When a datetime sequence is irregular, the builder falls back to a
// best-effort midpoint reconstruction from local gaps and reports it
// through the package Warnf hook instead of failing. Sequences too short
// for inference fail outright rather than guessing.
package interval
