// Package cellbounds infers the edges ("bounds") of data cells from an
// array of cell labels — e.g. given monthly mean-temperature timestamps,
// reconstruct the start and end of each month.
//
// 🚀 What is cellbounds?
//
//	A small data-modeling library around one inference engine:
//	  • offsets/  — the periodic-spacing alias model ("MS", "QS-OCT", "W")
//	    and its calendar arithmetic
//	  • freq/     — determine the spacing rule a label sequence implies,
//	    including the midpoint-inference cascade for labels that sit in the
//	    middle of their cells rather than on an edge
//	  • interval/ — label/closed side resolution and interval construction
//	    from labels or explicit breakpoints, ascending or descending
//	  • labeled/  — the minimal named-array contract the codec targets
//
//	The root package ties them together: InferBounds turns a labeled 1-D
//	coordinate into an (n, 2) bounds array, and the codec round-trips
//	between interval sequences and bounds arrays.
//
// ✨ Why choose cellbounds?
//
//   - Pure computation – no I/O, no goroutines, inputs never mutated
//   - Explicit errors – sentinel taxonomy matched with errors.Is
//   - Calendar-aware – month/quarter/year spacings handled exactly;
//     DST-ambiguous combinations rejected rather than miscomputed
//
// Quick ASCII example (labels on the left edge, half-open cells):
//
//	labels:   1     2     3
//	bounds: [1,2) [2,3) [3,4)
//
// The name of the second ("bounds") dimension defaults to "bnds" and can
// be changed process-wide via SetBoundsDim or per call via WithBoundsDim.
package cellbounds
