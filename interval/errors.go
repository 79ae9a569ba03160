// SPDX-License-Identifier: MIT

package interval

import "errors"

var (
	// ErrInsufficientData indicates fewer labels (or breakpoints) than the
	// minimum an operation requires.
	ErrInsufficientData = errors.New("interval: not enough elements")

	// ErrNotMonotonic indicates a label or breakpoint sequence that is
	// neither strictly increasing nor strictly decreasing.
	ErrNotMonotonic = errors.New("interval: sequence must be monotonic")

	// ErrIrregularSpacing indicates labels whose spacing no constant step
	// or offset alias explains.
	ErrIrregularSpacing = errors.New("interval: labels are not regularly spaced")

	// ErrBadSide indicates a label-side token outside {left, middle, right}.
	ErrBadSide = errors.New("interval: invalid label side")

	// ErrUnsupportedClosed indicates a closed-side token outside the
	// recognized {left, right} domain.
	ErrUnsupportedClosed = errors.New("interval: unsupported closed side")

	// ErrTimezoneAmbiguity indicates interval construction was requested
	// for a zone-aware datetime sequence with a multi-unit spacing, which
	// cannot be computed safely across DST transitions.
	ErrTimezoneAmbiguity = errors.New("interval: multi-unit spacing on a zone-aware axis is ambiguous; convert to UTC")
)
