// SPDX-License-Identifier: MIT

package freq

import "errors"

var (
	// ErrInsufficientData indicates too few labels to infer a spacing:
	// fewer than three for direct inference, fewer than four for midpoint
	// inference.
	ErrInsufficientData = errors.New("freq: not enough labels to infer spacing")

	// ErrNotMonotonic indicates the label sequence is not strictly ordered
	// in the required direction.
	ErrNotMonotonic = errors.New("freq: labels must be monotonic")

	// ErrIrregularSpacing indicates no constant step or offset alias
	// explains the consecutive differences.
	ErrIrregularSpacing = errors.New("freq: labels are not regularly spaced")
)
