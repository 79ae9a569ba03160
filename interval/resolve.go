// SPDX-License-Identifier: MIT

package interval

import "github.com/katalvlaran/cellbounds/offsets"

// Resolve applies the defaulting rules for missing label-side and
// closed-side directives and returns a fully specified pair.
//
// Rules, in order:
//  1. Both given: used as-is. No cross-validation forces agreement —
//     label=right with closed=left is accepted.
//  2. Exactly one given: with a spacing available, the missing directive
//     follows the spacing's alignment (end-aligned spacings default to
//     right, all others to left). Without a spacing, the missing directive
//     takes the given one's side; a middle label implies no side and the
//     missing closed defaults to left.
//  3. Neither given: both default to left, unless an end-aligned spacing is
//     available, in which case both default to right.
//
// spacing may be nil (numeric axes, or inference not yet run).
func Resolve(label Side, closed Closed, spacing *offsets.Alias) (Side, Closed) {
	haveLabel := label != SideUnspecified
	haveClosed := closed != ClosedUnspecified

	if haveLabel && haveClosed {
		return label, closed
	}

	alignDefault := func() (Side, Closed) {
		if spacing != nil && spacing.IsEndAligned() {
			return SideRight, ClosedRight
		}
		return SideLeft, ClosedLeft
	}

	switch {
	case haveLabel:
		if spacing != nil {
			_, c := alignDefault()
			return label, c
		}
		switch label {
		case SideRight:
			return label, ClosedRight
		case SideLeft:
			return label, ClosedLeft
		default: // middle labels carry no side
			return label, ClosedLeft
		}
	case haveClosed:
		if spacing != nil {
			s, _ := alignDefault()
			return s, closed
		}
		if closed == ClosedRight {
			return SideRight, closed
		}
		return SideLeft, closed
	default:
		return alignDefault()
	}
}
