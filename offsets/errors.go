// SPDX-License-Identifier: MIT

package offsets

import "errors"

var (
	// ErrParse indicates the specifier string is not a recognized
	// periodic-spacing alias.
	ErrParse = errors.New("offsets: unrecognized offset alias")

	// ErrBadAnchor indicates an anchor token that is invalid for the base
	// unit (weekday anchors belong to W, month anchors to Q/Y).
	ErrBadAnchor = errors.New("offsets: invalid anchor for base unit")

	// ErrZeroMultiplier indicates a zero multiplier, which describes no
	// spacing at all.
	ErrZeroMultiplier = errors.New("offsets: multiplier must be non-zero")
)
