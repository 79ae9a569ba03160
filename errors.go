// SPDX-License-Identifier: MIT

package cellbounds

import "errors"

var (
	// ErrConfiguration indicates an invalid option value, such as an empty
	// bounds-dimension name or a missing required dimension name.
	ErrConfiguration = errors.New("cellbounds: invalid configuration")

	// ErrInputShape indicates an input whose structure does not match the
	// bounds contract (nil coordinate, non-(n,2) bounds array, wrong bounds
	// dimension).
	ErrInputShape = errors.New("cellbounds: invalid input shape")
)
