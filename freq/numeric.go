// SPDX-License-Identifier: MIT

package freq

import (
	"fmt"

	"gonum.org/v1/gonum/floats/scalar"
)

// Tolerances for the uniform-step check, matching the usual
// absolute-plus-relative closeness test for floating point diffs.
const (
	stepAbsTol = 1e-8
	stepRelTol = 1e-5
)

// InferStep returns the constant step of a strictly monotonic numeric
// label sequence. The step is negative for descending sequences.
//
// Fails with ErrInsufficientData for fewer than two labels,
// ErrNotMonotonic when the sequence is neither strictly increasing nor
// strictly decreasing, and ErrIrregularSpacing when the consecutive
// differences are not equal within tolerance.
func InferStep(values []float64) (float64, error) {
	if len(values) < 2 {
		return 0, fmt.Errorf("%w: need at least 2, got %d", ErrInsufficientData, len(values))
	}
	if !strictlyMonotonic(values) {
		return 0, ErrNotMonotonic
	}
	step := values[1] - values[0]
	for i := 2; i < len(values); i++ {
		d := values[i] - values[i-1]
		if !scalar.EqualWithinAbsOrRel(d, step, stepAbsTol, stepRelTol) {
			return 0, fmt.Errorf("%w: step %v at position %d, expected %v",
				ErrIrregularSpacing, d, i-1, step)
		}
	}
	return step, nil
}

func strictlyMonotonic(values []float64) bool {
	inc, dec := true, true
	for i := 1; i < len(values); i++ {
		if values[i] <= values[i-1] {
			inc = false
		}
		if values[i] >= values[i-1] {
			dec = false
		}
	}
	return inc || dec
}
