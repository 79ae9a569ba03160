// SPDX-License-Identifier: MIT

// Package interval: numeric builders.
// Contract A (FromLabels) infers the uniform step and extrapolates one
// breakpoint beyond the labels on the side the label rule requires;
// contract B (FromBreaks) pairs explicit breakpoints with no inference.
package interval

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/cellbounds/freq"
)

// FromLabels builds the interval sequence whose cells the given uniformly
// spaced numeric labels mark. The labels must be strictly monotonic in
// either direction and at least two.
//
// Breakpoints are extrapolated by the label side: left appends one step
// past the last label, right prepends one step before the first, middle
// places breaks at label ± step/2. Descending input builds ascending with
// the closed side flipped, then restores the original order.
func FromLabels(labels []float64, label Side, closed Closed, name string) (*Sequence[float64], error) {
	if len(labels) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 labels, got %d", ErrInsufficientData, len(labels))
	}
	label, closed = Resolve(label, closed, nil)

	step, err := freq.InferStep(labels)
	if err != nil {
		return nil, mapFreqErr(err)
	}
	n := len(labels)

	breaks := make([]float64, 0, n+1)
	switch label {
	case SideLeft:
		breaks = append(breaks, labels...)
		breaks = append(breaks, labels[n-1]+step)
	case SideRight:
		breaks = append(breaks, labels[0]-step)
		breaks = append(breaks, labels...)
	case SideMiddle:
		breaks = append(breaks, labels[0]-step/2)
		for _, v := range labels {
			breaks = append(breaks, v+step/2)
		}
	}

	if step < 0 {
		reverse(breaks)
		closed = closed.Flip()
	}
	seq, err := FromBreaks(breaks, closed, name)
	if err != nil {
		return nil, err
	}
	if step < 0 {
		reverse(seq.Spans)
	}
	return seq, nil
}

// FromBreaks pairs n+1 strictly ascending breakpoints into n intervals.
// This is a pure structural operation with no inference.
func FromBreaks(breaks []float64, closed Closed, name string) (*Sequence[float64], error) {
	if len(breaks) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 breakpoints, got %d", ErrInsufficientData, len(breaks))
	}
	if closed == ClosedUnspecified {
		closed = ClosedLeft
	}
	spans := make([]Span[float64], len(breaks)-1)
	for i := 1; i < len(breaks); i++ {
		if breaks[i] <= breaks[i-1] {
			return nil, fmt.Errorf("%w: breakpoints must be strictly ascending", ErrNotMonotonic)
		}
		spans[i-1] = Span[float64]{Left: breaks[i-1], Right: breaks[i]}
	}
	return &Sequence[float64]{Name: name, Closed: closed, Spans: spans}, nil
}

// mapFreqErr converts freq sentinels into this package's taxonomy so
// callers match one error set at the builder boundary.
func mapFreqErr(err error) error {
	switch {
	case errors.Is(err, freq.ErrInsufficientData):
		return fmt.Errorf("%w: %v", ErrInsufficientData, err)
	case errors.Is(err, freq.ErrNotMonotonic):
		return fmt.Errorf("%w: %v", ErrNotMonotonic, err)
	case errors.Is(err, freq.ErrIrregularSpacing):
		return fmt.Errorf("%w: %v", ErrIrregularSpacing, err)
	default:
		return err
	}
}

func reverse[T any](s []T) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
