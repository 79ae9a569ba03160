// SPDX-License-Identifier: MIT

// Package interval: datetime builders.
// Calendar spacings are not constant-width, so the datetime contract-A
// builder derives edges from an inferred offset alias rather than from raw
// differences. Midpoint labels reuse the half-gap shift from inference and
// re-align the approximate edges to the exact spacing grid.
package interval

import (
	"errors"
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds/freq"
	"github.com/katalvlaran/cellbounds/offsets"
)

// FromTimeLabels builds the interval sequence whose cells the given
// datetime labels mark. The labels must be strictly monotonic in either
// direction and at least two.
//
// The spacing is inferred from the labels (midpoint inference when the
// label side is middle, direct inference otherwise). Left edges follow the
// label side — left: the label itself; right: the label minus one period;
// middle: the label shifted left by half its local gap and re-aligned to
// the spacing grid — and each right edge is its left edge plus one period.
//
// When the labels are irregular, the builder degrades to a best-effort
// midpoint reconstruction from local gaps, reported through Warnf rather
// than failing. Too few labels for inference is not irregularity: it fails
// with ErrInsufficientData instead of guessing.
//
// Multi-unit spacings on a zone-aware axis fail with ErrTimezoneAmbiguity:
// stepping several calendar units across a DST transition silently changes
// interval widths, so the combination is rejected outright.
//
// normalize truncates both edges to midnight after construction.
func FromTimeLabels(labels []time.Time, label Side, closed Closed, name string, normalize bool) (*Sequence[time.Time], error) {
	n := len(labels)
	if n < 2 {
		return nil, fmt.Errorf("%w: need at least 2 labels, got %d", ErrInsufficientData, n)
	}
	descending, err := timeDirection(labels)
	if err != nil {
		return nil, err
	}

	asc := labels
	if descending {
		asc = make([]time.Time, n)
		for i, t := range labels {
			asc[n-1-i] = t
		}
	}

	var alias offsets.Alias
	var inferErr error
	if label == SideMiddle {
		alias, inferErr = freq.InferMidpoint(asc, closed == ClosedRight)
	} else {
		alias, inferErr = freq.Infer(asc)
	}
	if inferErr != nil {
		if errors.Is(inferErr, freq.ErrInsufficientData) {
			return nil, mapFreqErr(inferErr)
		}
		seq, err := midpointFallback(asc, label, closed, name)
		if err != nil {
			return nil, err
		}
		finishTimeSequence(seq, normalize, descending)
		return seq, nil
	}

	if alias.N != 1 && zoneAware(asc[0]) {
		return nil, fmt.Errorf("%w: spacing %s", ErrTimezoneAmbiguity, alias)
	}

	label, closed = Resolve(label, closed, &alias)

	// The label side is an array-orientation directive: on a descending
	// axis, "left" denotes the geometrically greater edge. Building happens
	// on the ascending copy, so mirror the side there and flip the closed
	// edge on the way out.
	effLabel := label
	if descending {
		effLabel = label.mirror()
	}

	lefts := make([]time.Time, n)
	switch effLabel {
	case SideLeft:
		copy(lefts, asc)
	case SideRight:
		for i, t := range asc {
			lefts[i] = alias.Step(t, -1)
		}
	case SideMiddle:
		lefts = alignMidpointEdges(asc, alias, name)
	}

	spans := make([]Span[time.Time], n)
	for i, l := range lefts {
		spans[i] = Span[time.Time]{Left: l, Right: alias.Step(l, 1)}
	}
	seq := &Sequence[time.Time]{Name: name, Closed: closed, Spans: spans}
	finishTimeSequence(seq, normalize, descending)
	return seq, nil
}

// FromTimeBreaks pairs n+1 strictly ascending datetime breakpoints into n
// intervals. This is a pure structural operation with no inference.
func FromTimeBreaks(breaks []time.Time, closed Closed, name string) (*Sequence[time.Time], error) {
	if len(breaks) < 2 {
		return nil, fmt.Errorf("%w: need at least 2 breakpoints, got %d", ErrInsufficientData, len(breaks))
	}
	if closed == ClosedUnspecified {
		closed = ClosedLeft
	}
	spans := make([]Span[time.Time], len(breaks)-1)
	for i := 1; i < len(breaks); i++ {
		if !breaks[i].After(breaks[i-1]) {
			return nil, fmt.Errorf("%w: breakpoints must be strictly ascending", ErrNotMonotonic)
		}
		spans[i-1] = Span[time.Time]{Left: breaks[i-1], Right: breaks[i]}
	}
	return &Sequence[time.Time]{Name: name, Closed: closed, Spans: spans}, nil
}

// alignMidpointEdges converts midpoint labels into exact left edges.
//
// The half-gap shift approximates the edge between consecutive cells; each
// approximation is normalized and rolled back one grid period, recovering
// the left edge of the preceding cell. The final edge is regenerated by
// stepping forward, which also repairs the point lost to differencing.
func alignMidpointEdges(asc []time.Time, alias offsets.Alias, name string) []time.Time {
	n := len(asc)
	approx := freq.HalfGapShift(asc)
	edges := make([]time.Time, n)
	for i, b := range approx {
		edges[i] = alias.RollBackOne(offsets.Normalize(b))
	}
	edges[n-1] = alias.Step(edges[n-2], 1)

	for i := 1; i < n; i++ {
		if !alias.Step(edges[i-1], 1).Equal(edges[i]) {
			Warnf("interval: could not align midpoints of %q to spacing %s", name, alias)
			break
		}
	}
	return edges
}

// midpointFallback reconstructs intervals from local gaps alone, treating
// every label as the midpoint of its cell. The first and last cells borrow
// their missing half-width from the nearest gap. Precision is traded for
// availability; the degradation is reported through Warnf.
func midpointFallback(asc []time.Time, label Side, closed Closed, name string) (*Sequence[time.Time], error) {
	Warnf("interval: no regular spacing inferable for %q; falling back to midpoint bounds", name)

	_, closed = Resolve(label, closed, nil)

	n := len(asc)
	breaks := make([]time.Time, 0, n+1)
	first := asc[1].Sub(asc[0])
	breaks = append(breaks, asc[0].Add(-first/2))
	for i := 1; i < n; i++ {
		gap := asc[i].Sub(asc[i-1])
		breaks = append(breaks, asc[i].Add(-gap/2))
	}
	last := asc[n-1].Sub(asc[n-2])
	breaks = append(breaks, asc[n-1].Add(last/2))

	return FromTimeBreaks(breaks, closed, name)
}

// finishTimeSequence applies midnight normalization and, for descending
// input, restores the original order and flips the closed side so that the
// array-orientation directive keeps its meaning geometrically.
func finishTimeSequence(seq *Sequence[time.Time], normalize, descending bool) {
	if normalize {
		for i, sp := range seq.Spans {
			seq.Spans[i] = Span[time.Time]{
				Left:  offsets.Normalize(sp.Left),
				Right: offsets.Normalize(sp.Right),
			}
		}
	}
	if descending {
		reverse(seq.Spans)
		seq.Closed = seq.Closed.Flip()
	}
}

// timeDirection reports whether the sequence is strictly descending,
// failing when it is not strictly monotonic either way.
func timeDirection(labels []time.Time) (bool, error) {
	inc, dec := true, true
	for i := 1; i < len(labels); i++ {
		if !labels[i].After(labels[i-1]) {
			inc = false
		}
		if !labels[i].Before(labels[i-1]) {
			dec = false
		}
	}
	if inc {
		return false, nil
	}
	if dec {
		return true, nil
	}
	return false, ErrNotMonotonic
}

// zoneAware reports whether a timestamp's location can carry DST
// transitions. UTC cannot; everything else is treated conservatively as
// zone-aware.
func zoneAware(t time.Time) bool {
	return t.Location() != time.UTC
}
