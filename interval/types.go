// SPDX-License-Identifier: MIT

// Package interval: side/closed sum types and the interval sequence value
// type. External string inputs go through ParseSide/ParseClosed; the rest
// of the package trusts the typed values.
package interval

import (
	"fmt"
	"time"
)

// Side states which logical point of a cell its label denotes.
type Side uint8

const (
	// SideUnspecified is the zero value; Resolve turns it into a concrete
	// side via the documented defaulting rules.
	SideUnspecified Side = iota
	// SideLeft labels the left cell edge.
	SideLeft
	// SideMiddle labels the cell midpoint.
	SideMiddle
	// SideRight labels the right cell edge.
	SideRight
)

// String returns the lower-case token for the side.
func (s Side) String() string {
	switch s {
	case SideLeft:
		return "left"
	case SideMiddle:
		return "middle"
	case SideRight:
		return "right"
	default:
		return ""
	}
}

// ParseSide validates a label-side token. The empty string parses to
// SideUnspecified so optional inputs pass through unchanged.
func ParseSide(s string) (Side, error) {
	switch s {
	case "":
		return SideUnspecified, nil
	case "left":
		return SideLeft, nil
	case "middle":
		return SideMiddle, nil
	case "right":
		return SideRight, nil
	default:
		return SideUnspecified, fmt.Errorf("%w: %q", ErrBadSide, s)
	}
}

// mirror swaps left and right; middle and unspecified are their own mirror.
func (s Side) mirror() Side {
	switch s {
	case SideLeft:
		return SideRight
	case SideRight:
		return SideLeft
	default:
		return s
	}
}

// Closed states which interval edge includes its boundary point.
type Closed uint8

const (
	// ClosedUnspecified is the zero value; Resolve turns it into a
	// concrete side via the documented defaulting rules.
	ClosedUnspecified Closed = iota
	// ClosedLeft includes the left boundary point.
	ClosedLeft
	// ClosedRight includes the right boundary point.
	ClosedRight
)

// String returns the lower-case token for the closed side.
func (c Closed) String() string {
	switch c {
	case ClosedLeft:
		return "left"
	case ClosedRight:
		return "right"
	default:
		return ""
	}
}

// ParseClosed validates a closed-side token against the two-value domain.
// The empty string parses to ClosedUnspecified. The historical "both" and
// "neither" values are rejected: interval membership is undefined for them
// here.
func ParseClosed(s string) (Closed, error) {
	switch s {
	case "":
		return ClosedUnspecified, nil
	case "left":
		return ClosedLeft, nil
	case "right":
		return ClosedRight, nil
	default:
		return ClosedUnspecified, fmt.Errorf("%w: %q", ErrUnsupportedClosed, s)
	}
}

// Flip swaps left and right; unspecified stays unspecified.
func (c Closed) Flip() Closed {
	switch c {
	case ClosedLeft:
		return ClosedRight
	case ClosedRight:
		return ClosedLeft
	default:
		return c
	}
}

// Span is a single interval. Left never exceeds Right, regardless of the
// originating label order.
type Span[T any] struct {
	Left  T
	Right T
}

// Sequence is an ordered interval collection, positionally aligned with
// the label sequence it was built from. A single closed side applies to
// every element.
type Sequence[T any] struct {
	// Name is the axis name the sequence belongs to; may be empty.
	Name string
	// Closed is the edge that includes its boundary point, uniform across
	// all spans.
	Closed Closed
	// Spans holds one interval per originating label.
	Spans []Span[T]
}

// Len returns the number of intervals.
func (s *Sequence[T]) Len() int { return len(s.Spans) }

// Lefts returns the left edges in order.
func (s *Sequence[T]) Lefts() []T {
	out := make([]T, len(s.Spans))
	for i, sp := range s.Spans {
		out[i] = sp.Left
	}
	return out
}

// Rights returns the right edges in order.
func (s *Sequence[T]) Rights() []T {
	out := make([]T, len(s.Spans))
	for i, sp := range s.Spans {
		out[i] = sp.Right
	}
	return out
}

// Mids returns the midpoints of a numeric sequence.
func Mids(s *Sequence[float64]) []float64 {
	out := make([]float64, len(s.Spans))
	for i, sp := range s.Spans {
		out[i] = sp.Left + (sp.Right-sp.Left)/2
	}
	return out
}

// TimeMids returns the midpoints of a datetime sequence.
func TimeMids(s *Sequence[time.Time]) []time.Time {
	out := make([]time.Time, len(s.Spans))
	for i, sp := range s.Spans {
		out[i] = sp.Left.Add(sp.Right.Sub(sp.Left) / 2)
	}
	return out
}
