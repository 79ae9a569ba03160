// SPDX-License-Identifier: MIT

// Package cellbounds: the codec between interval sequences and the
// labeled (n, 2) bounds-array encoding. Encoding is lossless up to the
// coordinate values themselves; decoding recovers the sequence from the
// array shape and the AttrClosed attribute alone.
package cellbounds

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds/interval"
	"github.com/katalvlaran/cellbounds/labeled"
)

// IntervalToBounds encodes a numeric interval sequence as a bounds array
// with an attached coordinate. The coordinate values follow the label
// side (left edges, midpoints, or right edges); when no label side is
// given it defaults to the sequence's closed side.
//
// The first dimension name is WithDim when given, else the sequence name;
// one of the two is required. The coordinate name is WithName when given,
// else the dimension name.
func IntervalToBounds(seq *interval.Sequence[float64], opts ...Option) (*labeled.Array[float64], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	dim, name, side, err := encodePlan(seq, cfg)
	if err != nil {
		return nil, err
	}
	var values []float64
	switch side {
	case interval.SideLeft:
		values = seq.Lefts()
	case interval.SideRight:
		values = seq.Rights()
	default:
		values = interval.Mids(seq)
	}
	return encodeBounds(seq, dim, labeled.NewCoord(name, values), cfg.boundsDim), nil
}

// TimeIntervalToBounds is IntervalToBounds for datetime sequences.
func TimeIntervalToBounds(seq *interval.Sequence[time.Time], opts ...Option) (*labeled.Array[time.Time], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	dim, name, side, err := encodePlan(seq, cfg)
	if err != nil {
		return nil, err
	}
	var values []time.Time
	switch side {
	case interval.SideLeft:
		values = seq.Lefts()
	case interval.SideRight:
		values = seq.Rights()
	default:
		values = interval.TimeMids(seq)
	}
	return encodeBounds(seq, dim, labeled.NewCoord(name, values), cfg.boundsDim), nil
}

// BoundsToInterval decodes a numeric bounds array back into an interval
// sequence. The array must be (n, 2) over the bounds dimension; the
// closed side is read from AttrClosed, defaulting to left when absent.
func BoundsToInterval(arr *labeled.Array[float64], opts ...Option) (*interval.Sequence[float64], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return decodeBounds(arr, cfg.boundsDim)
}

// TimeBoundsToInterval is BoundsToInterval for datetime bounds arrays.
func TimeBoundsToInterval(arr *labeled.Array[time.Time], opts ...Option) (*interval.Sequence[time.Time], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	return decodeBounds(arr, cfg.boundsDim)
}

// encodePlan works out the dimension name, coordinate name and label side
// of one encoding, validating the sequence along the way.
func encodePlan[T any](seq *interval.Sequence[T], cfg config) (dim, name string, side interval.Side, err error) {
	if seq == nil || seq.Len() == 0 {
		return "", "", 0, fmt.Errorf("%w: empty interval sequence", ErrInputShape)
	}
	if seq.Closed != interval.ClosedLeft && seq.Closed != interval.ClosedRight {
		return "", "", 0, fmt.Errorf("%w: sequence closed side is unset", interval.ErrUnsupportedClosed)
	}
	dim = cfg.dim
	if dim == "" {
		dim = seq.Name
	}
	if dim == "" {
		return "", "", 0, fmt.Errorf("%w: the interval sequence has no name; provide a dimension name", ErrConfiguration)
	}
	name = cfg.name
	if name == "" {
		name = dim
	}
	side, _ = interval.Resolve(cfg.label, seq.Closed, nil)
	return dim, name, side, nil
}

// encodeBounds lays one span per row over (dim, bdim), attaches the axis
// coordinate with an AttrBounds back-reference, and records the closed
// side in AttrClosed.
func encodeBounds[T any](seq *interval.Sequence[T], dim string, axis *labeled.Coord[T], bdim string) *labeled.Array[T] {
	bname := axis.Name + "_" + bdim
	axis.Attrs[AttrBounds] = bname
	data := make([][]T, seq.Len())
	for i, sp := range seq.Spans {
		data[i] = []T{sp.Left, sp.Right}
	}
	return &labeled.Array[T]{
		Name:   bname,
		Dims:   [2]string{dim, bdim},
		Data:   data,
		Coords: map[string]*labeled.Coord[T]{axis.Name: axis},
		Attrs:  map[string]string{AttrClosed: seq.Closed.String()},
	}
}

// decodeBounds reverses encodeBounds structurally: shape and attribute
// checks, then one span per row.
func decodeBounds[T any](arr *labeled.Array[T], bdim string) (*interval.Sequence[T], error) {
	if arr == nil || arr.Rows() == 0 {
		return nil, fmt.Errorf("%w: empty bounds array", ErrInputShape)
	}
	if arr.Dims[1] != bdim {
		return nil, fmt.Errorf("%w: second dimension is %q, want bounds dimension %q", ErrInputShape, arr.Dims[1], bdim)
	}
	spans := make([]interval.Span[T], len(arr.Data))
	for i, row := range arr.Data {
		if len(row) != 2 {
			return nil, fmt.Errorf("%w: bounds row %d has %d entries, want 2", ErrInputShape, i, len(row))
		}
		spans[i] = interval.Span[T]{Left: row[0], Right: row[1]}
	}
	closed, err := interval.ParseClosed(arr.Attrs[AttrClosed])
	if err != nil {
		return nil, err
	}
	if closed == interval.ClosedUnspecified {
		closed = interval.ClosedLeft
	}
	return &interval.Sequence[T]{Name: arr.Dims[0], Closed: closed, Spans: spans}, nil
}
