// SPDX-License-Identifier: MIT

// Package cellbounds: the top-level inference entry points. These wrap
// the interval builders with the labeled-array codec so a caller goes
// from a named coordinate to an attached (n, 2) bounds array in one call.
package cellbounds

import (
	"fmt"
	"time"

	"github.com/katalvlaran/cellbounds/interval"
	"github.com/katalvlaran/cellbounds/labeled"
)

// Attribute keys of the bounds encoding. AttrBounds on a coordinate names
// its bounds array; AttrClosed on a bounds array records the closed side.
const (
	AttrBounds = "bounds"
	AttrClosed = "closed"
)

// InferBounds reconstructs the cell bounds of a numeric coordinate and
// returns them as an (n, 2) array over (coord.Name, boundsDim). The
// returned array carries a copy of the coordinate annotated with an
// AttrBounds back-reference.
//
// Options: WithLabel, WithClosed, WithBoundsDim.
func InferBounds(coord *labeled.Coord[float64], opts ...Option) (*labeled.Array[float64], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkCoord(coord); err != nil {
		return nil, err
	}
	seq, err := interval.FromLabels(coord.Values, cfg.label, cfg.closed, coord.Name)
	if err != nil {
		return nil, err
	}
	return encodeBounds(seq, coord.Name, coord.Copy(), cfg.boundsDim), nil
}

// InferTimeBounds is InferBounds for datetime coordinates. Calendar
// spacings (months, quarters, years) are inferred and applied exactly;
// WithNormalize additionally truncates the resulting edges to midnight.
func InferTimeBounds(coord *labeled.Coord[time.Time], opts ...Option) (*labeled.Array[time.Time], error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return nil, err
	}
	if err := checkCoord(coord); err != nil {
		return nil, err
	}
	seq, err := interval.FromTimeLabels(coord.Values, cfg.label, cfg.closed, coord.Name, cfg.normalize)
	if err != nil {
		return nil, err
	}
	return encodeBounds(seq, coord.Name, coord.Copy(), cfg.boundsDim), nil
}

// checkCoord validates the shared coordinate preconditions.
func checkCoord[T any](coord *labeled.Coord[T]) error {
	if coord == nil {
		return fmt.Errorf("%w: nil coordinate", ErrInputShape)
	}
	if coord.Name == "" {
		return fmt.Errorf("%w: coordinate has no name", ErrConfiguration)
	}
	return nil
}
