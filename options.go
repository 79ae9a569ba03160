// SPDX-License-Identifier: MIT

package cellbounds

import (
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/cellbounds/interval"
)

// DefaultBoundsDim is the name of the second dimension of every bounds
// array unless overridden.
const DefaultBoundsDim = "bnds"

var (
	boundsDimMu sync.RWMutex
	boundsDim   = DefaultBoundsDim
)

// BoundsDim returns the current process-wide bounds-dimension name.
func BoundsDim() string {
	boundsDimMu.RLock()
	defer boundsDimMu.RUnlock()
	return boundsDim
}

// SetBoundsDim changes the process-wide bounds-dimension name and returns
// a restore function that puts the previous value back, so a scoped
// override is a one-liner:
//
//	restore, err := cellbounds.SetBoundsDim("bounds")
//	if err != nil { ... }
//	defer restore()
func SetBoundsDim(name string) (func(), error) {
	if err := validBoundsDim(name); err != nil {
		return nil, err
	}
	boundsDimMu.Lock()
	prev := boundsDim
	boundsDim = name
	boundsDimMu.Unlock()
	return func() {
		boundsDimMu.Lock()
		boundsDim = prev
		boundsDimMu.Unlock()
	}, nil
}

// ResetBoundsDim restores the process-wide bounds-dimension name to
// DefaultBoundsDim.
func ResetBoundsDim() {
	boundsDimMu.Lock()
	boundsDim = DefaultBoundsDim
	boundsDimMu.Unlock()
}

// validBoundsDim rejects names that cannot serve as a dimension name.
func validBoundsDim(name string) error {
	if name == "" {
		return fmt.Errorf("%w: bounds dimension name must be non-empty", ErrConfiguration)
	}
	if strings.ContainsAny(name, " \t\n") {
		return fmt.Errorf("%w: bounds dimension name %q contains whitespace", ErrConfiguration, name)
	}
	return nil
}

// config collects the per-call knobs of the entry points. Every field is
// optional; zero values defer to the documented defaulting rules.
type config struct {
	label     interval.Side
	closed    interval.Closed
	boundsDim string
	normalize bool
	dim       string
	name      string
}

// Option adjusts one entry-point call.
type Option func(*config)

// WithLabel states which side of its cell each label denotes.
func WithLabel(side interval.Side) Option {
	return func(c *config) { c.label = side }
}

// WithClosed states which interval edge includes its boundary point.
func WithClosed(closed interval.Closed) Option {
	return func(c *config) { c.closed = closed }
}

// WithBoundsDim overrides the bounds-dimension name for this call only.
func WithBoundsDim(name string) Option {
	return func(c *config) { c.boundsDim = name }
}

// WithNormalize truncates both bound edges of a datetime result to
// midnight.
func WithNormalize() Option {
	return func(c *config) { c.normalize = true }
}

// WithDim sets the first dimension name of the bounds array. Required by
// the interval codec when the interval sequence itself has no name.
func WithDim(dim string) Option {
	return func(c *config) { c.dim = dim }
}

// WithName sets the coordinate name attached to the bounds array when it
// should differ from the dimension name.
func WithName(name string) Option {
	return func(c *config) { c.name = name }
}

// newConfig folds the options over the defaults and validates the result.
func newConfig(opts []Option) (config, error) {
	cfg := config{boundsDim: BoundsDim()}
	for _, o := range opts {
		o(&cfg)
	}
	if err := validBoundsDim(cfg.boundsDim); err != nil {
		return config{}, err
	}
	return cfg, nil
}
