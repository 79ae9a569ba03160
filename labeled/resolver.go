// SPDX-License-Identifier: MIT

package labeled

import (
	"errors"
	"fmt"
)

// ErrUnknownDim indicates no dimension matches the requested key.
var ErrUnknownDim = errors.New("labeled: no dimension found for key")

// DimResolver resolves a user-supplied name or alias to a canonical
// dimension name. This is the only name-resolution capability the bounds
// machinery depends on; hosts with richer convention metadata implement it
// however they like.
type DimResolver interface {
	ResolveDim(key string) (string, error)
}

// StaticResolver resolves against a fixed dimension list plus an explicit
// alias table (e.g. axis letters to dimension names).
type StaticResolver struct {
	Dims    []string
	Aliases map[string]string
}

// ResolveDim returns the dimension a key names, trying exact dimension
// names before aliases.
func (r StaticResolver) ResolveDim(key string) (string, error) {
	for _, d := range r.Dims {
		if d == key {
			return d, nil
		}
	}
	if d, ok := r.Aliases[key]; ok {
		for _, known := range r.Dims {
			if known == d {
				return d, nil
			}
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownDim, key)
}
