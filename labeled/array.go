// SPDX-License-Identifier: MIT

package labeled

// Coord is an ordered 1-D label sequence with a name and metadata
// attributes. It is the index of one array dimension.
type Coord[T any] struct {
	Name   string
	Values []T
	Attrs  map[string]string
}

// NewCoord constructs a coordinate over the given values. The slice is
// copied so later caller mutations cannot leak in.
func NewCoord[T any](name string, values []T) *Coord[T] {
	vs := make([]T, len(values))
	copy(vs, values)
	return &Coord[T]{Name: name, Values: vs, Attrs: map[string]string{}}
}

// Len returns the number of labels.
func (c *Coord[T]) Len() int { return len(c.Values) }

// Copy returns a deep copy of the coordinate.
func (c *Coord[T]) Copy() *Coord[T] {
	out := NewCoord(c.Name, c.Values)
	for k, v := range c.Attrs {
		out.Attrs[k] = v
	}
	return out
}

// Array is a 2-D labeled value: a data matrix with two named dimensions,
// coordinates keyed by name, and metadata attributes. Row i of Data indexes
// the first dimension, column j the second.
type Array[T any] struct {
	Name   string
	Dims   [2]string
	Data   [][]T
	Coords map[string]*Coord[T]
	Attrs  map[string]string
}

// Rows returns the extent of the first dimension.
func (a *Array[T]) Rows() int { return len(a.Data) }
