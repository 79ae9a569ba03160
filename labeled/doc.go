// Package labeled carries the minimal labeled-array surface the bounds
// machinery consumes and produces: 1-D named coordinates, 2-D named arrays
// with dimensions/coordinates/attributes, and a narrow dimension-name
// resolution capability.
//
// This is deliberately not a general multi-dimensional array framework —
// it is the contract boundary to one. A richer host can satisfy the same
// shapes and feed its own coordinates straight into the inference entry
// points.
//
// ⚙️ The three pieces:
//   - Coord[T]  — an ordered 1-D label sequence with a name and metadata
//   - Array[T]  — a 2-D data matrix with two named dimensions, attached
//     coordinates and metadata (the bounds encoding target)
//   - DimResolver — "resolve this alias to a canonical dimension name",
//     the only name-resolution capability the core relies on
//
// Values are treated as immutable: transformations copy, nothing mutates a
// caller-supplied coordinate in place.
package labeled
