// Package grid is the data model of the level pipeline: a mutable rows×cols
// grid of cell-type codes, the alphabet that gives those codes meaning, and
// the neighbour analysis every later stage is built on.
//
// What:
//
//   - Grid: row-major storage of Code values, mutated in place by generators.
//   - Alphabet: caller-defined Code → Kind mapping (Empty, Hall, Node, Ceiling).
//   - Surrounding: the four orthogonal neighbours of a cell plus the count of
//     occupied ones, with four edge-of-grid policies (blank, void, extend, wrap).
//   - Shape: dead-end / straight / corner / tee / cross classification.
//   - Invert, CleanUp: post-processing passes over finished grids.
//   - Components, Bridge: island detection and minimal-conversion bridging.
//   - ToGraph: occupied cells as a *core.Graph for path queries.
//
// Complexity:
//
//   - Surrounding:     O(1).
//   - Invert, CleanUp: O(R×C).
//   - Components:      O(R×C), Memory O(R×C).
//   - Bridge:          O(R×C) (0-1 BFS), Memory O(R×C).
//   - ToGraph:         O(R×C + E).
//
// Errors:
//
//   - ErrEmptyGrid: no rows or no columns.
//   - ErrNonRectangular: rows have differing lengths.
//   - ErrOutOfBounds: coordinate outside the grid.
//   - ErrComponentIndex: component index out of range.
//   - ErrNoPath: no conversion path exists between two components.
//   - ErrNotInvertible: a substitution map cannot be reversed.
package grid
