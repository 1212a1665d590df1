// Package grid models the maze as an immutable 2D grid of cell kinds and
// exposes the adjacency rules every other package relies on.
//
// What:
//
//   - Grid wraps a rectangular [][]CellKind with exactly one Start and one End.
//   - Position is a (Row, Col) pair; Direction is one of Up, Down, Left, Right.
//   - Neighbors returns in-bounds orthogonal neighbors in the fixed order
//     up, down, left, right. BFS tie-breaking depends on this order, so it is
//     part of the contract.
//   - Regions groups traversable cells into 4-connected regions.
//   - Breach counts the fewest walls separating two positions (0-1 BFS).
//   - ParseLayout / String convert to and from a text layout
//     ('#' wall, '.' open, 'S' start, 'E' end).
//
// Why:
//
//   - Both the batch and the stepwise BFS, as well as player movement, need a
//     single definition of "traversable" and of neighbor order.
//
// Complexity:
//
//   - Kind, IsTraversable, InBounds: O(1).
//   - Neighbors:                     O(1) (at most 4 positions).
//   - Regions, Breach:               O(R×C), Memory: O(R×C).
//
// Errors:
//
//   - ErrOutOfBounds:      position outside the grid (Kind).
//   - ErrEmptyGrid:        layout has no rows or no columns.
//   - ErrNonRectangular:   rows have differing lengths.
//   - ErrMissingStart/End: no Start or End marker.
//   - ErrDuplicateMarker:  more than one Start or End marker.
//   - ErrUnknownGlyph:     ParseLayout met a character it does not know.
//   - ErrNoBreach:         Breach endpoint out of bounds.
package grid
