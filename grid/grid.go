package grid

// New constructs a Grid from a non-empty, rectangular layout containing
// exactly one Start and one End cell.
// It deep-copies the input so later changes to layout do not leak in.
// Returns ErrEmptyGrid, ErrNonRectangular, ErrMissingStart, ErrMissingEnd or
// ErrDuplicateMarker for malformed input.
// Complexity: O(R×C) time and memory.
func New(layout [][]CellKind) (*Grid, error) {
	if len(layout) == 0 || len(layout[0]) == 0 {
		return nil, ErrEmptyGrid
	}
	rows, cols := len(layout), len(layout[0])
	for _, row := range layout {
		if len(row) != cols {
			return nil, ErrNonRectangular
		}
	}

	cells := make([][]CellKind, rows)
	var starts, ends []Position
	for r := 0; r < rows; r++ {
		cells[r] = make([]CellKind, cols)
		copy(cells[r], layout[r])
		for c, k := range cells[r] {
			switch k {
			case Start:
				starts = append(starts, Pos(r, c))
			case End:
				ends = append(ends, Pos(r, c))
			}
		}
	}
	switch {
	case len(starts) == 0:
		return nil, ErrMissingStart
	case len(ends) == 0:
		return nil, ErrMissingEnd
	case len(starts) > 1 || len(ends) > 1:
		return nil, ErrDuplicateMarker
	}

	return &Grid{
		rows:  rows,
		cols:  cols,
		cells: cells,
		start: starts[0],
		end:   ends[0],
	}, nil
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// Start returns the Start position.
func (g *Grid) Start() Position { return g.start }

// End returns the End position.
func (g *Grid) End() Position { return g.end }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.Row >= 0 && p.Row < g.rows && p.Col >= 0 && p.Col < g.cols
}

// Kind returns the cell kind at p, or ErrOutOfBounds.
// Complexity: O(1).
func (g *Grid) Kind(p Position) (CellKind, error) {
	if !g.InBounds(p) {
		return Wall, ErrOutOfBounds
	}
	return g.cells[p.Row][p.Col], nil
}

// IsTraversable reports whether p is in bounds and not a wall.
// Complexity: O(1).
func (g *Grid) IsTraversable(p Position) bool {
	return g.InBounds(p) && g.cells[p.Row][p.Col].Traversable()
}

// Neighbors returns the in-bounds orthogonal neighbors of p in the order
// up, down, left, right. Walls are included; callers filter with IsTraversable.
// Complexity: O(1).
func (g *Grid) Neighbors(p Position) []Position {
	out := make([]Position, 0, len(Directions))
	for _, d := range Directions {
		q := p.Step(d)
		if g.InBounds(q) {
			out = append(out, q)
		}
	}
	return out
}

// Layout returns a deep copy of the cell kinds.
func (g *Grid) Layout() [][]CellKind {
	out := make([][]CellKind, g.rows)
	for r := range out {
		out[r] = make([]CellKind, g.cols)
		copy(out[r], g.cells[r])
	}
	return out
}

// index maps p to a row-major index: Row*cols + Col.
func (g *Grid) index(p Position) int {
	return p.Row*g.cols + p.Col
}

// position converts a row-major index back to a Position.
func (g *Grid) position(idx int) Position {
	return Position{Row: idx / g.cols, Col: idx % g.cols}
}
