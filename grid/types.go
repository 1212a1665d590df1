package grid

import (
	"fmt"
	"strings"
)

// CellKind is the content of a single grid cell.
type CellKind uint8

const (
	// Wall is never traversable.
	Wall CellKind = iota
	// Open is a plain corridor cell.
	Open
	// Start is the unique cell where the player and every BFS run begin.
	Start
	// End is the unique target cell.
	End
)

// String returns the lowercase name of the kind.
func (k CellKind) String() string {
	switch k {
	case Wall:
		return "wall"
	case Open:
		return "open"
	case Start:
		return "start"
	case End:
		return "end"
	default:
		return fmt.Sprintf("CellKind(%d)", uint8(k))
	}
}

// Traversable reports whether a player or a search may enter a cell of kind k.
func (k CellKind) Traversable() bool {
	return k == Open || k == Start || k == End
}

// Position addresses a cell by row and column.
type Position struct {
	Row, Col int
}

// Pos is shorthand for Position{Row: row, Col: col}.
func Pos(row, col int) Position {
	return Position{Row: row, Col: col}
}

// Step returns the position one unit away in direction d.
// The result may lie outside the grid.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Delta()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

// String formats p as "(row,col)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Direction is one of the four orthogonal moves.
type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists every Direction in neighbor order: up, down, left, right.
// Search tie-breaking among equal-length paths follows this order.
var Directions = [4]Direction{Up, Down, Left, Right}

// deltas holds (row, col) offsets indexed by Direction.
var deltas = [4][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}

// Delta returns the (row, col) offset for d.
func (d Direction) Delta() (dr, dc int) {
	if int(d) >= len(deltas) {
		return 0, 0
	}
	return deltas[d][0], deltas[d][1]
}

// String returns the lowercase name of d.
func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Down:
		return "down"
	case Left:
		return "left"
	case Right:
		return "right"
	default:
		return fmt.Sprintf("Direction(%d)", uint8(d))
	}
}

// ParseDirection maps "up", "down", "left" or "right" (any case) to a Direction.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "up":
		return Up, nil
	case "down":
		return Down, nil
	case "left":
		return Left, nil
	case "right":
		return Right, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
}

// Grid is an immutable maze. Cells[r][c] holds the kind at row r, column c.
// Start and End are located once during construction.
type Grid struct {
	rows, cols int
	cells      [][]CellKind
	start, end Position
}
