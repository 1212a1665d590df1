package grid

import "errors"

var (
	// ErrOutOfBounds indicates a position outside [0,Rows)×[0,Cols).
	ErrOutOfBounds = errors.New("grid: position out of bounds")
	// ErrEmptyGrid indicates the input layout is empty.
	ErrEmptyGrid = errors.New("grid: layout must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("grid: all rows must have the same length")
	// ErrMissingStart indicates the layout has no Start cell.
	ErrMissingStart = errors.New("grid: layout has no start cell")
	// ErrMissingEnd indicates the layout has no End cell.
	ErrMissingEnd = errors.New("grid: layout has no end cell")
	// ErrDuplicateMarker indicates more than one Start or End cell.
	ErrDuplicateMarker = errors.New("grid: start and end must each appear exactly once")
	// ErrUnknownGlyph indicates a character ParseLayout cannot map to a CellKind.
	ErrUnknownGlyph = errors.New("grid: unknown layout glyph")
	// ErrUnknownDirection indicates a direction name ParseDirection cannot map.
	ErrUnknownDirection = errors.New("grid: unknown direction")
)
