package grid

import (
	"fmt"
	"strings"
)

// Layout glyphs used by ParseLayout and (*Grid).String.
const (
	GlyphWall  = '#'
	GlyphOpen  = '.'
	GlyphStart = 'S'
	GlyphEnd   = 'E'
)

// DefaultLayout is the hand-authored 15×15 maze: Start at (1,1), End at
// (13,13), three routes of different length between them.
var DefaultLayout = []string{
	"###############",
	"#S..#.....#...#",
	"###.#.###...#.#",
	"#.#...#...#.#.#",
	"#.#.###.###.#.#",
	"#....##.#.#.#.#",
	"#.##.##.#.###.#",
	"#.#...#.#.....#",
	"#.###.#.#####.#",
	"#...#.......#.#",
	"#.#.#######.#.#",
	"#.#.......#.#.#",
	"#.#######.#.#.#",
	"#.........#..E#",
	"###############",
}

// Default returns the Grid built from DefaultLayout.
func Default() *Grid {
	g, err := ParseLayout(DefaultLayout)
	if err != nil {
		panic(fmt.Sprintf("grid: default layout is invalid: %v", err))
	}
	return g
}

// ParseLayout builds a Grid from text rows. Trailing '\r' is ignored so
// files with CRLF line endings load unchanged.
func ParseLayout(lines []string) (*Grid, error) {
	layout := make([][]CellKind, 0, len(lines))
	for r, line := range lines {
		line = strings.TrimRight(line, "\r")
		row := make([]CellKind, 0, len(line))
		for c, ch := range line {
			k, ok := kindOf(ch)
			if !ok {
				return nil, fmt.Errorf("%w: %q at (%d,%d)", ErrUnknownGlyph, ch, r, c)
			}
			row = append(row, k)
		}
		layout = append(layout, row)
	}
	return New(layout)
}

// ParseLayoutString splits s into lines, drops blank lines, and calls ParseLayout.
func ParseLayoutString(s string) (*Grid, error) {
	var lines []string
	for _, line := range strings.Split(s, "\n") {
		if strings.TrimSpace(line) == "" {
			continue
		}
		lines = append(lines, line)
	}
	return ParseLayout(lines)
}

// String renders g in the ParseLayout format, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	b.Grow(g.rows * (g.cols + 1))
	for r, row := range g.cells {
		if r > 0 {
			b.WriteByte('\n')
		}
		for _, k := range row {
			b.WriteRune(k.Glyph())
		}
	}
	return b.String()
}

// Glyph returns the layout character for k.
func (k CellKind) Glyph() rune {
	switch k {
	case Open:
		return GlyphOpen
	case Start:
		return GlyphStart
	case End:
		return GlyphEnd
	default:
		return GlyphWall
	}
}

func kindOf(ch rune) (CellKind, bool) {
	switch ch {
	case GlyphWall:
		return Wall, true
	case GlyphOpen, ' ':
		return Open, true
	case GlyphStart:
		return Start, true
	case GlyphEnd:
		return End, true
	}
	return Wall, false
}
