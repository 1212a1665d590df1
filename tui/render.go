package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/session"
)

// Screen geometry. Each maze cell is cellWidth terminal columns wide.
const (
	cellWidth = 2
	originX   = 2
	originY   = 2
	panelGap  = 4
)

// CellOrigin returns the terminal column and row of the left half of cell p.
func CellOrigin(p grid.Position) (x, y int) {
	return originX + p.Col*cellWidth, originY + p.Row
}

// Draw renders the maze, the BFS overlay, the player and the side panel.
// notice, when non-empty, is shown under the stats (the completion message).
func Draw(s tcell.Screen, g *grid.Grid, snap session.Snapshot, th Theme, notice string) {
	s.SetStyle(th.Text)
	s.Clear()

	drawText(s, originX, 0, th.Title, "BFS Maze Explorer")

	visited := snap.Visited()
	frontier := make(map[grid.Position]struct{}, len(snap.BFS.Frontier))
	for _, p := range snap.BFS.Frontier {
		frontier[p] = struct{}{}
	}

	for r := 0; r < g.Rows(); r++ {
		for c := 0; c < g.Cols(); c++ {
			p := grid.Pos(r, c)
			kind, _ := g.Kind(p)
			style, label := cellStyle(p, kind, snap, visited, frontier, th)
			x, y := CellOrigin(p)
			s.SetContent(x, y, label, nil, style)
			s.SetContent(x+1, y, ' ', nil, style)
		}
	}

	drawPanel(s, originX+g.Cols()*cellWidth+panelGap, originY, snap, th, notice)
	s.Show()
}

// cellStyle layers the roles in increasing priority: kind, visited or
// frontier, shortest path, current position.
func cellStyle(
	p grid.Position,
	kind grid.CellKind,
	snap session.Snapshot,
	visited, frontier map[grid.Position]struct{},
	th Theme,
) (tcell.Style, rune) {
	style, label := th.Wall, ' '
	switch kind {
	case grid.Open:
		style = th.Open
	case grid.Start:
		style, label = th.Start, 'S'
	case grid.End:
		style, label = th.End, 'E'
	}
	if _, ok := frontier[p]; ok {
		style = th.Frontier
	} else if _, ok := visited[p]; ok {
		style = th.Visited
	}
	if kind == grid.Open && snap.OnPath(p) {
		style = th.Shortest
	}
	if p == snap.Position {
		style, label = th.Current, 'P'
	}
	return style, label
}

func drawPanel(s tcell.Screen, x, y int, snap session.Snapshot, th Theme, notice string) {
	line := func(style tcell.Style, format string, args ...any) {
		drawText(s, x, y, style, fmt.Sprintf(format, args...))
		y++
	}

	line(th.Title, "Stats")
	line(th.Text, "Steps: %d", snap.Steps)
	line(th.Text, "Undone: %d", snap.Undone)
	line(th.Text, "Total: %d", snap.Total)
	line(th.Text, "Efficiency: %s", snap.Rating)
	y++

	line(th.Title, "Paths  O(V+E)")
	line(th.Best, "Best Path     Steps: %d", snap.Baselines.Best)
	line(th.Avg, "Average Path  Steps: %d", snap.Baselines.Average)
	line(th.Worst, "Worst Path    Steps: %d", snap.Baselines.Worst)
	y++

	line(th.Title, "BFS")
	line(th.Text, "State: %s", snap.BFS.State)
	line(th.Text, "Visited: %d  Frontier: %d", len(snap.BFS.Visited), len(snap.BFS.Frontier))
	if n := snap.BFS.PathLength(); n >= 0 {
		line(th.Text, "Shortest: %d steps", n)
	} else {
		line(th.Text, "Shortest: -")
	}
	y++

	line(th.Title, "How to Play")
	for _, h := range Help {
		line(th.Text, "%s", h)
	}
	y++

	if notice != "" {
		line(th.Notice, "%s", notice)
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x++
	}
}
