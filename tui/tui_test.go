package tui_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/stepper"
	"github.com/katalvlaran/mazebfs/tui"
)

// newScreen returns an initialised 80×30 simulation screen.
func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	require.NoError(t, s.Init())
	s.SetSize(80, 30)
	t.Cleanup(s.Fini)
	return s
}

// runeAt returns the primary rune drawn at (x,y).
func runeAt(s tcell.SimulationScreen, x, y int) rune {
	cells, w, _ := s.GetContents()
	c := cells[y*w+x]
	if len(c.Runes) == 0 {
		return ' '
	}
	return c.Runes[0]
}

// rowText returns the drawn text of row y.
func rowText(s tcell.SimulationScreen, y int) string {
	_, w, _ := s.GetContents()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(runeAt(s, x, y))
	}
	return b.String()
}

// screenText returns every drawn row joined by newlines.
func screenText(s tcell.SimulationScreen) string {
	_, _, h := s.GetContents()
	rows := make([]string, h)
	for y := range rows {
		rows[y] = rowText(s, y)
	}
	return strings.Join(rows, "\n")
}

func key(k tcell.Key) *tcell.EventKey { return tcell.NewEventKey(k, 0, tcell.ModNone) }

func char(r rune) *tcell.EventKey { return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone) }

func newApp(t *testing.T) (*tui.App, tcell.SimulationScreen) {
	t.Helper()
	s := newScreen(t)
	a, err := tui.NewApp(s, grid.Default(), time.Millisecond, nil)
	require.NoError(t, err)
	return a, s
}

func TestCommandFor(t *testing.T) {
	cases := []struct {
		ev   *tcell.EventKey
		want tui.Command
	}{
		{key(tcell.KeyUp), tui.CmdMoveUp},
		{key(tcell.KeyDown), tui.CmdMoveDown},
		{key(tcell.KeyLeft), tui.CmdMoveLeft},
		{key(tcell.KeyRight), tui.CmdMoveRight},
		{key(tcell.KeyCtrlZ), tui.CmdUndo},
		{key(tcell.KeyEscape), tui.CmdQuit},
		{char('l'), tui.CmdMoveRight},
		{char('u'), tui.CmdUndo},
		{char('r'), tui.CmdResetGame},
		{char('b'), tui.CmdStartBFS},
		{char('n'), tui.CmdStepBFS},
		{char('x'), tui.CmdResetBFS},
		{char('a'), tui.CmdShowAllPaths},
		{char('q'), tui.CmdQuit},
		{char('z'), tui.CmdNone},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, tui.CommandFor(tc.ev), "key %v", tc.ev.Name())
	}

	d, ok := tui.CmdMoveLeft.Direction()
	assert.True(t, ok)
	assert.Equal(t, grid.Left, d)
	_, ok = tui.CmdUndo.Direction()
	assert.False(t, ok)
}

// TestDraw_Initial checks markers, player and panel on the first frame.
func TestDraw_Initial(t *testing.T) {
	a, s := newApp(t)
	x := a.Explorer()
	tui.Draw(s, x.Grid(), x.Snapshot(), tui.DefaultTheme(), "")

	// the player stands on Start, so Start shows P
	px, py := tui.CellOrigin(grid.Pos(1, 1))
	assert.Equal(t, 'P', runeAt(s, px, py))
	ex, ey := tui.CellOrigin(grid.Pos(13, 13))
	assert.Equal(t, 'E', runeAt(s, ex, ey))

	text := screenText(s)
	assert.Contains(t, text, "BFS Maze Explorer")
	assert.Contains(t, text, "Steps: 0")
	assert.Contains(t, text, "Efficiency: -")
	assert.Contains(t, text, "Best Path     Steps: 24")
	assert.Contains(t, text, "Average Path  Steps: 32")
	assert.Contains(t, text, "Worst Path    Steps: 40")
	assert.Contains(t, text, "State: idle")
}

// TestApp_MoveAndUndo drives the app with key events.
func TestApp_MoveAndUndo(t *testing.T) {
	a, s := newApp(t)

	assert.False(t, a.HandleEvent(key(tcell.KeyRight)))
	assert.Equal(t, grid.Pos(1, 2), a.Explorer().Snapshot().Position)
	tui.Draw(s, a.Explorer().Grid(), a.Explorer().Snapshot(), tui.DefaultTheme(), a.Notice())
	sx, sy := tui.CellOrigin(grid.Pos(1, 1))
	assert.Equal(t, 'S', runeAt(s, sx, sy), "start label is visible once the player leaves")

	assert.False(t, a.HandleEvent(key(tcell.KeyCtrlZ)))
	snap := a.Explorer().Snapshot()
	assert.Equal(t, grid.Pos(1, 1), snap.Position)
	assert.Equal(t, 1, snap.Undone)

	assert.True(t, a.HandleEvent(char('q')))
}

// TestApp_Completion shows the completion message after walking the route.
func TestApp_Completion(t *testing.T) {
	a, s := newApp(t)
	moves := []tcell.Key{
		tcell.KeyRight, tcell.KeyRight, tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyDown,
		tcell.KeyRight, tcell.KeyDown, tcell.KeyDown, tcell.KeyRight, tcell.KeyDown, tcell.KeyDown,
		tcell.KeyRight, tcell.KeyRight, tcell.KeyRight, tcell.KeyRight, tcell.KeyRight, tcell.KeyRight,
		tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyDown, tcell.KeyRight, tcell.KeyRight,
	}
	for _, k := range moves {
		a.HandleEvent(key(k))
	}
	require.True(t, a.Explorer().Snapshot().Completed)
	assert.Equal(t, "Maze Completed! Perfect! You found the shortest path in 24 steps!", a.Notice())

	tui.Draw(s, a.Explorer().Grid(), a.Explorer().Snapshot(), tui.DefaultTheme(), a.Notice())
	assert.Contains(t, screenText(s), "Efficiency: Perfect")

	a.HandleEvent(char('r'))
	assert.Empty(t, a.Notice())
	assert.False(t, a.Explorer().Snapshot().Completed)
}

// TestApp_BFSKeys covers start, step and reset.
func TestApp_BFSKeys(t *testing.T) {
	a, _ := newApp(t)
	a.HandleEvent(char('b'))
	a.HandleEvent(char('n'))
	a.HandleEvent(char('n'))
	snap := a.Explorer().Snapshot()
	assert.Equal(t, stepper.Running, snap.BFS.State)
	assert.Equal(t, 2, snap.BFS.Steps)

	a.HandleEvent(char('x'))
	assert.Equal(t, stepper.Idle, a.Explorer().Snapshot().BFS.State)
}

// TestApp_Animation ticks show-all-paths to completion, one frame per tick.
func TestApp_Animation(t *testing.T) {
	a, s := newApp(t)
	a.HandleEvent(char('a'))
	require.True(t, a.Animating())

	a.Tick()
	a.Tick()
	assert.Equal(t, 2, a.Explorer().Snapshot().BFS.Steps)

	for i := 0; i < 200 && a.Animating(); i++ {
		a.Tick()
	}
	assert.False(t, a.Animating())
	snap := a.Explorer().Snapshot()
	assert.Equal(t, stepper.Found, snap.BFS.State)
	assert.Equal(t, 87, snap.BFS.Steps)

	tui.Draw(s, a.Explorer().Grid(), snap, tui.DefaultTheme(), "")
	assert.Contains(t, screenText(s), "Shortest: 24 steps")
}

// TestApp_MoveStopsAnimation ensures a command halts the animation first.
func TestApp_MoveStopsAnimation(t *testing.T) {
	a, _ := newApp(t)
	a.HandleEvent(char('a'))
	a.Tick()
	a.HandleEvent(key(tcell.KeyRight))
	assert.False(t, a.Animating())

	steps := a.Explorer().Snapshot().BFS.Steps
	a.Tick()
	assert.Equal(t, steps, a.Explorer().Snapshot().BFS.Steps, "no frames after stop")
	assert.Equal(t, stepper.Running, a.Explorer().Snapshot().BFS.State, "run stays paused")
}

// TestNewApp_Unsolvable propagates the session error.
func TestNewApp_Unsolvable(t *testing.T) {
	g, err := grid.ParseLayout([]string{"S#E"})
	require.NoError(t, err)
	_, err = tui.NewApp(newScreen(t), g, 0, nil)
	assert.Error(t, err)
}
