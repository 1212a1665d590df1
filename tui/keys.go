package tui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/grid"
)

// Command is a user intent decoded from a key press.
type Command uint8

const (
	CmdNone Command = iota
	CmdMoveUp
	CmdMoveDown
	CmdMoveLeft
	CmdMoveRight
	CmdUndo
	CmdResetGame
	CmdStartBFS
	CmdStepBFS
	CmdResetBFS
	CmdShowAllPaths
	CmdQuit
)

// Help lists the key bindings shown in the side panel.
var Help = []string{
	"Arrows / hjkl  move",
	"Ctrl+Z / u     undo last move",
	"r              reset game",
	"b              start BFS",
	"n              next BFS step",
	"x              reset BFS",
	"a              show all paths",
	"q / Esc        quit",
}

// CommandFor maps a key event to a Command.
func CommandFor(ev *tcell.EventKey) Command {
	switch ev.Key() {
	case tcell.KeyUp:
		return CmdMoveUp
	case tcell.KeyDown:
		return CmdMoveDown
	case tcell.KeyLeft:
		return CmdMoveLeft
	case tcell.KeyRight:
		return CmdMoveRight
	case tcell.KeyCtrlZ:
		return CmdUndo
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return CmdQuit
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'k':
			return CmdMoveUp
		case 'j':
			return CmdMoveDown
		case 'h':
			return CmdMoveLeft
		case 'l':
			return CmdMoveRight
		case 'u':
			return CmdUndo
		case 'r':
			return CmdResetGame
		case 'b':
			return CmdStartBFS
		case 'n':
			return CmdStepBFS
		case 'x':
			return CmdResetBFS
		case 'a':
			return CmdShowAllPaths
		case 'q':
			return CmdQuit
		}
	}
	return CmdNone
}

// Direction returns the move direction for the four move commands.
func (c Command) Direction() (grid.Direction, bool) {
	switch c {
	case CmdMoveUp:
		return grid.Up, true
	case CmdMoveDown:
		return grid.Down, true
	case CmdMoveLeft:
		return grid.Left, true
	case CmdMoveRight:
		return grid.Right, true
	}
	return 0, false
}
