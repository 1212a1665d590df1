package tui

import "github.com/gdamore/tcell/v2"

// Theme holds one style per cell role plus the panel text styles.
type Theme struct {
	Wall     tcell.Style
	Open     tcell.Style
	Start    tcell.Style
	End      tcell.Style
	Current  tcell.Style
	Visited  tcell.Style
	Shortest tcell.Style
	Frontier tcell.Style

	Title  tcell.Style
	Text   tcell.Style
	Best   tcell.Style
	Avg    tcell.Style
	Worst  tcell.Style
	Notice tcell.Style
}

// DefaultTheme reproduces the explorer's classic palette.
func DefaultTheme() Theme {
	cell := func(bg int32, fg tcell.Color) tcell.Style {
		return tcell.StyleDefault.Background(tcell.NewHexColor(bg)).Foreground(fg).Bold(true)
	}
	bg := tcell.NewHexColor(0x1a2a6c)
	text := tcell.StyleDefault.Background(bg).Foreground(tcell.ColorWhite)
	return Theme{
		Wall:     cell(0x2c3e50, tcell.ColorWhite),
		Open:     cell(0x3498db, tcell.ColorWhite),
		Start:    cell(0x2ecc71, tcell.ColorWhite),
		End:      cell(0xe74c3c, tcell.ColorWhite),
		Current:  cell(0xf1c40f, tcell.ColorBlack),
		Visited:  cell(0x9b59b6, tcell.ColorWhite),
		Shortest: cell(0x1abc9c, tcell.ColorWhite),
		Frontier: cell(0x8e44ad, tcell.ColorWhite),

		Title:  text.Bold(true),
		Text:   text,
		Best:   text.Foreground(tcell.NewHexColor(0x2ecc71)),
		Avg:    text.Foreground(tcell.NewHexColor(0x3498db)),
		Worst:  text.Foreground(tcell.NewHexColor(0xe74c3c)),
		Notice: text.Foreground(tcell.NewHexColor(0xf1c40f)).Bold(true),
	}
}
