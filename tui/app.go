// Package tui is the terminal front end for a session.Explorer, built on
// tcell. It decodes keys into commands, runs every command on a single event
// loop goroutine, and redraws after the session reports a change.
//
// The show-all-paths animation is driven by a ticker owned here; each tick
// pulls exactly one frame from the session's iterator. Any other command
// stops the animation first, so animation steps never interleave with moves.
package tui

import (
	"context"
	"io"
	"iter"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/scoring"
	"github.com/katalvlaran/mazebfs/session"
)

// App binds a screen to an explorer.
type App struct {
	screen   tcell.Screen
	explorer *session.Explorer
	theme    Theme
	delay    time.Duration
	log      *log.Logger

	notice string
	dirty  bool

	// animation state; next is nil when no animation is running
	next func() (session.Snapshot, bool)
	stop func()
}

// NewApp creates a session on g whose notifications mark the screen dirty
// and record the completion message. delay paces the show-all-paths
// animation; logger may be nil.
func NewApp(screen tcell.Screen, g *grid.Grid, delay time.Duration, logger *log.Logger) (*App, error) {
	if delay <= 0 {
		delay = time.Millisecond
	}
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	a := &App{
		screen: screen,
		theme:  DefaultTheme(),
		delay:  delay,
		log:    logger,
		dirty:  true,
	}
	x, err := session.New(g,
		session.WithLogger(logger),
		session.WithOnChange(func(session.Snapshot) { a.dirty = true }),
		session.WithOnComplete(func(r scoring.Result) { a.notice = "Maze Completed! " + r.Message() }),
	)
	if err != nil {
		return nil, err
	}
	a.explorer = x
	return a, nil
}

// Explorer returns the session driven by a.
func (a *App) Explorer() *session.Explorer { return a.explorer }

// Run draws the first frame and processes events until the user quits or
// ctx is cancelled. The caller owns screen Init/Fini.
func (a *App) Run(ctx context.Context) error {
	events := make(chan tcell.Event)
	done := make(chan struct{})
	defer close(done)
	go func() {
		for {
			ev := a.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(a.delay)
	defer ticker.Stop()
	defer a.stopAnimation()

	a.redraw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			if quit := a.HandleEvent(ev); quit {
				return nil
			}
		case <-ticker.C:
			a.Tick()
		}
		a.redraw()
	}
}

// HandleEvent applies one terminal event and reports whether to quit.
func (a *App) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventResize:
		a.screen.Sync()
		a.dirty = true
	case *tcell.EventKey:
		return a.Apply(CommandFor(ev))
	}
	return false
}

// Apply executes cmd against the explorer and reports whether to quit.
func (a *App) Apply(cmd Command) bool {
	if cmd == CmdNone {
		return false
	}
	a.stopAnimation()

	if d, ok := cmd.Direction(); ok {
		a.explorer.Move(d)
		return false
	}
	switch cmd {
	case CmdUndo:
		a.explorer.Undo()
	case CmdResetGame:
		a.notice = ""
		a.explorer.ResetGame()
	case CmdStartBFS:
		a.explorer.StartBFS()
	case CmdStepBFS:
		a.explorer.BFSStep()
	case CmdResetBFS:
		a.explorer.ResetBFS()
	case CmdShowAllPaths:
		a.startAnimation(a.explorer.ShowAllPaths())
	case CmdQuit:
		return true
	}
	return false
}

// Tick advances a running animation by one frame.
func (a *App) Tick() {
	if a.next == nil {
		return
	}
	if _, ok := a.next(); !ok {
		a.stopAnimation()
	}
}

// Animating reports whether show-all-paths is in progress.
func (a *App) Animating() bool { return a.next != nil }

// Notice returns the current completion message, if any.
func (a *App) Notice() string { return a.notice }

func (a *App) startAnimation(seq iter.Seq[session.Snapshot]) {
	a.next, a.stop = iter.Pull(seq)
	a.log.Printf("[TUI] [INFO] %s: show all paths, %s per step", a.explorer.ID(), a.delay)
}

func (a *App) stopAnimation() {
	if a.stop != nil {
		a.stop()
	}
	a.next, a.stop = nil, nil
}

func (a *App) redraw() {
	if !a.dirty {
		return
	}
	Draw(a.screen, a.explorer.Grid(), a.explorer.Snapshot(), a.theme, a.notice)
	a.dirty = false
}
