// Package session composes the maze core into a single game session: the
// grid, the scoring baselines, the stepwise BFS engine and the player.
//
// An Explorer is the only object a presentation layer talks to. Commands
// mutate state and never fail; queries return copies. After each command
// that changed something, OnChange receives a fresh Snapshot so the caller
// decides when and how to redraw.
//
// An Explorer is not safe for concurrent use. Serialize every command on one
// goroutine (the TUI does this on its event loop).
package session

import (
	"fmt"
	"iter"
	"log"

	"github.com/google/uuid"

	"github.com/katalvlaran/mazebfs/bfs"
	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/player"
	"github.com/katalvlaran/mazebfs/scoring"
	"github.com/katalvlaran/mazebfs/stepper"
)

// Explorer is one game session over a fixed grid.
type Explorer struct {
	id        uuid.UUID
	grid      *grid.Grid
	baselines scoring.Baselines
	engine    *stepper.Engine
	player    *player.State
	opts      Options
	log       *log.Logger
}

// New builds a session on g. It runs a batch BFS once to seed the scoring
// baselines and fails, wrapping bfs.ErrUnreachable, when End cannot be
// reached from Start.
func New(g *grid.Grid, opts ...Option) (*Explorer, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	x := &Explorer{
		id:     uuid.New(),
		grid:   g,
		player: player.New(g),
		opts:   o,
		log:    o.Logger,
	}

	if !g.Connected(g.Start(), g.End()) {
		x.log.Printf("[SESSION] [WARN] %s: end %v lies outside the start region (%d regions)",
			x.id, g.End(), len(g.Regions()))
		if _, walls, err := g.Breach(g.Start(), g.End()); err == nil {
			x.log.Printf("[SESSION] [WARN] %s: removing %d wall(s) would connect start and end", x.id, walls)
		}
	}
	best, err := bfs.ShortestPathLength(g, g.Start(), g.End())
	if err != nil {
		return nil, fmt.Errorf("session: computing baselines: %w", err)
	}
	x.baselines = scoring.NewBaselines(best)
	x.log.Printf("[SESSION] [INFO] %s: baselines best=%d average=%d worst=%d",
		x.id, x.baselines.Best, x.baselines.Average, x.baselines.Worst)

	x.engine, err = stepper.New(g, stepper.WithOnFound(x.onPathFound))
	if err != nil {
		return nil, fmt.Errorf("session: creating bfs engine: %w", err)
	}

	return x, nil
}

// ID identifies the session in logs.
func (x *Explorer) ID() string { return x.id.String() }

// Grid returns the maze the session runs on.
func (x *Explorer) Grid() *grid.Grid { return x.grid }

// Baselines returns the current best/average/worst lengths.
func (x *Explorer) Baselines() scoring.Baselines { return x.baselines }

// Move moves the player one cell. Returns false if nothing changed.
// Reaching End fires OnComplete exactly once until the next ResetGame.
func (x *Explorer) Move(d grid.Direction) bool {
	if !x.player.Move(d) {
		return false
	}
	if x.player.Completed() {
		r := scoring.NewResult(x.player.Steps(), x.baselines)
		x.log.Printf("[SESSION] [INFO] %s: end reached in %d steps, rating %s",
			x.id, r.Steps, r.Rating)
		x.opts.OnComplete(r)
	}
	x.changed()
	return true
}

// Undo reverts the last move. Returns false if nothing changed.
func (x *Explorer) Undo() bool {
	if !x.player.Undo() {
		return false
	}
	x.changed()
	return true
}

// ResetGame puts the player back on Start and resets the BFS to idle.
func (x *Explorer) ResetGame() {
	x.player.Reset()
	x.engine.Reset()
	x.log.Printf("[SESSION] [INFO] %s: game reset", x.id)
	x.changed()
}

// StartBFS begins a fresh BFS run, discarding any previous one.
func (x *Explorer) StartBFS() {
	x.engine.Start()
	x.changed()
}

// BFSStep advances the BFS by one expansion. Returns false when no run is active.
func (x *Explorer) BFSStep() bool {
	if !x.engine.Step() {
		return false
	}
	x.changed()
	return true
}

// ResetBFS clears the BFS run.
func (x *Explorer) ResetBFS() {
	x.engine.Reset()
	x.changed()
}

// RunBFS starts a fresh BFS and drives it to its terminal state at once.
// It returns the number of steps performed.
func (x *Explorer) RunBFS() int {
	n := x.engine.RunToCompletion()
	x.changed()
	return n
}

// ShowAllPaths starts a fresh BFS and returns an iterator that performs one
// step per iteration, yielding the session Snapshot after each. The caller
// owns the pacing; stopping the loop early leaves the run paused in Running,
// resumable with BFSStep.
func (x *Explorer) ShowAllPaths() iter.Seq[Snapshot] {
	x.StartBFS()
	return func(yield func(Snapshot) bool) {
		for range x.engine.Steps() {
			s := x.Snapshot()
			x.opts.OnChange(s)
			if !yield(s) {
				return
			}
		}
	}
}

// Result returns the scored result once the player has completed the maze.
func (x *Explorer) Result() (scoring.Result, bool) {
	if !x.player.Completed() {
		return scoring.Result{}, false
	}
	return scoring.NewResult(x.player.Steps(), x.baselines), true
}

// Snapshot returns a copy of the full session state.
func (x *Explorer) Snapshot() Snapshot {
	s := Snapshot{
		Position:  x.player.Position(),
		Completed: x.player.Completed(),
		Steps:     x.player.Steps(),
		Undone:    x.player.Undone(),
		Total:     x.player.Total(),
		BFS:       x.engine.Snapshot(),
		Baselines: x.baselines,
		Rating:    scoring.Unrated,
	}
	if r, ok := x.Result(); ok {
		s.Rating = r.Rating
	}
	return s
}

// onPathFound tightens Best when the interactive BFS reports a shorter path.
// With a correct BFS this never fires; it keeps the display consistent.
func (x *Explorer) onPathFound(path []grid.Position) {
	length := len(path) - 1
	x.log.Printf("[SESSION] [INFO] %s: bfs found shortest path with %d steps", x.id, length)
	if x.baselines.Tighten(length) {
		x.log.Printf("[SESSION] [WARN] %s: best tightened to %d", x.id, length)
	}
}

func (x *Explorer) changed() {
	x.opts.OnChange(x.Snapshot())
}
