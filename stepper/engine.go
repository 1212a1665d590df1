package stepper

import (
	"iter"
	"slices"

	"github.com/katalvlaran/mazebfs/bfs"
	"github.com/katalvlaran/mazebfs/grid"
)

// Engine holds the state of at most one BFS run from the grid's Start to
// its End.
type Engine struct {
	grid  *grid.Grid
	opts  Options
	state State

	queue   []grid.Position
	visited map[grid.Position]struct{}
	order   []grid.Position
	parent  map[grid.Position]grid.Position
	path    []grid.Position
	steps   int
}

// New returns an Idle Engine searching g from g.Start() to g.End().
func New(g *grid.Grid, opts ...Option) (*Engine, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	e := &Engine{grid: g, opts: o}
	e.clear()
	return e, nil
}

// Start seeds a fresh run with only the start cell and enters Running.
// Any previous run is discarded.
func (e *Engine) Start() {
	e.clear()
	start := e.grid.Start()
	e.queue = append(e.queue, start)
	e.visited[start] = struct{}{}
	e.order = append(e.order, start)
	e.state = Running
}

// Reset discards the current run and returns to Idle.
func (e *Engine) Reset() {
	e.clear()
}

// Step performs one frontier expansion and reports whether it did any work.
// It is a no-op unless the engine is Running.
func (e *Engine) Step() bool {
	if e.state != Running {
		return false
	}
	if len(e.queue) == 0 {
		e.state = Exhausted
		return false
	}

	current := e.queue[0]
	e.queue = e.queue[1:]
	e.steps++

	if current == e.grid.End() {
		e.path = bfs.Reconstruct(e.parent, current)
		e.state = Found
		e.opts.OnFound(slices.Clone(e.path))
		e.opts.OnStep(e.Snapshot())
		return true
	}

	for _, nbr := range e.grid.Neighbors(current) {
		if !e.grid.IsTraversable(nbr) {
			continue
		}
		if _, seen := e.visited[nbr]; seen {
			continue
		}
		e.queue = append(e.queue, nbr)
		e.visited[nbr] = struct{}{}
		e.order = append(e.order, nbr)
		e.parent[nbr] = current
	}
	if len(e.queue) == 0 {
		e.state = Exhausted
	}
	e.opts.OnStep(e.Snapshot())
	return true
}

// Advance performs at most n steps, stopping early when the run leaves
// Running. It returns the number of steps performed.
func (e *Engine) Advance(n int) int {
	done := 0
	for done < n && e.Step() {
		done++
	}
	return done
}

// RunToCompletion starts a fresh run and steps until it leaves Running.
// It returns the number of steps performed.
func (e *Engine) RunToCompletion() int {
	e.Start()
	done := 0
	for e.Step() {
		done++
	}
	return done
}

// Steps returns an iterator that performs one Step per iteration and yields
// the resulting Snapshot, until the run leaves Running or the consumer stops.
// It does not call Start.
func (e *Engine) Steps() iter.Seq[Snapshot] {
	return func(yield func(Snapshot) bool) {
		for e.Step() {
			if !yield(e.Snapshot()) {
				return
			}
		}
	}
}

// State returns the current lifecycle phase.
func (e *Engine) State() State { return e.state }

// StepCount returns the number of productive steps since the last Start.
func (e *Engine) StepCount() int { return e.steps }

// IsVisited reports whether p has been discovered in the current run.
func (e *Engine) IsVisited(p grid.Position) bool {
	_, ok := e.visited[p]
	return ok
}

// Visited returns the discovered cells in discovery order.
func (e *Engine) Visited() []grid.Position { return slices.Clone(e.order) }

// Frontier returns the queued cells, head first.
func (e *Engine) Frontier() []grid.Position { return slices.Clone(e.queue) }

// Path returns the start→end path once Found, nil otherwise.
func (e *Engine) Path() []grid.Position { return slices.Clone(e.path) }

// Snapshot returns a copy of the current state.
func (e *Engine) Snapshot() Snapshot {
	return Snapshot{
		State:    e.state,
		Visited:  e.Visited(),
		Frontier: e.Frontier(),
		Path:     e.Path(),
		Steps:    e.steps,
	}
}

func (e *Engine) clear() {
	n := e.grid.Rows() * e.grid.Cols()
	e.state = Idle
	e.queue = make([]grid.Position, 0, n)
	e.visited = make(map[grid.Position]struct{}, n)
	e.order = make([]grid.Position, 0, n)
	e.parent = make(map[grid.Position]grid.Position, n)
	e.path = nil
	e.steps = 0
}
