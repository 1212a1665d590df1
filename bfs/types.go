// Package bfs provides tunable options and error definitions
// for breadth-first search over a grid.Grid.
package bfs

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// Sentinel errors for BFS execution.
var (
	// ErrGridNil is returned if a nil grid pointer is passed.
	ErrGridNil = errors.New("bfs: grid is nil")

	// ErrStartBlocked is returned when start is out of bounds or a wall.
	ErrStartBlocked = errors.New("bfs: start is not traversable")

	// ErrEndOutOfBounds is returned when end lies outside the grid.
	ErrEndOutOfBounds = errors.New("bfs: end is out of bounds")

	// ErrUnreachable is returned when the frontier empties before end is reached.
	// It is distinct from a zero-length path, which only occurs when start == end.
	ErrUnreachable = errors.New("bfs: end is unreachable from start")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")
)

// Option configures BFS behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it will be recorded
// internally and surfaced as ErrOptionViolation when BFS is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize BFS execution.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a cell is discovered and enqueued.
	OnEnqueue func(p grid.Position, depth int)

	// OnDequeue is called immediately before visiting a cell.
	OnDequeue func(p grid.Position, depth int)

	// OnVisit is called when visiting a cell. If it returns an error,
	// BFS aborts and propagates that error.
	OnVisit func(p grid.Position, depth int) error

	// MaxDepth, if > 0, stops exploring beyond this depth.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with background context, no depth limit,
// and no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(grid.Position, int) {},
		OnDequeue: func(grid.Position, int) {},
		OnVisit:   func(grid.Position, int) error { return nil },
		MaxDepth:  0,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(p grid.Position, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithOnVisit registers a callback to run on visit; returning an error
// from this callback stops the BFS.
func WithOnVisit(fn func(p grid.Position, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to depth d
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a search:
//   - Order: cells dequeued, in visit sequence.
//   - Discovered: cells marked visited, in discovery sequence.
//   - Depth: distance (in edges) from the start for every discovered cell.
//   - Parent: predecessor of every discovered cell except the start.
//   - Path: start→end when Found, nil otherwise.
type Result struct {
	Start, End grid.Position
	Order      []grid.Position
	Discovered []grid.Position
	Depth      map[grid.Position]int
	Parent     map[grid.Position]grid.Position
	Path       []grid.Position
	Found      bool
}

// Length returns the edge count of Path, or -1 when the end was not reached.
func (r *Result) Length() int {
	if !r.Found {
		return -1
	}
	return len(r.Path) - 1
}

// PathTo reconstructs the path from the start to dest over the BFS tree.
// Returns an error if dest was not discovered.
func (r *Result) PathTo(dest grid.Position) ([]grid.Position, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("bfs: no path to %v", dest)
	}
	return Reconstruct(r.Parent, dest), nil
}

// Reconstruct walks parent links back from dest until a position without a
// parent (the start) and returns the path in start→dest order.
func Reconstruct(parent map[grid.Position]grid.Position, dest grid.Position) []grid.Position {
	path := []grid.Position{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
