package stepper

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// ErrGridNil is returned by New when the grid pointer is nil.
var ErrGridNil = errors.New("stepper: grid is nil")

// State is the lifecycle phase of an Engine.
type State uint8

const (
	// Idle means no run is in progress.
	Idle State = iota
	// Running means the frontier is non-empty and the end has not been dequeued.
	Running
	// Found means the end was dequeued and the path reconstructed.
	Found
	// Exhausted means the frontier emptied without reaching the end.
	Exhausted
)

// String returns the lowercase name of s.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Found:
		return "found"
	case Exhausted:
		return "exhausted"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Option configures an Engine.
type Option func(*Options)

// Options holds Engine callbacks.
type Options struct {
	// OnFound is called once per run when the end is dequeued, with the
	// start→end path. The slice is a copy owned by the callee.
	OnFound func(path []grid.Position)

	// OnStep is called after every state-changing Step with a fresh Snapshot.
	OnStep func(s Snapshot)
}

// DefaultOptions returns Options with no-op callbacks.
func DefaultOptions() Options {
	return Options{
		OnFound: func([]grid.Position) {},
		OnStep:  func(Snapshot) {},
	}
}

// WithOnFound registers a callback fired when a run reaches Found.
func WithOnFound(fn func(path []grid.Position)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnFound = fn
		}
	}
}

// WithOnStep registers a callback fired after every step.
func WithOnStep(fn func(s Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnStep = fn
		}
	}
}

// Snapshot is an immutable copy of the engine state for rendering.
//   - Visited lists discovered cells in discovery order.
//   - Frontier lists queued cells, head first.
//   - Path is the start→end path once Found, nil otherwise.
//   - Steps counts Step calls that did work since the last Start.
type Snapshot struct {
	State    State
	Visited  []grid.Position
	Frontier []grid.Position
	Path     []grid.Position
	Steps    int
}

// PathLength returns the edge count of Path, or -1 when no path was found.
func (s Snapshot) PathLength() int {
	if s.State != Found {
		return -1
	}
	return len(s.Path) - 1
}
