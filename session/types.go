package session

import (
	"errors"
	"io"
	"log"

	"github.com/katalvlaran/mazebfs/grid"
	"github.com/katalvlaran/mazebfs/scoring"
	"github.com/katalvlaran/mazebfs/stepper"
)

// ErrGridNil is returned by New when the grid pointer is nil.
var ErrGridNil = errors.New("session: grid is nil")

// Option configures an Explorer.
type Option func(*Options)

// Options holds the Explorer's logger and notification callbacks.
type Options struct {
	// Logger receives diagnostic lines. Defaults to a discarding logger.
	Logger *log.Logger

	// OnComplete fires once when the player first reaches End.
	OnComplete func(r scoring.Result)

	// OnChange fires after every command that changed state.
	OnChange func(s Snapshot)
}

// DefaultOptions returns Options with a discarding logger and no-op callbacks.
func DefaultOptions() Options {
	return Options{
		Logger:     log.New(io.Discard, "", 0),
		OnComplete: func(scoring.Result) {},
		OnChange:   func(Snapshot) {},
	}
}

// WithLogger routes diagnostics to l.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithOnComplete registers the completion callback.
func WithOnComplete(fn func(r scoring.Result)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnComplete = fn
		}
	}
}

// WithOnChange registers the state-change callback.
func WithOnChange(fn func(s Snapshot)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnChange = fn
		}
	}
}

// Snapshot is everything a presentation layer needs to draw one frame.
// Rating is scoring.Unrated until Completed.
type Snapshot struct {
	Position  grid.Position
	Completed bool
	Steps     int
	Undone    int
	Total     int
	BFS       stepper.Snapshot
	Baselines scoring.Baselines
	Rating    scoring.Rating
}

// OnPath reports whether p lies on the BFS path found so far.
func (s Snapshot) OnPath(p grid.Position) bool {
	for _, q := range s.BFS.Path {
		if q == p {
			return true
		}
	}
	return false
}

// Visited returns the BFS visited cells as a set.
func (s Snapshot) Visited() map[grid.Position]struct{} {
	out := make(map[grid.Position]struct{}, len(s.BFS.Visited))
	for _, p := range s.BFS.Visited {
		out[p] = struct{}{}
	}
	return out
}
