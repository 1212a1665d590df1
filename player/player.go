// Package player tracks a player's walk through a grid.Grid: the current
// cell, an undo history, step counters and a one-way completion latch.
//
// Invalid commands never fail loudly. Moving into a wall or off the grid,
// undoing with an empty history, or any command after completion simply
// leaves the state unchanged and returns false.
package player

import (
	"slices"

	"github.com/katalvlaran/mazebfs/grid"
)

// State is one player's progress. The current position is always traversable.
// State is not safe for concurrent use.
type State struct {
	grid      *grid.Grid
	pos       grid.Position
	history   []grid.Position
	steps     int
	moves     int
	undone    int
	completed bool
}

// New places a player on g's Start cell.
func New(g *grid.Grid) *State {
	s := &State{grid: g}
	s.Reset()
	return s
}

// Move steps one cell in direction d. It returns false, changing nothing,
// when the run is complete or the target cell is out of bounds or a wall.
// Reaching the End cell latches Completed.
func (s *State) Move(d grid.Direction) bool {
	if s.completed {
		return false
	}
	next := s.pos.Step(d)
	if !s.grid.IsTraversable(next) {
		return false
	}
	s.history = append(s.history, s.pos)
	s.pos = next
	s.steps++
	s.moves++
	if next == s.grid.End() {
		s.completed = true
	}
	return true
}

// Undo returns to the previously occupied cell. It returns false when the
// run is complete or there is nothing to undo.
// Undo takes the move back out of Steps and counts it in Undone, so Steps
// always equals len(History()).
func (s *State) Undo() bool {
	if s.completed || len(s.history) == 0 {
		return false
	}
	last := len(s.history) - 1
	s.pos = s.history[last]
	s.history = s.history[:last]
	s.steps--
	s.undone++
	return true
}

// Reset moves the player back to Start and clears history, counters and the latch.
func (s *State) Reset() {
	s.pos = s.grid.Start()
	s.history = nil
	s.steps = 0
	s.moves = 0
	s.undone = 0
	s.completed = false
}

// Position returns the current cell.
func (s *State) Position() grid.Position { return s.pos }

// History returns previously occupied cells, oldest first.
func (s *State) History() []grid.Position { return slices.Clone(s.history) }

// Steps returns the forward moves currently standing, i.e. made and not undone.
// This is the count scored on completion.
func (s *State) Steps() int { return s.steps }

// Moves returns every successful forward move, including ones later undone.
func (s *State) Moves() int { return s.moves }

// Undone returns the number of successful undos.
func (s *State) Undone() int { return s.undone }

// Total returns Moves + Undone, every action the player took.
func (s *State) Total() int { return s.moves + s.undone }

// Completed reports whether the player has reached End.
func (s *State) Completed() bool { return s.completed }
