// Package stepper runs breadth-first search over a grid.Grid one frontier
// expansion at a time, so a caller can render every intermediate state.
//
// What
//
//   - Engine is a resumable BFS state machine:
//
//	Idle ──Start──▶ Running ──Step──▶ Found      (end dequeued, path rebuilt)
//	                   │
//	                   └──────Step──▶ Exhausted  (frontier empty, end not reached)
//
//   - Found and Exhausted are terminal until the next Start; Reset returns to Idle.
//   - Start always discards the previous run: no visited cell, frontier entry
//     or parent link carries over.
//   - Step expands neighbors in grid.Directions order and marks cells visited on
//     discovery, exactly like package bfs, so a run driven to completion visits
//     the same cells and rebuilds a path of the same length.
//
// Pacing
//
//	The engine never owns a timer. Advance(n) performs at most n steps and
//	Steps() yields a Snapshot after every step; an animation loop decides how
//	long to wait between them.
//
// Concurrency
//
//	An Engine is not safe for concurrent use. Drive it from one goroutine.
package stepper
