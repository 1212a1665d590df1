// Package bfs provides a batch breadth-first search over a grid.Grid,
// returning the shortest start→end path, parent links, and visit order.
//
// What
//
//   - Explore traversable cells in non-decreasing distance (edge count) from Start.
//   - Cells are marked visited when discovered, not when dequeued, so no cell
//     is ever enqueued twice.
//   - The search stops as soon as the target is dequeued.
//   - Returns a Result containing:
//   - Order:      dequeue sequence
//   - Discovered: discovery sequence (the visited set, in order)
//   - Depth:      map from position → distance from start
//   - Parent:     map from position → predecessor in the BFS tree
//   - Path:       start→end path when the target was reached
//   - Supports hooks at three stages:
//   - OnEnqueue (when a cell is discovered)
//   - OnDequeue (immediately before visiting)
//   - OnVisit   (when visiting; may abort with an error)
//   - Honors MaxDepth limit (d>0) or explicit “no limit” (d==0).
//
// Why
//
//   - All edges of a grid maze have unit weight and the frontier is FIFO, so
//     the first time the target is dequeued its depth is the shortest path length.
//
// Determinism
//
//	Neighbors are expanded in grid.Directions order (up, down, left, right).
//	Among several shortest paths the one found first in that order wins,
//	so results are fully reproducible.
//
// Complexity (N = traversable cells)
//
//   - Time:   O(N)   (each cell dequeued once, at most 4 neighbors each)
//   - Memory: O(N)   (queue, Depth map, Parent map)
//
// Usage
//
//	n, err := bfs.ShortestPathLength(g, g.Start(), g.End())
//	if errors.Is(err, bfs.ErrUnreachable) {
//	    // End lies in another region
//	}
//
//	res, err := bfs.ShortestPath(g, g.Start(), g.End(),
//	    bfs.WithContext(ctx),
//	    bfs.WithOnEnqueue(func(p grid.Position, depth int) { /* ... */ }),
//	)
//
// Errors
//
//   - ErrGridNil          if the grid pointer is nil.
//   - ErrStartBlocked     if start is out of bounds or a wall.
//   - ErrEndOutOfBounds   if end is out of bounds.
//   - ErrUnreachable      if the frontier empties before end is dequeued.
//   - ErrOptionViolation  if an invalid Option is supplied.
//   - Wrapped hook errors from OnVisit, or ctx.Err() on cancellation.
package bfs
