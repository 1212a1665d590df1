// Package mazebfs is an interactive maze explorer that visualizes
// breadth-first search on a grid.
//
// A player walks a fixed maze from Start to End while a BFS engine can be
// started, stepped or animated over the same grid. The player's step count is
// rated against baselines derived from the BFS shortest path.
//
// The module is organized as small packages, bottom-up:
//
//	grid/     — cell kinds, positions, directions, layout parsing, regions
//	bfs/      — batch shortest path with parent-map reconstruction and hooks
//	stepper/  — resumable BFS engine (Idle → Running → Found | Exhausted)
//	player/   — position, history, undo and completion latch
//	scoring/  — Best/Average/Worst baselines and efficiency ratings
//	session/  — Explorer facade composing the above, with change callbacks
//	config/   — environment and .env settings
//	tui/      — tcell front end: keys, rendering, animation pacing
//	cmd/mazebfs — the executable
//
// Quick start:
//
//	g := grid.Default()
//	n, _ := bfs.ShortestPathLength(g, g.Start(), g.End()) // 24
//	x, _ := session.New(g)
//	x.Move(grid.Right)
//	for snap := range x.ShowAllPaths() {
//		_ = snap.BFS.Frontier
//	}
package mazebfs
