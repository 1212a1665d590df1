package bfs_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/katalvlaran/mazebfs/bfs"
	"github.com/katalvlaran/mazebfs/grid"
)

// BenchmarkShortestPath_Default measures BFS on the built-in 15×15 maze.
func BenchmarkShortestPath_Default(b *testing.B) {
	g := grid.Default()
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, g.Start(), g.End())
	}
}

// BenchmarkShortestPath_OpenRoom runs BFS corner to corner on an M×M room
// with no interior walls (worst case: every cell is dequeued).
func BenchmarkShortestPath_OpenRoom(b *testing.B) {
	const M = 100
	lines := make([]string, M)
	for r := range lines {
		lines[r] = strings.Repeat(".", M)
	}
	lines[0] = "S" + lines[0][1:]
	lines[M-1] = lines[M-1][:M-1] + "E"
	g, err := grid.ParseLayout(lines)
	if err != nil {
		b.Fatalf("setup ParseLayout failed: %v", err)
	}

	b.ReportAllocs()
	b.SetBytes(int64(M * M))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, g.Start(), g.End())
	}
}

// BenchmarkShortestPath_RandomSparse measures BFS on a random 200×200 layout
// with ~70% open cells; the end may be unreachable.
func BenchmarkShortestPath_RandomSparse(b *testing.B) {
	const M = 200
	rnd := rand.New(rand.NewSource(42))
	layout := make([][]grid.CellKind, M)
	for r := range layout {
		layout[r] = make([]grid.CellKind, M)
		for c := range layout[r] {
			if rnd.Intn(10) < 7 {
				layout[r][c] = grid.Open
			}
		}
	}
	layout[0][0] = grid.Start
	layout[M-1][M-1] = grid.End
	g, err := grid.New(layout)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = bfs.ShortestPath(g, g.Start(), g.End())
	}
}
