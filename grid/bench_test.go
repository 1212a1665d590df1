package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/mazebfs/grid"
)

// BenchmarkRegions measures Regions on a 500×500 random layout
// with roughly 60% open cells.
// Complexity: O(R×C)
func BenchmarkRegions(b *testing.B) {
	const n = 500
	rng := rand.New(rand.NewSource(42))
	layout := make([][]grid.CellKind, n)
	for r := range layout {
		layout[r] = make([]grid.CellKind, n)
		for c := range layout[r] {
			if rng.Intn(10) < 6 {
				layout[r][c] = grid.Open
			}
		}
	}
	layout[0][0] = grid.Start
	layout[n-1][n-1] = grid.End
	g, err := grid.New(layout)
	if err != nil {
		b.Fatalf("setup New failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.Regions()
	}
}

// BenchmarkNeighbors measures the per-call cost of Neighbors on the default maze.
func BenchmarkNeighbors(b *testing.B) {
	g := grid.Default()
	p := grid.Pos(7, 7)
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		_ = g.Neighbors(p)
	}
}
