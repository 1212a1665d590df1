package grid_test

import (
	"reflect"
	"sort"
	"testing"

	"github.com/katalvlaran/mazebfs/grid"
)

// TestRegions_Simple tests Regions on a small maze with two sealed rooms.
//
// Layout:
//
//	#####
//	#S#.#
//	#.#E#
//	#####
//
// Expected: 2 regions of size 2 each, Start and End not connected.
func TestRegions_Simple(t *testing.T) {
	g, err := grid.ParseLayout([]string{
		"#####",
		"#S#.#",
		"#.#E#",
		"#####",
	})
	if err != nil {
		t.Fatalf("ParseLayout failed: %v", err)
	}

	regions := g.Regions()
	if len(regions) != 2 {
		t.Fatalf("got %d regions; want 2", len(regions))
	}
	sizes := []int{len(regions[0]), len(regions[1])}
	sort.Ints(sizes)
	if want := []int{2, 2}; !reflect.DeepEqual(sizes, want) {
		t.Errorf("region sizes = %v; want %v", sizes, want)
	}
	if g.Connected(g.Start(), g.End()) {
		t.Error("Connected(start,end) = true; want false")
	}
}

// TestRegions_Default checks the fixed maze is a single region of 99 cells.
func TestRegions_Default(t *testing.T) {
	g := grid.Default()
	regions := g.Regions()
	if len(regions) != 1 {
		t.Fatalf("got %d regions; want 1", len(regions))
	}
	if n := len(regions[0]); n != 99 {
		t.Errorf("region size = %d; want 99", n)
	}
	if regions[0][0] != g.Start() {
		t.Errorf("first region cell = %v; want start %v", regions[0][0], g.Start())
	}
	if !g.Connected(g.Start(), g.End()) {
		t.Error("Connected(start,end) = false; want true")
	}
}

// TestRegionOf_Wall returns nil for walls and out-of-bounds positions.
func TestRegionOf_Wall(t *testing.T) {
	g := grid.Default()
	if r := g.RegionOf(grid.Pos(0, 0)); r != nil {
		t.Errorf("RegionOf(wall) = %v; want nil", r)
	}
	if r := g.RegionOf(grid.Pos(20, 20)); r != nil {
		t.Errorf("RegionOf(out of bounds) = %v; want nil", r)
	}
	if g.Connected(grid.Pos(0, 0), g.End()) {
		t.Error("Connected(wall,end) = true; want false")
	}
}
