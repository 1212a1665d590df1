package grid

// Regions finds all 4-connected regions of traversable cells.
// Each region is a slice of positions in discovery order; regions are
// ordered by their first cell in row-major scan order.
//
// Time:   O(R·C).
// Memory: O(R·C) for seen flags and output.
func (g *Grid) Regions() [][]Position {
	seen := make([]bool, g.rows*g.cols)
	var regions [][]Position

	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			p0 := Pos(r, c)
			if !g.cells[r][c].Traversable() || seen[g.index(p0)] {
				continue
			}
			regions = append(regions, g.flood(p0, seen))
		}
	}
	return regions
}

// RegionOf returns the region containing p, or nil when p is a wall or out of bounds.
func (g *Grid) RegionOf(p Position) []Position {
	if !g.IsTraversable(p) {
		return nil
	}
	return g.flood(p, make([]bool, g.rows*g.cols))
}

// Connected reports whether a and b lie in the same traversable region.
func (g *Grid) Connected(a, b Position) bool {
	if !g.IsTraversable(a) || !g.IsTraversable(b) {
		return false
	}
	for _, p := range g.RegionOf(a) {
		if p == b {
			return true
		}
	}
	return false
}

// flood collects the region around p0 and marks it in seen.
func (g *Grid) flood(p0 Position, seen []bool) []Position {
	seen[g.index(p0)] = true
	queue := []int{g.index(p0)}
	var region []Position

	for qi := 0; qi < len(queue); qi++ {
		u := g.position(queue[qi])
		region = append(region, u)
		for _, v := range g.Neighbors(u) {
			if !g.IsTraversable(v) {
				continue
			}
			vi := g.index(v)
			if !seen[vi] {
				seen[vi] = true
				queue = append(queue, vi)
			}
		}
	}
	return region
}
