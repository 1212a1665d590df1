package grid

import (
	"container/list"
	"errors"
)

// ErrNoBreach indicates a or b is out of bounds, so no wall set can join them.
var ErrNoBreach = errors.New("grid: no breach possible between positions")

// Breach finds the fewest walls to knock down so that b becomes reachable
// from a. It returns the connecting route (a and b included, walls along it
// counted in cost) and the number of walls on it. Connected positions yield
// cost 0 and an open route, not necessarily the shortest one.
//
// Behavior:
//  1. 0-1 BFS from a: entering a traversable cell costs 0, a wall costs 1.
//  2. Zero-cost moves go to the deque front, wall moves to the back.
//  3. Stop when b is popped; rebuild the route from predecessors.
//
// Time:   O(R·C).
// Memory: O(R·C) for distances and predecessors.
func (g *Grid) Breach(a, b Position) (route []Position, cost int, err error) {
	if !g.InBounds(a) || !g.InBounds(b) {
		return nil, 0, ErrNoBreach
	}

	n := g.rows * g.cols
	const inf = int(^uint(0) >> 1)
	dist := make([]int, n)
	prev := make([]int, n)
	for i := range dist {
		dist[i] = inf
		prev[i] = -1
	}

	src, dst := g.index(a), g.index(b)
	dist[src] = 0
	dq := list.New()
	dq.PushFront(src)

	for dq.Len() > 0 {
		e := dq.Front()
		dq.Remove(e)
		ui := e.Value.(int)
		if ui == dst {
			break
		}
		for _, v := range g.Neighbors(g.position(ui)) {
			vi := g.index(v)
			step := 0
			if !g.IsTraversable(v) {
				step = 1
			}
			nd := dist[ui] + step
			if nd >= dist[vi] {
				continue
			}
			dist[vi] = nd
			prev[vi] = ui
			if step == 0 {
				dq.PushFront(vi)
			} else {
				dq.PushBack(vi)
			}
		}
	}

	for at := dst; at >= 0; at = prev[at] {
		route = append(route, g.position(at))
	}
	for i, j := 0, len(route)-1; i < j; i, j = i+1, j-1 {
		route[i], route[j] = route[j], route[i]
	}
	return route, dist[dst], nil
}
