// Package bfs provides breadth-first search over a grid.Grid,
// returning shortest-path distances, parent links, and visit order.
package bfs

import (
	"context"
	"fmt"

	"github.com/katalvlaran/mazebfs/grid"
)

// queueItem pairs a position with its BFS depth.
type queueItem struct {
	pos   grid.Position
	depth int
}

// walker encapsulates mutable BFS state.
type walker struct {
	grid  *grid.Grid
	opts  Options
	ctx   context.Context
	end   grid.Position
	queue []queueItem
	res   *Result
}

// ShortestPath runs breadth-first search on g from start until end is
// dequeued, applying any number of functional Options.
// Returns ErrGridNil, ErrStartBlocked or ErrEndOutOfBounds for invalid input,
// ErrOptionViolation for bad options, ErrUnreachable when end cannot be
// reached, ctx.Err() on cancellation, or any user-supplied hook error.
// On ErrUnreachable the returned Result still holds the explored region.
func ShortestPath(g *grid.Grid, start, end grid.Position, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGridNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if !g.IsTraversable(start) {
		return nil, fmt.Errorf("%w: %v", ErrStartBlocked, start)
	}
	if !g.InBounds(end) {
		return nil, fmt.Errorf("%w: %v", ErrEndOutOfBounds, end)
	}

	n := g.Rows() * g.Cols()
	w := &walker{
		grid:  g,
		opts:  o,
		ctx:   o.Ctx,
		end:   end,
		queue: make([]queueItem, 0, n),
		res: &Result{
			Start:      start,
			End:        end,
			Order:      make([]grid.Position, 0, n),
			Discovered: make([]grid.Position, 0, n),
			Depth:      make(map[grid.Position]int, n),
			Parent:     make(map[grid.Position]grid.Position, n),
		},
	}

	// Seed queue with start (no parent)
	w.enqueue(start, 0, nil)
	if err := w.loop(); err != nil {
		return w.res, err
	}
	if !w.res.Found {
		return w.res, ErrUnreachable
	}

	return w.res, nil
}

// ShortestPathLength returns the number of edges on the shortest path from
// start to end. A result of 0 means start == end; an unreachable end is
// reported as ErrUnreachable, never as 0.
func ShortestPathLength(g *grid.Grid, start, end grid.Position) (int, error) {
	res, err := ShortestPath(g, start, end)
	if err != nil {
		return 0, err
	}
	return res.Length(), nil
}

// enqueue marks p visited at depth d, records its parent, calls OnEnqueue,
// and adds it to the queue.
func (w *walker) enqueue(p grid.Position, d int, parent *grid.Position) {
	w.res.Depth[p] = d
	w.res.Discovered = append(w.res.Discovered, p)
	if parent != nil {
		w.res.Parent[p] = *parent
	}
	w.opts.OnEnqueue(p, d)
	w.queue = append(w.queue, queueItem{pos: p, depth: d})
}

// loop processes the queue until the end is dequeued, the queue empties,
// a hook fails, or the context is cancelled.
func (w *walker) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		item := w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		if item.pos == w.end {
			w.res.Found = true
			w.res.Path = Reconstruct(w.res.Parent, item.pos)
			return nil
		}
		w.enqueueNeighbors(item)
	}
	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.pos, item.depth)
	return item
}

// visit records the cell in Order and calls OnVisit.
func (w *walker) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.pos)
	if err := w.opts.OnVisit(item.pos, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %v: %w", item.pos, err)
	}
	return nil
}

// enqueueNeighbors enqueues each traversable, undiscovered neighbor of item
// within MaxDepth, in grid neighbor order.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.grid.Neighbors(item.pos) {
		if !w.grid.IsTraversable(nbr) {
			continue
		}
		if _, seen := w.res.Depth[nbr]; !seen {
			parent := item.pos
			w.enqueue(nbr, nextDepth, &parent)
		}
	}
}
