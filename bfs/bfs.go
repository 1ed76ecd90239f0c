// Package bfs: the breadth-first walker.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// queueItem pairs a node with its BFS depth.
type queueItem struct {
	id    core.NodeID
	depth int
}

// walker encapsulates mutable BFS state for one Run.
type walker[N, E any] struct {
	graph *core.Graph[N, E]
	opts  Options
	queue []queueItem
	seen  []bool
	res   *Result
}

// Run performs breadth-first search on g starting from start, applying
// any number of functional Options. Nodes are visited in level order:
// all nodes at depth d before any node at depth d+1.
//
// Returns ErrGraphNil for a nil graph, ErrOptionViolation for bad
// options, or any OnVisit hook error (wrapped, alongside the partial
// result). A start at or past g.NodeCount() yields an empty traversal
// and a nil error.
//
// Complexity: O(V + E) time, O(V) space.
func Run[N, E any](g *core.Graph[N, E], start core.NodeID, opts ...Option) (*Result, error) {
	// 1) Validate the graph before touching options.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2) Build options and catch any invalid ones immediately.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	// 3) Allocate result arrays, one slot per node, depths at -1.
	n := g.NodeCount()
	res := &Result{
		Order:  make([]core.NodeID, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.NodeID, n),
	}
	var i int
	for i = range res.Depth {
		res.Depth[i] = -1
	}

	// 4) An out-of-range start has nothing to explore; the empty
	//    traversal is already correct.
	if int(start) >= n {
		return res, nil
	}

	// 5) Prepare the walker and seed the queue with the start, which
	//    acts as its own parent.
	w := &walker[N, E]{
		graph: g,
		opts:  o,
		queue: make([]queueItem, 0, n),
		seen:  make([]bool, n),
		res:   res,
	}
	w.enqueue(start, 0, start)

	// 6) Main loop.
	return w.res, w.loop()
}

// enqueue marks id seen at depth d, records its parent, calls
// OnEnqueue, and adds it to the queue.
func (w *walker[N, E]) enqueue(id core.NodeID, d int, parent core.NodeID) {
	w.seen[id] = true
	w.res.Depth[id] = d
	w.res.Parent[id] = parent
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, queueItem{id: id, depth: d})
}

// loop processes the queue until it drains or a hook aborts.
func (w *walker[N, E]) loop() error {
	var item queueItem
	for len(w.queue) > 0 {
		item = w.dequeue()
		if err := w.visit(item); err != nil {
			return err
		}
		w.enqueueNeighbors(item)
	}

	return nil
}

// dequeue pops the first item, invokes OnDequeue, and returns it.
func (w *walker[N, E]) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.opts.OnDequeue(item.id, item.depth)

	return item
}

// visit records the node in Order and calls OnVisit.
func (w *walker[N, E]) visit(item queueItem) error {
	w.res.Order = append(w.res.Order, item.id)
	if err := w.opts.OnVisit(item.id, item.depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at node %d: %w", item.id, err)
	}

	return nil
}

// enqueueNeighbors applies filtering and MaxDepth, then enqueues each
// unseen neighbor of item in ascending target order.
func (w *walker[N, E]) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	var nbr core.NodeID
	for nbr = range w.graph.Neighbors(item.id) {
		if !w.opts.FilterNeighbor(item.id, nbr) {
			continue
		}
		if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
			continue
		}

		// first time seen?
		if !w.seen[nbr] {
			w.enqueue(nbr, nextDepth, item.id)
		}
	}
}
