// Package dfs: the recursive walker.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// dfsWalker encapsulates state during one recursive traversal.
type dfsWalker[N, E any] struct {
	graph *core.Graph[N, E] // underlying graph
	opts  Options           // traversal options
	res   *Result           // result collector
}

// Run performs depth-first search on g, discovering nodes in pre-order.
// If opts include WithFullTraversal it covers all disconnected
// components; otherwise it explores only the tree reachable from start.
// Returns the Result, alongside any error raised by a hook.
//
// A start at or past g.NodeCount() yields an empty traversal and a nil
// error. Recursion depth tracks path depth; prefer RunIterative when
// that depth is unbounded or untrusted.
//
// Complexity: O(V + E) time, O(V) space plus the call stack.
func Run[N, E any](g *core.Graph[N, E], start core.NodeID, opts ...Option) (*Result, error) {
	// 1. Validate input graph.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Apply options.
	dopts := DefaultOptions()
	var fn Option
	for _, fn = range opts {
		fn(&dopts)
	}

	// 3. Initialize the result with every depth at -1 (unreached).
	res := newResult(g.NodeCount())
	w := &dfsWalker[N, E]{graph: g, opts: dopts, res: res}

	// 4. Forest mode: restart from every unvisited node in ascending
	//    index order; the start argument plays no role.
	if dopts.FullTraversal {
		var root core.NodeID
		for root = 0; int(root) < g.NodeCount(); root++ {
			if w.res.Depth[root] >= 0 {
				continue
			}
			w.res.Parent[root] = root
			if err := w.traverse(root, 0); err != nil {
				return res, err
			}
		}

		return res, nil
	}

	// 5. Single-source mode: an out-of-range start explores nothing.
	if int(start) >= g.NodeCount() {
		return res, nil
	}
	w.res.Parent[start] = start

	return res, w.traverse(start, 0)
}

// traverse discovers id at the given depth, then recurses into each
// unvisited neighbor in ascending target order.
func (w *dfsWalker[N, E]) traverse(id core.NodeID, depth int) error {
	// 1. Record discovery: depth and pre-order position.
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)

	// 2. Pre-order hook.
	if w.opts.OnVisit != nil {
		if err := w.opts.OnVisit(id); err != nil {
			return fmt.Errorf("dfs: OnVisit hook for node %d: %w", id, err)
		}
	}

	// 3. Explore each neighbor.
	var nbr core.NodeID
	var err error
	for nbr = range w.graph.Neighbors(id) {
		// Neighbor filtering.
		if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
			w.res.SkippedNeighbors++
			continue
		}

		// Depth limit: never descend past it. A pruned neighbor stays
		// unvisited and may still be reached through a shallower path.
		if w.opts.MaxDepth >= 0 && depth+1 > w.opts.MaxDepth {
			continue
		}

		// Recurse on unvisited.
		if w.res.Depth[nbr] < 0 {
			w.res.Parent[nbr] = id
			if err = w.traverse(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	// 4. Post-order hook.
	if w.opts.OnExit != nil {
		if err = w.opts.OnExit(id); err != nil {
			return fmt.Errorf("dfs: OnExit hook for node %d: %w", id, err)
		}
	}

	return nil
}

// newResult allocates result arrays for n nodes with depths at -1.
func newResult(n int) *Result {
	res := &Result{
		Order:  make([]core.NodeID, 0, n),
		Depth:  make([]int, n),
		Parent: make([]core.NodeID, n),
	}
	var i int
	for i = range res.Depth {
		res.Depth[i] = -1
	}

	return res
}
