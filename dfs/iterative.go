// Package dfs: the explicit-stack walker.
package dfs

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// frame is one entry of the explicit traversal stack. A node passes
// through twice: once entering (leaving=false) to be discovered, once
// leaving (leaving=true) to fire its post-order hook.
type frame struct {
	id      core.NodeID
	depth   int
	parent  core.NodeID
	leaving bool
}

// iterWalker encapsulates state during one explicit-stack traversal.
type iterWalker[N, E any] struct {
	graph   *core.Graph[N, E]
	opts    Options
	res     *Result
	stack   []frame
	scratch []core.NodeID // neighbor staging, reused across pops
}

// RunIterative performs the same traversal as Run with a heap-allocated
// frame stack instead of recursion, bounding stack use on deep graphs.
// For any graph, start, and options it produces the same Order, Depth,
// Parent, and hook sequences as Run; callers may rely on the two being
// interchangeable.
//
// Complexity: O(V + E) time, O(V) space.
func RunIterative[N, E any](g *core.Graph[N, E], start core.NodeID, opts ...Option) (*Result, error) {
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
	w := &iterWalker[N, E]{graph: g, opts: dopts, res: res}

	// 4. Forest mode mirrors the recursive walker's root loop.
	if dopts.FullTraversal {
		var root core.NodeID
		for root = 0; int(root) < g.NodeCount(); root++ {
			if w.res.Depth[root] >= 0 {
				continue
			}
			if err := w.traverse(root); err != nil {
				return res, err
			}
		}

		return res, nil
	}

	// 5. Single-source mode: an out-of-range start explores nothing.
	if int(start) >= g.NodeCount() {
		return res, nil
	}

	return res, w.traverse(start)
}

// traverse drains the stack for the tree rooted at root.
func (w *iterWalker[N, E]) traverse(root core.NodeID) error {
	// 1. Seed with the root's entering frame; roots are their own
	//    parent.
	w.stack = append(w.stack[:0], frame{id: root, parent: root})

	var (
		f   frame
		nbr core.NodeID
		k   int
	)
	for len(w.stack) > 0 {
		// 2. Pop the top frame.
		f = w.stack[len(w.stack)-1]
		w.stack = w.stack[:len(w.stack)-1]

		// 3. Leaving frame: descendants are done, fire the post-order
		//    hook.
		if f.leaving {
			if w.opts.OnExit != nil {
				if err := w.opts.OnExit(f.id); err != nil {
					return fmt.Errorf("dfs: OnExit hook for node %d: %w", f.id, err)
				}
			}
			continue
		}

		// 4. Drop stale frames: the node was discovered through a more
		//    recent edge while this frame waited in the stack.
		if w.res.Depth[f.id] >= 0 {
			continue
		}

		// 5. Discover: depth, parent, pre-order position, hook.
		w.res.Depth[f.id] = f.depth
		w.res.Parent[f.id] = f.parent
		w.res.Order = append(w.res.Order, f.id)
		if w.opts.OnVisit != nil {
			if err := w.opts.OnVisit(f.id); err != nil {
				return fmt.Errorf("dfs: OnVisit hook for node %d: %w", f.id, err)
			}
		}

		// 6. Schedule the leaving frame beneath the children so it pops
		//    after the whole subtree finishes.
		w.stack = append(w.stack, frame{id: f.id, depth: f.depth, leaving: true})

		// 7. Stage eligible neighbors in ascending order, then push
		//    them reversed: the stack pops lowest target first, which
		//    is exactly the recursive descent order.
		w.scratch = w.scratch[:0]
		for nbr = range w.graph.Neighbors(f.id) {
			if w.opts.FilterNeighbor != nil && !w.opts.FilterNeighbor(nbr) {
				w.res.SkippedNeighbors++
				continue
			}
			if w.opts.MaxDepth >= 0 && f.depth+1 > w.opts.MaxDepth {
				continue
			}
			if w.res.Depth[nbr] < 0 {
				w.scratch = append(w.scratch, nbr)
			}
		}
		for k = len(w.scratch) - 1; k >= 0; k-- {
			w.stack = append(w.stack, frame{id: w.scratch[k], depth: f.depth + 1, parent: f.id})
		}
	}

	return nil
}
