// Package topo: the two ordering algorithms.
package topo

import (
	"github.com/katalvlaran/gresta/core"
)

// Sort computes a topological ordering of g using Kahn's algorithm.
// Nodes with equal standing resolve in ascending index order, so the
// result is deterministic for a given graph.
//
// A cyclic graph is not an error: Result.HasCycles is set and
// Result.Order carries every node that is neither in nor downstream of
// a cycle, in a valid relative order.
//
// Complexity: O(V + E) time, O(V) space.
func Sort[N, E any](g *core.Graph[N, E]) (*Result, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	n := g.NodeCount()
	res := &Result{Order: make([]core.NodeID, 0, n)}

	// 2. Count in-degrees in one pass over all adjacency lists.
	indeg := make([]int, n)
	var u, v core.NodeID
	for u = 0; int(u) < n; u++ {
		for v = range g.Neighbors(u) {
			indeg[v]++
		}
	}

	// 3. Seed the queue with zero in-degree nodes, ascending.
	queue := make([]core.NodeID, 0, n)
	for u = 0; int(u) < n; u++ {
		if indeg[u] == 0 {
			queue = append(queue, u)
		}
	}

	// 4. Resolve FIFO: appending a node to the order releases each of
	//    its targets, and any target dropping to zero in-degree joins
	//    the queue.
	var head int
	for head < len(queue) {
		u = queue[head]
		head++
		res.Order = append(res.Order, u)
		for v = range g.Neighbors(u) {
			indeg[v]--
			if indeg[v] == 0 {
				queue = append(queue, v)
			}
		}
	}

	// 5. Every unresolved node kept a positive in-degree, which only a
	//    cycle can sustain.
	res.HasCycles = len(res.Order) < n

	return res, nil
}

// dfsSorter encapsulates state for one SortDFS walk.
type dfsSorter[N, E any] struct {
	graph *core.Graph[N, E]
	color []int         // three-color state per node
	post  []core.NodeID // finish-order sequence
}

// SortDFS computes a topological ordering of g as the reverse finish
// order of a three-color depth-first walk over every component. It is
// the classic alternative to Sort; the two may produce different but
// equally valid orderings of the same DAG.
//
// On a cyclic graph the walk stops at the first back-edge:
// Result.HasCycles is set and Result.Order carries the nodes that
// finished before detection, in a valid relative order.
//
// Complexity: O(V + E) time, O(V) space plus the call stack.
func SortDFS[N, E any](g *core.Graph[N, E]) (*Result, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return nil, ErrGraphNil
	}

	// 2. Initialize sorter state; every node starts White.
	n := g.NodeCount()
	s := &dfsSorter[N, E]{
		graph: g,
		color: make([]int, n),
		post:  make([]core.NodeID, 0, n),
	}
	res := &Result{}

	// 3. Drive the walk from every still-White node, ascending.
	var root core.NodeID
	for root = 0; int(root) < n; root++ {
		if s.color[root] != White {
			continue
		}
		if !s.visit(root) {
			res.HasCycles = true
			break
		}
	}

	// 4. Reverse the finish order in place to get the topological
	//    order.
	var i, j int
	for i, j = 0, len(s.post)-1; i < j; i, j = i+1, j-1 {
		s.post[i], s.post[j] = s.post[j], s.post[i]
	}
	res.Order = s.post

	return res, nil
}

// visit colors id Gray, explores its targets, and colors it Black on a
// clean finish. It reports false the moment a back-edge shows.
func (s *dfsSorter[N, E]) visit(id core.NodeID) bool {
	s.color[id] = Gray

	var nbr core.NodeID
	for nbr = range s.graph.Neighbors(id) {
		switch s.color[nbr] {
		case Gray:
			// Back-edge: id reaches a node on its own path.
			return false
		case White:
			if !s.visit(nbr) {
				return false
			}
		}
	}

	s.color[id] = Black
	s.post = append(s.post, id)

	return true
}
