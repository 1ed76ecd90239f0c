// Package topo: cycle detection walks.
package topo

import (
	"github.com/katalvlaran/gresta/core"
)

// HasCycles reports whether g contains at least one directed cycle,
// using a recursive three-color walk over every component. Detection
// short-circuits on the first back-edge; a self-loop is immediately its
// own back-edge.
//
// The answer agrees with the HasCycles flag of Sort and SortDFS on any
// graph. Recursion depth tracks path depth; prefer HasCyclesIterative
// when that depth is unbounded or untrusted.
//
// Complexity: O(V + E) time, O(V) space plus the call stack.
func HasCycles[N, E any](g *core.Graph[N, E]) (bool, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Launch the walk from each still-White node.
	n := g.NodeCount()
	d := &detector[N, E]{graph: g, color: make([]int, n)}
	var root core.NodeID
	for root = 0; int(root) < n; root++ {
		if d.color[root] == White && d.visit(root) {
			return true, nil
		}
	}

	return false, nil
}

// detector encapsulates state for one cycle-detection walk.
type detector[N, E any] struct {
	graph *core.Graph[N, E]
	color []int
	stack []cframe // iterative variant only
}

// visit reports true as soon as id's subtree contains a back-edge.
func (d *detector[N, E]) visit(id core.NodeID) bool {
	d.color[id] = Gray

	var nbr core.NodeID
	for nbr = range d.graph.Neighbors(id) {
		switch d.color[nbr] {
		case Gray:
			return true
		case White:
			if d.visit(nbr) {
				return true
			}
		}
	}

	d.color[id] = Black

	return false
}

// cframe is one entry of the explicit detection stack. Each node passes
// through twice: entering (leaving=false) colors it Gray and schedules
// its targets, leaving (leaving=true) colors it Black.
type cframe struct {
	id      core.NodeID
	leaving bool
}

// HasCyclesIterative is HasCycles with a heap-allocated frame stack
// instead of recursion, bounding stack use on deep graphs. The answer
// is identical on any graph.
//
// Complexity: O(V + E) time, O(V) space.
func HasCyclesIterative[N, E any](g *core.Graph[N, E]) (bool, error) {
	// 1. Validate graph pointer.
	if g == nil {
		return false, ErrGraphNil
	}

	// 2. Launch the walk from each still-White node.
	n := g.NodeCount()
	d := &detector[N, E]{graph: g, color: make([]int, n)}
	var root core.NodeID
	for root = 0; int(root) < n; root++ {
		if d.color[root] == White && d.visitIterative(root) {
			return true, nil
		}
	}

	return false, nil
}

// visitIterative mirrors visit with paired entering/leaving frames.
func (d *detector[N, E]) visitIterative(root core.NodeID) bool {
	d.stack = append(d.stack[:0], cframe{id: root})

	var (
		f   cframe
		nbr core.NodeID
	)
	for len(d.stack) > 0 {
		// 1. Pop the top frame.
		f = d.stack[len(d.stack)-1]
		d.stack = d.stack[:len(d.stack)-1]

		// 2. Leaving frame: the whole subtree finished cleanly.
		if f.leaving {
			d.color[f.id] = Black
			continue
		}

		// 3. Drop stale entering frames for nodes already explored
		//    through another edge.
		if d.color[f.id] != White {
			continue
		}

		// 4. Enter: color Gray, schedule the matching leaving frame,
		//    then scan targets. A Gray target is a back-edge.
		d.color[f.id] = Gray
		d.stack = append(d.stack, cframe{id: f.id, leaving: true})
		for nbr = range d.graph.Neighbors(f.id) {
			switch d.color[nbr] {
			case Gray:
				return true
			case White:
				d.stack = append(d.stack, cframe{id: nbr})
			}
		}
	}

	return false
}
