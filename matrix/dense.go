// SPDX-License-Identifier: MIT
// Package matrix: the Dense adjacency-matrix store.
package matrix

import (
	"fmt"
	"iter"

	"github.com/katalvlaran/gresta/core"
)

// Dense stores a directed graph as a row-major square matrix of
// optional weight slots. present marks occupancy, weights carries the
// payload at the same flat index, and both arrays span capacity² slots
// with only the leading n rows and columns in use.
//
// Node indices stay stable across growth: a reallocation migrates each
// row into the wider stride without renumbering anything.
type Dense[N, E any] struct {
	capacity  int    // row stride; present/weights hold capacity² slots
	n         int    // node count, n <= capacity
	edgeCount int    // occupied slots
	present   []bool // slot occupancy, row-major
	weights   []E    // slot payload, parallel to present
	nodes     []N    // node weights, len == n
}

// compile-time contract check
var _ core.Store[core.None, int] = (*Dense[core.None, int])(nil)

// New returns an empty Dense store. WithCapacity pre-sizes it; without
// options the first AddNode triggers the initial allocation.
// Complexity: O(Capacity²) when pre-sized, O(1) otherwise.
func New[N, E any](opts ...Option) *Dense[N, E] {
	// 1) Fold options over the defaults.
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}

	// 2) Allocate the requested slot matrix, if any.
	m := &Dense[N, E]{}
	if o.Capacity > 0 {
		m.capacity = o.Capacity
		m.present = make([]bool, o.Capacity*o.Capacity)
		m.weights = make([]E, o.Capacity*o.Capacity)
	}

	return m
}

// NewWithNodes returns a Dense store holding n nodes with zero-valued
// weights and no edges. n must be non-negative. Capacity is raised to
// at least n so the fill never triggers a grow.
// Complexity: O(max(n, Capacity)²).
func NewWithNodes[N, E any](n int, opts ...Option) *Dense[N, E] {
	o := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&o)
	}
	if o.Capacity < n {
		o.Capacity = n
	}

	m := &Dense[N, E]{}
	if o.Capacity > 0 {
		m.capacity = o.Capacity
		m.present = make([]bool, o.Capacity*o.Capacity)
		m.weights = make([]E, o.Capacity*o.Capacity)
	}
	m.n = n
	m.nodes = make([]N, n)

	return m
}

// AddNode appends a node with the given weight and returns its index.
// Hitting capacity doubles the matrix: an O(new_capacity²) reallocation
// that migrates every existing row into the wider stride.
// Complexity: O(1) amortized over a doubling schedule, O(capacity²)
// worst case.
func (m *Dense[N, E]) AddNode(weight N) core.NodeID {
	if m.n == m.capacity {
		next := m.capacity * 2
		if next < growFloor {
			next = growFloor
		}
		m.grow(next)
	}
	m.nodes = append(m.nodes, weight)
	m.n++

	return core.NodeID(m.n - 1)
}

// AddEdge occupies slot (src·capacity + dst). A duplicate pair reports
// false with a nil error; endpoints at or past the node count fail with
// core.ErrIndexOutOfBounds.
// Complexity: O(1).
func (m *Dense[N, E]) AddEdge(src, dst core.NodeID, weight E) (bool, error) {
	if int(src) >= m.n || int(dst) >= m.n {
		return false, fmt.Errorf("%w: edge %d→%d with %d nodes", core.ErrIndexOutOfBounds, src, dst, m.n)
	}
	k := m.slot(src, dst)
	if m.present[k] {
		return false, nil
	}
	m.present[k] = true
	m.weights[k] = weight
	m.edgeCount++

	return true, nil
}

// ContainsEdge reports whether slot (src, dst) is occupied.
// Complexity: O(1).
func (m *Dense[N, E]) ContainsEdge(src, dst core.NodeID) bool {
	if int(src) >= m.n || int(dst) >= m.n {
		return false
	}

	return m.present[m.slot(src, dst)]
}

// EdgeWeight returns the weight at slot (src, dst), or the zero weight
// and false when the slot is empty or out of bounds.
// Complexity: O(1).
func (m *Dense[N, E]) EdgeWeight(src, dst core.NodeID) (E, bool) {
	if int(src) >= m.n || int(dst) >= m.n {
		var zero E
		return zero, false
	}
	k := m.slot(src, dst)
	if !m.present[k] {
		var zero E
		return zero, false
	}

	return m.weights[k], true
}

// NodeWeight returns the weight of node v, or the zero weight and false
// when v is out of bounds.
// Complexity: O(1).
func (m *Dense[N, E]) NodeWeight(v core.NodeID) (N, bool) {
	if int(v) >= m.n {
		var zero N
		return zero, false
	}

	return m.nodes[v], true
}

// SetNodeWeight replaces the weight of node v.
// Complexity: O(1).
func (m *Dense[N, E]) SetNodeWeight(v core.NodeID, weight N) error {
	if int(v) >= m.n {
		return fmt.Errorf("%w: node %d with %d nodes", core.ErrIndexOutOfBounds, v, m.n)
	}
	m.nodes[v] = weight

	return nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (m *Dense[N, E]) NodeCount() int { return m.n }

// EdgeCount returns the number of occupied slots.
// Complexity: O(1).
func (m *Dense[N, E]) EdgeCount() int { return m.edgeCount }

// OutDegree counts the occupied slots in row v. Dense has no contiguous
// adjacency, so this is a scan, not an offset subtraction.
// Complexity: O(V).
func (m *Dense[N, E]) OutDegree(v core.NodeID) int {
	if int(v) >= m.n {
		return 0
	}
	deg := 0
	base := int(v) * m.capacity
	for j := 0; j < m.n; j++ {
		if m.present[base+j] {
			deg++
		}
	}

	return deg
}

// Neighbors returns a lazy sequence over row v: every occupied slot in
// ascending target order. Each range restarts the row scan. An
// out-of-bounds v yields nothing.
// Complexity: O(V) per full walk.
func (m *Dense[N, E]) Neighbors(v core.NodeID) iter.Seq2[core.NodeID, E] {
	return func(yield func(core.NodeID, E) bool) {
		if int(v) >= m.n {
			return
		}
		base := int(v) * m.capacity
		for j := 0; j < m.n; j++ {
			if !m.present[base+j] {
				continue
			}
			if !yield(core.NodeID(j), m.weights[base+j]) {
				return
			}
		}
	}
}

// NeighborsSlice materializes the targets of row v in ascending order.
// Unlike the CSR window view this allocates a fresh slice per call, the
// price of having no contiguous adjacency. Out-of-bounds v returns nil.
// Complexity: O(V).
func (m *Dense[N, E]) NeighborsSlice(v core.NodeID) []core.NodeID {
	if int(v) >= m.n {
		return nil
	}
	ids := make([]core.NodeID, 0, m.OutDegree(v))
	base := int(v) * m.capacity
	for j := 0; j < m.n; j++ {
		if m.present[base+j] {
			ids = append(ids, core.NodeID(j))
		}
	}

	return ids
}

// WeightsSlice materializes the weights of row v, parallel to
// NeighborsSlice(v), allocating per call.
// Complexity: O(V).
func (m *Dense[N, E]) WeightsSlice(v core.NodeID) []E {
	if int(v) >= m.n {
		return nil
	}
	ws := make([]E, 0, m.OutDegree(v))
	base := int(v) * m.capacity
	for j := 0; j < m.n; j++ {
		if m.present[base+j] {
			ws = append(ws, m.weights[base+j])
		}
	}

	return ws
}

// ClearEdges empties every slot while preserving nodes, their weights,
// and the allocated capacity.
// Complexity: O(capacity²).
func (m *Dense[N, E]) ClearEdges() {
	clear(m.present)
	clear(m.weights)
	m.edgeCount = 0
}

// slot maps (src, dst) to its flat row-major index.
func (m *Dense[N, E]) slot(src, dst core.NodeID) int {
	return int(src)*m.capacity + int(dst)
}

// grow reallocates the slot matrix at the wider stride and migrates
// every existing row in place. Occupied slots keep their (row, col)
// coordinates; only the flat indices change.
// Complexity: O(newCap²).
func (m *Dense[N, E]) grow(newCap int) {
	present := make([]bool, newCap*newCap)
	weights := make([]E, newCap*newCap)
	for i := 0; i < m.n; i++ {
		copy(present[i*newCap:i*newCap+m.n], m.present[i*m.capacity:i*m.capacity+m.n])
		copy(weights[i*newCap:i*newCap+m.n], m.weights[i*m.capacity:i*m.capacity+m.n])
	}
	m.present = present
	m.weights = weights
	m.capacity = newCap
}
