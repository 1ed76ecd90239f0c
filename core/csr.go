// Package core: the CSR (Compressed Sparse Row) storage engine, the
// default backend behind the Graph facade.
package core

import (
	"fmt"
	"iter"
	"sort"
)

// CSR stores a directed graph in compressed sparse row form: a row
// offset array, a column array of edge targets sorted ascending within
// each row window, and a weight array parallel to the columns.
//
// Space is O(V + E). Neighbor enumeration walks one contiguous window,
// which is what makes this the preferred backend for sparse graphs.
type CSR[N, E any] struct {
	row     []int    // len == nodeCount+1; row[i] starts node i's window
	col     []NodeID // edge targets, ascending within each window
	weights []E      // parallel to col
	nodes   []N      // node weights, len == nodeCount
}

// compile-time contract check
var _ Store[None, int] = (*CSR[None, int])(nil)

// NewCSR returns an empty CSR store: zero nodes, zero edges, row = [0].
// Complexity: O(1).
func NewCSR[N, E any]() *CSR[N, E] {
	return &CSR[N, E]{row: []int{0}}
}

// NewCSRWithNodes returns a CSR store holding n nodes with zero-valued
// weights and no edges. n must be non-negative.
// Complexity: O(n).
func NewCSRWithNodes[N, E any](n int) *CSR[N, E] {
	return &CSR[N, E]{
		row:   make([]int, n+1),
		nodes: make([]N, n),
	}
}

// CSRFromSortedEdges bulk-builds a CSR store from edges pre-sorted
// ascending by (Source, Target) with no duplicate pairs. This is the
// O(V + E) build path: it skips every per-insertion shift that AddEdge
// pays.
//
// The whole input is validated before any state is built, so a failing
// call allocates nothing and leaves nothing behind. Violations:
//
//   - ErrIndexOutOfBounds when an endpoint is >= nodeCount.
//   - ErrEdgesNotSorted when an edge sorts at or before its predecessor.
//
// Complexity: O(V + E) time and space.
func CSRFromSortedEdges[N, E any](nodeCount int, edges []Edge[E]) (*CSR[N, E], error) {
	// 1) Validate bounds and strict (source, target) ordering up front.
	var e, prev Edge[E]
	var i int
	for i, e = range edges {
		if int(e.Source) >= nodeCount || int(e.Target) >= nodeCount {
			return nil, fmt.Errorf("%w: edge %d is %d→%d with %d nodes", ErrIndexOutOfBounds, i, e.Source, e.Target, nodeCount)
		}
		if i > 0 {
			prev = edges[i-1]
			if e.Source < prev.Source || (e.Source == prev.Source && e.Target <= prev.Target) {
				return nil, fmt.Errorf("%w: edge %d is %d→%d after %d→%d", ErrEdgesNotSorted, i, e.Source, e.Target, prev.Source, prev.Target)
			}
		}
	}

	// 2) Count per-source degrees into row[src+1], then prefix-sum so
	//    row[i] becomes the start offset of node i's window.
	c := &CSR[N, E]{
		row:     make([]int, nodeCount+1),
		col:     make([]NodeID, len(edges)),
		weights: make([]E, len(edges)),
		nodes:   make([]N, nodeCount),
	}
	for _, e = range edges {
		c.row[e.Source+1]++
	}
	for i = 1; i <= nodeCount; i++ {
		c.row[i] += c.row[i-1]
	}

	// 3) Fill columns and weights; sorted input is already in CSR order.
	for i, e = range edges {
		c.col[i] = e.Target
		c.weights[i] = e.Weight
	}

	return c, nil
}

// AddNode appends a node with the given weight and returns its index.
// The new node starts with an empty adjacency window.
// Complexity: O(1) amortized.
func (c *CSR[N, E]) AddNode(weight N) NodeID {
	c.nodes = append(c.nodes, weight)
	c.row = append(c.row, len(c.col))

	return NodeID(len(c.nodes) - 1)
}

// AddEdge inserts the directed edge src→dst at its sorted position
// within src's adjacency window. A duplicate (src, dst) pair reports
// false with a nil error and mutates nothing. Endpoints outside the
// node count fail with ErrIndexOutOfBounds.
//
// Keeping every window contiguous and sorted is what the insertion
// pays for: O(d) or O(log d) position search, then one slot shift of
// the column/weight arrays plus an offset bump for every row after src.
// Complexity: O(d + V + E) worst case per insertion.
func (c *CSR[N, E]) AddEdge(src, dst NodeID, weight E) (bool, error) {
	// 1) Bounds check both endpoints.
	n := c.NodeCount()
	if int(src) >= n || int(dst) >= n {
		return false, fmt.Errorf("%w: edge %d→%d with %d nodes", ErrIndexOutOfBounds, src, dst, n)
	}

	// 2) Locate the insertion offset inside src's window.
	pos, found := c.search(c.row[src], c.row[src+1], dst)
	if found {
		// Duplicate pair: benign no-op, not an error.
		return false, nil
	}

	// 3) Open one slot at pos in col and weights. Both copies move the
	//    tail right by one; this is the single logical commit step, after
	//    which only the offset bump below remains.
	var zero E
	c.col = append(c.col, 0)
	copy(c.col[pos+1:], c.col[pos:])
	c.col[pos] = dst
	c.weights = append(c.weights, zero)
	copy(c.weights[pos+1:], c.weights[pos:])
	c.weights[pos] = weight

	// 4) Every row after src now starts one slot further right.
	for i := int(src) + 1; i < len(c.row); i++ {
		c.row[i]++
	}

	return true, nil
}

// ContainsEdge reports whether the directed edge src→dst exists.
// Complexity: O(d) below the linear-scan threshold, O(log d) above.
func (c *CSR[N, E]) ContainsEdge(src, dst NodeID) bool {
	n := c.NodeCount()
	if int(src) >= n || int(dst) >= n {
		return false
	}
	_, found := c.search(c.row[src], c.row[src+1], dst)

	return found
}

// EdgeWeight returns the weight of edge src→dst, or the zero weight and
// false when the edge does not exist.
// Complexity: O(d) below the linear-scan threshold, O(log d) above.
func (c *CSR[N, E]) EdgeWeight(src, dst NodeID) (E, bool) {
	var zero E
	n := c.NodeCount()
	if int(src) >= n || int(dst) >= n {
		return zero, false
	}
	pos, found := c.search(c.row[src], c.row[src+1], dst)
	if !found {
		return zero, false
	}

	return c.weights[pos], true
}

// NodeWeight returns the weight of node v, or the zero weight and false
// when v is out of bounds.
// Complexity: O(1).
func (c *CSR[N, E]) NodeWeight(v NodeID) (N, bool) {
	if int(v) >= len(c.nodes) {
		var zero N
		return zero, false
	}

	return c.nodes[v], true
}

// SetNodeWeight replaces the weight of node v.
// Complexity: O(1).
func (c *CSR[N, E]) SetNodeWeight(v NodeID, weight N) error {
	if int(v) >= len(c.nodes) {
		return fmt.Errorf("%w: node %d with %d nodes", ErrIndexOutOfBounds, v, len(c.nodes))
	}
	c.nodes[v] = weight

	return nil
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (c *CSR[N, E]) NodeCount() int { return len(c.row) - 1 }

// EdgeCount returns the number of directed edges.
// Complexity: O(1).
func (c *CSR[N, E]) EdgeCount() int { return len(c.col) }

// OutDegree returns the number of edges leaving v, or 0 when v is out
// of bounds.
// Complexity: O(1).
func (c *CSR[N, E]) OutDegree(v NodeID) int {
	if int(v) >= c.NodeCount() {
		return 0
	}

	return c.row[v+1] - c.row[v]
}

// Neighbors returns a lazy sequence over the (target, weight) pairs of
// the edges leaving v, in ascending target order. Each range over the
// sequence restarts at the first neighbor. An out-of-bounds v yields
// nothing. Mutating the store while a range is in progress is
// undefined.
// Complexity: O(1) to obtain, O(d) to walk.
func (c *CSR[N, E]) Neighbors(v NodeID) iter.Seq2[NodeID, E] {
	return func(yield func(NodeID, E) bool) {
		if int(v) >= c.NodeCount() {
			return
		}
		for k := c.row[v]; k < c.row[v+1]; k++ {
			if !yield(c.col[k], c.weights[k]) {
				return
			}
		}
	}
}

// NeighborsSlice returns the contiguous window of edge targets leaving
// v, ascending. The slice is a view into the store's backing array:
// valid until the next mutation, and must not be modified. Out-of-bounds
// v returns nil. This is the CSR-only fast path; portable callers use
// Neighbors.
// Complexity: O(1).
func (c *CSR[N, E]) NeighborsSlice(v NodeID) []NodeID {
	if int(v) >= c.NodeCount() {
		return nil
	}

	return c.col[c.row[v]:c.row[v+1]]
}

// WeightsSlice returns the weight window parallel to NeighborsSlice(v),
// with the same view semantics.
// Complexity: O(1).
func (c *CSR[N, E]) WeightsSlice(v NodeID) []E {
	if int(v) >= c.NodeCount() {
		return nil
	}

	return c.weights[c.row[v]:c.row[v+1]]
}

// ClearEdges removes every edge, zeroing all row offsets and emptying
// the column and weight arrays in place. Nodes and node weights are
// preserved; backing capacity is retained for reuse.
// Complexity: O(V).
func (c *CSR[N, E]) ClearEdges() {
	c.col = c.col[:0]
	c.weights = c.weights[:0]
	for i := range c.row {
		c.row[i] = 0
	}
}

// search locates dst within the sorted window col[lo:hi], returning the
// absolute offset where dst is or would be inserted, and whether it was
// found. Windows shorter than linearScanMaxDegree use a linear scan;
// longer ones binary search.
func (c *CSR[N, E]) search(lo, hi int, dst NodeID) (int, bool) {
	if hi-lo < linearScanMaxDegree {
		for k := lo; k < hi; k++ {
			switch {
			case c.col[k] == dst:
				return k, true
			case c.col[k] > dst:
				return k, false
			}
		}

		return hi, false
	}

	k := lo + sort.Search(hi-lo, func(i int) bool { return c.col[lo+i] >= dst })

	return k, k < hi && c.col[k] == dst
}
