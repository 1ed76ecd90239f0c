// Package core: the Graph facade fronting any Store backend.
package core

import "iter"

// Graph is the generic front-end over a storage backend. It forwards
// every operation to its Store and adds nothing on top, so algorithms
// written against Graph run unmodified on CSR, the dense matrix, or
// any caller-supplied backend.
//
// N is the node weight type, E the edge weight type. Use None for
// either when no payload is needed.
type Graph[N, E any] struct {
	store Store[N, E]
}

// New returns a Graph backed by an empty CSR store, the default
// backend.
// Complexity: O(1).
func New[N, E any]() *Graph[N, E] {
	return &Graph[N, E]{store: NewCSR[N, E]()}
}

// NewWithNodes returns a CSR-backed Graph pre-populated with n nodes
// carrying zero-valued weights and no edges. n must be non-negative.
// Complexity: O(n).
func NewWithNodes[N, E any](n int) *Graph[N, E] {
	return &Graph[N, E]{store: NewCSRWithNodes[N, E](n)}
}

// NewWithStore returns a Graph fronting the given backend. Panics on a
// nil store; supplying one is a programmer error, not a runtime
// condition.
func NewWithStore[N, E any](s Store[N, E]) *Graph[N, E] {
	if s == nil {
		panic(ErrNilStore.Error())
	}

	return &Graph[N, E]{store: s}
}

// FromSortedEdges bulk-builds a CSR-backed Graph from edges pre-sorted
// ascending by (Source, Target). See CSRFromSortedEdges for the input
// contract; a failing call builds nothing.
// Complexity: O(V + E).
func FromSortedEdges[N, E any](nodeCount int, edges []Edge[E]) (*Graph[N, E], error) {
	c, err := CSRFromSortedEdges[N, E](nodeCount, edges)
	if err != nil {
		return nil, err
	}

	return &Graph[N, E]{store: c}, nil
}

// Store exposes the backend, for callers that need a concrete fast
// path such as (*CSR).NeighborsSlice.
func (g *Graph[N, E]) Store() Store[N, E] { return g.store }

// AddNode appends a node with the given weight and returns its index.
func (g *Graph[N, E]) AddNode(weight N) NodeID { return g.store.AddNode(weight) }

// AddEdge inserts the directed edge src→dst. False with a nil error
// means the edge already existed.
func (g *Graph[N, E]) AddEdge(src, dst NodeID, weight E) (bool, error) {
	return g.store.AddEdge(src, dst, weight)
}

// ContainsEdge reports whether the directed edge src→dst exists.
func (g *Graph[N, E]) ContainsEdge(src, dst NodeID) bool { return g.store.ContainsEdge(src, dst) }

// EdgeWeight returns the weight of edge src→dst, or the zero weight and
// false when the edge does not exist.
func (g *Graph[N, E]) EdgeWeight(src, dst NodeID) (E, bool) { return g.store.EdgeWeight(src, dst) }

// NodeWeight returns the weight of node v, or the zero weight and false
// when v is out of bounds.
func (g *Graph[N, E]) NodeWeight(v NodeID) (N, bool) { return g.store.NodeWeight(v) }

// SetNodeWeight replaces the weight of node v.
func (g *Graph[N, E]) SetNodeWeight(v NodeID, weight N) error {
	return g.store.SetNodeWeight(v, weight)
}

// NodeCount returns the number of nodes.
func (g *Graph[N, E]) NodeCount() int { return g.store.NodeCount() }

// EdgeCount returns the number of directed edges.
func (g *Graph[N, E]) EdgeCount() int { return g.store.EdgeCount() }

// OutDegree returns the number of edges leaving v.
func (g *Graph[N, E]) OutDegree(v NodeID) int { return g.store.OutDegree(v) }

// Neighbors returns the backend's lazy (target, weight) sequence for
// the edges leaving v, ascending by target, restartable per range.
func (g *Graph[N, E]) Neighbors(v NodeID) iter.Seq2[NodeID, E] { return g.store.Neighbors(v) }

// ClearEdges removes every edge while preserving nodes and their
// weights.
func (g *Graph[N, E]) ClearEdges() { g.store.ClearEdges() }
