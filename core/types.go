// Package core: central types and contracts.
//
// This file declares NodeID, Edge, None, the Store capability contract,
// and the sentinel errors shared by every storage backend.
package core

import (
	"errors"
	"iter"
)

// Sentinel errors for storage operations. Both backends (CSR here,
// Dense in package matrix) return these same identities so callers can
// match with errors.Is regardless of the backend in use.
var (
	// ErrIndexOutOfBounds indicates an operation referenced a node index
	// at or beyond the current node count.
	ErrIndexOutOfBounds = errors.New("core: node index out of bounds")

	// ErrEdgesNotSorted indicates bulk-load input was not sorted
	// ascending by (source, target) or contained a duplicate pair.
	ErrEdgesNotSorted = errors.New("core: edges not sorted by (source, target)")

	// ErrNilStore indicates a nil Store was supplied to the Graph facade.
	ErrNilStore = errors.New("core: store is nil")
)

// linearScanMaxDegree is the adjacency size below which edge lookup uses
// a linear scan instead of binary search. Short sorted runs favor the
// scan: lower constant factor, better cache locality.
const linearScanMaxDegree = 32

// NodeID identifies a node by its dense index within a graph.
// IDs are assigned contiguously from zero by AddNode and stay stable
// for the CSR backend; the dense matrix backend keeps them stable too,
// a capacity grow migrates rows without renumbering.
type NodeID uint32

// Edge is an ordered (Source, Target) pair with its weight, the input
// shape of the bulk constructors. Self-loops (Source == Target) are
// valid edges.
type Edge[E any] struct {
	// Source is the node the edge leaves.
	Source NodeID

	// Target is the node the edge enters.
	Target NodeID

	// Weight is the edge payload.
	Weight E
}

// None is the unit weight for graphs that carry no payload on nodes or
// edges. A []None backing array allocates no element storage, so a
// Graph[None, None] stores topology only.
type None struct{}

// Store is the storage capability contract. Algorithms call exactly
// this surface; they never depend on a concrete backend.
//
// Mutation requires exclusive access: implementations hold no internal
// synchronization, and mutating while another goroutine reads is
// undefined. Iterating Neighbors while mutating the same store is
// undefined as well.
type Store[N, E any] interface {
	// AddNode appends a node with the given weight and returns its index.
	AddNode(weight N) NodeID

	// AddEdge inserts the directed edge src→dst. It reports false with a
	// nil error when the edge already exists (duplicate adds are benign
	// no-ops, not failures) and returns ErrIndexOutOfBounds when either
	// endpoint is not a current node.
	AddEdge(src, dst NodeID, weight E) (bool, error)

	// ContainsEdge reports whether the directed edge src→dst exists.
	// Out-of-bounds endpoints report false.
	ContainsEdge(src, dst NodeID) bool

	// EdgeWeight returns the weight of edge src→dst, or the zero weight
	// and false when the edge does not exist.
	EdgeWeight(src, dst NodeID) (E, bool)

	// NodeWeight returns the weight of node v, or the zero weight and
	// false when v is out of bounds.
	NodeWeight(v NodeID) (N, bool)

	// SetNodeWeight replaces the weight of node v.
	// Returns ErrIndexOutOfBounds when v is not a current node.
	SetNodeWeight(v NodeID, weight N) error

	// NodeCount returns the number of nodes.
	NodeCount() int

	// EdgeCount returns the number of directed edges. A self-loop counts
	// once.
	EdgeCount() int

	// OutDegree returns the number of edges leaving v, or 0 when v is
	// out of bounds.
	OutDegree(v NodeID) int

	// Neighbors returns a lazy, finite sequence of (target, weight)
	// pairs for the edges leaving v, in ascending target order. The
	// sequence restarts from the first neighbor on every range over it.
	// An out-of-bounds v yields an empty sequence.
	Neighbors(v NodeID) iter.Seq2[NodeID, E]

	// ClearEdges removes every edge while preserving all nodes and their
	// weights.
	ClearEdges()
}
