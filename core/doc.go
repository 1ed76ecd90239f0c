// Package core defines the storage contract, the CSR storage engine,
// and the generic Graph facade for directed graphs.
//
// What:
//
// core is the foundation of gresta. It declares the two capability
// contracts every other package builds on:
//
//   - Store: the minimal operation set a storage backend must provide
//     (node/edge insertion, lookup, counts, weight access, neighbor
//     enumeration).
//   - Arith: the minimal operation set an edge-weight type must provide
//     for shortest-path computation (zero, addition, total order).
//
// It also ships the primary backend, CSR (Compressed Sparse Row), and
// the Graph facade that fronts any Store implementation.
//
// Why:
//
// Algorithms (dijkstra, bfs, dfs, topo) are written strictly against
// Store and never inspect backend internals. Backends in turn know
// nothing about algorithms. Swapping CSR for the dense matrix backend
// (package matrix) changes complexity profiles, never semantics.
//
// CSR layout:
//
//	row:     nodeCount+1 offsets; row[i] marks where node i's adjacency
//	         begins in col; row[nodeCount] == len(col) == EdgeCount.
//	col:     edge targets, sorted ascending within each row window.
//	weights: edge weights, index-parallel to col.
//
// Complexity (CSR):
//
//   - AddNode:      O(1) amortized
//   - AddEdge:      O(d) or O(log d) search + O(V + E) slot shift
//   - ContainsEdge: O(d) below the linear-scan threshold, O(log d) above
//   - Neighbors:    O(1) to obtain the window, O(d) to walk it
//   - OutDegree:    O(1)
//
// Weights of zero size (such as None) occupy no backing storage: a Go
// slice of zero-sized elements does not allocate element memory, so a
// weightless graph pays nothing per edge or node.
//
// Usage:
//
//	g := core.New[core.None, int]()
//	a := g.AddNode(core.None{})
//	b := g.AddNode(core.None{})
//	added, err := g.AddEdge(a, b, 7)
//	for nb, w := range g.Neighbors(a) {
//	    fmt.Println(nb, w)
//	}
//
// Errors:
//
//	ErrIndexOutOfBounds - a node index is >= the node count.
//	ErrEdgesNotSorted   - bulk input violates (source, target) ordering.
//	ErrNilStore         - a nil Store was supplied to the facade.
package core
