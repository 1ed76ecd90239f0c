// Package topo provides topological ordering and cycle detection for a
// directed core.Graph.
//
// What:
//
// Sort runs Kahn's algorithm: in-degrees are counted in one pass, every
// zero in-degree node seeds a FIFO queue, and resolving a node releases
// its targets. SortDFS derives the same kind of ordering from a
// three-color depth-first walk in reverse finish order. HasCycles and
// HasCyclesIterative answer only the cycle question, short-circuiting
// on the first back-edge.
//
// Cycles are not errors:
//
// A cyclic graph is a legitimate input. Both sorts return a Result
// whose HasCycles flag is set and whose Order is a partial ordering of
// the nodes that could still be resolved: for Sort, every node not in
// or downstream of a cycle; for SortDFS, every node that finished
// before the first back-edge was seen. In both cases the returned
// sequence is a valid topological order of its own members. Callers
// must check the flag, though comparing len(Order) against the node
// count is equally valid.
//
// Three colors:
//
// Each node moves White → Gray → Black, monotonically. Gray marks the
// current path; meeting a Gray node again is the one and only cycle
// signal, which makes a self-loop an immediate cycle. The iterative
// detector replaces recursion with a stack of paired entering/leaving
// frames so path depth never burdens the call stack; prefer it when
// depth is unbounded or untrusted.
//
// Complexity:
//
//   - Time:  O(V + E) for every function, cycle short-circuits earlier.
//   - Space: O(V).
//
// Usage:
//
//	res, err := topo.Sort(g)
//	if err != nil { ... }
//	if res.HasCycles {
//	    // res.Order is the resolvable part only
//	}
//
// Errors:
//
//	ErrGraphNil - g is nil.
package topo
