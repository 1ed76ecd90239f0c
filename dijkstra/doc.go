// Package dijkstra implements Dijkstra's shortest-path algorithm over
// any gresta storage backend and any weight type satisfying the
// core.Arith contract.
//
// What:
//
// Run computes minimum-cost paths from one start node to every
// reachable node, processing nodes in order of increasing tentative
// distance with a min-heap priority queue and relaxing outgoing edges.
// The weight type is opaque to the algorithm: distances begin at
// arith.Zero(), extend by arith.Add(prefix, edge), and order by
// arith.Compare. Built-in numerics go through RunNumeric; composite
// cost types (non-additive terrain classes, saturating budgets)
// implement core.Arith themselves.
//
// Why lazy decrease-key:
//
// Instead of reprioritizing heap entries in place, every improvement
// pushes a fresh entry and stale ones are skipped when popped. Fewer
// moving parts, same asymptotics for sparse graphs.
//
// Relaxation is strict: a candidate equal to the current best never
// re-relaxes, so the first-found path wins among equal-cost paths and
// the visit order stays deterministic.
//
// Determinism:
//
// For a given graph, start, and arithmetic, distances, predecessors,
// and reported paths are fully deterministic. Ties between equal
// tentative distances pop in heap order, which is stable for identical
// inputs.
//
// Complexity:
//
//   - Time:  O((V + E) log V)
//   - Space: O(V) result arrays + O(E) worst-case heap entries
//
// Usage:
//
//	res, err := dijkstra.RunNumeric(g, home)
//	if err != nil { ... }
//	if d, ok := res.DistanceTo(work); ok {
//	    fmt.Println("cost", d, "via", res.PathTo(work))
//	}
//
// A start index at or past the node count is not an error: Run returns
// a result in which every node reports unreachable. Out-of-range
// queries against a Result likewise answer "no" rather than failing.
//
// Errors:
//
//	ErrNilGraph - g is nil.
//	ErrNilArith - arith is nil.
package dijkstra
