// Package dfs implements depth-first search on a core.Graph, with a
// recursive walker and an explicit-stack iterative walker producing
// identical visitation sequences.
//
// What:
//
// Run discovers nodes in pre-order: a node is visited first, then each
// of its unvisited neighbors is explored to full depth in ascending
// target order. RunIterative replaces the call stack with a heap
// allocated frame stack; to preserve the recursive order it pushes each
// node's neighbors in reverse, so they pop lowest-target first. The two
// walkers are interchangeable on any graph, and the iterative one is
// the safe choice when path depth is unbounded or untrusted.
//
// Hooks:
//
// OnVisit fires at discovery (pre-order), OnExit after a node's
// descendants are fully explored (post-order); either may abort the
// walk by returning an error. FilterNeighbor prunes individual edges,
// MaxDepth bounds recursion depth, and WithFullTraversal restarts the
// walk from every still-unvisited node, covering disconnected
// components as a forest.
//
// Complexity:
//
//   - Time:  O(V + E), each node discovered at most once.
//   - Space: O(V) for result arrays plus recursion or frame stack.
//
// Usage:
//
//	res, err := dfs.Run(g, start)
//	if err != nil { ... }
//	fmt.Println(res.Order) // discovery order
//
// A start index at or past the node count is not an error: Run returns
// an empty traversal. Hook errors abort the walk and surface wrapped,
// alongside the partial result accumulated so far.
//
// Errors:
//
//	ErrGraphNil - g is nil.
package dfs
