// Package bfs provides breadth-first search over a core.Graph,
// returning visit order, hop distances, and parent links.
//
// What:
//
// Run explores nodes level by level from a start node: every node at
// depth d is visited before any node at depth d+1, and within one level
// nodes are visited in the order their parents enqueued them. Edge
// weights are ignored; only the adjacency structure matters, so a graph
// with any edge weight type can be searched.
//
// Hooks:
//
// OnEnqueue and OnDequeue observe queue movement; OnVisit observes the
// visit itself and may abort the whole search by returning an error.
// FilterNeighbor prunes individual edges and MaxDepth bounds the search
// radius in hops. All hooks run on the calling goroutine.
//
// Complexity:
//
//   - Time:  O(V + E), each node enqueued at most once.
//   - Space: O(V) for the queue, seen marks, and result arrays.
//
// Usage:
//
//	res, err := bfs.Run(g, start)
//	if err != nil { ... }
//	for _, v := range res.Order {
//	    fmt.Println(v, "at depth", res.Depth[v])
//	}
//
// A start index at or past the node count is not an error: Run returns
// an empty traversal. Hook errors abort the search and surface wrapped,
// alongside the partial result accumulated so far.
//
// Errors:
//
//	ErrGraphNil        - g is nil.
//	ErrOptionViolation - an option received an invalid value.
package bfs
