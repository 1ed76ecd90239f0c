// Package gresta is an in-memory toolkit for building and exploring
// directed graphs: pluggable adjacency storage underneath, a typed
// facade with the classic algorithms on top.
//
// 🚀 What is gresta?
//
//	A generics-first, single-threaded library that brings together:
//		• Core primitives: dense integer node IDs, typed node & edge weights
//		• Two storage engines: compressed sparse rows (CSR) and a dense matrix
//		• Traversals: BFS and DFS (recursive & iterative) with visit hooks
//		• Shortest paths: Dijkstra over any weight arithmetic
//		• Orderings: Kahn & DFS topological sort, three-color cycle detection
//		• Generators: deterministic path, cycle, star, complete and random shapes
//
// ✨ Why choose gresta?
//
//   - Beginner-friendly: a minimal API with clear, intuitive naming
//   - Predictable costs: Complexity lines on every operation that matters
//   - Pure Go: no cgo, storage hidden behind one small Store contract
//   - Extensible: custom weight arithmetics, custom visit hooks (OnVisit, OnEnqueue…)
//
// Under the hood, everything is organized under focused subpackages:
//
//	core/       NodeID, Edge & the Store contract, the CSR engine, the Graph facade
//	matrix/     dense adjacency backend for near-complete graphs
//	dijkstra/   shortest paths over the weight capability contract
//	bfs/        level-order traversal
//	dfs/        depth-first traversal, recursive & iterative
//	topo/       topological sort (Kahn & DFS) plus cycle detection
//	builder/    deterministic shape generators
//	cmd/gresta/ the demo CLI
//	examples/   runnable scenario demos
//
// Quick ASCII example:
//
//	    0───→1
//	    │    │
//	    ↓    ↓
//	    2───→3
//
//	a four-node diamond: two routes from 0 to 3, and one stable
//	topological order once ties break toward the lowest index.
//
// Dive into each package's doc.go for contracts, edge cases and worked
// examples.
//
//	go get github.com/katalvlaran/gresta
package gresta
