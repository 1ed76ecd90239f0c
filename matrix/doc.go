// SPDX-License-Identifier: MIT

// Package matrix provides the dense adjacency-matrix storage backend
// for gresta graphs.
//
// What:
//
// Dense implements the core.Store contract with a square occupancy
// matrix of capacity² optional weight slots. Edge existence and weight
// live at slot (source·capacity + target).
//
// Why:
//
// The two backends trade the same contract for opposite complexity
// profiles. CSR pays per-insertion shifts to keep adjacency contiguous;
// Dense pays memory:
//
//   - AddEdge / ContainsEdge / EdgeWeight: O(1) direct index.
//   - AddNode: O(1) until capacity is hit, then an O(new_capacity²)
//     reallocation with per-row migration.
//   - Neighbors / OutDegree: O(V) row scans, no contiguous windows.
//   - Space: O(capacity²) regardless of edge count.
//
// Pick Dense for dense graphs mutated edge-heavily; pick CSR (the
// default) for sparse graphs read neighbor-heavily.
//
// Usage:
//
//	g := core.NewWithStore[core.None, int](matrix.New[core.None, int](
//	    matrix.WithCapacity(64),
//	))
//
// Algorithms run unmodified on either backend; they only see the
// contract.
//
// Errors:
//
// Dense returns the shared contract sentinels from package core
// (core.ErrIndexOutOfBounds) so callers match one identity regardless
// of backend. Option constructors panic on nonsensical configuration
// (ErrBadCapacity); panics are reserved for programmer errors.
package matrix
