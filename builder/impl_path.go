// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// impl_path.go - the Path(n) generator.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Nodes are the indices 0..n-1.
//   • Emits edges in stable order (i-1) → i for i=1..n-1.
//   • One WeightFn draw per edge, in emission order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) emission + O(n) bulk assembly.
//   • Space: O(n) for the staged edge list.
//
// Determinism:
//   • Fixed emission order by increasing source index.
//   • Deterministic weights given a fixed Seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// File-local constants (stable method tags for error context).
const (
	methodPath   = "Path"
	minPathNodes = 2
)

// Path builds the directed path P_n: node i-1 points at node i for
// every i in 1..n-1, so node 0 is the sole source and node n-1 the
// sole sink.
func Path[E any](n int, opts ...Option[E]) (*core.Graph[core.None, E], error) {
	// 1) Validate the parameter domain before any work.
	if n < minPathNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodPath, n, minPathNodes, ErrTooFewNodes)
	}

	// 2) Resolve options and the seeded RNG feeding the weight source.
	o, rng := resolve(opts)

	// 3) Emit the chain edges in ascending source order, drawing one
	//    weight per edge.
	edges := make([]core.Edge[E], 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		edges = append(edges, core.Edge[E]{
			Source: core.NodeID(i - 1),
			Target: core.NodeID(i),
			Weight: o.WeightFn(rng),
		})
	}

	// 4) Assemble through the bulk path; the emission order satisfies
	//    the sorted precondition.
	return assemble(methodPath, n, edges)
}
