// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// impl_star.go - the Star(n) generator.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Nodes are the indices 0..n-1; node 0 is the hub.
//   • Emits edges in stable order 0 → i for i=1..n-1 (hub to spokes).
//   • One WeightFn draw per edge, in emission order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n) emission + O(n) bulk assembly.
//   • Space: O(n) for the staged edge list.
//
// Determinism:
//   • Fixed emission order by increasing target index.
//   • Deterministic weights given a fixed Seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// File-local constants (stable method tags for error context).
const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star builds the directed star S_n: the hub node 0 points at every
// spoke 1..n-1, and the spokes have no outgoing edges.
func Star[E any](n int, opts ...Option[E]) (*core.Graph[core.None, E], error) {
	// 1) Validate the parameter domain before any work.
	if n < minStarNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewNodes)
	}

	// 2) Resolve options and the seeded RNG feeding the weight source.
	o, rng := resolve(opts)

	// 3) Emit the hub edges in ascending target order, drawing one
	//    weight per spoke.
	edges := make([]core.Edge[E], 0, n-1)
	var i int
	for i = 1; i < n; i++ {
		edges = append(edges, core.Edge[E]{
			Source: 0,
			Target: core.NodeID(i),
			Weight: o.WeightFn(rng),
		})
	}

	// 4) Assemble through the bulk path; a single source with ascending
	//    targets satisfies the sorted precondition.
	return assemble(methodStar, n, edges)
}
