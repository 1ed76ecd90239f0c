// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// impl_cycle.go - the Cycle(n) generator.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewNodes).
//   • Nodes are the indices 0..n-1.
//   • Emits edges in stable order i → (i+1) mod n for i=0..n-1, so the
//     closing edge (n-1) → 0 is emitted last.
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
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle builds the directed ring C_n: node i points at node (i+1) mod
// n, so every node has exactly one incoming and one outgoing edge and
// the whole graph is a single cycle.
func Cycle[E any](n int, opts ...Option[E]) (*core.Graph[core.None, E], error) {
	// 1) Validate the parameter domain before any work.
	if n < minCycleNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodCycle, n, minCycleNodes, ErrTooFewNodes)
	}

	// 2) Resolve options and the seeded RNG feeding the weight source.
	o, rng := resolve(opts)

	// 3) Emit the ring edges in ascending source order; i==n-1 closes
	//    the ring back to node 0.
	edges := make([]core.Edge[E], 0, n)
	var i int
	for i = 0; i < n; i++ {
		edges = append(edges, core.Edge[E]{
			Source: core.NodeID(i),
			Target: core.NodeID((i + 1) % n),
			Weight: o.WeightFn(rng),
		})
	}

	// 4) Assemble through the bulk path; one edge per source keeps the
	//    emission sorted.
	return assemble(methodCycle, n, edges)
}
