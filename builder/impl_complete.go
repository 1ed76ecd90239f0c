// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// impl_complete.go - the Complete(n) generator.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewNodes).
//   • Nodes are the indices 0..n-1.
//   • Emits every ordered pair i → j with i ≠ j, ascending by (i, j),
//     for n·(n-1) edges total. No self-loops.
//   • One WeightFn draw per edge, in emission order.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) emission + O(n²) bulk assembly.
//   • Space: O(n²) for the staged edge list.
//
// Determinism:
//   • Fixed emission order by ascending (source, target).
//   • Deterministic weights given a fixed Seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// File-local constants (stable method tags for error context).
const (
	methodComplete   = "Complete"
	minCompleteNodes = 2
)

// Complete builds the complete directed graph K_n: every ordered pair
// of distinct nodes carries an edge, so each node has n-1 outgoing and
// n-1 incoming edges.
func Complete[E any](n int, opts ...Option[E]) (*core.Graph[core.None, E], error) {
	// 1) Validate the parameter domain before any work.
	if n < minCompleteNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodComplete, n, minCompleteNodes, ErrTooFewNodes)
	}

	// 2) Resolve options and the seeded RNG feeding the weight source.
	o, rng := resolve(opts)

	// 3) Emit every ordered pair in ascending (source, target) order,
	//    skipping the diagonal.
	edges := make([]core.Edge[E], 0, n*(n-1))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			edges = append(edges, core.Edge[E]{
				Source: core.NodeID(i),
				Target: core.NodeID(j),
				Weight: o.WeightFn(rng),
			})
		}
	}

	// 4) Assemble through the bulk path; the double scan emits the
	//    pairs already sorted.
	return assemble(methodComplete, n, edges)
}
