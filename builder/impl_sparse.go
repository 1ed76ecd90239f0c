// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// impl_sparse.go - the Sparse(n, p) generator.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewNodes); a single node yields an empty graph.
//   • 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   • Scans every ordered pair i → j with i ≠ j, ascending by (i, j),
//     and keeps each pair independently with probability p. No
//     self-loops.
//   • Per candidate pair the RNG is consumed in a fixed pattern: one
//     inclusion draw, then one WeightFn draw only when the pair is
//     kept.
//   • p=0 yields no edges, p=1 yields the complete graph K_n.
//   • Returns only sentinel errors; never panics at runtime.
//
// Complexity:
//   • Time: O(n²) candidate scan + O(n + p·n²) expected bulk assembly.
//   • Space: O(p·n²) expected for the staged edge list.
//
// Determinism:
//   • Fixed candidate order by ascending (source, target).
//   • Fixed per-pair RNG consumption, so topology and weights are both
//     reproducible given a fixed Seed.

package builder

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// File-local constants (stable method tags for error context).
const (
	methodSparse   = "Sparse"
	minSparseNodes = 1

	// Probability domain bounds for the validation step.
	minProbability = 0.0
	maxProbability = 1.0
)

// Sparse builds a seeded G(n, p) random graph: every ordered pair of
// distinct nodes carries an edge independently with probability p. The
// same seed reproduces the same topology and the same weights.
func Sparse[E any](n int, p float64, opts ...Option[E]) (*core.Graph[core.None, E], error) {
	// 1) Validate both parameter domains before any work.
	if n < minSparseNodes {
		return nil, fmt.Errorf("%s: n=%d < min=%d: %w", methodSparse, n, minSparseNodes, ErrTooFewNodes)
	}
	if p < minProbability || p > maxProbability {
		return nil, fmt.Errorf("%s: p=%.6f not in [%.1f,%.1f]: %w",
			methodSparse, p, minProbability, maxProbability, ErrInvalidProbability)
	}

	// 2) Resolve options and the seeded RNG driving both the inclusion
	//    draws and the weight source.
	o, rng := resolve(opts)

	// 3) Scan every ordered pair in ascending (source, target) order.
	//    Float64 draws from [0, 1), so p=1 keeps every pair and p=0
	//    keeps none.
	edges := make([]core.Edge[E], 0, int(p*float64(n)*float64(n-1)))
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if j == i {
				continue
			}
			if rng.Float64() >= p {
				continue
			}
			edges = append(edges, core.Edge[E]{
				Source: core.NodeID(i),
				Target: core.NodeID(j),
				Weight: o.WeightFn(rng),
			})
		}
	}

	// 4) Assemble through the bulk path; the candidate scan emits the
	//    kept pairs already sorted.
	return assemble(methodSparse, n, edges)
}
