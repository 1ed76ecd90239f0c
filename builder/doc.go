// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// Package builder generates deterministic graph fixtures: paths,
// cycles, stars, complete graphs, and seeded sparse random graphs.
//
// Every generator emits its edges pre-sorted by (source, target) and
// assembles the graph through the bulk CSR constructor, so building a
// fixture costs O(V + E) with no insertion shifting. Node weights are
// core.None; edge weights come from a WeightFn, which defaults to the
// zero value of the edge weight type.
//
// Determinism is a hard contract: the same shape parameters, seed, and
// weight function produce byte-identical graphs on every run. Random
// choices draw from a PCG generator seeded via WithSeed, never from
// global state.
//
// Usage:
//
//	g, err := builder.Sparse[int](64, 0.1,
//	    builder.WithSeed[int](42),
//	    builder.WithWeightFn(builder.UniformIntWeightFn(1, 100)),
//	)
//
// Errors:
//
//	ErrTooFewNodes        - shape needs more nodes than requested.
//	ErrInvalidProbability - edge probability outside [0, 1].
package builder
