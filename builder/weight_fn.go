// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// weight_fn.go - edge weight sources for the generators.
//
// Contract:
//   - A WeightFn must be deterministic for a given PCG state; panics in
//     the provided constructors indicate configuration errors.
package builder

import (
	"fmt"
	"math/rand/v2"
)

// WeightFn produces an edge weight, drawing randomness from rng when
// the distribution calls for it.
type WeightFn[E any] func(rng *rand.Rand) E

// zeroWeightFn yields the zero value of E; it is the WeightFn default.
func zeroWeightFn[E any](_ *rand.Rand) E {
	var zero E

	return zero
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Complexity: O(1). Never panics.
func ConstantWeightFn[E any](value E) WeightFn[E] {
	return func(_ *rand.Rand) E {
		return value
	}
}

// UniformIntWeightFn returns a WeightFn sampling uniformly from the
// closed interval [lo, hi]. Panics if hi < lo.
func UniformIntWeightFn(lo, hi int) WeightFn[int] {
	if hi < lo {
		panic(fmt.Sprintf("UniformIntWeightFn: require lo ≤ hi, got lo=%d, hi=%d", lo, hi))
	}

	return func(rng *rand.Rand) int {
		return lo + rng.IntN(hi-lo+1)
	}
}

// UniformFloatWeightFn returns a WeightFn sampling uniformly from
// [lo, hi). Panics if hi < lo.
func UniformFloatWeightFn(lo, hi float64) WeightFn[float64] {
	if hi < lo {
		panic(fmt.Sprintf("UniformFloatWeightFn: require lo ≤ hi, got lo=%g, hi=%g", lo, hi))
	}

	return func(rng *rand.Rand) float64 {
		if hi == lo {
			// Degenerate interval: constant.
			return lo
		}

		return lo + rng.Float64()*(hi-lo)
	}
}
