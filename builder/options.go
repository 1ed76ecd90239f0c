// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// options.go - functional options resolving into the generator config.
//
// Design contract:
//   - Options resolve once per generator call into an immutable config.
//   - Same seed and weight function ⇒ identical output, no global state.
package builder

import (
	"math/rand/v2"
)

// DefaultSeed seeds generators when WithSeed is not supplied.
const DefaultSeed uint64 = 1

// Options holds resolved generator configuration.
type Options[E any] struct {
	// Seed initializes the PCG source behind every random choice.
	Seed uint64

	// WeightFn produces each emitted edge's weight. The default yields
	// the zero value of E.
	WeightFn WeightFn[E]
}

// Option mutates Options before a generator runs.
type Option[E any] func(*Options[E])

// DefaultOptions returns the canonical configuration: DefaultSeed and
// zero-valued weights.
func DefaultOptions[E any]() Options[E] {
	return Options[E]{
		Seed:     DefaultSeed,
		WeightFn: zeroWeightFn[E],
	}
}

// WithSeed fixes the random source; identical seeds reproduce identical
// graphs.
func WithSeed[E any](seed uint64) Option[E] {
	return func(o *Options[E]) {
		o.Seed = seed
	}
}

// WithWeightFn installs fn as the edge weight source. A nil fn keeps
// the current one.
func WithWeightFn[E any](fn WeightFn[E]) Option[E] {
	return func(o *Options[E]) {
		if fn != nil {
			o.WeightFn = fn
		}
	}
}

// resolve folds opts over the defaults and opens the seeded source.
func resolve[E any](opts []Option[E]) (Options[E], *rand.Rand) {
	o := DefaultOptions[E]()
	var opt Option[E]
	for _, opt = range opts {
		opt(&o)
	}

	return o, rand.New(rand.NewPCG(o.Seed, o.Seed))
}
