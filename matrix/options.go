// SPDX-License-Identifier: MIT
// Package matrix: functional options for Dense construction.
package matrix

import "errors"

// ErrBadCapacity indicates a negative initial capacity was requested.
// Option constructors panic with it; a negative capacity is a
// programmer error, not a runtime condition.
var ErrBadCapacity = errors.New("matrix: capacity must be non-negative")

// growFloor is the smallest capacity a growing Dense jumps to, so tiny
// graphs do not reallocate on every AddNode.
const growFloor = 4

// Options configures Dense construction.
//
// Capacity - initial node capacity; Capacity² slots are allocated up
// front. Zero (the default) defers allocation to the first grow.
type Options struct {
	Capacity int
}

// Option is a functional option for Dense construction.
type Option func(*Options)

// WithCapacity pre-sizes the matrix for n nodes, avoiding regrowth
// while the node count stays at or below n. Panics on negative n.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// DefaultOptions returns the Options Dense starts from: no up-front
// allocation, growth on demand.
func DefaultOptions() Options {
	return Options{Capacity: 0}
}
