// Package core: the weight capability contract and its built-in
// numeric implementation.
package core

import "golang.org/x/exp/constraints"

// Number bounds the built-in numeric weight types: any integer or
// float. String-like ordered types are excluded on purpose, addition
// over them is concatenation, not cost accumulation.
type Number interface {
	constraints.Integer | constraints.Float
}

// Arith is the weight capability contract required by shortest-path
// computation. A weight type needs a zero value, an addition, and a
// total order; nothing else.
//
// Add must treat Zero as its identity (Add(Zero(), w) == w) and
// Compare must define a total order consistent with Add, i.e.
// Compare(Add(a, b), a) >= 0 for non-negative b. Addition does not have
// to be arithmetic: a composite cost type may combine weights by any
// domain rule (say, the worse of two terrain classes) as long as the
// order stays consistent.
type Arith[W any] interface {
	// Zero returns the additive identity, the distance of a start node
	// to itself.
	Zero() W

	// Add combines a path prefix cost with one more edge weight.
	Add(a, b W) W

	// Compare returns a negative value when a sorts before b, zero when
	// they are equal, and a positive value otherwise.
	Compare(a, b W) int
}

// Numeric implements Arith for any built-in integer or float weight
// using ordinary arithmetic. The zero struct is ready to use:
//
//	dijkstra.Run(g, start, core.Numeric[int]{})
type Numeric[W Number] struct{}

// Zero returns the numeric zero of W.
func (Numeric[W]) Zero() W {
	var z W

	return z
}

// Add returns a + b.
func (Numeric[W]) Add(a, b W) W { return a + b }

// Compare orders a and b with the native < operator.
func (Numeric[W]) Compare(a, b W) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
