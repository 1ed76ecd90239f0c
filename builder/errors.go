// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// errors.go - sentinel errors shared by all generators.
package builder

import "errors"

var (
	// ErrTooFewNodes is returned when a shape requires more nodes than
	// the caller requested (each generator documents its minimum).
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrInvalidProbability is returned when an edge probability falls
	// outside the closed interval [0, 1].
	ErrInvalidProbability = errors.New("builder: probability out of range")
)
