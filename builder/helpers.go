// SPDX-License-Identifier: MIT
// Package: gresta/builder
//
// helpers.go - shared assembly step for all generators.
package builder

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// assemble routes a generated edge list through the bulk CSR path.
// Generators emit edges already sorted by (source, target), so the
// bulk precondition holds by construction; a violation here is a
// generator bug, surfaced with the method tag for context.
func assemble[E any](method string, n int, edges []core.Edge[E]) (*core.Graph[core.None, E], error) {
	g, err := core.FromSortedEdges[core.None, E](n, edges)
	if err != nil {
		return nil, fmt.Errorf("%s: assembling %d edges: %w", method, len(edges), err)
	}

	return g, nil
}
