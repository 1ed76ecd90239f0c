// SPDX-License-Identifier: MIT
// Package matrix_test runnable examples for the Dense backend.
package matrix_test

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/matrix"
)

// ExampleNew fronts a Dense store with the Graph facade; callers and
// algorithms cannot tell the backends apart.
func ExampleNew() {
	g := core.NewWithStore[core.None, int](matrix.New[core.None, int](
		matrix.WithCapacity(8),
	))

	a := g.AddNode(core.None{})
	b := g.AddNode(core.None{})
	c := g.AddNode(core.None{})
	_, _ = g.AddEdge(a, c, 3)
	_, _ = g.AddEdge(a, b, 1)

	for nb, w := range g.Neighbors(a) {
		fmt.Printf("%d at cost %d\n", nb, w)
	}
	fmt.Println("degree:", g.OutDegree(a))
	// Output:
	// 1 at cost 1
	// 2 at cost 3
	// degree: 2
}
