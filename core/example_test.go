// Package core_test runnable examples for the Graph facade and the
// CSR bulk constructor.
package core_test

import (
	"fmt"

	"github.com/katalvlaran/gresta/core"
)

// ExampleNew builds a small road graph incrementally and walks one
// adjacency window.
func ExampleNew() {
	g := core.New[string, int]()

	home := g.AddNode("home")
	shop := g.AddNode("shop")
	park := g.AddNode("park")

	_, _ = g.AddEdge(home, park, 4)
	_, _ = g.AddEdge(home, shop, 2)

	for nb, w := range g.Neighbors(home) {
		name, _ := g.NodeWeight(nb)
		fmt.Printf("%s at cost %d\n", name, w)
	}
	// Output:
	// shop at cost 2
	// park at cost 4
}

// ExampleFromSortedEdges bulk-loads a pre-sorted edge list, the O(V+E)
// construction path.
func ExampleFromSortedEdges() {
	g, err := core.FromSortedEdges[core.None, int](4, []core.Edge[int]{
		{Source: 0, Target: 1, Weight: 1},
		{Source: 0, Target: 2, Weight: 10},
		{Source: 1, Target: 3, Weight: 3},
		{Source: 2, Target: 3, Weight: 1},
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(g.NodeCount(), "nodes,", g.EdgeCount(), "edges")
	// Output:
	// 4 nodes, 4 edges
}

// ExampleGraph_AddEdge shows the benign duplicate policy: the second
// add of the same pair reports false without failing.
func ExampleGraph_AddEdge() {
	g := core.NewWithNodes[core.None, int](2)

	added, _ := g.AddEdge(0, 1, 5)
	fmt.Println("first add:", added)
	added, _ = g.AddEdge(0, 1, 9)
	fmt.Println("second add:", added)
	fmt.Println("edges:", g.EdgeCount())
	// Output:
	// first add: true
	// second add: false
	// edges: 1
}
