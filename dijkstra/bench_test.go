package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/dijkstra"
)

const benchNodes = 4096

// chainGraph builds 0→1→…→benchNodes-1 with unit weights.
func chainGraph(b *testing.B) *core.Graph[core.None, int] {
	b.Helper()
	edges := make([]core.Edge[int], 0, benchNodes-1)
	var i int
	for i = 0; i < benchNodes-1; i++ {
		edges = append(edges, core.Edge[int]{Source: core.NodeID(i), Target: core.NodeID(i + 1), Weight: 1})
	}
	g, err := core.FromSortedEdges[core.None, int](benchNodes, edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

// branchingGraph gives every node a short and a long forward edge, so
// relaxation keeps improving tentative distances.
func branchingGraph(b *testing.B) *core.Graph[core.None, int] {
	b.Helper()
	edges := make([]core.Edge[int], 0, 2*benchNodes)
	var i int
	for i = 0; i < benchNodes-2; i++ {
		edges = append(edges,
			core.Edge[int]{Source: core.NodeID(i), Target: core.NodeID(i + 1), Weight: 1},
			core.Edge[int]{Source: core.NodeID(i), Target: core.NodeID(i + 2), Weight: 3},
		)
	}
	g, err := core.FromSortedEdges[core.None, int](benchNodes, edges)
	if err != nil {
		b.Fatal(err)
	}

	return g
}

func BenchmarkRunNumeric_Chain(b *testing.B) {
	g := chainGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := dijkstra.RunNumeric(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkRunNumeric_Branching(b *testing.B) {
	g := branchingGraph(b)
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if _, err := dijkstra.RunNumeric(g, 0); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkResult_PathTo(b *testing.B) {
	g := chainGraph(b)
	res, err := dijkstra.RunNumeric(g, 0)
	if err != nil {
		b.Fatal(err)
	}
	last := core.NodeID(benchNodes - 1)
	b.ReportAllocs()
	b.ResetTimer()
	var i int
	for i = 0; i < b.N; i++ {
		if p := res.PathTo(last); len(p) != benchNodes {
			b.Fatalf("path length %d; want %d", len(p), benchNodes)
		}
	}
}
