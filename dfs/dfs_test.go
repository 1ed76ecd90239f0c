package dfs_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gresta/core"
	"github.com/katalvlaran/gresta/dfs"
)

// branchFixture builds the following graph:
//
//	0 → 1, 0 → 4
//	1 → 2, 1 → 3
//	2 → 5
//	4 → 5
//
// Pre-order from 0 descends the lowest target first:
// [0 1 2 5 3 4], and node 5 is claimed through 2 before 4 reaches it.
func branchFixture(t testing.TB) *core.Graph[core.None, core.None] {
	t.Helper()

	return buildGraph(t, 6, [][2]core.NodeID{
		{0, 1}, {0, 4}, {1, 2}, {1, 3}, {2, 5}, {4, 5},
	})
}

func buildGraph(t testing.TB, n int, edges [][2]core.NodeID) *core.Graph[core.None, core.None] {
	t.Helper()
	g := core.NewWithNodes[core.None, core.None](n)
	var e [2]core.NodeID
	for _, e = range edges {
		_, err := g.AddEdge(e[0], e[1], core.None{})
		require.NoError(t, err)
	}

	return g
}

// requireSameTraversal runs both walkers and asserts every observable
// output matches.
func requireSameTraversal(t *testing.T, g *core.Graph[core.None, core.None], start core.NodeID, opts ...dfs.Option) {
	t.Helper()
	rec, recErr := dfs.Run(g, start, opts...)
	it, itErr := dfs.RunIterative(g, start, opts...)
	require.NoError(t, recErr)
	require.NoError(t, itErr)

	assert.Equal(t, rec.Order, it.Order, "discovery order")
	assert.Equal(t, rec.Depth, it.Depth, "depths")
	assert.Equal(t, rec.Parent, it.Parent, "parents")
	assert.Equal(t, rec.SkippedNeighbors, it.SkippedNeighbors, "skipped count")
}

func TestRun_NilGraph(t *testing.T) {
	_, err := dfs.Run[core.None, core.None](nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)

	_, err = dfs.RunIterative[core.None, core.None](nil, 0)
	require.ErrorIs(t, err, dfs.ErrGraphNil)
}

func TestRun_StartOutOfRange(t *testing.T) {
	g := branchFixture(t)

	res, err := dfs.Run(g, 42)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
	assert.False(t, res.Visited(0))

	res, err = dfs.RunIterative(g, 42)
	require.NoError(t, err)
	assert.Empty(t, res.Order)
}

func TestRun_PreOrder(t *testing.T) {
	g := branchFixture(t)
	res, err := dfs.Run(g, 0)
	require.NoError(t, err)

	// Discovery order, lowest targets first, full depth before
	// siblings.
	assert.Equal(t, []core.NodeID{0, 1, 2, 5, 3, 4}, res.Order)

	// Depths follow the discovery path, not the shortest path: node 5
	// is found at depth 3 through 2 even though 4 offers depth 2.
	assert.Equal(t, []int{0, 1, 2, 2, 1, 3}, res.Depth)

	// Parent links form the DFS tree; the start is its own parent.
	assert.Equal(t, core.NodeID(0), res.Parent[0])
	assert.Equal(t, core.NodeID(0), res.Parent[1])
	assert.Equal(t, core.NodeID(1), res.Parent[2])
	assert.Equal(t, core.NodeID(1), res.Parent[3])
	assert.Equal(t, core.NodeID(0), res.Parent[4])
	assert.Equal(t, core.NodeID(2), res.Parent[5])
}

func TestRun_OrderEquivalence(t *testing.T) {
	// The recursive and iterative walkers must be indistinguishable on
	// every graph shape and option mix.
	tests := []struct {
		name  string
		graph *core.Graph[core.None, core.None]
		start core.NodeID
		opts  []dfs.Option
	}{
		{
			name:  "branching",
			graph: branchFixture(t),
			start: 0,
		},
		{
			name:  "cycle",
			graph: buildGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 0}}),
			start: 0,
		},
		{
			name:  "self_loop",
			graph: buildGraph(t, 2, [][2]core.NodeID{{0, 0}, {0, 1}}),
			start: 0,
		},
		{
			name:  "diamond_cross_edges",
			graph: buildGraph(t, 4, [][2]core.NodeID{{0, 1}, {0, 2}, {1, 2}, {1, 3}, {2, 3}}),
			start: 0,
		},
		{
			name:  "depth_limited",
			graph: branchFixture(t),
			start: 0,
			opts:  []dfs.Option{dfs.WithMaxDepth(1)},
		},
		{
			name:  "filtered",
			graph: branchFixture(t),
			start: 0,
			opts: []dfs.Option{dfs.WithFilterNeighbor(func(id core.NodeID) bool {
				return id != 1
			})},
		},
		{
			name:  "forest",
			graph: buildGraph(t, 5, [][2]core.NodeID{{0, 1}, {2, 3}}),
			start: 0,
			opts:  []dfs.Option{dfs.WithFullTraversal()},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			requireSameTraversal(t, tc.graph, tc.start, tc.opts...)
		})
	}
}

func TestRun_HookSequences(t *testing.T) {
	g := branchFixture(t)
	var visits, exits []core.NodeID

	res, err := dfs.Run(g, 0,
		dfs.WithOnVisit(func(id core.NodeID) error {
			visits = append(visits, id)

			return nil
		}),
		dfs.WithOnExit(func(id core.NodeID) error {
			exits = append(exits, id)

			return nil
		}),
	)
	require.NoError(t, err)

	// OnVisit fires in discovery order, OnExit in finish order.
	assert.Equal(t, res.Order, visits)
	assert.Equal(t, []core.NodeID{5, 2, 3, 1, 4, 0}, exits)

	// The iterative walker fires the same sequences.
	var itVisits, itExits []core.NodeID
	_, err = dfs.RunIterative(g, 0,
		dfs.WithOnVisit(func(id core.NodeID) error {
			itVisits = append(itVisits, id)

			return nil
		}),
		dfs.WithOnExit(func(id core.NodeID) error {
			itExits = append(itExits, id)

			return nil
		}),
	)
	require.NoError(t, err)
	assert.Equal(t, visits, itVisits)
	assert.Equal(t, exits, itExits)
}

func TestRun_OnVisitAbort(t *testing.T) {
	g := branchFixture(t)
	errStop := errors.New("inspection failed")

	hook := dfs.WithOnVisit(func(id core.NodeID) error {
		if id == 5 {
			return errStop
		}

		return nil
	})

	res, err := dfs.Run(g, 0, hook)
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, []core.NodeID{0, 1, 2, 5}, res.Order)

	res, err = dfs.RunIterative(g, 0, hook)
	require.ErrorIs(t, err, errStop)
	assert.Equal(t, []core.NodeID{0, 1, 2, 5}, res.Order)
}

func TestRun_OnExitAbort(t *testing.T) {
	g := branchFixture(t)
	errStop := errors.New("teardown failed")

	hook := dfs.WithOnExit(func(id core.NodeID) error {
		if id == 2 {
			return errStop
		}

		return nil
	})

	_, err := dfs.Run(g, 0, hook)
	require.ErrorIs(t, err, errStop)

	_, err = dfs.RunIterative(g, 0, hook)
	require.ErrorIs(t, err, errStop)
}

func TestRun_MaxDepth(t *testing.T) {
	g := branchFixture(t)

	// Depth 1 keeps the start and its direct targets.
	res, err := dfs.Run(g, 0, dfs.WithMaxDepth(1))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 4}, res.Order)

	// Depth 0 visits only the root.
	res, err = dfs.Run(g, 0, dfs.WithMaxDepth(0))
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0}, res.Order)
}

func TestRun_FilterNeighborSkips(t *testing.T) {
	g := branchFixture(t)

	res, err := dfs.Run(g, 0, dfs.WithFilterNeighbor(func(id core.NodeID) bool {
		return id != 1
	}))
	require.NoError(t, err)

	// Blocking node 1 reroutes discovery through 4.
	assert.Equal(t, []core.NodeID{0, 4, 5}, res.Order)
	assert.Equal(t, 1, res.SkippedNeighbors)
	assert.False(t, res.Visited(1))
	assert.False(t, res.Visited(2))
}

func TestRun_FullTraversal(t *testing.T) {
	g := buildGraph(t, 5, [][2]core.NodeID{{0, 1}, {2, 3}})

	// Forest mode ignores the start argument, even out-of-range ones.
	res, err := dfs.Run(g, 99, dfs.WithFullTraversal())
	require.NoError(t, err)

	assert.Equal(t, []core.NodeID{0, 1, 2, 3, 4}, res.Order)

	// Each tree root is its own parent.
	assert.Equal(t, core.NodeID(0), res.Parent[0])
	assert.Equal(t, core.NodeID(2), res.Parent[2])
	assert.Equal(t, core.NodeID(4), res.Parent[4])
	assert.Equal(t, core.NodeID(0), res.Parent[1])
	assert.Equal(t, core.NodeID(2), res.Parent[3])
}

func TestRun_CycleTerminates(t *testing.T) {
	g := buildGraph(t, 3, [][2]core.NodeID{{0, 1}, {1, 2}, {2, 0}})
	res, err := dfs.Run(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []core.NodeID{0, 1, 2}, res.Order)
}

func TestRunIterative_DeepChain(t *testing.T) {
	// A ten-thousand node path stresses the explicit stack where
	// recursion depth would track path length.
	const n = 10000
	edges := make([]core.Edge[core.None], 0, n-1)
	var i int
	for i = 0; i < n-1; i++ {
		edges = append(edges, core.Edge[core.None]{Source: core.NodeID(i), Target: core.NodeID(i + 1)})
	}
	g, err := core.FromSortedEdges[core.None, core.None](n, edges)
	require.NoError(t, err)

	res, err := dfs.RunIterative(g, 0)
	require.NoError(t, err)
	assert.Len(t, res.Order, n)
	assert.Equal(t, n-1, res.Depth[n-1])
}
