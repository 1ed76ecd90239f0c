// Package core_test verifies the Graph facade: construction paths,
// forwarding, and backend interchangeability.
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gresta/core"
)

func TestGraph_New(t *testing.T) {
	g := core.New[core.None, int]()

	assert.Equal(t, 0, g.NodeCount())
	assert.Equal(t, 0, g.EdgeCount())

	a := g.AddNode(core.None{})
	b := g.AddNode(core.None{})
	added, err := g.AddEdge(a, b, 5)
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, g.ContainsEdge(a, b))
	assert.False(t, g.ContainsEdge(b, a), "edges are directed")

	w, ok := g.EdgeWeight(a, b)
	require.True(t, ok)
	assert.Equal(t, 5, w)
}

func TestGraph_NewWithNodes(t *testing.T) {
	g := core.NewWithNodes[string, int](3)

	assert.Equal(t, 3, g.NodeCount())
	require.NoError(t, g.SetNodeWeight(0, "root"))
	w, ok := g.NodeWeight(0)
	require.True(t, ok)
	assert.Equal(t, "root", w)
}

func TestGraph_NewWithStore_Nil(t *testing.T) {
	assert.Panics(t, func() {
		core.NewWithStore[core.None, int](nil)
	})
}

func TestGraph_FromSortedEdges(t *testing.T) {
	g, err := core.FromSortedEdges[core.None, int](3, []core.Edge[int]{
		{Source: 0, Target: 1, Weight: 2},
		{Source: 1, Target: 2, Weight: 4},
	})
	require.NoError(t, err)

	assert.Equal(t, 3, g.NodeCount())
	assert.Equal(t, 2, g.EdgeCount())
	assert.True(t, g.ContainsEdge(0, 1))

	_, err = core.FromSortedEdges[core.None, int](3, []core.Edge[int]{
		{Source: 1, Target: 2, Weight: 4},
		{Source: 0, Target: 1, Weight: 2},
	})
	assert.ErrorIs(t, err, core.ErrEdgesNotSorted)
}

func TestGraph_StoreAccessor(t *testing.T) {
	g := core.New[core.None, int]()
	s := g.Store()
	require.NotNil(t, s)

	// The default backend is CSR; its fast path is reachable through
	// the accessor.
	csr, ok := s.(*core.CSR[core.None, int])
	require.True(t, ok)
	v := g.AddNode(core.None{})
	assert.Empty(t, csr.NeighborsSlice(v))
}

func TestGraph_NeighborsForwarding(t *testing.T) {
	g := core.NewWithNodes[core.None, int](4)
	for _, dst := range []core.NodeID{3, 1, 2} {
		_, err := g.AddEdge(0, dst, int(dst))
		require.NoError(t, err)
	}

	ids := []core.NodeID{}
	ws := []int{}
	for nb, w := range g.Neighbors(0) {
		ids = append(ids, nb)
		ws = append(ws, w)
	}
	assert.Equal(t, []core.NodeID{1, 2, 3}, ids)
	assert.Equal(t, []int{1, 2, 3}, ws)
	assert.Equal(t, 3, g.OutDegree(0))
}

func TestGraph_ClearEdges(t *testing.T) {
	g := core.NewWithNodes[core.None, int](2)
	_, err := g.AddEdge(0, 1, 1)
	require.NoError(t, err)

	g.ClearEdges()
	assert.Equal(t, 0, g.EdgeCount())
	assert.Equal(t, 2, g.NodeCount())
}
