package graph_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abclark/cycle-finder/graph"
)

func TestBuilder_BasicEdges(t *testing.T) {
	g := graph.NewBuilder(3).AddEdge(0, 1).AddEdge(1, 2).Build()

	require.Equal(t, 3, g.N())
	require.Equal(t, []int{1}, g.Neighbours(0))
	require.Equal(t, []int{2}, g.Neighbours(1))
	require.Empty(t, g.Neighbours(2))
	require.True(t, g.HasEdge(0, 1))
	require.False(t, g.HasEdge(1, 0))
}

func TestBuilder_SelfLoopIgnored(t *testing.T) {
	g := graph.NewBuilder(2).AddEdge(0, 0).AddEdge(0, 1).Build()

	require.Equal(t, []int{1}, g.Neighbours(0))
	require.False(t, g.HasEdge(0, 0))
}

func TestBuilder_MultiEdgeCollapses(t *testing.T) {
	g := graph.NewBuilder(2).AddEdge(0, 1).AddEdge(0, 1).Build()

	require.Equal(t, []int{1}, g.Neighbours(0))
}

func TestNew_FlatEdgeList(t *testing.T) {
	g := graph.New(3, 0, 1, 1, 2, 0, 2)

	require.Equal(t, []int{1, 2}, g.Neighbours(0))
	require.Equal(t, []int{2}, g.Neighbours(1))
}

func TestNeighbours_OutOfRangePanics(t *testing.T) {
	g := graph.New(2, 0, 1)
	require.Panics(t, func() { g.Neighbours(5) })
}

func TestVertices_AscendingOrder(t *testing.T) {
	g := graph.New(4)
	vs := g.Vertices()
	require.Len(t, vs, 4)
	for i, v := range vs {
		require.Equal(t, graph.Vertex(i), v)
	}
}

func TestHasVertex(t *testing.T) {
	g := graph.New(2)
	require.True(t, g.HasVertex(0))
	require.True(t, g.HasVertex(1))
	require.False(t, g.HasVertex(2))
	require.False(t, g.HasVertex(-1))
}
