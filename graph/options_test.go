// SPDX-License-Identifier: MIT

package graph_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/graph"
	"github.com/stretchr/testify/require"
)

// capFlags reads back what the factory actually built; the backend itself
// is not observable through the API, so the policy tests below pin the
// impl through behavior-neutral construction and the capability surface.
func capFlags(g graph.Graph) (bool, bool, bool) {
	return g.IsDirected(), g.AllowSelfEdges(), g.AllowParallelEdges()
}

// TestNew_Defaults builds an undirected graph without self or parallel
// edges.
func TestNew_Defaults(t *testing.T) {
	g, err := graph.New()
	require.NoError(t, err)
	d, s, p := capFlags(g)
	require.False(t, d)
	require.False(t, s)
	require.False(t, p)
	require.Equal(t, 0, g.NumVertices())
}

// TestNew_CapabilityOptions wires every flag through.
func TestNew_CapabilityOptions(t *testing.T) {
	g, err := graph.New(graph.WithDirected(true), graph.WithSelfEdges(), graph.WithParallelEdges())
	require.NoError(t, err)
	d, s, p := capFlags(g)
	require.True(t, d)
	require.True(t, s)
	require.True(t, p)
}

// TestNew_ExplicitImpl accepts each mutable backend by name and rejects
// impossible combinations.
func TestNew_ExplicitImpl(t *testing.T) {
	for _, impl := range []string{
		graph.ImplArray, graph.ImplLinked, graph.ImplHashtable, graph.ImplMatrix,
	} {
		g, err := graph.New(graph.WithImpl(impl))
		require.NoError(t, err, impl)
		require.NotNil(t, g)
	}

	_, err := graph.New(graph.WithImpl(graph.ImplMatrix), graph.WithParallelEdges())
	require.ErrorIs(t, err, graph.ErrCapabilityMismatch)

	_, err = graph.New(graph.WithImpl(graph.ImplCSR))
	require.ErrorIs(t, err, graph.ErrCapabilityMismatch)

	_, err = graph.New(graph.WithImpl("btree"))
	require.ErrorIs(t, err, graph.ErrUnknownImpl)
}

// TestNew_HintPolicy exercises the selection rules through combinations
// whose chosen backends differ observably: a matrix pick rejects parallel
// inserts structurally, a hashtable pick accepts them.
func TestNew_HintPolicy(t *testing.T) {
	// FastEdgeLookup with no self/parallel: matrix. Matrix cannot hold a
	// graph with parallel edges, so the capability check must reject the
	// second insert.
	g, err := graph.New(graph.WithFastEdgeLookup())
	require.NoError(t, err)
	g.AddVertex()
	g.AddVertex()
	mustAddEdge(t, g, 0, 1)
	_, err = g.AddEdge(0, 1)
	require.ErrorIs(t, err, graph.ErrParallelEdgeNotAllowed)

	// FastEdgeLookup with parallel edges: hashtable, which holds them.
	g, err = graph.New(graph.WithFastEdgeLookup(), graph.WithParallelEdges())
	require.NoError(t, err)
	g.AddVertex()
	g.AddVertex()
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 0, 1)
	require.Equal(t, 2, g.EdgesBetween(0, 1).Size())

	// FastEdgeLookup with self edges allowed also routes to hashtable.
	g, err = graph.New(graph.WithFastEdgeLookup(), graph.WithSelfEdges())
	require.NoError(t, err)
	g.AddVertex()
	mustAddEdge(t, g, 0, 0)

	// FastEdgeRemoval without self edges: linked list; with self edges the
	// policy falls back to the default backend. Both must behave the same.
	for _, opts := range [][]graph.Option{
		{graph.WithFastEdgeRemoval()},
		{graph.WithFastEdgeRemoval(), graph.WithSelfEdges()},
	} {
		g, err = graph.New(opts...)
		require.NoError(t, err)
		g.AddVertex()
		g.AddVertex()
		e := mustAddEdge(t, g, 0, 1)
		require.NoError(t, g.RemoveEdge(e))
		require.Equal(t, 0, g.NumEdges())
	}
}

// TestNew_Hints are capacity-only and must not change behavior.
func TestNew_Hints(t *testing.T) {
	g, err := graph.New(graph.WithExpectedVertices(64), graph.WithExpectedEdges(256))
	require.NoError(t, err)
	require.Equal(t, 0, g.NumVertices())
	require.Equal(t, 0, g.NumEdges())

	require.Panics(t, func() { graph.WithExpectedVertices(-1) })
	require.Panics(t, func() { graph.WithExpectedEdges(-5) })
}
