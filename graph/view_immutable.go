// SPDX-License-Identifier: MIT
//
// File: view_immutable.go
// Role: Zero-copy immutability guard. Every mutator fails with
//       ErrImmutableGraph; every read forwards to the wrapped graph.

package graph

import (
	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

// ImmutableView returns a read-only view of g. Wrapping a graph that is
// already immutable, including a previous ImmutableView, returns it
// unchanged.
func ImmutableView(g Graph) Graph {
	if _, ok := g.(immutableMarker); ok {
		return g
	}

	return &immutableView{inner: g}
}

type immutableView struct {
	inner Graph
}

func (g *immutableView) immutableGraph() {}
func (g *immutableView) modCount() int   { return innerModCount(g.inner) }

func (g *immutableView) IsDirected() bool         { return g.inner.IsDirected() }
func (g *immutableView) AllowSelfEdges() bool     { return g.inner.AllowSelfEdges() }
func (g *immutableView) AllowParallelEdges() bool { return g.inner.AllowParallelEdges() }

func (g *immutableView) NumVertices() int          { return g.inner.NumVertices() }
func (g *immutableView) NumEdges() int             { return g.inner.NumEdges() }
func (g *immutableView) ContainsVertex(v int) bool { return g.inner.ContainsVertex(v) }
func (g *immutableView) ContainsEdge(e int) bool   { return g.inner.ContainsEdge(e) }

func (g *immutableView) VertexWeights() *weights.Manager { return g.inner.VertexWeights() }
func (g *immutableView) EdgeWeights() *weights.Manager   { return g.inner.EdgeWeights() }

func (g *immutableView) OnVertexRemove(l elemset.RemoveListener)  { g.inner.OnVertexRemove(l) }
func (g *immutableView) OffVertexRemove(l elemset.RemoveListener) { g.inner.OffVertexRemove(l) }
func (g *immutableView) OnEdgeRemove(l elemset.RemoveListener)    { g.inner.OnEdgeRemove(l) }
func (g *immutableView) OffEdgeRemove(l elemset.RemoveListener)   { g.inner.OffEdgeRemove(l) }

func (g *immutableView) AddVertex() (int, error) { return -1, errImmutable("add vertex") }
func (g *immutableView) RemoveVertex(int) error  { return errImmutable("remove vertex") }
func (g *immutableView) AddEdge(int, int) (int, error) {
	return -1, errImmutable("add edge")
}
func (g *immutableView) RemoveEdge(int) error    { return errImmutable("remove edge") }
func (g *immutableView) RemoveEdgesOf(int) error { return errImmutable("remove edges of vertex") }
func (g *immutableView) RemoveOutEdgesOf(int) error {
	return errImmutable("remove out-edges of vertex")
}
func (g *immutableView) RemoveInEdgesOf(int) error {
	return errImmutable("remove in-edges of vertex")
}
func (g *immutableView) ReverseEdge(int) error { return errImmutable("reverse edge") }
func (g *immutableView) ClearEdges() error     { return errImmutable("clear edges") }
func (g *immutableView) Clear() error          { return errImmutable("clear") }

func (g *immutableView) EdgeSource(e int) int      { return g.inner.EdgeSource(e) }
func (g *immutableView) EdgeTarget(e int) int      { return g.inner.EdgeTarget(e) }
func (g *immutableView) EdgeEndpoint(e, w int) int { return g.inner.EdgeEndpoint(e, w) }

func (g *immutableView) GetEdge(u, v int) (int, bool)  { return g.inner.GetEdge(u, v) }
func (g *immutableView) EdgesBetween(u, v int) EdgeSet { return g.inner.EdgesBetween(u, v) }
func (g *immutableView) OutEdges(v int) EdgeSet        { return g.inner.OutEdges(v) }
func (g *immutableView) InEdges(v int) EdgeSet         { return g.inner.InEdges(v) }
