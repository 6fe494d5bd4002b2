// SPDX-License-Identifier: MIT
//
// File: view_reverse.go
// Role: Zero-copy reversed view over a directed graph. Sources and
//       targets trade places, out- and in-adjacency trade places, and
//       mutations write through to the underlying graph.

package graph

import (
	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

// ReverseView returns a view of g with every edge's direction flipped.
// Reversing a reversed view unwraps it, returning the original graph;
// an undirected graph is its own reverse and is returned unchanged.
func ReverseView(g Graph) Graph {
	if !g.IsDirected() {
		return g
	}
	if rv, ok := g.(*reverseView); ok {
		return rv.inner
	}

	return &reverseView{inner: g}
}

type reverseView struct {
	inner Graph
}

func (g *reverseView) modCount() int { return innerModCount(g.inner) }

func (g *reverseView) IsDirected() bool         { return true }
func (g *reverseView) AllowSelfEdges() bool     { return g.inner.AllowSelfEdges() }
func (g *reverseView) AllowParallelEdges() bool { return g.inner.AllowParallelEdges() }

func (g *reverseView) NumVertices() int          { return g.inner.NumVertices() }
func (g *reverseView) NumEdges() int             { return g.inner.NumEdges() }
func (g *reverseView) ContainsVertex(v int) bool { return g.inner.ContainsVertex(v) }
func (g *reverseView) ContainsEdge(e int) bool   { return g.inner.ContainsEdge(e) }

func (g *reverseView) VertexWeights() *weights.Manager { return g.inner.VertexWeights() }
func (g *reverseView) EdgeWeights() *weights.Manager   { return g.inner.EdgeWeights() }

func (g *reverseView) OnVertexRemove(l elemset.RemoveListener)  { g.inner.OnVertexRemove(l) }
func (g *reverseView) OffVertexRemove(l elemset.RemoveListener) { g.inner.OffVertexRemove(l) }
func (g *reverseView) OnEdgeRemove(l elemset.RemoveListener)    { g.inner.OnEdgeRemove(l) }
func (g *reverseView) OffEdgeRemove(l elemset.RemoveListener)   { g.inner.OffEdgeRemove(l) }

func (g *reverseView) AddVertex() (int, error) { return g.inner.AddVertex() }
func (g *reverseView) RemoveVertex(v int) error {
	return g.inner.RemoveVertex(v)
}

func (g *reverseView) AddEdge(u, v int) (int, error) { return g.inner.AddEdge(v, u) }
func (g *reverseView) RemoveEdge(e int) error        { return g.inner.RemoveEdge(e) }
func (g *reverseView) RemoveEdgesOf(v int) error     { return g.inner.RemoveEdgesOf(v) }
func (g *reverseView) RemoveOutEdgesOf(v int) error  { return g.inner.RemoveInEdgesOf(v) }
func (g *reverseView) RemoveInEdgesOf(v int) error   { return g.inner.RemoveOutEdgesOf(v) }
func (g *reverseView) ReverseEdge(e int) error       { return g.inner.ReverseEdge(e) }
func (g *reverseView) ClearEdges() error             { return g.inner.ClearEdges() }
func (g *reverseView) Clear() error                  { return g.inner.Clear() }

func (g *reverseView) EdgeSource(e int) int      { return g.inner.EdgeTarget(e) }
func (g *reverseView) EdgeTarget(e int) int      { return g.inner.EdgeSource(e) }
func (g *reverseView) EdgeEndpoint(e, w int) int { return g.inner.EdgeEndpoint(e, w) }

func (g *reverseView) GetEdge(u, v int) (int, bool) { return g.inner.GetEdge(v, u) }

func (g *reverseView) EdgesBetween(u, v int) EdgeSet {
	return flippedEdgeSet{inner: g.inner.EdgesBetween(v, u)}
}

func (g *reverseView) OutEdges(v int) EdgeSet { return flippedEdgeSet{inner: g.inner.InEdges(v)} }
func (g *reverseView) InEdges(v int) EdgeSet  { return flippedEdgeSet{inner: g.inner.OutEdges(v)} }

// flippedEdgeSet presents an EdgeSet with Source and Target exchanged.
type flippedEdgeSet struct {
	inner EdgeSet
}

func (s flippedEdgeSet) Size() int      { return s.inner.Size() }
func (s flippedEdgeSet) Iter() EdgeIter { return flippedEdgeIter{inner: s.inner.Iter()} }

type flippedEdgeIter struct {
	inner EdgeIter
}

func (it flippedEdgeIter) Next() bool  { return it.inner.Next() }
func (it flippedEdgeIter) Edge() int   { return it.inner.Edge() }
func (it flippedEdgeIter) Other() int  { return it.inner.Other() }
func (it flippedEdgeIter) Source() int { return it.inner.Target() }
func (it flippedEdgeIter) Target() int { return it.inner.Source() }

// innerModCount reaches for the underlying modification counter so views
// can host fail-fast iterators; a foreign Graph implementation without
// one gets no fail-fast checking.
func innerModCount(g Graph) int {
	if o, ok := g.(setOwner); ok {
		return o.modCount()
	}

	return 0
}
