// SPDX-License-Identifier: MIT
//
// File: view_undirected.go
// Role: Zero-copy undirected view over a directed graph. Every edge is
//       traversable both ways; adjacency of a vertex is its out-edges
//       followed by its in-edges, skipping self edges in the in-half so
//       each incident edge appears exactly once.

package graph

import (
	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

// UndirectedView returns an undirected view of g. A graph that already is
// undirected is returned unchanged. Two directed edges (u,v) and (v,u)
// appear as two distinct undirected edges, so the view always reports
// parallel edges as allowed.
func UndirectedView(g Graph) Graph {
	if !g.IsDirected() {
		return g
	}

	return &undirectedView{inner: g}
}

type undirectedView struct {
	inner Graph
}

func (g *undirectedView) modCount() int { return innerModCount(g.inner) }

func (g *undirectedView) IsDirected() bool         { return false }
func (g *undirectedView) AllowSelfEdges() bool     { return g.inner.AllowSelfEdges() }
func (g *undirectedView) AllowParallelEdges() bool { return true }

func (g *undirectedView) NumVertices() int          { return g.inner.NumVertices() }
func (g *undirectedView) NumEdges() int             { return g.inner.NumEdges() }
func (g *undirectedView) ContainsVertex(v int) bool { return g.inner.ContainsVertex(v) }
func (g *undirectedView) ContainsEdge(e int) bool   { return g.inner.ContainsEdge(e) }

func (g *undirectedView) VertexWeights() *weights.Manager { return g.inner.VertexWeights() }
func (g *undirectedView) EdgeWeights() *weights.Manager   { return g.inner.EdgeWeights() }

func (g *undirectedView) OnVertexRemove(l elemset.RemoveListener)  { g.inner.OnVertexRemove(l) }
func (g *undirectedView) OffVertexRemove(l elemset.RemoveListener) { g.inner.OffVertexRemove(l) }
func (g *undirectedView) OnEdgeRemove(l elemset.RemoveListener)    { g.inner.OnEdgeRemove(l) }
func (g *undirectedView) OffEdgeRemove(l elemset.RemoveListener)   { g.inner.OffEdgeRemove(l) }

func (g *undirectedView) AddVertex() (int, error)       { return g.inner.AddVertex() }
func (g *undirectedView) RemoveVertex(v int) error      { return g.inner.RemoveVertex(v) }
func (g *undirectedView) AddEdge(u, v int) (int, error) { return g.inner.AddEdge(u, v) }
func (g *undirectedView) RemoveEdge(e int) error        { return g.inner.RemoveEdge(e) }
func (g *undirectedView) RemoveEdgesOf(v int) error     { return g.inner.RemoveEdgesOf(v) }

// Out- and in-edges coincide on an undirected view, and so do the
// directional removals.
func (g *undirectedView) RemoveOutEdgesOf(v int) error { return g.inner.RemoveEdgesOf(v) }
func (g *undirectedView) RemoveInEdgesOf(v int) error  { return g.inner.RemoveEdgesOf(v) }

func (g *undirectedView) ReverseEdge(e int) error { return g.inner.ReverseEdge(e) }
func (g *undirectedView) ClearEdges() error       { return g.inner.ClearEdges() }
func (g *undirectedView) Clear() error            { return g.inner.Clear() }

func (g *undirectedView) EdgeSource(e int) int      { return g.inner.EdgeSource(e) }
func (g *undirectedView) EdgeTarget(e int) int      { return g.inner.EdgeTarget(e) }
func (g *undirectedView) EdgeEndpoint(e, w int) int { return g.inner.EdgeEndpoint(e, w) }

func (g *undirectedView) GetEdge(u, v int) (int, bool) {
	if e, ok := g.inner.GetEdge(u, v); ok {
		return e, true
	}
	if u == v {
		return -1, false
	}

	return g.inner.GetEdge(v, u)
}

func (g *undirectedView) EdgesBetween(u, v int) EdgeSet {
	return edgeSet{
		owner:    g,
		pivot:    u,
		pivotSrc: true,
		list: func() []int {
			out := CollectEdges(g.inner.EdgesBetween(u, v))
			if u != v {
				out = append(out, CollectEdges(g.inner.EdgesBetween(v, u))...)
			}
			return out
		},
	}
}

// incident lists v's out-edges followed by its in-edges, dropping self
// edges from the in-half: a self edge already appeared in the out-half
// and must not be reported twice.
func (g *undirectedView) incident(v int) []int {
	out := CollectEdges(g.inner.OutEdges(v))
	for it := g.inner.InEdges(v).Iter(); it.Next(); {
		e := it.Edge()
		if g.inner.EdgeSource(e) != g.inner.EdgeTarget(e) {
			out = append(out, e)
		}
	}

	return out
}

func (g *undirectedView) OutEdges(v int) EdgeSet {
	return edgeSet{owner: g, pivot: v, pivotSrc: true, list: func() []int { return g.incident(v) }}
}

func (g *undirectedView) InEdges(v int) EdgeSet {
	return edgeSet{owner: g, pivot: v, pivotSrc: false, list: func() []int { return g.incident(v) }}
}
