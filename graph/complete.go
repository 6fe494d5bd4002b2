// SPDX-License-Identifier: MIT
//
// File: complete.go
// Role: Complete graph over n vertices with no adjacency storage at all.
//       Edge ids and vertex pairs convert both ways through closed-form
//       bijections, so the graph occupies O(1) memory besides its weight
//       containers.
//
// Directed ids enumerate the ordered pairs row by row:
// id = u·(n-1) + (v if v < u else v-1), for u ≠ v, id ∈ [0, n·(n-1)).
// Undirected ids enumerate the lower triangle (u > v):
// id = u·(u-1)/2 + v, id ∈ [0, n·(n-1)/2).

package graph

import (
	"fmt"
	"math"

	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

type completeGraph struct {
	n        int
	directed bool

	vertices *elemset.IndexSet
	edges    *elemset.IndexSet
	vweights *weights.Manager
	eweights *weights.Manager
}

// NewComplete returns the complete graph on n vertices: every ordered
// (directed) or unordered (undirected) pair of distinct vertices is
// connected by exactly one edge. The structure is immutable; weight
// containers remain writable.
func NewComplete(n int, directed bool) Graph {
	if n < 0 {
		panic("graph: NewComplete with negative vertex count")
	}
	m := n * (n - 1)
	if !directed {
		m /= 2
	}
	vs := elemset.New(n)
	es := elemset.New(m)

	return &completeGraph{
		n:        n,
		directed: directed,
		vertices: vs,
		edges:    es,
		vweights: weights.NewManager(vs),
		eweights: weights.NewManager(es),
	}
}

func (g *completeGraph) immutableGraph() {}
func (g *completeGraph) modCount() int  { return 0 }

func (g *completeGraph) IsDirected() bool         { return g.directed }
func (g *completeGraph) AllowSelfEdges() bool     { return false }
func (g *completeGraph) AllowParallelEdges() bool { return false }

func (g *completeGraph) NumVertices() int          { return g.n }
func (g *completeGraph) NumEdges() int             { return g.edges.Size() }
func (g *completeGraph) ContainsVertex(v int) bool { return g.vertices.Contains(v) }
func (g *completeGraph) ContainsEdge(e int) bool   { return g.edges.Contains(e) }

func (g *completeGraph) VertexWeights() *weights.Manager { return g.vweights }
func (g *completeGraph) EdgeWeights() *weights.Manager   { return g.eweights }

func (g *completeGraph) OnVertexRemove(l elemset.RemoveListener)  { g.vertices.OnRemove(l) }
func (g *completeGraph) OffVertexRemove(l elemset.RemoveListener) { g.vertices.OffRemove(l) }
func (g *completeGraph) OnEdgeRemove(l elemset.RemoveListener)    { g.edges.OnRemove(l) }
func (g *completeGraph) OffEdgeRemove(l elemset.RemoveListener)   { g.edges.OffRemove(l) }

func (g *completeGraph) AddVertex() (int, error)       { return -1, errImmutable("add vertex") }
func (g *completeGraph) RemoveVertex(int) error        { return errImmutable("remove vertex") }
func (g *completeGraph) AddEdge(int, int) (int, error) { return -1, errImmutable("add edge") }
func (g *completeGraph) RemoveEdge(int) error          { return errImmutable("remove edge") }
func (g *completeGraph) RemoveEdgesOf(int) error       { return errImmutable("remove edges of vertex") }
func (g *completeGraph) RemoveOutEdgesOf(int) error {
	return errImmutable("remove out-edges of vertex")
}
func (g *completeGraph) RemoveInEdgesOf(int) error { return errImmutable("remove in-edges of vertex") }
func (g *completeGraph) ReverseEdge(int) error     { return errImmutable("reverse edge") }
func (g *completeGraph) ClearEdges() error         { return errImmutable("clear edges") }
func (g *completeGraph) Clear() error              { return errImmutable("clear") }

// encode maps a pair of distinct valid vertices to its edge id.
func (g *completeGraph) encode(u, v int) int {
	if g.directed {
		if v < u {
			return u*(g.n-1) + v
		}
		return u*(g.n-1) + v - 1
	}
	if u < v {
		u, v = v, u
	}

	return u*(u-1)/2 + v
}

// decode maps an edge id back to its (source, target) pair.
func (g *completeGraph) decode(e int) (int, int) {
	if g.directed {
		u := e / (g.n - 1)
		r := e % (g.n - 1)
		if r < u {
			return u, r
		}
		return u, r + 1
	}

	// Largest u with u·(u-1)/2 ≤ e; the float estimate is off by at most
	// one for any id in range, fixed up below.
	u := int((1 + math.Sqrt(float64(1+8*e))) / 2)
	for u*(u-1)/2 > e {
		u--
	}
	for (u+1)*u/2 <= e {
		u++
	}

	return u, e - u*(u-1)/2
}

func (g *completeGraph) mustEdge(e int) {
	if !g.edges.Contains(e) {
		panic(fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound))
	}
}

func (g *completeGraph) mustVertex(v int) {
	if !g.vertices.Contains(v) {
		panic(fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound))
	}
}

func (g *completeGraph) EdgeSource(e int) int {
	g.mustEdge(e)
	u, _ := g.decode(e)

	return u
}

func (g *completeGraph) EdgeTarget(e int) int {
	g.mustEdge(e)
	_, v := g.decode(e)

	return v
}

func (g *completeGraph) EdgeEndpoint(e, w int) int {
	g.mustEdge(e)
	u, v := g.decode(e)
	switch w {
	case u:
		return v
	case v:
		return u
	default:
		panic(fmt.Errorf("endpoint of %d: vertex %d is not an endpoint: %w", e, w, ErrVertexNotFound))
	}
}

func (g *completeGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	if u == v {
		return -1, false
	}

	return g.encode(u, v), true
}

func (g *completeGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)
	if u == v {
		return emptyEdgeSet{}
	}
	e := g.encode(u, v)

	return edgeSet{owner: g, pivot: u, pivotSrc: true, list: func() []int { return []int{e} }}
}

func (g *completeGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: g, pivot: v, pivotSrc: true, list: func() []int { return g.incident(v, true) }}
}

func (g *completeGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: g, pivot: v, pivotSrc: false, list: func() []int { return g.incident(v, false) }}
}

// incident enumerates the n-1 edges touching v. Directed graphs pick the
// out or in orientation; undirected graphs yield the same set either way.
func (g *completeGraph) incident(v int, out bool) []int {
	ids := make([]int, 0, g.n-1)
	for w := 0; w < g.n; w++ {
		if w == v {
			continue
		}
		if !g.directed || out {
			ids = append(ids, g.encode(v, w))
		} else {
			ids = append(ids, g.encode(w, v))
		}
	}

	return ids
}
