// SPDX-License-Identifier: MIT
//
// File: csr.go
// Role: Immutable compressed-sparse-row backend produced by Builder.Build
//       and ImmutableCopy. Adjacency lives in one flat edge slice per
//       direction indexed by per-vertex offsets; each vertex's segment is
//       sorted by the opposite endpoint, so GetEdge and EdgesBetween are
//       binary searches over a contiguous range.

package graph

import (
	"fmt"
	"sort"
)

type csrGraph struct {
	base

	// outBegin has n+1 offsets into outEdges; vertex v's out segment
	// (undirected: its whole incidence segment, a self edge once) is
	// outEdges[outBegin[v]:outBegin[v+1]]. inBegin/inEdges exist only
	// when directed.
	outBegin []int
	outEdges []int
	inBegin  []int
	inEdges  []int
}

// immutableMarker is implemented by graphs that are structurally frozen,
// letting ImmutableCopy hand back the receiver unchanged.
type immutableMarker interface {
	immutableGraph()
}

func (g *csrGraph) immutableGraph() {}

// newCSRGraph freezes n vertices and the given flat endpoint pairs into
// compressed adjacency. The caller populates and freezes the weight
// managers afterwards.
func newCSRGraph(cfg config, n int, endpoints []int) *csrGraph {
	m := len(endpoints) / 2
	g := &csrGraph{base: newBase(cfg)}
	g.vertices.AddN(n)
	g.edges.AddN(m)
	g.endpoints = append(make([]int, 0, 2*m), endpoints...)

	g.outBegin, g.outEdges = compressAdjacency(n, m, func(e int) (int, bool) {
		return endpoints[2*e], true
	}, func(e int) (int, bool) {
		if cfg.directed {
			return 0, false
		}
		u, v := endpoints[2*e], endpoints[2*e+1]
		return v, u != v
	}, g.otherOf)
	if cfg.directed {
		g.inBegin, g.inEdges = compressAdjacency(n, m, func(e int) (int, bool) {
			return endpoints[2*e+1], true
		}, func(int) (int, bool) {
			return 0, false
		}, func(e, w int) int {
			return endpoints[2*e]
		})
	}

	return g
}

// compressAdjacency builds offset and edge slices for one direction.
// primary yields the owning vertex of edge e; secondary yields a second
// owner when the edge appears in two segments. keyOf orders each segment.
func compressAdjacency(n, m int, primary, secondary func(int) (int, bool), keyOf func(e, w int) int) ([]int, []int) {
	begin := make([]int, n+1)
	for e := 0; e < m; e++ {
		if w, ok := primary(e); ok {
			begin[w+1]++
		}
		if w, ok := secondary(e); ok {
			begin[w+1]++
		}
	}
	for v := 0; v < n; v++ {
		begin[v+1] += begin[v]
	}

	edges := make([]int, begin[n])
	cursor := append([]int(nil), begin[:n]...)
	for e := 0; e < m; e++ {
		if w, ok := primary(e); ok {
			edges[cursor[w]] = e
			cursor[w]++
		}
		if w, ok := secondary(e); ok {
			edges[cursor[w]] = e
			cursor[w]++
		}
	}

	for v := 0; v < n; v++ {
		seg := edges[begin[v]:begin[v+1]]
		w := v
		sort.Slice(seg, func(i, j int) bool {
			ki, kj := keyOf(seg[i], w), keyOf(seg[j], w)
			if ki != kj {
				return ki < kj
			}
			return seg[i] < seg[j]
		})
	}

	return begin, edges
}

// otherOf returns the endpoint of e opposite w (w itself for a self edge).
func (g *csrGraph) otherOf(e, w int) int {
	if u := g.endpoints[2*e]; u != w {
		return u
	}

	return g.endpoints[2*e+1]
}

func errImmutable(op string) error {
	return fmt.Errorf("%s: %w", op, ErrImmutableGraph)
}

func (g *csrGraph) AddVertex() (int, error)    { return -1, errImmutable("add vertex") }
func (g *csrGraph) RemoveVertex(int) error     { return errImmutable("remove vertex") }
func (g *csrGraph) AddEdge(int, int) (int, error) {
	return -1, errImmutable("add edge")
}
func (g *csrGraph) RemoveEdge(int) error       { return errImmutable("remove edge") }
func (g *csrGraph) RemoveEdgesOf(int) error    { return errImmutable("remove edges of vertex") }
func (g *csrGraph) RemoveOutEdgesOf(int) error { return errImmutable("remove out-edges of vertex") }
func (g *csrGraph) RemoveInEdgesOf(int) error  { return errImmutable("remove in-edges of vertex") }
func (g *csrGraph) ReverseEdge(int) error      { return errImmutable("reverse edge") }
func (g *csrGraph) ClearEdges() error          { return errImmutable("clear edges") }
func (g *csrGraph) Clear() error               { return errImmutable("clear") }

// equalRange returns the subrange of v's segment whose opposite endpoint
// equals w.
func (g *csrGraph) equalRange(begin, edges []int, v, w int, keyOf func(e int) int) []int {
	seg := edges[begin[v]:begin[v+1]]
	lo := sort.Search(len(seg), func(i int) bool { return keyOf(seg[i]) >= w })
	hi := sort.Search(len(seg), func(i int) bool { return keyOf(seg[i]) > w })

	return seg[lo:hi]
}

func (g *csrGraph) outRange(u, v int) []int {
	if g.directed {
		return g.equalRange(g.outBegin, g.outEdges, u, v, func(e int) int { return g.endpoints[2*e+1] })
	}

	return g.equalRange(g.outBegin, g.outEdges, u, v, func(e int) int { return g.otherOf(e, u) })
}

func (g *csrGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	if r := g.outRange(u, v); len(r) > 0 {
		return r[0], true
	}

	return -1, false
}

func (g *csrGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: u, pivotSrc: true, list: func() []int { return g.outRange(u, v) }}
}

func (g *csrGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: true, list: func() []int {
		return g.outEdges[g.outBegin[v]:g.outBegin[v+1]]
	}}
}

func (g *csrGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)
	if !g.directed {
		return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int {
			return g.outEdges[g.outBegin[v]:g.outBegin[v+1]]
		}}
	}

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int {
		return g.inEdges[g.inBegin[v]:g.inBegin[v+1]]
	}}
}
