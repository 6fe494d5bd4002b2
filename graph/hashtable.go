// SPDX-License-Identifier: MIT
//
// File: hashtable.go
// Role: Hashtable backend. Each vertex maps neighbor id to the slice of
//       edge ids connecting them, giving expected O(1) GetEdge while still
//       admitting self edges and parallel edges.

package graph

type hashGraph struct {
	base

	// out[u][v] lists edges u->v (directed) or all edges between u and v
	// (undirected, where a self edge is keyed once under its own vertex).
	out []map[int][]int
	in  []map[int][]int
}

func newHashGraph(cfg config) *hashGraph {
	g := &hashGraph{
		base: newBase(cfg),
		out:  make([]map[int][]int, 0, cfg.expVertices),
	}
	if cfg.directed {
		g.in = make([]map[int][]int, 0, cfg.expVertices)
	}

	return g
}

func (g *hashGraph) AddVertex() (int, error) {
	v := g.addVertexBase()
	g.out = append(g.out, make(map[int][]int))
	if g.directed {
		g.in = append(g.in, make(map[int][]int))
	}

	return v, nil
}

func (g *hashGraph) AddEdge(u, v int) (int, error) {
	if err := g.checkNewEdge(u, v, g.GetEdge); err != nil {
		return -1, err
	}
	e := g.newEdge(u, v)
	g.out[u][v] = append(g.out[u][v], e)
	if g.directed {
		g.in[v][u] = append(g.in[v][u], e)
	} else if u != v {
		g.out[v][u] = append(g.out[v][u], e)
	}
	g.mod++

	return e, nil
}

func (g *hashGraph) RemoveEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	dropFromBucket(g.out[u], v, e)
	if g.directed {
		dropFromBucket(g.in[v], u, e)
	} else if u != v {
		dropFromBucket(g.out[v], u, e)
	}

	if last := g.edges.Size() - 1; e != last {
		lu, lv := g.endpoints[2*last], g.endpoints[2*last+1]
		replaceInRow(g.out[lu][lv], last, e)
		if g.directed {
			replaceInRow(g.in[lv][lu], last, e)
		} else if lu != lv {
			replaceInRow(g.out[lv][lu], last, e)
		}
	}
	g.finishRemoveEdge(e)

	return nil
}

func (g *hashGraph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.RemoveEdgesOf(v); err != nil {
		return err
	}

	last := g.vertices.Size() - 1
	if v != last {
		// v has no incident edges left, so no bucket anywhere is keyed by
		// it; the last vertex's maps move into slot v and every neighbor's
		// reverse bucket is rekeyed from last to v.
		if g.directed {
			g.relocateVertexMap(g.out, g.in, last, v)
			g.relocateVertexMap(g.in, g.out, last, v)
		} else {
			g.relocateVertexMap(g.out, g.out, last, v)
		}
	}
	g.out = g.out[:last]
	if g.directed {
		g.in = g.in[:last]
	}
	g.finishRemoveVertex(v)

	return nil
}

// relocateVertexMap moves maps[last] into maps[v], rewriting the endpoints
// of its edges and rekeying last to v in each neighbor's entry of rev (the
// map slice holding the opposite direction; same slice when undirected).
func (g *hashGraph) relocateVertexMap(maps, rev []map[int][]int, last, v int) {
	m := maps[last]
	for w, es := range m {
		for _, e := range es {
			g.relabelEdgeVertex(e, last, v)
		}
		if w == last {
			continue // self bucket rekeyed after the loop
		}
		rev[w][v] = rev[w][last]
		delete(rev[w], last)
	}
	if es, ok := m[last]; ok {
		m[v] = es
		delete(m, last)
	}
	maps[v] = m
	maps[last] = nil
}

func (g *hashGraph) RemoveEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	for e, ok := anyEdge(g.out[v]); ok; e, ok = anyEdge(g.out[v]) {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}
	if g.directed {
		for e, ok := anyEdge(g.in[v]); ok; e, ok = anyEdge(g.in[v]) {
			if err := g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *hashGraph) RemoveOutEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for e, ok := anyEdge(g.out[v]); ok; e, ok = anyEdge(g.out[v]) {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}

	return nil
}

func (g *hashGraph) RemoveInEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for e, ok := anyEdge(g.in[v]); ok; e, ok = anyEdge(g.in[v]) {
		if err := g.RemoveEdge(e); err != nil {
			return err
		}
	}

	return nil
}

func (g *hashGraph) ReverseEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	if g.directed && u != v {
		if !g.parallelEdges {
			if _, ok := g.GetEdge(v, u); ok {
				return errParallel(v, u)
			}
		}
		dropFromBucket(g.out[u], v, e)
		dropFromBucket(g.in[v], u, e)
		g.out[v][u] = append(g.out[v][u], e)
		g.in[u][v] = append(g.in[u][v], e)
	}
	g.swapEndpoints(e)
	g.mod++

	return nil
}

func (g *hashGraph) ClearEdges() error {
	for v := range g.out {
		g.out[v] = make(map[int][]int)
	}
	for v := range g.in {
		g.in[v] = make(map[int][]int)
	}
	g.clearEdgesBase()

	return nil
}

func (g *hashGraph) Clear() error {
	g.out = g.out[:0]
	if g.directed {
		g.in = g.in[:0]
	}
	g.clearBase()

	return nil
}

func (g *hashGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	if es := g.out[u][v]; len(es) > 0 {
		return es[0], true
	}

	return -1, false
}

func (g *hashGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: u, pivotSrc: true, list: func() []int { return g.out[u][v] }}
}

func (g *hashGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: true, list: func() []int { return flattenBuckets(g.out[v]) }}
}

func (g *hashGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)
	maps := g.out
	if g.directed {
		maps = g.in
	}

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int { return flattenBuckets(maps[v]) }}
}

// dropFromBucket removes one occurrence of e from m[key], deleting the key
// once its bucket empties.
func dropFromBucket(m map[int][]int, key, e int) {
	es := m[key]
	for i, x := range es {
		if x == e {
			last := len(es) - 1
			es[i] = es[last]
			es = es[:last]
			break
		}
	}
	if len(es) == 0 {
		delete(m, key)
		return
	}
	m[key] = es
}

// anyEdge returns one edge id held by m, if any.
func anyEdge(m map[int][]int) (int, bool) {
	for _, es := range m {
		if len(es) > 0 {
			return es[0], true
		}
	}

	return -1, false
}

func flattenBuckets(m map[int][]int) []int {
	out := make([]int, 0, len(m))
	for _, es := range m {
		out = append(out, es...)
	}

	return out
}
