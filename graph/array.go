// SPDX-License-Identifier: MIT
//
// File: array.go
// Role: Default backend. Each vertex holds a growable slice of incident
//       edge ids; directed graphs keep separate out and in slices.
//
// Trade-offs: O(degree) edge removal (search plus shrink); vertex removal
// relabels the last vertex into the removed slot, rewriting the endpoints
// of every edge touching the relabeled vertex.

package graph

type arrayGraph struct {
	base

	// out[v] lists edges leaving v. Undirected graphs keep every incident
	// edge here (a self-edge stored once) and leave in unused.
	out [][]int
	in  [][]int
}

func newArrayGraph(cfg config) *arrayGraph {
	g := &arrayGraph{
		base: newBase(cfg),
		out:  make([][]int, 0, cfg.expVertices),
	}
	if cfg.directed {
		g.in = make([][]int, 0, cfg.expVertices)
	}

	return g
}

func (g *arrayGraph) AddVertex() (int, error) {
	v := g.addVertexBase()
	g.out = append(g.out, nil)
	if g.directed {
		g.in = append(g.in, nil)
	}

	return v, nil
}

func (g *arrayGraph) AddEdge(u, v int) (int, error) {
	if err := g.checkNewEdge(u, v, g.GetEdge); err != nil {
		return -1, err
	}
	e := g.newEdge(u, v)
	g.out[u] = append(g.out[u], e)
	if g.directed {
		g.in[v] = append(g.in[v], e)
	} else if u != v {
		g.out[v] = append(g.out[v], e)
	}
	g.mod++

	return e, nil
}

func (g *arrayGraph) RemoveEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	dropFromRow(&g.out[u], e)
	if g.directed {
		dropFromRow(&g.in[v], e)
	} else if u != v {
		dropFromRow(&g.out[v], e)
	}

	if last := g.edges.Size() - 1; e != last {
		// Relabel the last edge id into e's slot inside the rows.
		lu, lv := g.endpoints[2*last], g.endpoints[2*last+1]
		replaceInRow(g.out[lu], last, e)
		if g.directed {
			replaceInRow(g.in[lv], last, e)
		} else if lu != lv {
			replaceInRow(g.out[lv], last, e)
		}
	}
	g.finishRemoveEdge(e)

	return nil
}

func (g *arrayGraph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.RemoveEdgesOf(v); err != nil {
		return err
	}

	last := g.vertices.Size() - 1
	if v != last {
		for _, e := range g.out[last] {
			g.relabelEdgeVertex(e, last, v)
		}
		if g.directed {
			for _, e := range g.in[last] {
				g.relabelEdgeVertex(e, last, v)
			}
		}
		g.out[v] = g.out[last]
		if g.directed {
			g.in[v] = g.in[last]
		}
	}
	g.out = g.out[:last]
	if g.directed {
		g.in = g.in[:last]
	}
	g.finishRemoveVertex(v)

	return nil
}

func (g *arrayGraph) RemoveEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.out[v][0]); err != nil {
			return err
		}
	}
	if g.directed {
		for len(g.in[v]) > 0 {
			if err := g.RemoveEdge(g.in[v][0]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *arrayGraph) RemoveOutEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for len(g.out[v]) > 0 {
		if err := g.RemoveEdge(g.out[v][0]); err != nil {
			return err
		}
	}

	return nil
}

func (g *arrayGraph) RemoveInEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for len(g.in[v]) > 0 {
		if err := g.RemoveEdge(g.in[v][0]); err != nil {
			return err
		}
	}

	return nil
}

func (g *arrayGraph) ReverseEdge(e int) error {
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
		dropFromRow(&g.out[u], e)
		dropFromRow(&g.in[v], e)
		g.out[v] = append(g.out[v], e)
		g.in[u] = append(g.in[u], e)
	}
	g.swapEndpoints(e)
	g.mod++

	return nil
}

func (g *arrayGraph) ClearEdges() error {
	for v := range g.out {
		g.out[v] = g.out[v][:0]
	}
	for v := range g.in {
		g.in[v] = g.in[v][:0]
	}
	g.clearEdgesBase()

	return nil
}

func (g *arrayGraph) Clear() error {
	g.out = g.out[:0]
	if g.directed {
		g.in = g.in[:0]
	}
	g.clearBase()

	return nil
}

func (g *arrayGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	for _, e := range g.out[u] {
		if g.edgeMatches(e, u, v) {
			return e, true
		}
	}

	return -1, false
}

func (g *arrayGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)

	return edgeSet{
		owner: &g.base,
		pivot: u,
		pivotSrc: true,
		list: func() []int {
			var out []int
			for _, e := range g.out[u] {
				if g.edgeMatches(e, u, v) {
					out = append(out, e)
				}
			}
			return out
		},
	}
}

func (g *arrayGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: true, list: func() []int { return g.out[v] }}
}

func (g *arrayGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)
	if !g.directed {
		return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int { return g.out[v] }}
	}

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int { return g.in[v] }}
}

// dropFromRow removes one occurrence of e, swapping the row's last entry
// into its place (row order is not part of the contract).
func dropFromRow(row *[]int, e int) {
	r := *row
	for i, x := range r {
		if x == e {
			last := len(r) - 1
			r[i] = r[last]
			*row = r[:last]
			return
		}
	}
}

// replaceInRow rewrites one occurrence of old with repl.
func replaceInRow(row []int, old, repl int) {
	for i, x := range row {
		if x == old {
			row[i] = repl
			return
		}
	}
}
