// SPDX-License-Identifier: MIT
//
// File: matrix.go
// Role: Adjacency-matrix backend. A dense n×n table of edge ids gives O(1)
//       worst-case GetEdge at O(n²) memory and O(n) adjacency iteration.
//       Parallel edges are structurally impossible; a self edge, when the
//       capability allows it, lives on the diagonal.

package graph

const noEdge = -1

type matrixGraph struct {
	base

	// rows[u][v] holds the edge id from u to v, or noEdge. Undirected
	// graphs mirror every off-diagonal cell.
	rows [][]int
}

func newMatrixGraph(cfg config) *matrixGraph {
	return &matrixGraph{
		base: newBase(cfg),
		rows: make([][]int, 0, cfg.expVertices),
	}
}

func (g *matrixGraph) AddVertex() (int, error) {
	v := g.addVertexBase()
	n := v + 1
	for u := range g.rows {
		g.rows[u] = append(g.rows[u], noEdge)
	}
	row := make([]int, n)
	for i := range row {
		row[i] = noEdge
	}
	g.rows = append(g.rows, row)

	return v, nil
}

func (g *matrixGraph) AddEdge(u, v int) (int, error) {
	// The cell itself is the parallel-edge check, performed after the id
	// is reserved so a rejected insert rolls the reservation back.
	if err := g.checkNewEdge(u, v, nil); err != nil {
		return -1, err
	}
	e := g.newEdge(u, v)
	if g.rows[u][v] != noEdge {
		g.rollBackEdge(e)
		return -1, errParallel(u, v)
	}
	g.rows[u][v] = e
	if !g.directed && u != v {
		g.rows[v][u] = e
	}
	g.mod++

	return e, nil
}

func (g *matrixGraph) RemoveEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	g.clearCell(u, v)

	if last := g.edges.Size() - 1; e != last {
		lu, lv := g.endpoints[2*last], g.endpoints[2*last+1]
		g.setCell(lu, lv, e)
	}
	g.finishRemoveEdge(e)

	return nil
}

func (g *matrixGraph) setCell(u, v, e int) {
	g.rows[u][v] = e
	if !g.directed && u != v {
		g.rows[v][u] = e
	}
}

func (g *matrixGraph) clearCell(u, v int) { g.setCell(u, v, noEdge) }

func (g *matrixGraph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.RemoveEdgesOf(v); err != nil {
		return err
	}

	last := g.vertices.Size() - 1
	if v != last {
		for _, e := range g.rows[last] {
			if e != noEdge {
				g.relabelEdgeVertex(e, last, v)
			}
		}
		if g.directed {
			for u := range g.rows {
				if e := g.rows[u][last]; e != noEdge {
					g.relabelEdgeVertex(e, last, v)
				}
			}
		}
		g.rows[v] = g.rows[last]
		for u := 0; u < last; u++ {
			g.rows[u][v] = g.rows[u][last]
		}
		g.rows[v][v] = g.rows[v][last]
	}
	g.rows = g.rows[:last]
	for u := range g.rows {
		g.rows[u] = g.rows[u][:last]
	}
	g.finishRemoveVertex(v)

	return nil
}

func (g *matrixGraph) RemoveEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	for _, e := range g.rows[v] {
		if e != noEdge {
			if err := g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}
	if g.directed {
		for u := range g.rows {
			if e := g.rows[u][v]; e != noEdge {
				if err := g.RemoveEdge(e); err != nil {
					return err
				}
			}
		}
	}

	return nil
}

func (g *matrixGraph) RemoveOutEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for _, e := range g.rows[v] {
		if e != noEdge {
			if err := g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *matrixGraph) RemoveInEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for u := range g.rows {
		if e := g.rows[u][v]; e != noEdge {
			if err := g.RemoveEdge(e); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *matrixGraph) ReverseEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	if g.directed && u != v {
		if g.rows[v][u] != noEdge {
			return errParallel(v, u)
		}
		g.rows[u][v] = noEdge
		g.rows[v][u] = e
	}
	g.swapEndpoints(e)
	g.mod++

	return nil
}

func (g *matrixGraph) ClearEdges() error {
	for u := range g.rows {
		for v := range g.rows[u] {
			g.rows[u][v] = noEdge
		}
	}
	g.clearEdgesBase()

	return nil
}

func (g *matrixGraph) Clear() error {
	g.rows = g.rows[:0]
	g.clearBase()

	return nil
}

func (g *matrixGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	if e := g.rows[u][v]; e != noEdge {
		return e, true
	}

	return -1, false
}

func (g *matrixGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)

	return edgeSet{
		owner:    &g.base,
		pivot:    u,
		pivotSrc: true,
		list: func() []int {
			if e := g.rows[u][v]; e != noEdge {
				return []int{e}
			}
			return nil
		},
	}
}

func (g *matrixGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: true, list: func() []int { return collectRow(g.rows[v]) }}
}

func (g *matrixGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)
	if !g.directed {
		return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int { return collectRow(g.rows[v]) }}
	}

	return edgeSet{
		owner:    &g.base,
		pivot:    v,
		pivotSrc: false,
		list: func() []int {
			var out []int
			for u := range g.rows {
				if e := g.rows[u][v]; e != noEdge {
					out = append(out, e)
				}
			}
			return out
		},
	}
}

func collectRow(row []int) []int {
	var out []int
	for _, e := range row {
		if e != noEdge {
			out = append(out, e)
		}
	}

	return out
}
