// SPDX-License-Identifier: MIT
//
// File: linked.go
// Role: Linked-list backend. Each vertex heads an intrusive doubly-linked
//       list of incident edge ids, so removing a known edge is O(1) link
//       surgery instead of an O(degree) slice scan.
//
// Every edge carries two link pairs: slot 0 threads it through its source
// vertex's list and slot 1 through its target vertex's list. Directed
// graphs use slot 0 for the out-list and slot 1 for the in-list (a self
// edge sits in both); undirected graphs thread one incidence list per
// endpoint and store a self edge once, in slot 0.

package graph

const nilLink = -1

type linkedGraph struct {
	base

	// outHead[v] is the first edge of v's out-list (directed) or of its
	// single incidence list (undirected). inHead exists only when directed.
	outHead []int
	inHead  []int

	// next[e] and prev[e] hold the links for edge e's two slots.
	next [][2]int
	prev [][2]int
}

func newLinkedGraph(cfg config) *linkedGraph {
	g := &linkedGraph{
		base:    newBase(cfg),
		outHead: make([]int, 0, cfg.expVertices),
		next:    make([][2]int, 0, cfg.expEdges),
		prev:    make([][2]int, 0, cfg.expEdges),
	}
	if cfg.directed {
		g.inHead = make([]int, 0, cfg.expVertices)
	}

	return g
}

// linkSlot resolves which slot of edge e threads through w's list. The
// directed case is told the list's slot outright because a directed self
// edge answers to both vertices.
func (g *linkedGraph) linkSlot(e, w, listSlot int) int {
	if g.directed {
		return listSlot
	}
	if g.endpoints[2*e+1] == w && g.endpoints[2*e] != w {
		return 1
	}

	return 0
}

func (g *linkedGraph) head(w, listSlot int) int {
	if g.directed && listSlot == 1 {
		return g.inHead[w]
	}

	return g.outHead[w]
}

func (g *linkedGraph) setHead(w, listSlot, e int) {
	if g.directed && listSlot == 1 {
		g.inHead[w] = e
		return
	}
	g.outHead[w] = e
}

// pushFront links edge e to the front of w's list at the given slot.
func (g *linkedGraph) pushFront(e, w, listSlot int) {
	n := g.head(w, listSlot)
	s := g.linkSlot(e, w, listSlot)
	g.next[e][s] = n
	g.prev[e][s] = nilLink
	if n != nilLink {
		g.prev[n][g.linkSlot(n, w, listSlot)] = e
	}
	g.setHead(w, listSlot, e)
}

// unlinkFrom splices edge e out of w's list at the given slot.
func (g *linkedGraph) unlinkFrom(e, w, listSlot int) {
	s := g.linkSlot(e, w, listSlot)
	p, n := g.prev[e][s], g.next[e][s]
	if p == nilLink {
		g.setHead(w, listSlot, n)
	} else {
		g.next[p][g.linkSlot(p, w, listSlot)] = n
	}
	if n != nilLink {
		g.prev[n][g.linkSlot(n, w, listSlot)] = p
	}
}

func (g *linkedGraph) unlink(e int) {
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	g.unlinkFrom(e, u, 0)
	if g.directed || u != v {
		g.unlinkFrom(e, v, 1)
	}
}

func (g *linkedGraph) link(e int) {
	u, v := g.endpoints[2*e], g.endpoints[2*e+1]
	g.pushFront(e, u, 0)
	if g.directed || u != v {
		g.pushFront(e, v, 1)
	}
}

// collectList materializes w's list at the given slot into a fresh slice.
func (g *linkedGraph) collectList(w, listSlot int) []int {
	var out []int
	for e := g.head(w, listSlot); e != nilLink; e = g.next[e][g.linkSlot(e, w, listSlot)] {
		out = append(out, e)
	}

	return out
}

func (g *linkedGraph) AddVertex() (int, error) {
	v := g.addVertexBase()
	g.outHead = append(g.outHead, nilLink)
	if g.directed {
		g.inHead = append(g.inHead, nilLink)
	}

	return v, nil
}

func (g *linkedGraph) AddEdge(u, v int) (int, error) {
	if err := g.checkNewEdge(u, v, g.GetEdge); err != nil {
		return -1, err
	}
	e := g.newEdge(u, v)
	g.next = append(g.next, [2]int{nilLink, nilLink})
	g.prev = append(g.prev, [2]int{nilLink, nilLink})
	g.link(e)
	g.mod++

	return e, nil
}

func (g *linkedGraph) RemoveEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	g.unlink(e)

	last := g.edges.Size() - 1
	if e != last {
		// The last edge id takes over slot e: re-aim every link and head
		// that referenced last before the endpoint table is compacted.
		lu, lv := g.endpoints[2*last], g.endpoints[2*last+1]
		g.retarget(last, e, lu, 0)
		if g.directed || lu != lv {
			g.retarget(last, e, lv, 1)
		}
		g.next[e] = g.next[last]
		g.prev[e] = g.prev[last]
	}
	g.next = g.next[:last]
	g.prev = g.prev[:last]
	g.finishRemoveEdge(e)

	return nil
}

// retarget rewires the neighbors and head of w's list so that references
// to edge old point at edge e instead. old's own links are untouched.
func (g *linkedGraph) retarget(old, e, w, listSlot int) {
	s := g.linkSlot(old, w, listSlot)
	p, n := g.prev[old][s], g.next[old][s]
	if p == nilLink {
		g.setHead(w, listSlot, e)
	} else {
		g.next[p][g.linkSlot(p, w, listSlot)] = e
	}
	if n != nilLink {
		g.prev[n][g.linkSlot(n, w, listSlot)] = e
	}
}

func (g *linkedGraph) RemoveVertex(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if err := g.RemoveEdgesOf(v); err != nil {
		return err
	}

	last := g.vertices.Size() - 1
	if v != last {
		for _, e := range g.collectList(last, 0) {
			g.relabelEdgeVertex(e, last, v)
		}
		if g.directed {
			for _, e := range g.collectList(last, 1) {
				g.relabelEdgeVertex(e, last, v)
			}
		}
		g.outHead[v] = g.outHead[last]
		if g.directed {
			g.inHead[v] = g.inHead[last]
		}
	}
	g.outHead = g.outHead[:last]
	if g.directed {
		g.inHead = g.inHead[:last]
	}
	g.finishRemoveVertex(v)

	return nil
}

func (g *linkedGraph) RemoveEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	for g.outHead[v] != nilLink {
		if err := g.RemoveEdge(g.outHead[v]); err != nil {
			return err
		}
	}
	if g.directed {
		for g.inHead[v] != nilLink {
			if err := g.RemoveEdge(g.inHead[v]); err != nil {
				return err
			}
		}
	}

	return nil
}

func (g *linkedGraph) RemoveOutEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for g.outHead[v] != nilLink {
		if err := g.RemoveEdge(g.outHead[v]); err != nil {
			return err
		}
	}

	return nil
}

func (g *linkedGraph) RemoveInEdgesOf(v int) error {
	if err := g.checkVertex(v); err != nil {
		return err
	}
	if !g.directed {
		return g.RemoveEdgesOf(v)
	}
	for g.inHead[v] != nilLink {
		if err := g.RemoveEdge(g.inHead[v]); err != nil {
			return err
		}
	}

	return nil
}

func (g *linkedGraph) ReverseEdge(e int) error {
	if err := g.checkEdge(e); err != nil {
		return err
	}
	if u, v := g.endpoints[2*e], g.endpoints[2*e+1]; g.directed && u != v {
		if !g.parallelEdges {
			if _, ok := g.GetEdge(v, u); ok {
				return errParallel(v, u)
			}
		}
		g.unlink(e)
		g.swapEndpoints(e)
		g.link(e)
	} else {
		g.swapEndpoints(e)
		if !g.directed && u != v {
			// Link slots are positional on the stored endpoint order, so
			// they must flip together with the endpoints or traversal
			// walks the other endpoint's chain.
			g.next[e][0], g.next[e][1] = g.next[e][1], g.next[e][0]
			g.prev[e][0], g.prev[e][1] = g.prev[e][1], g.prev[e][0]
		}
	}
	g.mod++

	return nil
}

func (g *linkedGraph) ClearEdges() error {
	for v := range g.outHead {
		g.outHead[v] = nilLink
	}
	for v := range g.inHead {
		g.inHead[v] = nilLink
	}
	g.next = g.next[:0]
	g.prev = g.prev[:0]
	g.clearEdgesBase()

	return nil
}

func (g *linkedGraph) Clear() error {
	g.outHead = g.outHead[:0]
	if g.directed {
		g.inHead = g.inHead[:0]
	}
	g.next = g.next[:0]
	g.prev = g.prev[:0]
	g.clearBase()

	return nil
}

func (g *linkedGraph) GetEdge(u, v int) (int, bool) {
	g.mustVertex(u)
	g.mustVertex(v)
	for e := g.head(u, 0); e != nilLink; e = g.next[e][g.linkSlot(e, u, 0)] {
		if g.edgeMatches(e, u, v) {
			return e, true
		}
	}

	return -1, false
}

func (g *linkedGraph) EdgesBetween(u, v int) EdgeSet {
	g.mustVertex(u)
	g.mustVertex(v)

	return edgeSet{
		owner:    &g.base,
		pivot:    u,
		pivotSrc: true,
		list: func() []int {
			var out []int
			for _, e := range g.collectList(u, 0) {
				if g.edgeMatches(e, u, v) {
					out = append(out, e)
				}
			}
			return out
		},
	}
}

func (g *linkedGraph) OutEdges(v int) EdgeSet {
	g.mustVertex(v)

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: true, list: func() []int { return g.collectList(v, 0) }}
}

func (g *linkedGraph) InEdges(v int) EdgeSet {
	g.mustVertex(v)
	slot := 0
	if g.directed {
		slot = 1
	}

	return edgeSet{owner: &g.base, pivot: v, pivotSrc: false, list: func() []int { return g.collectList(v, slot) }}
}
