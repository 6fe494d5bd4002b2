// SPDX-License-Identifier: MIT
//
// File: base.go
// Role: Shared core embedded by value in every backend: the two element
//       sets, the flat endpoint table, the weight managers, capability
//       flags and the structural-modification counter.

package graph

import (
	"fmt"

	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

// base owns everything the five backends share. Backends keep their
// adjacency structure consistent manually and delegate element identity,
// endpoint storage and weight bookkeeping here.
type base struct {
	vertices *elemset.IndexSet
	edges    *elemset.IndexSet

	// endpoints is the flat endpoint table: endpoints[2e] is the source
	// and endpoints[2e+1] the target of edge e. Always exactly 2m long.
	endpoints []int

	vweights *weights.Manager
	eweights *weights.Manager

	directed      bool
	selfEdges     bool
	parallelEdges bool

	// mod counts structural mutations; outstanding iterators compare
	// against it to fail fast.
	mod int
}

func newBase(cfg config) base {
	vs := elemset.New(0)
	es := elemset.New(0)

	return base{
		vertices:      vs,
		edges:         es,
		endpoints:     make([]int, 0, 2*cfg.expEdges),
		vweights:      weights.NewManager(vs),
		eweights:      weights.NewManager(es),
		directed:      cfg.directed,
		selfEdges:     cfg.selfEdges,
		parallelEdges: cfg.parallelEdges,
	}
}

// Capability flags (fixed at construction).

func (b *base) IsDirected() bool         { return b.directed }
func (b *base) AllowSelfEdges() bool     { return b.selfEdges }
func (b *base) AllowParallelEdges() bool { return b.parallelEdges }

// Set cardinality and membership.

func (b *base) NumVertices() int         { return b.vertices.Size() }
func (b *base) NumEdges() int            { return b.edges.Size() }
func (b *base) ContainsVertex(v int) bool { return b.vertices.Contains(v) }
func (b *base) ContainsEdge(e int) bool   { return b.edges.Contains(e) }

// Weight managers.

func (b *base) VertexWeights() *weights.Manager { return b.vweights }
func (b *base) EdgeWeights() *weights.Manager   { return b.eweights }

// Removal-listener registration, forwarded to the element sets.

func (b *base) OnVertexRemove(l elemset.RemoveListener)  { b.vertices.OnRemove(l) }
func (b *base) OffVertexRemove(l elemset.RemoveListener) { b.vertices.OffRemove(l) }
func (b *base) OnEdgeRemove(l elemset.RemoveListener)    { b.edges.OnRemove(l) }
func (b *base) OffEdgeRemove(l elemset.RemoveListener)   { b.edges.OffRemove(l) }

// Endpoint accessors. Index violations are programmer errors and panic.

// EdgeSource returns the source vertex of e.
func (b *base) EdgeSource(e int) int {
	b.mustEdge(e)

	return b.endpoints[2*e]
}

// EdgeTarget returns the target vertex of e.
func (b *base) EdgeTarget(e int) int {
	b.mustEdge(e)

	return b.endpoints[2*e+1]
}

// EdgeEndpoint returns the endpoint of e other than w.
func (b *base) EdgeEndpoint(e, w int) int {
	b.mustEdge(e)
	u, v := b.endpoints[2*e], b.endpoints[2*e+1]
	switch w {
	case u:
		return v
	case v:
		return u
	default:
		panic(fmt.Errorf("endpoint of %d: vertex %d is not an endpoint: %w", e, w, ErrVertexNotFound))
	}
}

// edgeMatches reports whether edge e connects u to v under this graph's
// orientation semantics (u is assumed to be an endpoint of e already).
func (b *base) edgeMatches(e, u, v int) bool {
	s, t := b.endpoints[2*e], b.endpoints[2*e+1]
	if b.directed {
		return s == u && t == v
	}

	return (s == u && t == v) || (s == v && t == u)
}

func (b *base) mustEdge(e int) {
	if !b.edges.Contains(e) {
		panic(fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound))
	}
}

func (b *base) mustVertex(v int) {
	if !b.vertices.Contains(v) {
		panic(fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound))
	}
}

func (b *base) checkVertex(v int) error {
	if !b.vertices.Contains(v) {
		return fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}

	return nil
}

func (b *base) checkEdge(e int) error {
	if !b.edges.Contains(e) {
		return fmt.Errorf("edge %d: %w", e, ErrEdgeNotFound)
	}

	return nil
}

// checkNewEdge validates endpoints and capabilities of a prospective edge
// before any state changes. lookup is the backend's GetEdge used for the
// parallel-edge check.
func (b *base) checkNewEdge(u, v int, lookup func(int, int) (int, bool)) error {
	if err := b.checkVertex(u); err != nil {
		return err
	}
	if err := b.checkVertex(v); err != nil {
		return err
	}
	if u == v && !b.selfEdges {
		return fmt.Errorf("edge (%d,%d): %w", u, v, ErrSelfEdgeNotAllowed)
	}
	if !b.parallelEdges && lookup != nil {
		if _, ok := lookup(u, v); ok {
			return errParallel(u, v)
		}
	}

	return nil
}

func (b *base) modCount() int { return b.mod }

func errParallel(u, v int) error {
	return fmt.Errorf("edge (%d,%d): %w", u, v, ErrParallelEdgeNotAllowed)
}

// addVertexBase reserves a new vertex id and grows vertex weights.
func (b *base) addVertexBase() int {
	v := b.vertices.Add()
	b.vweights.EnsureCapacity(v + 1)
	b.mod++

	return v
}

// newEdge reserves a new edge id, grows edge weights and records the
// endpoints. Callers that fail afterwards must call rollBackEdge.
func (b *base) newEdge(u, v int) int {
	e := b.edges.Add()
	b.eweights.EnsureCapacity(e + 1)
	b.endpoints = append(b.endpoints, u, v)

	return e
}

// rollBackEdge undoes an immediately preceding newEdge, leaving the graph
// exactly as it was before the aborted AddEdge.
func (b *base) rollBackEdge(e int) {
	b.edges.RollBackAdd(e)
	b.endpoints = b.endpoints[:2*e]
}

// finishRemoveEdge relabels the last edge's endpoints into e's slot,
// fires removal listeners (weight managers relabel here) and shrinks the
// edge set. The backend must already have removed e from its adjacency
// structure and relabeled the last edge id inside it.
func (b *base) finishRemoveEdge(e int) {
	last := b.edges.Size() - 1
	if e != last {
		b.endpoints[2*e] = b.endpoints[2*last]
		b.endpoints[2*e+1] = b.endpoints[2*last+1]
	}
	b.edges.SwapAndRemove(e, last)
	b.endpoints = b.endpoints[:2*last]
	b.mod++
}

// finishRemoveVertex fires removal listeners and shrinks the vertex set.
// The backend must already have removed v's edges and relabeled the last
// vertex inside its adjacency structure and the endpoint table.
func (b *base) finishRemoveVertex(v int) {
	b.vertices.SwapAndRemove(v, b.vertices.Size()-1)
	b.mod++
}

// relabelEdgeVertex rewrites every occurrence of vertex from among e's
// endpoints to to. A self-edge has both endpoints rewritten at once, so a
// second call for the other adjacency direction is a no-op.
func (b *base) relabelEdgeVertex(e, from, to int) {
	if b.endpoints[2*e] == from {
		b.endpoints[2*e] = to
	}
	if b.endpoints[2*e+1] == from {
		b.endpoints[2*e+1] = to
	}
}

// swapEndpoints reverses the stored orientation of e.
func (b *base) swapEndpoints(e int) {
	b.endpoints[2*e], b.endpoints[2*e+1] = b.endpoints[2*e+1], b.endpoints[2*e]
}

// clearEdgesBase resets edge identity, endpoint storage and edge weights.
func (b *base) clearEdgesBase() {
	b.edges.Clear()
	b.eweights.ClearAll()
	b.endpoints = b.endpoints[:0]
	b.mod++
}

// clearBase resets everything.
func (b *base) clearBase() {
	b.clearEdgesBase()
	b.vertices.Clear()
	b.vweights.ClearAll()
}
