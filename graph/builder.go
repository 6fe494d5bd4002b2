// SPDX-License-Identifier: MIT
//
// File: builder.go
// Role: Incremental graph construction. A Builder buffers vertices, edges
//       and weights, then materializes them as an immutable CSR graph, a
//       factory-selected mutable graph, or a source-grouped re-indexed
//       CSR graph.
//
// Edges are recorded either with automatically assigned ids (append
// order) or with explicit, caller-chosen ids. The two modes cannot be
// mixed; explicit ids are permuted into a dense {0..m-1} space by
// reconcileEdgeIDs at build time, and weight values follow their edge
// through the permutation.

package graph

import (
	"fmt"

	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

type edgeIDMode int

const (
	modeUnset edgeIDMode = iota
	modeAuto
	modeExplicit
)

// Builder accumulates a graph before choosing its final representation.
// The zero value is not usable; construct with NewBuilder.
type Builder struct {
	cfg  config
	mode edgeIDMode

	vertices *elemset.IndexSet
	edges    *elemset.IndexSet

	// ids[s] is the declared id of the edge recorded in slot s
	// (explicit mode only; empty in auto mode).
	ids       []int
	endpoints []int

	vweights *weights.Manager
	eweights *weights.Manager
}

// NewBuilder creates an empty builder. Capability options (directedness,
// self edges, parallel edges) shape validation here and the built graph;
// impl and hint options take effect in BuildMutable.
func NewBuilder(opts ...Option) *Builder {
	cfg := gatherOptions(opts)
	vs := elemset.New(0)
	es := elemset.New(0)

	return &Builder{
		cfg:      cfg,
		vertices: vs,
		edges:    es,
		vweights: weights.NewManager(vs),
		eweights: weights.NewManager(es),
	}
}

// AddVertex appends one vertex and returns its id.
func (b *Builder) AddVertex() int {
	v := b.vertices.Add()
	b.vweights.EnsureCapacity(v + 1)

	return v
}

// AddVertices appends n vertices at once.
func (b *Builder) AddVertices(n int) {
	b.vertices.AddN(n)
	b.vweights.EnsureCapacity(b.vertices.Size())
}

func (b *Builder) checkEndpoints(u, v int) error {
	if !b.vertices.Contains(u) {
		return fmt.Errorf("vertex %d: %w", u, ErrVertexNotFound)
	}
	if !b.vertices.Contains(v) {
		return fmt.Errorf("vertex %d: %w", v, ErrVertexNotFound)
	}
	if u == v && !b.cfg.selfEdges {
		return fmt.Errorf("edge (%d,%d): %w", u, v, ErrSelfEdgeNotAllowed)
	}

	return nil
}

// AddEdge records an edge with an automatically assigned id (its append
// position) and returns that id. Mixing with AddEdgeWithID is an error.
func (b *Builder) AddEdge(u, v int) (int, error) {
	if b.mode == modeExplicit {
		return -1, fmt.Errorf("auto edge id after explicit ids: %w", ErrMixedEdgeIDs)
	}
	if err := b.checkEndpoints(u, v); err != nil {
		return -1, err
	}
	b.mode = modeAuto
	e := b.edges.Add()
	b.endpoints = append(b.endpoints, u, v)
	b.eweights.EnsureCapacity(e + 1)

	return e, nil
}

// AddEdgeWithID records an edge under a caller-chosen id. Ids may arrive
// in any order; beyond rejecting negative ids immediately, the dense-range
// and uniqueness checks run at build time. Mixing with AddEdge is an
// error.
func (b *Builder) AddEdgeWithID(u, v, id int) error {
	if b.mode == modeAuto {
		return fmt.Errorf("explicit edge id after auto ids: %w", ErrMixedEdgeIDs)
	}
	if id < 0 {
		return fmt.Errorf("edge id %d: %w", id, ErrEdgeIDOutOfRange)
	}
	if err := b.checkEndpoints(u, v); err != nil {
		return err
	}
	b.mode = modeExplicit
	s := b.edges.Add()
	b.ids = append(b.ids, id)
	b.endpoints = append(b.endpoints, u, v)
	b.eweights.EnsureCapacity(s + 1)

	return nil
}

// VertexWeights returns the manager whose values are carried into the
// built graph, keyed by vertex id.
func (b *Builder) VertexWeights() *weights.Manager { return b.vweights }

// EdgeWeights returns the manager whose values are carried into the built
// graph. In explicit-id mode a value set for recording slot s follows the
// edge to its declared id.
func (b *Builder) EdgeWeights() *weights.Manager { return b.eweights }

// NumVertices reports the number of buffered vertices.
func (b *Builder) NumVertices() int { return b.vertices.Size() }

// NumEdges reports the number of buffered edges.
func (b *Builder) NumEdges() int { return b.edges.Size() }

// Clear resets the builder to its empty state, keeping attached weight
// containers (their values revert to defaults).
func (b *Builder) Clear() {
	b.mode = modeUnset
	b.ids = b.ids[:0]
	b.endpoints = b.endpoints[:0]
	b.vertices.Clear()
	b.edges.Clear()
	b.vweights.ClearAll()
	b.eweights.ClearAll()
}

// reconciled returns dense-ordered endpoint pairs and the permutation
// mapping recording slots to final edge ids (nil when ids already match
// slots). The builder's own buffers are left untouched.
func (b *Builder) reconciled() ([]int, []int, error) {
	endpoints := append([]int(nil), b.endpoints...)
	if b.mode != modeExplicit {
		return endpoints, nil, nil
	}
	perm := append([]int(nil), b.ids...)
	ids := append([]int(nil), b.ids...)
	if err := reconcileEdgeIDs(ids, endpoints); err != nil {
		return nil, nil, err
	}

	return endpoints, perm, nil
}

// checkParallel enforces the no-parallel-edges capability over the
// buffered edge multiset.
func (b *Builder) checkParallel(endpoints []int) error {
	if b.cfg.parallelEdges {
		return nil
	}
	seen := make(map[[2]int]struct{}, len(endpoints)/2)
	for e := 0; e*2 < len(endpoints); e++ {
		u, v := endpoints[2*e], endpoints[2*e+1]
		if !b.cfg.directed && u > v {
			u, v = v, u
		}
		pair := [2]int{u, v}
		if _, dup := seen[pair]; dup {
			return errParallel(u, v)
		}
		seen[pair] = struct{}{}
	}

	return nil
}

// Build reconciles explicit ids and returns an immutable CSR graph.
func (b *Builder) Build() (Graph, error) {
	endpoints, perm, err := b.reconciled()
	if err != nil {
		return nil, err
	}
	if err := b.checkParallel(endpoints); err != nil {
		return nil, err
	}

	return b.buildCSR(endpoints, perm)
}

// BuildMutable reconciles explicit ids and returns a mutable graph whose
// backend is chosen exactly as New does.
func (b *Builder) BuildMutable() (Graph, error) {
	endpoints, perm, err := b.reconciled()
	if err != nil {
		return nil, err
	}

	g, err := newFromConfig(b.cfg)
	if err != nil {
		return nil, err
	}
	for v := 0; v < b.vertices.Size(); v++ {
		if _, err := g.AddVertex(); err != nil {
			return nil, err
		}
	}
	for e := 0; e*2 < len(endpoints); e++ {
		if _, err := g.AddEdge(endpoints[2*e], endpoints[2*e+1]); err != nil {
			return nil, err
		}
	}

	b.vweights.CopyTo(g.VertexWeights(), nil)
	b.eweights.CopyTo(g.EdgeWeights(), perm)

	return g, nil
}

// ReIndexing records an edge-id renaming applied by ReIndexAndBuild.
type ReIndexing struct {
	// OldToNew[old] is the id the edge known as old (its reconciled,
	// pre-grouping id) carries in the built graph; NewToOld is the
	// inverse table.
	OldToNew []int
	NewToOld []int
}

// ReIndexAndBuild reconciles explicit ids, then renumbers edges so that
// each vertex's out-edges occupy one contiguous ascending id range, which
// is the natural CSR layout. The returned ReIndexing maps between the
// pre-grouping and final ids; it is nil when the edges were already
// grouped and no renaming happened.
func (b *Builder) ReIndexAndBuild() (Graph, *ReIndexing, error) {
	endpoints, perm, err := b.reconciled()
	if err != nil {
		return nil, nil, err
	}
	if err := b.checkParallel(endpoints); err != nil {
		return nil, nil, err
	}

	n, m := b.vertices.Size(), len(endpoints)/2

	// Stable counting sort of edge ids by source vertex.
	counts := make([]int, n+1)
	for e := 0; e < m; e++ {
		counts[endpoints[2*e]+1]++
	}
	for v := 0; v < n; v++ {
		counts[v+1] += counts[v]
	}
	newToOld := make([]int, m)
	oldToNew := make([]int, m)
	identity := true
	for old := 0; old < m; old++ {
		src := endpoints[2*old]
		nw := counts[src]
		counts[src]++
		newToOld[nw] = old
		oldToNew[old] = nw
		if nw != old {
			identity = false
		}
	}

	if identity {
		g, err := b.buildCSR(endpoints, perm)
		return g, nil, err
	}

	grouped := make([]int, 2*m)
	for nw := 0; nw < m; nw++ {
		old := newToOld[nw]
		grouped[2*nw] = endpoints[2*old]
		grouped[2*nw+1] = endpoints[2*old+1]
	}

	// Compose the reconciliation and grouping permutations so a weight
	// set at recording slot s lands at the edge's final id.
	var total []int
	if perm != nil {
		total = make([]int, m)
		for s := 0; s < m; s++ {
			total[s] = oldToNew[perm[s]]
		}
	} else {
		total = oldToNew
	}

	g, err := b.buildCSR(grouped, total)
	if err != nil {
		return nil, nil, err
	}

	return g, &ReIndexing{OldToNew: oldToNew, NewToOld: newToOld}, nil
}

func (b *Builder) buildCSR(endpoints, perm []int) (Graph, error) {
	g := newCSRGraph(b.cfg, b.vertices.Size(), endpoints)
	b.vweights.CopyTo(g.vweights, nil)
	b.eweights.CopyTo(g.eweights, perm)
	g.vweights.Freeze()
	g.eweights.Freeze()

	return g, nil
}
