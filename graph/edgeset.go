// SPDX-License-Identifier: MIT
//
// File: edgeset.go
// Role: Shared EdgeSet/EdgeIter machinery used by every backend that can
//       present an adjacency bucket as an edge-id slice.

package graph

import "fmt"

// setOwner is what the shared edge-set machinery needs from a graph:
// endpoint resolution for iteration and the modification counter backing
// fail-fast checks (immutable graphs report a constant).
type setOwner interface {
	EdgeEndpoint(e, w int) int
	modCount() int
}

// edgeSet is the slice-backed EdgeSet shared by the backends. list is
// re-evaluated on every access, so the set is a live view; iterators
// snapshot the slice and fail fast through the owner's mod counter.
//
// pivotSrc orients iteration: true presents the pivot as Source (out- and
// between-iteration), false as Target (in-iteration).
type edgeSet struct {
	owner    setOwner
	list     func() []int
	pivot    int
	pivotSrc bool
}

func (s edgeSet) Size() int { return len(s.list()) }

func (s edgeSet) Iter() EdgeIter {
	return &edgeIter{
		owner:    s.owner,
		edges:    s.list(),
		pivot:    s.pivot,
		pivotSrc: s.pivotSrc,
		mod:      s.owner.modCount(),
		cur:      -1,
	}
}

type edgeIter struct {
	owner    setOwner
	edges    []int
	pivot    int
	pivotSrc bool
	mod      int
	i        int
	cur      int
}

func (it *edgeIter) Next() bool {
	if it.mod != it.owner.modCount() {
		panic(fmt.Errorf("edge iteration: %w", ErrStructureChanged))
	}
	if it.i >= len(it.edges) {
		return false
	}
	it.cur = it.edges[it.i]
	it.i++

	return true
}

func (it *edgeIter) Edge() int {
	it.mustStarted()

	return it.cur
}

func (it *edgeIter) Other() int {
	it.mustStarted()

	return it.owner.EdgeEndpoint(it.cur, it.pivot)
}

func (it *edgeIter) Source() int {
	if it.pivotSrc {
		return it.pivot
	}

	return it.Other()
}

func (it *edgeIter) Target() int {
	if it.pivotSrc {
		return it.Other()
	}

	return it.pivot
}

func (it *edgeIter) mustStarted() {
	if it.cur < 0 {
		panic("graph: iterator accessed before Next")
	}
}

// CollectEdges drains an EdgeSet into a fresh slice of edge ids, in
// iteration order. A convenience for callers and tests.
func CollectEdges(s EdgeSet) []int {
	out := make([]int, 0, s.Size())
	for it := s.Iter(); it.Next(); {
		out = append(out, it.Edge())
	}

	return out
}

// emptyEdgeSet is the canonical empty set.
type emptyEdgeSet struct{}

func (emptyEdgeSet) Size() int      { return 0 }
func (emptyEdgeSet) Iter() EdgeIter { return emptyEdgeIter{} }

type emptyEdgeIter struct{}

func (emptyEdgeIter) Next() bool  { return false }
func (emptyEdgeIter) Edge() int   { panic("graph: iterator accessed before Next") }
func (emptyEdgeIter) Source() int { panic("graph: iterator accessed before Next") }
func (emptyEdgeIter) Target() int { panic("graph: iterator accessed before Next") }
func (emptyEdgeIter) Other() int  { panic("graph: iterator accessed before Next") }
