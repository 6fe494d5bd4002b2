// SPDX-License-Identifier: MIT
// Package graph_test verifies the mutable backends against their shared
// contracts: dense id spaces, swap-and-remove relabeling, capability
// enforcement, rollback on rejected inserts and fail-fast iteration.

package graph_test

import (
	"errors"
	"math/rand"
	"sort"
	"testing"

	"github.com/katalvlaran/densegraph/graph"
	"github.com/katalvlaran/densegraph/weights"
	"github.com/stretchr/testify/require"
)

// mutableImpls lists every backend usable through New.
var mutableImpls = []string{
	graph.ImplArray,
	graph.ImplLinked,
	graph.ImplHashtable,
	graph.ImplMatrix,
}

func sorted(ids []int) []int {
	out := append([]int(nil), ids...)
	sort.Ints(out)

	return out
}

// snapshot captures everything observable about a graph's structure.
type snapshot struct {
	n, m      int
	endpoints [][2]int
	out       [][]int
	in        [][]int
}

func snapshotOf(g graph.Graph) snapshot {
	s := snapshot{n: g.NumVertices(), m: g.NumEdges()}
	for e := 0; e < s.m; e++ {
		s.endpoints = append(s.endpoints, [2]int{g.EdgeSource(e), g.EdgeTarget(e)})
	}
	for v := 0; v < s.n; v++ {
		s.out = append(s.out, sorted(graph.CollectEdges(g.OutEdges(v))))
		s.in = append(s.in, sorted(graph.CollectEdges(g.InEdges(v))))
	}

	return s
}

// TestBackends_VertexLifecycle walks the canonical swap-and-remove
// scenario: a directed triangle loses its middle vertex, the last vertex
// takes over its id and the surviving edge's endpoints follow.
func TestBackends_VertexLifecycle(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)

			for i := 0; i < 3; i++ {
				v, err := g.AddVertex()
				require.NoError(t, err)
				require.Equal(t, i, v)
			}
			mustAddEdge(t, g, 0, 1) // edge 0
			mustAddEdge(t, g, 1, 2) // edge 1
			mustAddEdge(t, g, 2, 0) // edge 2

			require.NoError(t, g.RemoveVertex(1))

			// Vertex 2 was relabeled to 1; only the former edge (2,0)
			// survives, now reading (1,0) under some dense id.
			require.Equal(t, 2, g.NumVertices())
			require.Equal(t, 1, g.NumEdges())
			require.Equal(t, 1, g.EdgeSource(0))
			require.Equal(t, 0, g.EdgeTarget(0))
			e, ok := g.GetEdge(1, 0)
			require.True(t, ok)
			require.Equal(t, 0, e)
			_, ok = g.GetEdge(0, 1)
			require.False(t, ok)
		})
	}
}

func mustAddEdge(t *testing.T, g graph.Graph, u, v int) int {
	t.Helper()
	e, err := g.AddEdge(u, v)
	require.NoError(t, err)

	return e
}

// TestBackends_EdgeSwapRemove checks that removing a non-last edge
// relabels the last edge id into the freed slot on every backend.
func TestBackends_EdgeSwapRemove(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				g.AddVertex()
			}
			mustAddEdge(t, g, 0, 1) // 0
			mustAddEdge(t, g, 1, 2) // 1
			mustAddEdge(t, g, 2, 3) // 2

			require.NoError(t, g.RemoveEdge(0))

			// Former edge 2 now answers to id 0.
			require.Equal(t, 2, g.NumEdges())
			require.Equal(t, 2, g.EdgeSource(0))
			require.Equal(t, 3, g.EdgeTarget(0))
			e, ok := g.GetEdge(2, 3)
			require.True(t, ok)
			require.Equal(t, 0, e)

			require.ErrorIs(t, g.RemoveEdge(5), graph.ErrEdgeNotFound)
		})
	}
}

// TestBackends_CapabilityEnforcement rejects self and parallel edges when
// the capabilities are off, leaving the graph untouched.
func TestBackends_CapabilityEnforcement(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			g.AddVertex()
			g.AddVertex()
			mustAddEdge(t, g, 0, 1)

			_, err = g.AddEdge(0, 0)
			require.ErrorIs(t, err, graph.ErrSelfEdgeNotAllowed)

			_, err = g.AddEdge(0, 1)
			require.ErrorIs(t, err, graph.ErrParallelEdgeNotAllowed)

			_, err = g.AddEdge(0, 5)
			require.ErrorIs(t, err, graph.ErrVertexNotFound)

			// A rejected insert must not leak an edge id: the next valid
			// insert still gets the next dense id.
			require.Equal(t, 1, g.NumEdges())
			require.Equal(t, 1, mustAddEdge(t, g, 1, 0))
		})
	}
}

// TestBackends_SelfAndParallel exercises the capabilities when enabled.
// Matrix is excluded: it can never represent parallel edges.
func TestBackends_SelfAndParallel(t *testing.T) {
	for _, impl := range []string{graph.ImplArray, graph.ImplLinked, graph.ImplHashtable} {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(
				graph.WithDirected(false),
				graph.WithImpl(impl),
				graph.WithSelfEdges(),
				graph.WithParallelEdges(),
			)
			require.NoError(t, err)
			g.AddVertex()
			g.AddVertex()

			self := mustAddEdge(t, g, 0, 0)
			a := mustAddEdge(t, g, 0, 1)
			b := mustAddEdge(t, g, 1, 0)

			// The self edge counts once in its vertex's adjacency.
			require.Equal(t, []int{self, a, b}, sorted(graph.CollectEdges(g.OutEdges(0))))
			require.Equal(t, []int{a, b}, sorted(graph.CollectEdges(g.OutEdges(1))))
			require.Equal(t, 2, g.EdgesBetween(0, 1).Size())

			require.NoError(t, g.RemoveEdge(self))
			require.Equal(t, 2, g.NumEdges())
		})
	}
}

// TestBackends_RemoveDirectionalEdges covers RemoveOutEdgesOf and
// RemoveInEdgesOf on directed graphs, and their collapse to
// RemoveEdgesOf on undirected ones.
func TestBackends_RemoveDirectionalEdges(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				g.AddVertex()
			}
			mustAddEdge(t, g, 1, 0)
			mustAddEdge(t, g, 1, 2)
			mustAddEdge(t, g, 0, 1)
			mustAddEdge(t, g, 3, 1)
			mustAddEdge(t, g, 0, 3)

			require.NoError(t, g.RemoveOutEdgesOf(1))
			require.Equal(t, 3, g.NumEdges())
			require.Equal(t, 0, g.OutEdges(1).Size())
			require.Equal(t, 2, g.InEdges(1).Size())

			require.NoError(t, g.RemoveInEdgesOf(1))
			require.Equal(t, 1, g.NumEdges())
			require.Equal(t, 0, g.InEdges(1).Size())

			// The only survivor is (0,3).
			require.Equal(t, 0, g.EdgeSource(0))
			require.Equal(t, 3, g.EdgeTarget(0))
		})
	}
}

// TestBackends_ReverseEdge flips a directed edge in place, keeping its id.
func TestBackends_ReverseEdge(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			g.AddVertex()
			g.AddVertex()
			g.AddVertex()
			e := mustAddEdge(t, g, 0, 1)
			mustAddEdge(t, g, 1, 2)

			require.NoError(t, g.ReverseEdge(e))
			require.Equal(t, 1, g.EdgeSource(e))
			require.Equal(t, 0, g.EdgeTarget(e))
			_, ok := g.GetEdge(0, 1)
			require.False(t, ok)
			got, ok := g.GetEdge(1, 0)
			require.True(t, ok)
			require.Equal(t, e, got)

			// Reversing into an existing opposite edge would create a
			// parallel pair, which this graph forbids.
			e2, _ := g.GetEdge(1, 2)
			mustAddEdge(t, g, 2, 1)
			require.ErrorIs(t, g.ReverseEdge(e2), graph.ErrParallelEdgeNotAllowed)
		})
	}
}

// TestBackends_ReverseEdgeUndirected: on an undirected graph the stored
// endpoint order flips but every incidence list must stay exactly as it
// was, and follow-up removals still behave.
func TestBackends_ReverseEdgeUndirected(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(false), graph.WithImpl(impl))
			require.NoError(t, err)
			g.AddVertex()
			g.AddVertex()
			g.AddVertex()
			ea := mustAddEdge(t, g, 1, 2)
			eb := mustAddEdge(t, g, 0, 1)

			require.NoError(t, g.ReverseEdge(eb))
			require.Equal(t, 1, g.EdgeSource(eb))
			require.Equal(t, 0, g.EdgeTarget(eb))

			// Vertex 0 still touches eb alone; ea connects 1-2 and must
			// never surface in 0's list.
			require.Equal(t, []int{eb}, graph.CollectEdges(g.OutEdges(0)))
			require.ElementsMatch(t, []int{ea, eb}, graph.CollectEdges(g.OutEdges(1)))
			require.Equal(t, []int{ea}, graph.CollectEdges(g.OutEdges(2)))

			got, ok := g.GetEdge(0, 1)
			require.True(t, ok)
			require.Equal(t, eb, got)
			got, ok = g.GetEdge(1, 0)
			require.True(t, ok)
			require.Equal(t, eb, got)

			// Link surgery after the flip must still splice cleanly.
			require.NoError(t, g.RemoveEdge(eb))
			require.Equal(t, 1, g.NumEdges())
			require.Equal(t, 0, g.OutEdges(0).Size())
			require.NoError(t, g.RemoveVertex(0))
			require.Equal(t, 2, g.NumVertices())
			_, ok = g.GetEdge(0, 1)
			require.True(t, ok)
		})
	}
}

// structure is an edge-id-insensitive description of a graph. Backends
// remove a vertex's incident edges in their own internal orders, so after
// a vertex removal the dense edge ids may legitimately differ between
// backends while the structure stays equal.
type structure struct {
	n, m   int
	pairs  [][2]int
	outAdj [][]int
	inAdj  [][]int
}

func structureOf(g graph.Graph) structure {
	s := structure{n: g.NumVertices(), m: g.NumEdges()}
	for e := 0; e < s.m; e++ {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		if !g.IsDirected() && u > v {
			u, v = v, u
		}
		s.pairs = append(s.pairs, [2]int{u, v})
	}
	sort.Slice(s.pairs, func(i, j int) bool {
		if s.pairs[i][0] != s.pairs[j][0] {
			return s.pairs[i][0] < s.pairs[j][0]
		}
		return s.pairs[i][1] < s.pairs[j][1]
	})
	for v := 0; v < s.n; v++ {
		var out, in []int
		for it := g.OutEdges(v).Iter(); it.Next(); {
			out = append(out, it.Other())
		}
		for it := g.InEdges(v).Iter(); it.Next(); {
			in = append(in, it.Other())
		}
		s.outAdj = append(s.outAdj, sorted(out))
		s.inAdj = append(s.inAdj, sorted(in))
	}

	return s
}

// TestBackends_Equivalence drives all four mutable backends (and a CSR
// copy) through one randomized mutation script and requires equal
// observable structure at every checkpoint. Edges are removed by their
// endpoint pair so every backend drops the same logical edge.
func TestBackends_Equivalence(t *testing.T) {
	for _, directed := range []bool{true, false} {
		name := "undirected"
		if directed {
			name = "directed"
		}
		t.Run(name, func(t *testing.T) {
			graphs := make([]graph.Graph, len(mutableImpls))
			for i, impl := range mutableImpls {
				g, err := graph.New(graph.WithDirected(directed), graph.WithImpl(impl))
				require.NoError(t, err)
				graphs[i] = g
			}

			rng := rand.New(rand.NewSource(7))
			checkpoint := func() {
				want := structureOf(graphs[0])
				for i := 1; i < len(graphs); i++ {
					require.Equal(t, want, structureOf(graphs[i]), "impl %s diverged", mutableImpls[i])
				}
				require.Equal(t, want, structureOf(graph.ImmutableCopy(graphs[0], false)), "csr copy diverged")
			}

			apply := func(op func(g graph.Graph) error) {
				var first error
				for i, g := range graphs {
					err := op(g)
					if i == 0 {
						first = err
						continue
					}
					require.Equal(t, first == nil, err == nil)
				}
			}

			for step := 0; step < 300; step++ {
				n := graphs[0].NumVertices()
				m := graphs[0].NumEdges()
				switch k := rng.Intn(10); {
				case k < 3 || n < 2:
					apply(func(g graph.Graph) error {
						_, err := g.AddVertex()
						return err
					})
				case k < 7:
					u, v := rng.Intn(n), rng.Intn(n)
					apply(func(g graph.Graph) error {
						_, err := g.AddEdge(u, v)
						return err
					})
				case k < 9 && m > 0:
					// Name the doomed edge by its endpoints, not its id.
					e := rng.Intn(m)
					u, v := graphs[0].EdgeSource(e), graphs[0].EdgeTarget(e)
					apply(func(g graph.Graph) error {
						ge, ok := g.GetEdge(u, v)
						require.True(t, ok)
						return g.RemoveEdge(ge)
					})
				case n > 1:
					v := rng.Intn(n)
					apply(func(g graph.Graph) error { return g.RemoveVertex(v) })
				}
				if step%25 == 0 {
					checkpoint()
				}
			}
			checkpoint()
		})
	}
}

// TestIterator_FailFast panics with ErrStructureChanged on the first Next
// after a structural mutation.
func TestIterator_FailFast(t *testing.T) {
	g, err := graph.New(graph.WithDirected(true))
	require.NoError(t, err)
	g.AddVertex()
	g.AddVertex()
	g.AddVertex()
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 0, 2)

	it := g.OutEdges(0).Iter()
	require.True(t, it.Next())

	mustAddEdge(t, g, 1, 2)

	defer func() {
		r := recover()
		require.NotNil(t, r)
		err, ok := r.(error)
		require.True(t, ok)
		require.True(t, errors.Is(err, graph.ErrStructureChanged))
	}()
	it.Next()
}

// TestIterator_Orientation checks Source/Target/Other across out-, in-
// and between-iteration.
func TestIterator_Orientation(t *testing.T) {
	g, err := graph.New(graph.WithDirected(true))
	require.NoError(t, err)
	g.AddVertex()
	g.AddVertex()
	e := mustAddEdge(t, g, 0, 1)

	it := g.OutEdges(0).Iter()
	require.True(t, it.Next())
	require.Equal(t, e, it.Edge())
	require.Equal(t, 0, it.Source())
	require.Equal(t, 1, it.Target())
	require.Equal(t, 1, it.Other())

	it = g.InEdges(1).Iter()
	require.True(t, it.Next())
	require.Equal(t, 0, it.Source())
	require.Equal(t, 1, it.Target())
	require.Equal(t, 0, it.Other())
}

// TestGraph_WeightsFollowRelabel: a weight attached under the old last id
// answers under the new id after swap-and-remove, and freed slots revert
// to the default.
func TestGraph_WeightsFollowRelabel(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			for i := 0; i < 4; i++ {
				g.AddVertex()
			}
			mustAddEdge(t, g, 0, 1) // 0
			mustAddEdge(t, g, 1, 2) // 1
			mustAddEdge(t, g, 2, 3) // 2

			w, err := weights.Attach[float64](g.EdgeWeights(), "cost", 1.0)
			require.NoError(t, err)
			w.Set(0, 5.0)
			w.Set(2, 9.0)

			require.NoError(t, g.RemoveEdge(0))

			// Former edge 2 is now edge 0, carrying its 9.0 along.
			require.Equal(t, 9.0, w.Get(0))
			// The vacated slot reads as the default.
			require.Equal(t, 1.0, w.Get(2))
		})
	}
}

// TestGraph_ClearAndClearEdges reset structure while preserving the
// vertex set for ClearEdges.
func TestGraph_ClearAndClearEdges(t *testing.T) {
	for _, impl := range mutableImpls {
		t.Run(impl, func(t *testing.T) {
			g, err := graph.New(graph.WithDirected(true), graph.WithImpl(impl))
			require.NoError(t, err)
			for i := 0; i < 3; i++ {
				g.AddVertex()
			}
			mustAddEdge(t, g, 0, 1)
			mustAddEdge(t, g, 1, 2)

			require.NoError(t, g.ClearEdges())
			require.Equal(t, 3, g.NumVertices())
			require.Equal(t, 0, g.NumEdges())
			require.Equal(t, 0, g.OutEdges(0).Size())

			// The graph stays usable.
			require.Equal(t, 0, mustAddEdge(t, g, 2, 0))

			require.NoError(t, g.Clear())
			require.Equal(t, 0, g.NumVertices())
			require.Equal(t, 0, g.NumEdges())
		})
	}
}

// TestCopy_PreservesStructureAndWeights round-trips a graph through Copy
// and checks independence of the clone.
func TestCopy_PreservesStructureAndWeights(t *testing.T) {
	g, err := graph.New(graph.WithDirected(true), graph.WithImpl(graph.ImplHashtable))
	require.NoError(t, err)
	for i := 0; i < 3; i++ {
		g.AddVertex()
	}
	mustAddEdge(t, g, 0, 1)
	mustAddEdge(t, g, 1, 2)
	w, err := weights.Attach[int32](g.EdgeWeights(), "cap", 0)
	require.NoError(t, err)
	w.Set(1, 7)

	cp := graph.Copy(g, true)
	require.Equal(t, snapshotOf(g), snapshotOf(cp))

	cw, err := weights.Lookup[int32](cp.EdgeWeights(), "cap")
	require.NoError(t, err)
	require.Equal(t, int32(7), cw.Get(1))

	// Mutating the copy leaves the original alone.
	mustAddEdge(t, cp, 2, 0)
	cw.Set(0, 3)
	require.Equal(t, 2, g.NumEdges())
	require.Equal(t, int32(0), w.Get(0))
}
