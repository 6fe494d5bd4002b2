// SPDX-License-Identifier: MIT
//
// File: copy.go
// Role: Whole-graph copy constructors. Copy materializes any Graph as a
//       fresh mutable array-backed graph; ImmutableCopy compacts it into
//       CSR form. Both preserve vertex and edge ids, which are dense in
//       every implementation.

package graph

// Copy returns a mutable array-backed graph with the same vertices,
// edges, ids and capabilities as g. Weight containers are cloned when
// copyWeights is set.
func Copy(g Graph, copyWeights bool) Graph {
	cfg := configOf(g)
	cfg.impl = ImplArray
	cfg.expVertices = g.NumVertices()
	cfg.expEdges = g.NumEdges()

	dst := newArrayGraph(cfg)
	for v := 0; v < g.NumVertices(); v++ {
		dst.AddVertex()
	}
	for e := 0; e < g.NumEdges(); e++ {
		u, v := g.EdgeSource(e), g.EdgeTarget(e)
		dst.base.edges.Add()
		dst.endpoints = append(dst.endpoints, u, v)
		dst.out[u] = append(dst.out[u], e)
		if cfg.directed {
			dst.in[v] = append(dst.in[v], e)
		} else if u != v {
			dst.out[v] = append(dst.out[v], e)
		}
	}
	dst.eweights.EnsureCapacity(g.NumEdges())

	if copyWeights {
		g.VertexWeights().CopyTo(dst.VertexWeights(), nil)
		g.EdgeWeights().CopyTo(dst.EdgeWeights(), nil)
	}

	return dst
}

// ImmutableCopy returns a CSR graph with the same vertices, edges, ids
// and capabilities as g. A graph that already is CSR is returned as-is.
func ImmutableCopy(g Graph, copyWeights bool) Graph {
	if c, ok := g.(*csrGraph); ok {
		return c
	}

	m := g.NumEdges()
	endpoints := make([]int, 0, 2*m)
	for e := 0; e < m; e++ {
		endpoints = append(endpoints, g.EdgeSource(e), g.EdgeTarget(e))
	}

	dst := newCSRGraph(configOf(g), g.NumVertices(), endpoints)
	if copyWeights {
		g.VertexWeights().CopyTo(dst.vweights, nil)
		g.EdgeWeights().CopyTo(dst.eweights, nil)
	}
	dst.vweights.Freeze()
	dst.eweights.Freeze()

	return dst
}

func configOf(g Graph) config {
	return config{
		directed:      g.IsDirected(),
		selfEdges:     g.AllowSelfEdges(),
		parallelEdges: g.AllowParallelEdges(),
	}
}
