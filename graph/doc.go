// Package graph is a mutable, dense-integer-indexed directed/undirected
// multigraph engine with interchangeable adjacency representations,
// automatically maintained typed weight arrays, and zero-copy structural
// views.
//
// Vertices and edges are identified by dense indices 0..n-1 / 0..m-1 that
// never have gaps: removing an element relabels the current last element
// into the vacated slot in O(1) (see package elemset). Weight containers
// attached through the graph's weights.Manager follow every relabel
// transparently.
//
// Five adjacency backends implement the same Graph contract:
//
//	array       - per-vertex growable edge-id slices; the default.
//	linked-list - intrusive doubly-linked edge lists over index arrays;
//	              O(1) edge removal, preferred for heavy point-removal.
//	hashtable   - per-vertex neighbor→edges maps; expected O(1) GetEdge.
//	matrix      - dense n×n edge-id table; O(1) worst-case lookup,
//	              O(n²) memory, no parallel edges.
//	csr         - compressed sparse row; immutable, built by a Builder or
//	              by ImmutableCopy.
//
// New selects a backend from capability flags and hints; Builder stages
// vertices and edges (optionally under caller-chosen edge ids, reconciled
// into canonical dense positions at build time) and instantiates a
// mutable or compacted immutable graph. ReverseView, UndirectedView and
// ImmutableView wrap any Graph without copying storage.
//
// The engine is single-writer: no operation synchronizes internally, and
// concurrent mutation is undefined behavior. Iterators are fail-fast -
// structural mutation invalidates outstanding iterators, which panic with
// ErrStructureChanged on their next use while the graph itself stays
// intact.
package graph
