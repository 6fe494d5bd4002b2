// Package graph core types: the Graph contract, edge-set iteration,
// sentinel errors and backend names.
//
// Error policy follows the module convention: mutating operations return
// package-prefixed sentinel errors branched with errors.Is; pure index
// accessors (EdgeSource, EdgeTarget, EdgeEndpoint, iterator access) treat
// an out-of-range index as a programmer error and panic, matching slice
// indexing semantics.
package graph

import (
	"errors"

	"github.com/katalvlaran/densegraph/elemset"
	"github.com/katalvlaran/densegraph/weights"
)

// Sentinel errors for graph operations.
var (
	// ErrVertexNotFound indicates a vertex index outside [0, NumVertices).
	ErrVertexNotFound = errors.New("graph: vertex not found")

	// ErrEdgeNotFound indicates an edge index outside [0, NumEdges).
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrSelfEdgeNotAllowed indicates AddEdge(v, v) on a graph whose
	// capabilities forbid self-edges.
	ErrSelfEdgeNotAllowed = errors.New("graph: self-edges not allowed")

	// ErrParallelEdgeNotAllowed indicates a second edge between the same
	// endpoints on a graph whose capabilities forbid parallel edges.
	ErrParallelEdgeNotAllowed = errors.New("graph: parallel edges not allowed")

	// ErrImmutableGraph indicates a mutating operation on an immutable
	// graph (CSR, complete graph, or an ImmutableView).
	ErrImmutableGraph = errors.New("graph: graph is immutable")

	// ErrMixedEdgeIDs indicates a Builder mixed auto-numbered and
	// explicit-id edge addition.
	ErrMixedEdgeIDs = errors.New("graph: cannot mix auto and explicit edge ids")

	// ErrEdgeIDOutOfRange indicates a Builder edge id outside the dense
	// range 0..m-1, detected at build time.
	ErrEdgeIDOutOfRange = errors.New("graph: edge id out of range")

	// ErrDuplicateEdgeID indicates the same edge id was declared twice in
	// a Builder, detected at build time.
	ErrDuplicateEdgeID = errors.New("graph: duplicate edge id")

	// ErrUnknownImpl indicates WithImpl received a name that is not one of
	// the backend kinds.
	ErrUnknownImpl = errors.New("graph: unknown backend name")

	// ErrCapabilityMismatch indicates an explicit backend override is
	// incompatible with the requested capabilities.
	ErrCapabilityMismatch = errors.New("graph: backend incompatible with capabilities")

	// ErrStructureChanged is the panic payload of a fail-fast iterator
	// whose graph mutated structurally after the iterator was created.
	ErrStructureChanged = errors.New("graph: structure changed during iteration")
)

// Backend names accepted by WithImpl.
const (
	ImplArray     = "array"
	ImplLinked    = "linked-list"
	ImplHashtable = "hashtable"
	ImplMatrix    = "matrix"
	ImplCSR       = "csr"
)

// Graph is the common contract of every adjacency backend and view.
//
// All indices are dense: vertices are exactly 0..NumVertices()-1 and edges
// 0..NumEdges()-1 at all times. Removal relabels the last element into the
// removed slot; register removal listeners to track relabels.
//
// Implementations perform no internal synchronization (single writer).
type Graph interface {
	// IsDirected reports whether edges are ordered pairs.
	IsDirected() bool
	// AllowSelfEdges reports whether AddEdge(v, v) is permitted.
	AllowSelfEdges() bool
	// AllowParallelEdges reports whether two edges may share endpoints.
	AllowParallelEdges() bool

	// NumVertices returns the number of vertices.
	NumVertices() int
	// NumEdges returns the number of edges.
	NumEdges() int
	// ContainsVertex reports whether 0 <= v < NumVertices().
	ContainsVertex(v int) bool
	// ContainsEdge reports whether 0 <= e < NumEdges().
	ContainsEdge(e int) bool

	// AddVertex appends a new vertex and returns its index.
	AddVertex() (int, error)
	// RemoveVertex removes v and all its incident edges, then relabels
	// the last vertex into v's slot.
	RemoveVertex(v int) error
	// AddEdge appends a new edge u->v and returns its index. The
	// operation either fully succeeds or leaves the graph unchanged.
	AddEdge(u, v int) (int, error)
	// RemoveEdge removes e, relabeling the last edge into its slot.
	RemoveEdge(e int) error
	// RemoveEdgesOf removes every edge incident to v.
	RemoveEdgesOf(v int) error
	// RemoveOutEdgesOf removes every out-edge of v. Equals RemoveEdgesOf
	// on undirected graphs.
	RemoveOutEdgesOf(v int) error
	// RemoveInEdgesOf removes every in-edge of v. Equals RemoveEdgesOf on
	// undirected graphs.
	RemoveInEdgesOf(v int) error
	// ReverseEdge swaps the source and target of e. A no-op on undirected
	// graphs beyond the endpoint relabeling.
	ReverseEdge(e int) error
	// ClearEdges removes all edges, keeping vertices and weight keys.
	ClearEdges() error
	// Clear removes all vertices and edges, keeping weight keys.
	Clear() error

	// EdgeSource returns the source vertex of e. Panics on a bad index.
	EdgeSource(e int) int
	// EdgeTarget returns the target vertex of e. Panics on a bad index.
	EdgeTarget(e int) int
	// EdgeEndpoint returns the endpoint of e other than w (w itself for a
	// self-edge). Panics if w is not an endpoint of e.
	EdgeEndpoint(e, w int) int
	// GetEdge returns an arbitrary edge u->v (or between u and v when
	// undirected) and whether one exists.
	GetEdge(u, v int) (int, bool)
	// EdgesBetween returns the set of all edges u->v (both orientations
	// when undirected).
	EdgesBetween(u, v int) EdgeSet
	// OutEdges returns the live set of edges leaving v (all incident
	// edges when undirected).
	OutEdges(v int) EdgeSet
	// InEdges returns the live set of edges entering v (all incident
	// edges when undirected).
	InEdges(v int) EdgeSet

	// VertexWeights returns the manager of per-vertex weight containers.
	VertexWeights() *weights.Manager
	// EdgeWeights returns the manager of per-edge weight containers.
	EdgeWeights() *weights.Manager

	// OnVertexRemove registers l for vertex swap-and-remove notifications
	// (the change channel external id facades key their mappings to).
	OnVertexRemove(l elemset.RemoveListener)
	// OffVertexRemove unregisters l.
	OffVertexRemove(l elemset.RemoveListener)
	// OnEdgeRemove registers l for edge swap-and-remove notifications.
	OnEdgeRemove(l elemset.RemoveListener)
	// OffEdgeRemove unregisters l.
	OffEdgeRemove(l elemset.RemoveListener)
}

// EdgeSet is a live view over a collection of edges (an adjacency bucket
// or a lookup result). It reflects subsequent mutation of the graph;
// iterators created from it are fail-fast.
type EdgeSet interface {
	// Size returns the number of edges in the set.
	Size() int
	// Iter returns a new iterator positioned before the first edge.
	Iter() EdgeIter
}

// EdgeIter iterates an EdgeSet, yielding an edge and its endpoints per
// step. Accessors are valid only after Next returned true. A structural
// change to the graph after the iterator's creation makes the next call
// to Next panic with ErrStructureChanged.
type EdgeIter interface {
	// Next advances to the next edge and reports whether one exists.
	Next() bool
	// Edge returns the current edge index.
	Edge() int
	// Source returns the current edge's source. On undirected adjacency
	// sets the pivot vertex is presented as the source of out-iteration
	// and the target of in-iteration.
	Source() int
	// Target returns the current edge's target (see Source).
	Target() int
	// Other returns the endpoint opposite the set's pivot vertex, the
	// pivot itself for a self-edge.
	Other() int
}
