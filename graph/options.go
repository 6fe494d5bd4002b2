// SPDX-License-Identifier: MIT
//
// File: options.go
// Role: Functional configuration for graphs and builders, plus the factory
//       that maps capabilities and hints onto a backend.
//
// Option policy (matching the module convention):
//   - defaults are documented constants;
//   - WithX constructors panic on nonsensical values (programmer error);
//   - hint options are never semantically binding - they steer backend
//     selection and pre-allocation only.

package graph

import "fmt"

// Defaults applied by New and NewBuilder.
const (
	// DefaultDirected: graphs are undirected unless WithDirected(true).
	DefaultDirected = false
	// DefaultImpl is the backend used when no hint or override applies.
	DefaultImpl = ImplArray
)

// Option configures a graph factory call or a Builder.
type Option func(*config)

type config struct {
	directed      bool
	selfEdges     bool
	parallelEdges bool

	fastLookup  bool
	fastRemoval bool
	impl        string

	expVertices int
	expEdges    int
}

func defaultConfig() config {
	return config{directed: DefaultDirected}
}

// WithDirected sets whether edges are ordered pairs.
func WithDirected(directed bool) Option {
	return func(c *config) { c.directed = directed }
}

// WithSelfEdges permits edges whose endpoints coincide.
func WithSelfEdges() Option {
	return func(c *config) { c.selfEdges = true }
}

// WithParallelEdges permits multiple edges between the same endpoints.
func WithParallelEdges() Option {
	return func(c *config) { c.parallelEdges = true }
}

// WithFastEdgeLookup hints that GetEdge performance matters more than
// memory; steers selection toward hashtable or matrix backends.
func WithFastEdgeLookup() Option {
	return func(c *config) { c.fastLookup = true }
}

// WithFastEdgeRemoval hints that point-removal of edges is frequent;
// steers selection toward the linked-list backend.
func WithFastEdgeRemoval() Option {
	return func(c *config) { c.fastRemoval = true }
}

// WithImpl overrides backend selection with an explicit backend name
// (ImplArray, ImplLinked, ImplHashtable, ImplMatrix). Validated by New.
func WithImpl(name string) Option {
	return func(c *config) { c.impl = name }
}

// WithExpectedVertices pre-sizes internal storage for n vertices. A pure
// capacity hint, never semantically binding. Panics if n is negative.
func WithExpectedVertices(n int) Option {
	if n < 0 {
		panic("graph: negative expected vertex count")
	}

	return func(c *config) { c.expVertices = n }
}

// WithExpectedEdges pre-sizes internal storage for n edges. A pure
// capacity hint, never semantically binding. Panics if n is negative.
func WithExpectedEdges(n int) Option {
	if n < 0 {
		panic("graph: negative expected edge count")
	}

	return func(c *config) { c.expEdges = n }
}

func gatherOptions(opts []Option) config {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// New creates an empty mutable graph, selecting the backend from the
// configured capabilities and hints:
//
//  1. an explicit WithImpl override wins (ErrCapabilityMismatch if the
//     backend cannot honor the capabilities);
//  2. WithFastEdgeLookup: matrix when self- and parallel edges are both
//     disallowed, hashtable otherwise;
//  3. WithFastEdgeRemoval with self-edges disallowed: linked-list;
//  4. otherwise: array.
func New(opts ...Option) (Graph, error) {
	return newFromConfig(gatherOptions(opts))
}

func newFromConfig(cfg config) (Graph, error) {
	impl, err := chooseImpl(cfg)
	if err != nil {
		return nil, err
	}

	switch impl {
	case ImplArray:
		return newArrayGraph(cfg), nil
	case ImplLinked:
		return newLinkedGraph(cfg), nil
	case ImplHashtable:
		return newHashGraph(cfg), nil
	case ImplMatrix:
		return newMatrixGraph(cfg), nil
	default:
		// chooseImpl never yields other names.
		return nil, fmt.Errorf("impl %q: %w", impl, ErrUnknownImpl)
	}
}

func chooseImpl(cfg config) (string, error) {
	if cfg.impl != "" {
		switch cfg.impl {
		case ImplArray, ImplLinked, ImplHashtable:
			return cfg.impl, nil
		case ImplMatrix:
			if cfg.parallelEdges {
				return "", fmt.Errorf("impl %q with parallel edges: %w", cfg.impl, ErrCapabilityMismatch)
			}
			return cfg.impl, nil
		case ImplCSR:
			return "", fmt.Errorf("impl %q is immutable, use a Builder: %w", cfg.impl, ErrCapabilityMismatch)
		default:
			return "", fmt.Errorf("impl %q: %w", cfg.impl, ErrUnknownImpl)
		}
	}

	if cfg.fastLookup {
		if !cfg.selfEdges && !cfg.parallelEdges {
			return ImplMatrix, nil
		}
		return ImplHashtable, nil
	}
	if cfg.fastRemoval && !cfg.selfEdges {
		return ImplLinked, nil
	}

	return DefaultImpl, nil
}
