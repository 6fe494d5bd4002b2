// Package densegraph is an in-memory graph storage engine built around
// dense integer element ids.
//
// 🚀 What is densegraph?
//
//	A predictable, allocation-conscious storage core that brings together:
//		• Dense id spaces: vertices 0..n-1 and edges 0..m-1, never a gap
//		• Swap-and-remove lifecycle with listener hooks
//		• Typed weight arrays that follow every relabel
//		• Five interchangeable adjacency backends
//		• Builders with explicit-id reconciliation and CSR compaction
//		• Zero-copy reverse, undirected and immutable views
//
// ✨ Why choose densegraph?
//
//   - Index, not pointer – every association is a plain int slot lookup
//   - Predictable memory – flat slices everywhere, no per-element boxes
//   - Pure Go – no cgo, no hidden deps
//   - Single-writer by contract – no locks on the hot path
//
// Under the hood, everything is organized under three subpackages:
//
//	elemset/ — dense element-id sets: swap-and-remove, rollback, listeners
//	weights/ — typed weight containers and their lifecycle manager
//	graph/   — the Graph contract, the five backends, Builder and views
//
// Start with graph.New for a mutable graph, graph.NewBuilder when bulk
// loading, and graph.NewComplete when the topology is implied.
package densegraph
