// Package elemset owns the dense integer identifier space used for the
// vertex and edge collections of a graph instance.
//
// An IndexSet is always the contiguous range {0, 1, ..., Size()-1}; no gaps
// ever exist. New identifiers are appended with Add (the new id equals the
// old size). Arbitrary identifiers are deleted in O(1) with SwapAndRemove:
// the current last element is logically relabeled to occupy the removed
// slot, then the set shrinks by one. A removal therefore reassigns the
// identifier of whatever was previously the last element.
//
// Dependent structures (weight containers, backend-internal adjacency
// tables) register a RemoveListener via OnRemove to observe each relabel.
// Listeners fire synchronously, in registration order, and strictly before
// the size shrinks, because dependents still need to read the old contents
// of the doomed slot.
//
// IndexSet performs no internal synchronization; it follows the
// single-writer model of the graph that owns it.
package elemset
