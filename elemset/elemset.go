// SPDX-License-Identifier: MIT
//
// File: elemset.go
// Role: Dense identifier range with O(1) swap-and-remove and pre-shrink
//       listener notification.

package elemset

// RemoveListener observes swap-and-remove events of an IndexSet.
//
// BeforeRemove fires once per removal with the slot being vacated and the
// slot whose occupant is relabeled into it (always the current last id).
// When the last id itself is removed the two arguments are equal.
// The callback runs before the set's size shrinks, so implementations may
// still read both slots.
type RemoveListener interface {
	BeforeRemove(removed, swapped int)
}

// IndexSet is a dense set of identifiers {0, 1, ..., size-1}.
// The zero value is an empty, usable set.
type IndexSet struct {
	size      int
	listeners []RemoveListener
}

// New returns an IndexSet holding the ids 0..n-1.
func New(n int) *IndexSet {
	if n < 0 {
		panic("elemset: negative initial size")
	}

	return &IndexSet{size: n}
}

// Size returns the number of identifiers in the set.
// Complexity: O(1)
func (s *IndexSet) Size() int { return s.size }

// Contains reports whether id is a member, i.e. 0 <= id < Size().
// Complexity: O(1)
func (s *IndexSet) Contains(id int) bool { return 0 <= id && id < s.size }

// Add appends a new identifier equal to the current size and returns it.
// Complexity: O(1)
func (s *IndexSet) Add() int {
	id := s.size
	s.size++

	return id
}

// AddN appends n new identifiers in one step.
// Complexity: O(1)
func (s *IndexSet) AddN(n int) {
	if n < 0 {
		panic("elemset: negative AddN count")
	}
	s.size += n
}

// RollBackAdd undoes an immediately preceding Add without notifying
// listeners. It is used when a mutation is aborted after an id was
// reserved (e.g. endpoint validation failed mid-AddEdge). The id must be
// the one just returned by Add.
// Complexity: O(1)
func (s *IndexSet) RollBackAdd(id int) {
	if id != s.size-1 {
		panic("elemset: RollBackAdd of non-last id")
	}
	s.size--
}

// SwapAndRemove deletes removed by relabeling the current last identifier
// (swapped, which must equal Size()-1) into its slot, then shrinking the
// set by one. All registered listeners fire with (removed, swapped) before
// the shrink, in registration order.
// Complexity: O(listeners)
func (s *IndexSet) SwapAndRemove(removed, swapped int) {
	if swapped != s.size-1 {
		panic("elemset: swapped id must be the last id")
	}
	if removed < 0 || removed > swapped {
		panic("elemset: removed id out of range")
	}
	for _, l := range s.listeners {
		l.BeforeRemove(removed, swapped)
	}
	s.size--
}

// RemoveLast deletes the final identifier. Listeners observe it as a
// degenerate swap (removed == swapped).
// Complexity: O(listeners)
func (s *IndexSet) RemoveLast() {
	s.SwapAndRemove(s.size-1, s.size-1)
}

// Clear removes every identifier without firing listeners. Dependents that
// track per-element state reset alongside their owner.
// Complexity: O(1)
func (s *IndexSet) Clear() { s.size = 0 }

// All returns a fresh slice of every identifier in ascending order.
// Complexity: O(size)
func (s *IndexSet) All() []int {
	out := make([]int, s.size)
	for i := range out {
		out[i] = i
	}

	return out
}

// Range calls fn for each identifier in ascending order until fn returns
// false.
// Complexity: O(size)
func (s *IndexSet) Range(fn func(id int) bool) {
	for i := 0; i < s.size; i++ {
		if !fn(i) {
			return
		}
	}
}

// OnRemove registers l to be notified on every SwapAndRemove.
// Registration order is notification order.
// Complexity: O(1)
func (s *IndexSet) OnRemove(l RemoveListener) {
	s.listeners = append(s.listeners, l)
}

// OffRemove unregisters the first registration of l, comparing by
// interface identity. Unknown listeners are ignored.
// Complexity: O(listeners)
func (s *IndexSet) OffRemove(l RemoveListener) {
	for i, reg := range s.listeners {
		if reg == l {
			s.listeners = append(s.listeners[:i], s.listeners[i+1:]...)
			return
		}
	}
}

// Equal reports whether two sets describe the same identifier space.
// Two dense ranges of equal size are equal regardless of identity; the
// range alone carries no further semantic content.
// Complexity: O(1)
func (s *IndexSet) Equal(other *IndexSet) bool {
	return other != nil && s.size == other.size
}

// Copy returns a new IndexSet of the same size with no listeners.
// Complexity: O(1)
func (s *IndexSet) Copy() *IndexSet { return &IndexSet{size: s.size} }
