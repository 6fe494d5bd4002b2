// SPDX-License-Identifier: MIT
//
// File: container.go
// Role: Generic typed attribute array with a default value, plus the
//       untyped management interface the Manager drives it through.

package weights

import "errors"

// Sentinel errors for weight-container operations.
var (
	// ErrKeyExists indicates a container with the same key is already owned
	// by the Manager.
	ErrKeyExists = errors.New("weights: container key already exists")

	// ErrKeyNotFound indicates no container is registered under the key.
	ErrKeyNotFound = errors.New("weights: container key not found")

	// ErrTypeMismatch indicates a typed lookup found the key bound to a
	// container of a different element type.
	ErrTypeMismatch = errors.New("weights: container has a different element type")

	// ErrReadOnly indicates a write through a read-only container or a
	// structural change to a frozen Manager.
	ErrReadOnly = errors.New("weights: container is read-only")
)

// Container is the untyped face of a weight container, used by the Manager
// to keep backing storage in lockstep with structural mutation. Concrete
// containers are always Typed[T] instances.
type Container interface {
	// Len reports the current backing length (always >= the owning element
	// set's size once managed).
	Len() int

	// ensureLen grows the backing slice to length n, filling revealed
	// slots with the default value. Shrink requests are ignored.
	ensureLen(n int)

	// relabel mirrors an element-set swap-and-remove: the value at swapped
	// moves into removed's slot and swapped resets to the default.
	relabel(removed, swapped int)

	// reindex reorders the first len(perm) values so the value of slot i
	// lands in slot perm[i].
	reindex(perm []int)

	// clearAll resets every slot to the default.
	clearAll()

	// clone returns an unfrozen deep copy, re-ordered through perm when
	// perm is non-nil.
	clone(perm []int) Container

	// freeze makes subsequent Set calls fail.
	freeze()
}

// Typed is a weight container holding one value of type T per element id.
// Values never explicitly Set read back as the default value the container
// was created with.
type Typed[T any] struct {
	data   []T
	def    T
	frozen bool
}

// newTyped returns a container of length n with every slot set to def.
func newTyped[T any](n int, def T) *Typed[T] {
	c := &Typed[T]{def: def}
	c.ensureLen(n)

	return c
}

// Get returns the value bound to id, or the default if id was never Set.
// id must be a member of the owning element set.
// Complexity: O(1)
func (c *Typed[T]) Get(id int) T {
	if id < 0 {
		panic("weights: negative element id")
	}
	if id >= len(c.data) {
		return c.def
	}

	return c.data[id]
}

// Set binds v to id. Writing through a frozen container (one owned by an
// immutable graph) panics with ErrReadOnly; use ReadOnly for a view that
// rejects writes with an error instead.
// Complexity: O(1)
func (c *Typed[T]) Set(id int, v T) {
	if c.frozen {
		panic(ErrReadOnly)
	}
	if id < 0 {
		panic("weights: negative element id")
	}
	if id >= len(c.data) {
		c.ensureLen(id + 1)
	}
	c.data[id] = v
}

// Default returns the container's default value.
func (c *Typed[T]) Default() T { return c.def }

// Len reports the backing length.
func (c *Typed[T]) Len() int { return len(c.data) }

func (c *Typed[T]) ensureLen(n int) {
	for len(c.data) < n {
		c.data = append(c.data, c.def)
	}
}

func (c *Typed[T]) relabel(removed, swapped int) {
	if swapped >= len(c.data) {
		return
	}
	// swapped is the old last id, so dropping it keeps Len in lockstep
	// with the element count after the swap-and-remove commits.
	c.data[removed] = c.data[swapped]
	var zero T
	c.data[swapped] = zero
	c.data = c.data[:swapped]
}

func (c *Typed[T]) reindex(perm []int) {
	// A container attached before the elements existed may still be
	// shorter than the permutation; grow with defaults first.
	n := len(c.data)
	if len(perm) > n {
		n = len(perm)
	}
	next := make([]T, n)
	copy(next, c.data)
	for i := len(c.data); i < n; i++ {
		next[i] = c.def
	}
	for i, p := range perm {
		if i < len(c.data) {
			next[p] = c.data[i]
		} else {
			next[p] = c.def
		}
	}
	c.data = next
}

func (c *Typed[T]) clearAll() {
	for i := range c.data {
		c.data[i] = c.def
	}
}

func (c *Typed[T]) clone(perm []int) Container {
	out := &Typed[T]{data: make([]T, len(c.data)), def: c.def}
	copy(out.data, c.data)
	if perm != nil {
		out.reindex(perm)
	}

	return out
}

func (c *Typed[T]) freeze() { c.frozen = true }
