// SPDX-License-Identifier: MIT
//
// File: manager.go
// Role: Per-element-set registry of named containers; single registration
//       point with the element set's removal-listener mechanism.

package weights

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/densegraph/elemset"
)

// Manager owns every weight container attached to one element set and
// keeps all of them consistent with structural mutation. It is itself the
// elemset.RemoveListener: one registration covers all current and future
// containers.
type Manager struct {
	elements   *elemset.IndexSet
	containers map[string]Container
	frozen     bool
}

// NewManager creates a Manager bound to set and registers it for removal
// notifications.
func NewManager(set *elemset.IndexSet) *Manager {
	m := &Manager{elements: set, containers: make(map[string]Container)}
	set.OnRemove(m)

	return m
}

// BeforeRemove implements elemset.RemoveListener: every live container
// copies the value at swapped into removed's slot, mirroring the element
// relabeling exactly.
func (m *Manager) BeforeRemove(removed, swapped int) {
	for _, c := range m.containers {
		c.relabel(removed, swapped)
	}
}

// EnsureCapacity grows every container to at least n slots, filling newly
// revealed slots with each container's default. Graphs call this after
// reserving an id and before using it.
// Complexity: O(containers) amortized
func (m *Manager) EnsureCapacity(n int) {
	for _, c := range m.containers {
		c.ensureLen(n)
	}
}

// Attach creates a container of element type T under key with default
// value def, sized to the current element set.
// Returns ErrKeyExists if the key is taken, ErrReadOnly on a frozen
// Manager.
func Attach[T any](m *Manager, key string, def T) (*Typed[T], error) {
	if m.frozen {
		return nil, fmt.Errorf("attach %q: %w", key, ErrReadOnly)
	}
	if _, ok := m.containers[key]; ok {
		return nil, fmt.Errorf("attach %q: %w", key, ErrKeyExists)
	}
	c := newTyped(m.elements.Size(), def)
	m.containers[key] = c

	return c, nil
}

// Lookup returns the container registered under key as its concrete type.
// Returns ErrKeyNotFound for unknown keys and ErrTypeMismatch when the key
// is bound to a container of a different element type.
func Lookup[T any](m *Manager, key string) (*Typed[T], error) {
	c, ok := m.containers[key]
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrKeyNotFound)
	}
	typed, ok := c.(*Typed[T])
	if !ok {
		return nil, fmt.Errorf("lookup %q: %w", key, ErrTypeMismatch)
	}

	return typed, nil
}

// Get returns the untyped container under key, if any.
func (m *Manager) Get(key string) (Container, bool) {
	c, ok := m.containers[key]

	return c, ok
}

// Remove detaches the container under key. Returns ErrKeyNotFound for
// unknown keys and ErrReadOnly on a frozen Manager.
func (m *Manager) Remove(key string) error {
	if m.frozen {
		return fmt.Errorf("remove %q: %w", key, ErrReadOnly)
	}
	if _, ok := m.containers[key]; !ok {
		return fmt.Errorf("remove %q: %w", key, ErrKeyNotFound)
	}
	delete(m.containers, key)

	return nil
}

// Keys returns the registered container keys in sorted order.
func (m *Manager) Keys() []string {
	out := make([]string, 0, len(m.containers))
	for k := range m.containers {
		out = append(out, k)
	}
	sort.Strings(out)

	return out
}

// Len reports the number of registered containers.
func (m *Manager) Len() int { return len(m.containers) }

// ClearAll resets every slot of every container to its default.
func (m *Manager) ClearAll() {
	for _, c := range m.containers {
		c.clearAll()
	}
}

// CopyTo clones every container into dst. When perm is non-nil the clone
// is re-ordered so the value of element i lands at element perm[i] (the
// builder's re-indexing path). Existing dst keys are overwritten.
func (m *Manager) CopyTo(dst *Manager, perm []int) {
	for key, c := range m.containers {
		clone := c.clone(perm)
		clone.ensureLen(dst.elements.Size())
		dst.containers[key] = clone
	}
}

// Freeze makes the Manager and all current containers reject writes.
// Immutable graphs freeze their managers at construction.
func (m *Manager) Freeze() {
	m.frozen = true
	for _, c := range m.containers {
		c.freeze()
	}
}
