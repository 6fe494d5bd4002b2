// SPDX-License-Identifier: MIT
//
// File: views.go
// Role: Zero-copy container wrappers: read-only and stable-id-mapped.

package weights

// ReadOnly is an immutable view over a Typed container: reads forward
// unchanged, writes are rejected with ErrReadOnly.
type ReadOnly[T any] struct {
	c *Typed[T]
}

// NewReadOnly wraps c in a read-only view.
func NewReadOnly[T any](c *Typed[T]) ReadOnly[T] { return ReadOnly[T]{c: c} }

// Get forwards to the underlying container.
func (r ReadOnly[T]) Get(id int) T { return r.c.Get(id) }

// Set always fails with ErrReadOnly.
func (r ReadOnly[T]) Set(int, T) error { return ErrReadOnly }

// Default returns the underlying container's default value.
func (r ReadOnly[T]) Default() T { return r.c.Default() }

// Len reports the underlying backing length.
func (r ReadOnly[T]) Len() int { return r.c.Len() }

// IndexMap translates between the engine's dense index space and a
// caller-facing stable identifier space. It is implemented by external
// id facades; the engine itself never assigns stable ids.
type IndexMap interface {
	// IDToIndex maps a stable identifier to its current dense index.
	IDToIndex(id int) int
	// IndexToID maps a dense index to its stable identifier.
	IndexToID(idx int) int
}

// Mapped is a container view addressed by stable identifiers instead of
// dense indices. Every access translates through the IndexMap, so the view
// stays correct across swap-and-remove relabelings as long as the map is
// kept current (via the graph's removal listeners).
type Mapped[T any] struct {
	c *Typed[T]
	m IndexMap
}

// NewMapped wraps c with the given id translation.
func NewMapped[T any](c *Typed[T], m IndexMap) Mapped[T] {
	return Mapped[T]{c: c, m: m}
}

// Get returns the value bound to the element with stable identifier id.
func (v Mapped[T]) Get(id int) T { return v.c.Get(v.m.IDToIndex(id)) }

// Set binds a value to the element with stable identifier id.
func (v Mapped[T]) Set(id int, val T) { v.c.Set(v.m.IDToIndex(id), val) }

// Default returns the underlying container's default value.
func (v Mapped[T]) Default() T { return v.c.Default() }
