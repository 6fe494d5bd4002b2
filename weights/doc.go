// Package weights maintains named, typed per-element attribute arrays
// ("weight containers") in lockstep with the dense identifier space of an
// elemset.IndexSet.
//
// A Manager owns zero or more containers for one element set (the vertices
// or the edges of a graph), keyed by string. The Manager registers itself
// as a removal listener on the set: on every swap-and-remove it copies the
// value of the relabeled slot into the vacated slot and resets the vacated
// tail slot to the container's default - for every container, transparently,
// with no per-container opt-in. On element addition the owning graph calls
// EnsureCapacity before the reserved id is used, so a container's backing
// slice is always at least as long as the element set.
//
// Containers are created with a default value; ids never explicitly Set
// report that default. The concrete container is the generic Typed[T]; the
// supported instantiations are the primitive kinds int8, int16, int32,
// int64, float32, float64, bool, byte, rune, plus any for opaque
// references.
//
// Two zero-copy wrappers exist: ReadOnly forwards reads and rejects
// writes, and Mapped translates between the dense index space and a
// caller-facing stable-id space (the hook consumed by external id
// facades).
//
// Like the rest of the engine, the package performs no internal
// synchronization: single writer, many readers.
package weights
