// SPDX-License-Identifier: MIT
//
// File: reconcile.go
// Role: In-place reconciliation of explicitly assigned edge ids. Builder
//       records edges in insertion order; before building, each record
//       must move to the slot named by its id so the dense edge space
//       {0..m-1} and the user's ids coincide.

package graph

import "fmt"

// reconcileEdgeIDs permutes ids and the flat endpoint pairs in place so
// that the record carrying id k ends up in slot k. It follows permutation
// cycles, displacing one pending record at a time, so no scratch copy of
// the edge table is needed.
//
// Complexity: O(m) time, O(m) bits for the placement markers.
func reconcileEdgeIDs(ids, endpoints []int) error {
	m := len(ids)
	placed := make([]bool, m)
	for s := 0; s < m; s++ {
		if placed[s] {
			continue
		}
		u, v, id := endpoints[2*s], endpoints[2*s+1], ids[s]
		for {
			if id < 0 || id >= m {
				return fmt.Errorf("edge id %d with %d edges: %w", id, m, ErrEdgeIDOutOfRange)
			}
			if placed[id] {
				return fmt.Errorf("edge id %d assigned twice: %w", id, ErrDuplicateEdgeID)
			}
			nu, nv, nid := endpoints[2*id], endpoints[2*id+1], ids[id]
			endpoints[2*id], endpoints[2*id+1], ids[id] = u, v, id
			placed[id] = true
			if id == s {
				break
			}
			u, v, id = nu, nv, nid
		}
	}

	return nil
}
