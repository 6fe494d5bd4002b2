package elemset_test

import (
	"testing"

	"github.com/katalvlaran/densegraph/elemset"
	"github.com/stretchr/testify/require"
)

// recorder captures every BeforeRemove notification in order.
type recorder struct {
	events [][2]int
	// sizeAt records the owning set's size observed inside the callback,
	// proving notification happens before the shrink.
	sizeAt []int
	set    *elemset.IndexSet
}

func (r *recorder) BeforeRemove(removed, swapped int) {
	r.events = append(r.events, [2]int{removed, swapped})
	if r.set != nil {
		r.sizeAt = append(r.sizeAt, r.set.Size())
	}
}

// TestAdd_DenseRange verifies ids are appended as 0,1,2,... with no gaps.
func TestAdd_DenseRange(t *testing.T) {
	s := elemset.New(0)
	for want := 0; want < 5; want++ {
		require.Equal(t, want, s.Add())
	}
	require.Equal(t, 5, s.Size())
	require.Equal(t, []int{0, 1, 2, 3, 4}, s.All())
	require.True(t, s.Contains(0))
	require.True(t, s.Contains(4))
	require.False(t, s.Contains(5))
	require.False(t, s.Contains(-1))
}

// TestSwapAndRemove_NotifiesBeforeShrink checks listener ordering and the
// pre-shrink guarantee.
func TestSwapAndRemove_NotifiesBeforeShrink(t *testing.T) {
	s := elemset.New(4)
	rec := &recorder{set: s}
	s.OnRemove(rec)

	s.SwapAndRemove(1, 3)
	require.Equal(t, 3, s.Size())
	require.Equal(t, [][2]int{{1, 3}}, rec.events)
	// Size observed inside the callback is the pre-removal size.
	require.Equal(t, []int{4}, rec.sizeAt)

	// Removing the last id is a degenerate swap.
	s.RemoveLast()
	require.Equal(t, 2, s.Size())
	require.Equal(t, [2]int{2, 2}, rec.events[1])
}

// TestSwapAndRemove_RequiresLast verifies the swapped argument contract.
func TestSwapAndRemove_RequiresLast(t *testing.T) {
	s := elemset.New(3)
	require.Panics(t, func() { s.SwapAndRemove(0, 1) })
	require.Panics(t, func() { s.SwapAndRemove(-1, 2) })
	require.NotPanics(t, func() { s.SwapAndRemove(0, 2) })
}

// TestRollBackAdd undoes a reservation silently.
func TestRollBackAdd(t *testing.T) {
	s := elemset.New(2)
	rec := &recorder{}
	s.OnRemove(rec)

	id := s.Add()
	require.Equal(t, 2, id)
	s.RollBackAdd(id)
	require.Equal(t, 2, s.Size())
	require.Empty(t, rec.events, "rollback must not notify listeners")

	require.Panics(t, func() { s.RollBackAdd(0) })
}

// TestListenerRegistration covers multi-listener order and removal.
func TestListenerRegistration(t *testing.T) {
	s := elemset.New(2)
	first, second := &recorder{}, &recorder{}
	s.OnRemove(first)
	s.OnRemove(second)

	s.SwapAndRemove(0, 1)
	require.Len(t, first.events, 1)
	require.Len(t, second.events, 1)

	s.OffRemove(first)
	s.RemoveLast()
	require.Len(t, first.events, 1, "removed listener must stay silent")
	require.Len(t, second.events, 2)

	// Unknown listener removal is a no-op.
	s.OffRemove(&recorder{})
}

// TestEqual_IdentityFree: equal sizes compare equal regardless of history.
func TestEqual_IdentityFree(t *testing.T) {
	a, b := elemset.New(3), elemset.New(0)
	b.AddN(3)
	require.True(t, a.Equal(b))
	require.True(t, b.Equal(a))
	b.Add()
	require.False(t, a.Equal(b))
	require.False(t, a.Equal(nil))
}

// TestReAddAfterRemove: removing then re-adding restores a dense range.
func TestReAddAfterRemove(t *testing.T) {
	s := elemset.New(5)
	s.SwapAndRemove(2, 4)
	s.SwapAndRemove(0, 3)
	for k := 0; k < 4; k++ {
		require.Equal(t, 3+k, s.Add())
	}
	require.Equal(t, 7, s.Size())
	for id := 0; id < 7; id++ {
		require.True(t, s.Contains(id))
	}
}

// TestRange supports early termination.
func TestRange(t *testing.T) {
	s := elemset.New(10)
	var seen []int
	s.Range(func(id int) bool {
		seen = append(seen, id)
		return id < 3
	})
	require.Equal(t, []int{0, 1, 2, 3}, seen)
}
