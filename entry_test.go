package tq

import (
	"strconv"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestEntry_Vacant(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)

	e := c.Entry("poneyland")
	v, ok := e.(*VacantEntry[string, int])
	require.True(t, ok, "entry should be vacant")
	require.Equal(t, "poneyland", v.Key())
	require.Nil(t, v.ghost)

	ref := v.Insert(37)
	require.Equal(t, 37, *ref)

	got, ok := c.Get("poneyland")
	require.True(t, ok)
	require.Equal(t, 37, got)
}

func TestEntry_Occupied(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)
	c.Set("poneyland", 12)

	o, ok := c.Entry("poneyland").(*OccupiedEntry[string, int])
	require.True(t, ok, "entry should be occupied")
	require.Equal(t, "poneyland", o.Key())
	require.Equal(t, 12, o.Get())

	// Replacing keeps segment and position, and returns the old value
	require.Equal(t, 12, o.Set(15))
	require.Equal(t, 15, o.Get())
	require.Equal(t, 1, c.recent.Len())

	*o.Ref() += 10
	got, _ := c.Get("poneyland")
	require.Equal(t, 25, got)
}

func TestEntry_Remove(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)
	c.Set("poneyland", 12)

	o, ok := c.Entry("poneyland").(*OccupiedEntry[string, int])
	require.True(t, ok)
	k, v := o.Remove()
	require.Equal(t, "poneyland", k)
	require.Equal(t, 12, v)
	require.False(t, c.Contains("poneyland"))
	// Removal through a view must not seed the ghost list either
	require.Equal(t, 0, c.ghost.Len())
}

func TestEntry_OrInsert(t *testing.T) {
	c, err := New[int, string](8)
	require.NoError(t, err)

	for _, i := range []int{1, 2, 5, 1, 2, 8, 1, 2, 102, 25, 1092, 1, 2, 82, 10, 1095} {
		s := c.Entry(i).OrInsert(strconv.Itoa(i))
		require.Equal(t, strconv.Itoa(i), *s)
	}
}

func TestEntry_OrInsertWith(t *testing.T) {
	c, err := New[string, int](8)
	require.NoError(t, err)

	calls := 0
	fn := func() int {
		calls++
		return 100
	}
	require.Equal(t, 100, *c.Entry("health").OrInsertWith(fn))
	require.Equal(t, 100, *c.Entry("health").OrInsertWith(fn))
	require.Equal(t, 1, calls, "fn should only run for the vacant entry")
}

func TestEntry_PromotesFrequentHit(t *testing.T) {
	c, err := New[int, int](8)
	require.NoError(t, err)

	// Promote 1 and 2 into frequent through the ghost list
	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3)
	c.Set(1, 1)
	c.Set(4, 4)
	c.Set(2, 2)
	require.Equal(t, 2, c.frequent.Len())
	require.Equal(t, 2, c.frequent.Front().Value.key)

	// PeekEntry classifies without reordering
	_, ok := c.PeekEntry(1).(*OccupiedEntry[int, int])
	require.True(t, ok)
	require.Equal(t, 2, c.frequent.Front().Value.key)

	// Entry promotes the frequent hit before returning the view
	o, ok := c.Entry(1).(*OccupiedEntry[int, int])
	require.True(t, ok)
	require.True(t, o.frequent)
	require.Equal(t, 1, c.frequent.Front().Value.key)
}

func TestEntry_GhostClassification(t *testing.T) {
	c, err := New[int, int](8)
	require.NoError(t, err)

	c.Set(1, 1)
	c.Set(2, 2)
	c.Set(3, 3) // evicts 1 into ghost

	v, ok := c.PeekEntry(1).(*VacantEntry[int, int])
	require.True(t, ok, "evicted key should classify as vacant")
	require.NotNil(t, v.ghost, "evicted key should be remembered by ghost")

	ref := v.Insert(10)
	require.Equal(t, 10, *ref)
	require.Equal(t, 1, c.frequent.Len())
	require.Equal(t, c.ghost.Len(), len(c.ghostIdx))
	_, remembered := c.ghostIdx[1]
	require.False(t, remembered, "ghost should forget a promoted key")

	got, ok := c.Peek(1)
	require.True(t, ok)
	require.Equal(t, 10, got)
}

func TestEntry_UnitKeyLoop(t *testing.T) {
	c, err := New[struct{}, struct{}](8)
	require.NoError(t, err)

	for i := 0; i < 1024; i++ {
		c.Entry(struct{}{}).OrInsertWith(func() struct{} { return struct{}{} })
	}
	require.Equal(t, 1, c.Len())
}
