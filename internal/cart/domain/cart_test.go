package domain

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

func product(id int64, price float64) catalog.Product {
	return catalog.Product{ID: id, Name: "item", Price: price, Quantity: 1}
}

func TestCart_AddThenRemoveLeavesEmpty(t *testing.T) {
	c := NewCart()
	assert.Equal(t, 0, c.Count())

	entry, count := c.Add(product(1, 2.5))
	assert.Equal(t, 1, count)
	assert.Equal(t, int64(1), entry.ID)
	assert.False(t, entry.AddedAt.IsZero())
	assert.Equal(t, 1, c.Count())

	assert.True(t, c.RemoveAt(0))
	assert.Equal(t, 0, c.Count())
	assert.Empty(t, c.Items())
}

func TestCart_KeepsDuplicatesInOrder(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))
	c.Add(product(2, 2))
	c.Add(product(1, 1))

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 1}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestCart_RemoveAtOutOfRangeIsNoop(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))
	c.Add(product(2, 2))
	before := c.Items()

	for _, idx := range []int{-1, 2, 100} {
		assert.False(t, c.RemoveAt(idx))
		assert.Equal(t, before, c.Items())
	}
}

func TestCart_RemoveAtShiftsLaterEntries(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))
	c.Add(product(2, 2))
	c.Add(product(3, 3))

	require.True(t, c.RemoveAt(1))

	items := c.Items()
	require.Len(t, items, 2)
	assert.Equal(t, int64(1), items[0].ID)
	assert.Equal(t, int64(3), items[1].ID)
}

func TestCart_RemoveAtDoesNotAliasEarlierCopies(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))
	c.Add(product(2, 2))
	c.Add(product(3, 3))
	held := c.Items()

	c.RemoveAt(0)

	assert.Equal(t, int64(1), held[0].ID)
	assert.Equal(t, int64(2), held[1].ID)
}

func TestCart_Total(t *testing.T) {
	c := NewCart()
	assert.Zero(t, c.Total())

	c.Add(product(1, 1.25))
	c.Add(product(2, 2.5))
	c.Add(product(1, 1.25))

	assert.InDelta(t, 5.0, c.Total(), 1e-9)

	snap := c.Snapshot()
	assert.Equal(t, 3, snap.Count)
	assert.InDelta(t, 5.0, snap.Total, 1e-9)
	assert.Len(t, snap.Items, 3)
}

func TestCart_ItemsIsACopy(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))

	items := c.Items()
	items[0].Name = "changed"

	assert.Equal(t, "item", c.Items()[0].Name)
}

func TestCart_DrainAndRestore(t *testing.T) {
	c := NewCart()
	c.Add(product(1, 1))
	c.Add(product(2, 2))

	drained := c.Drain()
	assert.Len(t, drained, 2)
	assert.Equal(t, 0, c.Count())

	c.Add(product(3, 3))
	c.Restore(drained)

	items := c.Items()
	require.Len(t, items, 3)
	assert.Equal(t, []int64{1, 2, 3}, []int64{items[0].ID, items[1].ID, items[2].ID})
}

func TestCart_ConcurrentAdds(t *testing.T) {
	c := NewCart()
	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int64) {
			defer wg.Done()
			c.Add(product(id, 1))
		}(int64(i))
	}
	wg.Wait()

	assert.Equal(t, 50, c.Count())
}

func TestRegistry_GetCreatesOncePerSession(t *testing.T) {
	r := NewRegistry()

	a := r.Get("s1")
	b := r.Get("s1")
	other := r.Get("s2")

	assert.Same(t, a, b)
	assert.NotSame(t, a, other)
	assert.Equal(t, 2, r.Len())

	_, ok := r.Peek("missing")
	assert.False(t, ok)
}

func TestRegistry_Sweep(t *testing.T) {
	r := NewRegistry()
	r.Get("old")
	time.Sleep(5 * time.Millisecond)
	r.Get("fresh").Add(product(1, 1))

	removed := r.Sweep(2 * time.Millisecond)

	assert.Equal(t, 1, removed)
	_, ok := r.Peek("old")
	assert.False(t, ok)
	_, ok = r.Peek("fresh")
	assert.True(t, ok)
}

func TestGroupLines(t *testing.T) {
	entries := []Entry{
		{Product: product(2, 3)},
		{Product: product(1, 1)},
		{Product: product(2, 3)},
	}

	lines := GroupLines(entries)

	require.Len(t, lines, 2)
	assert.Equal(t, Line{ProductID: 2, Name: "item", Quantity: 2, UnitPrice: 3}, lines[0])
	assert.Equal(t, Line{ProductID: 1, Name: "item", Quantity: 1, UnitPrice: 1}, lines[1])
}
