package domain

import (
	"sync"
	"time"

	catalog "github.com/tair/wastesmart-storefront/internal/catalog/domain"
)

// Entry is a product as it looked when it was added to the cart
type Entry struct {
	catalog.Product
	AddedAt time.Time `json:"added_at"`
}

// Cart is an ordered list of entries. Duplicates are kept as separate
// entries and insertion order is display order.
type Cart struct {
	mu      sync.Mutex
	entries []Entry
	touched time.Time
}

func NewCart() *Cart {
	return &Cart{touched: time.Now()}
}

// Add appends a snapshot of p and returns the stored entry with the new count
func (c *Cart) Add(p catalog.Product) (Entry, int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := time.Now()
	entry := Entry{Product: p, AddedAt: now}
	c.entries = append(c.entries, entry)
	c.touched = now
	return entry, len(c.entries)
}

// RemoveAt drops the entry at index. Later entries shift down by one.
// An out-of-range index leaves the cart unchanged and returns false.
func (c *Cart) RemoveAt(index int) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if index < 0 || index >= len(c.entries) {
		return false
	}
	c.entries = append(c.entries[:index:index], c.entries[index+1:]...)
	c.touched = time.Now()
	return true
}

func (c *Cart) Count() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Total is the sum of entry prices
func (c *Cart) Total() float64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	return total(c.entries)
}

// Items returns a copy of the entries in order
func (c *Cart) Items() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]Entry{}, c.entries...)
}

// Snapshot is a consistent view of the cart taken under one lock
type Snapshot struct {
	Items []Entry `json:"items"`
	Count int     `json:"count"`
	Total float64 `json:"total"`
}

func (c *Cart) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return Snapshot{
		Items: append([]Entry{}, c.entries...),
		Count: len(c.entries),
		Total: total(c.entries),
	}
}

func (c *Cart) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
	c.touched = time.Now()
}

// Drain empties the cart and returns what it held. Entries added while the
// drained ones are being processed stay in the cart.
func (c *Cart) Drain() []Entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	drained := c.entries
	c.entries = nil
	c.touched = time.Now()
	return drained
}

// Restore puts drained entries back in front of anything added since
func (c *Cart) Restore(drained []Entry) {
	if len(drained) == 0 {
		return
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = append(append([]Entry{}, drained...), c.entries...)
	c.touched = time.Now()
}

func (c *Cart) idleSince() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.touched
}

func total(entries []Entry) float64 {
	var sum float64
	for _, e := range entries {
		sum += e.Price
	}
	return sum
}
