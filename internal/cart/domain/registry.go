package domain

import (
	"sync"
	"time"
)

// Registry holds one cart per browser session. Carts live only in memory.
type Registry struct {
	mu    sync.RWMutex
	carts map[string]*Cart
}

func NewRegistry() *Registry {
	return &Registry{carts: make(map[string]*Cart)}
}

// Get returns the cart for sessionID, creating an empty one on first use
func (r *Registry) Get(sessionID string) *Cart {
	r.mu.RLock()
	c, ok := r.carts[sessionID]
	r.mu.RUnlock()
	if ok {
		return c
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.carts[sessionID]; ok {
		return c
	}
	c = NewCart()
	r.carts[sessionID] = c
	return c
}

// Peek returns the cart for sessionID without creating one
func (r *Registry) Peek(sessionID string) (*Cart, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.carts[sessionID]
	return c, ok
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.carts)
}

// Sweep drops carts untouched for longer than idle and returns how many went
func (r *Registry) Sweep(idle time.Duration) int {
	cutoff := time.Now().Add(-idle)

	r.mu.Lock()
	defer r.mu.Unlock()

	removed := 0
	for id, c := range r.carts {
		if c.idleSince().Before(cutoff) {
			delete(r.carts, id)
			removed++
		}
	}
	return removed
}
