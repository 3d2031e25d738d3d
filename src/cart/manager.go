package cart

import (
	"sync"
	"time"
)

type entry struct {
	cart     *Cart
	lastSeen time.Time
}

// Manager owns every session's cart. There is no ambient global: whoever needs
// cart access receives the Manager explicitly and looks carts up by session
// id. Carts have no life beyond the process; an idle session's cart is evicted
// by the sweep job.
type Manager struct {
	mu      sync.RWMutex
	entries map[string]*entry
}

func NewManager() *Manager {
	return &Manager{entries: make(map[string]*entry)}
}

// Get returns the session's cart, creating it on first access.
func (m *Manager) Get(sessionID string) *Cart {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[sessionID]
	if !ok {
		e = &entry{cart: New()}
		m.entries[sessionID] = e
	}
	e.lastSeen = time.Now()
	return e.cart
}

// Sweep drops carts not touched within ttl and reports how many were evicted.
func (m *Manager) Sweep(ttl time.Duration) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	cutoff := time.Now().Add(-ttl)
	evicted := 0
	for sid, e := range m.entries {
		if e.lastSeen.Before(cutoff) {
			delete(m.entries, sid)
			evicted++
		}
	}
	return evicted
}

func (m *Manager) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.entries)
}
