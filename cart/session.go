package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Manager owns one cart per shopper session, keyed by an opaque session ID
// handed to the client on first use. The reducer functions stay pure; the
// manager only serializes their application so each cart sees exactly one
// writer at a time.
type Manager struct {
	mu    sync.RWMutex
	carts map[string]State
}

func NewManager() *Manager {
	return &Manager{carts: make(map[string]State)}
}

// NewSession creates an empty cart and returns its session ID.
func (m *Manager) NewSession() string {
	id := uuid.NewString()
	m.mu.Lock()
	m.carts[id] = NewState()
	m.mu.Unlock()
	return id
}

// Has reports whether a cart exists for the session.
func (m *Manager) Has(sessionID string) bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	_, ok := m.carts[sessionID]
	return ok
}

// Get returns the current cart state for the session.
func (m *Manager) Get(sessionID string) (State, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.carts[sessionID]
	return s, ok
}

// Apply runs one reducer step against the session's cart and stores the
// result. It returns the new state, or ok=false if the session is unknown.
func (m *Manager) Apply(sessionID string, fn func(State) State) (State, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.carts[sessionID]
	if !ok {
		return State{}, false
	}
	next := fn(s)
	m.carts[sessionID] = next
	return next, true
}

// Drop forgets the session entirely.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	delete(m.carts, sessionID)
	m.mu.Unlock()
}
