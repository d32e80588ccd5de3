package session

import (
	"fmt"
	"sync"
	"time"

	"shopgh/internal/catalog"
	"shopgh/internal/models"

	"github.com/google/uuid"
)

// Manager is the registry of live sessions, keyed by session ID. The mutex
// guards the registry only; work inside one session stays single-threaded.
type Manager struct {
	sessions map[string]*Session
	mu       sync.RWMutex
}

// NewManager creates an empty session registry.
func NewManager() *Manager {
	return &Manager{
		sessions: make(map[string]*Session),
	}
}

// Create starts a session for the given user: empty cart, fresh catalog copy
// with seed stock values.
func (m *Manager) Create(user, role string) *Session {
	sess := &Session{
		ID:        uuid.New().String(),
		User:      user,
		Role:      role,
		Cart:      []models.CartItem{},
		Catalog:   catalog.NewStore(),
		CreatedAt: time.Now().UTC(),
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[sess.ID] = sess
	return sess
}

// Get returns the live session with the given ID.
func (m *Manager) Get(id string) (*Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	sess, ok := m.sessions[id]
	if !ok {
		return nil, fmt.Errorf("session %s not found", id)
	}
	return sess, nil
}

// Destroy discards the session with the given ID, dropping its cart and
// catalog copy. Destroying an unknown ID is a no-op.
func (m *Manager) Destroy(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, id)
}
