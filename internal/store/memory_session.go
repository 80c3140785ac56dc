package store

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-catalog-gateway/models"
)

type memorySessionStore struct {
	mu       sync.RWMutex
	sessions map[string]models.Session
}

// NewMemorySessionStore returns a process-local [SessionStore].
func NewMemorySessionStore() SessionStore {
	return &memorySessionStore{sessions: make(map[string]models.Session)}
}

func (m *memorySessionStore) Save(_ context.Context, key string, session models.Session) error {
	if key == "" {
		return ErrEmptyStorageKey
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sessions[key] = session
	return nil
}

func (m *memorySessionStore) Load(_ context.Context, key string) (models.Session, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.sessions[key]
	if !ok {
		return models.Session{}, ErrSessionNotFound
	}
	return s, nil
}

func (m *memorySessionStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.sessions[key]; !ok {
		return ErrSessionNotFound
	}
	delete(m.sessions, key)
	return nil
}
