package keyvault

import (
	"context"
	"sync"
)

// MemoryBoundary keeps keys in process memory. It is meant for tests and
// ephemeral sessions.
type MemoryBoundary struct {
	mu          sync.RWMutex
	keys        map[string][]byte
	unavailable bool
}

func NewMemoryBoundary() *MemoryBoundary {
	return &MemoryBoundary{keys: make(map[string][]byte)}
}

// SetUnavailable makes every subsequent call fail with ErrKeyUnavailable.
func (m *MemoryBoundary) SetUnavailable(v bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.unavailable = v
}

func (m *MemoryBoundary) Load(_ context.Context, alias string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return nil, ErrKeyUnavailable
	}
	k, ok := m.keys[alias]
	if !ok {
		return nil, ErrKeyNotFound
	}
	return append([]byte(nil), k...), nil
}

func (m *MemoryBoundary) Store(_ context.Context, alias string, key []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.unavailable {
		return ErrKeyUnavailable
	}
	m.keys[alias] = append([]byte(nil), key...)
	return nil
}

func (m *MemoryBoundary) Has(_ context.Context, alias string) (bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.unavailable {
		return false, ErrKeyUnavailable
	}
	_, ok := m.keys[alias]
	return ok, nil
}
