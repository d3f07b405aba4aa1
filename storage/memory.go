package storage

import (
	"context"
	"sync"
)

// memoryStore — KeyValueStore в памяти. Используется в тестах и как
// фолбэк локального запуска без Redis (REDIS_ADDR не задан).
type memoryStore struct {
	mu     sync.RWMutex
	values map[string]string
}

func NewMemoryStore() KeyValueStore {
	return &memoryStore{values: make(map[string]string)}
}

func (m *memoryStore) Get(_ context.Context, key string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	val, ok := m.values[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return val, nil
}

func (m *memoryStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.values[key] = value
	return nil
}

func (m *memoryStore) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.values, key)
	return nil
}
