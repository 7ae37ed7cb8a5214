package application

import (
	"context"
	"sync"

	"github.com/taaza-dairy/taaza-cli/internal/domain"
)

type memLocalStore struct {
	mu      sync.Mutex
	values  map[string]string
	failSet error
}

func newMemLocalStore() *memLocalStore {
	return &memLocalStore{values: map[string]string{}}
}

func (m *memLocalStore) Get(_ context.Context, key string) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	value, ok := m.values[key]
	if !ok {
		return "", domain.ErrLocalKeyNotFound
	}
	return value, nil
}

func (m *memLocalStore) Set(_ context.Context, key, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet != nil {
		return m.failSet
	}
	m.values[key] = value
	return nil
}

func (m *memLocalStore) Delete(_ context.Context, keys ...string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, key := range keys {
		delete(m.values, key)
	}
	return nil
}

func (m *memLocalStore) List(context.Context) (map[string]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]string, len(m.values))
	for k, v := range m.values {
		out[k] = v
	}
	return out, nil
}

func (m *memLocalStore) has(key string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.values[key]
	return ok
}
