package repository

import (
	"context"
	"sort"
	"sync"
)

// MemoryKV is the in-process backend used by the terminal client when no
// database is configured, and by tests.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string]map[string][]byte
}

func NewMemoryKV() *MemoryKV {
	return &MemoryKV{
		data: make(map[string]map[string][]byte),
	}
}

func (m *MemoryKV) Get(_ context.Context, owner, key string) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	value, ok := m.data[owner][key]
	if !ok {
		return nil, ErrNotFound
	}

	out := make([]byte, len(value))
	copy(out, value)
	return out, nil
}

func (m *MemoryKV) Put(_ context.Context, owner, key string, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.data[owner] == nil {
		m.data[owner] = make(map[string][]byte)
	}

	stored := make([]byte, len(value))
	copy(stored, value)
	m.data[owner][key] = stored

	return nil
}

func (m *MemoryKV) Owners(_ context.Context, key string) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	owners := []string{}
	for owner, values := range m.data {
		if _, ok := values[key]; ok {
			owners = append(owners, owner)
		}
	}
	sort.Strings(owners)

	return owners, nil
}
