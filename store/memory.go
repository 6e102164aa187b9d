package store

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
)

// MemoryStore keeps collections in memory. Values are stored encoded so that
// callers never share state with the store.
type MemoryStore struct {
	mu   sync.Mutex
	data map[string][]byte
}

// NewMemoryStore returns an empty store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string][]byte)}
}

// Load implements Store.
func (m *MemoryStore) Load(_ context.Context, collection string, v any) error {
	m.mu.Lock()
	data, ok := m.data[collection]
	m.mu.Unlock()
	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("could not decode collection %q: %w", collection, err)
	}
	return nil
}

// Save implements Store.
func (m *MemoryStore) Save(_ context.Context, collection string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("could not encode collection %q: %w", collection, err)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data[collection] = data
	return nil
}
