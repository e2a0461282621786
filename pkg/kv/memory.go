package kv

import (
	"context"
	"encoding/json"
	"sort"
	"strings"
	"sync"
)

// MemoryStore keeps every entry in a map.
// Used on development and tests, data is lost on restart.
type MemoryStore struct {
	mu      sync.RWMutex
	entries map[string][]byte
}

// NewMemoryStore creates an empty memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		entries: make(map[string][]byte),
	}
}

// Set upserts the value.
func (ms *MemoryStore) Set(ctx context.Context, key string, value any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := encode(value)
	if err != nil {
		return err
	}

	// Keep our own copy, the caller may reuse the slice.
	stored := make([]byte, len(data))
	copy(stored, data)

	ms.mu.Lock()
	ms.entries[key] = stored
	ms.mu.Unlock()

	return nil
}

// GetByPrefix returns the matching entries ordered by key.
func (ms *MemoryStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	ms.mu.RLock()
	result := make([]Entry, 0)
	for key, value := range ms.entries {
		if strings.HasPrefix(key, prefix) {
			result = append(result, Entry{Key: key, Value: append(json.RawMessage(nil), value...)})
		}
	}
	ms.mu.RUnlock()

	sort.Slice(result, func(i, j int) bool { return result[i].Key < result[j].Key })

	return result, nil
}

// Len is the amount of stored keys.
func (ms *MemoryStore) Len() int {
	ms.mu.RLock()
	defer ms.mu.RUnlock()

	return len(ms.entries)
}
