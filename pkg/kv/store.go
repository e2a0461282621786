// Package kv is the persistence contract of the console: an upsert-only store
// addressed by string keys and read back by key prefix.
//
// Keys are unique and Set on an existing key overwrites it. GetByPrefix returns
// every entry whose key starts with the prefix, in an order defined by the
// implementation; callers that display records chronologically must sort.
// There is no delete and no atomicity across keys.
package kv

import (
	"context"
	"encoding/json"
	"fmt"
)

// Entry is a stored value with its key.
type Entry struct {
	Key   string
	Value json.RawMessage
}

// Store is the public interface for every driver.
type Store interface {
	Set(ctx context.Context, key string, value any) error
	GetByPrefix(ctx context.Context, prefix string) ([]Entry, error)
}

// encode turns any value into the stored JSON form.
// Raw JSON is kept as is, so entries can be copied between stores.
func encode(value any) ([]byte, error) {
	switch v := value.(type) {
	case json.RawMessage:
		if !json.Valid(v) {
			return nil, fmt.Errorf("invalid raw json value")
		}
		return v, nil
	case []byte:
		if !json.Valid(v) {
			return nil, fmt.Errorf("invalid raw json value")
		}
		return v, nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("couldn't encode value: %w", err)
	}
	return data, nil
}

// Decode unmarshals every entry into T.
// Entries that fail to decode are reported through onError and skipped.
func Decode[T any](entries []Entry, onError func(key string, err error)) []T {
	out := make([]T, 0, len(entries))
	for _, entry := range entries {
		var v T
		if err := json.Unmarshal(entry.Value, &v); err != nil {
			if onError != nil {
				onError(entry.Key, err)
			}
			continue
		}
		out = append(out, v)
	}
	return out
}
