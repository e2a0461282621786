package kv

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// Max keys per MGET.
const mgetChunkSize = 200

// RedisClient is the subset of the redis wrapper used by the store.
type RedisClient interface {
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	GetKeysByPrefix(ctx context.Context, prefix string) ([]string, error)
	MGetValues(ctx context.Context, keys ...string) ([]any, error)
}

// RedisStore keeps the entries as plain redis strings without expiration.
type RedisStore struct {
	redis RedisClient
}

// NewRedisStore creates a store over the redis client.
func NewRedisStore(redis RedisClient) *RedisStore {
	return &RedisStore{redis: redis}
}

// Set upserts the key.
func (rs *RedisStore) Set(ctx context.Context, key string, value any) error {
	data, err := encode(value)
	if err != nil {
		return err
	}

	if err := rs.redis.Set(ctx, key, string(data), 0); err != nil {
		return fmt.Errorf("couldn't set key %s on redis: %w", key, err)
	}
	return nil
}

// GetByPrefix scans the keys and loads them in chunks, ordered by key.
func (rs *RedisStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	keys, err := rs.redis.GetKeysByPrefix(ctx, prefix)
	if err != nil {
		return nil, fmt.Errorf("couldn't scan prefix %s on redis: %w", prefix, err)
	}

	// SCAN can return the same key twice.
	sort.Strings(keys)
	keys = compact(keys)

	entries := make([]Entry, 0, len(keys))
	for start := 0; start < len(keys); start += mgetChunkSize {
		end := min(start+mgetChunkSize, len(keys))
		chunk := keys[start:end]

		values, err := rs.redis.MGetValues(ctx, chunk...)
		if err != nil {
			return nil, fmt.Errorf("couldn't load prefix %s from redis: %w", prefix, err)
		}

		for i, value := range values {
			str, ok := value.(string)
			if !ok {
				continue
			}
			entries = append(entries, Entry{Key: chunk[i], Value: json.RawMessage(str)})
		}
	}

	return entries, nil
}

// compact drops consecutive duplicates of a sorted slice.
func compact(keys []string) []string {
	if len(keys) == 0 {
		return keys
	}

	out := keys[:1]
	for _, key := range keys[1:] {
		if key != out[len(out)-1] {
			out = append(out, key)
		}
	}
	return out
}
