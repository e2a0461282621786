package redis

import (
	"context"
	"fitconsole/pkg/config"
	"time"

	"github.com/redis/go-redis/v9"
)

// Amount of keys asked on every SCAN iteration.
const scanBatchSize = 500

// Type for the client.
type RedisClient struct {
	*redis.Client
}

// NewClient creates a client with the pool settings used by every service.
func NewClient(cfg config.RedisConfiguration) *RedisClient {
	client := redis.NewClient(&redis.Options{
		Addr:         cfg.Host + ":" + cfg.Port,
		Password:     cfg.Password,
		DB:           0,
		MaxRetries:   3,
		PoolSize:     100,
		MinIdleConns: 10,
		PoolTimeout:  30 * time.Second,
	})

	return &RedisClient{
		Client: client,
	}
}

// FromClient wraps an already created client, used on tests.
func FromClient(client *redis.Client) *RedisClient {
	return &RedisClient{Client: client}
}

// Close the client connection.
func (r *RedisClient) Close() error {
	return r.Client.Close()
}

// Wrapper to return the Result directly.
func (r *RedisClient) Get(ctx context.Context, key string) (string, error) {
	return r.Client.Get(ctx, key).Result()
}

// Wrapper to already return the .Err()
func (r *RedisClient) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	return r.Client.Set(ctx, key, value, ttl).Err()
}

// MGetValues returns the values of the keys in the same order, nil for missing keys.
func (r *RedisClient) MGetValues(ctx context.Context, keys ...string) ([]any, error) {
	return r.Client.MGet(ctx, keys...).Result()
}

// GetKeysByPrefix walks the keyspace with SCAN, never with KEYS.
// Keys created during the walk may or may not be returned.
func (r *RedisClient) GetKeysByPrefix(ctx context.Context, prefix string) ([]string, error) {
	var (
		keys   []string
		cursor uint64
	)

	pattern := escapePattern(prefix) + "*"
	for {
		batch, next, err := r.Client.Scan(ctx, cursor, pattern, scanBatchSize).Result()
		if err != nil {
			return nil, err
		}
		keys = append(keys, batch...)

		cursor = next
		if cursor == 0 {
			break
		}
	}

	return keys, nil
}

// escapePattern escapes the glob characters of a SCAN pattern.
func escapePattern(prefix string) string {
	out := make([]byte, 0, len(prefix))
	for i := 0; i < len(prefix); i++ {
		switch prefix[i] {
		case '*', '?', '[', ']', '\\':
			out = append(out, '\\')
		}
		out = append(out, prefix[i])
	}
	return string(out)
}
