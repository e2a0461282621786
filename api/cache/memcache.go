package cache

import (
	"context"
	"strings"
	"sync"
	"time"
)

// MemCache is the public interface of the in-memory cache.
type MemCache interface {
	Get(key string) any
	Set(key string, value any, ttl time.Duration)
	DeletePrefix(prefix string)
	Close()
}

// In-memory cache with TTL and a background cleanup.
type memCache struct {
	memoryCache   sync.Map
	cleanupTicker *time.Ticker
	ctx           context.Context
	cancel        context.CancelFunc
	wg            sync.WaitGroup
	now           func() time.Time
}

// Simple cache item.
type memCacheItem struct {
	value any
	ttl   time.Time
}

// NewMemCache creates a new memory cache cleaned on the given interval.
func NewMemCache(cleanupInterval time.Duration) MemCache {
	return newMemCache(cleanupInterval, time.Now)
}

func newMemCache(cleanupInterval time.Duration, now func() time.Time) *memCache {
	ctx, cancel := context.WithCancel(context.Background())
	mc := &memCache{
		cancel:        cancel,
		cleanupTicker: time.NewTicker(cleanupInterval),
		ctx:           ctx,
		now:           now,
	}
	mc.startCleanupWorker()

	return mc
}

// startCleanupWorker starts the background worker for memory cleaning.
func (mc *memCache) startCleanupWorker() {
	mc.wg.Add(1)
	go func() {
		defer mc.wg.Done()
		for {
			select {
			case <-mc.cleanupTicker.C:
				mc.cleanup()
			case <-mc.ctx.Done():
				return
			}
		}
	}()
}

// cleanup go through each key and clean any expired key.
func (mc *memCache) cleanup() {
	now := mc.now()
	mc.memoryCache.Range(func(key, value any) bool {
		item := value.(*memCacheItem)
		if now.After(item.ttl) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}

// Close shutdown the memory cache worker.
func (mc *memCache) Close() {
	mc.cancel()
	mc.cleanupTicker.Stop()
	mc.wg.Wait()
}

// Get returns a key value of the cache.
func (mc *memCache) Get(key string) any {
	value, exists := mc.memoryCache.Load(key)
	if !exists {
		return nil
	}

	item := value.(*memCacheItem)

	// If the reset time was reached, remove the cache.
	if mc.now().After(item.ttl) {
		mc.memoryCache.CompareAndDelete(key, value)
		return nil
	}

	return item.value
}

// Set a given key on the cache.
func (mc *memCache) Set(key string, value any, ttl time.Duration) {
	mc.memoryCache.Store(key, &memCacheItem{
		value: value,
		ttl:   mc.now().Add(ttl),
	})
}

// DeletePrefix removes every key starting with the prefix.
func (mc *memCache) DeletePrefix(prefix string) {
	mc.memoryCache.Range(func(key, _ any) bool {
		if strings.HasPrefix(key.(string), prefix) {
			mc.memoryCache.Delete(key)
		}
		return true
	})
}
