package kv

import (
	"context"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/messages"
	"strings"
	"sync"
)

// LayeredStore reads from a fast store and keeps a durable one as the source of truth.
// Writes go to the durable store first. When the fast store misses a write, the
// kind of that key is marked dirty and reads covering it come from the durable
// store until a successful mirror repairs the fast one.
type LayeredStore struct {
	fast    Store
	durable Store
	logger  logger.Interface

	mu    sync.Mutex
	dirty map[string]uint64
	seq   uint64
}

// LayeredStoreDeps is the dependency list for the layered store.
type LayeredStoreDeps struct {
	Fast    Store
	Durable Store
	Logger  logger.Interface
}

// NewLayeredStore creates the layered store.
func NewLayeredStore(deps *LayeredStoreDeps) *LayeredStore {
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}

	return &LayeredStore{
		fast:    deps.Fast,
		durable: deps.Durable,
		logger:  log,
		dirty:   make(map[string]uint64),
	}
}

// Set writes the durable store, then mirrors on the fast one.
// A failed mirror isn't returned, the value is already persisted.
func (ls *LayeredStore) Set(ctx context.Context, key string, value any) error {
	if err := ls.durable.Set(ctx, key, value); err != nil {
		return err
	}

	if err := ls.fast.Set(ctx, key, value); err != nil {
		ls.logger.Errorf(messages.RedisWriteFailedMsg, key, err)
		ls.markDirty(kindOf(key))
	}

	return nil
}

// GetByPrefix reads the fast store unless it is known to be stale or fails.
func (ls *LayeredStore) GetByPrefix(ctx context.Context, prefix string) ([]Entry, error) {
	if !ls.isDirty(prefix) {
		entries, err := ls.fast.GetByPrefix(ctx, prefix)
		if err == nil {
			return entries, nil
		}
		ls.logger.Errorf(messages.RedisFallbackMsg, err)
	}

	marks := ls.marks(prefix)
	entries, err := ls.durable.GetByPrefix(ctx, prefix)
	if err != nil {
		return nil, err
	}

	ls.repair(ctx, entries, marks)

	return entries, nil
}

// Warm copies the durable entries of each prefix into the fast store.
// Called on startup, same as preloading a cache.
func (ls *LayeredStore) Warm(ctx context.Context, prefixes ...string) error {
	for _, prefix := range prefixes {
		marks := ls.marks(prefix)
		entries, err := ls.durable.GetByPrefix(ctx, prefix)
		if err != nil {
			return err
		}
		ls.repair(ctx, entries, marks)
	}
	return nil
}

// repair mirrors the entries and clears the dirty marks taken before the durable read.
// A kind marked again meanwhile stays dirty, the entries may predate that write.
func (ls *LayeredStore) repair(ctx context.Context, entries []Entry, marks map[string]uint64) {
	for _, entry := range entries {
		if err := ls.fast.Set(ctx, entry.Key, entry.Value); err != nil {
			ls.logger.Errorf(messages.RedisWriteFailedMsg, entry.Key, err)
			return
		}
	}

	ls.mu.Lock()
	defer ls.mu.Unlock()

	for kind, mark := range marks {
		if ls.dirty[kind] == mark {
			delete(ls.dirty, kind)
		}
	}
}

// marks returns the current mark of every dirty kind covered by the prefix.
func (ls *LayeredStore) marks(prefix string) map[string]uint64 {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	marks := make(map[string]uint64)
	for kind, mark := range ls.dirty {
		if strings.HasPrefix(kind, prefix) {
			marks[kind] = mark
		}
	}
	return marks
}

func (ls *LayeredStore) markDirty(kind string) {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	ls.seq++
	ls.dirty[kind] = ls.seq
}

// isDirty reports whether a dirty kind may hold keys under the prefix.
func (ls *LayeredStore) isDirty(prefix string) bool {
	ls.mu.Lock()
	defer ls.mu.Unlock()

	for kind := range ls.dirty {
		if strings.HasPrefix(kind, prefix) || strings.HasPrefix(prefix, kind) {
			return true
		}
	}
	return false
}

// kindOf returns the key up to and including the first colon, or the whole key.
func kindOf(key string) string {
	if i := strings.IndexByte(key, ':'); i >= 0 {
		return key[:i+1]
	}
	return key
}
