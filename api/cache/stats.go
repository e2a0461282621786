package cache

import (
	"fitconsole/pkg/models"
	"sync"
	"time"
)

const statsKeyPrefix = "dashboard:stats:"

// StatsCache keeps the computed dashboard stats for a short time.
// Keys carry the UTC date, so a cached value never crosses midnight.
type StatsCache struct {
	mem MemCache
	ttl time.Duration

	mu    sync.Mutex
	epoch uint64
}

// NewStatsCache creates the stats cache, a zero ttl disables it.
func NewStatsCache(mem MemCache, ttl time.Duration) *StatsCache {
	return &StatsCache{mem: mem, ttl: ttl}
}

func (sc *StatsCache) enabled() bool {
	return sc != nil && sc.ttl > 0
}

// Get returns the cached stats of the date, if any.
func (sc *StatsCache) Get(date string) (*models.DashboardStats, bool) {
	if !sc.enabled() {
		return nil, false
	}

	cached, ok := sc.mem.Get(statsKeyPrefix + date).(models.DashboardStats)
	if !ok {
		return nil, false
	}
	return &cached, true
}

// Epoch returns the invalidation counter, to be read before the scans feeding Set.
func (sc *StatsCache) Epoch() uint64 {
	if !sc.enabled() {
		return 0
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	return sc.epoch
}

// Set stores a copy of the stats computed at the given epoch.
// Stats computed before the last invalidation are not stored.
func (sc *StatsCache) Set(date string, stats models.DashboardStats, epoch uint64) bool {
	if !sc.enabled() {
		return false
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	if epoch != sc.epoch {
		return false
	}
	sc.mem.Set(statsKeyPrefix+date, stats, sc.ttl)
	return true
}

// Invalidate drops every cached day.
func (sc *StatsCache) Invalidate() {
	if !sc.enabled() {
		return
	}

	sc.mu.Lock()
	defer sc.mu.Unlock()
	sc.epoch++
	sc.mem.DeletePrefix(statsKeyPrefix)
}
