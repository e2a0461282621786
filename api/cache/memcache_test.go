package cache

import (
	"fitconsole/internal/testutil"
	"fitconsole/pkg/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemCacheExpiration(t *testing.T) {
	clock := testutil.NewClock(testutil.ReferenceTime())
	mc := newMemCache(time.Hour, clock.Now)
	defer mc.Close()

	mc.Set("a", 1, time.Minute)
	assert.Equal(t, 1, mc.Get("a"))

	clock.Advance(2 * time.Minute)
	assert.Nil(t, mc.Get("a"))
	assert.Nil(t, mc.Get("missing"))
}

func TestMemCacheCleanup(t *testing.T) {
	clock := testutil.NewClock(testutil.ReferenceTime())
	mc := newMemCache(time.Hour, clock.Now)
	defer mc.Close()

	mc.Set("short", 1, time.Second)
	mc.Set("long", 2, time.Hour)
	clock.Advance(time.Minute)
	mc.cleanup()

	_, shortExists := mc.memoryCache.Load("short")
	_, longExists := mc.memoryCache.Load("long")
	assert.False(t, shortExists)
	assert.True(t, longExists)
}

func TestMemCacheDeletePrefix(t *testing.T) {
	mc := newMemCache(time.Hour, time.Now)
	defer mc.Close()

	mc.Set("dashboard:stats:2026-10-19", 1, time.Hour)
	mc.Set("dashboard:stats:2026-10-20", 2, time.Hour)
	mc.Set("other", 3, time.Hour)

	mc.DeletePrefix("dashboard:stats:")
	assert.Nil(t, mc.Get("dashboard:stats:2026-10-19"))
	assert.Nil(t, mc.Get("dashboard:stats:2026-10-20"))
	assert.Equal(t, 3, mc.Get("other"))
}

func TestStatsCache(t *testing.T) {
	mc := NewMemCache(time.Hour)
	defer mc.Close()

	sc := NewStatsCache(mc, time.Minute)
	stats := models.DashboardStats{TotalMembers: 4, ActiveMembers: 4}

	_, ok := sc.Get("2026-10-19")
	assert.False(t, ok)

	require.True(t, sc.Set("2026-10-19", stats, sc.Epoch()))
	cached, ok := sc.Get("2026-10-19")
	require.True(t, ok)
	assert.Equal(t, stats, *cached)

	// Another day is another key.
	_, ok = sc.Get("2026-10-20")
	assert.False(t, ok)

	sc.Invalidate()
	_, ok = sc.Get("2026-10-19")
	assert.False(t, ok)
}

func TestStatsCacheDisabled(t *testing.T) {
	mc := NewMemCache(time.Hour)
	defer mc.Close()

	sc := NewStatsCache(mc, 0)
	assert.False(t, sc.Set("2026-10-19", models.DashboardStats{TotalMembers: 1}, sc.Epoch()))
	_, ok := sc.Get("2026-10-19")
	assert.False(t, ok)

	var nilCache *StatsCache
	_, ok = nilCache.Get("2026-10-19")
	assert.False(t, ok)
	nilCache.Invalidate()
}

func TestStatsCacheSkipsStaleEpoch(t *testing.T) {
	mc := NewMemCache(time.Hour)
	defer mc.Close()

	sc := NewStatsCache(mc, time.Minute)
	epoch := sc.Epoch()

	// A write landed while the stats were being computed.
	sc.Invalidate()
	assert.False(t, sc.Set("2026-10-19", models.DashboardStats{TotalMembers: 1}, epoch))
	_, ok := sc.Get("2026-10-19")
	assert.False(t, ok)

	assert.True(t, sc.Set("2026-10-19", models.DashboardStats{TotalMembers: 2}, sc.Epoch()))
	cached, ok := sc.Get("2026-10-19")
	require.True(t, ok)
	assert.Equal(t, 2, cached.TotalMembers)
}
