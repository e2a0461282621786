package prefetch

import (
	"context"
	"errors"
	"fitconsole/pkg/models"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var errTransport = errors.New("connection refused")

// Counting fetcher; gate, when set, holds every fetch until closed.
type fakeFetcher struct {
	stats, members, payments, accessLogs, seeds atomic.Int32

	mu         sync.Mutex
	statsErr   error
	logsErr    error
	membersOut []models.Member
	gate       chan struct{}
	started    chan string
}

func newFakeFetcher() *fakeFetcher {
	return &fakeFetcher{
		membersOut: []models.Member{{ID: "member:1", Name: "김민수"}},
	}
}

func (f *fakeFetcher) wait(ctx context.Context, name string) error {
	f.mu.Lock()
	gate, started := f.gate, f.started
	f.mu.Unlock()

	if started != nil {
		started <- name
	}
	if gate == nil {
		return nil
	}
	select {
	case <-gate:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func (f *fakeFetcher) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	f.stats.Add(1)
	if err := f.wait(ctx, "stats"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.statsErr != nil {
		return nil, f.statsErr
	}
	return &models.DashboardStats{TotalMembers: 4, ActiveMembers: 4, TodayAccess: 3, AttendanceRate: 75}, nil
}

func (f *fakeFetcher) GetMembers(ctx context.Context) ([]models.Member, error) {
	f.members.Add(1)
	if err := f.wait(ctx, "members"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.membersOut, nil
}

func (f *fakeFetcher) GetPayments(ctx context.Context) ([]models.Payment, error) {
	f.payments.Add(1)
	if err := f.wait(ctx, "payments"); err != nil {
		return nil, err
	}
	return []models.Payment{{ID: "payment:1", Amount: 59000}}, nil
}

func (f *fakeFetcher) GetAccessLogs(ctx context.Context) ([]models.AccessLog, error) {
	f.accessLogs.Add(1)
	if err := f.wait(ctx, "accessLogs"); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.logsErr != nil {
		return nil, f.logsErr
	}
	return []models.AccessLog{{ID: "access:1", MemberName: "김민수"}}, nil
}

func (f *fakeFetcher) SeedData(ctx context.Context, idempotent bool) (string, error) {
	f.seeds.Add(1)
	return "샘플 데이터가 생성되었습니다", nil
}

func (f *fakeFetcher) calls() int32 {
	return f.stats.Load() + f.members.Load() + f.payments.Load() + f.accessLogs.Load()
}

func setupTestCache() (*Cache, *fakeFetcher) {
	fetcher := newFakeFetcher()
	return NewCache(&CacheDeps{Fetcher: fetcher}), fetcher
}

func TestEnsureLoadedFetchCounts(t *testing.T) {
	tests := []struct {
		page     Page
		expected int32
	}{
		{page: PageDashboard, expected: 2},
		{page: PageMembers, expected: 1},
		{page: PagePayments, expected: 1},
		{page: PageAccess, expected: 1},
		{page: PageTrainers, expected: 0},
		{page: PageConsultations, expected: 0},
		{page: PageBranches, expected: 0},
		{page: PageSettings, expected: 0},
	}

	for _, tt := range tests {
		t.Run(string(tt.page), func(t *testing.T) {
			cache, fetcher := setupTestCache()

			require.NoError(t, cache.EnsureLoaded(context.Background(), tt.page))
			assert.Equal(t, tt.expected, fetcher.calls())
			assert.False(t, cache.Snapshot().Loading[tt.page])

			// Resident now, nothing else goes out.
			require.NoError(t, cache.EnsureLoaded(context.Background(), tt.page))
			assert.Equal(t, tt.expected, fetcher.calls())
		})
	}
}

func TestEnsureLoadedDashboard(t *testing.T) {
	cache, fetcher := setupTestCache()

	require.NoError(t, cache.EnsureLoaded(context.Background(), PageDashboard))
	assert.Equal(t, int32(1), fetcher.stats.Load())
	assert.Equal(t, int32(1), fetcher.accessLogs.Load())

	state := cache.Snapshot()
	require.NotNil(t, state.DashboardStats)
	assert.Equal(t, 75, state.DashboardStats.AttendanceRate)
	assert.Len(t, state.AccessLogs, 1)

	// The access page shares the slot the dashboard filled.
	require.NoError(t, cache.EnsureLoaded(context.Background(), PageAccess))
	assert.Equal(t, int32(1), fetcher.accessLogs.Load())
}

func TestEnsureLoadedLocalOnly(t *testing.T) {
	cache, fetcher := setupTestCache()
	ctx := context.Background()

	for _, page := range []Page{PageTrainers, PageConsultations, PageBranches, PageSettings} {
		require.NoError(t, cache.EnsureLoaded(ctx, page))
	}

	state := cache.Snapshot()
	catalog := DefaultCatalog()
	assert.Equal(t, catalog.Trainers, state.Trainers)
	assert.Equal(t, catalog.Consultations, state.Consultations)
	assert.Equal(t, catalog.Branches, state.Branches)
	assert.Equal(t, catalog.Users, state.Users)
	assert.Zero(t, fetcher.calls())
}

func TestEnsureLoadedFailureKeepsStaleData(t *testing.T) {
	cache, fetcher := setupTestCache()
	ctx := context.Background()

	fetcher.logsErr = errTransport

	require.NoError(t, cache.EnsureLoaded(ctx, PageDashboard))
	assert.Equal(t, int32(2), fetcher.calls())

	// The stats call succeeded but nothing is merged without the logs.
	state := cache.Snapshot()
	assert.Nil(t, state.DashboardStats)
	assert.Nil(t, state.AccessLogs)
	assert.False(t, state.Loading[PageDashboard])

	// Not resident, so the next navigation tries again.
	fetcher.mu.Lock()
	fetcher.logsErr = nil
	fetcher.mu.Unlock()

	require.NoError(t, cache.EnsureLoaded(ctx, PageDashboard))
	assert.Equal(t, int32(4), fetcher.calls())
	assert.NotNil(t, cache.Snapshot().DashboardStats)
}

func TestEnsureLoadedEmptyResultCountsAsLoaded(t *testing.T) {
	cache, fetcher := setupTestCache()
	fetcher.membersOut = nil

	require.NoError(t, cache.EnsureLoaded(context.Background(), PageMembers))
	require.NoError(t, cache.EnsureLoaded(context.Background(), PageMembers))

	assert.Equal(t, int32(1), fetcher.members.Load())
	members := cache.Snapshot().Members
	assert.NotNil(t, members)
	assert.Empty(t, members)
}

func TestEnsureLoadedUnknownPage(t *testing.T) {
	cache, fetcher := setupTestCache()

	err := cache.EnsureLoaded(context.Background(), Page("reports"))
	assert.ErrorIs(t, err, ErrUnknownPage)
	assert.Zero(t, fetcher.calls())
}

func TestEnsureLoadedSharesInFlightFetch(t *testing.T) {
	cache, fetcher := setupTestCache()
	fetcher.gate = make(chan struct{})
	fetcher.started = make(chan string, 8)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.EnsureLoaded(ctx, PageMembers)
	}()

	// The first load is parked on the gate with its flag raised.
	<-fetcher.started
	assert.True(t, cache.Snapshot().Loading[PageMembers])

	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			cache.EnsureLoaded(ctx, PageMembers)
		}()
	}

	time.Sleep(20 * time.Millisecond)
	close(fetcher.gate)
	wg.Wait()

	assert.Equal(t, int32(1), fetcher.members.Load())
	assert.False(t, cache.Snapshot().Loading[PageMembers])
}

func TestInvalidateDiscardsStaleResponse(t *testing.T) {
	cache, fetcher := setupTestCache()
	fetcher.gate = make(chan struct{})
	fetcher.started = make(chan string, 8)
	ctx := context.Background()

	done := make(chan struct{})
	go func() {
		defer close(done)
		cache.EnsureLoaded(ctx, PageMembers)
	}()

	<-fetcher.started
	cache.Invalidate(Members)
	close(fetcher.gate)
	<-done

	state := cache.Snapshot()
	assert.Nil(t, state.Members)
	assert.False(t, state.Loading[PageMembers])

	// A fresh load lands normally.
	require.NoError(t, cache.EnsureLoaded(ctx, PageMembers))
	assert.Len(t, cache.Snapshot().Members, 1)
	assert.Equal(t, int32(2), fetcher.members.Load())
}

func TestEnsureLoadedAfterInvalidateDuringFetch(t *testing.T) {
	cache, fetcher := setupTestCache()
	fetcher.gate = make(chan struct{})
	fetcher.started = make(chan string, 8)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.EnsureLoaded(ctx, PageMembers)
	}()
	<-fetcher.started

	// The in-flight fetch is stale now, the next navigation must not join it.
	cache.Invalidate(Members)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.EnsureLoaded(ctx, PageMembers)
	}()
	<-fetcher.started
	assert.True(t, cache.Snapshot().Loading[PageMembers])

	close(fetcher.gate)
	wg.Wait()

	state := cache.Snapshot()
	assert.Equal(t, int32(2), fetcher.members.Load())
	assert.Len(t, state.Members, 1)
	assert.False(t, state.Loading[PageMembers])
}

func TestSeedDuringDashboardLoad(t *testing.T) {
	cache, fetcher := setupTestCache()
	fetcher.gate = make(chan struct{})
	fetcher.started = make(chan string, 8)
	ctx := context.Background()

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.EnsureLoaded(ctx, PageDashboard)
	}()
	<-fetcher.started
	<-fetcher.started

	_, err := cache.Seed(ctx, false)
	require.NoError(t, err)

	wg.Add(1)
	go func() {
		defer wg.Done()
		cache.EnsureLoaded(ctx, PageDashboard)
	}()
	<-fetcher.started
	<-fetcher.started

	close(fetcher.gate)
	wg.Wait()

	state := cache.Snapshot()
	assert.Equal(t, int32(2), fetcher.stats.Load())
	assert.Equal(t, int32(2), fetcher.accessLogs.Load())
	assert.NotNil(t, state.DashboardStats)
	assert.Len(t, state.AccessLogs, 1)
	assert.False(t, state.Loading[PageDashboard])
}

func TestInvalidateForcesRefetch(t *testing.T) {
	cache, fetcher := setupTestCache()
	ctx := context.Background()

	require.NoError(t, cache.EnsureLoaded(ctx, PagePayments))
	cache.Invalidate(Payments)
	assert.Nil(t, cache.Snapshot().Payments)

	require.NoError(t, cache.EnsureLoaded(ctx, PagePayments))
	assert.Equal(t, int32(2), fetcher.payments.Load())
}

func TestSeedInvalidatesSeededDomains(t *testing.T) {
	cache, fetcher := setupTestCache()
	ctx := context.Background()

	for _, page := range []Page{PageDashboard, PageMembers, PagePayments, PageBranches} {
		require.NoError(t, cache.EnsureLoaded(ctx, page))
	}

	message, err := cache.Seed(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "샘플 데이터가 생성되었습니다", message)
	assert.Equal(t, int32(1), fetcher.seeds.Load())

	state := cache.Snapshot()
	assert.Nil(t, state.DashboardStats)
	assert.Nil(t, state.Members)
	assert.Nil(t, state.Payments)
	assert.Nil(t, state.AccessLogs)
	assert.NotEmpty(t, state.Branches)
}

func TestSnapshotIsACopy(t *testing.T) {
	cache, _ := setupTestCache()
	ctx := context.Background()
	require.NoError(t, cache.EnsureLoaded(ctx, PageDashboard))

	state := cache.Snapshot()
	state.DashboardStats.TotalMembers = 100
	state.AccessLogs[0].MemberName = "changed"
	state.Loading[PageDashboard] = true

	fresh := cache.Snapshot()
	assert.Equal(t, 4, fresh.DashboardStats.TotalMembers)
	assert.Equal(t, "김민수", fresh.AccessLogs[0].MemberName)
	assert.False(t, fresh.Loading[PageDashboard])
}

func TestSubscribe(t *testing.T) {
	cache, _ := setupTestCache()
	updates, cancel := cache.Subscribe()

	require.NoError(t, cache.EnsureLoaded(context.Background(), PageMembers))

	// Loading, loaded and cleared were published; only the latest one is kept.
	select {
	case state := <-updates:
		assert.Len(t, state.Members, 1)
		assert.False(t, state.Loading[PageMembers])
	case <-time.After(time.Second):
		t.Fatal("no state published")
	}

	cancel()
	cancel()
	_, open := <-updates
	assert.False(t, open)

	// Publishing after the cancel doesn't block.
	cache.Invalidate(Members)
}
