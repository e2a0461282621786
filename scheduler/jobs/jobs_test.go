package jobs

import (
	"context"
	"fitconsole/api/cache"
	statsservice "fitconsole/api/services/stats"
	"fitconsole/api/services/testutil"
	internaltestutil "fitconsole/internal/testutil"
	"fitconsole/pkg/config"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newStatsService(store kv.Store, clock *internaltestutil.Clock) *statsservice.StatsService {
	return statsservice.NewStatsService(&statsservice.StatsServiceDeps{
		Store:      store,
		StatsCache: cache.NewStatsCache(nil, 0),
		Now:        clock.Now,
	})
}

func TestSnapshotJob(t *testing.T) {
	store := kv.NewMemoryStore()
	clock := internaltestutil.NewClock(internaltestutil.ReferenceTime())
	ctx := context.Background()

	require.NoError(t, store.Set(ctx, "member:1", models.Member{ID: "member:1", Status: models.MemberActive, CreatedAt: "2026-10-19T08:00:00.000Z"}))

	job := NewSnapshotJob(newStatsService(store, clock), logger.Nop{})
	require.NoError(t, job.Run())

	entries, err := store.GetByPrefix(ctx, "stats:")
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "stats:2026-10-19", entries[0].Key)
	assert.Contains(t, string(entries[0].Value), `"totalMembers":1`)
}

func TestSnapshotJobError(t *testing.T) {
	store := new(testutil.MockStore)
	store.On("GetByPrefix", mock.Anything, mock.AnythingOfType("string")).Return(nil, internaltestutil.ErrDatabase)

	clock := internaltestutil.NewClock(internaltestutil.ReferenceTime())
	job := NewSnapshotJob(newStatsService(store, clock), logger.Nop{})

	assert.ErrorIs(t, job.Run(), internaltestutil.ErrDatabase)
}

type mockUploader struct {
	mock.Mock
}

func (m *mockUploader) UploadToS3Bucket(ctx context.Context, bucket config.BucketConfiguration, objectKey string) error {
	args := m.Called(ctx, bucket, objectKey)
	return args.Error(0)
}

func TestLogUploadJob(t *testing.T) {
	uploader := new(mockUploader)
	bucket := config.BucketConfiguration{LogBucket: "console-logs"}
	uploader.On("UploadToS3Bucket", mock.Anything, bucket, "logs/scheduler/2026-10-19T09-30-00.log").Return(nil)

	job := NewLogUploadJob(uploader, bucket, "scheduler")
	job.now = func() time.Time { return internaltestutil.ReferenceTime() }

	require.NoError(t, job.Run())
	uploader.AssertExpectations(t)
}
