package jobs

import (
	"context"
	statsservice "fitconsole/api/services/stats"
	"fitconsole/pkg/logger"
	"fmt"
	"time"
)

// SnapshotJob stores the dashboard numbers of the day.
type SnapshotJob struct {
	stats   *statsservice.StatsService
	logger  logger.Interface
	timeout time.Duration
}

// NewSnapshotJob creates the job over the stats service.
func NewSnapshotJob(stats *statsservice.StatsService, log logger.Interface) *SnapshotJob {
	return &SnapshotJob{stats: stats, logger: log, timeout: time.Minute}
}

// Run takes the snapshot, a second run on the same day overwrites it.
func (j *SnapshotJob) Run() error {
	ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
	defer cancel()

	j.logger.Infof("Starting stats snapshot")
	snapshot, err := j.stats.Snapshot(ctx)
	if err != nil {
		j.logger.Errorf("Error taking the stats snapshot: %v", err)
		return fmt.Errorf("couldn't take the stats snapshot: %w", err)
	}

	j.logger.Infof("Stats snapshot of %s stored: %d members, %d access today",
		snapshot.Date, snapshot.Stats.TotalMembers, snapshot.Stats.TodayAccess)
	return nil
}
