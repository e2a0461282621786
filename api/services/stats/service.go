package statsservice

import (
	"context"
	"fitconsole/api/cache"
	"fitconsole/api/repositories"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/models"
	"fmt"
	"math"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"
)

// Days counted as "this week", today included.
const newMemberWindowDays = 7

// StatsService derives the dashboard numbers from full scans.
type StatsService struct {
	store               kv.Store
	MemberRepository    repositories.MemberRepository
	PaymentRepository   repositories.PaymentRepository
	AccessLogRepository repositories.AccessLogRepository
	cache               *cache.StatsCache
	logger              logger.Interface
	now                 func() time.Time
}

// StatsServiceDeps is the dependency list for the stats service.
type StatsServiceDeps struct {
	Store      kv.Store
	StatsCache *cache.StatsCache
	Logger     logger.Interface
	Now        func() time.Time
}

// NewStatsService creates a stats service.
func NewStatsService(deps *StatsServiceDeps) *StatsService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}

	return &StatsService{
		store:               deps.Store,
		MemberRepository:    repositories.NewMemberRepository(deps.Store, log),
		PaymentRepository:   repositories.NewPaymentRepository(deps.Store, log),
		AccessLogRepository: repositories.NewAccessLogRepository(deps.Store, log),
		cache:               deps.StatsCache,
		logger:              log,
		now:                 now,
	}
}

// DashboardStats scans members, payments and access logs concurrently and aggregates them.
// A failure on any scan fails the whole computation.
func (ss *StatsService) DashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	now := ss.now()
	today := models.Date(now)

	if cached, ok := ss.cache.Get(today); ok {
		return cached, nil
	}
	epoch := ss.cache.Epoch()

	var (
		members  []models.Member
		payments []models.Payment
		logs     []models.AccessLog
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		members, err = ss.MemberRepository.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		payments, err = ss.PaymentRepository.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		logs, err = ss.AccessLogRepository.List(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	stats := ComputeStats(members, payments, logs, now)
	ss.cache.Set(today, stats, epoch)

	return &stats, nil
}

// ComputeStats aggregates the records as seen at the given instant.
// Dates are matched as UTC string prefixes, the same way they are stored.
func ComputeStats(members []models.Member, payments []models.Payment, logs []models.AccessLog, now time.Time) models.DashboardStats {
	today := models.Date(now)
	month := now.UTC().Format(models.MonthLayout)
	weekStart := models.Date(now.AddDate(0, 0, -(newMemberWindowDays - 1)))

	stats := models.DashboardStats{
		TotalMembers: len(members),
	}

	for _, m := range members {
		if m.Status == models.MemberActive {
			stats.ActiveMembers++
		}
		if m.JoinDate >= weekStart && m.JoinDate <= today {
			stats.NewMembersThisWeek++
		}
	}

	for _, l := range logs {
		if strings.HasPrefix(l.AccessTime, today) {
			stats.TodayAccess++
		}
	}

	for _, p := range payments {
		if strings.HasPrefix(p.PaymentDate, month) {
			stats.ThisMonthRevenue += p.Amount
		}
	}

	stats.AttendanceRate = AttendanceRate(stats.TodayAccess, stats.ActiveMembers)

	return stats
}

// AttendanceRate is round(todayAccess / activeMembers * 100), zero without active members.
func AttendanceRate(todayAccess, activeMembers int) int {
	if activeMembers == 0 {
		return 0
	}
	return int(math.Floor(float64(todayAccess)*100/float64(activeMembers) + 0.5))
}

// Snapshot computes the current stats and stores them under the day key.
// Taking it twice on the same day overwrites the first one.
func (ss *StatsService) Snapshot(ctx context.Context) (*models.StatsSnapshot, error) {
	stats, err := ss.DashboardStats(ctx)
	if err != nil {
		return nil, err
	}

	now := ss.now()
	snapshot := models.StatsSnapshot{
		Date:    models.Date(now),
		Stats:   *stats,
		TakenAt: models.Timestamp(now),
	}

	key := kv.Prefix(kv.KindStats) + snapshot.Date
	if err := ss.store.Set(ctx, key, snapshot); err != nil {
		return nil, fmt.Errorf("couldn't store the stats snapshot: %w", err)
	}
	ss.logger.Infof("stored stats snapshot %s", key)

	return &snapshot, nil
}

// History returns the stored snapshots ordered by date.
func (ss *StatsService) History(ctx context.Context) ([]models.StatsSnapshot, error) {
	entries, err := ss.store.GetByPrefix(ctx, kv.Prefix(kv.KindStats))
	if err != nil {
		return nil, fmt.Errorf("couldn't list the stats snapshots: %w", err)
	}

	snapshots := kv.Decode[models.StatsSnapshot](entries, func(key string, err error) {
		ss.logger.Errorf("couldn't decode snapshot %s: %v", key, err)
	})
	sort.Slice(snapshots, func(i, j int) bool { return snapshots[i].Date < snapshots[j].Date })

	return snapshots, nil
}
