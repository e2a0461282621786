package seedservice

import (
	"context"
	"fitconsole/api/cache"
	"fitconsole/api/dto"
	"fitconsole/api/repositories"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/models"
	"time"
)

// Sample members inserted by every seed.
var SampleMembers = []dto.MemberInput{
	{Name: "김민수", Phone: "010-1234-5678", Membership: "VIP"},
	{Name: "이수진", Phone: "010-2345-6789", Membership: "일반"},
	{Name: "박준호", Phone: "010-3456-7890", Membership: "PT"},
	{Name: "최유리", Phone: "010-4567-8901", Membership: "VIP"},
}

// Sample payments inserted by every seed.
var SamplePayments = []dto.PaymentInput{
	{MemberName: "김민수", Amount: 89000, PaymentMethod: "카드", MembershipType: "VIP 월회원권"},
	{MemberName: "이수진", Amount: 59000, PaymentMethod: "카드", MembershipType: "일반 월회원권"},
	{MemberName: "박준호", Amount: 120000, PaymentMethod: "현금", MembershipType: "PT 10회권"},
	{MemberName: "최유리", Amount: 89000, PaymentMethod: "카드", MembershipType: "VIP 월회원권"},
}

var expiredPass = "만료된 이용권"

// Sample access logs inserted by every seed.
var SampleAccessLogs = []dto.AccessLogInput{
	{MemberName: "김민수", AccessType: "QR", Status: models.AccessGranted, Device: "QR 스캐너 #1"},
	{MemberName: "이수진", AccessType: "QR", Status: models.AccessGranted, Device: "QR 스캐너 #2"},
	{MemberName: "박준호", AccessType: "QR", Status: models.AccessDenied, Device: "QR 스캐너 #1", Reason: &expiredPass},
	{MemberName: "최유리", AccessType: "Suprema", Status: models.AccessGranted, Device: "Suprema 단말기 #1"},
}

// SeedResult counts the inserted records.
type SeedResult struct {
	Members    int
	Payments   int
	AccessLogs int
}

// SeedService populates the store with the demo batch.
type SeedService struct {
	MemberRepository    repositories.MemberRepository
	PaymentRepository   repositories.PaymentRepository
	AccessLogRepository repositories.AccessLogRepository
	statsCache          *cache.StatsCache
	logger              logger.Interface
	now                 func() time.Time
}

// SeedServiceDeps is the dependency list for the seed service.
type SeedServiceDeps struct {
	Store      kv.Store
	StatsCache *cache.StatsCache
	Logger     logger.Interface
	Now        func() time.Time
}

// NewSeedService creates a seed service.
func NewSeedService(deps *SeedServiceDeps) *SeedService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}
	log := deps.Logger
	if log == nil {
		log = logger.Nop{}
	}

	return &SeedService{
		MemberRepository:    repositories.NewMemberRepository(deps.Store, log),
		PaymentRepository:   repositories.NewPaymentRepository(deps.Store, log),
		AccessLogRepository: repositories.NewAccessLogRepository(deps.Store, log),
		statsCache:          deps.StatsCache,
		logger:              log,
		now:                 now,
	}
}

// Seed inserts the sample batch.
// By default every call mints fresh keys and duplicates the data. With idempotent
// set the keys come from the sample content, so seeding again overwrites.
func (ss *SeedService) Seed(ctx context.Context, idempotent bool) (*SeedResult, error) {
	defer ss.statsCache.Invalidate()

	result := &SeedResult{}

	for _, input := range SampleMembers {
		now := ss.now()
		key, err := ss.key(kv.KindMember, input, now, idempotent)
		if err != nil {
			return result, err
		}

		today := models.Date(now)
		member := models.Member{
			ID:         key,
			Name:       input.Name,
			Phone:      input.Phone,
			JoinDate:   today,
			Membership: input.Membership,
			Status:     models.MemberActive,
			LastVisit:  &today,
			CreatedAt:  models.Timestamp(now),
		}
		if err := ss.MemberRepository.Save(ctx, member); err != nil {
			return result, err
		}
		result.Members++
	}

	for _, input := range SamplePayments {
		now := ss.now()
		key, err := ss.key(kv.KindPayment, input, now, idempotent)
		if err != nil {
			return result, err
		}

		payment := models.Payment{
			ID:             key,
			MemberName:     input.MemberName,
			Amount:         input.Amount,
			PaymentDate:    models.Date(now),
			PaymentMethod:  input.PaymentMethod,
			Status:         models.PaymentDone,
			MembershipType: input.MembershipType,
			CreatedAt:      models.Timestamp(now),
		}
		if err := ss.PaymentRepository.Save(ctx, payment); err != nil {
			return result, err
		}
		result.Payments++
	}

	for _, input := range SampleAccessLogs {
		now := ss.now()
		key, err := ss.key(kv.KindAccess, input, now, idempotent)
		if err != nil {
			return result, err
		}

		accessLog := models.AccessLog{
			ID:         key,
			MemberName: input.MemberName,
			AccessTime: models.Timestamp(now),
			AccessType: input.AccessType,
			Status:     input.Status,
			Device:     input.Device,
			Reason:     input.Reason,
			CreatedAt:  models.Timestamp(now),
		}
		if err := ss.AccessLogRepository.Save(ctx, accessLog); err != nil {
			return result, err
		}
		result.AccessLogs++
	}

	ss.logger.Infof("seeded %d members, %d payments, %d access logs (idempotent=%t)",
		result.Members, result.Payments, result.AccessLogs, idempotent)

	return result, nil
}

// key mints the record key for the seeding mode.
func (ss *SeedService) key(kind string, input any, now time.Time, idempotent bool) (string, error) {
	if idempotent {
		return kv.NewContentKey(kind, input)
	}
	return kv.NewBatchKey(kind, now), nil
}
