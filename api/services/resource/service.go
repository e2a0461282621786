package resourceservice

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

// ResourceService creates and lists the stored resources.
type ResourceService struct {
	MemberRepository    repositories.MemberRepository
	PaymentRepository   repositories.PaymentRepository
	AccessLogRepository repositories.AccessLogRepository
	statsCache          *cache.StatsCache
	now                 func() time.Time
}

// ResourceServiceDeps is the dependency list for the resource service.
type ResourceServiceDeps struct {
	Store      kv.Store
	StatsCache *cache.StatsCache
	Logger     logger.Interface
	Now        func() time.Time
}

// NewResourceService creates a resource service.
func NewResourceService(deps *ResourceServiceDeps) *ResourceService {
	now := deps.Now
	if now == nil {
		now = time.Now
	}

	return &ResourceService{
		MemberRepository:    repositories.NewMemberRepository(deps.Store, deps.Logger),
		PaymentRepository:   repositories.NewPaymentRepository(deps.Store, deps.Logger),
		AccessLogRepository: repositories.NewAccessLogRepository(deps.Store, deps.Logger),
		statsCache:          deps.StatsCache,
		now:                 now,
	}
}

// ListMembers returns every member in creation order.
func (rs *ResourceService) ListMembers(ctx context.Context) ([]models.Member, error) {
	return rs.MemberRepository.List(ctx)
}

// ListPayments returns every payment in creation order.
func (rs *ResourceService) ListPayments(ctx context.Context) ([]models.Payment, error) {
	return rs.PaymentRepository.List(ctx)
}

// ListAccessLogs returns every access log in creation order.
func (rs *ResourceService) ListAccessLogs(ctx context.Context) ([]models.AccessLog, error) {
	return rs.AccessLogRepository.List(ctx)
}

// CreateMember stores a new active member that joined today.
func (rs *ResourceService) CreateMember(ctx context.Context, input dto.MemberInput) (*models.Member, error) {
	now := rs.now()
	member := models.Member{
		ID:         kv.NewKey(kv.KindMember, now),
		Name:       input.Name,
		Phone:      input.Phone,
		JoinDate:   models.Date(now),
		Membership: input.Membership,
		Status:     models.MemberActive,
		LastVisit:  nil,
		CreatedAt:  models.Timestamp(now),
	}

	if err := rs.MemberRepository.Save(ctx, member); err != nil {
		return nil, err
	}
	rs.statsCache.Invalidate()

	return &member, nil
}

// CreatePayment stores a payment dated today, done unless told otherwise.
func (rs *ResourceService) CreatePayment(ctx context.Context, input dto.PaymentInput) (*models.Payment, error) {
	now := rs.now()

	status := input.Status
	if status == "" {
		status = models.PaymentDone
	}

	payment := models.Payment{
		ID:             kv.NewKey(kv.KindPayment, now),
		MemberName:     input.MemberName,
		Amount:         input.Amount,
		PaymentDate:    models.Date(now),
		PaymentMethod:  input.PaymentMethod,
		Status:         status,
		MembershipType: input.MembershipType,
		CreatedAt:      models.Timestamp(now),
	}

	if err := rs.PaymentRepository.Save(ctx, payment); err != nil {
		return nil, err
	}
	rs.statsCache.Invalidate()

	return &payment, nil
}

// CreateAccessLog stores an access attempt happening now.
func (rs *ResourceService) CreateAccessLog(ctx context.Context, input dto.AccessLogInput) (*models.AccessLog, error) {
	now := rs.now()

	var reason *string
	if input.Reason != nil && *input.Reason != "" {
		r := *input.Reason
		reason = &r
	}

	accessLog := models.AccessLog{
		ID:         kv.NewKey(kv.KindAccess, now),
		MemberName: input.MemberName,
		AccessTime: models.Timestamp(now),
		AccessType: input.AccessType,
		Status:     input.Status,
		Device:     input.Device,
		Reason:     reason,
		CreatedAt:  models.Timestamp(now),
	}

	if err := rs.AccessLogRepository.Save(ctx, accessLog); err != nil {
		return nil, err
	}
	rs.statsCache.Invalidate()

	return &accessLog, nil
}
