package repositories

import (
	"context"
	"fitconsole/pkg/kv"
	"fitconsole/pkg/logger"
	"fitconsole/pkg/messages"
	"fitconsole/pkg/models"
	"fmt"
	"sort"
)

// RecordRepository is the public interface for a stored resource kind.
type RecordRepository[T models.Record] interface {
	List(ctx context.Context) ([]T, error)
	Save(ctx context.Context, record T) error
}

// Repository over the key-value store for one kind.
type recordRepository[T models.Record] struct {
	store  kv.Store
	kind   string
	logger logger.Interface
}

// MemberRepository stores the members.
type MemberRepository = RecordRepository[models.Member]

// PaymentRepository stores the payments.
type PaymentRepository = RecordRepository[models.Payment]

// AccessLogRepository stores the access logs.
type AccessLogRepository = RecordRepository[models.AccessLog]

// NewMemberRepository creates the member repository.
func NewMemberRepository(store kv.Store, log logger.Interface) MemberRepository {
	return newRecordRepository[models.Member](store, kv.KindMember, log)
}

// NewPaymentRepository creates the payment repository.
func NewPaymentRepository(store kv.Store, log logger.Interface) PaymentRepository {
	return newRecordRepository[models.Payment](store, kv.KindPayment, log)
}

// NewAccessLogRepository creates the access log repository.
func NewAccessLogRepository(store kv.Store, log logger.Interface) AccessLogRepository {
	return newRecordRepository[models.AccessLog](store, kv.KindAccess, log)
}

func newRecordRepository[T models.Record](store kv.Store, kind string, log logger.Interface) *recordRepository[T] {
	if log == nil {
		log = logger.Nop{}
	}
	return &recordRepository[T]{store: store, kind: kind, logger: log}
}

// List scans the kind prefix and returns the records in creation order.
// Scan order isn't chronological on every driver, so the records are sorted here.
func (r *recordRepository[T]) List(ctx context.Context) ([]T, error) {
	entries, err := r.store.GetByPrefix(ctx, kv.Prefix(r.kind))
	if err != nil {
		return nil, fmt.Errorf("couldn't list %s records: %w", r.kind, err)
	}

	records := kv.Decode[T](entries, func(key string, err error) {
		r.logger.Errorf(messages.DecodeRecordFailed, key, err)
	})

	sort.SliceStable(records, func(i, j int) bool {
		a, b := records[i], records[j]
		if a.RecordCreatedAt() != b.RecordCreatedAt() {
			return a.RecordCreatedAt() < b.RecordCreatedAt()
		}
		return a.RecordID() < b.RecordID()
	})

	return records, nil
}

// Save upserts the record at its id.
func (r *recordRepository[T]) Save(ctx context.Context, record T) error {
	if err := r.store.Set(ctx, record.RecordID(), record); err != nil {
		return fmt.Errorf("couldn't save %s: %w", record.RecordID(), err)
	}
	return nil
}
