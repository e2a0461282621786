package models

import "time"

// Layouts used on every stored record.
const (
	DateLayout      = "2006-01-02"
	MonthLayout     = "2006-01"
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// Member status values.
const (
	MemberActive   = "활성"
	MemberInactive = "비활성"
	MemberExpired  = "만료"
)

// Payment status values.
const (
	PaymentDone     = "완료"
	PaymentPending  = "대기"
	PaymentRefunded = "환불"
)

// Access status values.
const (
	AccessGranted = "성공"
	AccessDenied  = "실패"
)

// Member of the club.
type Member struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	Phone      string  `json:"phone"`
	JoinDate   string  `json:"joinDate"`
	Membership string  `json:"membership"`
	Status     string  `json:"status"`
	LastVisit  *string `json:"lastVisit"`
	CreatedAt  string  `json:"createdAt"`
}

// Payment made by a member.
type Payment struct {
	ID             string `json:"id"`
	MemberName     string `json:"memberName"`
	Amount         int64  `json:"amount"`
	PaymentDate    string `json:"paymentDate"`
	PaymentMethod  string `json:"paymentMethod"`
	Status         string `json:"status"`
	MembershipType string `json:"membershipType"`
	CreatedAt      string `json:"createdAt"`
}

// AccessLog is a single entrance attempt.
type AccessLog struct {
	ID         string  `json:"id"`
	MemberName string  `json:"memberName"`
	AccessTime string  `json:"accessTime"`
	AccessType string  `json:"accessType"`
	Status     string  `json:"status"`
	Device     string  `json:"device"`
	Reason     *string `json:"reason"`
	CreatedAt  string  `json:"createdAt"`
}

// DashboardStats is derived on demand and never persisted, except for daily snapshots.
type DashboardStats struct {
	TotalMembers       int   `json:"totalMembers"`
	ActiveMembers      int   `json:"activeMembers"`
	TodayAccess        int   `json:"todayAccess"`
	ThisMonthRevenue   int64 `json:"thisMonthRevenue"`
	NewMembersThisWeek int   `json:"newMembersThisWeek"`
	AttendanceRate     int   `json:"attendanceRate"`
}

// StatsSnapshot is the stored form of a daily dashboard snapshot.
type StatsSnapshot struct {
	Date    string         `json:"date"`
	Stats   DashboardStats `json:"stats"`
	TakenAt string         `json:"takenAt"`
}

// Date formats a time as a calendar date in UTC.
func Date(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// Timestamp formats a time as an ISO-8601 UTC timestamp with milliseconds.
func Timestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// Record is implemented by every stored resource.
type Record interface {
	RecordID() string
	RecordCreatedAt() string
}

func (m Member) RecordID() string { return m.ID }
func (m Member) RecordCreatedAt() string { return m.CreatedAt }
func (p Payment) RecordID() string { return p.ID }
func (p Payment) RecordCreatedAt() string { return p.CreatedAt }
func (a AccessLog) RecordID() string { return a.ID }
func (a AccessLog) RecordCreatedAt() string { return a.CreatedAt }
