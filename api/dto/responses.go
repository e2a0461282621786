package dto

import "fitconsole/pkg/models"

// ErrorResponse is the failure envelope of every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// MembersResponse lists the members.
type MembersResponse struct {
	Success bool            `json:"success"`
	Members []models.Member `json:"members"`
}

// MemberResponse echoes a created member.
type MemberResponse struct {
	Success bool          `json:"success"`
	Member  models.Member `json:"member"`
}

// PaymentsResponse lists the payments.
type PaymentsResponse struct {
	Success  bool             `json:"success"`
	Payments []models.Payment `json:"payments"`
}

// PaymentResponse echoes a created payment.
type PaymentResponse struct {
	Success bool           `json:"success"`
	Payment models.Payment `json:"payment"`
}

// AccessLogsResponse lists the access logs.
type AccessLogsResponse struct {
	Success bool               `json:"success"`
	Logs    []models.AccessLog `json:"logs"`
}

// AccessLogResponse echoes a created access log.
type AccessLogResponse struct {
	Success   bool             `json:"success"`
	AccessLog models.AccessLog `json:"accessLog"`
}

// StatsResponse carries the dashboard stats.
type StatsResponse struct {
	Success bool                  `json:"success"`
	Stats   models.DashboardStats `json:"stats"`
}

// MessageResponse is a plain success message.
type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// StatsHistoryResponse lists the daily snapshots.
type StatsHistoryResponse struct {
	Success bool                   `json:"success"`
	History []models.StatsSnapshot `json:"history"`
}
