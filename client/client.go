// Package client is the typed SDK of the console API.
package client

import (
	"context"
	"fitconsole/api/dto"
	"fitconsole/pkg/config"
	"fitconsole/pkg/messages"
	"fitconsole/pkg/models"
	"fmt"
	"strconv"

	"github.com/go-resty/resty/v2"
)

// Client calls the console API with the configured bearer token.
type Client struct {
	http *resty.Client
}

// New creates a client for the configured API.
func New(cfg config.ClientConfiguration) *Client {
	c := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetHeader("Content-Type", "application/json").
		SetTimeout(cfg.Timeout)

	if cfg.Token != "" {
		c.SetAuthToken(cfg.Token)
	}

	return &Client{http: c}
}

// GetMembers lists the members.
func (c *Client) GetMembers(ctx context.Context) ([]models.Member, error) {
	var out dto.MembersResponse
	if err := c.do(ctx, resty.MethodGet, "/members", nil, &out); err != nil {
		return nil, err
	}
	return out.Members, nil
}

// CreateMember registers a member.
func (c *Client) CreateMember(ctx context.Context, input dto.MemberInput) (*models.Member, error) {
	var out dto.MemberResponse
	if err := c.do(ctx, resty.MethodPost, "/members", input, &out); err != nil {
		return nil, err
	}
	return &out.Member, nil
}

// GetPayments lists the payments.
func (c *Client) GetPayments(ctx context.Context) ([]models.Payment, error) {
	var out dto.PaymentsResponse
	if err := c.do(ctx, resty.MethodGet, "/payments", nil, &out); err != nil {
		return nil, err
	}
	return out.Payments, nil
}

// CreatePayment records a payment.
func (c *Client) CreatePayment(ctx context.Context, input dto.PaymentInput) (*models.Payment, error) {
	var out dto.PaymentResponse
	if err := c.do(ctx, resty.MethodPost, "/payments", input, &out); err != nil {
		return nil, err
	}
	return &out.Payment, nil
}

// GetAccessLogs lists the access logs.
func (c *Client) GetAccessLogs(ctx context.Context) ([]models.AccessLog, error) {
	var out dto.AccessLogsResponse
	if err := c.do(ctx, resty.MethodGet, "/access-logs", nil, &out); err != nil {
		return nil, err
	}
	return out.Logs, nil
}

// CreateAccessLog records an access attempt.
func (c *Client) CreateAccessLog(ctx context.Context, input dto.AccessLogInput) (*models.AccessLog, error) {
	var out dto.AccessLogResponse
	if err := c.do(ctx, resty.MethodPost, "/access-logs", input, &out); err != nil {
		return nil, err
	}
	return &out.AccessLog, nil
}

// GetDashboardStats fetches the dashboard numbers.
func (c *Client) GetDashboardStats(ctx context.Context) (*models.DashboardStats, error) {
	var out dto.StatsResponse
	if err := c.do(ctx, resty.MethodGet, "/dashboard-stats", nil, &out); err != nil {
		return nil, err
	}
	return &out.Stats, nil
}

// GetStatsHistory fetches the daily snapshots.
func (c *Client) GetStatsHistory(ctx context.Context) ([]models.StatsSnapshot, error) {
	var out dto.StatsHistoryResponse
	if err := c.do(ctx, resty.MethodGet, "/dashboard-stats/history", nil, &out); err != nil {
		return nil, err
	}
	return out.History, nil
}

// SeedData asks the API to insert the sample batch and returns its message.
func (c *Client) SeedData(ctx context.Context, idempotent bool) (string, error) {
	path := "/seed-data"
	if idempotent {
		path += "?idempotent=" + strconv.FormatBool(idempotent)
	}

	var out dto.MessageResponse
	if err := c.do(ctx, resty.MethodPost, path, nil, &out); err != nil {
		return "", err
	}
	return out.Message, nil
}

// do runs the request and decodes a successful reply into out.
// Every non-2xx reply becomes ErrRequestFailed carrying the status text, the body is dropped.
func (c *Client) do(ctx context.Context, method, path string, body any, out any) error {
	req := c.http.R().
		SetContext(ctx).
		SetResult(out)
	if body != nil {
		req.SetBody(body)
	}

	resp, err := req.Execute(method, path)
	if err != nil {
		return fmt.Errorf("%s %s: %w", method, path, err)
	}
	if !resp.IsSuccess() {
		return fmt.Errorf(messages.RequestFailedMsg+": %w", resp.Status(), messages.ErrRequestFailed)
	}

	return nil
}
