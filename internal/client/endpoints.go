package client

import (
	"alcyxob/nutrition-app/internal/api"
	"alcyxob/nutrition-app/internal/domain"
	"alcyxob/nutrition-app/internal/service"
	"context"
	"fmt"
	"net/http"
	"net/url"
)

// --- Auth ---

func (c *Client) Register(ctx context.Context, name, email, password string) (*api.UserResponse, error) {
	var user api.UserResponse
	req := api.RegisterRequest{Name: name, Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/register", nil, req, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Login stores the returned token in the session.
func (c *Client) Login(ctx context.Context, email, password string) (*api.LoginResponse, error) {
	var resp api.LoginResponse
	req := api.LoginRequest{Email: email, Password: password}
	if err := c.do(ctx, http.MethodPost, "/auth/login", nil, req, &resp); err != nil {
		return nil, err
	}
	if err := c.session.Start(resp.Token); err != nil {
		return nil, fmt.Errorf("saving session token: %w", err)
	}
	return &resp, nil
}

func (c *Client) Logout() error {
	return c.session.End()
}

func (c *Client) Me(ctx context.Context) (*api.IdentityResponse, error) {
	var id api.IdentityResponse
	if err := c.do(ctx, http.MethodGet, "/me", nil, nil, &id); err != nil {
		return nil, err
	}
	return &id, nil
}

// --- Meal logs ---

func (c *Client) CreateMealLog(ctx context.Context, req api.MealLogRequest) (*api.MealLogResponse, error) {
	var entry api.MealLogResponse
	if err := c.do(ctx, http.MethodPost, "/meallogs", nil, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// ListMealLogs returns all entries, or only those of date when it is set.
func (c *Client) ListMealLogs(ctx context.Context, date string) ([]api.MealLogResponse, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"date": {date}}
	}
	var entries []api.MealLogResponse
	if err := c.do(ctx, http.MethodGet, "/meallogs", q, nil, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

func (c *Client) GetMealLog(ctx context.Context, id string) (*api.MealLogResponse, error) {
	var entry api.MealLogResponse
	if err := c.do(ctx, http.MethodGet, "/meallogs/"+url.PathEscape(id), nil, nil, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) UpdateMealLog(ctx context.Context, id string, req api.MealLogRequest) (*api.MealLogResponse, error) {
	var entry api.MealLogResponse
	if err := c.do(ctx, http.MethodPut, "/meallogs/"+url.PathEscape(id), nil, req, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

func (c *Client) DeleteMealLog(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/meallogs/"+url.PathEscape(id), nil, nil, nil)
}

func (c *Client) DailySummary(ctx context.Context, date string) (*api.DailySummaryResponse, error) {
	var q url.Values
	if date != "" {
		q = url.Values{"date": {date}}
	}
	var summary api.DailySummaryResponse
	if err := c.do(ctx, http.MethodGet, "/meallogs/daily", q, nil, &summary); err != nil {
		return nil, err
	}
	return &summary, nil
}

// --- Goals ---

func (c *Client) ActiveGoal(ctx context.Context) (*api.GoalResponse, error) {
	var goal api.GoalResponse
	if err := c.do(ctx, http.MethodGet, "/goals/active", nil, nil, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) CreateGoal(ctx context.Context, req api.GoalRequest) (*api.GoalResponse, error) {
	var goal api.GoalResponse
	if err := c.do(ctx, http.MethodPost, "/goals", nil, req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) UpdateGoal(ctx context.Context, id string, req api.GoalRequest) (*api.GoalResponse, error) {
	var goal api.GoalResponse
	if err := c.do(ctx, http.MethodPut, "/goals/"+url.PathEscape(id), nil, req, &goal); err != nil {
		return nil, err
	}
	return &goal, nil
}

func (c *Client) CheckGoalProgress(ctx context.Context) (*api.GoalProgressResponse, error) {
	var progress api.GoalProgressResponse
	if err := c.do(ctx, http.MethodPost, "/goals/progress", nil, nil, &progress); err != nil {
		return nil, err
	}
	return &progress, nil
}

// --- Stats ---

func (c *Client) Stats(ctx context.Context, period string) (*service.StatsReport, error) {
	var q url.Values
	if period != "" {
		q = url.Values{"period": {period}}
	}
	var report service.StatsReport
	if err := c.do(ctx, http.MethodGet, "/stats", q, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

func (c *Client) Streak(ctx context.Context) (*service.StreakInfo, error) {
	var info service.StreakInfo
	if err := c.do(ctx, http.MethodGet, "/stats/streak", nil, nil, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

// --- Products ---

// LookupProduct fetches a product and a meal log prefilled from it.
// mealType and date may be empty to use the server defaults.
func (c *Client) LookupProduct(ctx context.Context, barcode, mealType, date string) (*api.ProductLookupResponse, error) {
	q := url.Values{}
	if mealType != "" {
		q.Set("mealType", mealType)
	}
	if date != "" {
		q.Set("date", date)
	}
	var resp api.ProductLookupResponse
	if err := c.do(ctx, http.MethodGet, "/products/"+url.PathEscape(barcode), q, nil, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// --- Exports ---

func (c *Client) CreateExport(ctx context.Context, format string) (*service.ExportResult, error) {
	var result service.ExportResult
	if err := c.do(ctx, http.MethodPost, "/exports", nil, api.ExportRequest{Format: format}, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

func (c *Client) ListExports(ctx context.Context) ([]service.ExportResult, error) {
	var results []service.ExportResult
	if err := c.do(ctx, http.MethodGet, "/exports", nil, nil, &results); err != nil {
		return nil, err
	}
	return results, nil
}

// --- Messages ---

func (c *Client) MessageFeed(ctx context.Context) ([]domain.MotivationalMessage, error) {
	var msgs []domain.MotivationalMessage
	if err := c.do(ctx, http.MethodGet, "/messages/feed", nil, nil, &msgs); err != nil {
		return nil, err
	}
	return msgs, nil
}

func (c *Client) MarkMessageRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/messages/"+url.PathEscape(id)+"/read", nil, nil, nil)
}
