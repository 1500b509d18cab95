// ABOUTME: Auth and dashboard endpoint wrappers
// ABOUTME: Covers /auth/login, /auth/register, /me, and /dashboard/stats
package api

import (
	"context"

	"github.com/JarvisforJira/TrailTrack/models"
)

// LoginResponse is the payload from a successful POST /auth/login.
type LoginResponse struct {
	AccessToken string      `json:"access_token"`
	User        models.User `json:"user"`
}

// Login exchanges credentials for a bearer token and identity.
func (c *Client) Login(ctx context.Context, email, password string) (*LoginResponse, error) {
	body := map[string]string{"email": email, "password": password}
	var resp LoginResponse
	if err := c.Post(ctx, "/auth/login", body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates a new user. A success carries no session material; the
// caller logs in separately.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	body := map[string]string{"name": name, "email": email, "password": password}
	return c.Post(ctx, "/auth/register", body, nil)
}

// Me resolves the current bearer token to an identity.
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.Get(ctx, "/me", &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// DashboardStats is the server-computed summary from GET /dashboard/stats.
// PipelineValue arrives in dollars, unlike the per-lead value_cents fields.
type DashboardStats struct {
	OpenLeads     int     `json:"open_leads"`
	TotalAccounts int     `json:"total_accounts"`
	OpenTasks     int     `json:"open_tasks"`
	PipelineValue float64 `json:"pipeline_value"`
}

// FetchDashboardStats fetches the summary figures.
func (c *Client) FetchDashboardStats(ctx context.Context) (*DashboardStats, error) {
	var stats DashboardStats
	if err := c.Get(ctx, "/dashboard/stats", &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}
