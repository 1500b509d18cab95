// ABOUTME: Tests for CLI commands against a stub API server
// ABOUTME: Verifies command wiring, flag handling, and dashboard rendering
package cli

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

func setupTestClient(t *testing.T) (*api.Client, *[]string) {
	t.Helper()

	var requests []string
	mux := http.NewServeMux()
	record := func(r *http.Request) {
		requests = append(requests, r.Method+" "+r.URL.Path)
	}
	list := func(body string) http.HandlerFunc {
		return func(w http.ResponseWriter, r *http.Request) {
			record(r)
			switch r.Method {
			case http.MethodGet:
				_, _ = w.Write([]byte(body))
			case http.MethodPost:
				w.WriteHeader(http.StatusCreated)
				_, _ = w.Write([]byte(`{"id": 99}`))
			}
		}
	}
	item := func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_ = json.NewEncoder(w).Encode(map[string]any{"id": 1})
	}

	mux.HandleFunc("/accounts", list(`[{"id": 1, "name": "Acme Corp", "industry": "Manufacturing"}]`))
	mux.HandleFunc("/accounts/", item)
	mux.HandleFunc("/contacts", list(`[{"id": 1, "first_name": "Ada", "last_name": "Lovelace", "account_id": 1}]`))
	mux.HandleFunc("/contacts/", item)
	mux.HandleFunc("/leads", list(`[{"id": 1, "title": "Acme deal", "stage": "Proposal", "status": "open", "value_cents": 100000, "probability": 60}]`))
	mux.HandleFunc("/leads/", item)
	mux.HandleFunc("/activities", list(`[]`))
	mux.HandleFunc("/tasks", list(`[{"id": 1, "title": "Call Acme", "linked_type": "lead", "linked_id": 1, "priority": "high", "status": "open"}]`))
	mux.HandleFunc("/tasks/", item)
	mux.HandleFunc("/dashboard/stats", func(w http.ResponseWriter, r *http.Request) {
		record(r)
		_, _ = w.Write([]byte(`{"open_leads": 1, "total_accounts": 1, "open_tasks": 1, "pipeline_value": 1000.0}`))
	})

	ts := httptest.NewServer(mux)
	t.Cleanup(ts.Close)
	return api.NewClient(ts.URL), &requests
}

func TestListAccountsCommand(t *testing.T) {
	client, _ := setupTestClient(t)
	if err := ListAccountsCommand(context.Background(), client, []string{"--industry", "Manufacturing"}); err != nil {
		t.Errorf("ListAccountsCommand failed: %v", err)
	}
}

func TestAddLeadCommandParsesDollars(t *testing.T) {
	client, requests := setupTestClient(t)
	err := AddLeadCommand(context.Background(), client, []string{
		"--title", "New deal", "--value", "1234.50",
	})
	if err != nil {
		t.Fatalf("AddLeadCommand failed: %v", err)
	}

	found := false
	for _, req := range *requests {
		if req == "POST /leads" {
			found = true
		}
	}
	if !found {
		t.Error("AddLeadCommand should POST to /leads")
	}
}

func TestAddLeadCommandRejectsBadValue(t *testing.T) {
	client, _ := setupTestClient(t)
	err := AddLeadCommand(context.Background(), client, []string{
		"--title", "New deal", "--value", "abc",
	})
	if err == nil {
		t.Error("AddLeadCommand should reject a non-numeric value")
	}
}

func TestCompleteTaskCommand(t *testing.T) {
	client, requests := setupTestClient(t)
	if err := CompleteTaskCommand(context.Background(), client, []string{"1"}); err != nil {
		t.Fatalf("CompleteTaskCommand failed: %v", err)
	}

	found := false
	for _, req := range *requests {
		if req == "PATCH /tasks/1" {
			found = true
		}
	}
	if !found {
		t.Error("CompleteTaskCommand should PATCH /tasks/1")
	}
}

func TestMoveLeadCommandRejectsUnknownStage(t *testing.T) {
	client, _ := setupTestClient(t)
	err := MoveLeadCommand(context.Background(), client, []string{"1", "Imaginary"})
	if err == nil {
		t.Error("MoveLeadCommand should reject an unknown stage")
	}
	if err != nil && !strings.Contains(err.Error(), "unknown stage") {
		t.Errorf("Unexpected error: %v", err)
	}
}

func TestUpdateAccountCommandRequiresFields(t *testing.T) {
	client, _ := setupTestClient(t)
	err := UpdateAccountCommand(context.Background(), client, []string{"1"})
	if err == nil || !strings.Contains(err.Error(), "no fields to update") {
		t.Errorf("Expected 'no fields to update', got: %v", err)
	}
}

func TestRenderDashboard(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-48 * time.Hour)

	stats := api.DashboardStats{OpenLeads: 2, TotalAccounts: 3, OpenTasks: 1, PipelineValue: 3500}
	buckets := []views.StageBucket{
		{Stage: models.StageNew},
		{Stage: models.StageProposal, Leads: []models.Lead{{ID: 1, Title: "Acme deal"}}, ValueCents: 100000},
	}
	tasks := []models.Task{
		{ID: 1, Title: "Call Acme", Status: models.TaskStatusOpen, DueAt: &past},
	}

	out := renderDashboard(stats, buckets, tasks, now)

	if !strings.Contains(out, "TRAILTRACK DASHBOARD") {
		t.Error("Dashboard should contain the header")
	}
	if !strings.Contains(out, "2 open leads") {
		t.Error("Dashboard should show the open lead count")
	}
	if !strings.Contains(out, "$3500.00") {
		t.Error("Dashboard should show the pipeline value")
	}
	if !strings.Contains(out, "Proposal") {
		t.Error("Dashboard should show non-empty stages")
	}
	if !strings.Contains(out, "1 task(s) overdue") {
		t.Error("Dashboard should flag overdue tasks")
	}
	if !strings.Contains(out, "Overdue by 2 days") {
		t.Error("Overdue tasks should show humanized due dates")
	}
}
