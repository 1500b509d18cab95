// ABOUTME: Tests for dashboard stats and drill-down selections
// ABOUTME: Covers server stats consumption, local aggregates, and task quick stats
package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JarvisforJira/TrailTrack/models"
)

func seedDashboard(crm *fakeCRM) {
	crm.add("accounts", map[string]any{"name": "Acme Corp"})
	crm.add("accounts", map[string]any{"name": "Globex"})
	crm.add("leads", leadRecord("Acme deal", models.StageProposal, 100000))
	crm.add("leads", leadRecord("Globex deal", models.StageClosedWon, 250000))
	crm.add("leads", leadRecord("Dead deal", models.StageClosedLost, 500000))
	crm.add("tasks", map[string]any{"title": "Call Acme", "linked_type": "lead", "linked_id": 1, "priority": "high", "status": "open"})
	crm.add("tasks", map[string]any{"title": "Send deck", "linked_type": "lead", "linked_id": 1, "priority": "low", "status": "done"})
}

func TestDashboardLoad(t *testing.T) {
	crm := newFakeCRM()
	seedDashboard(crm)

	dash := NewDashboard(newTestClient(t, crm))
	require.NoError(t, dash.Load(context.Background()))

	assert.Equal(t, 1, dash.Stats.OpenLeads)
	assert.Equal(t, 2, dash.Stats.TotalAccounts)
	assert.Equal(t, 1, dash.Stats.OpenTasks)
	assert.InDelta(t, 1000.0, dash.Stats.PipelineValue, 0.001)

	assert.Len(t, dash.Leads, 3)
	assert.Len(t, dash.Accounts, 2)
	assert.Len(t, dash.Tasks, 2)
}

func TestDashboardStatsCountCreatedLeads(t *testing.T) {
	crm := newFakeCRM()
	client := newTestClient(t, crm)

	leads := NewListView(client, Leads())
	require.NoError(t, leads.Create(context.Background(), models.Lead{
		Title: "Acme deal", Stage: models.StageNew, ValueCents: 120000, Probability: 50,
	}))

	dash := NewDashboard(client)
	require.NoError(t, dash.Load(context.Background()))

	assert.Equal(t, 1, dash.Stats.OpenLeads)
	assert.InDelta(t, 1200.0, dash.Stats.PipelineValue, 0.001)
}

func TestDashboardLoadSurvivesCollectionFailure(t *testing.T) {
	crm := newFakeCRM()
	seedDashboard(crm)
	crm.fail["tasks"] = true

	dash := NewDashboard(newTestClient(t, crm))
	require.NoError(t, dash.Load(context.Background()), "a failed backing collection must not fail the load")
	assert.Empty(t, dash.Tasks)
	assert.Len(t, dash.Leads, 3)
}

func TestDashboardLoadFailsWhenStatsFail(t *testing.T) {
	crm := newFakeCRM()
	crm.fail["dashboard"] = true

	dash := NewDashboard(newTestClient(t, crm))
	require.Error(t, dash.Load(context.Background()))
}

func TestComputeStats(t *testing.T) {
	leads := []models.Lead{
		{ID: 1, Stage: models.StageProposal, Status: models.StatusOpen, ValueCents: 100000},
		{ID: 2, Stage: models.StageClosedWon, Status: models.StatusClosedWon, ValueCents: 250000},
		{ID: 3, Stage: models.StageClosedLost, Status: models.StatusClosedLost, ValueCents: 500000},
		{ID: 4, Stage: models.StageNew, Status: models.StatusOpen, ValueCents: 0},
	}
	accounts := []models.Account{{ID: 1}, {ID: 2}}
	tasks := []models.Task{
		{ID: 1, Status: models.TaskStatusOpen},
		{ID: 2, Status: models.TaskStatusDone},
	}

	stats := ComputeStats(leads, accounts, tasks)
	assert.Equal(t, 2, stats.OpenLeads, "open counts non-terminal leads, valued or not")
	assert.Equal(t, 2, stats.TotalAccounts)
	assert.Equal(t, 1, stats.OpenTasks)
	// pipeline keeps closed-won, drops closed-lost and zero-value
	assert.InDelta(t, 3500.0, stats.PipelineValue, 0.001)
}

func TestDrillDowns(t *testing.T) {
	leads := []models.Lead{
		{ID: 1, Status: models.StatusOpen, ValueCents: 100000},
		{ID: 2, Status: models.StatusClosedWon, ValueCents: 250000},
		{ID: 3, Status: models.StatusClosedLost, ValueCents: 500000},
		{ID: 4, Status: models.StatusOpen, ValueCents: 0},
	}

	open := DrillOpenLeads(leads)
	require.Len(t, open, 2)
	assert.Equal(t, 1, open[0].ID)
	assert.Equal(t, 4, open[1].ID)

	pipeline := DrillPipelineLeads(leads)
	require.Len(t, pipeline, 2)
	assert.Equal(t, 1, pipeline[0].ID)
	assert.Equal(t, 2, pipeline[1].ID, "closed-won stays in the pipeline drill-down")
}

func TestTaskQuickStats(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	past := now.Add(-24 * time.Hour)
	future := now.Add(24 * time.Hour)

	tasks := []models.Task{
		{ID: 1, Status: models.TaskStatusOpen, DueAt: &past},
		{ID: 2, Status: models.TaskStatusOpen, DueAt: &future},
		{ID: 3, Status: models.TaskStatusOpen},
		{ID: 4, Status: models.TaskStatusDone, DueAt: &past},
		{ID: 5, Status: models.TaskStatusCanceled},
	}

	open := DrillOpenTasks(tasks)
	assert.Len(t, open, 3)

	overdue := OverdueTasks(tasks, now)
	require.Len(t, overdue, 1)
	assert.Equal(t, 1, overdue[0].ID, "a done task past its due date is completed, not overdue")

	done := CompletedTasks(tasks)
	require.Len(t, done, 1)
	assert.Equal(t, 4, done[0].ID)
}
