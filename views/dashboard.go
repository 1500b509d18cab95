// ABOUTME: Dashboard aggregates and drill-down selections
// ABOUTME: Consumes the server stats endpoint and derives matching record subsets locally
package views

import (
	"context"
	"sort"
	"time"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
)

// Dashboard holds the headline stats plus the collections backing each
// drill-down. Stats come from the server; drill-downs are derived locally
// so a tapped card can show its records without another round trip.
type Dashboard struct {
	client *api.Client

	Stats    api.DashboardStats
	Leads    []models.Lead
	Accounts []models.Account
	Tasks    []models.Task
}

// NewDashboard creates an empty dashboard bound to the client.
func NewDashboard(client *api.Client) *Dashboard {
	return &Dashboard{client: client}
}

// DashboardData is one dashboard refresh: the headline stats plus the
// collections backing the drill-downs.
type DashboardData struct {
	Stats    api.DashboardStats
	Leads    []models.Lead
	Accounts []models.Account
	Tasks    []models.Task
}

// Fetch retrieves a dashboard snapshot without touching the held state. The
// stats call failing fails the fetch; a backing collection failing only
// leaves its drill-down empty.
func (d *Dashboard) Fetch(ctx context.Context) (DashboardData, error) {
	stats, err := d.client.FetchDashboardStats(ctx)
	if err != nil {
		return DashboardData{}, err
	}
	data := DashboardData{Stats: *stats}

	refs := LoadRefs(ctx, d.client, true, true, false)
	data.Leads = make([]models.Lead, 0, len(refs.Leads))
	for _, l := range refs.Leads {
		data.Leads = append(data.Leads, l)
	}
	data.Accounts = make([]models.Account, 0, len(refs.Accounts))
	for _, a := range refs.Accounts {
		data.Accounts = append(data.Accounts, a)
	}
	sort.Slice(data.Leads, func(i, j int) bool { return data.Leads[i].ID < data.Leads[j].ID })
	sort.Slice(data.Accounts, func(i, j int) bool { return data.Accounts[i].ID < data.Accounts[j].ID })

	if tasks, err := api.List[models.Task](ctx, d.client, "/tasks"); err == nil {
		data.Tasks = tasks
	}
	return data, nil
}

// Set installs a fetched snapshot.
func (d *Dashboard) Set(data DashboardData) {
	d.Stats = data.Stats
	d.Leads = data.Leads
	d.Accounts = data.Accounts
	d.Tasks = data.Tasks
}

// Load fetches a snapshot and installs it, for synchronous callers.
func (d *Dashboard) Load(ctx context.Context) error {
	data, err := d.Fetch(ctx)
	if err != nil {
		return err
	}
	d.Set(data)
	return nil
}

// ComputeStats derives the headline numbers from loaded collections. Used
// when the stats endpoint is unreachable or when the view wants numbers
// consistent with what its drill-downs will actually show.
func ComputeStats(leads []models.Lead, accounts []models.Account, tasks []models.Task) api.DashboardStats {
	var stats api.DashboardStats
	stats.TotalAccounts = len(accounts)
	for _, l := range leads {
		if l.IsOpen() {
			stats.OpenLeads++
		}
	}
	for _, t := range tasks {
		if t.Status == models.TaskStatusOpen {
			stats.OpenTasks++
		}
	}
	var pipelineCents int64
	for _, l := range DrillPipelineLeads(leads) {
		pipelineCents += l.ValueCents
	}
	stats.PipelineValue = float64(pipelineCents) / 100
	return stats
}

// DrillOpenLeads selects the leads behind the open-leads card: everything
// not terminally closed.
func DrillOpenLeads(leads []models.Lead) []models.Lead {
	open := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if l.IsOpen() {
			open = append(open, l)
		}
	}
	return open
}

// DrillOpenTasks selects the tasks behind the open-tasks card.
func DrillOpenTasks(tasks []models.Task) []models.Task {
	open := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskStatusOpen {
			open = append(open, t)
		}
	}
	return open
}

// DrillPipelineLeads selects the leads counted in the pipeline-value card:
// positive value and not closed-lost. Closed-won stays in, as realized
// pipeline.
func DrillPipelineLeads(leads []models.Lead) []models.Lead {
	pipeline := make([]models.Lead, 0, len(leads))
	for _, l := range leads {
		if l.ValueCents > 0 && l.Status != models.StatusClosedLost {
			pipeline = append(pipeline, l)
		}
	}
	return pipeline
}

// OverdueTasks selects open tasks whose due date has passed.
func OverdueTasks(tasks []models.Task, now time.Time) []models.Task {
	overdue := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.IsOverdue(now) {
			overdue = append(overdue, t)
		}
	}
	return overdue
}

// CompletedTasks selects tasks marked done.
func CompletedTasks(tasks []models.Task) []models.Task {
	done := make([]models.Task, 0, len(tasks))
	for _, t := range tasks {
		if t.Status == models.TaskStatusDone {
			done = append(done, t)
		}
	}
	return done
}
