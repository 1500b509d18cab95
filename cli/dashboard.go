// ABOUTME: Terminal dashboard command and ASCII rendering
// ABOUTME: Shows headline stats, a pipeline bar chart, and tasks needing attention
package cli

import (
	"context"
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

// DashboardCommand renders the CRM overview: server stats, the pipeline by
// stage, and open/overdue task counts.
func DashboardCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("dashboard", flag.ExitOnError)
	_ = fs.Parse(args)

	stats, err := client.FetchDashboardStats(ctx)
	if err != nil {
		return fmt.Errorf("failed to fetch dashboard stats: %w", err)
	}

	board := views.NewBoard(client)
	if err := board.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch leads: %w", err)
	}

	tasks, err := api.List[models.Task](ctx, client, "/tasks")
	if err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}

	fmt.Print(renderDashboard(*stats, board.Buckets(), tasks, time.Now()))
	return nil
}

func renderDashboard(stats api.DashboardStats, buckets []views.StageBucket, tasks []models.Task, now time.Time) string {
	var out strings.Builder

	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n")
	out.WriteString("  TRAILTRACK DASHBOARD\n")
	out.WriteString("━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━\n\n")

	out.WriteString("PIPELINE OVERVIEW\n")
	renderPipelineBars(&out, buckets)
	out.WriteString("\n")

	out.WriteString("STATS\n")
	out.WriteString(fmt.Sprintf("  📈 %d open leads  🏢 %d accounts  ☑ %d open tasks\n",
		stats.OpenLeads, stats.TotalAccounts, stats.OpenTasks))
	out.WriteString(fmt.Sprintf("  💰 Pipeline value: $%.2f\n\n", stats.PipelineValue))

	overdue := views.OverdueTasks(tasks, now)
	if len(overdue) > 0 {
		out.WriteString("NEEDS ATTENTION\n")
		out.WriteString(fmt.Sprintf("  ⚠️  %d task(s) overdue\n", len(overdue)))
		for _, t := range overdue {
			out.WriteString(fmt.Sprintf("     %s — %s\n", t.Title, models.HumanDueDate(t.DueAt, now)))
		}
	}

	return out.String()
}

func renderPipelineBars(out *strings.Builder, buckets []views.StageBucket) {
	maxCount := 0
	for _, b := range buckets {
		if len(b.Leads) > maxCount {
			maxCount = len(b.Leads)
		}
	}
	if maxCount == 0 {
		maxCount = 1
	}

	for _, b := range buckets {
		if len(b.Leads) == 0 {
			continue
		}

		barLength := (len(b.Leads) * 10) / maxCount
		bar := strings.Repeat("█", barLength) + strings.Repeat("░", 10-barLength)

		out.WriteString(fmt.Sprintf("  %-13s %s  %2d (%s)\n",
			b.Stage, bar, len(b.Leads), models.FormatCents(b.ValueCents)))
	}
}
