// ABOUTME: Task CLI commands
// ABOUTME: Create, list, complete, and delete tasks linked to CRM records
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

// AddTaskCommand creates a task linked to a lead, account, or contact.
func AddTaskCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-task", flag.ExitOnError)
	title := fs.String("title", "", "Task title (required)")
	linkedType := fs.String("linked-type", "", "Linked record type: lead, account, or contact (required)")
	linkedID := fs.Int("linked-id", 0, "Linked record ID (required)")
	due := fs.String("due", "", "Due date (YYYY-MM-DD)")
	priority := fs.String("priority", models.PriorityMedium, "Priority (low, medium, high)")
	_ = fs.Parse(args)

	var dueAt *time.Time
	if *due != "" {
		parsed, err := time.ParseInLocation("2006-01-02", *due, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --due %q, want YYYY-MM-DD", *due)
		}
		dueAt = &parsed
	}

	task := models.Task{
		Title:      *title,
		LinkedType: models.LinkedType(*linkedType),
		LinkedID:   *linkedID,
		DueAt:      dueAt,
		Priority:   *priority,
	}

	view := views.NewListView(client, views.Tasks())
	if err := view.Create(ctx, task); err != nil {
		return fmt.Errorf("failed to create task: %w", err)
	}

	fmt.Printf("✓ Task created: %s\n", *title)
	if dueAt != nil {
		fmt.Printf("  %s\n", models.HumanDueDate(dueAt, time.Now()))
	}
	return nil
}

// ListTasksCommand lists tasks with optional filters and humanized due
// dates. Linked record names are resolved in a parallel fetch.
func ListTasksCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-tasks", flag.ExitOnError)
	status := fs.String("status", "", "Filter by status (open, done, canceled)")
	priority := fs.String("priority", "", "Filter by priority")
	linkedType := fs.String("linked-type", "", "Filter by linked record type")
	search := fs.String("search", "", "Match title")
	overdue := fs.Bool("overdue", false, "Only open tasks past their due date")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Tasks())
	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch tasks: %w", err)
	}
	view.SetFilter(views.TaskFilter{
		Status:     *status,
		Priority:   *priority,
		LinkedType: models.LinkedType(*linkedType),
		Search:     *search,
	}.Predicates()...)

	now := time.Now()
	tasks := view.Items()
	if *overdue {
		tasks = views.OverdueTasks(tasks, now)
	}
	if len(tasks) == 0 {
		fmt.Println("No tasks found")
		return nil
	}

	refs := views.LoadRefs(ctx, client, true, true, true)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tLINKED TO\tDUE\tPRIORITY\tSTATUS")
	_, _ = fmt.Fprintln(w, "--\t-----\t---------\t---\t--------\t------")
	for _, t := range tasks {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, t.Title, refs.LinkedName(t.Link()),
			models.HumanDueDate(t.DueAt, now), t.Priority, t.Status)
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d task(s)\n", len(tasks))
	return nil
}

// CompleteTaskCommand marks a task done.
func CompleteTaskCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("complete-task", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: complete-task <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid task ID: %w", err)
	}

	view := views.NewListView(client, views.Tasks())
	if err := view.Update(ctx, id, map[string]any{"status": models.TaskStatusDone}); err != nil {
		return fmt.Errorf("failed to complete task: %w", err)
	}

	fmt.Printf("✓ Task %d completed\n", id)
	return nil
}

// DeleteTaskCommand deletes one task.
func DeleteTaskCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-task", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: delete-task <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid task ID: %w", err)
	}

	if err := client.Remove(ctx, "/tasks", id); err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}

	fmt.Printf("✓ Deleted task %d\n", id)
	return nil
}
