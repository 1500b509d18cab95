// ABOUTME: Activity CLI commands
// ABOUTME: Logs interactions and lists the activity timeline
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

// LogActivityCommand records an interaction. When --at is omitted the
// activity is stamped with the current time.
func LogActivityCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("log-activity", flag.ExitOnError)
	kind := fs.String("type", "", "Activity type (call, email, meeting, note, sms) (required)")
	subject := fs.String("subject", "", "Subject line (required)")
	lead := fs.Int("lead", 0, "Lead ID (optional)")
	account := fs.Int("account", 0, "Account ID (optional)")
	contact := fs.Int("contact", 0, "Contact ID (optional)")
	body := fs.String("body", "", "Details")
	duration := fs.Int("duration", 0, "Duration in minutes")
	at := fs.String("at", "", "When it happened (YYYY-MM-DD HH:MM, default now)")
	_ = fs.Parse(args)

	occurredAt := time.Now()
	if *at != "" {
		parsed, err := time.ParseInLocation("2006-01-02 15:04", *at, time.Local)
		if err != nil {
			return fmt.Errorf("invalid --at %q, want YYYY-MM-DD HH:MM", *at)
		}
		occurredAt = parsed
	}

	activity := models.Activity{
		Type:       *kind,
		Subject:    *subject,
		Body:       *body,
		OccurredAt: occurredAt,
	}
	if *lead != 0 {
		activity.LeadID = lead
	}
	if *account != 0 {
		activity.AccountID = account
	}
	if *contact != 0 {
		activity.ContactID = contact
	}
	if *duration != 0 {
		activity.DurationMinutes = duration
	}

	view := views.NewListView(client, views.Activities())
	if err := view.Create(ctx, activity); err != nil {
		return fmt.Errorf("failed to log activity: %w", err)
	}

	fmt.Printf("✓ Activity logged: %s (%s)\n", *subject, *kind)
	return nil
}

// ListActivitiesCommand lists activities with optional filters.
func ListActivitiesCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-activities", flag.ExitOnError)
	kind := fs.String("type", "", "Filter by activity type")
	lead := fs.Int("lead", 0, "Filter by lead ID")
	search := fs.String("search", "", "Match subject or body")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Activities())
	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch activities: %w", err)
	}

	filter := views.ActivityFilter{Type: *kind, Search: *search}
	if *lead != 0 {
		filter.LeadID = lead
	}
	view.SetFilter(filter.Predicates()...)

	activities := view.Items()
	if len(activities) == 0 {
		fmt.Println("No activities found")
		return nil
	}

	refs := views.LoadRefs(ctx, client, true, false, false)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tWHEN\tTYPE\tSUBJECT\tLEAD")
	_, _ = fmt.Fprintln(w, "--\t----\t----\t-------\t----")
	for _, a := range activities {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.OccurredAt.Format("2006-01-02 15:04"), a.Type, a.Subject,
			dash(refs.LeadTitle(a.LeadID)))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d activity(ies)\n", len(activities))
	return nil
}
