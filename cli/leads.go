// ABOUTME: Lead CLI commands
// ABOUTME: Human-friendly commands for managing leads and moving pipeline stages
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

// AddLeadCommand creates a new lead. Value is given in dollars on the
// command line and stored in cents.
func AddLeadCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-lead", flag.ExitOnError)
	title := fs.String("title", "", "Lead title (required)")
	account := fs.Int("account", 0, "Account ID (optional)")
	contact := fs.Int("contact", 0, "Primary contact ID (optional)")
	stage := fs.String("stage", models.StageNew, "Stage ("+strings.Join(models.Stages(), ", ")+")")
	value := fs.String("value", "0", "Deal value in dollars, e.g. 1234.50")
	probability := fs.Int("probability", 50, "Win probability 0-100")
	source := fs.String("source", "", "Lead source")
	_ = fs.Parse(args)

	valueCents, err := models.ParseDollars(*value)
	if err != nil {
		return err
	}

	lead := models.Lead{
		Title:       *title,
		Stage:       *stage,
		ValueCents:  valueCents,
		Probability: *probability,
		Source:      *source,
	}
	if *account != 0 {
		lead.AccountID = account
	}
	if *contact != 0 {
		lead.PrimaryContactID = contact
	}

	view := views.NewListView(client, views.Leads())
	if err := view.Create(ctx, lead); err != nil {
		return fmt.Errorf("failed to create lead: %w", err)
	}

	fmt.Printf("✓ Lead created: %s\n", *title)
	fmt.Printf("  Stage: %s\n", *stage)
	fmt.Printf("  Value: %s\n", models.FormatCents(valueCents))
	return nil
}

// ListLeadsCommand lists leads with optional filters.
func ListLeadsCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-leads", flag.ExitOnError)
	stage := fs.String("stage", "", "Filter by stage")
	search := fs.String("search", "", "Match title")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Leads())
	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch leads: %w", err)
	}
	view.SetFilter(views.LeadFilter{Stage: *stage, Search: *search}.Predicates()...)

	leads := view.Items()
	if len(leads) == 0 {
		fmt.Println("No leads found")
		return nil
	}

	refs := views.LoadRefs(ctx, client, false, true, false)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tTITLE\tACCOUNT\tSTAGE\tVALUE\tPROB")
	_, _ = fmt.Fprintln(w, "--\t-----\t-------\t-----\t-----\t----")

	var total int64
	for _, l := range leads {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%d%%\n",
			l.ID, l.Title, refs.AccountName(l.AccountID), l.Stage,
			models.FormatCents(l.ValueCents), l.Probability)
		total += l.ValueCents
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d lead(s) - %s\n", len(leads), models.FormatCents(total))
	return nil
}

// UpdateLeadCommand patches the given fields on one lead. Changing the
// stage also changes the server-derived status.
func UpdateLeadCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-lead", flag.ExitOnError)
	title := fs.String("title", "", "Lead title")
	account := fs.Int("account", 0, "Account ID (0 to detach)")
	contact := fs.Int("contact", 0, "Primary contact ID (0 to detach)")
	stage := fs.String("stage", "", "Stage")
	value := fs.String("value", "", "Deal value in dollars")
	probability := fs.Int("probability", 0, "Win probability 0-100")
	source := fs.String("source", "", "Lead source")
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: update-lead [flags] <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid lead ID: %w", err)
	}

	fields := make(map[string]any)
	var flagErr error
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "title":
			fields["title"] = *title
		case "account":
			if *account == 0 {
				fields["account_id"] = nil
			} else {
				fields["account_id"] = *account
			}
		case "contact":
			if *contact == 0 {
				fields["primary_contact_id"] = nil
			} else {
				fields["primary_contact_id"] = *contact
			}
		case "stage":
			fields["stage"] = *stage
		case "value":
			cents, err := models.ParseDollars(*value)
			if err != nil {
				flagErr = err
				return
			}
			fields["value_cents"] = cents
		case "probability":
			fields["probability"] = *probability
		case "source":
			fields["source"] = *source
		}
	})
	if flagErr != nil {
		return flagErr
	}
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	view := views.NewListView(client, views.Leads())
	if err := view.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update lead: %w", err)
	}

	fmt.Printf("✓ Lead %d updated\n", id)
	return nil
}

// MoveLeadCommand moves a lead to another pipeline stage.
func MoveLeadCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("move-lead", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 2 {
		return fmt.Errorf("usage: move-lead <id> <stage>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid lead ID: %w", err)
	}
	stage := fs.Arg(1)

	valid := false
	for _, s := range models.Stages() {
		if s == stage {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("unknown stage %q (want one of: %s)", stage, strings.Join(models.Stages(), ", "))
	}

	board := views.NewBoard(client)
	if err := board.MoveStage(ctx, id, stage); err != nil {
		return fmt.Errorf("failed to move lead: %w", err)
	}

	fmt.Printf("✓ Lead %d moved to %s\n", id, stage)
	return nil
}

// DeleteLeadCommand deletes one lead.
func DeleteLeadCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-lead", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: delete-lead <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid lead ID: %w", err)
	}

	if err := client.Remove(ctx, "/leads", id); err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}

	fmt.Printf("✓ Deleted lead %d\n", id)
	return nil
}
