// ABOUTME: Account CLI commands
// ABOUTME: Human-friendly commands for managing accounts
package cli

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

// AddAccountCommand creates a new account.
func AddAccountCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-account", flag.ExitOnError)
	name := fs.String("name", "", "Account name (required)")
	industry := fs.String("industry", "", "Industry")
	size := fs.String("size", "", "Headcount bucket (1-10, 11-50, 51-200, 201-1000, 1000+)")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	website := fs.String("website", "", "Website URL")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Accounts())
	account := models.Account{
		Name:     *name,
		Industry: *industry,
		Size:     *size,
		Email:    *email,
		Phone:    *phone,
		Website:  *website,
		Notes:    *notes,
	}
	if err := view.Create(ctx, account); err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}

	fmt.Printf("✓ Account created: %s\n", *name)
	return nil
}

// ListAccountsCommand lists accounts with optional filters.
func ListAccountsCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-accounts", flag.ExitOnError)
	search := fs.String("search", "", "Match name, industry, or email")
	industry := fs.String("industry", "", "Filter by industry")
	size := fs.String("size", "", "Filter by headcount bucket")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Accounts())
	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch accounts: %w", err)
	}
	view.SetFilter(views.AccountFilter{Search: *search, Industry: *industry, Size: *size}.Predicates()...)

	accounts := view.Items()
	if len(accounts) == 0 {
		fmt.Println("No accounts found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tINDUSTRY\tSIZE\tEMAIL")
	_, _ = fmt.Fprintln(w, "--\t----\t--------\t----\t-----")
	for _, a := range accounts {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			a.ID, a.Name, dash(a.Industry), dash(a.Size), dash(a.Email))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d account(s)\n", len(accounts))
	return nil
}

// UpdateAccountCommand patches the given fields on one account.
func UpdateAccountCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-account", flag.ExitOnError)
	fs.String("name", "", "Account name")
	fs.String("industry", "", "Industry")
	fs.String("size", "", "Headcount bucket")
	fs.String("email", "", "Email address")
	fs.String("phone", "", "Phone number")
	fs.String("website", "", "Website URL")
	fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: update-account [flags] <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid account ID: %w", err)
	}

	fields := visitedFields(fs)
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	view := views.NewListView(client, views.Accounts())
	if err := view.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	fmt.Printf("✓ Account %d updated\n", id)
	return nil
}

// DeleteAccountCommand deletes one account.
func DeleteAccountCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-account", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: delete-account <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid account ID: %w", err)
	}

	if err := client.Remove(ctx, "/accounts", id); err != nil {
		return fmt.Errorf("failed to delete account: %w", err)
	}

	fmt.Printf("✓ Deleted account %d\n", id)
	return nil
}

// visitedFields collects the flags the user actually set, keyed by flag
// name. Flag names match the API's JSON field names, so the result is the
// PATCH body.
func visitedFields(fs *flag.FlagSet) map[string]any {
	fields := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		fields[f.Name] = f.Value.String()
	})
	return fields
}
