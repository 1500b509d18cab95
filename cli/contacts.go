// ABOUTME: Contact CLI commands
// ABOUTME: Human-friendly commands for managing contacts
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

// AddContactCommand creates a new contact.
func AddContactCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("add-contact", flag.ExitOnError)
	first := fs.String("first", "", "First name (required)")
	last := fs.String("last", "", "Last name (required)")
	title := fs.String("title", "", "Job title")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	account := fs.Int("account", 0, "Account ID (omit for an independent contact)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	contact := models.Contact{
		FirstName: *first,
		LastName:  *last,
		Title:     *title,
		Email:     *email,
		Phone:     *phone,
		Notes:     *notes,
	}
	if *account != 0 {
		contact.AccountID = account
	}

	view := views.NewListView(client, views.Contacts())
	if err := view.Create(ctx, contact); err != nil {
		return fmt.Errorf("failed to create contact: %w", err)
	}

	fmt.Printf("✓ Contact created: %s %s\n", *first, *last)
	return nil
}

// ListContactsCommand lists contacts with optional filters. Account names
// are resolved in a parallel fetch; --account 0 selects independent
// contacts.
func ListContactsCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("list-contacts", flag.ExitOnError)
	search := fs.String("search", "", "Match name, email, or title")
	account := fs.Int("account", -1, "Filter by account ID (0 for independent)")
	_ = fs.Parse(args)

	view := views.NewListView(client, views.Contacts())
	if err := view.Load(ctx); err != nil {
		return fmt.Errorf("failed to fetch contacts: %w", err)
	}

	filter := views.ContactFilter{Search: *search}
	if *account >= 0 {
		filter.AccountID = account
	}
	view.SetFilter(filter.Predicates()...)

	contacts := view.Items()
	if len(contacts) == 0 {
		fmt.Println("No contacts found")
		return nil
	}

	refs := views.LoadRefs(ctx, client, false, true, false)

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	_, _ = fmt.Fprintln(w, "ID\tNAME\tTITLE\tEMAIL\tACCOUNT")
	_, _ = fmt.Fprintln(w, "--\t----\t-----\t-----\t-------")
	for _, c := range contacts {
		_, _ = fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			c.ID, c.FullName(), dash(c.Title), dash(c.Email), refs.AccountName(c.AccountID))
	}
	_ = w.Flush()

	fmt.Printf("\nTotal: %d contact(s)\n", len(contacts))
	return nil
}

// UpdateContactCommand patches the given fields on one contact.
func UpdateContactCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("update-contact", flag.ExitOnError)
	first := fs.String("first", "", "First name")
	last := fs.String("last", "", "Last name")
	title := fs.String("title", "", "Job title")
	email := fs.String("email", "", "Email address")
	phone := fs.String("phone", "", "Phone number")
	account := fs.Int("account", 0, "Account ID (0 to make independent)")
	notes := fs.String("notes", "", "Notes")
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: update-contact [flags] <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid contact ID: %w", err)
	}

	fields := make(map[string]any)
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "first":
			fields["first_name"] = *first
		case "last":
			fields["last_name"] = *last
		case "title":
			fields["title"] = *title
		case "email":
			fields["email"] = *email
		case "phone":
			fields["phone"] = *phone
		case "account":
			if *account == 0 {
				fields["account_id"] = nil
			} else {
				fields["account_id"] = *account
			}
		case "notes":
			fields["notes"] = *notes
		}
	})
	if len(fields) == 0 {
		return fmt.Errorf("no fields to update")
	}

	view := views.NewListView(client, views.Contacts())
	if err := view.Update(ctx, id, fields); err != nil {
		return fmt.Errorf("failed to update contact: %w", err)
	}

	fmt.Printf("✓ Contact %d updated\n", id)
	return nil
}

// DeleteContactCommand deletes one contact.
func DeleteContactCommand(ctx context.Context, client *api.Client, args []string) error {
	fs := flag.NewFlagSet("delete-contact", flag.ExitOnError)
	_ = fs.Parse(args)

	if len(fs.Args()) != 1 {
		return fmt.Errorf("usage: delete-contact <id>")
	}
	id, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("invalid contact ID: %w", err)
	}

	if err := client.Remove(ctx, "/contacts", id); err != nil {
		return fmt.Errorf("failed to delete contact: %w", err)
	}

	fmt.Printf("✓ Deleted contact %d\n", id)
	return nil
}
