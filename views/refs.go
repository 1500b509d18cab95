// ABOUTME: Cross-reference lookup for display names across record types
// ABOUTME: Loads leads, accounts, and contacts in parallel; missing refs degrade to placeholders
package views

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
)

// RefSet holds id-indexed records used to resolve display names on other
// views (task links, activity leads, contact accounts). A missing entry
// renders as a placeholder rather than an error: numbered for leads,
// contacts, and task links, "Independent" for account references.
type RefSet struct {
	Leads    map[int]models.Lead
	Accounts map[int]models.Account
	Contacts map[int]models.Contact
}

// LoadRefs fetches the requested collections concurrently. Each fetch
// absorbs its own failure: a collection that cannot be loaded stays empty
// and its names fall back to placeholders, without failing the whole view.
func LoadRefs(ctx context.Context, c *api.Client, withLeads, withAccounts, withContacts bool) RefSet {
	refs := RefSet{
		Leads:    make(map[int]models.Lead),
		Accounts: make(map[int]models.Account),
		Contacts: make(map[int]models.Contact),
	}

	g, ctx := errgroup.WithContext(ctx)
	if withLeads {
		g.Go(func() error {
			leads, err := api.List[models.Lead](ctx, c, "/leads")
			if err != nil {
				return nil
			}
			for _, l := range leads {
				refs.Leads[l.ID] = l
			}
			return nil
		})
	}
	if withAccounts {
		g.Go(func() error {
			accounts, err := api.List[models.Account](ctx, c, "/accounts")
			if err != nil {
				return nil
			}
			for _, a := range accounts {
				refs.Accounts[a.ID] = a
			}
			return nil
		})
	}
	if withContacts {
		g.Go(func() error {
			contacts, err := api.List[models.Contact](ctx, c, "/contacts")
			if err != nil {
				return nil
			}
			for _, ct := range contacts {
				refs.Contacts[ct.ID] = ct
			}
			return nil
		})
	}
	_ = g.Wait()
	return refs
}

// AccountName resolves an optional account reference. Nil and a reference
// to an account that no longer exists both show as "Independent": once the
// account is gone the record is effectively unattached.
func (r RefSet) AccountName(id *int) string {
	if id == nil {
		return "Independent"
	}
	if a, ok := r.Accounts[*id]; ok {
		return a.Name
	}
	return "Independent"
}

// ContactName resolves an optional contact reference to a full name.
func (r RefSet) ContactName(id *int) string {
	if id == nil {
		return ""
	}
	if c, ok := r.Contacts[*id]; ok {
		return c.FullName()
	}
	return fmt.Sprintf("Contact #%d", *id)
}

// LeadTitle resolves an optional lead reference to its title.
func (r RefSet) LeadTitle(id *int) string {
	if id == nil {
		return ""
	}
	if l, ok := r.Leads[*id]; ok {
		return l.Title
	}
	return fmt.Sprintf("Lead #%d", *id)
}

// LinkedName resolves a task link to the linked record's display name.
func (r RefSet) LinkedName(link models.TaskLink) string {
	switch link.Type {
	case models.LinkedLead:
		if l, ok := r.Leads[link.ID]; ok {
			return l.Title
		}
		return fmt.Sprintf("Lead #%d", link.ID)
	case models.LinkedAccount:
		if a, ok := r.Accounts[link.ID]; ok {
			return a.Name
		}
		return fmt.Sprintf("Account #%d", link.ID)
	case models.LinkedContact:
		if c, ok := r.Contacts[link.ID]; ok {
			return c.FullName()
		}
		return fmt.Sprintf("Contact #%d", link.ID)
	}
	return fmt.Sprintf("%s #%d", link.Type, link.ID)
}
