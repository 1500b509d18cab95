// ABOUTME: Filter definitions for each list view
// ABOUTME: Builds AND-composed predicate sets matching the original view semantics
package views

import (
	"strings"

	"github.com/JarvisforJira/TrailTrack/models"
)

func containsFold(haystack, needle string) bool {
	return strings.Contains(strings.ToLower(haystack), strings.ToLower(needle))
}

// AccountFilter combines a free-text search with industry and size equality.
// Search matches name, industry, or email.
type AccountFilter struct {
	Search   string
	Industry string
	Size     string
}

func (f AccountFilter) Predicates() []Predicate[models.Account] {
	var preds []Predicate[models.Account]
	if f.Search != "" {
		preds = append(preds, func(a models.Account) bool {
			return containsFold(a.Name, f.Search) ||
				containsFold(a.Industry, f.Search) ||
				containsFold(a.Email, f.Search)
		})
	}
	if f.Industry != "" {
		preds = append(preds, func(a models.Account) bool { return a.Industry == f.Industry })
	}
	if f.Size != "" {
		preds = append(preds, func(a models.Account) bool { return a.Size == f.Size })
	}
	return preds
}

// IndependentContacts selects contacts with no account. Used when the
// account filter is the sentinel "independent" choice.
const IndependentContacts = 0

// ContactFilter matches on full name, email, or title, optionally narrowed
// to one account. AccountID nil leaves the dimension off; the
// IndependentContacts sentinel selects contacts with no account at all.
type ContactFilter struct {
	Search    string
	AccountID *int
}

func (f ContactFilter) Predicates() []Predicate[models.Contact] {
	var preds []Predicate[models.Contact]
	if f.Search != "" {
		preds = append(preds, func(c models.Contact) bool {
			return containsFold(c.FullName(), f.Search) ||
				containsFold(c.Email, f.Search) ||
				containsFold(c.Title, f.Search)
		})
	}
	if f.AccountID != nil {
		want := *f.AccountID
		preds = append(preds, func(c models.Contact) bool {
			if want == IndependentContacts {
				return c.AccountID == nil
			}
			return c.AccountID != nil && *c.AccountID == want
		})
	}
	return preds
}

// LeadFilter narrows by stage and title search.
type LeadFilter struct {
	Stage  string
	Search string
}

func (f LeadFilter) Predicates() []Predicate[models.Lead] {
	var preds []Predicate[models.Lead]
	if f.Stage != "" {
		preds = append(preds, func(l models.Lead) bool { return l.Stage == f.Stage })
	}
	if f.Search != "" {
		preds = append(preds, func(l models.Lead) bool { return containsFold(l.Title, f.Search) })
	}
	return preds
}

// ActivityFilter narrows by type, linked lead, and subject/body search.
type ActivityFilter struct {
	Type   string
	LeadID *int
	Search string
}

func (f ActivityFilter) Predicates() []Predicate[models.Activity] {
	var preds []Predicate[models.Activity]
	if f.Type != "" {
		preds = append(preds, func(a models.Activity) bool { return a.Type == f.Type })
	}
	if f.LeadID != nil {
		want := *f.LeadID
		preds = append(preds, func(a models.Activity) bool {
			return a.LeadID != nil && *a.LeadID == want
		})
	}
	if f.Search != "" {
		preds = append(preds, func(a models.Activity) bool {
			return containsFold(a.Subject, f.Search) || containsFold(a.Body, f.Search)
		})
	}
	return preds
}

// TaskFilter narrows by status, priority, linked record type, and title
// search. All text matching is case-insensitive.
type TaskFilter struct {
	Status     string
	Priority   string
	LinkedType models.LinkedType
	Search     string
}

func (f TaskFilter) Predicates() []Predicate[models.Task] {
	var preds []Predicate[models.Task]
	if f.Status != "" {
		preds = append(preds, func(t models.Task) bool { return t.Status == f.Status })
	}
	if f.Priority != "" {
		preds = append(preds, func(t models.Task) bool { return t.Priority == f.Priority })
	}
	if f.LinkedType != "" {
		preds = append(preds, func(t models.Task) bool { return t.LinkedType == f.LinkedType })
	}
	if f.Search != "" {
		preds = append(preds, func(t models.Task) bool { return containsFold(t.Title, f.Search) })
	}
	return preds
}
