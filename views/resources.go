// ABOUTME: Resource descriptors for the five TrailTrack record types
// ABOUTME: Endpoint paths and client-side required-field validation
package views

import (
	"fmt"
	"strings"

	"github.com/JarvisforJira/TrailTrack/models"
)

// Accounts describes the /accounts collection.
func Accounts() Resource[models.Account] {
	return Resource[models.Account]{
		Path:     "/accounts",
		Singular: "account",
		ID:       func(a models.Account) int { return a.ID },
		Validate: func(a models.Account) error {
			if strings.TrimSpace(a.Name) == "" {
				return fmt.Errorf("name is required")
			}
			return nil
		},
	}
}

// Contacts describes the /contacts collection.
func Contacts() Resource[models.Contact] {
	return Resource[models.Contact]{
		Path:     "/contacts",
		Singular: "contact",
		ID:       func(c models.Contact) int { return c.ID },
		Validate: func(c models.Contact) error {
			if strings.TrimSpace(c.FirstName) == "" || strings.TrimSpace(c.LastName) == "" {
				return fmt.Errorf("first and last name are required")
			}
			return nil
		},
	}
}

// Leads describes the /leads collection.
func Leads() Resource[models.Lead] {
	return Resource[models.Lead]{
		Path:     "/leads",
		Singular: "lead",
		ID:       func(l models.Lead) int { return l.ID },
		Validate: func(l models.Lead) error {
			if strings.TrimSpace(l.Title) == "" {
				return fmt.Errorf("title is required")
			}
			if l.ValueCents < 0 {
				return fmt.Errorf("value must not be negative")
			}
			if l.Probability < 0 || l.Probability > 100 {
				return fmt.Errorf("probability must be between 0 and 100")
			}
			return nil
		},
	}
}

// Activities describes the /activities collection.
func Activities() Resource[models.Activity] {
	return Resource[models.Activity]{
		Path:     "/activities",
		Singular: "activity",
		ID:       func(a models.Activity) int { return a.ID },
		Validate: func(a models.Activity) error {
			if a.Type == "" {
				return fmt.Errorf("type is required")
			}
			if strings.TrimSpace(a.Subject) == "" {
				return fmt.Errorf("subject is required")
			}
			return nil
		},
	}
}

// Tasks describes the /tasks collection.
func Tasks() Resource[models.Task] {
	return Resource[models.Task]{
		Path:     "/tasks",
		Singular: "task",
		ID:       func(t models.Task) int { return t.ID },
		Validate: func(t models.Task) error {
			if strings.TrimSpace(t.Title) == "" {
				return fmt.Errorf("title is required")
			}
			switch t.LinkedType {
			case models.LinkedLead, models.LinkedAccount, models.LinkedContact:
			default:
				return fmt.Errorf("linked type must be lead, account, or contact")
			}
			if t.LinkedID <= 0 {
				return fmt.Errorf("linked record is required")
			}
			return nil
		},
	}
}
