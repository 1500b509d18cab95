// ABOUTME: Data models for TrailTrack CRM records
// ABOUTME: Defines Account, Contact, Lead, Activity, and Task structs plus enums
package models

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// User is the identity resolved from a validated bearer token.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Account struct {
	ID         int       `json:"id"`
	Name       string    `json:"name"`
	Website    string    `json:"website,omitempty"`
	Industry   string    `json:"industry,omitempty"`
	Size       string    `json:"size,omitempty"`
	Phone      string    `json:"phone,omitempty"`
	Email      string    `json:"email,omitempty"`
	Street     string    `json:"street,omitempty"`
	City       string    `json:"city,omitempty"`
	State      string    `json:"state,omitempty"`
	PostalCode string    `json:"postal_code,omitempty"`
	Country    string    `json:"country,omitempty"`
	Notes      string    `json:"notes,omitempty"`
	CreatedAt  time.Time `json:"created_at"`
}

type Contact struct {
	ID        int       `json:"id"`
	AccountID *int      `json:"account_id,omitempty"` // nil means independent
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	Title     string    `json:"title,omitempty"`
	Email     string    `json:"email,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Notes     string    `json:"notes,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// FullName joins first and last name for display and search.
func (c Contact) FullName() string {
	return strings.TrimSpace(c.FirstName + " " + c.LastName)
}

type Lead struct {
	ID                int        `json:"id"`
	Title             string     `json:"title"`
	AccountID         *int       `json:"account_id,omitempty"`
	PrimaryContactID  *int       `json:"primary_contact_id,omitempty"`
	Stage             string     `json:"stage"`
	ValueCents        int64      `json:"value_cents"` // in cents
	Probability       int        `json:"probability"`
	Status            string     `json:"status"` // server-derived from stage
	ExpectedCloseDate *time.Time `json:"expected_close_date,omitempty"`
	Source            string     `json:"source,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
}

// IsOpen reports whether the lead has not reached a terminal state. The
// server keeps status in sync with stage; fall back to the stage when an
// older record carries no status.
func (l Lead) IsOpen() bool {
	if l.Status != "" {
		return l.Status != StatusClosedWon && l.Status != StatusClosedLost
	}
	return l.Stage != StageClosedWon && l.Stage != StageClosedLost
}

type Activity struct {
	ID              int       `json:"id"`
	LeadID          *int      `json:"lead_id,omitempty"`
	AccountID       *int      `json:"account_id,omitempty"`
	ContactID       *int      `json:"contact_id,omitempty"`
	Type            string    `json:"type"`
	Subject         string    `json:"subject"`
	Body            string    `json:"body,omitempty"`
	OccurredAt      time.Time `json:"occurred_at"`
	DurationMinutes *int      `json:"duration_minutes,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

type Task struct {
	ID         int        `json:"id"`
	LinkedType LinkedType `json:"linked_type"`
	LinkedID   int        `json:"linked_id"`
	Title      string     `json:"title"`
	DueAt      *time.Time `json:"due_at,omitempty"`
	Priority   string     `json:"priority"`
	Status     string     `json:"status"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// Link returns the task's polymorphic target as a tagged pair.
func (t Task) Link() TaskLink {
	return TaskLink{Type: t.LinkedType, ID: t.LinkedID}
}

// IsOverdue reports whether an open task's due date has passed. Tasks with no
// due date are never overdue; neither are done or canceled tasks.
func (t Task) IsOverdue(now time.Time) bool {
	if t.Status != TaskStatusOpen || t.DueAt == nil {
		return false
	}
	return t.DueAt.Before(now)
}

// LinkedType names the record type a task is attached to.
type LinkedType string

const (
	LinkedLead    LinkedType = "lead"
	LinkedAccount LinkedType = "account"
	LinkedContact LinkedType = "contact"
)

// TaskLink is the tagged form of a task's linked_type + linked_id pair.
// Switching on Type is exhaustive over the three record types.
type TaskLink struct {
	Type LinkedType
	ID   int
}

// Lead stages, in pipeline order.
const (
	StageNew         = "New"
	StageQualified   = "Qualified"
	StageProposal    = "Proposal"
	StageNegotiation = "Negotiation"
	StageClosedWon   = "Closed-Won"
	StageClosedLost  = "Closed-Lost"
)

// Stages returns the six pipeline stages in fixed board order.
func Stages() []string {
	return []string{
		StageNew,
		StageQualified,
		StageProposal,
		StageNegotiation,
		StageClosedWon,
		StageClosedLost,
	}
}

// Lead status constants (server-derived).
const (
	StatusOpen       = "open"
	StatusClosedWon  = "closed_won"
	StatusClosedLost = "closed_lost"
)

// Activity type constants.
const (
	ActivityCall    = "call"
	ActivityEmail   = "email"
	ActivityMeeting = "meeting"
	ActivityNote    = "note"
	ActivitySMS     = "sms"
)

// Task priority constants.
const (
	PriorityLow    = "low"
	PriorityMedium = "medium"
	PriorityHigh   = "high"
)

// Task status constants.
const (
	TaskStatusOpen     = "open"
	TaskStatusDone     = "done"
	TaskStatusCanceled = "canceled"
)

// AccountSizes are the headcount buckets the backend accepts.
var AccountSizes = []string{"1-10", "11-50", "51-200", "201-1000", "1000+"}

// ParseDollars converts a decimal currency string ("1234.5") to integer
// cents, rounding to the nearest cent. Empty input is zero.
func ParseDollars(s string) (int64, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "$")
	if s == "" {
		return 0, nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid currency amount %q: %w", s, err)
	}
	return int64(math.Round(f * 100)), nil
}

// FormatCents renders integer cents as a dollar string with thousands
// separators, e.g. 123450 -> "$1,234.50".
func FormatCents(cents int64) string {
	neg := cents < 0
	if neg {
		cents = -cents
	}
	dollars := cents / 100
	rem := cents % 100

	digits := strconv.FormatInt(dollars, 10)
	var grouped strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			grouped.WriteByte(',')
		}
		grouped.WriteRune(d)
	}

	sign := ""
	if neg {
		sign = "-"
	}
	return fmt.Sprintf("%s$%s.%02d", sign, grouped.String(), rem)
}

// HumanDueDate mirrors the task list's due-date phrasing: "Due today",
// "Due tomorrow", "Overdue by N days", "Due in N days", or the plain date
// when further out.
func HumanDueDate(due *time.Time, now time.Time) string {
	if due == nil {
		return "No due date"
	}
	days := int(math.Ceil(due.Sub(now).Hours() / 24))

	switch {
	case days == 0:
		return "Due today"
	case days == 1:
		return "Due tomorrow"
	case days == -1:
		return "Due yesterday"
	case days < 0:
		return fmt.Sprintf("Overdue by %d days", -days)
	case days <= 7:
		return fmt.Sprintf("Due in %d days", days)
	}
	return due.Format("2006-01-02")
}
