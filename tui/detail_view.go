// ABOUTME: Record detail view for the TUI
// ABOUTME: Shows the full field set of one record with resolved reference names
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JarvisforJira/TrailTrack/models"
)

var (
	fieldLabelStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Width(20)

	fieldValueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))
)

func (m Model) renderDetailView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DETAIL VIEW"))
	s.WriteString("\n\n")

	switch m.entityType {
	case EntityAccounts:
		s.WriteString(m.renderAccountDetail())
	case EntityContacts:
		s.WriteString(m.renderContactDetail())
	case EntityLeads:
		s.WriteString(m.renderLeadDetail())
	case EntityActivities:
		s.WriteString(m.renderActivityDetail())
	case EntityTasks:
		s.WriteString(m.renderTaskDetail())
	}

	s.WriteString("\n\n")
	s.WriteString(m.renderDetailHelp())

	return s.String()
}

func (m Model) renderAccountDetail() string {
	account, ok := m.accounts.Get(m.selectedID)
	if !ok {
		return "Record not found"
	}
	return m.accountFields(account)
}

func (m Model) accountFields(account models.Account) string {
	var s strings.Builder
	s.WriteString(m.renderField("Name", account.Name))
	s.WriteString(m.renderField("Website", account.Website))
	s.WriteString(m.renderField("Industry", account.Industry))
	s.WriteString(m.renderField("Size", account.Size))
	s.WriteString(m.renderField("Phone", account.Phone))
	s.WriteString(m.renderField("Email", account.Email))

	address := strings.TrimSpace(strings.Join(nonEmpty(
		account.Street, account.City, account.State, account.PostalCode, account.Country,
	), ", "))
	s.WriteString(m.renderField("Address", address))
	s.WriteString(m.renderField("Notes", account.Notes))
	return s.String()
}

func (m Model) renderContactDetail() string {
	contact, ok := m.contacts.Get(m.selectedID)
	if !ok {
		return "Record not found"
	}

	var s strings.Builder
	s.WriteString(m.renderField("Name", contact.FullName()))
	s.WriteString(m.renderField("Title", contact.Title))
	s.WriteString(m.renderField("Email", contact.Email))
	s.WriteString(m.renderField("Phone", contact.Phone))
	s.WriteString(m.renderField("Account", m.refs.AccountName(contact.AccountID)))
	s.WriteString(m.renderField("Notes", contact.Notes))
	return s.String()
}

func (m Model) renderLeadDetail() string {
	lead, ok := m.leads.Get(m.selectedID)
	if !ok {
		return "Record not found"
	}
	return m.leadFields(lead)
}

func (m Model) leadFields(lead models.Lead) string {
	var s strings.Builder
	s.WriteString(m.renderField("Title", lead.Title))
	s.WriteString(m.renderField("Account", m.refs.AccountName(lead.AccountID)))
	s.WriteString(m.renderField("Contact", m.refs.ContactName(lead.PrimaryContactID)))
	s.WriteString(m.renderField("Stage", lead.Stage))
	s.WriteString(m.renderField("Status", lead.Status))
	s.WriteString(m.renderField("Value", models.FormatCents(lead.ValueCents)))
	s.WriteString(m.renderField("Probability", fmt.Sprintf("%d%%", lead.Probability)))
	if lead.ExpectedCloseDate != nil {
		s.WriteString(m.renderField("Expected Close", lead.ExpectedCloseDate.Format("2006-01-02")))
	}
	s.WriteString(m.renderField("Source", lead.Source))
	return s.String()
}

func (m Model) renderActivityDetail() string {
	activity, ok := m.activities.Get(m.selectedID)
	if !ok {
		return "Record not found"
	}

	var s strings.Builder
	s.WriteString(m.renderField("Type", activity.Type))
	s.WriteString(m.renderField("Subject", activity.Subject))
	s.WriteString(m.renderField("When", activity.OccurredAt.Format("2006-01-02 15:04")))
	if activity.DurationMinutes != nil {
		s.WriteString(m.renderField("Duration", fmt.Sprintf("%d min", *activity.DurationMinutes)))
	}
	s.WriteString(m.renderField("Lead", m.refs.LeadTitle(activity.LeadID)))
	if activity.AccountID != nil {
		s.WriteString(m.renderField("Account", m.refs.AccountName(activity.AccountID)))
	}
	s.WriteString(m.renderField("Contact", m.refs.ContactName(activity.ContactID)))
	s.WriteString(m.renderField("Body", activity.Body))
	return s.String()
}

func (m Model) renderTaskDetail() string {
	task, ok := m.tasks.Get(m.selectedID)
	if !ok {
		return "Record not found"
	}
	return m.taskFields(task)
}

func (m Model) taskFields(task models.Task) string {
	var s strings.Builder
	s.WriteString(m.renderField("Title", task.Title))
	s.WriteString(m.renderField("Linked To", m.refs.LinkedName(task.Link())))
	s.WriteString(m.renderField("Due", models.HumanDueDate(task.DueAt, time.Now())))
	s.WriteString(m.renderField("Priority", task.Priority))
	s.WriteString(m.renderField("Status", task.Status))
	return s.String()
}

func (m Model) renderField(label, value string) string {
	if value == "" {
		value = "-"
	}
	return fmt.Sprintf("%s %s\n",
		fieldLabelStyle.Render(label+":"),
		fieldValueStyle.Render(value))
}

func nonEmpty(parts ...string) []string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			out = append(out, p)
		}
	}
	return out
}

func (m Model) renderDetailHelp() string {
	help := []string{
		"Esc: Back",
		"e: Edit",
		"d: Delete",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleDetailKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
	case "e":
		m.viewMode = ViewEdit
		m.initFormInputs()
	case "d":
		m.viewMode = ViewConfirmDelete
	}

	return m, nil
}
