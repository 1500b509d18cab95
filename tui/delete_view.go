// ABOUTME: Delete confirmation view for TUI
// ABOUTME: Confirms and performs deletion of the selected record
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

var (
	confirmBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("9")).
			Padding(1, 2).
			Width(60).
			Align(lipgloss.Center)

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	confirmButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("9")).
				Padding(0, 2).
				MarginRight(2)

	cancelButtonStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("15")).
				Background(lipgloss.Color("8")).
				Padding(0, 2)
)

func (m Model) renderConfirmDeleteView() string {
	name, kind := m.selectedRecordLabel()

	title := warningStyle.Render("⚠  DELETE CONFIRMATION  ⚠")
	message := fmt.Sprintf("Are you sure you want to delete this %s?", kind)
	entityInfo := fmt.Sprintf("\n%s: %s\n", strings.ToUpper(kind), name)
	warning := "\nThis action cannot be undone!"

	buttons := lipgloss.JoinHorizontal(
		lipgloss.Left,
		confirmButtonStyle.Render("Yes, Delete (y)"),
		cancelButtonStyle.Render("Cancel (n/esc)"),
	)

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		title,
		"",
		message,
		entityInfo,
		warning,
		"",
		buttons,
	)

	box := confirmBoxStyle.Render(content)

	return lipgloss.Place(
		m.width,
		m.height,
		lipgloss.Center,
		lipgloss.Center,
		box,
	)
}

func (m Model) selectedRecordLabel() (name, kind string) {
	switch m.entityType {
	case EntityAccounts:
		if a, ok := m.accounts.Get(m.selectedID); ok {
			return a.Name, "account"
		}
		return fmt.Sprintf("Account #%d", m.selectedID), "account"
	case EntityContacts:
		if c, ok := m.contacts.Get(m.selectedID); ok {
			return c.FullName(), "contact"
		}
		return fmt.Sprintf("Contact #%d", m.selectedID), "contact"
	case EntityLeads:
		if l, ok := m.leads.Get(m.selectedID); ok {
			return l.Title, "lead"
		}
		return fmt.Sprintf("Lead #%d", m.selectedID), "lead"
	case EntityActivities:
		if a, ok := m.activities.Get(m.selectedID); ok {
			return a.Subject, "activity"
		}
		return fmt.Sprintf("Activity #%d", m.selectedID), "activity"
	case EntityTasks:
		if t, ok := m.tasks.Get(m.selectedID); ok {
			return t.Title, "task"
		}
		return fmt.Sprintf("Task #%d", m.selectedID), "task"
	}
	return "", "record"
}

func (m Model) handleConfirmDeleteKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.loading = true
		return m, m.performDelete()
	case "n", "N", "esc":
		m.viewMode = ViewList
	}

	return m, nil
}

func (m Model) performDelete() tea.Cmd {
	id := m.selectedID
	entity := m.entityType

	return func() tea.Msg {
		ctx := context.Background()
		switch entity {
		case EntityAccounts:
			return mutationDoneMsg{err: m.accounts.Remove(ctx, id)}
		case EntityContacts:
			return mutationDoneMsg{err: m.contacts.Remove(ctx, id)}
		case EntityLeads:
			return mutationDoneMsg{err: m.leads.Remove(ctx, id)}
		case EntityActivities:
			return mutationDoneMsg{err: m.activities.Remove(ctx, id)}
		case EntityTasks:
			return mutationDoneMsg{err: m.tasks.Remove(ctx, id)}
		}
		return mutationDoneMsg{err: fmt.Errorf("unknown record type")}
	}
}
