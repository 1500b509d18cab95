// ABOUTME: List view with tabbed record tables and live search
// ABOUTME: Renders the active collection via bubbles table and routes list keys
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

func (m Model) renderListView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("TRAILTRACK CRM"))
	s.WriteString("\n\n")

	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	if m.searching {
		s.WriteString("Search: " + m.searchInput.View())
		s.WriteString("\n\n")
	}

	s.WriteString(m.renderTable())
	s.WriteString("\n\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	s.WriteString(m.renderListHelp())

	return s.String()
}

func (m Model) renderTabs() string {
	tabs := []string{"Accounts", "Contacts", "Leads", "Activities", "Tasks", "Pipeline", "Dashboard"}
	var rendered []string

	for i, tab := range tabs {
		if EntityType(i) == m.entityType {
			rendered = append(rendered, tabActiveStyle.Render(tab))
		} else {
			rendered = append(rendered, tabInactiveStyle.Render(tab))
		}
	}

	return lipgloss.JoinHorizontal(lipgloss.Top, rendered...)
}

func (m Model) renderTable() string {
	switch m.entityType {
	case EntityAccounts:
		return m.renderAccountsTable()
	case EntityContacts:
		return m.renderContactsTable()
	case EntityLeads:
		return m.renderLeadsTable()
	case EntityActivities:
		return m.renderActivitiesTable()
	case EntityTasks:
		return m.renderTasksTable()
	}
	return ""
}

func (m Model) tableOf(columns []table.Column, rows []table.Row) string {
	height := m.height - 10
	if m.searching {
		height -= 2
	}
	if height < 3 {
		height = 3
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(height),
	)
	if m.selectedRow < len(rows) {
		t.SetCursor(m.selectedRow)
	}
	return t.View()
}

func (m Model) renderAccountsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 30},
		{Title: "Industry", Width: 20},
		{Title: "Size", Width: 10},
		{Title: "Email", Width: 25},
	}

	var rows []table.Row
	for _, a := range m.accounts.Items() {
		rows = append(rows, table.Row{a.Name, a.Industry, a.Size, a.Email})
	}
	return m.tableOf(columns, rows)
}

func (m Model) renderContactsTable() string {
	columns := []table.Column{
		{Title: "Name", Width: 25},
		{Title: "Title", Width: 20},
		{Title: "Email", Width: 25},
		{Title: "Account", Width: 20},
	}

	var rows []table.Row
	for _, c := range m.contacts.Items() {
		rows = append(rows, table.Row{
			c.FullName(), c.Title, c.Email, m.refs.AccountName(c.AccountID),
		})
	}
	return m.tableOf(columns, rows)
}

func (m Model) renderLeadsTable() string {
	columns := []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Account", Width: 20},
		{Title: "Stage", Width: 12},
		{Title: "Value", Width: 12},
		{Title: "Prob", Width: 5},
	}

	var rows []table.Row
	for _, l := range m.leads.Items() {
		rows = append(rows, table.Row{
			l.Title,
			m.refs.AccountName(l.AccountID),
			l.Stage,
			models.FormatCents(l.ValueCents),
			fmt.Sprintf("%d%%", l.Probability),
		})
	}

	open := views.DrillOpenLeads(m.leads.Items())
	var openCents int64
	for _, l := range open {
		openCents += l.ValueCents
	}
	summary := fmt.Sprintf("%d open • %s open pipeline", len(open), models.FormatCents(openCents))

	return m.tableOf(columns, rows) + "\n" + statusStyle.Render(summary)
}

func (m Model) renderActivitiesTable() string {
	columns := []table.Column{
		{Title: "When", Width: 16},
		{Title: "Type", Width: 8},
		{Title: "Subject", Width: 35},
		{Title: "Lead", Width: 25},
	}

	var rows []table.Row
	for _, a := range m.activities.Items() {
		rows = append(rows, table.Row{
			a.OccurredAt.Format("2006-01-02 15:04"),
			a.Type,
			a.Subject,
			m.refs.LeadTitle(a.LeadID),
		})
	}
	return m.tableOf(columns, rows)
}

func (m Model) renderTasksTable() string {
	columns := []table.Column{
		{Title: "Title", Width: 30},
		{Title: "Linked To", Width: 22},
		{Title: "Due", Width: 18},
		{Title: "Priority", Width: 8},
		{Title: "Status", Width: 8},
	}

	var rows []table.Row
	for _, t := range m.tasks.Items() {
		rows = append(rows, table.Row{
			t.Title,
			m.refs.LinkedName(t.Link()),
			models.HumanDueDate(t.DueAt, time.Now()),
			t.Priority,
			t.Status,
		})
	}
	return m.tableOf(columns, rows)
}

func (m Model) renderListHelp() string {
	help := []string{
		"↑/↓: Navigate",
		"Tab: Switch tabs",
		"Enter: View details",
		"/: Search",
		"n: New",
		"r: Refresh",
		"q: Quit",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleListKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.searching {
		return m.handleSearchKeys(msg)
	}

	switch msg.String() {
	case "up", "k":
		if m.selectedRow > 0 {
			m.selectedRow--
		}
	case "down", "j":
		if m.selectedRow < m.rowCount()-1 {
			m.selectedRow++
		}
	case "tab":
		return m.switchTab((m.entityType + 1) % tabCount)
	case "shift+tab":
		return m.switchTab((m.entityType + tabCount - 1) % tabCount)
	case "enter":
		if id, ok := m.selectedRecordID(); ok {
			m.viewMode = ViewDetail
			m.selectedID = id
		}
	case "/":
		m.searching = true
		m.searchInput.SetValue("")
		m.searchInput.Focus()
	case "n":
		m.viewMode = ViewEdit
		m.selectedID = 0
		m.initFormInputs()
	case "e":
		if id, ok := m.selectedRecordID(); ok {
			m.viewMode = ViewEdit
			m.selectedID = id
			m.initFormInputs()
		}
	case "d":
		if id, ok := m.selectedRecordID(); ok {
			m.viewMode = ViewConfirmDelete
			m.selectedID = id
		}
	case "r":
		m.status = ""
		m.err = nil
		return m, m.loadEntity(m.entityType)
	}

	return m, nil
}

func (m Model) switchTab(next EntityType) (tea.Model, tea.Cmd) {
	m.entityType = next
	m.selectedRow = 0
	m.searching = false
	m.err = nil
	m.status = ""
	switch next {
	case TabPipeline:
		m.viewMode = ViewPipeline
		m.stageIndex = 0
		m.leadIndex = 0
	case TabDashboard:
		m.viewMode = ViewDashboard
		m.drill = drillNone
	default:
		m.viewMode = ViewList
	}
	return m, m.loadEntity(next)
}

func (m Model) handleSearchKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.searching = false
		m.searchInput.SetValue("")
		m.applySearch("")
		return m, nil
	case "enter":
		m.searching = false
		return m, nil
	}

	var cmd tea.Cmd
	m.searchInput, cmd = m.searchInput.Update(msg)
	m.applySearch(m.searchInput.Value())
	m.selectedRow = 0
	return m, cmd
}

// applySearch narrows the active collection as the query is typed. Filtering
// is in-memory; no fetch is triggered.
func (m *Model) applySearch(query string) {
	switch m.entityType {
	case EntityAccounts:
		m.accounts.SetFilter(views.AccountFilter{Search: query}.Predicates()...)
	case EntityContacts:
		m.contacts.SetFilter(views.ContactFilter{Search: query}.Predicates()...)
	case EntityLeads:
		m.leads.SetFilter(views.LeadFilter{Search: query}.Predicates()...)
	case EntityActivities:
		m.activities.SetFilter(views.ActivityFilter{Search: query}.Predicates()...)
	case EntityTasks:
		m.tasks.SetFilter(views.TaskFilter{Search: query}.Predicates()...)
	}
}

func (m Model) rowCount() int {
	switch m.entityType {
	case EntityAccounts:
		return len(m.accounts.Items())
	case EntityContacts:
		return len(m.contacts.Items())
	case EntityLeads:
		return len(m.leads.Items())
	case EntityActivities:
		return len(m.activities.Items())
	case EntityTasks:
		return len(m.tasks.Items())
	}
	return 0
}

func (m Model) selectedRecordID() (int, bool) {
	switch m.entityType {
	case EntityAccounts:
		if items := m.accounts.Items(); m.selectedRow < len(items) {
			return items[m.selectedRow].ID, true
		}
	case EntityContacts:
		if items := m.contacts.Items(); m.selectedRow < len(items) {
			return items[m.selectedRow].ID, true
		}
	case EntityLeads:
		if items := m.leads.Items(); m.selectedRow < len(items) {
			return items[m.selectedRow].ID, true
		}
	case EntityActivities:
		if items := m.activities.Items(); m.selectedRow < len(items) {
			return items[m.selectedRow].ID, true
		}
	case EntityTasks:
		if items := m.tasks.Items(); m.selectedRow < len(items) {
			return items[m.selectedRow].ID, true
		}
	}
	return 0, false
}
