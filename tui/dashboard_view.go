// ABOUTME: Dashboard view with headline stat cards and drill-down lists
// ABOUTME: Selecting a card shows the records behind its number
package tui

import (
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

type dashboardDrill int

const (
	drillNone dashboardDrill = iota
	drillOpenLeads
	drillAccounts
	drillOpenTasks
	drillPipeline
)

var (
	cardBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 2).
			Width(20).
			Align(lipgloss.Center)

	cardBoxActiveStyle = cardBoxStyle.
				BorderForeground(lipgloss.Color("170"))

	cardValueStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("228"))

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	drillRowSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))
)

func (m Model) renderDashboardView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("DASHBOARD"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	stats := m.dash.Stats
	cards := []struct {
		label string
		value string
		drill dashboardDrill
	}{
		{"Open Leads", fmt.Sprintf("%d", stats.OpenLeads), drillOpenLeads},
		{"Accounts", fmt.Sprintf("%d", stats.TotalAccounts), drillAccounts},
		{"Open Tasks", fmt.Sprintf("%d", stats.OpenTasks), drillOpenTasks},
		{"Pipeline", fmt.Sprintf("$%.2f", stats.PipelineValue), drillPipeline},
	}

	rendered := make([]string, 0, len(cards))
	for _, card := range cards {
		body := lipgloss.JoinVertical(
			lipgloss.Center,
			cardValueStyle.Render(card.value),
			cardLabelStyle.Render(card.label),
		)
		if card.drill == m.drill {
			rendered = append(rendered, cardBoxActiveStyle.Render(body))
		} else {
			rendered = append(rendered, cardBoxStyle.Render(body))
		}
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, rendered...))
	s.WriteString("\n\n")

	if m.drillDetail {
		s.WriteString(m.renderDrillDetail())
	} else {
		s.WriteString(m.renderDrillDown())
	}
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}

	var help []string
	if m.drillDetail {
		help = []string{"Esc: Back to list", "q: Quit"}
	} else if m.drill != drillNone {
		help = []string{
			"↑/↓: Select record",
			"Enter: View record",
			"Esc: Close drill-down",
			"Tab: Switch tabs",
			"q: Quit",
		}
	} else {
		help = []string{
			"1-4: Drill into a card",
			"Tab: Switch tabs",
			"r: Refresh",
			"q: Quit",
		}
	}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

// drillLeads returns the lead subset behind the active lead card.
func (m Model) drillLeads() []models.Lead {
	switch m.drill {
	case drillOpenLeads:
		return views.DrillOpenLeads(m.dash.Leads)
	case drillPipeline:
		return views.DrillPipelineLeads(m.dash.Leads)
	}
	return nil
}

func (m Model) drillCount() int {
	switch m.drill {
	case drillOpenLeads, drillPipeline:
		return len(m.drillLeads())
	case drillAccounts:
		return len(m.dash.Accounts)
	case drillOpenTasks:
		return len(views.DrillOpenTasks(m.dash.Tasks))
	}
	return 0
}

func (m Model) drillRow(i int, line string) string {
	if i == m.drillIndex {
		return drillRowSelectedStyle.Render("▸ "+line) + "\n"
	}
	return "  " + line + "\n"
}

func (m Model) renderDrillDown() string {
	var s strings.Builder

	switch m.drill {
	case drillOpenLeads:
		s.WriteString(columnHeaderStyle.Render("Open leads"))
		s.WriteString("\n")
		for i, l := range m.drillLeads() {
			s.WriteString(m.drillRow(i, fmt.Sprintf("%s — %s, %s", l.Title, l.Stage, models.FormatCents(l.ValueCents))))
		}
	case drillAccounts:
		s.WriteString(columnHeaderStyle.Render("Accounts"))
		s.WriteString("\n")
		for i, a := range m.dash.Accounts {
			s.WriteString(m.drillRow(i, fmt.Sprintf("%s (%s)", a.Name, orDash(a.Industry))))
		}
	case drillOpenTasks:
		now := time.Now()
		s.WriteString(columnHeaderStyle.Render("Open tasks"))
		s.WriteString("\n")
		for i, t := range views.DrillOpenTasks(m.dash.Tasks) {
			s.WriteString(m.drillRow(i, fmt.Sprintf("%s — %s", t.Title, models.HumanDueDate(t.DueAt, now))))
		}
		overdue := views.OverdueTasks(m.dash.Tasks, now)
		done := views.CompletedTasks(m.dash.Tasks)
		s.WriteString(fmt.Sprintf("\n  %d overdue, %d completed\n", len(overdue), len(done)))
	case drillPipeline:
		s.WriteString(columnHeaderStyle.Render("Pipeline leads"))
		s.WriteString("\n")
		for i, l := range m.drillLeads() {
			s.WriteString(m.drillRow(i, fmt.Sprintf("%s — %s, %s", l.Title, l.Stage, models.FormatCents(l.ValueCents))))
		}
	default:
		s.WriteString(cardLabelStyle.Render("Press 1-4 to see the records behind a card."))
		s.WriteString("\n")
	}

	return s.String()
}

// renderDrillDetail shows the selected drill-down record field by field.
// This surface is read-only; editing happens on the record's own tab.
func (m Model) renderDrillDetail() string {
	switch m.drill {
	case drillOpenLeads, drillPipeline:
		leads := m.drillLeads()
		if m.drillIndex < len(leads) {
			return m.leadFields(leads[m.drillIndex])
		}
	case drillAccounts:
		if m.drillIndex < len(m.dash.Accounts) {
			return m.accountFields(m.dash.Accounts[m.drillIndex])
		}
	case drillOpenTasks:
		tasks := views.DrillOpenTasks(m.dash.Tasks)
		if m.drillIndex < len(tasks) {
			return m.taskFields(tasks[m.drillIndex])
		}
	}
	return "Record not found"
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}

func (m Model) handleDashboardKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.drillDetail {
		if msg.String() == "esc" {
			m.drillDetail = false
		}
		return m, nil
	}

	switch msg.String() {
	case "1":
		m.drill, m.drillIndex = drillOpenLeads, 0
	case "2":
		m.drill, m.drillIndex = drillAccounts, 0
	case "3":
		m.drill, m.drillIndex = drillOpenTasks, 0
	case "4":
		m.drill, m.drillIndex = drillPipeline, 0
	case "up", "k":
		if m.drillIndex > 0 {
			m.drillIndex--
		}
	case "down", "j":
		if m.drillIndex < m.drillCount()-1 {
			m.drillIndex++
		}
	case "enter":
		if m.drill != drillNone && m.drillCount() > 0 {
			m.drillDetail = true
		}
	case "esc":
		m.drill = drillNone
	case "tab":
		return m.switchTab((m.entityType + 1) % tabCount)
	case "shift+tab":
		return m.switchTab((m.entityType + tabCount - 1) % tabCount)
	case "r":
		m.err = nil
		return m, m.loadEntity(TabDashboard)
	}

	return m, nil
}
