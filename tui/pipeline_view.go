// ABOUTME: Kanban pipeline view rendering leads as stage columns
// ABOUTME: Moves the selected lead between stages with h/l
package tui

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/views"
)

var (
	columnStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1).
			Width(22)

	columnActiveStyle = columnStyle.
				BorderForeground(lipgloss.Color("170"))

	columnHeaderStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("170"))

	cardStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	cardSelectedStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("228")).
				Background(lipgloss.Color("235"))
)

func (m Model) renderPipelineView() string {
	var s strings.Builder

	s.WriteString(titleStyle.Render("PIPELINE"))
	s.WriteString("\n\n")
	s.WriteString(m.renderTabs())
	s.WriteString("\n\n")

	buckets := m.board.Buckets()
	columns := make([]string, 0, len(buckets))
	for i, bucket := range buckets {
		columns = append(columns, m.renderStageColumn(i, bucket))
	}
	s.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, columns...))
	s.WriteString("\n\n")

	s.WriteString(fmt.Sprintf("Total pipeline: %s", models.FormatCents(m.board.TotalValueCents())))
	s.WriteString("\n")

	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}

	help := []string{
		"←/→: Switch stage",
		"↑/↓: Select lead",
		"h/l: Move lead",
		"Enter: Details",
		"Tab: Switch tabs",
		"r: Refresh",
		"q: Quit",
	}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) renderStageColumn(index int, b views.StageBucket) string {
	var body strings.Builder
	body.WriteString(columnHeaderStyle.Render(fmt.Sprintf("%s (%d)", b.Stage, len(b.Leads))))
	body.WriteString("\n")
	body.WriteString(models.FormatCents(b.ValueCents))
	body.WriteString("\n\n")

	for i, lead := range b.Leads {
		line := truncate(lead.Title, 18)
		if index == m.stageIndex && i == m.leadIndex {
			body.WriteString(cardSelectedStyle.Render(line))
		} else {
			body.WriteString(cardStyle.Render(line))
		}
		body.WriteString("\n")
	}

	if index == m.stageIndex {
		return columnActiveStyle.Render(body.String())
	}
	return columnStyle.Render(body.String())
}

func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}

func (m Model) handlePipelineKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	buckets := m.board.Buckets()

	switch msg.String() {
	case "left":
		if m.stageIndex > 0 {
			m.stageIndex--
			m.leadIndex = 0
		}
	case "right":
		if m.stageIndex < len(buckets)-1 {
			m.stageIndex++
			m.leadIndex = 0
		}
	case "up", "k":
		if m.leadIndex > 0 {
			m.leadIndex--
		}
	case "down", "j":
		if m.leadIndex < len(buckets[m.stageIndex].Leads)-1 {
			m.leadIndex++
		}
	case "h":
		return m.moveSelectedLead(-1)
	case "l":
		return m.moveSelectedLead(1)
	case "enter":
		if lead, ok := m.selectedLead(); ok {
			m.entityType = EntityLeads
			m.viewMode = ViewDetail
			m.selectedID = lead.ID
			return m, m.loadEntity(EntityLeads)
		}
	case "tab":
		return m.switchTab((m.entityType + 1) % tabCount)
	case "shift+tab":
		return m.switchTab((m.entityType + tabCount - 1) % tabCount)
	case "r":
		m.err = nil
		return m, m.loadEntity(TabPipeline)
	}

	return m, nil
}

func (m Model) selectedLead() (models.Lead, bool) {
	buckets := m.board.Buckets()
	if m.stageIndex >= len(buckets) {
		return models.Lead{}, false
	}
	leads := buckets[m.stageIndex].Leads
	if m.leadIndex >= len(leads) {
		return models.Lead{}, false
	}
	return leads[m.leadIndex], true
}

// moveSelectedLead shifts the selected lead one stage over. Only the stage
// is sent; the server rederives the lead's status and the board reloads.
func (m Model) moveSelectedLead(delta int) (tea.Model, tea.Cmd) {
	lead, ok := m.selectedLead()
	if !ok {
		return m, nil
	}

	stages := models.Stages()
	target := m.stageIndex + delta
	if target < 0 || target >= len(stages) {
		return m, nil
	}

	m.stageIndex = target
	m.leadIndex = 0
	m.loading = true

	stage := stages[target]
	return m, func() tea.Msg {
		return mutationDoneMsg{err: m.board.MoveStage(context.Background(), lead.ID, stage)}
	}
}
