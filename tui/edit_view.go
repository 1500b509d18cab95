// ABOUTME: Create and edit forms for all five record types
// ABOUTME: Text-input forms with currency, date, and reference-id coercion
package tui

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/JarvisforJira/TrailTrack/models"
)

func (m Model) renderEditView() string {
	var s strings.Builder

	if m.selectedID == 0 {
		s.WriteString(titleStyle.Render("NEW " + m.entityTypeName()))
	} else {
		s.WriteString(titleStyle.Render("EDIT " + m.entityTypeName()))
	}
	s.WriteString("\n\n")

	for i, input := range m.formInputs {
		if i == m.focusIndex {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}

	s.WriteString(m.renderEditHelp())

	return s.String()
}

func (m Model) entityTypeName() string {
	switch m.entityType {
	case EntityAccounts:
		return "ACCOUNT"
	case EntityContacts:
		return "CONTACT"
	case EntityLeads:
		return "LEAD"
	case EntityActivities:
		return "ACTIVITY"
	case EntityTasks:
		return "TASK"
	}
	return ""
}

func (m Model) renderEditHelp() string {
	help := []string{
		"Tab: Next field",
		"Enter: Save",
		"Esc: Cancel",
	}
	return helpStyle.Render(strings.Join(help, " • "))
}

func (m Model) handleEditKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.viewMode = ViewList
		m.err = nil
		return m, nil
	case "tab", "down":
		m.focusIndex = (m.focusIndex + 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "shift+tab", "up":
		m.focusIndex = (m.focusIndex + len(m.formInputs) - 1) % len(m.formInputs)
		m.updateFormFocus()
		return m, nil
	case "enter":
		m.err = nil
		m.loading = true
		return m, m.saveRecord()
	}

	var cmd tea.Cmd
	m.formInputs[m.focusIndex], cmd = m.formInputs[m.focusIndex].Update(msg)
	return m, cmd
}

func newInput(placeholder string, limit int) textinput.Model {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = limit
	return in
}

func (m *Model) initFormInputs() {
	switch m.entityType {
	case EntityAccounts:
		m.initAccountForm()
	case EntityContacts:
		m.initContactForm()
	case EntityLeads:
		m.initLeadForm()
	case EntityActivities:
		m.initActivityForm()
	case EntityTasks:
		m.initTaskForm()
	}

	m.focusIndex = 0
	m.updateFormFocus()
}

func (m *Model) initAccountForm() {
	inputs := []textinput.Model{
		newInput("Name", 100),
		newInput("Industry", 100),
		newInput("Size ("+strings.Join(models.AccountSizes, "/")+")", 20),
		newInput("Email", 100),
		newInput("Phone", 20),
		newInput("Website", 100),
		newInput("Notes", 500),
	}

	if account, ok := m.accounts.Get(m.selectedID); ok {
		inputs[0].SetValue(account.Name)
		inputs[1].SetValue(account.Industry)
		inputs[2].SetValue(account.Size)
		inputs[3].SetValue(account.Email)
		inputs[4].SetValue(account.Phone)
		inputs[5].SetValue(account.Website)
		inputs[6].SetValue(account.Notes)
	}

	m.formInputs = inputs
}

func (m *Model) initContactForm() {
	inputs := []textinput.Model{
		newInput("First name", 100),
		newInput("Last name", 100),
		newInput("Title", 100),
		newInput("Email", 100),
		newInput("Phone", 20),
		newInput("Account ID (blank for independent)", 10),
		newInput("Notes", 500),
	}

	if contact, ok := m.contacts.Get(m.selectedID); ok {
		inputs[0].SetValue(contact.FirstName)
		inputs[1].SetValue(contact.LastName)
		inputs[2].SetValue(contact.Title)
		inputs[3].SetValue(contact.Email)
		inputs[4].SetValue(contact.Phone)
		if contact.AccountID != nil {
			inputs[5].SetValue(strconv.Itoa(*contact.AccountID))
		}
		inputs[6].SetValue(contact.Notes)
	}

	m.formInputs = inputs
}

func (m *Model) initLeadForm() {
	inputs := []textinput.Model{
		newInput("Title", 100),
		newInput("Account ID (optional)", 10),
		newInput("Contact ID (optional)", 10),
		newInput("Stage ("+strings.Join(models.Stages(), "/")+")", 20),
		newInput("Value (dollars, e.g. 1234.50)", 20),
		newInput("Probability (0-100)", 3),
		newInput("Source", 100),
	}

	if lead, ok := m.leads.Get(m.selectedID); ok {
		inputs[0].SetValue(lead.Title)
		if lead.AccountID != nil {
			inputs[1].SetValue(strconv.Itoa(*lead.AccountID))
		}
		if lead.PrimaryContactID != nil {
			inputs[2].SetValue(strconv.Itoa(*lead.PrimaryContactID))
		}
		inputs[3].SetValue(lead.Stage)
		inputs[4].SetValue(strings.TrimPrefix(models.FormatCents(lead.ValueCents), "$"))
		inputs[5].SetValue(strconv.Itoa(lead.Probability))
		inputs[6].SetValue(lead.Source)
	} else {
		inputs[3].SetValue(models.StageNew)
		inputs[5].SetValue("50")
	}

	m.formInputs = inputs
}

func (m *Model) initActivityForm() {
	inputs := []textinput.Model{
		newInput("Type (call/email/meeting/note/sms)", 10),
		newInput("Subject", 200),
		newInput("Lead ID (optional)", 10),
		newInput("Duration minutes (optional)", 5),
		newInput("Body", 1000),
	}

	if activity, ok := m.activities.Get(m.selectedID); ok {
		inputs[0].SetValue(activity.Type)
		inputs[1].SetValue(activity.Subject)
		if activity.LeadID != nil {
			inputs[2].SetValue(strconv.Itoa(*activity.LeadID))
		}
		if activity.DurationMinutes != nil {
			inputs[3].SetValue(strconv.Itoa(*activity.DurationMinutes))
		}
		inputs[4].SetValue(activity.Body)
	}

	m.formInputs = inputs
}

func (m *Model) initTaskForm() {
	inputs := []textinput.Model{
		newInput("Title", 200),
		newInput("Linked type (lead/account/contact)", 10),
		newInput("Linked ID", 10),
		newInput("Due date (YYYY-MM-DD, optional)", 10),
		newInput("Priority (low/medium/high)", 10),
	}

	if task, ok := m.tasks.Get(m.selectedID); ok {
		inputs[0].SetValue(task.Title)
		inputs[1].SetValue(string(task.LinkedType))
		inputs[2].SetValue(strconv.Itoa(task.LinkedID))
		if task.DueAt != nil {
			inputs[3].SetValue(task.DueAt.Format("2006-01-02"))
		}
		inputs[4].SetValue(task.Priority)
	} else {
		inputs[4].SetValue(models.PriorityMedium)
	}

	m.formInputs = inputs
}

func (m *Model) updateFormFocus() {
	for i := range m.formInputs {
		if i == m.focusIndex {
			m.formInputs[i].Focus()
		} else {
			m.formInputs[i].Blur()
		}
	}
}

func (m Model) saveRecord() tea.Cmd {
	switch m.entityType {
	case EntityAccounts:
		return m.saveAccount()
	case EntityContacts:
		return m.saveContact()
	case EntityLeads:
		return m.saveLead()
	case EntityActivities:
		return m.saveActivity()
	case EntityTasks:
		return m.saveTask()
	}
	return nil
}

func (m Model) formValue(i int) string {
	return strings.TrimSpace(m.formInputs[i].Value())
}

// optionalID parses a numeric reference field; blank means no reference.
func optionalID(raw string) (*int, error) {
	if raw == "" {
		return nil, nil
	}
	id, err := strconv.Atoi(raw)
	if err != nil {
		return nil, fmt.Errorf("invalid id %q", raw)
	}
	return &id, nil
}

func (m Model) saveAccount() tea.Cmd {
	account := models.Account{
		Name:     m.formValue(0),
		Industry: m.formValue(1),
		Size:     m.formValue(2),
		Email:    m.formValue(3),
		Phone:    m.formValue(4),
		Website:  m.formValue(5),
		Notes:    m.formValue(6),
	}
	id := m.selectedID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			return mutationDoneMsg{err: m.accounts.Post(ctx, account)}
		}
		return mutationDoneMsg{err: m.accounts.Patch(ctx, id, map[string]any{
			"name": account.Name, "industry": account.Industry, "size": account.Size,
			"email": account.Email, "phone": account.Phone, "website": account.Website,
			"notes": account.Notes,
		})}
	}
}

func (m Model) saveContact() tea.Cmd {
	accountID, err := optionalID(m.formValue(5))
	if err != nil {
		return func() tea.Msg { return mutationDoneMsg{err: err} }
	}

	contact := models.Contact{
		FirstName: m.formValue(0),
		LastName:  m.formValue(1),
		Title:     m.formValue(2),
		Email:     m.formValue(3),
		Phone:     m.formValue(4),
		AccountID: accountID,
		Notes:     m.formValue(6),
	}
	id := m.selectedID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			return mutationDoneMsg{err: m.contacts.Post(ctx, contact)}
		}
		return mutationDoneMsg{err: m.contacts.Patch(ctx, id, map[string]any{
			"first_name": contact.FirstName, "last_name": contact.LastName,
			"title": contact.Title, "email": contact.Email, "phone": contact.Phone,
			"account_id": contact.AccountID, "notes": contact.Notes,
		})}
	}
}

func (m Model) saveLead() tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return mutationDoneMsg{err: err} }
	}

	accountID, err := optionalID(m.formValue(1))
	if err != nil {
		return fail(err)
	}
	contactID, err := optionalID(m.formValue(2))
	if err != nil {
		return fail(err)
	}
	valueCents, err := models.ParseDollars(m.formValue(4))
	if err != nil {
		return fail(err)
	}
	probability := 0
	if raw := m.formValue(5); raw != "" {
		probability, err = strconv.Atoi(raw)
		if err != nil {
			return fail(fmt.Errorf("invalid probability %q", raw))
		}
	}

	lead := models.Lead{
		Title:            m.formValue(0),
		AccountID:        accountID,
		PrimaryContactID: contactID,
		Stage:            m.formValue(3),
		ValueCents:       valueCents,
		Probability:      probability,
		Source:           m.formValue(6),
	}
	id := m.selectedID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			return mutationDoneMsg{err: m.leads.Post(ctx, lead)}
		}
		return mutationDoneMsg{err: m.leads.Patch(ctx, id, map[string]any{
			"title": lead.Title, "account_id": lead.AccountID,
			"primary_contact_id": lead.PrimaryContactID, "stage": lead.Stage,
			"value_cents": lead.ValueCents, "probability": lead.Probability,
			"source": lead.Source,
		})}
	}
}

func (m Model) saveActivity() tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return mutationDoneMsg{err: err} }
	}

	leadID, err := optionalID(m.formValue(2))
	if err != nil {
		return fail(err)
	}
	var duration *int
	if raw := m.formValue(3); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return fail(fmt.Errorf("invalid duration %q", raw))
		}
		duration = &n
	}

	activity := models.Activity{
		Type:            m.formValue(0),
		Subject:         m.formValue(1),
		LeadID:          leadID,
		DurationMinutes: duration,
		Body:            m.formValue(4),
		OccurredAt:      time.Now(),
	}
	id := m.selectedID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			return mutationDoneMsg{err: m.activities.Post(ctx, activity)}
		}
		return mutationDoneMsg{err: m.activities.Patch(ctx, id, map[string]any{
			"type": activity.Type, "subject": activity.Subject,
			"lead_id": activity.LeadID, "duration_minutes": activity.DurationMinutes,
			"body": activity.Body,
		})}
	}
}

func (m Model) saveTask() tea.Cmd {
	fail := func(err error) tea.Cmd {
		return func() tea.Msg { return mutationDoneMsg{err: err} }
	}

	linkedID := 0
	if raw := m.formValue(2); raw != "" {
		var err error
		linkedID, err = strconv.Atoi(raw)
		if err != nil {
			return fail(fmt.Errorf("invalid linked id %q", raw))
		}
	}
	var dueAt *time.Time
	if raw := m.formValue(3); raw != "" {
		due, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return fail(fmt.Errorf("invalid due date %q, want YYYY-MM-DD", raw))
		}
		dueAt = &due
	}

	task := models.Task{
		Title:      m.formValue(0),
		LinkedType: models.LinkedType(m.formValue(1)),
		LinkedID:   linkedID,
		DueAt:      dueAt,
		Priority:   m.formValue(4),
	}
	id := m.selectedID

	return func() tea.Msg {
		ctx := context.Background()
		if id == 0 {
			return mutationDoneMsg{err: m.tasks.Post(ctx, task)}
		}
		return mutationDoneMsg{err: m.tasks.Patch(ctx, id, map[string]any{
			"title": task.Title, "linked_type": task.LinkedType,
			"linked_id": task.LinkedID, "due_at": task.DueAt,
			"priority": task.Priority,
		})}
	}
}
