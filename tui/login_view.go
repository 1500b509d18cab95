// ABOUTME: Login and registration view for the TUI
// ABOUTME: Collects credentials and drives the session store
package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	loginFieldName = iota // registration only
	loginFieldEmail
	loginFieldPassword
)

func (m *Model) initLoginForm() {
	inputs := make([]textinput.Model, 3)

	inputs[loginFieldName] = textinput.New()
	inputs[loginFieldName].Placeholder = "Name"
	inputs[loginFieldName].CharLimit = 100

	inputs[loginFieldEmail] = textinput.New()
	inputs[loginFieldEmail].Placeholder = "Email"
	inputs[loginFieldEmail].CharLimit = 100

	inputs[loginFieldPassword] = textinput.New()
	inputs[loginFieldPassword].Placeholder = "Password"
	inputs[loginFieldPassword].CharLimit = 100
	inputs[loginFieldPassword].EchoMode = textinput.EchoPassword
	inputs[loginFieldPassword].EchoCharacter = '•'

	m.loginInputs = inputs
	m.loginFocus = loginFieldEmail
	m.updateLoginFocus()
}

func (m *Model) updateLoginFocus() {
	for i := range m.loginInputs {
		if i == m.loginFocus {
			m.loginInputs[i].Focus()
		} else {
			m.loginInputs[i].Blur()
		}
	}
}

func (m Model) renderLoginView() string {
	var s strings.Builder

	if m.registering {
		s.WriteString(titleStyle.Render("TRAILTRACK — REGISTER"))
	} else {
		s.WriteString(titleStyle.Render("TRAILTRACK — SIGN IN"))
	}
	s.WriteString("\n\n")

	for i, input := range m.loginInputs {
		if i == loginFieldName && !m.registering {
			continue
		}
		if i == m.loginFocus {
			s.WriteString("> ")
		} else {
			s.WriteString("  ")
		}
		s.WriteString(input.View())
		s.WriteString("\n")
	}

	s.WriteString("\n")
	if m.loginPending {
		s.WriteString("Signing in...\n")
	}
	if m.err != nil {
		s.WriteString(errorStyle.Render(m.err.Error()))
		s.WriteString("\n")
	}
	if m.status != "" {
		s.WriteString(statusStyle.Render(m.status))
		s.WriteString("\n")
	}

	help := []string{"Tab: Next field", "Enter: Submit", "Ctrl+R: Toggle register", "Ctrl+C: Quit"}
	s.WriteString(helpStyle.Render(strings.Join(help, " • ")))

	return s.String()
}

func (m Model) handleLoginKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.loginPending {
		return m, nil
	}

	switch msg.String() {
	case "ctrl+r":
		m.registering = !m.registering
		m.err = nil
		m.status = ""
		if m.registering {
			m.loginFocus = loginFieldName
		} else {
			m.loginFocus = loginFieldEmail
		}
		m.updateLoginFocus()
		return m, nil
	case "tab", "shift+tab", "up", "down":
		first := loginFieldEmail
		if m.registering {
			first = loginFieldName
		}
		if msg.String() == "shift+tab" || msg.String() == "up" {
			m.loginFocus--
		} else {
			m.loginFocus++
		}
		if m.loginFocus > loginFieldPassword {
			m.loginFocus = first
		}
		if m.loginFocus < first {
			m.loginFocus = loginFieldPassword
		}
		m.updateLoginFocus()
		return m, nil
	case "enter":
		m.err = nil
		m.status = ""
		m.loginPending = true
		return m, m.submitCredentials()
	}

	var cmd tea.Cmd
	m.loginInputs[m.loginFocus], cmd = m.loginInputs[m.loginFocus].Update(msg)
	return m, cmd
}

func (m Model) submitCredentials() tea.Cmd {
	name := strings.TrimSpace(m.loginInputs[loginFieldName].Value())
	email := strings.TrimSpace(m.loginInputs[loginFieldEmail].Value())
	password := m.loginInputs[loginFieldPassword].Value()
	registering := m.registering

	return func() tea.Msg {
		ctx := context.Background()
		if registering {
			if err := m.session.Register(ctx, name, email, password); err != nil {
				return authDoneMsg{err: err}
			}
		}
		return authDoneMsg{err: m.session.Login(ctx, email, password)}
	}
}

func (m Model) handleAuthDone(msg authDoneMsg) (tea.Model, tea.Cmd) {
	m.loginPending = false
	if msg.err != nil {
		m.err = msg.err
		return m, nil
	}
	m.err = nil
	m.registering = false
	m.viewMode = ViewList
	return m, m.loadEntity(m.entityType)
}
