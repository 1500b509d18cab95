// ABOUTME: Terminal User Interface using bubbletea framework
// ABOUTME: Provides interactive full-screen interface for CRM operations
package tui

import (
	"context"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/JarvisforJira/TrailTrack/api"
	"github.com/JarvisforJira/TrailTrack/models"
	"github.com/JarvisforJira/TrailTrack/session"
	"github.com/JarvisforJira/TrailTrack/views"
)

// ViewMode represents the current TUI view
type ViewMode int

const (
	ViewLogin ViewMode = iota
	ViewList
	ViewDetail
	ViewEdit
	ViewConfirmDelete
	ViewPipeline
	ViewDashboard
)

// EntityType represents the type of entity being viewed
type EntityType int

const (
	EntityAccounts EntityType = iota
	EntityContacts
	EntityLeads
	EntityActivities
	EntityTasks
	// the last two tabs are full-screen views, not record lists
	TabPipeline
	TabDashboard

	tabCount = 7
)

// Model is the main bubbletea model
type Model struct {
	client  *api.Client
	session *session.Store

	viewMode   ViewMode
	entityType EntityType

	// Record collections, loaded on demand and shared across views
	accounts   *views.ListView[models.Account]
	contacts   *views.ListView[models.Contact]
	leads      *views.ListView[models.Lead]
	activities *views.ListView[models.Activity]
	tasks      *views.ListView[models.Task]
	board      *views.Board
	dash       *views.Dashboard
	refs       views.RefSet

	// List view state
	selectedRow int
	searchInput textinput.Model
	searching   bool

	// Detail / edit / delete state
	selectedID int
	formInputs []textinput.Model
	focusIndex int

	// Login view state
	loginInputs  []textinput.Model
	loginFocus   int
	registering  bool
	loginPending bool

	// Pipeline view state
	stageIndex int
	leadIndex  int

	// Dashboard view state
	drill       dashboardDrill
	drillIndex  int
	drillDetail bool

	// UI state
	status  string
	loading bool
	width   int
	height  int
	err     error
}

// NewModel creates a new TUI model
func NewModel(client *api.Client, sess *session.Store) Model {
	search := textinput.New()
	search.Placeholder = "Search..."
	search.CharLimit = 100

	return Model{
		client:      client,
		session:     sess,
		viewMode:    ViewLogin,
		entityType:  EntityAccounts,
		accounts:    views.NewListView(client, views.Accounts()),
		contacts:    views.NewListView(client, views.Contacts()),
		leads:       views.NewListView(client, views.Leads()),
		activities:  views.NewListView(client, views.Activities()),
		tasks:       views.NewListView(client, views.Tasks()),
		board:       views.NewBoard(client),
		dash:        views.NewDashboard(client),
		searchInput: search,
		width:       80,
		height:      24,
	}
}

// Messages produced by async commands. Commands only talk to the server;
// fetched data rides back on the message and Update installs it, so the
// shared collections are only ever touched on the update goroutine.

type sessionRestoredMsg struct{ state session.State }

type authDoneMsg struct{ err error }

type dataLoadedMsg struct {
	entity EntityType
	// install assigns the fetched data to the owning collection. Update runs
	// it; nil on a failed fetch.
	install func()
	err     error
}

type refsLoadedMsg struct{ refs views.RefSet }

type mutationDoneMsg struct{ err error }

func (m Model) Init() tea.Cmd {
	return m.restoreSession()
}

func (m Model) restoreSession() tea.Cmd {
	return func() tea.Msg {
		_ = m.session.Restore(context.Background())
		return sessionRestoredMsg{state: m.session.State()}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case sessionRestoredMsg:
		if msg.state == session.StateAuthenticated {
			m.viewMode = ViewList
			return m, m.loadEntity(m.entityType)
		}
		m.initLoginForm()
		return m, nil
	case authDoneMsg:
		return m.handleAuthDone(msg)
	case dataLoadedMsg:
		m.loading = false
		m.err = msg.err
		if msg.install != nil {
			msg.install()
		}
		return m, nil
	case refsLoadedMsg:
		m.refs = msg.refs
		return m, nil
	case mutationDoneMsg:
		m.loading = false
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.err = nil
		if m.viewMode == ViewEdit || m.viewMode == ViewConfirmDelete {
			m.viewMode = ViewList
			m.selectedID = 0
		}
		// mutations don't reload; fetch the confirmed state now
		return m, m.loadEntity(m.entityType)
	}
	return m, nil
}

func (m Model) View() string {
	switch m.viewMode {
	case ViewLogin:
		return m.renderLoginView()
	case ViewList:
		return m.renderListView()
	case ViewDetail:
		return m.renderDetailView()
	case ViewEdit:
		return m.renderEditView()
	case ViewConfirmDelete:
		return m.renderConfirmDeleteView()
	case ViewPipeline:
		return m.renderPipelineView()
	case ViewDashboard:
		return m.renderDashboardView()
	}
	return ""
}

func (m Model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Global quit, except while typing in a form or search box
	if !m.typing() {
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		}
	} else if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}

	// Delegate to view-specific handlers
	switch m.viewMode {
	case ViewLogin:
		return m.handleLoginKeys(msg)
	case ViewList:
		return m.handleListKeys(msg)
	case ViewDetail:
		return m.handleDetailKeys(msg)
	case ViewEdit:
		return m.handleEditKeys(msg)
	case ViewConfirmDelete:
		return m.handleConfirmDeleteKeys(msg)
	case ViewPipeline:
		return m.handlePipelineKeys(msg)
	case ViewDashboard:
		return m.handleDashboardKeys(msg)
	}

	return m, nil
}

func (m Model) typing() bool {
	switch m.viewMode {
	case ViewLogin, ViewEdit:
		return true
	case ViewList:
		return m.searching
	}
	return false
}

// loadEntity fetches the current tab's collection plus the cross-references
// its rows display. The fetch runs off the update goroutine; the message it
// returns installs the result back on it.
func (m Model) loadEntity(entity EntityType) tea.Cmd {
	switch entity {
	case EntityAccounts:
		return fetchCmd(entity, m.accounts)
	case EntityContacts:
		return tea.Batch(fetchCmd(entity, m.contacts), m.loadRefs(false, true, false))
	case EntityLeads:
		return tea.Batch(fetchCmd(entity, m.leads), m.loadRefs(false, true, true))
	case EntityActivities:
		return tea.Batch(fetchCmd(entity, m.activities), m.loadRefs(true, false, false))
	case EntityTasks:
		return tea.Batch(fetchCmd(entity, m.tasks), m.loadRefs(true, true, true))
	case TabPipeline:
		board := m.board
		return func() tea.Msg {
			leads, err := board.Fetch(context.Background())
			if err != nil {
				return dataLoadedMsg{entity: entity, err: err}
			}
			return dataLoadedMsg{entity: entity, install: func() { board.SetLeads(leads) }}
		}
	case TabDashboard:
		dash := m.dash
		return func() tea.Msg {
			data, err := dash.Fetch(context.Background())
			if err != nil {
				return dataLoadedMsg{entity: entity, err: err}
			}
			return dataLoadedMsg{entity: entity, install: func() { dash.Set(data) }}
		}
	}
	return nil
}

func fetchCmd[T any](entity EntityType, v *views.ListView[T]) tea.Cmd {
	return func() tea.Msg {
		items, err := v.Fetch(context.Background())
		if err != nil {
			return dataLoadedMsg{entity: entity, err: err}
		}
		return dataLoadedMsg{entity: entity, install: func() { v.SetItems(items) }}
	}
}

func (m Model) loadRefs(leads, accounts, contacts bool) tea.Cmd {
	return func() tea.Msg {
		return refsLoadedMsg{refs: views.LoadRefs(context.Background(), m.client, leads, accounts, contacts)}
	}
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			MarginBottom(1)

	tabActiveStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170")).
			Background(lipgloss.Color("235")).
			Padding(0, 2)

	tabInactiveStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("240")).
				Padding(0, 2)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240")).
			MarginTop(1)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9")).
			Bold(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42"))
)
