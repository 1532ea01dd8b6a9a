package tui

import (
	"peakline/internal/service"
	"peakline/internal/store"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Screen identifiers
type Screen int

const (
	ScreenDashboard Screen = iota
	ScreenScores
	ScreenAdvice
	ScreenHelp
)

// App is the root Bubble Tea model
type App struct {
	screen     Screen
	prevScreen Screen

	// Screen models
	dashboard DashboardModel
	scores    ScoresModel
	advice    AdviceModel
	help      HelpModel

	// Services
	db           *store.DB
	queryService *service.QueryService
	units        Units

	// Window dimensions
	width  int
	height int

	// Status message
	status string
}

// NewApp creates a new App with all dependencies
func NewApp(db *store.DB, queryService *service.QueryService, units Units) *App {
	return &App{
		screen:       ScreenDashboard,
		db:           db,
		queryService: queryService,
		units:        units,
		dashboard:    NewDashboardModel(queryService, units),
		scores:       NewScoresModel(queryService, units, 0, 0),
		advice:       NewAdviceModel(queryService),
		help:         NewHelpModel(),
	}
}

// Init initializes the app
func (a *App) Init() tea.Cmd {
	return a.dashboard.Init()
}

// Update handles messages
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return a, tea.Quit
		case "1":
			a.screen = ScreenDashboard
			a.dashboard = NewDashboardModel(a.queryService, a.units)
			return a, a.dashboard.Init()
		case "2":
			a.screen = ScreenScores
			a.scores = NewScoresModel(a.queryService, a.units, a.width, a.height)
			return a, a.scores.Init()
		case "3":
			a.screen = ScreenAdvice
			a.advice = NewAdviceModel(a.queryService)
			return a, a.advice.Init()
		case "?":
			a.prevScreen = a.screen
			a.screen = ScreenHelp
			return a, nil
		case "esc":
			if a.screen == ScreenHelp {
				a.screen = a.prevScreen
				return a, nil
			}
		}

	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
	}

	// Delegate to current screen
	var cmd tea.Cmd
	switch a.screen {
	case ScreenDashboard:
		var m tea.Model
		m, cmd = a.dashboard.Update(msg)
		a.dashboard = m.(DashboardModel)
	case ScreenScores:
		var m tea.Model
		m, cmd = a.scores.Update(msg)
		a.scores = m.(ScoresModel)
	case ScreenAdvice:
		var m tea.Model
		m, cmd = a.advice.Update(msg)
		a.advice = m.(AdviceModel)
	case ScreenHelp:
		var m tea.Model
		m, cmd = a.help.Update(msg)
		a.help = m.(HelpModel)
	}

	return a, cmd
}

// View renders the app
func (a *App) View() string {
	header := a.renderHeader()
	nav := a.renderNav()

	var content string
	switch a.screen {
	case ScreenDashboard:
		content = a.dashboard.View()
	case ScreenScores:
		content = a.scores.View()
	case ScreenAdvice:
		content = a.advice.View()
	case ScreenHelp:
		content = a.help.View()
	}

	footer := a.renderFooter()

	return lipgloss.JoinVertical(lipgloss.Left, header, nav, content, footer)
}

func (a *App) renderHeader() string {
	return headerStyle.Render("PeakLine Score")
}

func (a *App) renderNav() string {
	items := []struct {
		key    string
		label  string
		screen Screen
	}{
		{"1", "Dashboard", ScreenDashboard},
		{"2", "Scores", ScreenScores},
		{"3", "Advice", ScreenAdvice},
		{"?", "Help", ScreenHelp},
	}

	var nav string
	for i, item := range items {
		if i > 0 {
			nav += "  "
		}

		label := "[" + item.key + "] " + item.label
		if a.screen == item.screen {
			nav += navActiveStyle.Render(label)
		} else {
			nav += navInactiveStyle.Render(label)
		}
	}

	nav += "  " + navInactiveStyle.Render("[q] Quit")

	return navStyle.Render(nav)
}

func (a *App) renderFooter() string {
	if a.status != "" {
		return statusStyle.Render(a.status)
	}
	return ""
}
