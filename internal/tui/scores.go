package tui

import (
	"fmt"

	"peakline/internal/service"
	"peakline/internal/store"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ScoresModel is the scored activities list screen model
type ScoresModel struct {
	queryService *service.QueryService
	units        Units
	scores       []store.ScoredActivity
	viewport     viewport.Model
	loading      bool
	err          error
	width        int
	height       int
	ready        bool
}

// NewScoresModel creates a new scores model
func NewScoresModel(qs *service.QueryService, units Units, width, height int) ScoresModel {
	m := ScoresModel{
		queryService: qs,
		units:        units,
		loading:      true,
		width:        width,
		height:       height,
	}

	if width > 0 && height > 0 {
		m.viewport = viewport.New(width, height-6)
		m.ready = true
	}

	return m
}

// Init initializes the scores screen
func (m ScoresModel) Init() tea.Cmd {
	return m.loadScores
}

type scoresLoadedMsg struct {
	scores []store.ScoredActivity
	err    error
}

func (m ScoresModel) loadScores() tea.Msg {
	scores, err := m.queryService.ListScores()
	return scoresLoadedMsg{scores: scores, err: err}
}

// Update handles messages
func (m ScoresModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case scoresLoadedMsg:
		m.loading = false
		m.err = msg.err
		m.scores = msg.scores
		if m.ready {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if !m.ready {
			m.viewport = viewport.New(msg.Width, msg.Height-6)
			m.ready = true
		} else {
			m.viewport.Width = msg.Width
			m.viewport.Height = msg.Height - 6
		}
		if m.scores != nil {
			m.viewport.SetContent(m.renderContent())
		}

	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadScores
		}
	}

	// Handle viewport scrolling
	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// View renders the scores screen
func (m ScoresModel) View() string {
	if m.loading {
		return "\n  Loading scores..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if !m.ready {
		return "\n  Initializing..."
	}

	footer := statusStyle.Render("  j/k or arrows: scroll  r: refresh")

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), footer)
}

func (m ScoresModel) renderContent() string {
	if len(m.scores) == 0 {
		return "\n  No scored activities yet. Import runs and recompute first."
	}

	var sections []string

	sections = append(sections, "")
	sections = append(sections, cardTitleStyle.Render(fmt.Sprintf("Scored Activities (%d)", len(m.scores))))

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-24s  %9s  %9s  %-9s  %6s  %s",
		"Date", "Name", "Distance", "Pace", "Terrain", "Score", ""))
	sections = append(sections, header)

	for _, sa := range m.scores {
		a := sa.Activity

		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-24s  %9s  %9s  %-9s  %6.0f  %s",
			a.StartDate.Format("Jan 02"),
			truncateName(a.Name, 24),
			m.units.FormatDistance(a.Distance),
			m.units.FormatPace(float64(a.MovingTime), a.Distance),
			sa.Score.Terrain,
			sa.Score.Score,
			RenderScoreBar(sa.Score.Score, 1000, 10),
		))
		sections = append(sections, row)
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
