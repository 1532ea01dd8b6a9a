package tui

import (
	"fmt"

	"peakline/internal/score"
	"peakline/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/guptarohit/asciigraph"
)

// DashboardModel is the dashboard screen model
type DashboardModel struct {
	queryService *service.QueryService
	units        Units
	data         *service.Dashboard
	loading      bool
	err          error
}

// NewDashboardModel creates a new dashboard model
func NewDashboardModel(qs *service.QueryService, units Units) DashboardModel {
	return DashboardModel{
		queryService: qs,
		units:        units,
		loading:      true,
	}
}

// Init initializes the dashboard
func (m DashboardModel) Init() tea.Cmd {
	return m.loadData
}

func (m DashboardModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboard()
	if err != nil {
		return dashboardDataMsg{err: err}
	}
	return dashboardDataMsg{data: data}
}

type dashboardDataMsg struct {
	data *service.Dashboard
	err  error
}

// Update handles messages
func (m DashboardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case dashboardDataMsg:
		m.loading = false
		m.err = msg.err
		m.data = msg.data
	case tea.KeyMsg:
		switch msg.String() {
		case "r":
			m.loading = true
			return m, m.loadData
		}
	}
	return m, nil
}

// View renders the dashboard
func (m DashboardModel) View() string {
	if m.loading {
		return "\n  Loading dashboard..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.Rating == nil {
		return m.renderEmptyState()
	}

	var sections []string

	ratingCard := m.renderRatingCard()
	trendCard := m.renderTrendCard()
	topRow := lipgloss.JoinHorizontal(lipgloss.Top, ratingCard, "  ", trendCard)
	sections = append(sections, topRow)

	if len(m.data.History) > 2 {
		sections = append(sections, m.renderChart())
	}

	sections = append(sections, m.renderRecentScores())

	help := statusStyle.Render("Press 'r' to refresh, '2' for all scores, '3' for advice")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m DashboardModel) renderEmptyState() string {
	title := cardTitleStyle.Render("No Rating Yet")

	var count string
	if m.data != nil && m.data.ActivityCount > 0 {
		count = fmt.Sprintf("%d activities are stored but not scored yet.\nRun 'peakline -recompute' to compute your rating.", m.data.ActivityCount)
	} else {
		count = "No activities stored.\nImport some with 'peakline -import export.json' or 'peakline -gpx run.gpx'."
	}

	body := lipgloss.NewStyle().Foreground(mutedColor).Render(count)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, body))
}

func (m DashboardModel) renderRatingCard() string {
	title := cardTitleStyle.Render("Overall Rating")
	r := m.data.Rating

	level := score.ParseLevel(r.Level)
	lines := []string{
		RenderMetric("Rating", fmt.Sprintf("%.0f / 1000", r.Rating)),
		RenderMetric("Level", renderLevel(r.Level, level)),
		RenderMetric("Based on", fmt.Sprintf("%d activities", r.SampleCount)),
		"",
		RenderScoreBar(r.Rating, 1000, 28),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(38).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderTrendCard() string {
	title := cardTitleStyle.Render("Trend")

	muted := lipgloss.NewStyle().Foreground(mutedColor).Width(32)
	lines := []string{
		muted.Render(m.data.Trend),
		"",
		RenderMetric("Stored runs", fmt.Sprintf("%d", m.data.ActivityCount)),
	}

	content := lipgloss.JoinVertical(lipgloss.Left, lines...)
	return cardStyle.Width(40).Render(lipgloss.JoinVertical(lipgloss.Left, title, content))
}

func (m DashboardModel) renderChart() string {
	title := cardTitleStyle.Render("Rating History")

	graph := asciigraph.Plot(m.data.History,
		asciigraph.Height(8),
		asciigraph.Width(60),
		asciigraph.Precision(0),
	)

	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, graph))
}

func (m DashboardModel) renderRecentScores() string {
	title := cardTitleStyle.Render("Recent Scores")

	if len(m.data.RecentScores) == 0 {
		return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, "No scored activities yet"))
	}

	header := tableHeaderStyle.Render(fmt.Sprintf("%-10s  %-20s  %9s  %-9s  %6s",
		"Date", "Name", "Distance", "Terrain", "Score"))

	rows := []string{header}
	for i, sa := range m.data.RecentScores {
		if i >= 5 {
			break
		}

		row := tableRowStyle.Render(fmt.Sprintf("%-10s  %-20s  %9s  %-9s  %6.0f",
			sa.Activity.StartDate.Format("Jan 02"),
			truncateName(sa.Activity.Name, 20),
			m.units.FormatDistance(sa.Activity.Distance),
			sa.Score.Terrain,
			sa.Score.Score,
		))
		rows = append(rows, row)
	}

	table := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return cardStyle.Render(lipgloss.JoinVertical(lipgloss.Left, title, table))
}

// renderLevel colors the level name by tier
func renderLevel(name string, level score.Level) string {
	switch {
	case level >= score.LevelExcellent:
		return levelHighStyle.Render(name)
	case level >= score.LevelGood:
		return levelMidStyle.Render(name)
	default:
		return levelLowStyle.Render(name)
	}
}

func truncateName(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max-3] + "..."
}
