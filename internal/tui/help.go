package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// HelpModel is the help screen model
type HelpModel struct{}

// NewHelpModel creates a new help model
func NewHelpModel() HelpModel {
	return HelpModel{}
}

// Init initializes the help screen
func (m HelpModel) Init() tea.Cmd {
	return nil
}

// Update handles messages
func (m HelpModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, nil
}

// View renders the help screen
func (m HelpModel) View() string {
	var sections []string

	title := cardTitleStyle.Render("Keyboard Shortcuts")
	sections = append(sections, title)

	navSection := m.renderSection("Navigation", []keyHelp{
		{"1", "Dashboard"},
		{"2", "Scores list"},
		{"3", "Advice"},
		{"?", "Help (this screen)"},
		{"q", "Quit"},
		{"esc", "Back / close help"},
	})
	sections = append(sections, navSection)

	screenSection := m.renderSection("Screens", []keyHelp{
		{"r", "Refresh current screen"},
		{"j / k", "Scroll the scores list"},
	})
	sections = append(sections, screenSection)

	cliSection := m.renderSection("Command Line", []keyHelp{
		{"-import FILE", "Import activities from a JSON export"},
		{"-gpx FILE", "Import a GPX track (repeatable)"},
		{"-recompute", "Rescore all activities and refresh the rating"},
	})
	sections = append(sections, cliSection)

	sections = append(sections, m.renderScoringHelp())

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

type keyHelp struct {
	key  string
	desc string
}

func (m HelpModel) renderSection(title string, keys []keyHelp) string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render(title))

	for _, k := range keys {
		lines = append(lines, "  "+RenderKeyHelp(k.key, k.desc))
	}

	return strings.Join(lines, "\n")
}

func (m HelpModel) renderScoringHelp() string {
	var lines []string

	lines = append(lines, "")
	lines = append(lines, lipgloss.NewStyle().Bold(true).Foreground(secondaryColor).Render("Scoring Explained"))
	lines = append(lines, "")

	terms := []struct {
		name string
		desc string
	}{
		{"Score", "Your time vs an elite reference on the same distance and terrain. 1000 = matching the reference."},
		{"Terrain", "Flat, Hills or Mountains, classified from the route's average grade."},
		{"Rating", "Average of your best six scores, recomputed on demand."},
		{"Level", "Rating band from Needs Improvement up to Elite."},
	}

	mutedStyle := lipgloss.NewStyle().Foreground(mutedColor)

	for _, term := range terms {
		lines = append(lines, "  "+helpKeyStyle.Render(term.name))
		lines = append(lines, "  "+mutedStyle.Render(term.desc))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}
