package tui

import (
	"fmt"

	"peakline/internal/service"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// AdviceModel is the advice screen model
type AdviceModel struct {
	queryService *service.QueryService
	data         *service.Dashboard
	loading      bool
	err          error
}

// NewAdviceModel creates a new advice model
func NewAdviceModel(qs *service.QueryService) AdviceModel {
	return AdviceModel{
		queryService: qs,
		loading:      true,
	}
}

// Init initializes the advice screen
func (m AdviceModel) Init() tea.Cmd {
	return m.loadData
}

type adviceDataMsg struct {
	data *service.Dashboard
	err  error
}

func (m AdviceModel) loadData() tea.Msg {
	data, err := m.queryService.GetDashboard()
	return adviceDataMsg{data: data, err: err}
}

// Update handles messages
func (m AdviceModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case adviceDataMsg:
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

// View renders the advice screen
func (m AdviceModel) View() string {
	if m.loading {
		return "\n  Loading advice..."
	}

	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("\n  Error: %v", m.err))
	}

	if m.data == nil || m.data.Rating == nil {
		return "\n  No rating yet. Import runs and recompute to get advice."
	}

	var sections []string

	title := cardTitleStyle.Render(fmt.Sprintf("Advice for level: %s", m.data.Rating.Level))
	sections = append(sections, title)

	if len(m.data.Tips) == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(mutedColor).Render("  No tips available."))
	} else {
		focus := m.data.Tips[0].Dimension.String()
		if focus != "General" {
			label := lipgloss.NewStyle().Foreground(warningColor).Render(fmt.Sprintf("Focus area: %s (your weakest terrain)", focus))
			sections = append(sections, label)
		}
		sections = append(sections, "")

		muted := lipgloss.NewStyle().Foreground(textColor).Width(70)
		for _, tip := range m.data.Tips {
			sections = append(sections, "  "+helpKeyStyle.Render("•")+" "+muted.Render(tip.Message))
		}
	}

	sections = append(sections, "")
	trend := lipgloss.NewStyle().Foreground(mutedColor).Render(m.data.Trend)
	sections = append(sections, trend)

	help := statusStyle.Render("Press 'r' to refresh")
	sections = append(sections, help)

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}
