package tui

import (
	"fmt"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/f3rmion/readage/internal/tui/views"
)

// AppModel is the top-level TUI model: a title bar over the analysis view.
type AppModel struct {
	analyze  views.AnalyzeModel
	provider string

	width  int
	height int
	ready  bool
}

// NewApp creates the TUI. provider names the analysis service in the title
// bar.
func NewApp(a views.Analyzer, provider string, logger *slog.Logger) AppModel {
	return AppModel{
		analyze:  views.NewAnalyzeModel(a, logger),
		provider: provider,
	}
}

// Run starts the TUI and blocks until the user quits.
func Run(a views.Analyzer, provider string, logger *slog.Logger) error {
	p := tea.NewProgram(
		NewApp(a, provider, logger),
		tea.WithAltScreen(),
	)

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running TUI: %w", err)
	}
	return nil
}

// Init initializes the model
func (m AppModel) Init() tea.Cmd {
	return m.analyze.Init()
}

// Update handles messages
func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true

		// Header takes two lines, content padding two columns per side.
		m.analyze.SetSize(m.width-4, m.height-4)
		return m, nil
	}

	var cmd tea.Cmd
	m.analyze, cmd = m.analyze.Update(msg)
	return m, cmd
}

// View renders the UI
func (m AppModel) View() string {
	if !m.ready {
		return "Loading..."
	}

	title := TitleStyle.Render("readage")
	subtitle := SubtitleStyle.Render("  Reading Age Estimator")
	if m.provider != "" {
		subtitle += lipgloss.NewStyle().Foreground(ColorMuted).Render("  ·  " + m.provider)
	}
	header := HeaderStyle.Width(m.width - 4).Render(title + subtitle)

	return ContentStyle.
		Width(m.width).
		Render(lipgloss.JoinVertical(lipgloss.Left, header, m.analyze.View()))
}
