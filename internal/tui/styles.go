// Package tui provides the interactive terminal UI for readage.
package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	ColorPrimary   = lipgloss.Color("#FF6B6B") // Red - titles, errors
	ColorSecondary = lipgloss.Color("#4ecdc4") // Teal - subtitles
	ColorAccent    = lipgloss.Color("#ffe66d") // Yellow - keys
	ColorMuted     = lipgloss.Color("#666666") // Gray - help text
	ColorText      = lipgloss.Color("#f1faee") // Light text
	ColorBg        = lipgloss.Color("#1a1a2e") // Dark background
	ColorBorder    = lipgloss.Color("#3d5a80") // Border color
)

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary).
			Background(ColorBg).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	HeaderStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(ColorBorder).
			MarginBottom(1)

	ContentStyle = lipgloss.NewStyle().
			Padding(1, 2)
)
