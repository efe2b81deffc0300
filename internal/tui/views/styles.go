package views

import "github.com/charmbracelet/lipgloss"

var (
	colorPrimary   = lipgloss.Color("#FF6B6B")
	colorSecondary = lipgloss.Color("#4ecdc4")
	colorAccent    = lipgloss.Color("#ffe66d")
	colorMuted     = lipgloss.Color("#666666")
	colorSuccess   = lipgloss.Color("#a8e6cf")
	colorText      = lipgloss.Color("#f1faee")
	colorLabel     = lipgloss.Color("#a8dadc")
	colorBgAlt     = lipgloss.Color("#2d3436")
	colorBorder    = lipgloss.Color("#3d5a80")
)

var (
	headingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	subtitleStyle = lipgloss.NewStyle().
			Foreground(colorSecondary)

	welcomeStyle = lipgloss.NewStyle().
			Foreground(colorText).
			Italic(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	inlineErrorStyle = lipgloss.NewStyle().
				Foreground(colorPrimary)

	errorBannerStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(colorPrimary).
				Foreground(colorPrimary).
				Bold(true).
				Padding(0, 2)

	loadingStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true).
			Italic(true)

	copiedStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)
)

// Suggestion chips
var (
	chipStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Foreground(colorText).
			Padding(0, 1).
			MarginRight(1)

	chipActiveStyle = chipStyle.
			BorderForeground(colorAccent).
			Foreground(colorAccent).
			Bold(true)
)

// Meaning list
var (
	meaningStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1)

	meaningActiveStyle = meaningStyle.
				BorderForeground(colorAccent).
				Background(colorBgAlt)

	meaningLabelStyle = lipgloss.NewStyle().
				Foreground(colorSecondary).
				Bold(true)

	definitionStyle = lipgloss.NewStyle().
			Foreground(colorText)
)

// Result cards
var (
	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(0, 1).
			MarginRight(1)

	cardLabelStyle = lipgloss.NewStyle().
			Foreground(colorLabel).
			Bold(true)

	cardValueStyle = lipgloss.NewStyle().
			Foreground(colorText)

	bigValueStyle = lipgloss.NewStyle().
			Foreground(colorAccent).
			Bold(true)
)
