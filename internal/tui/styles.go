package tui

import "charm.land/lipgloss/v2"

// Color palette.
var (
	colPrimary = lipgloss.Color("#8B5CF6") // purple
	colSuccess = lipgloss.Color("#22C55E") // green
	colError   = lipgloss.Color("#F43F5E") // rose
	colText    = lipgloss.Color("#F8FAFC") // white
	colDim     = lipgloss.Color("#94A3B8") // slate
	colBorder  = lipgloss.Color("#334155") // slate
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colPrimary)

	questionStyle = lipgloss.NewStyle().
			Foreground(colText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(1, 2)

	correctStyle = lipgloss.NewStyle().
			Foreground(colSuccess).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(colError).
			Bold(true)

	feedbackStyle = lipgloss.NewStyle().
			Foreground(colText).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colBorder).
			Padding(0, 2)

	hintStyle = lipgloss.NewStyle().
			Foreground(colDim).
			Italic(true)

	dimStyle = lipgloss.NewStyle().
			Foreground(colDim)
)
