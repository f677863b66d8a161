package cli

import "github.com/charmbracelet/lipgloss"

// Colors used for command summaries.
var (
	colorSuccess = lipgloss.Color("#00B894") // Green
	colorMuted   = lipgloss.Color("#636E72") // Gray
	colorHeader  = lipgloss.Color("#6C5CE7") // Purple
)

var (
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	mutedStyle   = lipgloss.NewStyle().Foreground(colorMuted)
	headerStyle  = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)
