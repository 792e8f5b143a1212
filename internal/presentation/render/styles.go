package render

import (
	"github.com/charmbracelet/lipgloss"
)

// Node emphasis styles for the quick-trace strip.
var (
	styleNeutral = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	styleCurrent = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	styleWarning = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	styleConnector = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	styleBadge = lipgloss.NewStyle().
			Foreground(lipgloss.Color("114"))

	styleSubtext = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	stylePlaceholder = lipgloss.NewStyle().
				Italic(true).
				Foreground(lipgloss.Color("214"))
)
