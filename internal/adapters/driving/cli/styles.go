package cli

import "github.com/charmbracelet/lipgloss"

// Output styles, shared by the path and play commands.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7C3AED")) // Purple

	pathStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#06B6D4")) // Cyan

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#A6E3A1")) // Green

	warnStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F9E2AF")) // Yellow

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6C7086")) // Medium gray
)
