package lipgloss

import "github.com/charmbracelet/lipgloss"

// Shared styles for terminal output across all commands.
var (
	Red     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5555"))
	Green   = lipgloss.NewStyle().Foreground(lipgloss.Color("#50FA7B"))
	Yellow  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F1FA8C"))
	BlueSky = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BE9FD"))
	Gray    = lipgloss.NewStyle().Foreground(lipgloss.Color("#6272A4"))

	Info = lipgloss.NewStyle().Foreground(lipgloss.Color("#BD93F9")).Bold(true)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6272A4")).
			Padding(0, 1)
)
