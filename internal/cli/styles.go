package cli

import "github.com/charmbracelet/lipgloss"

// Status line styles for command output.
var (
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B894")).Bold(true)
	failureStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#D63031")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#636E72"))
	pathStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#A29BFE"))
)

// okMark renders a green check for a detected condition.
func okMark() string {
	return successStyle.Render("✓")
}

// noMark renders a muted dash for a not-detected condition.
// Absence of a marker is informational, not an error.
func noMark() string {
	return mutedStyle.Render("-")
}

// failMark renders a red cross for a failed operation.
func failMark() string {
	return failureStyle.Render("✗")
}
