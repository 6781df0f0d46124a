package tui

import "github.com/charmbracelet/lipgloss"

var (
	// Header styles
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(lipgloss.Color("#F7CE46")).
			Padding(0, 1)

	// Selected row style
	selectedRowStyle = lipgloss.NewStyle().
				Background(lipgloss.Color("#FFA500")).
				Foreground(lipgloss.Color("#000000"))

	codeStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00ADD8"))

	descStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#C0C0C0"))

	// Footer style
	footerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#808080"))

	// Error style
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)
