package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("12")
	colorError  = lipgloss.Color("9")
	colorOK     = lipgloss.Color("10")
)

var (
	appStyle    = lipgloss.NewStyle().Padding(1, 2)
	titleStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	helpStyle   = lipgloss.NewStyle().Faint(true)
	errorStyle  = lipgloss.NewStyle().Bold(true).Foreground(colorError)
	okStyle     = lipgloss.NewStyle().Foreground(colorOK)
	cursorStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)

	overlayBoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(1, 2)
)
