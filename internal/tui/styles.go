package tui

import "github.com/charmbracelet/lipgloss"

var (
	promptStyle  = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	answerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	declineStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
)
