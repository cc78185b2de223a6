package ui

import "github.com/charmbracelet/lipgloss"

var (
	boxStyle   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	titleStyle = lipgloss.NewStyle().Bold(true)
	labelStyle = lipgloss.NewStyle().Faint(true)
	codeStyle  = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), true, false).Padding(0, 0)
)
