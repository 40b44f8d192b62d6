package tui

import "github.com/charmbracelet/lipgloss"

var (
	styleHeader    = lipgloss.NewStyle().Bold(true).Padding(0, 1).Foreground(lipgloss.Color("11"))
	styleCorrect   = lipgloss.NewStyle().Foreground(lipgloss.Color("10")).Bold(true)
	styleIncorrect = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	styleSubtle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	styleError     = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Padding(1, 0)
	styleText      = lipgloss.NewStyle().Padding(1, 2).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("8"))
	styleBarDone   = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	styleBarTodo   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)
