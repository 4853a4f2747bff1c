package ui

import "github.com/charmbracelet/lipgloss"

var (
	primaryColor   = lipgloss.Color("#5FAFAF")
	secondaryColor = lipgloss.Color("#666666")
	successColor   = lipgloss.Color("#87AF87")
	errorColor     = lipgloss.Color("#AF5F5F")
	progressColor  = lipgloss.Color("#D7AF5F")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			MarginBottom(1)

	subtleStyle = lipgloss.NewStyle().
			Foreground(secondaryColor)

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	messageStyle = lipgloss.NewStyle().
			Foreground(successColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor)

	inProgressStyle = lipgloss.NewStyle().
			Foreground(progressColor)

	doneStyle = lipgloss.NewStyle().
			Foreground(successColor)
)
