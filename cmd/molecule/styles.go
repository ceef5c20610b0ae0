package main

import "github.com/charmbracelet/lipgloss"

// Colors
var (
	colorAccent = lipgloss.Color("#10B981")
	colorMuted  = lipgloss.Color("#6B7280")
	colorError  = lipgloss.Color("#EF4444")
)

// Styles
var (
	promptStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorAccent)

	headStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	symStyle = lipgloss.NewStyle().
			Bold(true)

	errStyle = lipgloss.NewStyle().
			Foreground(colorError)
)
