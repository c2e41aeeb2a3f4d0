package ui

import "github.com/charmbracelet/lipgloss"

// Note: Warp terminal fix is in internal/termfix package, imported first in main.go

var (
	ColorCyan     = lipgloss.Color("#00FFFF")
	ColorGreen    = lipgloss.Color("#00FF00")
	ColorRed      = lipgloss.Color("#FF0000")
	ColorWhite    = lipgloss.Color("#FFFFFF")
	ColorDarkGray = lipgloss.Color("8")
)

var (
	// TitleStyle renders prominent wizard lines
	TitleStyle = lipgloss.NewStyle().Foreground(ColorCyan).Bold(true)
	// LabelStyle renders field labels
	LabelStyle = lipgloss.NewStyle().Foreground(ColorWhite).Bold(true)
	// HintStyle renders key hints and secondary text
	HintStyle = lipgloss.NewStyle().Foreground(ColorDarkGray)
	// SelectedStyle highlights the focused choice
	SelectedStyle = lipgloss.NewStyle().Foreground(ColorGreen).Bold(true)
	// ErrorStyle renders validation messages
	ErrorStyle = lipgloss.NewStyle().Foreground(ColorRed)
	// ProgressStyle renders pipeline status lines
	ProgressStyle = lipgloss.NewStyle().Foreground(ColorDarkGray)
)
