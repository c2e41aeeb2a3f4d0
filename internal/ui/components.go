package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// SectionHeader creates a styled section header with a title and color
// Example: "─── TITLE ───────────"
func SectionHeader(title string, color lipgloss.Color) string {
	dashes := strings.Repeat("─", max(25-len(title), 0))
	headerStyle := lipgloss.NewStyle().Foreground(color)
	titleStyle := lipgloss.NewStyle().Foreground(color).Bold(true)

	return fmt.Sprintf("%s%s%s",
		headerStyle.Render("  ─── "),
		titleStyle.Render(title),
		headerStyle.Render(" "+dashes),
	)
}

// Choice renders one option in a selection list, marking the focused one
func Choice(label string, selected bool) string {
	if selected {
		return SelectedStyle.Render("> " + label)
	}
	return "  " + label
}

// Field renders a labeled input line with a cursor on the focused field
func Field(label, value string, focused bool) string {
	line := LabelStyle.Render(label+": ") + value
	if focused {
		line += SelectedStyle.Render("█")
	}
	return line
}
