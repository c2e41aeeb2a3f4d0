package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Banner is the ASCII art header shown by the interactive setup wizard
var Banner = []string{
	" ____ _____  _    _   _ ____  _   _ ____  ",
	"/ ___|_   _|/ \\  | \\ | |  _ \\| | | |  _ \\ ",
	"\\___ \\ | | / _ \\ |  \\| | | | | | | | |_) |",
	" ___) || |/ ___ \\| |\\  | |_| | |_| |  __/ ",
	"|____/ |_/_/   \\_\\_| \\_|____/ \\___/|_|    ",
}

// RenderBanner returns the styled banner as a single string
func RenderBanner() string {
	bannerStyle := lipgloss.NewStyle().Foreground(ColorCyan)

	var lines []string
	for _, line := range Banner {
		lines = append(lines, bannerStyle.Render(line))
	}
	return strings.Join(lines, "\n")
}
