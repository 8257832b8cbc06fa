package components

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/common-nighthawk/go-figure"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
)

// RenderASCIIHeader renders the club name as colored ASCII art.
func RenderASCIIHeader(name string, width int) string {
	logo := figure.NewFigure(name, "standard", true)
	headerStyle := lipgloss.NewStyle().
		Foreground(styles.NeonCyan).
		Bold(true).
		Align(lipgloss.Left).
		Width(width)
	return headerStyle.Render(logo.String())
}

// RenderTagline renders the brand tagline under the ASCII header.
func RenderTagline(width int) string {
	return lipgloss.NewStyle().
		Foreground(styles.Slate).
		Width(width).
		Render("Command Center — run the whole club from one screen")
}
