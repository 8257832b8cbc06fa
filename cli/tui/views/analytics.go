package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/club"
)

// Analytics renders revenue trend, expense trend, peak hours and event
// ROI. This tab is reserved for general managers and up.
func Analytics(width int) string {
	return lipgloss.JoinVertical(lipgloss.Left,
		revenueTrend(width),
		peakHours(width),
		eventROI(),
		expenseSummary(),
	)
}

func revenueTrend(width int) string {
	trend := club.RevenueTrend()
	maxRevenue := 0
	for _, w := range trend {
		if w.Revenue > maxRevenue {
			maxRevenue = w.Revenue
		}
	}
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Revenue Trend") + "\n")
	for _, w := range trend {
		bar := lipgloss.NewStyle().Foreground(styles.NeonAmber).
			Render(strings.Repeat("▰", scaledBar(w.Revenue, barWidth, maxRevenue)))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.Help.Render(w.Week), bar,
			styles.Subtitle.Render(fmt.Sprintf("L$%d (−%d exp)", w.Revenue, w.Expenses))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func peakHours(width int) string {
	hours := club.PeakHours()
	maxGuests := 0
	for _, h := range hours {
		if h.Guests > maxGuests {
			maxGuests = h.Guests
		}
	}
	barWidth := width - 30
	if barWidth < 10 {
		barWidth = 10
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Peak Hours") + "\n")
	for _, h := range hours {
		bar := lipgloss.NewStyle().Foreground(styles.NeonCyan).
			Render(strings.Repeat("▰", scaledBar(h.Guests, barWidth, maxGuests)))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.Help.Render(h.Hour), bar,
			styles.Subtitle.Render(fmt.Sprintf("%d guests · L$%d", h.Guests, h.Tips))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// scaledBar sizes a bar segment against the series maximum. An all-zero
// series renders empty bars instead of dividing by zero.
func scaledBar(value, width, max int) int {
	if max <= 0 {
		return 0
	}
	return value * width / max
}

func eventROI() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Event ROI") + "\n")
	for _, e := range club.EventROIs() {
		b.WriteString(fmt.Sprintf("%-16s L$%-6d cost L$%-5d %d guests  %s\n",
			e.Event, e.Revenue, e.Cost, e.Attendees,
			styles.Price.Render(fmt.Sprintf("%.1fx", e.ROI))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func expenseSummary() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Expense Trend") + "\n")
	for _, w := range club.ExpenseTrend() {
		total := w.Sploder + w.Fishbowl + w.Assets + w.Custom
		b.WriteString(fmt.Sprintf("%s  sploder %-5d fishbowl %-5d assets %-5d  %s\n",
			styles.Help.Render(w.Week), w.Sploder, w.Fishbowl, w.Assets,
			styles.Subtitle.Render(fmt.Sprintf("L$%d", total))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
