package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/club"
)

// Logs renders the audit log tab, owners only.
func Logs(now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Audit Log") + "\n")
	for _, entry := range club.AuditLog(now) {
		level := styles.Help.Render(entry.Level)
		if entry.Level == "warn" {
			level = styles.Alert.Render(entry.Level)
		}
		b.WriteString(fmt.Sprintf("%s %s %-6s %s\n",
			styles.Help.Render(entry.Timestamp.Format("15:04")),
			level,
			styles.Subtitle.Render(entry.Actor),
			entry.Message))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// Expenses renders the expense records shown alongside the audit log.
func Expenses() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Expenses") + "\n")
	total := 0
	for _, e := range club.Expenses() {
		total += e.Amount
		note := ""
		if e.Notes != "" {
			note = styles.Help.Render(" · " + e.Notes)
		}
		b.WriteString(fmt.Sprintf("%s %s %s%s\n",
			styles.Help.Render(e.Date),
			styles.Price.Render(fmt.Sprintf("L$%-5d", e.Amount)),
			e.Name, note))
	}
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("L$%d this month", total)))
	return styles.Panel.Render(b.String())
}
