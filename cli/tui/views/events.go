package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/club"
)

// Events renders the upcoming event lineup.
func Events(now time.Time) string {
	staffNames := map[string]string{}
	for _, m := range club.Staff() {
		staffNames[m.ID] = m.DisplayName
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("Upcoming Events") + "\n\n")
	for _, e := range club.Events() {
		day := now.AddDate(0, 0, e.DayOffset).Format("Mon Jan 2")
		switch e.DayOffset {
		case 0:
			day = "Tonight"
		case 1:
			day = "Tomorrow"
		}
		recurring := ""
		if e.IsRecurring {
			recurring = styles.Help.Render(" · weekly")
		}
		b.WriteString(styles.Selected.Render(e.Name) + "  " +
			styles.Subtitle.Render(e.Genre) + recurring + "\n")
		b.WriteString(fmt.Sprintf("  %s %s–%s · %s · DJ %s, host %s\n",
			day, e.StartTime, e.EndTime,
			statusLabel(e.Status),
			staffNames[e.DJID], staffNames[e.HostID]))
		b.WriteString("  " + styles.Help.Render(e.Description) + "\n\n")
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func statusLabel(status club.EventStatus) string {
	switch status {
	case club.EventConfirmed, club.EventLive:
		return styles.Selected.Render(string(status))
	case club.EventDraft:
		return styles.Help.Render(string(status))
	default:
		return styles.Subtitle.Render(string(status))
	}
}
