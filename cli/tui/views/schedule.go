package views

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/club"
	"github.com/metaclub/clubos-pitch/engine/rbac"
)

var responseMarkers = map[club.ShiftResponse]string{
	club.ResponseAccepted:            "✓",
	club.ResponsePending:             "?",
	club.ResponseDeclined:            "✗",
	club.ResponseRescheduleRequested: "↻",
}

// Schedule renders the week grid plus, for managers and up, the smart
// scheduling panel. DJs and Hosts get their own assignments marked in
// the grid. The shift editor (the wheel picker) is rendered by the
// caller underneath when a shift is being edited.
func Schedule(store *rbac.Store, now time.Time) string {
	panels := []string{weekGrid(store, now)}
	if store.Can(rbac.RoleManager) {
		panels = append(panels, pairingPanel(now))
	}
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func weekGrid(store *rbac.Store, now time.Time) string {
	role, _ := store.CurrentRole()
	markOwn := !store.Can(rbac.RoleManager) &&
		(role == rbac.RoleDJ || role == rbac.RoleHost)

	byDay := map[int][]club.Shift{}
	maxDay := 0
	for _, s := range club.Shifts() {
		byDay[s.DayOffset] = append(byDay[s.DayOffset], s)
		if s.DayOffset > maxDay {
			maxDay = s.DayOffset
		}
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render("This Week") + "\n")
	for day := 0; day <= maxDay; day++ {
		label := now.AddDate(0, 0, day).Format("Mon Jan 2")
		switch day {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		b.WriteString(styles.Subtitle.Render(label) + "\n")
		for _, s := range byDay[day] {
			marker := responseMarkers[s.Response]
			line := fmt.Sprintf("  %s %s %s–%s %s",
				styles.RoleBadge(s.Role), s.StaffName, s.StartTime, s.EndTime,
				styles.Help.Render(marker+" "+string(s.Response)))
			if s.Status == club.ShiftActive {
				line += " " + styles.Selected.Render("on now")
			}
			if markOwn && s.Role == role {
				line += " " + styles.Selected.Render("← yours")
			}
			if s.Notes != "" {
				line += " " + styles.Help.Render("· "+s.Notes)
			}
			b.WriteString(line + "\n")
		}
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// pairingPanel shows the auto-roster proposals built from availability.
func pairingPanel(now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Smart Roster Proposals") + "\n")
	for _, p := range club.Pairings() {
		day := now.AddDate(0, 0, p.DayOffset).Format("Mon Jan 2")
		b.WriteString(fmt.Sprintf("  %s %s — %s + %s %s\n",
			styles.Selected.Render("»"), p.EventName, p.DJName, p.HostName,
			styles.Help.Render(day)))
	}
	b.WriteString(styles.Subtitle.Render(fmt.Sprintf("built from %d availability windows", len(club.Availabilities()))))
	return styles.Panel.BorderForeground(styles.NeonPurple).Render(strings.TrimRight(b.String(), "\n"))
}
