// Package views renders the read-only dashboard tabs from the demo
// fixtures. Each renderer is a pure function of its data and the role
// store so the models stay thin.
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

// Overview renders the main dashboard tab: quick stats, the live booth
// and host station, the tip feed and the staff feed. Financial panels
// (revenue card, tip flow graph) require manager or above; DJs and
// Hosts get the tip feed sliced down to their own jar.
func Overview(store *rbac.Store, now time.Time, width int) string {
	stats := club.LiveStats()
	booth := club.Booth()
	station := club.Station()

	cards := []string{
		statCard("Guests", fmt.Sprintf("%d/%d", stats.CurrentGuests, stats.MaxCapacity), styles.NeonCyan),
		statCard("Staff Online", fmt.Sprintf("%d/%d", stats.StaffOnline, stats.TotalStaff), styles.NeonGreen),
	}
	if store.Can(rbac.RoleManager) {
		cards = append(cards, statCard("Tonight L$", fmt.Sprintf("%d", stats.TonightRevenue), styles.NeonAmber))
	}
	cards = append(cards, statCard("Vibe", fmt.Sprintf("%.1f", stats.AverageVibe), styles.NeonPink))
	statCards := lipgloss.JoinHorizontal(lipgloss.Top, cards...)

	boothState := styles.Help.Render("off air")
	if booth.IsLive {
		boothState = styles.Alert.Render("● LIVE")
	}
	boothPanel := styles.Panel.BorderForeground(styles.NeonPurple).Render(
		styles.Title.Render("DJ Booth") + " " + boothState + "\n" +
			booth.DJName + " — " + booth.Genre + "\n" +
			styles.Subtitle.Render(booth.CurrentTrack) + "\n" +
			styles.Price.Render(fmt.Sprintf("L$%d this session", booth.TipsThisSession)))

	stationPanel := styles.Panel.BorderForeground(styles.NeonPink).Render(
		styles.Title.Render("Host Station") + "\n" +
			station.HostName + "\n" +
			styles.Subtitle.Render(fmt.Sprintf("%d guests greeted", station.GuestsGreeted)))

	panels := []string{
		statCards,
		lipgloss.JoinHorizontal(lipgloss.Top, boothPanel, " ", stationPanel),
		tipFeed(store, now),
	}
	if store.Can(rbac.RoleManager) {
		panels = append(panels, vibeGraph(width))
	}
	panels = append(panels, staffFeed(now))
	return lipgloss.JoinVertical(lipgloss.Left, panels...)
}

func statCard(label, value string, color lipgloss.Color) string {
	return styles.Panel.BorderForeground(color).Width(16).Render(
		styles.Subtitle.Render(label) + "\n" +
			lipgloss.NewStyle().Foreground(color).Bold(true).Render(value))
}

// tipFeed shows every tip to managers and up. DJs and Hosts see only
// their own jar; lower roles see the public club jar.
func tipFeed(store *rbac.Store, now time.Time) string {
	tips := club.RecentTips(now)
	title := "Recent Tips"
	if !store.Can(rbac.RoleManager) {
		role, _ := store.CurrentRole()
		switch role {
		case rbac.RoleDJ:
			tips, title = tipsInCategory(tips, club.TipDJ), "My Tips"
		case rbac.RoleHost:
			tips, title = tipsInCategory(tips, club.TipHost), "My Tips"
		default:
			tips, title = tipsInCategory(tips, club.TipClub), "Club Jar"
		}
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render(title) + "\n")
	for _, tip := range tips {
		b.WriteString(fmt.Sprintf("%s %s → %s  %s\n",
			styles.Price.Render(fmt.Sprintf("L$%-5d", tip.Amount)),
			tip.TipperName,
			tip.RecipientName,
			styles.Help.Render(fmt.Sprintf("%s · %s", tip.Category, timeAgo(now, tip.Timestamp)))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func tipsInCategory(tips []club.Tip, category club.TipCategory) []club.Tip {
	var out []club.Tip
	for _, tip := range tips {
		if tip.Category == category {
			out = append(out, tip)
		}
	}
	return out
}

// vibeGraph renders the tip accumulation as a horizontal bar per sample.
func vibeGraph(width int) string {
	history := club.TipHistory()
	maxTotal := 0
	for _, s := range history {
		if t := s.Club + s.DJ + s.Host; t > maxTotal {
			maxTotal = t
		}
	}
	barWidth := width - 24
	if barWidth < 10 {
		barWidth = 10
	}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Tip Flow Tonight") + "\n")
	for _, s := range history {
		total := s.Club + s.DJ + s.Host
		bar := lipgloss.NewStyle().Foreground(styles.NeonCyan).
			Render(strings.Repeat("▰", scaledBar(total, barWidth, maxTotal)))
		b.WriteString(fmt.Sprintf("%s %s %s\n",
			styles.Help.Render(s.Time), bar,
			styles.Subtitle.Render(fmt.Sprintf("L$%d", total))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

func staffFeed(now time.Time) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Staff Feed") + "\n")
	for _, entry := range club.StaffFeed(now) {
		marker := styles.Help.Render("·")
		switch entry.Kind {
		case club.FeedAlert:
			marker = styles.Alert.Render("!")
		case club.FeedSystem:
			marker = styles.Selected.Render("»")
		}
		b.WriteString(fmt.Sprintf("%s %s  %s\n", marker, entry.Message,
			styles.Help.Render(timeAgo(now, entry.Timestamp))))
	}
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}

// timeAgo renders a feed timestamp the way the dashboard does: "now"
// under a minute, then whole minutes, then whole hours.
func timeAgo(now, t time.Time) string {
	age := now.Sub(t)
	switch {
	case age < time.Minute:
		return "now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	default:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	}
}
