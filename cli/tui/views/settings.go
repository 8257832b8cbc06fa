package views

import (
	"fmt"
	"strings"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/rbac"
	"github.com/metaclub/clubos-pitch/pkg/config"
	"github.com/metaclub/clubos-pitch/pkg/version"
)

// Settings renders the read-only settings tab: effective configuration,
// the role ladder and build info.
func Settings(cfg *config.Config, store *rbac.Store) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Club Settings") + "\n\n")
	b.WriteString(styles.Subtitle.Render("Club") + "  " + cfg.Demo.ClubName + "\n")
	b.WriteString(styles.Subtitle.Render("Offer") + fmt.Sprintf("  %s window, L$%d → L$%d\n",
		cfg.Offer.Duration, cfg.Offer.FullPrice, cfg.Offer.LaunchPrice))
	b.WriteString(styles.Subtitle.Render("Carousel") + fmt.Sprintf("  %s interval\n", cfg.Carousel.Interval))
	b.WriteString(styles.Subtitle.Render("Wheel") + fmt.Sprintf("  %s debounce, %s snap\n",
		cfg.Wheel.SettleDebounce, cfg.Wheel.SnapDuration))

	b.WriteString("\n" + styles.Title.Render("Role Ladder") + "\n")
	current, signedIn := store.CurrentRole()
	for i := len(rbac.AllRoles) - 1; i >= 0; i-- {
		role := rbac.AllRoles[i]
		line := fmt.Sprintf("%s %s", styles.RoleBadge(role), role.Label())
		if signedIn && role == current {
			line += " " + styles.Selected.Render("← you")
		}
		b.WriteString(line + "\n")
	}

	info := version.Get()
	b.WriteString("\n" + styles.Help.Render(fmt.Sprintf("clubos-pitch %s (%s) built %s",
		info.Version, info.CommitHash, info.BuildDate)))
	return styles.Panel.Render(strings.TrimRight(b.String(), "\n"))
}
