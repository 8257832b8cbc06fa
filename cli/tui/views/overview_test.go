package views

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/metaclub/clubos-pitch/engine/rbac"
	"github.com/metaclub/clubos-pitch/pkg/config"
)

func TestTimeAgo(t *testing.T) {
	now := time.Date(2026, 2, 11, 23, 0, 0, 0, time.UTC)

	t.Run("Should say now under a minute", func(t *testing.T) {
		assert.Equal(t, "now", timeAgo(now, now.Add(-30*time.Second)))
	})

	t.Run("Should use whole minutes under an hour", func(t *testing.T) {
		assert.Equal(t, "12m ago", timeAgo(now, now.Add(-12*time.Minute)))
	})

	t.Run("Should use whole hours past an hour", func(t *testing.T) {
		assert.Equal(t, "3h ago", timeAgo(now, now.Add(-3*time.Hour-20*time.Minute)))
	})
}

func TestViews_Render(t *testing.T) {
	now := time.Date(2026, 2, 11, 23, 0, 0, 0, time.UTC)

	t.Run("Should render the overview panels for a manager", func(t *testing.T) {
		out := Overview(rbac.NewStore(rbac.RoleManager), now, 100)

		assert.Contains(t, out, "DJ Booth")
		assert.Contains(t, out, "Host Station")
		assert.Contains(t, out, "Recent Tips")
		assert.Contains(t, out, "Tonight L$")
		assert.Contains(t, out, "Tip Flow Tonight")
		assert.Contains(t, out, "Staff Feed")
	})

	t.Run("Should render the week grid with relative day labels", func(t *testing.T) {
		out := Schedule(rbac.NewStore(rbac.RoleManager), now)

		assert.Contains(t, out, "Today")
		assert.Contains(t, out, "Tomorrow")
		assert.Contains(t, out, "Smart Roster Proposals")
	})

	t.Run("Should hide the financial panels below manager", func(t *testing.T) {
		out := Overview(rbac.NewStore(rbac.RoleHost), now, 100)

		assert.NotContains(t, out, "Tonight L$")
		assert.NotContains(t, out, "Tip Flow Tonight")
	})

	t.Run("Should slice the tip feed to the dj's own jar", func(t *testing.T) {
		out := Overview(rbac.NewStore(rbac.RoleDJ), now, 100)

		assert.Contains(t, out, "My Tips")
		assert.Contains(t, out, "DJ Apex")
		assert.NotContains(t, out, "NightOwl88", "host jar tips must not leak")
	})

	t.Run("Should show lower roles only the club jar", func(t *testing.T) {
		out := Overview(rbac.NewStore(rbac.RoleVIPMember), now, 100)

		assert.Contains(t, out, "Club Jar")
		assert.NotContains(t, out, "CoolCat42", "dj jar tips must not leak")
	})

	t.Run("Should mark a host's own assignments in the grid", func(t *testing.T) {
		out := Schedule(rbac.NewStore(rbac.RoleHost), now)

		assert.Contains(t, out, "← yours")
		assert.NotContains(t, out, "Smart Roster Proposals")
	})

	t.Run("Should not mark assignments for managers", func(t *testing.T) {
		out := Schedule(rbac.NewStore(rbac.RoleManager), now)

		assert.NotContains(t, out, "← yours")
	})

	t.Run("Should mark the signed-in role on the settings ladder", func(t *testing.T) {
		out := Settings(config.Default(), rbac.NewStore(rbac.RoleOwner))

		assert.Contains(t, out, "← you")
		assert.Contains(t, out, "Role Ladder")
	})
}
