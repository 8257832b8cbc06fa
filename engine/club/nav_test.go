package club

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/metaclub/clubos-pitch/engine/rbac"
)

func TestVisibleTabs(t *testing.T) {
	t.Run("Should show every tab to the highest role", func(t *testing.T) {
		tabs := VisibleTabs(rbac.NewStore(rbac.RoleSuperAdmin))

		assert.Len(t, tabs, len(NavItems))
	})

	t.Run("Should hide privileged tabs from a plain member", func(t *testing.T) {
		tabs := VisibleTabs(rbac.NewStore(rbac.RoleMember))

		ids := make([]TabID, 0, len(tabs))
		for _, tab := range tabs {
			ids = append(ids, tab.ID)
		}
		assert.Equal(t, []TabID{TabDashboard, TabEvents, TabSettings, TabApply}, ids)
	})

	t.Run("Should show the schedule to hosts and djs but not the staff tab", func(t *testing.T) {
		for _, role := range []rbac.Role{rbac.RoleHost, rbac.RoleDJ} {
			store := rbac.NewStore(role)

			assert.True(t, CanOpen(store, TabSchedule), "role %s", role)
			assert.False(t, CanOpen(store, TabStaff), "role %s", role)
		}
	})

	t.Run("Should reserve analytics and logs for the top of the hierarchy", func(t *testing.T) {
		manager := rbac.NewStore(rbac.RoleManager)
		gm := rbac.NewStore(rbac.RoleGeneralManager)
		owner := rbac.NewStore(rbac.RoleOwner)

		assert.False(t, CanOpen(manager, TabAnalytics))
		assert.True(t, CanOpen(gm, TabAnalytics))
		assert.False(t, CanOpen(gm, TabLogs))
		assert.True(t, CanOpen(owner, TabLogs))
	})

	t.Run("Should show nothing to a guest", func(t *testing.T) {
		store := rbac.NewGuestStore()

		assert.Empty(t, VisibleTabs(store))
		assert.False(t, CanOpen(store, TabDashboard))
	})
}

func TestCanOpen(t *testing.T) {
	t.Run("Should close unknown tabs to everyone", func(t *testing.T) {
		assert.False(t, CanOpen(rbac.NewStore(rbac.RoleSuperAdmin), TabID("vault")))
	})
}

func TestFallbackTab(t *testing.T) {
	t.Run("Should land on the dashboard when it is accessible", func(t *testing.T) {
		tab, ok := FallbackTab(rbac.NewStore(rbac.RoleMember))

		assert.True(t, ok)
		assert.Equal(t, TabDashboard, tab)
	})

	t.Run("Should report no fallback for a guest", func(t *testing.T) {
		_, ok := FallbackTab(rbac.NewGuestStore())

		assert.False(t, ok)
	})
}

func TestFixtures(t *testing.T) {
	t.Run("Should keep shift staff references inside the roster", func(t *testing.T) {
		roster := map[string]bool{}
		for _, m := range Staff() {
			roster[m.ID] = true
		}
		for _, s := range Shifts() {
			assert.True(t, roster[s.StaffID], "shift %s references unknown staff %s", s.ID, s.StaffID)
		}
		for _, e := range Events() {
			assert.True(t, roster[e.DJID], "event %s references unknown dj %s", e.ID, e.DJID)
			assert.True(t, roster[e.HostID], "event %s references unknown host %s", e.ID, e.HostID)
		}
	})

	t.Run("Should only use valid roles in the roster", func(t *testing.T) {
		for _, m := range Staff() {
			assert.True(t, m.Role.Valid(), "staff %s has invalid role %q", m.ID, m.Role)
		}
	})
}
