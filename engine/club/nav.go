package club

import "github.com/metaclub/clubos-pitch/engine/rbac"

// TabID identifies a dashboard tab.
type TabID string

const (
	TabDashboard TabID = "dashboard"
	TabSchedule  TabID = "schedule"
	TabStaff     TabID = "staff"
	TabAnalytics TabID = "analytics"
	TabEvents    TabID = "events"
	TabSettings  TabID = "settings"
	TabLogs      TabID = "logs"
	TabApply     TabID = "apply"
)

// NavItem is one dashboard tab with its access floor.
type NavItem struct {
	ID      TabID
	Label   string
	MinRole rbac.Role
}

// NavItems is the full tab order. MinRole is the lowest role that may
// open the tab; guests see none of them.
var NavItems = []NavItem{
	{ID: TabDashboard, Label: "Dashboard", MinRole: rbac.RoleMember},
	{ID: TabSchedule, Label: "Schedule", MinRole: rbac.RoleHost},
	{ID: TabStaff, Label: "Staff", MinRole: rbac.RoleManager},
	{ID: TabAnalytics, Label: "Analytics", MinRole: rbac.RoleGeneralManager},
	{ID: TabEvents, Label: "Events", MinRole: rbac.RoleMember},
	{ID: TabSettings, Label: "Settings", MinRole: rbac.RoleMember},
	{ID: TabLogs, Label: "Logs", MinRole: rbac.RoleOwner},
	{ID: TabApply, Label: "Apply", MinRole: rbac.RoleMember},
}

// VisibleTabs returns the tabs the store's current role may open, in
// nav order. A guest store gets an empty slice.
func VisibleTabs(store *rbac.Store) []NavItem {
	items := make([]NavItem, 0, len(NavItems))
	for _, item := range NavItems {
		if store.Can(item.MinRole) {
			items = append(items, item)
		}
	}
	return items
}

// CanOpen reports whether the store's current role may open the tab.
// Unknown tab IDs are closed to everyone.
func CanOpen(store *rbac.Store, id TabID) bool {
	for _, item := range NavItems {
		if item.ID == id {
			return store.Can(item.MinRole)
		}
	}
	return false
}

// FallbackTab returns the tab to land on when access to the current tab
// is lost: the dashboard if it is open to the role, else the first
// visible tab, else empty for guests.
func FallbackTab(store *rbac.Store) (TabID, bool) {
	if CanOpen(store, TabDashboard) {
		return TabDashboard, true
	}
	visible := VisibleTabs(store)
	if len(visible) == 0 {
		return "", false
	}
	return visible[0].ID, true
}
