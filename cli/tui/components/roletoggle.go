package components

import (
	"strings"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/rbac"
)

// RoleToggle lets the viewer try the dashboard as any role. It writes
// straight to the shared role store; the dashboard reacts on its next
// render pass.
type RoleToggle struct {
	store *rbac.Store
}

// NewRoleToggle creates a new role toggle bound to the store.
func NewRoleToggle(store *rbac.Store) RoleToggle {
	return RoleToggle{store: store}
}

// Next switches to the next higher role, wrapping to the lowest. From
// guest it enters at the lowest role.
func (t RoleToggle) Next() {
	role, ok := t.store.CurrentRole()
	if !ok {
		t.store.SetRole(rbac.AllRoles[0])
		return
	}
	for i, r := range rbac.AllRoles {
		if r == role {
			t.store.SetRole(rbac.AllRoles[(i+1)%len(rbac.AllRoles)])
			return
		}
	}
}

// Prev switches to the next lower role, wrapping to the highest.
func (t RoleToggle) Prev() {
	role, ok := t.store.CurrentRole()
	if !ok {
		t.store.SetRole(rbac.AllRoles[len(rbac.AllRoles)-1])
		return
	}
	for i, r := range rbac.AllRoles {
		if r == role {
			t.store.SetRole(rbac.AllRoles[(i-1+len(rbac.AllRoles))%len(rbac.AllRoles)])
			return
		}
	}
}

// SignOut clears the role, dropping the viewer to guest.
func (t RoleToggle) SignOut() {
	t.store.ClearRole()
}

// View renders the role ladder with the active role highlighted.
func (t RoleToggle) View() string {
	current, ok := t.store.CurrentRole()
	parts := make([]string, 0, len(rbac.AllRoles))
	for _, r := range rbac.AllRoles {
		label := r.ShortLabel()
		if ok && r == current {
			parts = append(parts, styles.Selected.Render("["+label+"]"))
		} else {
			parts = append(parts, styles.Help.Render(label))
		}
	}
	line := strings.Join(parts, " ")
	if !ok {
		line += "  " + styles.Alert.Render("signed out")
	}
	return line
}
