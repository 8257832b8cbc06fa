// Package styles centralizes the neon club palette and the shared
// lipgloss styles used across the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/engine/rbac"
)

// Neon palette.
const (
	NeonGreen  = lipgloss.Color("#4ade80")
	NeonPurple = lipgloss.Color("#c084fc")
	NeonPink   = lipgloss.Color("#ff6b9d")
	NeonCyan   = lipgloss.Color("#00f0ff")
	NeonAmber  = lipgloss.Color("#fbbf24")
	NeonRed    = lipgloss.Color("#f87171")
	Slate      = lipgloss.Color("#94a3b8")
	TextDim    = lipgloss.Color("#64748b")
	TextBright = lipgloss.Color("#f8fafc")
)

var (
	// Title is the section heading style.
	Title = lipgloss.NewStyle().
		Foreground(NeonCyan).
		Bold(true)

	// Subtitle renders secondary headings.
	Subtitle = lipgloss.NewStyle().
			Foreground(Slate)

	// Panel is the bordered card every dashboard widget sits in.
	Panel = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(TextDim).
		Padding(0, 1)

	// ActivePanel highlights the focused widget.
	ActivePanel = Panel.
			BorderForeground(NeonCyan)

	// StatusBar is the bottom bar background.
	StatusBar = lipgloss.NewStyle().
			Foreground(TextBright).
			Background(lipgloss.Color("#1e293b")).
			Padding(0, 1)

	// Help renders the shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(TextDim)

	// Selected highlights the active tab or list row.
	Selected = lipgloss.NewStyle().
			Foreground(NeonGreen).
			Bold(true)

	// Locked marks tabs and panels the current role cannot open.
	Locked = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)

	// Alert renders warnings and the lockout screen.
	Alert = lipgloss.NewStyle().
		Foreground(NeonRed).
		Bold(true)

	// Price renders L$ amounts.
	Price = lipgloss.NewStyle().
		Foreground(NeonAmber).
		Bold(true)

	// Strike renders the crossed-out original price.
	Strike = lipgloss.NewStyle().
		Foreground(TextDim).
		Strikethrough(true)
)

var roleColors = map[rbac.Role]lipgloss.Color{
	rbac.RoleSuperAdmin:     NeonRed,
	rbac.RoleOwner:          NeonAmber,
	rbac.RoleGeneralManager: NeonCyan,
	rbac.RoleManager:        NeonGreen,
	rbac.RoleDJ:             NeonPurple,
	rbac.RoleHost:           NeonPink,
	rbac.RoleVIPMember:      NeonAmber,
	rbac.RoleMember:         Slate,
}

// RoleColor returns the neon color assigned to a role.
func RoleColor(role rbac.Role) lipgloss.Color {
	if c, ok := roleColors[role]; ok {
		return c
	}
	return Slate
}

// RoleBadge renders a role's short label in its neon color.
func RoleBadge(role rbac.Role) string {
	return lipgloss.NewStyle().
		Foreground(RoleColor(role)).
		Bold(true).
		Render(role.ShortLabel())
}
