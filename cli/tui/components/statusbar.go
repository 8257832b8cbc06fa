package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/rbac"
)

// StatusBarComponent shows the current role on the left, contextual text
// in the center and shortcut hints on the right.
type StatusBarComponent struct {
	Width  int
	Center string
	Right  string
	Role   rbac.Role
	Guest  bool
}

// NewStatusBar creates a new status bar component
func NewStatusBar(width int) StatusBarComponent {
	return StatusBarComponent{Width: width, Right: "?: shortcuts  q: quit"}
}

// SetRole sets the role shown on the left
func (s StatusBarComponent) SetRole(role rbac.Role, guest bool) StatusBarComponent {
	s.Role = role
	s.Guest = guest
	return s
}

// SetCenter sets the center content
func (s StatusBarComponent) SetCenter(content string) StatusBarComponent {
	s.Center = content
	return s
}

// SetRight sets the right content
func (s StatusBarComponent) SetRight(content string) StatusBarComponent {
	s.Right = content
	return s
}

// Update handles status bar updates
func (s StatusBarComponent) Update(msg tea.Msg) (StatusBarComponent, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		s.Width = msg.Width
	}
	return s, nil
}

// View renders the status bar
func (s StatusBarComponent) View() string {
	left := styles.Alert.Render("GUEST")
	if !s.Guest {
		left = styles.RoleBadge(s.Role) + " " + s.Role.Label()
	}
	center := s.Center
	right := styles.Help.Render(s.Right)

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(center) - lipgloss.Width(right) - 2
	if gap < 2 {
		return styles.StatusBar.Width(s.Width).Render(left + " " + right)
	}
	pad := gap / 2
	line := left + spaces(pad) + center + spaces(gap-pad) + right
	return styles.StatusBar.Width(s.Width).Render(line)
}

func spaces(n int) string {
	if n < 1 {
		return " "
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
