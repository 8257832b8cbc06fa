package components

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
)

const escKey = "esc"

// ShortcutCategory represents a category of keyboard shortcuts
type ShortcutCategory struct {
	Name      string
	Shortcuts [][2]string
}

// KeyboardShortcuts displays a reference card for keyboard shortcuts
type KeyboardShortcuts struct {
	Width      int
	Height     int
	Visible    bool
	Categories []ShortcutCategory
}

// NewKeyboardShortcuts creates a new keyboard shortcuts component
func NewKeyboardShortcuts() KeyboardShortcuts {
	return KeyboardShortcuts{
		Categories: defaultShortcutCategories(),
	}
}

func defaultShortcutCategories() []ShortcutCategory {
	return []ShortcutCategory{
		{
			Name: "General",
			Shortcuts: [][2]string{
				{"q", "quit"},
				{"ctrl+c", "force quit"},
				{"?", "toggle this card"},
				{escKey, "cancel/back"},
			},
		},
		{
			Name: "Tabs",
			Shortcuts: [][2]string{
				{"tab", "next tab"},
				{"shift+tab", "previous tab"},
				{"1-8", "jump to tab"},
			},
		},
		{
			Name: "Role",
			Shortcuts: [][2]string{
				{"r", "next role"},
				{"R", "previous role"},
				{"g", "sign out (guest)"},
			},
		},
		{
			Name: "Widgets",
			Shortcuts: [][2]string{
				{"↑/↓ or j/k", "scroll wheel / move"},
				{"←/→ or h/l", "carousel / wheel column"},
				{"enter", "select / claim"},
				{"space", "pause carousel"},
				{"b", "price breakdown"},
			},
		},
	}
}

// SetSize sets the shortcuts size
func (k *KeyboardShortcuts) SetSize(width, height int) {
	k.Width = width
	k.Height = height
}

// Toggle toggles the shortcuts visibility
func (k *KeyboardShortcuts) Toggle() {
	k.Visible = !k.Visible
}

// Update handles shortcuts updates
func (k *KeyboardShortcuts) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		k.SetSize(msg.Width, msg.Height)
	case tea.KeyMsg:
		if !k.Visible {
			return nil
		}
		switch msg.String() {
		case escKey, "q", "?":
			k.Visible = false
		}
	}
	return nil
}

// View renders the keyboard shortcuts card centered on the screen
func (k *KeyboardShortcuts) View() string {
	if !k.Visible {
		return ""
	}
	content := styles.Title.Render("Keyboard Shortcuts") + "\n\n"
	for i, category := range k.Categories {
		if i > 0 {
			content += "\n"
		}
		content += k.renderCategory(category)
	}
	content += "\n" + styles.Help.Render("Press ESC or q to close")
	dialog := styles.Panel.
		BorderForeground(styles.NeonCyan).
		Render(content)
	return lipgloss.Place(k.Width, k.Height, lipgloss.Center, lipgloss.Center, dialog)
}

func (k *KeyboardShortcuts) renderCategory(category ShortcutCategory) string {
	content := styles.Subtitle.Render(category.Name) + "\n"
	for _, shortcut := range category.Shortcuts {
		key := styles.Selected.Render(shortcut[0])
		desc := styles.Help.Render(shortcut[1])
		content += "  " + key + " " + desc + "\n"
	}
	return content
}
