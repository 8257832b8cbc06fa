package components

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/wheel"
)

// WheelTickMsg drives a wheel's pending settle or snap deadline. ID
// routes the tick to the wheel that scheduled it.
type WheelTickMsg struct {
	ID string
	At time.Time
}

// Wheel is the terminal rendition of the scroll wheel picker: a fixed
// window of rows with the selection line in the middle. Key scrolls feed
// the settle machine, so a burst of keypresses coasts and then snaps
// exactly like the pointer-driven original.
type Wheel struct {
	ID      string
	Title   string
	machine *wheel.Machine
	rows    int
	focused bool
	now     func() time.Time
}

// NewWheel creates a wheel over items using the given timings.
func NewWheel(id, title string, items []wheel.Item, itemHeight int, timings wheel.Timings) Wheel {
	return Wheel{
		ID:      id,
		Title:   title,
		machine: wheel.New(items, itemHeight, timings),
		rows:    5,
		now:     time.Now,
	}
}

// WithClock overrides the time source for tests.
func (w Wheel) WithClock(now func() time.Time) Wheel {
	w.now = now
	return w
}

// Seed aligns the wheel to value without animation or commit.
func (w Wheel) Seed(value string) Wheel {
	w.machine.Seed(value)
	return w
}

// SetValue scrolls the wheel to value programmatically. The move is
// suppressed while the user is interacting.
func (w Wheel) SetValue(value string) (Wheel, tea.Cmd) {
	if w.machine.SetValue(value, w.now()) {
		return w, w.scheduleTick()
	}
	return w, nil
}

// Focus marks the wheel as the active key target.
func (w Wheel) Focus() Wheel {
	w.focused = true
	return w
}

// Blur removes focus.
func (w Wheel) Blur() Wheel {
	w.focused = false
	return w
}

// Focused reports whether the wheel receives keys.
func (w Wheel) Focused() bool {
	return w.focused
}

// Value returns the currently selected value.
func (w Wheel) Value() string {
	return w.machine.Value()
}

// Update handles keys, mouse input and settle ticks. The returned
// commit is non-nil exactly when a user interaction changed the
// selected value.
func (w Wheel) Update(msg tea.Msg) (Wheel, tea.Cmd, *wheel.Commit) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !w.focused {
			return w, nil, nil
		}
		return w.handleKey(msg)
	case tea.MouseMsg:
		if !w.focused {
			return w, nil, nil
		}
		return w.handleMouse(msg)
	case WheelTickMsg:
		if msg.ID != w.ID {
			return w, nil, nil
		}
		commit := w.machine.Update(msg.At)
		return w, w.scheduleTick(), commit
	}
	return w, nil, nil
}

func (w Wheel) handleKey(msg tea.KeyMsg) (Wheel, tea.Cmd, *wheel.Commit) {
	now := w.now()
	h := float64(w.machine.ItemHeight())
	switch msg.String() {
	case "up", "k":
		w.machine.Scroll(-h, now)
	case "down", "j":
		w.machine.Scroll(h, now)
	case "pgup":
		w.machine.Scroll(-3*h, now)
	case "pgdown":
		w.machine.Scroll(3*h, now)
	case "home":
		return w, w.scheduleTick(), w.machine.ClickItem(0, now)
	case "end":
		return w, w.scheduleTick(), w.machine.ClickItem(w.machine.Len()-1, now)
	default:
		return w, nil, nil
	}
	return w, w.scheduleTick(), nil
}

// handleMouse maps the pointer onto the machine: wheel movement feeds
// scroll input one row per notch, and a click commits the row on the
// selection line — the terminal stand-in for tapping an item.
func (w Wheel) handleMouse(msg tea.MouseMsg) (Wheel, tea.Cmd, *wheel.Commit) {
	now := w.now()
	h := float64(w.machine.ItemHeight())
	switch {
	case msg.Button == tea.MouseButtonWheelUp:
		w.machine.Scroll(-h, now)
	case msg.Button == tea.MouseButtonWheelDown:
		w.machine.Scroll(h, now)
	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		index := int(math.Round(w.machine.Offset() / h))
		return w, w.scheduleTick(), w.machine.ClickItem(index, now)
	default:
		return w, nil, nil
	}
	return w, w.scheduleTick(), nil
}

// scheduleTick arms a timer for the machine's next deadline, if any.
func (w Wheel) scheduleTick() tea.Cmd {
	deadline := w.machine.NextDeadline()
	if deadline.IsZero() {
		return nil
	}
	wait := deadline.Sub(w.now())
	if wait < 0 {
		wait = 0
	}
	id := w.ID
	return tea.Tick(wait, func(t time.Time) tea.Msg {
		return WheelTickMsg{ID: id, At: t}
	})
}

// View renders the wheel window with the selection line centered.
func (w Wheel) View() string {
	items := w.machine.Items()
	center := w.machine.Index()
	half := w.rows / 2

	var out string
	if w.Title != "" {
		out = styles.Subtitle.Render(w.Title) + "\n"
	}
	for row := -half; row <= half; row++ {
		i := center + row
		line := ""
		if i >= 0 && i < len(items) {
			line = items[i].Label
		}
		switch {
		case row == 0:
			out += styles.Selected.Render("› "+line) + "\n"
		default:
			out += styles.Help.Render("  "+line) + "\n"
		}
	}
	panel := styles.Panel
	if w.focused {
		panel = styles.ActivePanel
	}
	return panel.Render(lipgloss.NewStyle().Width(14).Render(out))
}
