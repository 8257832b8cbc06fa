package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaclub/clubos-pitch/engine/wheel"
)

func testWheel(t *testing.T) (Wheel, *time.Time) {
	t.Helper()
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	clock := &now
	w := NewWheel("day", "Day", wheel.FromStrings([]string{"Today", "Tomorrow", "Friday"}), 32, wheel.DefaultTimings()).
		WithClock(func() time.Time { return *clock }).
		Seed("Today").
		Focus()
	return w, clock
}

func TestWheel_ScrollSettleCommit(t *testing.T) {
	t.Run("Should commit the next value after a scroll settles", func(t *testing.T) {
		w, clock := testWheel(t)

		w, cmd, commit := w.Update(tea.KeyMsg{Type: tea.KeyDown})
		require.NotNil(t, cmd)
		assert.Nil(t, commit, "commit must wait for the settle tick")

		*clock = clock.Add(100 * time.Millisecond)
		w, _, commit = w.Update(WheelTickMsg{ID: "day", At: *clock})

		require.NotNil(t, commit)
		assert.Equal(t, "Tomorrow", commit.Value)
		assert.Equal(t, "Tomorrow", w.Value())
	})

	t.Run("Should coalesce a key burst into one commit", func(t *testing.T) {
		w, clock := testWheel(t)

		w, _, _ = w.Update(tea.KeyMsg{Type: tea.KeyDown})
		*clock = clock.Add(20 * time.Millisecond)
		w, _, _ = w.Update(tea.KeyMsg{Type: tea.KeyDown})

		*clock = clock.Add(100 * time.Millisecond)
		w, _, commit := w.Update(WheelTickMsg{ID: "day", At: *clock})

		require.NotNil(t, commit)
		assert.Equal(t, "Friday", commit.Value)
		assert.Equal(t, 2, commit.Index)
		_ = w
	})
}

func TestWheel_TickRouting(t *testing.T) {
	t.Run("Should ignore ticks addressed to another wheel", func(t *testing.T) {
		w, clock := testWheel(t)
		w, _, _ = w.Update(tea.KeyMsg{Type: tea.KeyDown})

		*clock = clock.Add(100 * time.Millisecond)
		w, _, commit := w.Update(WheelTickMsg{ID: "hour", At: *clock})

		assert.Nil(t, commit)
		assert.Equal(t, "Today", w.Value())
	})
}

func TestWheel_Focus(t *testing.T) {
	t.Run("Should ignore keys while blurred", func(t *testing.T) {
		w, _ := testWheel(t)
		w = w.Blur()

		w, cmd, commit := w.Update(tea.KeyMsg{Type: tea.KeyDown})

		assert.Nil(t, cmd)
		assert.Nil(t, commit)
		assert.Equal(t, "Today", w.Value())
	})
}

func TestWheel_HomeEnd(t *testing.T) {
	t.Run("Should jump to the last item immediately on end", func(t *testing.T) {
		w, _ := testWheel(t)

		w, _, commit := w.Update(tea.KeyMsg{Type: tea.KeyEnd})

		require.NotNil(t, commit)
		assert.Equal(t, "Friday", commit.Value)
		assert.Equal(t, "Friday", w.Value())
	})
}

func TestWheel_Mouse(t *testing.T) {
	t.Run("Should scroll one row per wheel notch and settle", func(t *testing.T) {
		w, clock := testWheel(t)

		w, cmd, commit := w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})
		require.NotNil(t, cmd)
		assert.Nil(t, commit, "commit must wait for the settle tick")

		*clock = clock.Add(100 * time.Millisecond)
		w, _, commit = w.Update(WheelTickMsg{ID: "day", At: *clock})

		require.NotNil(t, commit)
		assert.Equal(t, "Tomorrow", commit.Value)
	})

	t.Run("Should commit the selection-line row immediately on click", func(t *testing.T) {
		w, _ := testWheel(t)
		// Coast one row down, then click before the settle fires.
		w, _, _ = w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

		w, _, commit := w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})

		require.NotNil(t, commit)
		assert.Equal(t, "Tomorrow", commit.Value)
		assert.Equal(t, "Tomorrow", w.Value())
	})

	t.Run("Should ignore the pointer while blurred", func(t *testing.T) {
		w, _ := testWheel(t)
		w = w.Blur()

		w, cmd, commit := w.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonWheelDown})

		assert.Nil(t, cmd)
		assert.Nil(t, commit)
		assert.Equal(t, "Today", w.Value())
	})
}

func TestWheel_SetValue(t *testing.T) {
	t.Run("Should suppress programmatic moves during a user scroll", func(t *testing.T) {
		w, _ := testWheel(t)
		w, _, _ = w.Update(tea.KeyMsg{Type: tea.KeyDown})

		w, cmd := w.SetValue("Friday")

		assert.Nil(t, cmd)
		assert.Equal(t, "Today", w.Value())
	})
}
