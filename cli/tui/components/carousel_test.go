package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
)

func testCarousel() AutoCarousel {
	slides := []Slide{
		{Title: "One", Color: styles.NeonCyan},
		{Title: "Two", Color: styles.NeonPink},
		{Title: "Three", Color: styles.NeonGreen},
	}
	return NewAutoCarousel(slides, 5*time.Second, 50)
}

func TestAutoCarousel_Ticks(t *testing.T) {
	t.Run("Should advance on the final sub-interval step and rearm", func(t *testing.T) {
		c := testCarousel()

		c, cmd := c.Update(CarouselTickMsg{Epoch: 0, Step: carouselProgressSteps - 1})

		assert.Equal(t, 1, c.Index())
		assert.NotNil(t, cmd)
	})

	t.Run("Should only move the progress bar on earlier steps", func(t *testing.T) {
		c := testCarousel()

		c, cmd := c.Update(CarouselTickMsg{Epoch: 0, Step: 0})

		assert.Equal(t, 0, c.Index(), "mid-interval steps must not rotate")
		assert.Equal(t, 1, c.progress)
		assert.NotNil(t, cmd)
	})

	t.Run("Should drop a tick scheduled before a manual nav", func(t *testing.T) {
		c := testCarousel()
		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRight})

		c, cmd := c.Update(CarouselTickMsg{Epoch: 0, Step: carouselProgressSteps - 1})

		assert.Equal(t, 1, c.Index(), "stale tick must not double-advance")
		assert.Nil(t, cmd, "stale timer chain must end")
	})
}

func TestAutoCarousel_Progress(t *testing.T) {
	t.Run("Should restart the interval progress on manual nav", func(t *testing.T) {
		c := testCarousel()
		c, _ = c.Update(CarouselTickMsg{Epoch: 0, Step: 0})
		require.Equal(t, 1, c.progress)

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRight})

		assert.Equal(t, 0, c.progress)
	})

	t.Run("Should hide the progress bar while paused", func(t *testing.T) {
		c := testCarousel()
		c, _ = c.Update(CarouselTickMsg{Epoch: 0, Step: 2})
		assert.Contains(t, c.View(), "━", "a running deck shows the interval bar")

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeySpace})

		assert.NotContains(t, c.View(), "━")
	})
}

func TestAutoCarousel_ManualNav(t *testing.T) {
	t.Run("Should wrap backward from the first slide", func(t *testing.T) {
		c := testCarousel()

		c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyLeft})

		assert.Equal(t, 2, c.Index())
		assert.NotNil(t, cmd)
	})

	t.Run("Should jump to a slide by number key", func(t *testing.T) {
		c := testCarousel()

		c, _ = c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})

		assert.Equal(t, 2, c.Index())
	})

	t.Run("Should ignore number keys past the deck", func(t *testing.T) {
		c := testCarousel()

		c, cmd := c.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'9'}})

		assert.Equal(t, 0, c.Index())
		assert.Nil(t, cmd)
	})
}

func TestAutoCarousel_Pause(t *testing.T) {
	t.Run("Should stop ticking while paused and rearm on resume", func(t *testing.T) {
		c := testCarousel()

		c, cmd := c.Update(tea.KeyMsg{Type: tea.KeySpace})
		assert.True(t, c.Paused())
		assert.Nil(t, cmd)

		c, _ = c.Update(CarouselTickMsg{Epoch: 0})
		assert.Equal(t, 0, c.Index())

		c, cmd = c.Update(tea.KeyMsg{Type: tea.KeySpace})
		assert.False(t, c.Paused())
		assert.NotNil(t, cmd)
	})
}

func TestAutoCarousel_Swipe(t *testing.T) {
	t.Run("Should navigate on a drag past the threshold", func(t *testing.T) {
		c := testCarousel()

		c, _ = c.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 60})
		c, cmd := c.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 5})

		assert.Equal(t, 1, c.Index())
		assert.NotNil(t, cmd)
	})

	t.Run("Should ignore a drag under the threshold", func(t *testing.T) {
		c := testCarousel()

		c, _ = c.Update(tea.MouseMsg{Action: tea.MouseActionPress, Button: tea.MouseButtonLeft, X: 30})
		c, cmd := c.Update(tea.MouseMsg{Action: tea.MouseActionRelease, Button: tea.MouseButtonLeft, X: 10})

		assert.Equal(t, 0, c.Index())
		assert.Nil(t, cmd)
	})
}
