package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"

	"github.com/metaclub/clubos-pitch/pkg/bus"
)

func testBanner(b *bus.Bus) (CountdownBanner, *time.Time) {
	now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
	clock := &now
	banner := NewCountdownBanner(now.Add(72*time.Hour), b, 1800*time.Millisecond, 700).
		WithClock(func() time.Time { return *clock })
	return banner, clock
}

func TestCountdownBanner_Clock(t *testing.T) {
	t.Run("Should count down with uncapped hours", func(t *testing.T) {
		banner, clock := testBanner(bus.New())

		*clock = clock.Add(time.Second)

		assert.Equal(t, "71:59:59", banner.Clock().String())
	})

	t.Run("Should freeze at zero past the deadline and stop ticking", func(t *testing.T) {
		banner, clock := testBanner(bus.New())

		*clock = clock.Add(73 * time.Hour)
		banner, cmd := banner.Update(CountdownTickMsg{})

		assert.Equal(t, "00:00:00", banner.Clock().String())
		assert.Nil(t, cmd)
	})
}

func TestCountdownBanner_Claim(t *testing.T) {
	t.Run("Should broadcast the claim immediately and schedule the follow-up", func(t *testing.T) {
		b := bus.New()
		received := false
		unsub := b.Subscribe(bus.TopicClaimDiscount, func() { received = true })
		defer unsub()
		banner, _ := testBanner(b)

		banner, cmd := banner.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, received, "reveal must not wait for the follow-up delay")
		assert.True(t, banner.Claimed())
		assert.NotNil(t, cmd)
	})
}

func TestCountdownBanner_Dismiss(t *testing.T) {
	t.Run("Should hide on dismiss and ignore keys after", func(t *testing.T) {
		b := bus.New()
		banner, _ := testBanner(b)

		banner, _ = banner.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
		assert.False(t, banner.Visible())
		assert.Empty(t, banner.View())

		banner, _ = banner.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.False(t, banner.Claimed())
	})
}
