package models

import (
	"context"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaclub/clubos-pitch/cli/tui/components"
	"github.com/metaclub/clubos-pitch/engine/offer"
	"github.com/metaclub/clubos-pitch/pkg/bus"
	"github.com/metaclub/clubos-pitch/pkg/config"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

func testTour(t *testing.T) (*TourModel, *bus.Bus) {
	t.Helper()
	cfg := config.Default()
	b := bus.New()
	m := NewTourModel(context.Background(), cfg, b, notify.New("", cfg.Webhook.Timeout), offer.NewMemoryStore(nil))
	t.Cleanup(m.Close)
	m.SetSize(100, 40)
	return m, b
}

// countingStore records how the tour consumes the injected deadline
// store.
type countingStore struct {
	calls    int
	duration time.Duration
}

func (s *countingStore) GetOrCreate(duration time.Duration) (time.Time, error) {
	s.calls++
	s.duration = duration
	return time.Now().Add(duration), nil
}

func TestTour_DeadlineStore(t *testing.T) {
	t.Run("Should resolve the countdown through the injected store", func(t *testing.T) {
		cfg := config.Default()
		store := &countingStore{}

		m := NewTourModel(context.Background(), cfg, bus.New(), notify.New("", cfg.Webhook.Timeout), store)
		t.Cleanup(m.Close)

		assert.Equal(t, 1, store.calls)
		assert.Equal(t, cfg.Offer.Duration, store.duration)
	})
}

func TestTour_SectionNavigation(t *testing.T) {
	t.Run("Should walk the sections in order and clamp at the ends", func(t *testing.T) {
		m, _ := testTour(t)
		require.Equal(t, SectionHero, m.Section())

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		assert.Equal(t, SectionFeatures, m.Section())

		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		m.Update(tea.KeyMsg{Type: tea.KeyUp})
		assert.Equal(t, SectionHero, m.Section())
	})
}

func TestTour_ClaimFlow(t *testing.T) {
	t.Run("Should broadcast the reveal on claim and jump on the follow-up", func(t *testing.T) {
		m, b := testTour(t)
		revealed := false
		unsub := b.Subscribe(bus.TopicClaimDiscount, func() { revealed = true })
		defer unsub()

		_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'c'}})

		assert.True(t, revealed, "claim must publish immediately")
		require.NotNil(t, cmd, "follow-up timer must be armed")
		assert.Equal(t, SectionPricing, m.Section(), "claim must land on the pricing reveal")

		m.Update(components.ClaimFollowupMsg{})

		assert.Equal(t, SectionApply, m.Section())
		assert.Equal(t, DecisionAccept, m.apply.data.Decision)
	})

	t.Run("Should reveal pricing when the broadcast lands", func(t *testing.T) {
		m, _ := testTour(t)

		m.Update(components.RevealBroadcastMsg{})

		assert.True(t, m.pricing.Revealed())
	})
}

func TestTour_CarouselRouting(t *testing.T) {
	t.Run("Should route arrow keys to the carousel only on the features section", func(t *testing.T) {
		m, _ := testTour(t)

		m.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, 0, m.carousel.Index(), "hero section must not move the deck")

		m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
		m.Update(tea.KeyMsg{Type: tea.KeyRight})
		assert.Equal(t, 1, m.carousel.Index())
	})
}

func TestTour_ApplyEscape(t *testing.T) {
	t.Run("Should back out of the form to the pricing section", func(t *testing.T) {
		m, _ := testTour(t)
		m.Update(components.ClaimFollowupMsg{})
		require.Equal(t, SectionApply, m.Section())

		m.Update(tea.KeyMsg{Type: tea.KeyEsc})

		assert.Equal(t, SectionPricing, m.Section())
	})
}
