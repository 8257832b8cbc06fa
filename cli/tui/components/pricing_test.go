package components

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/metaclub/clubos-pitch/pkg/bus"
)

func TestPricingReveal_DirectReveal(t *testing.T) {
	t.Run("Should reveal on direct interaction and stay revealed", func(t *testing.T) {
		p := NewPricingReveal(bus.New(), 1000, 700, 30)
		defer p.Close()

		p.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.True(t, p.Revealed())

		p.Update(tea.KeyMsg{Type: tea.KeyEnter})
		assert.True(t, p.Revealed())
	})
}

func TestPricingReveal_Broadcast(t *testing.T) {
	t.Run("Should reveal when a claim is published on the bus", func(t *testing.T) {
		b := bus.New()
		p := NewPricingReveal(b, 1000, 700, 30)
		defer p.Close()

		done := make(chan tea.Msg, 1)
		listen := p.Init()
		go func() { done <- listen() }()

		b.Publish(bus.TopicClaimDiscount)

		select {
		case msg := <-done:
			require.IsType(t, RevealBroadcastMsg{}, msg)
		case <-time.After(time.Second):
			t.Fatal("claim broadcast never reached the listener")
		}

		cmd := p.Update(RevealBroadcastMsg{})
		assert.True(t, p.Revealed())
		assert.NotNil(t, cmd, "must re-arm the listener")
	})

	t.Run("Should stop receiving after Close", func(t *testing.T) {
		b := bus.New()
		p := NewPricingReveal(b, 1000, 700, 30)

		p.Close()
		b.Publish(bus.TopicClaimDiscount)

		assert.Zero(t, b.SubscriberCount(bus.TopicClaimDiscount))
		assert.False(t, p.Revealed())
	})
}

func TestPricingReveal_Overlay(t *testing.T) {
	t.Run("Should toggle the breakdown without touching reveal state", func(t *testing.T) {
		p := NewPricingReveal(bus.New(), 1000, 700, 30)
		defer p.Close()

		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
		assert.True(t, p.OverlayOpen())
		assert.False(t, p.Revealed())

		p.Update(tea.KeyMsg{Type: tea.KeyEsc})
		assert.False(t, p.OverlayOpen())
		assert.False(t, p.Revealed())
	})

	t.Run("Should swallow reveal keys while the overlay is open", func(t *testing.T) {
		p := NewPricingReveal(bus.New(), 1000, 700, 30)
		defer p.Close()

		p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'b'}})
		p.Update(tea.KeyMsg{Type: tea.KeyEnter})

		assert.False(t, p.Revealed())
	})
}
