package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/offer"
	"github.com/metaclub/clubos-pitch/pkg/bus"
)

// CountdownTickMsg advances the banner clock once a second.
type CountdownTickMsg struct{}

// ClaimFollowupMsg fires after the claim follow-up delay; the tour model
// jumps to the application form and preselects "accept" on it.
type ClaimFollowupMsg struct{}

// CountdownBanner renders the launch-offer countdown with the claim
// action. Claiming broadcasts the discount reveal on the bus immediately
// and schedules the follow-up jump.
type CountdownBanner struct {
	deadline    time.Time
	bus         *bus.Bus
	followup    time.Duration
	launchPrice int
	visible     bool
	claimed     bool
	now         func() time.Time
}

// NewCountdownBanner creates a banner counting down to deadline.
func NewCountdownBanner(deadline time.Time, b *bus.Bus, followup time.Duration, launchPrice int) CountdownBanner {
	return CountdownBanner{
		deadline:    deadline,
		bus:         b,
		followup:    followup,
		launchPrice: launchPrice,
		visible:     true,
		now:         time.Now,
	}
}

// WithClock overrides the time source for tests.
func (b CountdownBanner) WithClock(now func() time.Time) CountdownBanner {
	b.now = now
	return b
}

// Init arms the per-second clock tick.
func (b CountdownBanner) Init() tea.Cmd {
	return tickSecond()
}

// Visible reports whether the banner is showing.
func (b CountdownBanner) Visible() bool {
	return b.visible
}

// Claimed reports whether the offer was claimed this session.
func (b CountdownBanner) Claimed() bool {
	return b.claimed
}

// Clock returns the current countdown reading.
func (b CountdownBanner) Clock() offer.Clock {
	return offer.ClockFrom(offer.Remaining(b.deadline, b.now()))
}

// Update handles clock ticks and the claim/dismiss keys.
func (b CountdownBanner) Update(msg tea.Msg) (CountdownBanner, tea.Cmd) {
	switch msg := msg.(type) {
	case CountdownTickMsg:
		if !b.visible || b.Clock().IsZero() {
			return b, nil
		}
		return b, tickSecond()

	case tea.KeyMsg:
		if !b.visible {
			return b, nil
		}
		switch msg.String() {
		case "enter", "c":
			return b.claim()
		case "x":
			b.visible = false
		}
	}
	return b, nil
}

// claim broadcasts the reveal now and schedules the follow-up jump.
func (b CountdownBanner) claim() (CountdownBanner, tea.Cmd) {
	b.claimed = true
	b.bus.Publish(bus.TopicClaimDiscount)
	return b, tea.Tick(b.followup, func(time.Time) tea.Msg {
		return ClaimFollowupMsg{}
	})
}

func tickSecond() tea.Cmd {
	return tea.Tick(time.Second, func(time.Time) tea.Msg {
		return CountdownTickMsg{}
	})
}

// View renders the sticky offer banner.
func (b CountdownBanner) View() string {
	if !b.visible {
		return ""
	}
	clock := b.Clock()
	badge := styles.Help.Render("LIMITED LAUNCH OFFER")
	timer := styles.Alert.Render(clock.String())
	if clock.IsZero() {
		timer = styles.Alert.Render("OFFER EXPIRED")
	}
	cta := styles.Price.Render(fmt.Sprintf("Claim $%d offer ›", b.launchPrice))
	if b.claimed {
		cta = styles.Selected.Render("claimed ✓")
	}
	line := lipgloss.JoinHorizontal(lipgloss.Center,
		badge, "  ", timer, "  ", cta, "  ", styles.Help.Render("x: dismiss"))
	return styles.Panel.BorderForeground(styles.NeonAmber).Render(line)
}
