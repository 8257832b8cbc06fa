package components

import (
	"fmt"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/offer"
	"github.com/metaclub/clubos-pitch/pkg/bus"
)

// RevealBroadcastMsg arrives when a claim elsewhere broadcast the
// discount reveal on the bus.
type RevealBroadcastMsg struct{}

// PricingReveal renders the launch pricing card. The discounted price
// stays hidden until the viewer either interacts with the card directly
// or claims the offer from the countdown banner; once revealed it never
// hides again this session.
type PricingReveal struct {
	state       offer.RevealState
	fullPrice   int
	launchPrice int
	monthly     int
	breakdown   viewport.Model
	reveals     chan struct{}
	unsubscribe func()
}

// NewPricingReveal creates the pricing card and subscribes it to claim
// broadcasts on b.
func NewPricingReveal(b *bus.Bus, fullPrice, launchPrice, monthly int) *PricingReveal {
	p := &PricingReveal{
		fullPrice:   fullPrice,
		launchPrice: launchPrice,
		monthly:     monthly,
		reveals:     make(chan struct{}, 1),
	}
	p.unsubscribe = b.Subscribe(bus.TopicClaimDiscount, func() {
		select {
		case p.reveals <- struct{}{}:
		default:
		}
	})
	p.breakdown = viewport.New(56, 12)
	p.breakdown.SetContent(breakdownContent())
	return p
}

// Init starts listening for claim broadcasts.
func (p *PricingReveal) Init() tea.Cmd {
	return p.listen()
}

// Close drops the bus subscription.
func (p *PricingReveal) Close() {
	p.unsubscribe()
}

// Revealed reports whether the discount is disclosed.
func (p *PricingReveal) Revealed() bool {
	return p.state.Revealed()
}

// OverlayOpen reports whether the breakdown overlay is showing.
func (p *PricingReveal) OverlayOpen() bool {
	return p.state.OverlayOpen()
}

// listen waits for the next claim broadcast.
func (p *PricingReveal) listen() tea.Cmd {
	ch := p.reveals
	return func() tea.Msg {
		<-ch
		return RevealBroadcastMsg{}
	}
}

// Update handles reveal triggers and the breakdown overlay.
func (p *PricingReveal) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case RevealBroadcastMsg:
		p.state.Reveal()
		return p.listen()

	case tea.KeyMsg:
		if p.state.OverlayOpen() {
			switch msg.String() {
			case "esc", "b", "q":
				p.state.CloseOverlay()
				return nil
			}
			var cmd tea.Cmd
			p.breakdown, cmd = p.breakdown.Update(msg)
			return cmd
		}
		switch msg.String() {
		case "enter", "p":
			p.state.Reveal()
		case "b":
			p.state.OpenOverlay()
		}
	}
	return nil
}

// View renders the pricing card, or the breakdown overlay over it.
func (p *PricingReveal) View(width, height int) string {
	if p.state.OverlayOpen() {
		overlay := styles.Panel.
			BorderForeground(styles.NeonCyan).
			Render(styles.Title.Render("Everything Included") + "\n\n" +
				p.breakdown.View() + "\n" +
				styles.Help.Render("↑/↓ scroll  esc close"))
		return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, overlay)
	}

	var price string
	if p.state.Revealed() {
		price = styles.Strike.Render(fmt.Sprintf("$%d", p.fullPrice)) + "  " +
			styles.Price.Render(fmt.Sprintf("$%d", p.launchPrice)) + " " +
			styles.Subtitle.Render("one-time launch price")
	} else {
		price = styles.Selected.Render("▓▓▓▓") + " " +
			styles.Help.Render("press enter to reveal launch pricing")
	}
	body := styles.Title.Render("Launch Pricing") + "\n\n" +
		price + "\n" +
		styles.Subtitle.Render(fmt.Sprintf("then $%d/mo hosting & support", p.monthly)) + "\n\n" +
		styles.Help.Render("b: full feature breakdown")
	return styles.Panel.BorderForeground(styles.NeonAmber).Render(body)
}

func breakdownContent() string {
	lines := []string{
		"Rostering Engine with availability matching",
		"Live tip tracking across club, DJ and host jars",
		"Staff presence heartbeat (dashboard + Discord)",
		"Role-based access for 8 staff tiers",
		"Dual-database zero-loss transaction log",
		"Cryptographically verified in-world packets",
		"Mobile shift confirmation, no app install",
		"Web hiring form posting into Discord",
		"Crowd and revenue analytics with event ROI",
		"Expense tracking: sploders, fishbowls, assets",
		"Audit log of every management action",
		"Unlimited staff seats, one sim or ten",
	}
	out := ""
	for _, l := range lines {
		out += styles.Selected.Render("✓ ") + l + "\n"
	}
	return out
}
