package models

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/components"
	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/offer"
	"github.com/metaclub/clubos-pitch/pkg/bus"
	"github.com/metaclub/clubos-pitch/pkg/config"
	"github.com/metaclub/clubos-pitch/pkg/logger"
	"github.com/metaclub/clubos-pitch/pkg/notify"
)

// Section is one stop of the pitch tour.
type Section int

const (
	SectionHero Section = iota
	SectionFeatures
	SectionPricing
	SectionApply
	sectionCount
)

var sectionNames = [sectionCount]string{"Welcome", "Features", "Pricing", "Apply"}

// TourModel is the scripted pitch: hero, feature carousel, launch
// pricing and the decision form, under a persistent offer countdown.
// Claiming the offer reveals the pricing immediately and then jumps to
// the form with "accept" preselected.
type TourModel struct {
	BaseModel
	cfg *config.Config
	log logger.Logger

	section  Section
	banner   components.CountdownBanner
	carousel components.AutoCarousel
	pricing  *components.PricingReveal
	apply    *ApplyModel
}

// NewTourModel creates the tour. The offer deadline comes from the
// injected store; with the session-scoped store, restarting the binary
// in the same terminal session resumes the same countdown. A store
// failure degrades to an ephemeral in-memory deadline.
func NewTourModel(ctx context.Context, cfg *config.Config, b *bus.Bus, notifier *notify.Notifier, deadlines offer.DeadlineStore) *TourModel {
	deadline, err := deadlines.GetOrCreate(cfg.Offer.Duration)
	if err != nil {
		logger.FromContext(ctx).Warn("offer deadline store unavailable, countdown is ephemeral", "error", err)
		deadline, _ = offer.NewMemoryStore(nil).GetOrCreate(cfg.Offer.Duration)
	}
	return &TourModel{
		BaseModel: NewBaseModel(ctx),
		cfg:       cfg,
		log:       logger.FromContext(ctx),
		banner:    components.NewCountdownBanner(deadline, b, cfg.Offer.FollowupDelay, cfg.Offer.LaunchPrice),
		carousel:  components.NewAutoCarousel(components.DefaultSlides(), cfg.Carousel.Interval, cfg.Carousel.SwipeThreshold),
		pricing:   components.NewPricingReveal(b, cfg.Offer.FullPrice, cfg.Offer.LaunchPrice, cfg.Offer.MonthlyHosting),
		apply:     NewApplyModel(notifier),
	}
}

// Section returns the current tour stop.
func (m *TourModel) Section() Section {
	return m.section
}

// Init implements tea.Model.
func (m *TourModel) Init() tea.Cmd {
	return tea.Batch(
		m.banner.Init(),
		m.carousel.Init(),
		m.pricing.Init(),
		m.apply.Init(),
	)
}

// Close releases the pricing card's bus subscription.
func (m *TourModel) Close() {
	m.pricing.Close()
}

// Update implements tea.Model.
func (m *TourModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if cmd := m.BaseModel.Update(msg); cmd != nil {
		m.Close()
		return m, cmd
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.carousel = m.carousel.SetWidth(msg.Width - 4)
		return m, nil

	case components.CountdownTickMsg:
		var cmd tea.Cmd
		m.banner, cmd = m.banner.Update(msg)
		return m, cmd

	case components.CarouselTickMsg:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd

	case components.RevealBroadcastMsg:
		return m, m.pricing.Update(msg)

	case components.ClaimFollowupMsg:
		// The delayed half of the claim: land on the form, preselect
		// "accept".
		m.section = SectionApply
		m.apply.PreselectAccept()
		m.log.Debug("claim follow-up, jumping to application form")
		return m, nil

	case tea.MouseMsg:
		if m.section == SectionFeatures {
			var cmd tea.Cmd
			m.carousel, cmd = m.carousel.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m *TourModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// The form owns the keyboard on its section.
	if m.section == SectionApply && !m.apply.Submitted() {
		switch msg.String() {
		case "ctrl+c":
			m.Close()
			m.Quit()
			return m, tea.Quit
		case "esc":
			m.section = SectionPricing
			return m, nil
		}
		return m, m.apply.Update(msg)
	}

	switch msg.String() {
	case "q":
		m.Close()
		m.Quit()
		return m, tea.Quit
	case "c", "x":
		var cmd tea.Cmd
		m.banner, cmd = m.banner.Update(msg)
		if msg.String() == "c" && cmd != nil {
			// The immediate half of the claim: show the pricing reveal
			// on screen while the follow-up timer runs.
			m.section = SectionPricing
		}
		return m, cmd
	case "down", "j", "pgdown":
		if m.section < sectionCount-1 {
			m.section++
		}
		return m, nil
	case "up", "k", "pgup":
		if m.section > 0 {
			m.section--
		}
		return m, nil
	}

	switch m.section {
	case SectionFeatures:
		var cmd tea.Cmd
		m.carousel, cmd = m.carousel.Update(msg)
		return m, cmd
	case SectionPricing:
		return m, m.pricing.Update(msg)
	}
	return m, nil
}

// View implements tea.Model.
func (m *TourModel) View() string {
	if m.IsQuitting() {
		return ""
	}
	width, height := m.Size()
	if !m.IsReady() {
		width, height = 100, 40
	}

	sections := []string{m.banner.View(), m.progress()}
	switch m.section {
	case SectionHero:
		sections = append(sections, m.hero(width))
	case SectionFeatures:
		sections = append(sections, m.carousel.View())
	case SectionPricing:
		sections = append(sections, m.pricing.View(width, height-8))
	case SectionApply:
		sections = append(sections, m.apply.View())
	}
	sections = append(sections, styles.Help.Render("↑/↓ sections  c: claim offer  q: quit"))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *TourModel) hero(width int) string {
	name := m.cfg.Demo.ClubName
	header := components.RenderASCIIHeader("CLUB OS", width)
	pitch := styles.Panel.Width(min(width-2, 76)).Render(
		styles.Title.Render(name) + "\n\n" +
			"Stop running a nightclub out of notecards and group IMs.\n" +
			"Schedules, tips, staff and analytics — one command center.\n\n" +
			styles.Help.Render("Press ↓ to see what it does."))
	return lipgloss.JoinVertical(lipgloss.Left, header, components.RenderTagline(width), pitch)
}

func (m *TourModel) progress() string {
	out := ""
	for i := Section(0); i < sectionCount; i++ {
		label := sectionNames[i]
		if i == m.section {
			out += styles.Selected.Render("● "+label) + "  "
		} else {
			out += styles.Help.Render("○ "+label) + "  "
		}
	}
	return out
}
