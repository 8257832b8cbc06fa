package components

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/carousel"
)

// Slide is one feature card.
type Slide struct {
	Title    string
	Subtitle string
	Desc     string
	Color    lipgloss.Color
}

// DefaultSlides returns the product feature deck.
func DefaultSlides() []Slide {
	return []Slide{
		{
			Title: "Smart Auto-Roster", Subtitle: "Your Scheduling Is Done", Color: styles.NeonPurple,
			Desc: "The Rostering Engine reads your staff's availability and builds a conflict-free shift calendar in seconds. No double bookings. No forgotten slots.",
		},
		{
			Title: "Real-Time Tip Tracking", Subtitle: "Every L$ accounted for", Color: styles.NeonCyan,
			Desc: "See exactly how much your club, DJs, and Hosts earned — live, tonight. Every tip captured the moment it lands. No more 2AM payout reconstruction.",
		},
		{
			Title: "Staff Presence Tracking", Subtitle: "Dashboard & Discord activity", Color: styles.NeonPink,
			Desc: "Know who is active on the dashboard or in your Discord — and who went quiet mid-shift. Heartbeat engine tracks web presence in real time.",
		},
		{
			Title: "Role-Based Access", Subtitle: "Right people, right data", Color: styles.NeonGreen,
			Desc: "Owners see everything. DJs and Hosts see only their own shifts and tips. Fully automatic — no one stumbles into financials or management settings.",
		},
		{
			Title: "Zero-Loss Architecture", Subtitle: "Two databases, zero gaps", Color: styles.NeonAmber,
			Desc: "Fast Firestore for the live dashboard, strict PostgreSQL for every transaction. Even during SL lag spikes, your money data is never lost.",
		},
		{
			Title: "Fraud Protection", Subtitle: "Cryptographic verification", Color: styles.NeonPurple,
			Desc: "Every data packet from Second Life is cryptographically verified. No fake tips, no spoofed traffic, no griefers messing with your numbers.",
		},
		{
			Title: "Works on Any Phone", Subtitle: "No app needed", Color: styles.NeonPink,
			Desc: "DJs and Hosts confirm shifts, check schedules, and request changes from their phone. One tap. Less missed confirmations, less chasing.",
		},
		{
			Title: "Web-Based Hiring", Subtitle: "No notecards required", Color: styles.Slate,
			Desc: "Candidates apply via a web form — timezone, voice, specialties — and the application posts to a role-restricted channel in your Discord server.",
		},
		{
			Title: "Crowd & Revenue Analytics", Subtitle: "Know what's working", Color: styles.NeonGreen,
			Desc: "Track peak hours, top DJs, best event themes — plus crowd behaviour: when guests arrive, how long they stay, which nights draw big spenders.",
		},
	}
}

// carouselProgressSteps is how many sub-ticks fill the per-slide
// progress bar over one rotation interval.
const carouselProgressSteps = 10

// CarouselTickMsg is the rotation timer firing. Epoch is the rotor
// epoch the tick was scheduled under; stale epochs are dropped. Step
// counts sub-intervals: the slide advances on the final step, earlier
// steps only move the progress bar.
type CarouselTickMsg struct {
	Epoch int
	Step  int
}

// AutoCarousel renders the feature deck with automatic rotation and a
// per-slide progress bar filling over the interval. Manual navigation
// always restarts the full interval, and pausing tears the timer down
// instead of letting ticks pile up.
type AutoCarousel struct {
	rotor     *carousel.Rotor
	slides    []Slide
	interval  time.Duration
	threshold int
	width     int
	dragX     int
	dragging  bool
	progress  int
}

// NewAutoCarousel creates a carousel over slides.
func NewAutoCarousel(slides []Slide, interval time.Duration, swipeThreshold int) AutoCarousel {
	return AutoCarousel{
		rotor:     carousel.New(len(slides)),
		slides:    slides,
		interval:  interval,
		threshold: swipeThreshold,
		width:     72,
	}
}

// Init arms the first sub-interval tick.
func (c AutoCarousel) Init() tea.Cmd {
	return c.tick(0)
}

// SetWidth sets the rendered card width.
func (c AutoCarousel) SetWidth(width int) AutoCarousel {
	if width > 20 {
		c.width = width
	}
	return c
}

// Index returns the current slide index.
func (c AutoCarousel) Index() int {
	return c.rotor.Index()
}

// Paused reports whether auto-rotation is suspended.
func (c AutoCarousel) Paused() bool {
	return c.rotor.Paused()
}

// Update handles ticks, keys and mouse drags.
func (c AutoCarousel) Update(msg tea.Msg) (AutoCarousel, tea.Cmd) {
	switch msg := msg.(type) {
	case CarouselTickMsg:
		if msg.Epoch != c.rotor.Epoch() || c.rotor.Paused() {
			// A stale tick stops this timer chain; the interaction
			// that bumped the epoch armed its own.
			return c, nil
		}
		if msg.Step < carouselProgressSteps-1 {
			c.progress = msg.Step + 1
			return c, c.tick(msg.Step + 1)
		}
		if c.rotor.AutoAdvance(msg.Epoch) {
			c.progress = 0
			return c, c.tick(0)
		}
		return c, nil

	case tea.KeyMsg:
		return c.handleKey(msg)

	case tea.MouseMsg:
		return c.handleMouse(msg)
	}
	return c, nil
}

func (c AutoCarousel) handleKey(msg tea.KeyMsg) (AutoCarousel, tea.Cmd) {
	switch msg.String() {
	case "left", "h":
		c.rotor.ManualPrev()
		c.progress = 0
		return c, c.tick(0)
	case "right", "l":
		c.rotor.ManualNext()
		c.progress = 0
		return c, c.tick(0)
	case " ":
		if c.rotor.Paused() {
			c.rotor.Resume()
			c.progress = 0
			return c, c.tick(0)
		}
		c.rotor.Pause()
		return c, nil
	case "1", "2", "3", "4", "5", "6", "7", "8", "9":
		target := int(msg.String()[0] - '1')
		before := c.rotor.Epoch()
		c.rotor.GoTo(target)
		if c.rotor.Epoch() != before {
			c.progress = 0
			return c, c.tick(0)
		}
	}
	return c, nil
}

// handleMouse turns a horizontal press-drag-release into a swipe.
func (c AutoCarousel) handleMouse(msg tea.MouseMsg) (AutoCarousel, tea.Cmd) {
	if msg.Button != tea.MouseButtonLeft {
		return c, nil
	}
	switch msg.Action {
	case tea.MouseActionPress:
		c.dragging = true
		c.dragX = msg.X
	case tea.MouseActionRelease:
		if !c.dragging {
			return c, nil
		}
		c.dragging = false
		if c.rotor.Swipe(float64(msg.X-c.dragX), float64(c.threshold)) {
			c.progress = 0
			return c, c.tick(0)
		}
	}
	return c, nil
}

// tick schedules the next sub-interval step under the current epoch.
func (c AutoCarousel) tick(step int) tea.Cmd {
	if c.rotor.Len() == 0 || c.rotor.Paused() {
		return nil
	}
	epoch := c.rotor.Epoch()
	return tea.Tick(c.interval/carouselProgressSteps, func(time.Time) tea.Msg {
		return CarouselTickMsg{Epoch: epoch, Step: step}
	})
}

// View renders the current card with dot navigation under it.
func (c AutoCarousel) View() string {
	if len(c.slides) == 0 {
		return ""
	}
	slide := c.slides[c.rotor.Index()]

	title := lipgloss.NewStyle().Foreground(slide.Color).Bold(true).Render(slide.Title)
	subtitle := styles.Subtitle.Render(slide.Subtitle)
	desc := lipgloss.NewStyle().Width(c.width - 4).Render(slide.Desc)
	card := styles.Panel.
		BorderForeground(slide.Color).
		Width(c.width).
		Render(title + "\n" + subtitle + "\n\n" + desc)

	var dots []string
	for i := range c.slides {
		if i == c.rotor.Index() {
			dots = append(dots, styles.Selected.Render("●"))
		} else {
			dots = append(dots, styles.Help.Render("○"))
		}
	}
	status := ""
	if c.rotor.Paused() {
		status = "  " + styles.Help.Render("paused")
	}
	out := card + "\n" + lipgloss.NewStyle().Width(c.width).Align(lipgloss.Center).
		Render(strings.Join(dots, " ")+status)
	if !c.rotor.Paused() {
		out += "\n" + lipgloss.NewStyle().Width(c.width).Align(lipgloss.Center).
			Render(c.progressBar())
	}
	return out
}

// progressBar renders how far into the rotation interval the current
// slide is.
func (c AutoCarousel) progressBar() string {
	const barWidth = 24
	filled := c.progress * barWidth / carouselProgressSteps
	return lipgloss.NewStyle().Foreground(styles.NeonAmber).Render(strings.Repeat("━", filled)) +
		styles.Help.Render(strings.Repeat("─", barWidth-filled))
}
