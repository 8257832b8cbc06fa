// Package wheel implements the scroll-settle state machine behind the
// wheel-style value picker. Instead of juggling mutable isUserScrolling /
// programmaticScroll flags across event handlers, the behavior is an
// explicit machine with named states so the click-vs-scroll races are
// impossible by construction.
//
// All timing is deadline-based against a caller-supplied "now", which keeps
// the machine pure and lets the TUI drive it with tick messages.
package wheel

import (
	"math"
	"time"
)

// State names the interaction phase of the machine.
type State int

const (
	// StateIdle means the wheel is at rest on a committed item.
	StateIdle State = iota
	// StateUserScrolling means scroll input is arriving and external
	// re-centering must be suppressed.
	StateUserScrolling
	// StateProgrammaticScrolling means the wheel is animating toward a
	// target set by a click or an external value change.
	StateProgrammaticScrolling
	// StateSettling means scroll input went quiet and the wheel is
	// snapping to the nearest item boundary.
	StateSettling
)

func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateUserScrolling:
		return "userScrolling"
	case StateProgrammaticScrolling:
		return "programmaticScrolling"
	case StateSettling:
		return "settling"
	default:
		return "unknown"
	}
}

// Item is one selectable entry.
type Item struct {
	Label string
	Value string
}

// Timings holds the three quiet periods of the machine. The defaults mirror
// the production dashboard: 80ms scroll debounce, 200ms snap animation,
// 300ms programmatic animation.
type Timings struct {
	SettleDebounce       time.Duration
	SnapDuration         time.Duration
	ProgrammaticDuration time.Duration
}

// DefaultTimings returns the production timing constants.
func DefaultTimings() Timings {
	return Timings{
		SettleDebounce:       80 * time.Millisecond,
		SnapDuration:         200 * time.Millisecond,
		ProgrammaticDuration: 300 * time.Millisecond,
	}
}

// Commit reports that the committed value changed. Emitted at most once per
// settle or click.
type Commit struct {
	Index int
	Value string
}

// Machine is the wheel state machine. The zero value is unusable; construct
// with New. An empty item list yields an inert machine: every operation is
// a no-op.
type Machine struct {
	items      []Item
	itemHeight int
	timings    Timings

	state     State
	offset    float64
	lastValue string

	settleAt    time.Time
	flagClearAt time.Time
}

// New creates a machine over items with the given item height in pixels.
func New(items []Item, itemHeight int, timings Timings) *Machine {
	return &Machine{
		items:      items,
		itemHeight: itemHeight,
		timings:    timings,
		state:      StateIdle,
	}
}

// Seed aligns the wheel to value synchronously, with no animation. Used
// once on mount. Unknown values leave the offset at zero but still record
// the value so a later identical SetValue stays a no-op.
func (m *Machine) Seed(value string) {
	m.lastValue = value
	if idx := m.indexOf(value); idx >= 0 {
		m.offset = float64(idx * m.itemHeight)
	}
}

// SetValue handles an external (parent-driven) value change. It is ignored
// while the user is scrolling or the wheel is settling, and when the value
// equals the last known value; otherwise the wheel smooth-scrolls to the
// new position. Reports whether an animation started.
func (m *Machine) SetValue(value string, now time.Time) bool {
	if len(m.items) == 0 {
		return false
	}
	if m.state == StateUserScrolling || m.state == StateSettling {
		return false
	}
	if value == m.lastValue {
		return false
	}
	idx := m.indexOf(value)
	if idx < 0 {
		return false
	}
	m.lastValue = value
	m.offset = float64(idx * m.itemHeight)
	m.state = StateProgrammaticScrolling
	m.flagClearAt = now.Add(m.timings.ProgrammaticDuration)
	m.settleAt = time.Time{}
	return true
}

// Scroll feeds user scroll input (delta in pixels, positive = down). Every
// scroll restarts the settle debounce; the userScrolling state is only
// entered when no programmatic animation is in flight.
func (m *Machine) Scroll(delta float64, now time.Time) {
	if len(m.items) == 0 {
		return
	}
	if m.state != StateProgrammaticScrolling {
		m.state = StateUserScrolling
	}
	m.offset += delta
	// Simulated rubber-banding: allow up to one item of overscroll.
	min := -float64(m.itemHeight)
	max := float64((len(m.items)-1)*m.itemHeight + m.itemHeight)
	m.offset = math.Max(min, math.Min(max, m.offset))
	m.settleAt = now.Add(m.timings.SettleDebounce)
}

// ClickItem selects the item at index directly: programmatic scroll to its
// position plus an immediate commit when the value differs.
func (m *Machine) ClickItem(index int, now time.Time) *Commit {
	if len(m.items) == 0 {
		return nil
	}
	index = m.clampIndex(index)
	m.state = StateProgrammaticScrolling
	m.offset = float64(index * m.itemHeight)
	m.flagClearAt = now.Add(m.timings.ProgrammaticDuration)
	m.settleAt = time.Time{}

	item := m.items[index]
	if item.Value == m.lastValue {
		return nil
	}
	m.lastValue = item.Value
	return &Commit{Index: index, Value: item.Value}
}

// Update advances the machine's clocks. It returns a Commit when a settle
// landed on a new value, nil otherwise. Call it whenever a tick fires; it
// is safe to call more often.
func (m *Machine) Update(now time.Time) *Commit {
	if len(m.items) == 0 {
		return nil
	}
	var commit *Commit
	if !m.settleAt.IsZero() && !now.Before(m.settleAt) {
		commit = m.settle(now)
	}
	if !m.flagClearAt.IsZero() && !now.Before(m.flagClearAt) {
		if m.state == StateSettling || m.state == StateProgrammaticScrolling {
			m.state = StateIdle
		}
		m.flagClearAt = time.Time{}
	}
	return commit
}

// settle snaps to the nearest item and commits at most once.
func (m *Machine) settle(now time.Time) *Commit {
	m.settleAt = time.Time{}
	index := m.clampIndex(int(math.Round(m.offset / float64(m.itemHeight))))
	m.offset = float64(index * m.itemHeight)
	m.state = StateSettling
	m.flagClearAt = now.Add(m.timings.SnapDuration)

	item := m.items[index]
	if item.Value == m.lastValue {
		return nil
	}
	m.lastValue = item.Value
	return &Commit{Index: index, Value: item.Value}
}

// NextDeadline returns the earliest pending deadline, or zero when the
// machine is quiescent. The TUI uses it to schedule its next tick.
func (m *Machine) NextDeadline() time.Time {
	switch {
	case m.settleAt.IsZero():
		return m.flagClearAt
	case m.flagClearAt.IsZero():
		return m.settleAt
	case m.settleAt.Before(m.flagClearAt):
		return m.settleAt
	default:
		return m.flagClearAt
	}
}

// State returns the current interaction state.
func (m *Machine) State() State {
	return m.state
}

// ItemHeight returns the row height the offset math is based on.
func (m *Machine) ItemHeight() int {
	return m.itemHeight
}

// Offset returns the current scroll offset in pixels.
func (m *Machine) Offset() float64 {
	return m.offset
}

// Value returns the last committed value.
func (m *Machine) Value() string {
	return m.lastValue
}

// Index returns the index of the last committed value, or 0 when unknown.
func (m *Machine) Index() int {
	if idx := m.indexOf(m.lastValue); idx >= 0 {
		return idx
	}
	return 0
}

// Items returns the item list (read-only by convention).
func (m *Machine) Items() []Item {
	return m.items
}

// Len returns the number of items.
func (m *Machine) Len() int {
	return len(m.items)
}

func (m *Machine) indexOf(value string) int {
	for i, item := range m.items {
		if item.Value == value {
			return i
		}
	}
	return -1
}

func (m *Machine) clampIndex(index int) int {
	if index < 0 {
		return 0
	}
	if index > len(m.items)-1 {
		return len(m.items) - 1
	}
	return index
}

// FromStrings builds items where label and value are the same.
func FromStrings(values []string) []Item {
	items := make([]Item, len(values))
	for i, v := range values {
		items[i] = Item{Label: v, Value: v}
	}
	return items
}
