package components

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/metaclub/clubos-pitch/cli/tui/styles"
	"github.com/metaclub/clubos-pitch/engine/schedule"
	"github.com/metaclub/clubos-pitch/engine/wheel"
)

// Range is the composed shift window the picker reports upward.
type Range struct {
	Start time.Time
	End   time.Time
}

// RangeChangedMsg is emitted when any wheel commit changes the range.
type RangeChangedMsg struct {
	Range Range
}

const (
	colStartDay = iota
	colStartHour
	colStartMinute
	colEndDay
	colEndHour
	colEndMinute
	colCount
)

// DateRangePicker is the six-wheel shift range editor. It seeds once
// from the initial range and is uncontrolled afterwards: later external
// range updates never re-sync the wheels, only user commits move them.
// Single-instant mode drops the end bank and reports a point in time.
type DateRangePicker struct {
	wheels  [colCount]Wheel
	focused int
	active  bool
	ranged  bool
	loc     *time.Location
	now     func() time.Time
}

// NewDateRangePicker seeds the picker from start/end in loc. Days lists
// the next `days` days starting today. Minutes snap to the coarse grid.
func NewDateRangePicker(start, end time.Time, days, itemHeight int, timings wheel.Timings, loc *time.Location) DateRangePicker {
	today := start
	dayItems := schedule.DayOptions(today, days)
	hourItems := schedule.HourOptions()
	minuteItems := schedule.MinuteOptions()

	p := DateRangePicker{loc: loc, now: time.Now, ranged: true}
	mk := func(id, title string, items []wheel.Item) Wheel {
		return NewWheel(id, title, items, itemHeight, timings)
	}
	p.wheels[colStartDay] = mk("start-day", "Day", dayItems).Seed(start.Format(schedule.DayValueLayout))
	p.wheels[colStartHour] = mk("start-hour", "HH", hourItems).Seed(fmt.Sprintf("%02d", start.Hour()))
	p.wheels[colStartMinute] = mk("start-min", "MM", minuteItems).Seed(fmt.Sprintf("%02d", schedule.SnapMinute(start.Minute())))
	p.wheels[colEndDay] = mk("end-day", "Day", dayItems).Seed(end.Format(schedule.DayValueLayout))
	p.wheels[colEndHour] = mk("end-hour", "HH", hourItems).Seed(fmt.Sprintf("%02d", end.Hour()))
	p.wheels[colEndMinute] = mk("end-min", "MM", minuteItems).Seed(fmt.Sprintf("%02d", schedule.SnapMinute(end.Minute())))
	return p
}

// WithClock overrides the time source of every wheel for tests.
func (p DateRangePicker) WithClock(now func() time.Time) DateRangePicker {
	p.now = now
	for i := range p.wheels {
		p.wheels[i] = p.wheels[i].WithClock(now)
	}
	return p
}

// SingleInstant switches the picker to a point-in-time editor: the end
// bank disappears, focus cycles over the three start wheels, and the
// reported range collapses to Start == End.
func (p DateRangePicker) SingleInstant() DateRangePicker {
	p.ranged = false
	if p.focused >= colEndDay {
		focused := p.wheels[p.focused].Focused()
		p.wheels[p.focused] = p.wheels[p.focused].Blur()
		p.focused = colStartDay
		if focused {
			p.wheels[p.focused] = p.wheels[p.focused].Focus()
		}
	}
	return p
}

// Ranged reports whether the end bank is shown.
func (p DateRangePicker) Ranged() bool {
	return p.ranged
}

// Activate gives the picker keyboard focus, starting on the first wheel.
func (p DateRangePicker) Activate() DateRangePicker {
	p.active = true
	p.wheels[p.focused] = p.wheels[p.focused].Focus()
	return p
}

// Deactivate removes focus from the picker.
func (p DateRangePicker) Deactivate() DateRangePicker {
	p.active = false
	p.wheels[p.focused] = p.wheels[p.focused].Blur()
	return p
}

// Active reports whether the picker owns the keyboard.
func (p DateRangePicker) Active() bool {
	return p.active
}

// Update routes keys and ticks to the wheels and reacts to commits.
func (p DateRangePicker) Update(msg tea.Msg) (DateRangePicker, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && p.active {
		switch key.String() {
		case "left", "h":
			return p.moveFocus(-1), nil
		case "right", "l", "tab":
			return p.moveFocus(1), nil
		}
	}

	var cmds []tea.Cmd
	changed := false
	for i := 0; i < p.colLimit(); i++ {
		w, cmd, commit := p.wheels[i].Update(msg)
		p.wheels[i] = w
		if cmd != nil {
			cmds = append(cmds, cmd)
		}
		if commit != nil {
			changed = true
			if cmd := p.afterCommit(i); cmd != nil {
				cmds = append(cmds, cmd)
			}
		}
	}
	if changed {
		// A commit over malformed wheel values composes to the zero
		// range; that never reaches the parent.
		if r := p.Range(); !r.Start.IsZero() {
			cmds = append(cmds, func() tea.Msg { return RangeChangedMsg{Range: r} })
		}
	}
	return p, tea.Batch(cmds...)
}

// afterCommit applies the cross-wheel rule: a start-day commit that
// passes the end day pushes the end-day wheel forward. End-day commits
// are left alone — an end behind the start reads as a wrap past
// midnight.
func (p *DateRangePicker) afterCommit(col int) tea.Cmd {
	if !p.ranged || col != colStartDay {
		return nil
	}
	startDay := p.wheels[colStartDay].Value()
	endDay := p.wheels[colEndDay].Value()
	corrected := schedule.CorrectEndDay(startDay, endDay)
	if corrected == endDay {
		return nil
	}
	w, cmd := p.wheels[colEndDay].SetValue(corrected)
	p.wheels[colEndDay] = w
	return cmd
}

func (p DateRangePicker) moveFocus(delta int) DateRangePicker {
	limit := p.colLimit()
	p.wheels[p.focused] = p.wheels[p.focused].Blur()
	p.focused = (p.focused + delta + limit) % limit
	p.wheels[p.focused] = p.wheels[p.focused].Focus()
	return p
}

// colLimit is the number of live wheels: all six, or just the start
// bank in single-instant mode.
func (p DateRangePicker) colLimit() int {
	if p.ranged {
		return colCount
	}
	return colEndDay
}

// Range composes the current wheel values. Malformed values fall back to
// the zero range rather than erroring mid-interaction.
func (p DateRangePicker) Range() Range {
	start, err := schedule.Compose(
		p.wheels[colStartDay].Value(), p.wheels[colStartHour].Value(), p.wheels[colStartMinute].Value(), p.loc)
	if err != nil {
		return Range{}
	}
	if !p.ranged {
		return Range{Start: start, End: start}
	}
	end, err := schedule.Compose(
		p.wheels[colEndDay].Value(), p.wheels[colEndHour].Value(), p.wheels[colEndMinute].Value(), p.loc)
	if err != nil {
		return Range{}
	}
	return Range{Start: start, End: end}
}

// DurationLabel renders the shift length, treating an end before the
// start as a wrap past midnight.
func (p DateRangePicker) DurationLabel() string {
	if !p.ranged {
		return ""
	}
	r := p.Range()
	if r.Start.IsZero() && r.End.IsZero() {
		return ""
	}
	return fmt.Sprintf("%.1fh shift", schedule.DurationHours(r.Start, r.End))
}

// View renders both wheel banks side by side with the duration under.
// Single-instant mode renders the start bank alone.
func (p DateRangePicker) View() string {
	start := lipgloss.JoinHorizontal(lipgloss.Top,
		p.wheels[colStartDay].View(), p.wheels[colStartHour].View(), p.wheels[colStartMinute].View())
	if !p.ranged {
		return lipgloss.JoinVertical(lipgloss.Left, styles.Subtitle.Render("When"), start)
	}
	end := lipgloss.JoinHorizontal(lipgloss.Top,
		p.wheels[colEndDay].View(), p.wheels[colEndHour].View(), p.wheels[colEndMinute].View())
	banks := lipgloss.JoinHorizontal(lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, styles.Subtitle.Render("Start"), start),
		"  ",
		lipgloss.JoinVertical(lipgloss.Left, styles.Subtitle.Render("End"), end),
	)
	return lipgloss.JoinVertical(lipgloss.Left, banks, styles.Price.Render(p.DurationLabel()))
}
