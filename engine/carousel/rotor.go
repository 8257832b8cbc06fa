// Package carousel implements the rotation state machine behind the
// feature carousel: wraparound index, cosmetic direction, pause semantics,
// and the epoch counter that guarantees a manual interaction always buys a
// full fresh auto-advance interval.
package carousel

// Direction of a slide transition, used only to orient the animation.
type Direction int

const (
	Forward  Direction = 1
	Backward Direction = -1
)

// Rotor tracks the carousel position. The auto-advance timer lives outside
// (the TUI schedules ticks); the rotor decides whether a tick is still
// current via its epoch.
type Rotor struct {
	length    int
	index     int
	direction Direction
	epoch     int
	paused    bool
}

// New creates a rotor over length slides. A zero or negative length yields
// an inert rotor.
func New(length int) *Rotor {
	return &Rotor{length: length, direction: Forward}
}

// Index returns the current slide index.
func (r *Rotor) Index() int {
	return r.index
}

// Direction returns the orientation of the last transition.
func (r *Rotor) Direction() Direction {
	return r.direction
}

// Epoch returns the current timer epoch. Every manual interaction bumps it;
// an auto-advance tick scheduled under an older epoch is stale.
func (r *Rotor) Epoch() int {
	return r.epoch
}

// Paused reports whether auto-advance is suspended.
func (r *Rotor) Paused() bool {
	return r.paused
}

// Len returns the slide count.
func (r *Rotor) Len() int {
	return r.length
}

// AutoAdvance applies the automatic tick scheduled under epoch. Stale
// epochs and the paused state are ignored. Reports whether the index moved.
func (r *Rotor) AutoAdvance(epoch int) bool {
	if r.length == 0 || r.paused || epoch != r.epoch {
		return false
	}
	r.next()
	return true
}

// ManualNext advances one slide and restarts the auto timer.
func (r *Rotor) ManualNext() {
	if r.length == 0 {
		return
	}
	r.next()
	r.epoch++
}

// ManualPrev steps back one slide and restarts the auto timer.
func (r *Rotor) ManualPrev() {
	if r.length == 0 {
		return
	}
	r.direction = Backward
	r.index = (r.index - 1 + r.length) % r.length
	r.epoch++
}

// GoTo jumps directly to index (dot navigation), inferring direction from
// the relative position. Out-of-range targets are ignored.
func (r *Rotor) GoTo(index int) {
	if index < 0 || index >= r.length || index == r.index {
		return
	}
	if index > r.index {
		r.direction = Forward
	} else {
		r.direction = Backward
	}
	r.index = index
	r.epoch++
}

// Swipe interprets a horizontal drag offset against the threshold: a drag
// left beyond it is a manual next, right beyond it a manual previous.
// Reports whether the gesture navigated.
func (r *Rotor) Swipe(offsetX float64, threshold float64) bool {
	switch {
	case offsetX < -threshold:
		r.ManualNext()
		return true
	case offsetX > threshold:
		r.ManualPrev()
		return true
	default:
		return false
	}
}

// Pause suspends auto-advance. The owning timer must be torn down, not
// merely frozen.
func (r *Rotor) Pause() {
	r.paused = true
}

// Resume re-enables auto-advance and bumps the epoch so a stale timer from
// before the pause cannot fire.
func (r *Rotor) Resume() {
	r.paused = false
	r.epoch++
}

func (r *Rotor) next() {
	r.direction = Forward
	r.index = (r.index + 1) % r.length
}
