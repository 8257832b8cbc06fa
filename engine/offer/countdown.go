package offer

import (
	"fmt"
	"time"
)

// Remaining returns the time left until deadline, clamped at zero.
func Remaining(deadline, now time.Time) time.Duration {
	remaining := deadline.Sub(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

// Clock is a zero-padded HH:MM:SS breakdown of a remaining duration.
type Clock struct {
	Hours   int
	Minutes int
	Seconds int
}

// ClockFrom splits a remaining duration into clock fields. Hours are not
// capped at 24 (a 72h offer starts at 71:59:59).
func ClockFrom(remaining time.Duration) Clock {
	totalSecs := int(remaining / time.Second)
	return Clock{
		Hours:   totalSecs / 3600,
		Minutes: totalSecs % 3600 / 60,
		Seconds: totalSecs % 60,
	}
}

// String renders the clock as zero-padded HH:MM:SS.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hours, c.Minutes, c.Seconds)
}

// IsZero reports whether the clock reads 00:00:00.
func (c Clock) IsZero() bool {
	return c.Hours == 0 && c.Minutes == 0 && c.Seconds == 0
}
