// Package schedule holds the pure date/time math behind the shift
// range picker: wheel option generation, minute snapping, the end-day
// auto-correction rule, and the wrapped duration display heuristic.
package schedule

import (
	"fmt"
	"time"

	"github.com/metaclub/clubos-pitch/engine/wheel"
)

// MinuteInterval is the coarse minute grid shifts snap to.
const MinuteInterval = 15

// DayValueLayout is the wire format of a day wheel value (YYYY-MM-DD).
const DayValueLayout = "2006-01-02"

// DayOptions returns wheel items for the next `days` days starting today,
// labeled "Today", "Tomorrow", then "Mon, Jan 15" style. Values are
// YYYY-MM-DD.
func DayOptions(today time.Time, days int) []wheel.Item {
	today = time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, today.Location())
	items := make([]wheel.Item, 0, days)
	for i := 0; i < days; i++ {
		d := today.AddDate(0, 0, i)
		label := d.Format("Mon, Jan 2")
		switch i {
		case 0:
			label = "Today"
		case 1:
			label = "Tomorrow"
		}
		items = append(items, wheel.Item{Label: label, Value: d.Format(DayValueLayout)})
	}
	return items
}

// HourOptions returns wheel items 00..23.
func HourOptions() []wheel.Item {
	items := make([]wheel.Item, 24)
	for i := range items {
		v := fmt.Sprintf("%02d", i)
		items[i] = wheel.Item{Label: v, Value: v}
	}
	return items
}

// MinuteOptions returns wheel items on the coarse minute grid (00/15/30/45).
func MinuteOptions() []wheel.Item {
	items := make([]wheel.Item, 0, 60/MinuteInterval)
	for m := 0; m < 60; m += MinuteInterval {
		v := fmt.Sprintf("%02d", m)
		items = append(items, wheel.Item{Label: v, Value: v})
	}
	return items
}

// SnapMinute rounds a raw minute to the nearest grid value, wrapping at 60
// (so 53..59 snap to 00, not to a nonexistent 60).
func SnapMinute(minute int) int {
	snapped := (minute + MinuteInterval/2) / MinuteInterval * MinuteInterval
	return snapped % 60
}

// Compose builds an instant from wheel values (day "YYYY-MM-DD", hour "HH",
// minute "MM"). Malformed combinations return an error the caller is
// expected to swallow: sub-picker values are individually valid, so this is
// defensive only.
func Compose(day, hour, minute string, loc *time.Location) (time.Time, error) {
	t, err := time.ParseInLocation(DayValueLayout+"T15:04", day+"T"+hour+":"+minute, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date composition: %w", err)
	}
	return t, nil
}

// CorrectEndDay force-advances the end day to the start day when it would
// precede it. Values compare lexically, which is exact for YYYY-MM-DD.
// An end day already on or after the start day is left untouched.
func CorrectEndDay(startDay, endDay string) string {
	if endDay < startDay {
		return startDay
	}
	return endDay
}

// DurationHours returns the display duration between two instants in hours.
// A negative difference is treated as wrapping past midnight (+24h). This
// is a display heuristic, not calendar arithmetic: multi-day ranges are out
// of scope for the picker.
func DurationHours(start, end time.Time) float64 {
	diff := end.Sub(start).Hours()
	if diff < 0 {
		diff += 24
	}
	return diff
}
