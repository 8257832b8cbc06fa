package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDayOptions(t *testing.T) {
	t.Run("Should label the first two days Today and Tomorrow", func(t *testing.T) {
		today := time.Date(2026, 2, 11, 15, 30, 0, 0, time.UTC)

		opts := DayOptions(today, 60)

		require.Len(t, opts, 60)
		assert.Equal(t, "Today", opts[0].Label)
		assert.Equal(t, "2026-02-11", opts[0].Value)
		assert.Equal(t, "Tomorrow", opts[1].Label)
		assert.Equal(t, "2026-02-12", opts[1].Value)
		assert.Equal(t, "Fri, Feb 13", opts[2].Label)
	})

	t.Run("Should roll across month boundaries", func(t *testing.T) {
		today := time.Date(2026, 1, 31, 0, 0, 0, 0, time.UTC)

		opts := DayOptions(today, 3)

		assert.Equal(t, "2026-02-01", opts[1].Value)
	})
}

func TestSnapMinute(t *testing.T) {
	t.Run("Should round to the nearest quarter hour with wraparound", func(t *testing.T) {
		cases := map[int]int{
			0: 0, 7: 0, 8: 15, 15: 15, 22: 15, 23: 30,
			30: 30, 37: 30, 38: 45, 45: 45, 52: 45, 53: 0, 59: 0,
		}
		for raw, want := range cases {
			assert.Equal(t, want, SnapMinute(raw), "minute=%d", raw)
		}
	})
}

func TestCompose(t *testing.T) {
	t.Run("Should build an instant from wheel values", func(t *testing.T) {
		got, err := Compose("2026-02-14", "22", "30", time.UTC)

		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 2, 14, 22, 30, 0, 0, time.UTC), got)
	})

	t.Run("Should reject malformed combinations", func(t *testing.T) {
		_, err := Compose("2026-02-31x", "22", "30", time.UTC)

		assert.Error(t, err)
	})
}

func TestCorrectEndDay(t *testing.T) {
	t.Run("Should advance the end day when it precedes the start day", func(t *testing.T) {
		assert.Equal(t, "2026-02-20", CorrectEndDay("2026-02-20", "2026-02-15"))
	})

	t.Run("Should leave an end day on or after the start day untouched", func(t *testing.T) {
		assert.Equal(t, "2026-02-20", CorrectEndDay("2026-02-15", "2026-02-20"))
		assert.Equal(t, "2026-02-15", CorrectEndDay("2026-02-15", "2026-02-15"))
	})
}

func TestDurationHours(t *testing.T) {
	t.Run("Should compute a plain positive duration", func(t *testing.T) {
		start := time.Date(2026, 2, 14, 22, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 15, 0, 30, 0, 0, time.UTC)

		assert.InDelta(t, 2.5, DurationHours(start, end), 1e-9)
	})

	t.Run("Should wrap a negative duration past midnight", func(t *testing.T) {
		start := time.Date(2026, 2, 14, 22, 0, 0, 0, time.UTC)
		end := time.Date(2026, 2, 14, 2, 0, 0, 0, time.UTC)

		assert.InDelta(t, 4.0, DurationHours(start, end), 1e-9)
	})
}
