package offer

import (
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRemaining(t *testing.T) {
	deadline := time.Date(2026, 2, 14, 0, 0, 0, 0, time.UTC)

	t.Run("Should decrease monotonically before the deadline", func(t *testing.T) {
		t1 := deadline.Add(-2 * time.Hour)
		t2 := deadline.Add(-1 * time.Hour)

		assert.Greater(t, Remaining(deadline, t1), Remaining(deadline, t2))
		assert.Positive(t, Remaining(deadline, t2))
	})

	t.Run("Should clamp to exactly zero at and after the deadline", func(t *testing.T) {
		assert.Zero(t, Remaining(deadline, deadline))
		assert.Zero(t, Remaining(deadline, deadline.Add(time.Hour)))

		clock := ClockFrom(Remaining(deadline, deadline.Add(time.Minute)))
		assert.True(t, clock.IsZero())
		assert.Equal(t, "00:00:00", clock.String())
	})
}

func TestClockFrom(t *testing.T) {
	t.Run("Should split a 72h window into uncapped hours", func(t *testing.T) {
		clock := ClockFrom(72*time.Hour - time.Second)

		assert.Equal(t, Clock{Hours: 71, Minutes: 59, Seconds: 59}, clock)
		assert.Equal(t, "71:59:59", clock.String())
	})

	t.Run("Should zero-pad every field", func(t *testing.T) {
		clock := ClockFrom(3*time.Hour + 7*time.Minute + 9*time.Second)

		assert.Equal(t, "03:07:09", clock.String())
	})
}

func TestSessionStore(t *testing.T) {
	const duration = 72 * time.Hour

	t.Run("Should return the identical deadline within a session", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
		store := NewSessionStore(fs, "/tmp", "sess-a", func() time.Time { return now })

		first, err := store.GetOrCreate(duration)
		require.NoError(t, err)

		// A reload later in the session reads the stored value instead of
		// recomputing from its own clock.
		later := NewSessionStore(fs, "/tmp", "sess-a", func() time.Time { return now.Add(time.Hour) })
		second, err := later.GetOrCreate(duration)
		require.NoError(t, err)

		assert.Equal(t, first.UnixMilli(), second.UnixMilli())
		assert.Equal(t, now.Add(duration).UnixMilli(), first.UnixMilli())
	})

	t.Run("Should give a new session a fresh later deadline", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
		first, err := NewSessionStore(fs, "/tmp", "sess-a", func() time.Time { return now }).
			GetOrCreate(duration)
		require.NoError(t, err)

		newNow := now.Add(30 * time.Minute)
		second, err := NewSessionStore(fs, "/tmp", "sess-b", func() time.Time { return newNow }).
			GetOrCreate(duration)
		require.NoError(t, err)

		assert.True(t, second.After(first))
		assert.Equal(t, newNow.Add(duration).UnixMilli(), second.UnixMilli())
	})

	t.Run("Should recreate the deadline when the stored value is garbage", func(t *testing.T) {
		fs := afero.NewMemMapFs()
		now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
		store := NewSessionStore(fs, "/tmp", "sess-a", func() time.Time { return now })
		require.NoError(t, afero.WriteFile(fs, "/tmp/clubos-offer-sess-a", []byte("not-a-number"), 0o600))

		deadline, err := store.GetOrCreate(duration)

		require.NoError(t, err)
		assert.Equal(t, now.Add(duration).UnixMilli(), deadline.UnixMilli())
	})

	t.Run("Should surface write failures so callers can fall back", func(t *testing.T) {
		fs := afero.NewReadOnlyFs(afero.NewMemMapFs())
		store := NewSessionStore(fs, "/tmp", "sess-a", nil)

		_, err := store.GetOrCreate(duration)

		assert.Error(t, err)
	})
}

func TestMemoryStore(t *testing.T) {
	t.Run("Should create once and return the same deadline after", func(t *testing.T) {
		now := time.Date(2026, 2, 11, 12, 0, 0, 0, time.UTC)
		calls := 0
		store := NewMemoryStore(func() time.Time {
			calls++
			return now.Add(time.Duration(calls) * time.Minute)
		})

		first, err := store.GetOrCreate(time.Hour)
		require.NoError(t, err)
		second, err := store.GetOrCreate(time.Hour)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestSessionKey(t *testing.T) {
	t.Run("Should prefer the explicit session variable", func(t *testing.T) {
		key := SessionKey(func(name string) string {
			if name == "CLUBOS_SESSION" {
				return "shell/1234"
			}
			return ""
		})

		assert.Equal(t, "shell-1234", key)
	})

	t.Run("Should produce a non-empty key with no environment at all", func(t *testing.T) {
		key := SessionKey(func(string) string { return "" })

		assert.NotEmpty(t, key)
	})
}

func TestRevealState(t *testing.T) {
	t.Run("Should transition one-way from hidden to revealed", func(t *testing.T) {
		var s RevealState
		assert.False(t, s.Revealed())

		assert.True(t, s.Reveal())
		assert.True(t, s.Revealed())
	})

	t.Run("Should be idempotent once revealed", func(t *testing.T) {
		var s RevealState
		s.Reveal()

		assert.False(t, s.Reveal())
		assert.True(t, s.Revealed())
	})

	t.Run("Should keep the overlay independent of reveal state", func(t *testing.T) {
		var s RevealState

		s.OpenOverlay()
		assert.True(t, s.OverlayOpen())
		assert.False(t, s.Revealed())

		s.Reveal()
		s.CloseOverlay()
		assert.False(t, s.OverlayOpen())
		assert.True(t, s.Revealed())
	})
}
