package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Should load defaults when no environment is set", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.Offer.Duration)
		assert.Equal(t, 700, cfg.Offer.LaunchPrice)
		assert.Equal(t, 5*time.Second, cfg.Carousel.Interval)
		assert.Equal(t, 80*time.Millisecond, cfg.Wheel.SettleDebounce)
		assert.Equal(t, 32, cfg.Wheel.ItemHeight)
		assert.Equal(t, "super_admin", cfg.Demo.DefaultRole)
	})

	t.Run("Should apply CLUBOS_ environment overrides", func(t *testing.T) {
		t.Setenv("CLUBOS_OFFER_DURATION", "48h")
		t.Setenv("CLUBOS_CAROUSEL_INTERVAL", "2s")
		t.Setenv("CLUBOS_DEMO_DEFAULT_ROLE", "manager")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 48*time.Hour, cfg.Offer.Duration)
		assert.Equal(t, 2*time.Second, cfg.Carousel.Interval)
		assert.Equal(t, "manager", cfg.Demo.DefaultRole)
	})

	t.Run("Should accept extended duration syntax", func(t *testing.T) {
		t.Setenv("CLUBOS_OFFER_DURATION", "3d")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, 72*time.Hour, cfg.Offer.Duration)
	})

	t.Run("Should reject invalid log level", func(t *testing.T) {
		t.Setenv("CLUBOS_LOG_LEVEL", "loud")

		_, err := Load()

		assert.Error(t, err)
	})

	t.Run("Should reject malformed durations", func(t *testing.T) {
		t.Setenv("CLUBOS_WHEEL_SNAP_DURATION", "soon")

		_, err := Load()

		assert.Error(t, err)
	})
}

func TestTransformEnvKey(t *testing.T) {
	t.Run("Should split section from the first underscore only", func(t *testing.T) {
		assert.Equal(t, "offer.duration", transformEnvKey("OFFER_DURATION"))
		assert.Equal(t, "wheel.settle_debounce", transformEnvKey("WHEEL_SETTLE_DEBOUNCE"))
		assert.Equal(t, "log.level", transformEnvKey("LOG_LEVEL"))
	})
}
