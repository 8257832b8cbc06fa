package views

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScaledBar(t *testing.T) {
	t.Run("Should scale against the series maximum", func(t *testing.T) {
		assert.Equal(t, 20, scaledBar(50, 40, 100))
	})

	t.Run("Should render an empty bar for an all-zero series", func(t *testing.T) {
		assert.Equal(t, 0, scaledBar(0, 40, 0))
		assert.Equal(t, 0, scaledBar(7, 40, 0))
	})
}

func TestAnalytics_Render(t *testing.T) {
	t.Run("Should render every analytics panel", func(t *testing.T) {
		out := Analytics(100)

		assert.Contains(t, out, "Revenue Trend")
		assert.Contains(t, out, "Peak Hours")
		assert.Contains(t, out, "Event ROI")
		assert.Contains(t, out, "Expense Trend")
	})
}
