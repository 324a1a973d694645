package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTotalDays(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2024, 3, d, 0, 0, 0, 0, time.UTC)
	}

	// Inclusive span
	assert.Equal(t, 1.0, TotalDays(day(11), day(11), false))
	assert.Equal(t, 3.0, TotalDays(day(11), day(13), false))

	// Half-day overrides the span
	assert.Equal(t, 0.5, TotalDays(day(11), day(11), true))
	assert.Equal(t, 0.5, TotalDays(day(11), day(13), true))
}

func TestTotalDaysAcrossDSTBoundary(t *testing.T) {
	// A 23-hour or 25-hour calendar day still counts as a whole day
	loc, err := time.LoadLocation("America/New_York")
	assert.NoError(t, err)

	start := time.Date(2024, 3, 9, 0, 0, 0, 0, loc)
	end := time.Date(2024, 3, 11, 0, 0, 0, 0, loc) // spring forward on the 10th
	assert.Equal(t, 3.0, TotalDays(start, end, false))
}
