package attendance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRules(t *testing.T) Rules {
	t.Helper()
	rules, err := NewRules("09:30", "23:30", 9, "Asia/Kolkata")
	require.NoError(t, err)
	return rules
}

func TestParseClockTime(t *testing.T) {
	ct, err := ParseClockTime("09:30")
	require.NoError(t, err)
	assert.Equal(t, 9, ct.Hour)
	assert.Equal(t, 30, ct.Minute)

	for _, bad := range []string{"", "930", "24:00", "09:60", "ab:cd"} {
		_, err := ParseClockTime(bad)
		assert.Error(t, err, bad)
	}
}

func TestClassify(t *testing.T) {
	rules := testRules(t)

	at := func(hour, minute int) time.Time {
		return time.Date(2024, 3, 11, hour, minute, 0, 0, rules.Location)
	}

	status, isLate, lateBy := rules.Classify(at(9, 29))
	assert.Equal(t, StatusPresent, status)
	assert.False(t, isLate)
	assert.Equal(t, 0, lateBy)

	// Exactly at the cutoff counts as late with zero minutes
	status, isLate, lateBy = rules.Classify(at(9, 30))
	assert.Equal(t, StatusLate, status)
	assert.True(t, isLate)
	assert.Equal(t, 0, lateBy)

	status, isLate, lateBy = rules.Classify(at(9, 45))
	assert.Equal(t, StatusLate, status)
	assert.True(t, isLate)
	assert.Equal(t, 15, lateBy)

	status, isLate, lateBy = rules.Classify(at(11, 2))
	assert.Equal(t, StatusLate, status)
	assert.True(t, isLate)
	assert.Equal(t, 92, lateBy)
}

func TestLateByFloorsPartialMinutes(t *testing.T) {
	rules := testRules(t)

	punchIn := time.Date(2024, 3, 11, 9, 35, 59, 0, rules.Location)
	assert.Equal(t, 5, rules.LateBy(punchIn))
}

func TestWorkHours(t *testing.T) {
	rules := testRules(t)

	day := func(hour, minute int) time.Time {
		return time.Date(2024, 3, 11, hour, minute, 0, 0, rules.Location)
	}

	wh, ot := rules.WorkHours(day(9, 0), day(17, 0))
	assert.Equal(t, 8.0, wh)
	assert.Equal(t, 0.0, ot)

	// Exactly the standard shift is not overtime
	wh, ot = rules.WorkHours(day(9, 0), day(18, 0))
	assert.Equal(t, 9.0, wh)
	assert.Equal(t, 0.0, ot)

	wh, ot = rules.WorkHours(day(9, 0), day(18, 30))
	assert.Equal(t, 9.5, wh)
	assert.Equal(t, 0.5, ot)

	// Two-decimal rounding
	wh, ot = rules.WorkHours(day(9, 0), day(17, 20))
	assert.Equal(t, 8.33, wh)
	assert.Equal(t, 0.0, ot)
}
