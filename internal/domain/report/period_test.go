package report

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPayrollPeriod(t *testing.T) {
	// On or after the 6th: this month's 6th through next month's 5th
	start, end := PayrollPeriod(time.Date(2024, 3, 10, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, 2024, end.Year())
	assert.Equal(t, time.April, end.Month())
	assert.Equal(t, 5, end.Day())
	assert.Equal(t, 23, end.Hour())

	// Before the 6th: last month's 6th through this month's 5th
	start, end = PayrollPeriod(time.Date(2024, 3, 3, 12, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 2, 6, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.March, end.Month())
	assert.Equal(t, 5, end.Day())

	// The 6th itself starts a new period
	start, _ = PayrollPeriod(time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2024, 3, 6, 0, 0, 0, 0, time.UTC), start)

	// January reference rolls back across the year boundary
	start, end = PayrollPeriod(time.Date(2024, 1, 2, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, time.Date(2023, 12, 6, 0, 0, 0, 0, time.UTC), start)
	assert.Equal(t, time.January, end.Month())

	// December reference rolls forward across the year boundary
	_, end = PayrollPeriod(time.Date(2024, 12, 10, 0, 0, 0, 0, time.UTC))
	assert.Equal(t, 2025, end.Year())
	assert.Equal(t, time.January, end.Month())
}

func TestWorkingDays(t *testing.T) {
	// Mon 2024-03-04 through Sun 2024-03-10: five weekdays
	start := time.Date(2024, 3, 4, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, 5, WorkingDays(start, end, nil))

	// A holiday on a weekday drops the count
	holidays := HolidaySet([]time.Time{time.Date(2024, 3, 8, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 4, WorkingDays(start, end, holidays))

	// A holiday on a weekend changes nothing
	holidays = HolidaySet([]time.Time{time.Date(2024, 3, 9, 0, 0, 0, 0, time.UTC)})
	assert.Equal(t, 5, WorkingDays(start, end, holidays))

	// Single weekend day
	assert.Equal(t, 0, WorkingDays(end, end, nil))
}
