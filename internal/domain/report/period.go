package report

import "time"

// PayrollPeriod returns the recurring 6th-to-5th accounting window that
// contains the reference date. On or after the 6th the period is
// [6th this month, 5th next month]; before the 6th it is
// [6th last month, 5th this month]. The end is inclusive end-of-day.
func PayrollPeriod(ref time.Time) (start, end time.Time) {
	y, m, d := ref.Date()
	loc := ref.Location()

	if d >= 6 {
		start = time.Date(y, m, 6, 0, 0, 0, 0, loc)
		end = time.Date(y, m+1, 5, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	} else {
		start = time.Date(y, m-1, 6, 0, 0, 0, 0, loc)
		end = time.Date(y, m, 5, 23, 59, 59, int(time.Second-time.Nanosecond), loc)
	}
	return start, end
}

// WorkingDays counts the days in [start, end] that are neither weekend
// days nor present in the holiday set (keys "2006-01-02").
func WorkingDays(start, end time.Time, holidays map[string]bool) int {
	count := 0
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	last := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, end.Location())

	for !day.After(last) {
		wd := day.Weekday()
		if wd != time.Saturday && wd != time.Sunday && !holidays[day.Format("2006-01-02")] {
			count++
		}
		day = day.AddDate(0, 0, 1)
	}
	return count
}

// HolidaySet builds the lookup used by WorkingDays.
func HolidaySet(dates []time.Time) map[string]bool {
	set := make(map[string]bool, len(dates))
	for _, d := range dates {
		set[d.Format("2006-01-02")] = true
	}
	return set
}
