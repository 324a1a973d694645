package attendance

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type PunchRequest struct {
	Location *Location `json:"location,omitempty"`
}

type RangeFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
}

func ParseRangeFilter(startDate, endDate string) (RangeFilter, error) {
	var f RangeFilter
	var errs validator.ValidationErrors
	if startDate != "" {
		t, ok := validator.IsValidDate(startDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
		} else {
			f.StartDate = &t
		}
	}
	if endDate != "" {
		t, ok := validator.IsValidDate(endDate)
		if !ok {
			errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
		} else {
			f.EndDate = &t
		}
	}
	if len(errs) > 0 {
		return RangeFilter{}, errs
	}
	return f, nil
}

// TodayPhase is the coarse progress of the current day's record.
type TodayPhase string

const (
	TodayNotPunched TodayPhase = "not-punched"
	TodayPunchedIn  TodayPhase = "punched-in"
	TodayCompleted  TodayPhase = "completed"
)

type TodayStatusResponse struct {
	Phase      TodayPhase  `json:"status"`
	Attendance *Attendance `json:"attendance,omitempty"`
}

// SweepResult reports one run of the auto punch-out sweep. Failed records
// are logged individually and do not abort the batch.
type SweepResult struct {
	Closed int `json:"closed"`
	Failed int `json:"failed"`
}
