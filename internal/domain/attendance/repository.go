package attendance

import (
	"context"
	"time"
)

// AttendanceRepository - interface for the attendances table
type AttendanceRepository interface {
	Create(ctx context.Context, att Attendance) (Attendance, error)
	GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*Attendance, error)
	ListByUser(ctx context.Context, userID string, filter RangeFilter) ([]Attendance, error)
	ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]Attendance, error)
	// ListOpenForDate returns records with a punch-in and no punch-out on
	// the given calendar day.
	ListOpenForDate(ctx context.Context, date time.Time) ([]Attendance, error)
	Update(ctx context.Context, att Attendance) error
	// ClosePunchOut sets the punch-out fields of an open record. Returns
	// false when the record was already closed (punch_out no longer NULL),
	// which makes concurrent sweeps and re-runs idempotent.
	ClosePunchOut(ctx context.Context, att Attendance) (bool, error)
	DeleteByUser(ctx context.Context, userID string) error
}

type AttendanceService interface {
	PunchIn(ctx context.Context, userID string, req PunchRequest) (Attendance, error)
	PunchOut(ctx context.Context, userID string, req PunchRequest) (Attendance, error)
	MyAttendance(ctx context.Context, userID string, filter RangeFilter) ([]Attendance, error)
	TodayStatus(ctx context.Context, userID string) (TodayStatusResponse, error)
	Calendar(ctx context.Context, userID string, year int, month time.Month) (map[int]Status, error)
	// RunAutoPunchOut force-closes today's open records at the configured
	// sweep time. Idempotent per day; best-effort per record.
	RunAutoPunchOut(ctx context.Context) (SweepResult, error)
}
