package attendance

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/jackc/pgx/v5/pgconn"
)

type AttendanceServiceImpl struct {
	attendanceRepo attendance.AttendanceRepository
	rules          attendance.Rules
	logger         *slog.Logger
}

func NewAttendanceService(attendanceRepo attendance.AttendanceRepository, rules attendance.Rules, logger *slog.Logger) attendance.AttendanceService {
	return &AttendanceServiceImpl{
		attendanceRepo: attendanceRepo,
		rules:          rules,
		logger:         logger,
	}
}

// today truncates now to the local calendar day the rules run on.
func (s *AttendanceServiceImpl) today() time.Time {
	now := time.Now().In(s.rules.Location)
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, s.rules.Location)
}

// PunchIn implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchIn(ctx context.Context, userID string, req attendance.PunchRequest) (attendance.Attendance, error) {
	now := time.Now().In(s.rules.Location)
	date := s.today()

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, date)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
	}

	status, isLate, lateBy := s.rules.Classify(now)

	att := attendance.Attendance{
		UserID:        userID,
		Date:          date,
		PunchIn:       &now,
		Status:        status,
		IsLate:        isLate,
		LateByMinutes: lateBy,
	}
	if req.Location != nil {
		att.PunchInLocation = *req.Location
	}

	created, err := s.attendanceRepo.Create(ctx, att)
	if err != nil {
		var pgErr *pgconn.PgError
		// The unique (user_id, date) index closes the check-then-create
		// race between concurrent punch-ins.
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return attendance.Attendance{}, attendance.ErrAlreadyPunchedIn
		}
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}
	return created, nil
}

// PunchOut implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) PunchOut(ctx context.Context, userID string, req attendance.PunchRequest) (attendance.Attendance, error) {
	now := time.Now().In(s.rules.Location)

	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, s.today())
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}
	if existing == nil || existing.PunchIn == nil {
		return attendance.Attendance{}, attendance.ErrNotPunchedIn
	}
	if existing.PunchOut != nil {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedOut
	}

	att := *existing
	att.PunchOut = &now
	if req.Location != nil {
		att.PunchOutLocation = *req.Location
	}
	att.WorkingHours, att.OvertimeHours = s.rules.WorkHours(*att.PunchIn, now)

	closed, err := s.attendanceRepo.ClosePunchOut(ctx, att)
	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to close attendance: %w", err)
	}
	if !closed {
		return attendance.Attendance{}, attendance.ErrAlreadyPunchedOut
	}
	return att, nil
}

// MyAttendance implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) MyAttendance(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	return s.attendanceRepo.ListByUser(ctx, userID, filter)
}

// TodayStatus implements attendance.AttendanceService.
func (s *AttendanceServiceImpl) TodayStatus(ctx context.Context, userID string) (attendance.TodayStatusResponse, error) {
	existing, err := s.attendanceRepo.GetByUserAndDate(ctx, userID, s.today())
	if err != nil {
		return attendance.TodayStatusResponse{}, fmt.Errorf("failed to get today's attendance: %w", err)
	}

	switch {
	case existing == nil:
		return attendance.TodayStatusResponse{Phase: attendance.TodayNotPunched}, nil
	case existing.PunchOut == nil:
		return attendance.TodayStatusResponse{Phase: attendance.TodayPunchedIn, Attendance: existing}, nil
	default:
		return attendance.TodayStatusResponse{Phase: attendance.TodayCompleted, Attendance: existing}, nil
	}
}

// Calendar implements attendance.AttendanceService. Days without a record
// are absent from the map.
func (s *AttendanceServiceImpl) Calendar(ctx context.Context, userID string, year int, month time.Month) (map[int]attendance.Status, error) {
	records, err := s.attendanceRepo.ListForMonth(ctx, userID, year, month)
	if err != nil {
		return nil, fmt.Errorf("failed to list month attendance: %w", err)
	}

	calendar := make(map[int]attendance.Status, len(records))
	for _, att := range records {
		calendar[att.Date.Day()] = att.Status
	}
	return calendar, nil
}

// RunAutoPunchOut implements attendance.AttendanceService. One failing
// record is logged and counted, never aborts the rest of the batch.
func (s *AttendanceServiceImpl) RunAutoPunchOut(ctx context.Context) (attendance.SweepResult, error) {
	date := s.today()
	sweepAt := s.rules.SweepAt.On(date)

	open, err := s.attendanceRepo.ListOpenForDate(ctx, date)
	if err != nil {
		return attendance.SweepResult{}, fmt.Errorf("failed to list open attendances: %w", err)
	}

	var result attendance.SweepResult
	for _, att := range open {
		punchOut := sweepAt
		if att.PunchIn != nil && punchOut.Before(*att.PunchIn) {
			// Punch-in after the sweep time: close at the punch-in so
			// working hours never go negative.
			punchOut = *att.PunchIn
		}

		att.PunchOut = &punchOut
		att.PunchOutLocation = attendance.Location{Address: attendance.AutoPunchOutAddress}
		att.IsAutoPunchOut = true
		att.WorkingHours, att.OvertimeHours = s.rules.WorkHours(*att.PunchIn, punchOut)

		closed, err := s.attendanceRepo.ClosePunchOut(ctx, att)
		if err != nil {
			result.Failed++
			s.logger.Error("auto punch-out failed for record",
				slog.String("attendance_id", att.ID),
				slog.String("user_id", att.UserID),
				slog.Any("error", err))
			continue
		}
		if closed {
			result.Closed++
		}
	}
	return result, nil
}
