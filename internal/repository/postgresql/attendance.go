package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type attendanceRepository struct {
	db *database.DB
}

func NewAttendanceRepository(db *database.DB) attendance.AttendanceRepository {
	return &attendanceRepository{db: db}
}

const attendanceColumns = `
	id, user_id, date, punch_in, punch_out,
	punch_in_latitude, punch_in_longitude, punch_in_address,
	punch_out_latitude, punch_out_longitude, punch_out_address,
	working_hours, status, is_late, late_by_minutes, overtime_hours,
	notes, is_auto_punch_out, created_at, updated_at
`

func scanAttendance(row pgx.Row) (attendance.Attendance, error) {
	var att attendance.Attendance
	var status string
	err := row.Scan(
		&att.ID, &att.UserID, &att.Date, &att.PunchIn, &att.PunchOut,
		&att.PunchInLocation.Latitude, &att.PunchInLocation.Longitude, &att.PunchInLocation.Address,
		&att.PunchOutLocation.Latitude, &att.PunchOutLocation.Longitude, &att.PunchOutLocation.Address,
		&att.WorkingHours, &status, &att.IsLate, &att.LateByMinutes, &att.OvertimeHours,
		&att.Notes, &att.IsAutoPunchOut, &att.CreatedAt, &att.UpdatedAt,
	)
	if err != nil {
		return attendance.Attendance{}, err
	}
	att.Status = attendance.Status(status)
	return att, nil
}

// Create implements attendance.AttendanceRepository. The unique index on
// (user_id, date) serializes concurrent first punch-ins at the storage
// layer.
func (r *attendanceRepository) Create(ctx context.Context, att attendance.Attendance) (attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	if att.ID == "" {
		att.ID = uuid.NewString()
	}

	query := `
		INSERT INTO attendances (
			id, user_id, date, punch_in,
			punch_in_latitude, punch_in_longitude, punch_in_address,
			status, is_late, late_by_minutes, notes
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		att.ID, att.UserID, att.Date, att.PunchIn,
		att.PunchInLocation.Latitude, att.PunchInLocation.Longitude, att.PunchInLocation.Address,
		string(att.Status), att.IsLate, att.LateByMinutes, att.Notes,
	).Scan(&att.CreatedAt, &att.UpdatedAt)

	if err != nil {
		return attendance.Attendance{}, fmt.Errorf("failed to create attendance: %w", err)
	}

	return att, nil
}

// GetByUserAndDate implements attendance.AttendanceRepository. A nil
// result means no record exists for that day.
func (r *attendanceRepository) GetByUserAndDate(ctx context.Context, userID string, date time.Time) (*attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 AND date = $2 LIMIT 1`

	att, err := scanAttendance(q.QueryRow(ctx, query, userID, date))
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get attendance by user and date: %w", err)
	}
	return &att, nil
}

// ListByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListByUser(ctx context.Context, userID string, filter attendance.RangeFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1`
	args := []interface{}{userID}

	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " ORDER BY date DESC"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListForMonth implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListForMonth(ctx context.Context, userID string, year int, month time.Month) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	last := first.AddDate(0, 1, -1)

	query := `SELECT ` + attendanceColumns + ` FROM attendances WHERE user_id = $1 AND date BETWEEN $2 AND $3 ORDER BY date`

	rows, err := q.Query(ctx, query, userID, first, last)
	if err != nil {
		return nil, fmt.Errorf("failed to list month attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// ListOpenForDate implements attendance.AttendanceRepository.
func (r *attendanceRepository) ListOpenForDate(ctx context.Context, date time.Time) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `SELECT ` + attendanceColumns + ` FROM attendances
		WHERE date = $1 AND punch_in IS NOT NULL AND punch_out IS NULL`

	rows, err := q.Query(ctx, query, date)
	if err != nil {
		return nil, fmt.Errorf("failed to list open attendance: %w", err)
	}
	defer rows.Close()

	return collectAttendances(rows)
}

// Update implements attendance.AttendanceRepository.
func (r *attendanceRepository) Update(ctx context.Context, att attendance.Attendance) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			punch_in = $2, punch_out = $3,
			punch_in_latitude = $4, punch_in_longitude = $5, punch_in_address = $6,
			punch_out_latitude = $7, punch_out_longitude = $8, punch_out_address = $9,
			working_hours = $10, status = $11, is_late = $12, late_by_minutes = $13,
			overtime_hours = $14, notes = $15, is_auto_punch_out = $16, updated_at = NOW()
		WHERE id = $1
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.PunchIn, att.PunchOut,
		att.PunchInLocation.Latitude, att.PunchInLocation.Longitude, att.PunchInLocation.Address,
		att.PunchOutLocation.Latitude, att.PunchOutLocation.Longitude, att.PunchOutLocation.Address,
		att.WorkingHours, string(att.Status), att.IsLate, att.LateByMinutes,
		att.OvertimeHours, att.Notes, att.IsAutoPunchOut,
	)
	if err != nil {
		return fmt.Errorf("failed to update attendance: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return attendance.ErrNotFound
	}
	return nil
}

// ClosePunchOut implements attendance.AttendanceRepository. The
// punch_out IS NULL guard makes sweep re-runs and concurrent sweeps
// skip records another writer already closed.
func (r *attendanceRepository) ClosePunchOut(ctx context.Context, att attendance.Attendance) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE attendances SET
			punch_out = $2,
			punch_out_latitude = $3, punch_out_longitude = $4, punch_out_address = $5,
			working_hours = $6, overtime_hours = $7, is_auto_punch_out = $8,
			updated_at = NOW()
		WHERE id = $1 AND punch_out IS NULL
	`

	tag, err := q.Exec(ctx, query,
		att.ID, att.PunchOut,
		att.PunchOutLocation.Latitude, att.PunchOutLocation.Longitude, att.PunchOutLocation.Address,
		att.WorkingHours, att.OvertimeHours, att.IsAutoPunchOut,
	)
	if err != nil {
		return false, fmt.Errorf("failed to close punch out: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByUser implements attendance.AttendanceRepository.
func (r *attendanceRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM attendances WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete attendance by user: %w", err)
	}
	return nil
}

func collectAttendances(rows pgx.Rows) ([]attendance.Attendance, error) {
	var records []attendance.Attendance
	for rows.Next() {
		att, err := scanAttendance(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance: %w", err)
		}
		records = append(records, att)
	}
	return records, rows.Err()
}
