package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
)

type reportRepository struct {
	db *database.DB
}

func NewReportRepository(db *database.DB) report.ReportRepository {
	return &reportRepository{db: db}
}

// ListAttendance implements report.ReportRepository. Rows come joined
// with the owning user for display.
func (r *reportRepository) ListAttendance(ctx context.Context, filter report.AttendanceReportFilter) ([]attendance.Attendance, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT a.id, a.user_id, a.date, a.punch_in, a.punch_out,
			   a.working_hours, a.status, a.is_late, a.late_by_minutes,
			   a.overtime_hours, a.is_auto_punch_out, u.name, u.email
		FROM attendances a
		JOIN users u ON u.id = a.user_id
		WHERE 1=1
	`
	var args []interface{}

	if filter.EmployeeID != "" {
		args = append(args, filter.EmployeeID)
		query += fmt.Sprintf(" AND a.user_id = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND a.date >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND a.date <= $%d", len(args))
	}
	query += " ORDER BY a.date DESC, u.name"

	rows, err := q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance report: %w", err)
	}
	defer rows.Close()

	var records []attendance.Attendance
	for rows.Next() {
		var att attendance.Attendance
		var status string
		err := rows.Scan(
			&att.ID, &att.UserID, &att.Date, &att.PunchIn, &att.PunchOut,
			&att.WorkingHours, &status, &att.IsLate, &att.LateByMinutes,
			&att.OvertimeHours, &att.IsAutoPunchOut, &att.UserName, &att.UserEmail,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan attendance report row: %w", err)
		}
		att.Status = attendance.Status(status)
		records = append(records, att)
	}
	return records, rows.Err()
}

// TotalsByUser implements report.ReportRepository.
func (r *reportRepository) TotalsByUser(ctx context.Context, start, end time.Time) (map[string]report.AttendanceTotals, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT user_id,
			   COUNT(*) FILTER (WHERE status IN ('present', 'late')),
			   COUNT(*) FILTER (WHERE is_late),
			   COALESCE(SUM(overtime_hours), 0)
		FROM attendances
		WHERE date BETWEEN $1 AND $2
		GROUP BY user_id
	`

	rows, err := q.Query(ctx, query, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to query attendance totals: %w", err)
	}
	defer rows.Close()

	totals := make(map[string]report.AttendanceTotals)
	for rows.Next() {
		var t report.AttendanceTotals
		if err := rows.Scan(&t.UserID, &t.Presents, &t.LateArrivals, &t.OvertimeHours); err != nil {
			return nil, fmt.Errorf("failed to scan attendance totals: %w", err)
		}
		totals[t.UserID] = t
	}
	return totals, rows.Err()
}
