package report

import (
	"context"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
)

type AttendanceReportFilter struct {
	EmployeeID string
	StartDate  *time.Time
	EndDate    *time.Time
}

type PeriodResponse struct {
	StartDate time.Time `json:"start_date"`
	EndDate   time.Time `json:"end_date"`
}

// PayrollSummaryRow is the per-employee rollup over one payroll period.
type PayrollSummaryRow struct {
	EmployeeID       string             `json:"employee_id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Department       string             `json:"department"`
	TotalWorkingDays int                `json:"total_working_days"`
	Presents         int                `json:"presents"`
	Absents          int                `json:"absents"`
	LateArrivals     int                `json:"late_arrivals"`
	OvertimeHours    float64            `json:"overtime_hours"`
	LeaveBalance     map[string]float64 `json:"leave_balance"`
}

type PayrollSummary struct {
	Period  PeriodResponse      `json:"period"`
	Summary []PayrollSummaryRow `json:"summary"`
}

// AttendanceTotals is the grouped per-user aggregate the summary is
// assembled from.
type AttendanceTotals struct {
	UserID        string
	Presents      int
	LateArrivals  int
	OvertimeHours float64
}

// ReportRepository - read-only aggregation queries
type ReportRepository interface {
	ListAttendance(ctx context.Context, filter AttendanceReportFilter) ([]attendance.Attendance, error)
	// TotalsByUser groups attendance over [start, end] per user: count of
	// present/late days, count of late arrivals, summed overtime.
	TotalsByUser(ctx context.Context, start, end time.Time) (map[string]AttendanceTotals, error)
}

type ReportService interface {
	AttendanceReport(ctx context.Context, filter AttendanceReportFilter) ([]attendance.Attendance, error)
	PayrollSummary(ctx context.Context, referenceDate time.Time) (PayrollSummary, error)
	ExportCSV(ctx context.Context, collection string) ([]byte, string, error)
	ExportAttendancePDF(ctx context.Context) ([]byte, string, error)
}
