package report

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/holiday"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/export"
)

type ReportServiceImpl struct {
	reportRepo  report.ReportRepository
	userRepo    user.UserRepository
	holidayRepo holiday.HolidayRepository
	leaveRepo   leave.LeaveRequestRepository
	location    *time.Location
}

func NewReportService(reportRepo report.ReportRepository, userRepo user.UserRepository, holidayRepo holiday.HolidayRepository, leaveRepo leave.LeaveRequestRepository, location *time.Location) report.ReportService {
	return &ReportServiceImpl{
		reportRepo:  reportRepo,
		userRepo:    userRepo,
		holidayRepo: holidayRepo,
		leaveRepo:   leaveRepo,
		location:    location,
	}
}

// AttendanceReport implements report.ReportService.
func (s *ReportServiceImpl) AttendanceReport(ctx context.Context, filter report.AttendanceReportFilter) ([]attendance.Attendance, error) {
	return s.reportRepo.ListAttendance(ctx, filter)
}

// PayrollSummary implements report.ReportService. One row per employee
// over the payroll period containing referenceDate; absents are the
// working days the employee has no present or late record for.
func (s *ReportServiceImpl) PayrollSummary(ctx context.Context, referenceDate time.Time) (report.PayrollSummary, error) {
	start, end := report.PayrollPeriod(referenceDate.In(s.location))

	holidays, err := s.holidayRepo.ListBetween(ctx, start, end)
	if err != nil {
		return report.PayrollSummary{}, fmt.Errorf("failed to list holidays: %w", err)
	}
	holidayDates := make([]time.Time, 0, len(holidays))
	for _, h := range holidays {
		holidayDates = append(holidayDates, h.Date)
	}
	workingDays := report.WorkingDays(start, end, report.HolidaySet(holidayDates))

	employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return report.PayrollSummary{}, fmt.Errorf("failed to list employees: %w", err)
	}

	totals, err := s.reportRepo.TotalsByUser(ctx, start, end)
	if err != nil {
		return report.PayrollSummary{}, fmt.Errorf("failed to aggregate attendance: %w", err)
	}

	rows := make([]report.PayrollSummaryRow, 0, len(employees))
	for _, emp := range employees {
		t := totals[emp.ID]
		absents := workingDays - t.Presents
		if absents < 0 {
			absents = 0
		}
		rows = append(rows, report.PayrollSummaryRow{
			EmployeeID:       emp.ID,
			Name:             emp.Name,
			Email:            emp.Email,
			Department:       emp.Department,
			TotalWorkingDays: workingDays,
			Presents:         t.Presents,
			Absents:          absents,
			LateArrivals:     t.LateArrivals,
			OvertimeHours:    t.OvertimeHours,
			LeaveBalance:     emp.LeaveBalance,
		})
	}

	return report.PayrollSummary{
		Period:  report.PeriodResponse{StartDate: start, EndDate: end},
		Summary: rows,
	}, nil
}

// ExportCSV implements report.ReportService for the attendance, leave and
// employee collections.
func (s *ReportServiceImpl) ExportCSV(ctx context.Context, collection string) ([]byte, string, error) {
	stamp := time.Now().In(s.location).Format("2006-01-02")

	switch collection {
	case "attendance":
		records, err := s.reportRepo.ListAttendance(ctx, report.AttendanceReportFilter{})
		if err != nil {
			return nil, "", err
		}
		rows := make([][]string, 0, len(records))
		for _, att := range records {
			rows = append(rows, []string{
				att.UserName,
				att.UserEmail,
				att.Date.Format("2006-01-02"),
				formatClock(att.PunchIn),
				formatClock(att.PunchOut),
				strconv.FormatFloat(att.WorkingHours, 'f', 2, 64),
				string(att.Status),
				strconv.FormatBool(att.IsLate),
				strconv.FormatFloat(att.OvertimeHours, 'f', 2, 64),
			})
		}
		data, err := export.CSV([]string{"Name", "Email", "Date", "Punch In", "Punch Out", "Working Hours", "Status", "Late", "Overtime Hours"}, rows)
		if err != nil {
			return nil, "", err
		}
		return data, "attendance-" + stamp + ".csv", nil

	case "leave":
		records, err := s.leaveRepo.ListAll(ctx)
		if err != nil {
			return nil, "", err
		}
		rows := make([][]string, 0, len(records))
		for _, lr := range records {
			rows = append(rows, []string{
				lr.UserName,
				lr.UserDepartment,
				lr.LeaveType,
				lr.StartDate.Format("2006-01-02"),
				lr.EndDate.Format("2006-01-02"),
				strconv.FormatFloat(lr.TotalDays, 'f', 1, 64),
				string(lr.Status),
				lr.Reason,
			})
		}
		data, err := export.CSV([]string{"Name", "Department", "Leave Type", "Start Date", "End Date", "Total Days", "Status", "Reason"}, rows)
		if err != nil {
			return nil, "", err
		}
		return data, "leaves-" + stamp + ".csv", nil

	case "employee":
		employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
		if err != nil {
			return nil, "", err
		}
		rows := make([][]string, 0, len(employees))
		for _, emp := range employees {
			rows = append(rows, []string{
				emp.Name,
				emp.Email,
				emp.Phone,
				emp.Department,
				emp.Designation,
				emp.JoiningDate.Format("2006-01-02"),
				strconv.FormatBool(emp.IsActive),
			})
		}
		data, err := export.CSV([]string{"Name", "Email", "Phone", "Department", "Designation", "Joining Date", "Active"}, rows)
		if err != nil {
			return nil, "", err
		}
		return data, "employees-" + stamp + ".csv", nil

	default:
		return nil, "", report.ErrUnknownCollection
	}
}

// ExportAttendancePDF implements report.ReportService.
func (s *ReportServiceImpl) ExportAttendancePDF(ctx context.Context) ([]byte, string, error) {
	records, err := s.reportRepo.ListAttendance(ctx, report.AttendanceReportFilter{})
	if err != nil {
		return nil, "", err
	}

	sort.SliceStable(records, func(i, j int) bool {
		if !records[i].Date.Equal(records[j].Date) {
			return records[i].Date.After(records[j].Date)
		}
		return records[i].UserName < records[j].UserName
	})

	lines := make([]string, 0, len(records))
	for _, att := range records {
		lines = append(lines, fmt.Sprintf("%s  %s  in %s  out %s  %.2fh  %s",
			att.Date.Format("2006-01-02"),
			att.UserName,
			formatClock(att.PunchIn),
			formatClock(att.PunchOut),
			att.WorkingHours,
			att.Status))
	}

	stamp := time.Now().In(s.location).Format("2006-01-02")
	data, err := export.ListPDF("Attendance Report", lines)
	if err != nil {
		return nil, "", err
	}
	return data, "attendance-" + stamp + ".pdf", nil
}

func formatClock(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("15:04")
}
