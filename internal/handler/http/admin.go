package http

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/report"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/handler/http/middleware"
	"github.com/attendly/attendance-backend-go/internal/handler/http/response"
)

// AdminHandler serves the administration surface: employee management,
// leave moderation, reports and exports, and the manual sweep trigger.
type AdminHandler interface {
	ListEmployees(w http.ResponseWriter, r *http.Request)
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	UpdateEmployee(w http.ResponseWriter, r *http.Request)
	DeleteEmployee(w http.ResponseWriter, r *http.Request)
	ListLeaves(w http.ResponseWriter, r *http.Request)
	ApproveLeave(w http.ResponseWriter, r *http.Request)
	RejectLeave(w http.ResponseWriter, r *http.Request)
	AttendanceReport(w http.ResponseWriter, r *http.Request)
	PayrollSummary(w http.ResponseWriter, r *http.Request)
	ExportCSV(w http.ResponseWriter, r *http.Request)
	ExportPDF(w http.ResponseWriter, r *http.Request)
	TriggerAutoPunchOut(w http.ResponseWriter, r *http.Request)
}

type adminHandlerImpl struct {
	employeeService   user.EmployeeService
	leaveService      leave.LeaveService
	reportService     report.ReportService
	attendanceService attendance.AttendanceService
}

func NewAdminHandler(employeeService user.EmployeeService, leaveService leave.LeaveService, reportService report.ReportService, attendanceService attendance.AttendanceService) AdminHandler {
	return &adminHandlerImpl{
		employeeService:   employeeService,
		leaveService:      leaveService,
		reportService:     reportService,
		attendanceService: attendanceService,
	}
}

// ListEmployees implements AdminHandler.
func (h *adminHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// CreateEmployee implements AdminHandler.
func (h *adminHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req user.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// UpdateEmployee implements AdminHandler.
func (h *adminHandlerImpl) UpdateEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req user.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.ID = id

	result, err := h.employeeService.Update(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Employee updated", result)
}

// DeleteEmployee implements AdminHandler.
func (h *adminHandlerImpl) DeleteEmployee(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// ListLeaves implements AdminHandler.
func (h *adminHandlerImpl) ListLeaves(w http.ResponseWriter, r *http.Request) {
	result, err := h.leaveService.ListAll(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, result)
}

// decodeDecision tolerates an empty body; comments are optional.
func decodeDecision(r *http.Request) (leave.DecisionRequest, error) {
	var req leave.DecisionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && err != io.EOF {
		return leave.DecisionRequest{}, err
	}
	return req, nil
}

// ApproveLeave implements AdminHandler.
func (h *adminHandlerImpl) ApproveLeave(w http.ResponseWriter, r *http.Request) {
	approverID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := decodeDecision(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Approve(r.Context(), id, approverID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request approved", result)
}

// RejectLeave implements AdminHandler.
func (h *adminHandlerImpl) RejectLeave(w http.ResponseWriter, r *http.Request) {
	approverID, err := middleware.UserID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	id, err := pathID(r)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	req, err := decodeDecision(r)
	if err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.leaveService.Reject(r.Context(), id, approverID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Leave request rejected", result)
}

// AttendanceReport implements AdminHandler.
func (h *adminHandlerImpl) AttendanceReport(w http.ResponseWriter, r *http.Request) {
	rangeFilter, err := attendance.ParseRangeFilter(r.URL.Query().Get("start_date"), r.URL.Query().Get("end_date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	result, err := h.reportService.AttendanceReport(r.Context(), report.AttendanceReportFilter{
		EmployeeID: r.URL.Query().Get("employee_id"),
		StartDate:  rangeFilter.StartDate,
		EndDate:    rangeFilter.EndDate,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// PayrollSummary implements AdminHandler. ?reference_date=YYYY-MM-DD
// picks the payroll period; defaults to the one containing today.
func (h *adminHandlerImpl) PayrollSummary(w http.ResponseWriter, r *http.Request) {
	referenceDate := time.Now()
	if d := r.URL.Query().Get("reference_date"); d != "" {
		parsed, err := time.Parse("2006-01-02", d)
		if err != nil {
			response.BadRequest(w, "Invalid reference_date, expected YYYY-MM-DD", nil)
			return
		}
		referenceDate = parsed
	}

	result, err := h.reportService.PayrollSummary(r.Context(), referenceDate)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportCSV implements AdminHandler. ?collection=attendance|leave|employee.
func (h *adminHandlerImpl) ExportCSV(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportCSV(r.Context(), r.URL.Query().Get("collection"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, filename, "text/csv", data)
}

// ExportPDF implements AdminHandler.
func (h *adminHandlerImpl) ExportPDF(w http.ResponseWriter, r *http.Request) {
	data, filename, err := h.reportService.ExportAttendancePDF(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.File(w, filename, "application/pdf", data)
}

// TriggerAutoPunchOut implements AdminHandler. Same code path as the
// scheduled sweep, safe to re-run.
func (h *adminHandlerImpl) TriggerAutoPunchOut(w http.ResponseWriter, r *http.Request) {
	result, err := h.attendanceService.RunAutoPunchOut(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Auto punch-out completed", result)
}
