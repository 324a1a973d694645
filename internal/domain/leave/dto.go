package leave

import (
	"strings"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type ApplyRequest struct {
	LeaveType string `json:"leave_type"`
	StartDate string `json:"start_date"`
	EndDate   string `json:"end_date"`
	HalfDay   bool   `json:"half_day"`
	Reason    string `json:"reason"`
}

func (r ApplyRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.LeaveType) {
		errs = append(errs, validator.ValidationError{Field: "leave_type", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.StartDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "start_date", Message: "must be YYYY-MM-DD"})
	}
	if _, ok := validator.IsValidDate(r.EndDate); !ok {
		errs = append(errs, validator.ValidationError{Field: "end_date", Message: "must be YYYY-MM-DD"})
	}
	if validator.IsEmpty(r.Reason) {
		errs = append(errs, validator.ValidationError{Field: "reason", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// DecisionRequest carries the optional admin comments on approve/reject.
type DecisionRequest struct {
	Comments string `json:"comments,omitempty"`
}

type CreateLeaveTypeRequest struct {
	Name        string  `json:"name"`
	Code        string  `json:"code"`
	Description string  `json:"description,omitempty"`
	DefaultDays float64 `json:"default_days"`
	Color       string  `json:"color,omitempty"`
}

func (r CreateLeaveTypeRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if validator.IsEmpty(r.Code) {
		errs = append(errs, validator.ValidationError{Field: "code", Message: "is required"})
	}
	if r.DefaultDays < 0 {
		errs = append(errs, validator.ValidationError{Field: "default_days", Message: "cannot be negative"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NormalizedCode returns the balance-map key form of the code.
func (r CreateLeaveTypeRequest) NormalizedCode() string {
	return strings.ToUpper(strings.TrimSpace(r.Code))
}

type UpdateLeaveTypeRequest struct {
	ID          string   `json:"-"`
	Name        *string  `json:"name,omitempty"`
	Description *string  `json:"description,omitempty"`
	DefaultDays *float64 `json:"default_days,omitempty"`
	Color       *string  `json:"color,omitempty"`
	IsActive    *bool    `json:"is_active,omitempty"`
}
