package leave

import (
	"math"
	"time"
)

type Status string

const (
	StatusPending  Status = "pending"
	StatusApproved Status = "approved"
	StatusRejected Status = "rejected"
)

// LeaveRequest references its leave type by code, by value: deleting a
// leave type leaves historical requests untouched.
type LeaveRequest struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	LeaveType       string     `json:"leave_type"`
	StartDate       time.Time  `json:"start_date"`
	EndDate         time.Time  `json:"end_date"`
	TotalDays       float64    `json:"total_days"`
	HalfDay         bool       `json:"half_day"`
	Reason          string     `json:"reason"`
	Status          Status     `json:"status"`
	ApprovedBy      *string    `json:"approved_by,omitempty"`
	ApprovedAt      *time.Time `json:"approved_at,omitempty"`
	RejectionReason string     `json:"rejection_reason,omitempty"`
	Notes           string     `json:"notes,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`

	// Joined for admin listing
	UserName       string `json:"user_name,omitempty"`
	UserDepartment string `json:"user_department,omitempty"`
}

// LeaveType catalog entry. Code is the balance-map key, stored
// upper-cased.
type LeaveType struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Code        string    `json:"code"`
	Description string    `json:"description,omitempty"`
	DefaultDays float64   `json:"default_days"`
	Color       string    `json:"color,omitempty"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// TotalDays is the inclusive calendar span of the request, or 0.5 for a
// half-day request.
func TotalDays(start, end time.Time, halfDay bool) float64 {
	if halfDay {
		return 0.5
	}
	days := math.Round(end.Sub(start).Hours()/24) + 1
	return days
}
