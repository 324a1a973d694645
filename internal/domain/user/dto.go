package user

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r LoginRequest) Validate() error {
	var errs validator.ValidationErrors
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Password) {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "is required"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RegisterRequest creates a new user. Admin-only; a missing role defaults
// to employee.
type RegisterRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Password    string `json:"password"`
	Role        string `json:"role,omitempty"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	JoiningDate string `json:"joining_date,omitempty"`
}

func (r RegisterRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if !validator.IsValidEmail(r.Email) {
		errs = append(errs, validator.ValidationError{Field: "email", Message: "must be a valid email address"})
	}
	if validator.IsEmpty(r.Phone) {
		errs = append(errs, validator.ValidationError{Field: "phone", Message: "is required"})
	}
	if len(r.Password) < 6 {
		errs = append(errs, validator.ValidationError{Field: "password", Message: "must be at least 6 characters"})
	}
	if validator.IsEmpty(r.Department) {
		errs = append(errs, validator.ValidationError{Field: "department", Message: "is required"})
	}
	if validator.IsEmpty(r.Designation) {
		errs = append(errs, validator.ValidationError{Field: "designation", Message: "is required"})
	}
	if r.Role != "" {
		if _, err := ParseRole(r.Role); err != nil {
			errs = append(errs, validator.ValidationError{Field: "role", Message: "must be employee or admin"})
		}
	}
	if r.JoiningDate != "" {
		if _, ok := validator.IsValidDate(r.JoiningDate); !ok {
			errs = append(errs, validator.ValidationError{Field: "joining_date", Message: "must be YYYY-MM-DD"})
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateProfileRequest is the self-service edit path. Role, email and
// balances are deliberately absent.
type UpdateProfileRequest struct {
	Name             *string           `json:"name,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Address          *string           `json:"address,omitempty"`
	ProfileImage     *string           `json:"profile_image,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password"`
	NewPassword     string `json:"new_password"`
}

func (r ChangePasswordRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.CurrentPassword) {
		errs = append(errs, validator.ValidationError{Field: "current_password", Message: "is required"})
	}
	if len(r.NewPassword) < 6 {
		errs = append(errs, validator.ValidationError{Field: "new_password", Message: "must be at least 6 characters"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdateEmployeeRequest is the admin edit path. Role is immutable here as
// well; partial update semantics (nil means untouched).
type UpdateEmployeeRequest struct {
	ID               string            `json:"-"`
	Name             *string           `json:"name,omitempty"`
	Phone            *string           `json:"phone,omitempty"`
	Department       *string           `json:"department,omitempty"`
	Designation      *string           `json:"designation,omitempty"`
	Address          *string           `json:"address,omitempty"`
	IsActive         *bool             `json:"is_active,omitempty"`
	EmergencyContact *EmergencyContact `json:"emergency_contact,omitempty"`
}

type TokenResponse struct {
	Token     string       `json:"token"`
	ExpiresAt int64        `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// UserResponse is the wire shape of a user; the password hash never
// leaves the service layer.
type UserResponse struct {
	ID               string             `json:"id"`
	Name             string             `json:"name"`
	Email            string             `json:"email"`
	Phone            string             `json:"phone"`
	Role             Role               `json:"role"`
	Department       string             `json:"department"`
	Designation      string             `json:"designation"`
	JoiningDate      string             `json:"joining_date"`
	LeaveBalance     map[string]float64 `json:"leave_balance"`
	IsActive         bool               `json:"is_active"`
	ProfileImage     string             `json:"profile_image,omitempty"`
	Address          string             `json:"address,omitempty"`
	EmergencyContact EmergencyContact   `json:"emergency_contact"`
	CreatedAt        time.Time          `json:"created_at"`
}

func ToResponse(u User) UserResponse {
	return UserResponse{
		ID:               u.ID,
		Name:             u.Name,
		Email:            u.Email,
		Phone:            u.Phone,
		Role:             u.Role,
		Department:       u.Department,
		Designation:      u.Designation,
		JoiningDate:      u.JoiningDate.Format("2006-01-02"),
		LeaveBalance:     u.LeaveBalance,
		IsActive:         u.IsActive,
		ProfileImage:     u.ProfileImage,
		Address:          u.Address,
		EmergencyContact: u.EmergencyContact,
		CreatedAt:        u.CreatedAt,
	}
}
