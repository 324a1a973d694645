package user

import (
	"fmt"
	"time"
)

// Role is the closed set of authorization roles. Anything else fails
// ParseRole at the boundary.
type Role string

const (
	RoleEmployee Role = "employee"
	RoleAdmin    Role = "admin"
)

func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleEmployee:
		return RoleEmployee, nil
	case RoleAdmin:
		return RoleAdmin, nil
	default:
		return "", fmt.Errorf("unknown role %q", s)
	}
}

type EmergencyContact struct {
	Name     string `json:"name"`
	Phone    string `json:"phone"`
	Relation string `json:"relation"`
}

// User entity. LeaveBalance maps a leave-type code to the remaining days
// for that type; keys are validated against the leave-type catalog when
// balances are seeded or debited.
type User struct {
	ID               string
	Name             string
	Email            string
	Phone            string
	PasswordHash     string
	Role             Role
	Department       string
	Designation      string
	JoiningDate      time.Time
	LeaveBalance     map[string]float64
	IsActive         bool
	ProfileImage     string
	Address          string
	EmergencyContact EmergencyContact
	CreatedAt        time.Time
	UpdatedAt        time.Time
}

// Balance returns the remaining days for a leave-type code. Missing keys
// read as zero.
func (u *User) Balance(code string) float64 {
	if u.LeaveBalance == nil {
		return 0
	}
	return u.LeaveBalance[code]
}
