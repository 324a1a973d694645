package holiday

import (
	"time"

	"github.com/attendly/attendance-backend-go/internal/pkg/validator"
)

type Type string

const (
	TypeGovernment Type = "government"
	TypeOptional   Type = "optional"
)

type Holiday struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Date        time.Time `json:"date"`
	Type        Type      `json:"type"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type CreateRequest struct {
	Name        string `json:"name"`
	Date        string `json:"date"`
	Type        string `json:"type,omitempty"`
	Description string `json:"description,omitempty"`
}

func (r CreateRequest) Validate() error {
	var errs validator.ValidationErrors
	if validator.IsEmpty(r.Name) {
		errs = append(errs, validator.ValidationError{Field: "name", Message: "is required"})
	}
	if _, ok := validator.IsValidDate(r.Date); !ok {
		errs = append(errs, validator.ValidationError{Field: "date", Message: "must be YYYY-MM-DD"})
	}
	if r.Type != "" && !validator.IsInSlice(r.Type, []string{string(TypeGovernment), string(TypeOptional)}) {
		errs = append(errs, validator.ValidationError{Field: "type", Message: "must be government or optional"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
