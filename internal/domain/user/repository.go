package user

import "context"

// UserRepository - interface for the users table
type UserRepository interface {
	Create(ctx context.Context, u User) (User, error)
	GetByID(ctx context.Context, id string) (User, error)
	GetByEmail(ctx context.Context, email string) (User, error)
	ListByRole(ctx context.Context, role Role) ([]User, error)
	Update(ctx context.Context, u User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	// DecrementLeaveBalance debits days from the given leave-type code.
	// The update is guarded: it matches zero rows when the code is missing
	// from the balance map or the remaining balance is below days.
	DecrementLeaveBalance(ctx context.Context, id, code string, days float64) (bool, error)
	// Delete removes the user and cascades explicit deletes of the user's
	// attendance and leave records.
	Delete(ctx context.Context, id string) error
}

type AuthService interface {
	Login(ctx context.Context, req LoginRequest) (TokenResponse, error)
	Register(ctx context.Context, req RegisterRequest) (UserResponse, error)
	GetProfile(ctx context.Context, userID string) (UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req UpdateProfileRequest) (UserResponse, error)
	ChangePassword(ctx context.Context, userID string, req ChangePasswordRequest) error
}

type EmployeeService interface {
	List(ctx context.Context) ([]UserResponse, error)
	Create(ctx context.Context, req RegisterRequest) (UserResponse, error)
	Update(ctx context.Context, req UpdateEmployeeRequest) (UserResponse, error)
	Delete(ctx context.Context, id string) error
}
