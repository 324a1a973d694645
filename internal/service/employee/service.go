package employee

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/attendance"
	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
)

type EmployeeServiceImpl struct {
	db             *database.DB
	userRepo       user.UserRepository
	attendanceRepo attendance.AttendanceRepository
	leaveRepo      leave.LeaveRequestRepository
	authService    user.AuthService
}

func NewEmployeeService(db *database.DB, userRepo user.UserRepository, attendanceRepo attendance.AttendanceRepository, leaveRepo leave.LeaveRequestRepository, authService user.AuthService) user.EmployeeService {
	return &EmployeeServiceImpl{
		db:             db,
		userRepo:       userRepo,
		attendanceRepo: attendanceRepo,
		leaveRepo:      leaveRepo,
		authService:    authService,
	}
}

// List implements user.EmployeeService.
func (s *EmployeeServiceImpl) List(ctx context.Context) ([]user.UserResponse, error) {
	employees, err := s.userRepo.ListByRole(ctx, user.RoleEmployee)
	if err != nil {
		return nil, fmt.Errorf("failed to list employees: %w", err)
	}

	responses := make([]user.UserResponse, 0, len(employees))
	for _, u := range employees {
		responses = append(responses, user.ToResponse(u))
	}
	return responses, nil
}

// Create implements user.EmployeeService; same path as registration.
func (s *EmployeeServiceImpl) Create(ctx context.Context, req user.RegisterRequest) (user.UserResponse, error) {
	return s.authService.Register(ctx, req)
}

// Update implements user.EmployeeService.
func (s *EmployeeServiceImpl) Update(ctx context.Context, req user.UpdateEmployeeRequest) (user.UserResponse, error) {
	userData, err := s.userRepo.GetByID(ctx, req.ID)
	if err != nil {
		return user.UserResponse{}, err
	}

	if req.Name != nil {
		userData.Name = *req.Name
	}
	if req.Phone != nil {
		userData.Phone = *req.Phone
	}
	if req.Department != nil {
		userData.Department = *req.Department
	}
	if req.Designation != nil {
		userData.Designation = *req.Designation
	}
	if req.Address != nil {
		userData.Address = *req.Address
	}
	if req.IsActive != nil {
		userData.IsActive = *req.IsActive
	}
	if req.EmergencyContact != nil {
		userData.EmergencyContact = *req.EmergencyContact
	}

	if err := s.userRepo.Update(ctx, userData); err != nil {
		return user.UserResponse{}, fmt.Errorf("failed to update employee: %w", err)
	}
	return user.ToResponse(userData), nil
}

// Delete implements user.EmployeeService. The user row and the user's
// attendance and leave history go in one transaction.
func (s *EmployeeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.userRepo.GetByID(ctx, id); err != nil {
		return err
	}

	return postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		if err := s.attendanceRepo.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete attendance records: %w", err)
		}
		if err := s.leaveRepo.DeleteByUser(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete leave requests: %w", err)
		}
		if err := s.userRepo.Delete(txCtx, id); err != nil {
			return fmt.Errorf("failed to delete user: %w", err)
		}
		return nil
	})
}
