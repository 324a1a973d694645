package master

import (
	"context"
	"errors"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/jackc/pgx/v5/pgconn"
)

type LeaveTypeServiceImpl struct {
	leaveTypeRepo leave.LeaveTypeRepository
}

func NewLeaveTypeService(leaveTypeRepo leave.LeaveTypeRepository) leave.LeaveTypeService {
	return &LeaveTypeServiceImpl{leaveTypeRepo: leaveTypeRepo}
}

// Create implements leave.LeaveTypeService. The code is normalized to its
// balance-map key form before it is stored.
func (s *LeaveTypeServiceImpl) Create(ctx context.Context, req leave.CreateLeaveTypeRequest) (leave.LeaveType, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveType{}, err
	}

	created, err := s.leaveTypeRepo.Create(ctx, leave.LeaveType{
		Name:        req.Name,
		Code:        req.NormalizedCode(),
		Description: req.Description,
		DefaultDays: req.DefaultDays,
		Color:       req.Color,
		IsActive:    true,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return leave.LeaveType{}, leave.ErrLeaveTypeExists
		}
		return leave.LeaveType{}, fmt.Errorf("failed to create leave type: %w", err)
	}
	return created, nil
}

// List implements leave.LeaveTypeService.
func (s *LeaveTypeServiceImpl) List(ctx context.Context, activeOnly bool) ([]leave.LeaveType, error) {
	return s.leaveTypeRepo.List(ctx, activeOnly)
}

// Update implements leave.LeaveTypeService. Code is immutable; existing
// balance maps keep their keys.
func (s *LeaveTypeServiceImpl) Update(ctx context.Context, req leave.UpdateLeaveTypeRequest) (leave.LeaveType, error) {
	leaveType, err := s.leaveTypeRepo.GetByID(ctx, req.ID)
	if err != nil {
		return leave.LeaveType{}, err
	}

	if req.Name != nil {
		leaveType.Name = *req.Name
	}
	if req.Description != nil {
		leaveType.Description = *req.Description
	}
	if req.DefaultDays != nil {
		if *req.DefaultDays < 0 {
			return leave.LeaveType{}, fmt.Errorf("default_days cannot be negative")
		}
		leaveType.DefaultDays = *req.DefaultDays
	}
	if req.Color != nil {
		leaveType.Color = *req.Color
	}
	if req.IsActive != nil {
		leaveType.IsActive = *req.IsActive
	}

	if err := s.leaveTypeRepo.Update(ctx, leaveType); err != nil {
		return leave.LeaveType{}, fmt.Errorf("failed to update leave type: %w", err)
	}
	return leaveType, nil
}

// Delete implements leave.LeaveTypeService. Historical requests reference
// the code by value and survive the delete.
func (s *LeaveTypeServiceImpl) Delete(ctx context.Context, id string) error {
	if _, err := s.leaveTypeRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return s.leaveTypeRepo.Delete(ctx, id)
}
