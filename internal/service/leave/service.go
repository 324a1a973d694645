package leave

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/domain/user"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/attendly/attendance-backend-go/internal/repository/postgresql"
)

type LeaveServiceImpl struct {
	db            *database.DB
	leaveRepo     leave.LeaveRequestRepository
	leaveTypeRepo leave.LeaveTypeRepository
	userRepo      user.UserRepository
}

func NewLeaveService(db *database.DB, leaveRepo leave.LeaveRequestRepository, leaveTypeRepo leave.LeaveTypeRepository, userRepo user.UserRepository) leave.LeaveService {
	return &LeaveServiceImpl{
		db:            db,
		leaveRepo:     leaveRepo,
		leaveTypeRepo: leaveTypeRepo,
		userRepo:      userRepo,
	}
}

// Apply implements leave.LeaveService. The balance check here is a gate
// only; nothing is debited until approval.
func (s *LeaveServiceImpl) Apply(ctx context.Context, userID string, req leave.ApplyRequest) (leave.LeaveRequest, error) {
	if err := req.Validate(); err != nil {
		return leave.LeaveRequest{}, err
	}

	start, _ := time.Parse("2006-01-02", req.StartDate)
	end, _ := time.Parse("2006-01-02", req.EndDate)
	if end.Before(start) {
		return leave.LeaveRequest{}, leave.ErrInvalidDateRange
	}

	code := strings.ToUpper(strings.TrimSpace(req.LeaveType))
	leaveType, err := s.leaveTypeRepo.GetByCode(ctx, code)
	if err != nil {
		if errors.Is(err, leave.ErrLeaveTypeNotFound) {
			return leave.LeaveRequest{}, leave.ErrUnknownLeaveType
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave type: %w", err)
	}
	if !leaveType.IsActive {
		return leave.LeaveRequest{}, leave.ErrUnknownLeaveType
	}

	totalDays := leave.TotalDays(start, end, req.HalfDay)

	applicant, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to get applicant: %w", err)
	}
	if applicant.Balance(code) < totalDays {
		return leave.LeaveRequest{}, leave.ErrInsufficientBalance
	}

	created, err := s.leaveRepo.Create(ctx, leave.LeaveRequest{
		UserID:    userID,
		LeaveType: code,
		StartDate: start,
		EndDate:   end,
		TotalDays: totalDays,
		HalfDay:   req.HalfDay,
		Reason:    req.Reason,
		Status:    leave.StatusPending,
	})
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}
	return created, nil
}

// MyLeaves implements leave.LeaveService.
func (s *LeaveServiceImpl) MyLeaves(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListByUser(ctx, userID)
}

// Balance implements leave.LeaveService.
func (s *LeaveServiceImpl) Balance(ctx context.Context, userID string) (map[string]float64, error) {
	userData, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if userData.LeaveBalance == nil {
		return map[string]float64{}, nil
	}
	return userData.LeaveBalance, nil
}

// ListAll implements leave.LeaveService.
func (s *LeaveServiceImpl) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	return s.leaveRepo.ListAll(ctx)
}

// Approve implements leave.LeaveService. The status flip and the balance
// debit commit together or not at all; both statements are guarded so
// two concurrent approvals of the same request settle to exactly one
// decision and one debit.
func (s *LeaveServiceImpl) Approve(ctx context.Context, requestID, approverID string, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	var approved leave.LeaveRequest

	err := postgresql.WithTransaction(ctx, s.db, func(txCtx context.Context) error {
		request, err := s.leaveRepo.GetByID(txCtx, requestID)
		if err != nil {
			return err
		}
		if request.Status != leave.StatusPending {
			return leave.ErrAlreadyProcessed
		}

		debited, err := s.userRepo.DecrementLeaveBalance(txCtx, request.UserID, request.LeaveType, request.TotalDays)
		if err != nil {
			return fmt.Errorf("failed to debit leave balance: %w", err)
		}
		if !debited {
			return leave.ErrInsufficientBalance
		}

		now := time.Now()
		request.Status = leave.StatusApproved
		request.ApprovedBy = &approverID
		request.ApprovedAt = &now
		request.Notes = req.Comments

		updated, err := s.leaveRepo.UpdateStatus(txCtx, request)
		if err != nil {
			return fmt.Errorf("failed to update leave request: %w", err)
		}
		if !updated {
			return leave.ErrAlreadyProcessed
		}

		approved = request
		return nil
	})
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	return approved, nil
}

// Reject implements leave.LeaveService. No balance movement; the guarded
// status update alone keeps the decision one-way.
func (s *LeaveServiceImpl) Reject(ctx context.Context, requestID, approverID string, req leave.DecisionRequest) (leave.LeaveRequest, error) {
	request, err := s.leaveRepo.GetByID(ctx, requestID)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	if request.Status != leave.StatusPending {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}

	now := time.Now()
	request.Status = leave.StatusRejected
	request.ApprovedBy = &approverID
	request.ApprovedAt = &now
	request.RejectionReason = req.Comments

	updated, err := s.leaveRepo.UpdateStatus(ctx, request)
	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to update leave request: %w", err)
	}
	if !updated {
		return leave.LeaveRequest{}, leave.ErrAlreadyProcessed
	}
	return request, nil
}
