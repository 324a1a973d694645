package leave

import "context"

// LeaveRequestRepository - interface for the leave_requests table
type LeaveRequestRepository interface {
	Create(ctx context.Context, req LeaveRequest) (LeaveRequest, error)
	GetByID(ctx context.Context, id string) (LeaveRequest, error)
	ListByUser(ctx context.Context, userID string) ([]LeaveRequest, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	// UpdateStatus flips a pending request into a terminal state. Returns
	// false when the request had already left pending, making approvals
	// and rejections one-way.
	UpdateStatus(ctx context.Context, req LeaveRequest) (bool, error)
	DeleteByUser(ctx context.Context, userID string) error
}

// LeaveTypeRepository - interface for the leave_types table
type LeaveTypeRepository interface {
	Create(ctx context.Context, lt LeaveType) (LeaveType, error)
	GetByID(ctx context.Context, id string) (LeaveType, error)
	GetByCode(ctx context.Context, code string) (LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, lt LeaveType) error
	Delete(ctx context.Context, id string) error
}

type LeaveTypeService interface {
	Create(ctx context.Context, req CreateLeaveTypeRequest) (LeaveType, error)
	List(ctx context.Context, activeOnly bool) ([]LeaveType, error)
	Update(ctx context.Context, req UpdateLeaveTypeRequest) (LeaveType, error)
	Delete(ctx context.Context, id string) error
}

type LeaveService interface {
	Apply(ctx context.Context, userID string, req ApplyRequest) (LeaveRequest, error)
	MyLeaves(ctx context.Context, userID string) ([]LeaveRequest, error)
	Balance(ctx context.Context, userID string) (map[string]float64, error)
	ListAll(ctx context.Context) ([]LeaveRequest, error)
	Approve(ctx context.Context, requestID, approverID string, req DecisionRequest) (LeaveRequest, error)
	Reject(ctx context.Context, requestID, approverID string, req DecisionRequest) (LeaveRequest, error)
}
