package postgresql

import (
	"context"
	"fmt"

	"github.com/attendly/attendance-backend-go/internal/domain/leave"
	"github.com/attendly/attendance-backend-go/internal/pkg/database"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type leaveRequestRepository struct {
	db *database.DB
}

func NewLeaveRequestRepository(db *database.DB) leave.LeaveRequestRepository {
	return &leaveRequestRepository{db: db}
}

// Create implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) Create(ctx context.Context, req leave.LeaveRequest) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	if req.ID == "" {
		req.ID = uuid.NewString()
	}

	query := `
		INSERT INTO leave_requests (
			id, user_id, leave_type, start_date, end_date, total_days,
			half_day, reason, status
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8, $9
		) RETURNING created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		req.ID, req.UserID, req.LeaveType, req.StartDate, req.EndDate, req.TotalDays,
		req.HalfDay, req.Reason, string(req.Status),
	).Scan(&req.CreatedAt, &req.UpdatedAt)

	if err != nil {
		return leave.LeaveRequest{}, fmt.Errorf("failed to create leave request: %w", err)
	}

	return req, nil
}

// GetByID implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) GetByID(ctx context.Context, id string) (leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, total_days,
			   half_day, reason, status, approved_by, approved_at,
			   rejection_reason, notes, created_at, updated_at
		FROM leave_requests
		WHERE id = $1
	`

	req, err := scanLeaveRequest(q.QueryRow(ctx, query, id))
	if err != nil {
		if err == pgx.ErrNoRows {
			return leave.LeaveRequest{}, leave.ErrRequestNotFound
		}
		return leave.LeaveRequest{}, fmt.Errorf("failed to get leave request: %w", err)
	}
	return req, nil
}

// ListByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListByUser(ctx context.Context, userID string) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, user_id, leave_type, start_date, end_date, total_days,
			   half_day, reason, status, approved_by, approved_at,
			   rejection_reason, notes, created_at, updated_at
		FROM leave_requests
		WHERE user_id = $1
		ORDER BY created_at DESC
	`

	rows, err := q.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		req, err := scanLeaveRequest(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// ListAll implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) ListAll(ctx context.Context) ([]leave.LeaveRequest, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT lr.id, lr.user_id, lr.leave_type, lr.start_date, lr.end_date, lr.total_days,
			   lr.half_day, lr.reason, lr.status, lr.approved_by, lr.approved_at,
			   lr.rejection_reason, lr.notes, lr.created_at, lr.updated_at,
			   u.name, u.department
		FROM leave_requests lr
		JOIN users u ON u.id = lr.user_id
		ORDER BY lr.created_at DESC
	`

	rows, err := q.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list all leave requests: %w", err)
	}
	defer rows.Close()

	var requests []leave.LeaveRequest
	for rows.Next() {
		var req leave.LeaveRequest
		var status string
		err := rows.Scan(
			&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays,
			&req.HalfDay, &req.Reason, &status, &req.ApprovedBy, &req.ApprovedAt,
			&req.RejectionReason, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
			&req.UserName, &req.UserDepartment,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan leave request: %w", err)
		}
		req.Status = leave.Status(status)
		requests = append(requests, req)
	}
	return requests, rows.Err()
}

// UpdateStatus implements leave.LeaveRequestRepository. The WHERE guard
// on pending keeps transitions one-way.
func (r *leaveRequestRepository) UpdateStatus(ctx context.Context, req leave.LeaveRequest) (bool, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE leave_requests SET
			status = $2, approved_by = $3, approved_at = $4,
			rejection_reason = $5, notes = $6, updated_at = NOW()
		WHERE id = $1 AND status = $7
	`

	tag, err := q.Exec(ctx, query,
		req.ID, string(req.Status), req.ApprovedBy, req.ApprovedAt,
		req.RejectionReason, req.Notes, string(leave.StatusPending),
	)
	if err != nil {
		return false, fmt.Errorf("failed to update leave request status: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteByUser implements leave.LeaveRequestRepository.
func (r *leaveRequestRepository) DeleteByUser(ctx context.Context, userID string) error {
	q := GetQuerier(ctx, r.db)

	if _, err := q.Exec(ctx, `DELETE FROM leave_requests WHERE user_id = $1`, userID); err != nil {
		return fmt.Errorf("failed to delete leave requests by user: %w", err)
	}
	return nil
}

func scanLeaveRequest(row pgx.Row) (leave.LeaveRequest, error) {
	var req leave.LeaveRequest
	var status string
	err := row.Scan(
		&req.ID, &req.UserID, &req.LeaveType, &req.StartDate, &req.EndDate, &req.TotalDays,
		&req.HalfDay, &req.Reason, &status, &req.ApprovedBy, &req.ApprovedAt,
		&req.RejectionReason, &req.Notes, &req.CreatedAt, &req.UpdatedAt,
	)
	if err != nil {
		return leave.LeaveRequest{}, err
	}
	req.Status = leave.Status(status)
	return req, nil
}
