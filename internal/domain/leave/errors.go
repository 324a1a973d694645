package leave

import "errors"

var (
	ErrRequestNotFound     = errors.New("leave request not found")
	ErrAlreadyProcessed    = errors.New("leave request already processed")
	ErrInsufficientBalance = errors.New("insufficient leave balance")
	ErrUnknownLeaveType    = errors.New("unknown leave type code")
	ErrInvalidDateRange    = errors.New("end date cannot be before start date")
	ErrLeaveTypeNotFound   = errors.New("leave type not found")
	ErrLeaveTypeExists     = errors.New("leave type with this name or code already exists")
)
