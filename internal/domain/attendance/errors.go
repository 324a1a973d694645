package attendance

import "errors"

var (
	ErrAlreadyPunchedIn  = errors.New("already punched in today")
	ErrNotPunchedIn      = errors.New("punch in before punching out")
	ErrAlreadyPunchedOut = errors.New("already punched out today")
	ErrNotFound          = errors.New("attendance record not found")
)
