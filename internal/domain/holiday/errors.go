package holiday

import "errors"

var (
	ErrNotFound   = errors.New("holiday not found")
	ErrDateExists = errors.New("holiday on this date already exists")
)
