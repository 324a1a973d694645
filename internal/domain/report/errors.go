package report

import "errors"

var ErrUnknownCollection = errors.New("unknown export collection")
