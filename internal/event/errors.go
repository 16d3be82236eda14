package event

import "errors"

var (
	ErrEventNotFound    = errors.New("event not found")
	ErrInvalidTimeRange = errors.New("start time must come before end time")
)
