package schedules

import "errors"

var (
	// ErrScheduleNotFound is returned when no schedule matches the id.
	ErrScheduleNotFound = errors.New("schedules.service: schedule not found")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("schedules.service: invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("schedules.service: internal error")
)
