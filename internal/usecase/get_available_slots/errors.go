package get_available_slots

import "errors"

var (
	// ErrInvalidServiceType is returned for a wash type outside SIMPLE/COMPLETE.
	ErrInvalidServiceType = errors.New("get_available_slots: invalid service type")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("get_available_slots: invalid input data")

	// ErrInternal is returned for repository failures.
	ErrInternal = errors.New("get_available_slots: internal error")
)
