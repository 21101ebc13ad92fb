package create_schedule

import "errors"

var (
	// ErrInvalidServiceType is returned for a wash type outside SIMPLE/COMPLETE.
	ErrInvalidServiceType = errors.New("create_schedule: invalid service type")

	// ErrInvalidPlateFormat is returned when the plate is not in the Mercosul format.
	ErrInvalidPlateFormat = errors.New("create_schedule: invalid vehicle plate format")

	// ErrOutsideServiceDay is returned for slots on Saturday or Sunday.
	ErrOutsideServiceDay = errors.New("create_schedule: slot outside service days")

	// ErrOutsideServiceHours is returned for slots outside business hours.
	ErrOutsideServiceHours = errors.New("create_schedule: slot outside service hours")

	// ErrSlotConflict is returned when another wash already occupies the window.
	ErrSlotConflict = errors.New("create_schedule: slot already taken")

	// ErrInvalidInput is returned for malformed request data.
	ErrInvalidInput = errors.New("create_schedule: invalid input data")

	// ErrInternal is returned for repository and infrastructure failures.
	ErrInternal = errors.New("create_schedule: internal error")
)
