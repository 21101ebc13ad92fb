package domain

import (
	"errors"
	"time"
)

// WashType determines how many slot units a schedule occupies.
type WashType string

const (
	WashTypeSimple   WashType = "SIMPLE"
	WashTypeComplete WashType = "COMPLETE"
)

// ErrUnknownWashType is returned for wash types outside the closed enum.
var ErrUnknownWashType = errors.New("domain: unknown wash type")

// ParseWashType converts a wire tag into a WashType.
func ParseWashType(s string) (WashType, error) {
	switch WashType(s) {
	case WashTypeSimple:
		return WashTypeSimple, nil
	case WashTypeComplete:
		return WashTypeComplete, nil
	default:
		return "", ErrUnknownWashType
	}
}

// SlotUnits returns the number of 15-minute units the wash occupies,
// or 0 for an unknown type.
func (t WashType) SlotUnits() int {
	switch t {
	case WashTypeSimple:
		return SimpleWashSlotUnits
	case WashTypeComplete:
		return CompleteWashSlotUnits
	default:
		return 0
	}
}

// Duration returns the occupied window length of the wash.
func (t WashType) Duration() time.Duration {
	return time.Duration(t.SlotUnits()) * SlotUnitMinutes * time.Minute
}

// Schedule represents a washing appointment on the shared timeline.
// SlotStart is always normalized to UTC before persistence.
type Schedule struct {
	ID           string
	WashType     WashType
	VehiclePlate string
	SlotStart    time.Time
	Confirmation bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Window returns the time window the schedule occupies.
func (s *Schedule) Window() Window {
	return NewWindow(s.SlotStart, s.WashType.Duration())
}

// ScheduleUpdate carries the fields of a partial update. Nil fields are
// left untouched.
type ScheduleUpdate struct {
	WashType     *WashType
	VehiclePlate *string
	SlotStart    *time.Time
	Confirmation *bool
}
