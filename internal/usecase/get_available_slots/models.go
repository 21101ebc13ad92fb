package get_available_slots

import "time"

// Request asks for the free slots of one day and wash type.
type Request struct {
	Date        time.Time // midnight of the requested day, offset as sent by the client
	ServiceType string    // "SIMPLE" or "COMPLETE"
}

// Response lists the admissible start times for the day.
type Response struct {
	Date            time.Time
	WashType        string
	DurationMinutes int
	Slots           []Slot
}

// Slot is one admissible start time.
type Slot struct {
	StartTime string // "15:04"
}
