package domain

import "time"

// Window is the time interval a schedule occupies. It is derived from
// the slot start and the wash duration and is never persisted.
type Window struct {
	Start time.Time
	End   time.Time
}

// NewWindow builds the window occupied by a wash starting at start.
func NewWindow(start time.Time, duration time.Duration) Window {
	return Window{Start: start, End: start.Add(duration)}
}
