package domain

import (
	"regexp"
	"time"
)

// Mercosul plate pattern: three letters followed by four alphanumerics.
var platePattern = regexp.MustCompile(`^[A-Za-z]{3}[A-Za-z0-9]{4}$`)

// ValidPlate reports whether plate matches the Mercosul format.
func ValidPlate(plate string) bool {
	return platePattern.MatchString(plate)
}

// IsServiceDay reports whether the instant falls on a working day.
// The weekday is taken from the instant's own wall clock, i.e. in the
// offset the client sent it with; only persistence normalizes to UTC.
func IsServiceDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// IsServiceHour reports whether the instant's wall-clock hour is within
// business hours. The lunch hour 12:00-12:59 is blocked; 13:00 is open
// again, and 18:xx starts are still accepted.
func IsServiceHour(t time.Time) bool {
	h := t.Hour()
	if h < OpeningHour || h > ClosingHour {
		return false
	}
	return h != LunchHour
}
