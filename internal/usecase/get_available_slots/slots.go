package get_available_slots

import (
	"time"

	"github.com/tcsoares1914/test-gbi-backend/internal/domain"
)

// generateCandidateStarts lists every quarter-hour start instant within
// the service hours of the given day, in the day's own location.
// The lunch hour is skipped; weekends produce no candidates.
func generateCandidateStarts(date time.Time) []time.Time {
	if !domain.IsServiceDay(date) {
		return nil
	}

	candidates := make([]time.Time, 0, 36)
	for hour := domain.OpeningHour; hour <= domain.ClosingHour; hour++ {
		if hour == domain.LunchHour {
			continue
		}
		for minute := 0; minute < 60; minute += domain.SlotUnitMinutes {
			candidates = append(candidates, time.Date(
				date.Year(), date.Month(), date.Day(),
				hour, minute, 0, 0, date.Location(),
			))
		}
	}
	return candidates
}

// filterFreeStarts keeps the candidates whose would-be window contains
// no existing schedule's start. Same containment rule as admission:
// bounds inclusive, start timestamps only.
func filterFreeStarts(candidates []time.Time, duration time.Duration, existing []*domain.Schedule) []Slot {
	slots := make([]Slot, 0, len(candidates))

	for _, start := range candidates {
		window := domain.NewWindow(start, duration)
		if windowTaken(window, existing) {
			continue
		}
		slots = append(slots, Slot{StartTime: start.Format(domain.TimeFormat)})
	}

	return slots
}

func windowTaken(window domain.Window, existing []*domain.Schedule) bool {
	for _, schedule := range existing {
		start := schedule.SlotStart
		if !start.Before(window.Start) && !start.After(window.End) {
			return true
		}
	}
	return false
}
