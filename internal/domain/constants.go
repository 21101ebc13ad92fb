package domain

// Washes are booked in fixed 15-minute slot units.
const (
	SlotUnitMinutes = 15

	SimpleWashSlotUnits   = 2 // 30 minutes
	CompleteWashSlotUnits = 3 // 45 minutes
)

// Business hours. A wash may start at 10:00-11:59 and 13:00-18:59;
// the 12:00-12:59 lunch hour is blocked and Saturday/Sunday are closed.
const (
	OpeningHour = 10
	ClosingHour = 18
	LunchHour   = 12
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
	TimeFormat = "15:04"      // HH:MM
)
