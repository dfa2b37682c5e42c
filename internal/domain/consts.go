package domain

// SkipReason tells why a scheduled check did not run for a given date.
type SkipReason int

const (
	SkipNone SkipReason = iota
	SkipWeekend
	SkipHoliday
)

func (r SkipReason) String() string {
	switch r {
	case SkipWeekend:
		return "weekend"
	case SkipHoliday:
		return "holiday"
	default:
		return "none"
	}
}

// Trigger identifies one of the two recurring check triggers.
type Trigger string

const (
	TriggerDaily       Trigger = "dailyCheck"
	TriggerPreviousDay Trigger = "previousDayCheck"
)

// DateLayout is the calendar-date format used everywhere dates cross a
// boundary (store, commands, webhook payloads).
const DateLayout = "2006-01-02"

// TimeLayout is the wall-clock format stored alongside verification dates.
const TimeLayout = "15:04:05"
