package models

import "time"

// Date is a recurring calendar date. Only month and day carry meaning; the
// year of the original birthday is irrelevant for recurrence.
type Date struct {
	Month time.Month `json:"month"`
	Day   int        `json:"day"`
}

// Valid reports whether the month/day pair is a plausible calendar date.
// Feb 29 is allowed; resolution against a non-leap year is the resolver's job.
func (d Date) Valid() bool {
	if d.Month < time.January || d.Month > time.December {
		return false
	}
	return d.Day >= 1 && d.Day <= daysInMonth(d.Month)
}

func daysInMonth(m time.Month) int {
	switch m {
	case time.February:
		return 29
	case time.April, time.June, time.September, time.November:
		return 30
	default:
		return 31
	}
}

// Coworker represents one member of the office.
type Coworker struct {
	// ID is the unique identifier for the coworker (UUID format).
	ID string `json:"id"`

	// Name is the display name. Never empty.
	Name string `json:"name"`

	// Birthday is nil for contributor-only coworkers who registered
	// themselves and never had a birthday recorded.
	Birthday *Date `json:"birthday,omitempty"`

	// CreatedAt is the Unix timestamp when the coworker was created.
	CreatedAt int64 `json:"createdAt"`
}
