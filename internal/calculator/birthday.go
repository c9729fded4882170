// Package calculator holds the pure computations of the gift pool: resolving
// recurring birthdays, filtering the upcoming window, aggregating contribution
// summaries, and advancing the pledge state machine. Nothing in this package
// touches storage or performs I/O; every function is a projection of its
// inputs and calling it twice with the same inputs yields the same output.
package calculator

import (
	"sort"
	"time"

	"github.com/ritikas/giftpool/internal/models"
)

// WindowDays is how far ahead the upcoming-birthday window reaches.
const WindowDays = 30

// NextBirthday resolves the next occurrence of a recurring month/day on or
// after today. Today itself counts as upcoming. A Feb 29 birthday resolved
// against a non-leap year normalizes to Mar 1 (time.Date normalization); that
// is the one explicit leap-day policy this package implements.
func NextBirthday(birthday models.Date, today time.Time) time.Time {
	today = truncateToDay(today)
	candidate := time.Date(today.Year(), birthday.Month, birthday.Day, 0, 0, 0, 0, today.Location())
	if candidate.Before(today) {
		candidate = time.Date(today.Year()+1, birthday.Month, birthday.Day, 0, 0, 0, 0, today.Location())
	}
	return candidate
}

// UpcomingBirthday pairs a coworker with their resolved next birthday.
type UpcomingBirthday struct {
	Coworker models.Coworker
	Date     time.Time
}

// Upcoming returns the coworkers whose next birthday falls within
// [today, today+WindowDays], both ends inclusive, ordered ascending by
// resolved date. Coworkers without a stored birthday are skipped. Ties keep
// input order.
func Upcoming(coworkers []models.Coworker, today time.Time) []UpcomingBirthday {
	today = truncateToDay(today)
	end := today.AddDate(0, 0, WindowDays)

	var out []UpcomingBirthday
	for _, cw := range coworkers {
		if cw.Birthday == nil {
			continue
		}
		next := NextBirthday(*cw.Birthday, today)
		if next.After(end) {
			continue
		}
		out = append(out, UpcomingBirthday{Coworker: cw, Date: next})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.Before(out[j].Date)
	})
	return out
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
