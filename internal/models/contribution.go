package models

import "fmt"

// Status is the pledge/payment state of one contributor toward one birthday.
type Status string

const (
	StatusUnpaid  Status = "unpaid"
	StatusPledged Status = "pledged"
	StatusPaid    Status = "paid"
)

// Valid reports whether s is one of the three known states.
func (s Status) Valid() bool {
	return s == StatusUnpaid || s == StatusPledged || s == StatusPaid
}

// ContributorEntry is one contributor's state within a contribution cycle.
type ContributorEntry struct {
	// Amount is the pledged or paid amount. Always positive when Status
	// is pledged or paid; treated as 0 for display when unpaid.
	Amount float64 `json:"amount"`

	// Status is the contributor's current state in the pledge cycle.
	Status Status `json:"status"`
}

// DisplayAmount returns the amount as it should be shown: unpaid entries
// always read as 0 regardless of any stored value.
func (e ContributorEntry) DisplayAmount() float64 {
	if e.Status == StatusUnpaid {
		return 0
	}
	return e.Amount
}

// Contribution tracks everyone's pledge/payment state toward one coworker's
// birthday in one calendar year (the contribution cycle).
type Contribution struct {
	// BirthdayCoworkerID is the recipient this cycle collects for.
	BirthdayCoworkerID string `json:"birthdayCoworkerId"`

	// Year is the calendar year of the contribution cycle, not the year
	// the recipient was born.
	Year int `json:"year"`

	// Contributors maps coworker ID to that coworker's entry. A coworker
	// absent from the map is implicitly unpaid with amount 0.
	Contributors map[string]ContributorEntry `json:"contributors"`
}

// ContributionID builds the composite document key for a cycle.
func ContributionID(recipientID string, year int) string {
	return fmt.Sprintf("%s_%d", recipientID, year)
}
