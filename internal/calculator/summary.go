package calculator

import "github.com/ritikas/giftpool/internal/models"

// Summary aggregates one contribution cycle.
type Summary struct {
	// PaidCount is how many contributors have status paid.
	PaidCount int `json:"paidCount"`

	// TotalAmount is the sum of paid amounts. Pledged amounts are not yet
	// committed and never count toward the total.
	TotalAmount float64 `json:"totalAmount"`

	// EligibleContributors is every coworker except the recipient,
	// floored at 0 when the recipient is the only coworker.
	EligibleContributors int `json:"eligibleContributors"`

	// Progress is PaidCount over EligibleContributors as a percentage,
	// or 0 when nobody is eligible.
	Progress float64 `json:"progress"`
}

// Summarize computes the cycle summary for a recipient. contribution may be
// nil, meaning no entry exists yet and everyone is implicitly unpaid.
// coworkerCount is the total number of coworkers including the recipient.
func Summarize(contribution *models.Contribution, coworkerCount int) Summary {
	s := Summary{}

	s.EligibleContributors = coworkerCount - 1
	if s.EligibleContributors < 0 {
		s.EligibleContributors = 0
	}

	if contribution != nil {
		for _, entry := range contribution.Contributors {
			if entry.Status == models.StatusPaid {
				s.PaidCount++
				s.TotalAmount += entry.Amount
			}
		}
	}

	if s.EligibleContributors > 0 {
		s.Progress = float64(s.PaidCount) / float64(s.EligibleContributors) * 100
	}
	return s
}
