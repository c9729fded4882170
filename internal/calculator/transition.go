package calculator

import (
	"errors"

	"github.com/ritikas/giftpool/internal/models"
)

// ErrPledgeAmountRequired is returned when the unpaid->pledged edge is taken
// without a positive amount; the entry is left unchanged.
var ErrPledgeAmountRequired = errors.New("pledge requires a positive amount")

// Advance moves a contributor entry one step around the pledge cycle:
//
//	unpaid -> pledged (requires positive pledgeAmount)
//	pledged -> paid   (amount unchanged, pledgeAmount ignored)
//	paid -> unpaid    (amount reset to 0)
//
// There is no skip-ahead edge and no pledged->unpaid edge: once pledged, the
// only way back to unpaid is through paid. That asymmetry is deliberate.
func Advance(entry models.ContributorEntry, pledgeAmount float64) (models.ContributorEntry, error) {
	switch entry.Status {
	case models.StatusPledged:
		return models.ContributorEntry{Amount: entry.Amount, Status: models.StatusPaid}, nil
	case models.StatusPaid:
		return models.ContributorEntry{Amount: 0, Status: models.StatusUnpaid}, nil
	default:
		// Unknown or empty status is treated as unpaid, matching the
		// implicit state of entries missing from the store.
		if pledgeAmount <= 0 {
			return entry, ErrPledgeAmountRequired
		}
		return models.ContributorEntry{Amount: pledgeAmount, Status: models.StatusPledged}, nil
	}
}
