package sqlite

import (
	"context"
	"fmt"

	"github.com/ritikas/giftpool/internal/models"
)

// GetContribution retrieves one contribution cycle by (recipient, year).
// Returns nil, nil when no contributor has an entry for the cycle yet.
func (s *SQLiteStore) GetContribution(ctx context.Context, recipientID string, year int) (*models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT contributor_id, amount, status
		 FROM contribution_entries
		 WHERE recipient_id = ? AND year = ?`,
		recipientID, year,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to get contribution: %w", err)
	}
	defer rows.Close()

	var contribution *models.Contribution
	for rows.Next() {
		var contributorID, status string
		var amount float64

		if err := rows.Scan(&contributorID, &amount, &status); err != nil {
			return nil, fmt.Errorf("failed to scan contribution entry: %w", err)
		}

		if contribution == nil {
			contribution = &models.Contribution{
				BirthdayCoworkerID: recipientID,
				Year:               year,
				Contributors:       make(map[string]models.ContributorEntry),
			}
		}
		contribution.Contributors[contributorID] = models.ContributorEntry{
			Amount: amount,
			Status: models.Status(status),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contribution entries: %w", err)
	}

	return contribution, nil
}

// ListContributions retrieves every contribution cycle in the store.
func (s *SQLiteStore) ListContributions(ctx context.Context) ([]models.Contribution, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT recipient_id, year, contributor_id, amount, status
		 FROM contribution_entries
		 ORDER BY recipient_id, year`,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list contributions: %w", err)
	}
	defer rows.Close()

	var contributions []models.Contribution
	var current *models.Contribution
	for rows.Next() {
		var recipientID, contributorID, status string
		var year int
		var amount float64

		if err := rows.Scan(&recipientID, &year, &contributorID, &amount, &status); err != nil {
			return nil, fmt.Errorf("failed to scan contribution entry: %w", err)
		}

		if current == nil || current.BirthdayCoworkerID != recipientID || current.Year != year {
			contributions = append(contributions, models.Contribution{
				BirthdayCoworkerID: recipientID,
				Year:               year,
				Contributors:       make(map[string]models.ContributorEntry),
			})
			current = &contributions[len(contributions)-1]
		}
		current.Contributors[contributorID] = models.ContributorEntry{
			Amount: amount,
			Status: models.Status(status),
		}
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate contribution entries: %w", err)
	}

	return contributions, nil
}

// SetContributorEntry merges one contributor's entry into the cycle. The
// cycle row set is created lazily on first write; other contributors' entries
// are untouched.
func (s *SQLiteStore) SetContributorEntry(ctx context.Context, recipientID string, year int, contributorID string, entry models.ContributorEntry) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO contribution_entries (recipient_id, year, contributor_id, amount, status)
		 VALUES (?, ?, ?, ?, ?)
		 ON CONFLICT (recipient_id, year, contributor_id)
		 DO UPDATE SET amount = excluded.amount, status = excluded.status`,
		recipientID, year, contributorID, entry.Amount, string(entry.Status),
	)
	if err != nil {
		return fmt.Errorf("failed to set contribution entry: %w", err)
	}

	return nil
}
