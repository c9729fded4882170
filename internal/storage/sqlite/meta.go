package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/ritikas/giftpool/internal/models"
)

// GetPaymentInfo retrieves the payment-info singleton. Returns nil, nil until
// an organizer has set it.
func (s *SQLiteStore) GetPaymentInfo(ctx context.Context) (*models.PaymentInfo, error) {
	info := &models.PaymentInfo{}

	err := s.db.QueryRowContext(ctx,
		"SELECT method, details FROM payment_info WHERE id = 1",
	).Scan(&info.Method, &info.Details)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get payment info: %w", err)
	}

	return info, nil
}

// SetPaymentInfo overwrites the payment-info singleton wholesale.
func (s *SQLiteStore) SetPaymentInfo(ctx context.Context, info models.PaymentInfo) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO payment_info (id, method, details) VALUES (1, ?, ?)
		 ON CONFLICT (id) DO UPDATE SET method = excluded.method, details = excluded.details`,
		info.Method, info.Details,
	)
	if err != nil {
		return fmt.Errorf("failed to set payment info: %w", err)
	}

	return nil
}

// ClaimOrganizer attempts a create-if-absent write of uid as the organizer
// claim. INSERT OR IGNORE makes the first writer win deterministically even
// under concurrent first sessions; the read-back returns whoever actually
// holds the claim.
func (s *SQLiteStore) ClaimOrganizer(ctx context.Context, uid string) (string, error) {
	_, err := s.db.ExecContext(ctx,
		"INSERT OR IGNORE INTO meta_admin (id, organizer_uid) VALUES (1, ?)",
		uid,
	)
	if err != nil {
		return "", fmt.Errorf("failed to claim organizer: %w", err)
	}

	var winner string
	err = s.db.QueryRowContext(ctx,
		"SELECT organizer_uid FROM meta_admin WHERE id = 1",
	).Scan(&winner)
	if err != nil {
		return "", fmt.Errorf("failed to read organizer claim: %w", err)
	}

	return winner, nil
}

// GetOrganizer returns the organizer claim, or nil, nil when no claim exists.
func (s *SQLiteStore) GetOrganizer(ctx context.Context) (*models.OrganizerClaim, error) {
	claim := &models.OrganizerClaim{}
	err := s.db.QueryRowContext(ctx,
		"SELECT organizer_uid FROM meta_admin WHERE id = 1",
	).Scan(&claim.OrganizerUID)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get organizer claim: %w", err)
	}

	return claim, nil
}
