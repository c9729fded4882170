// Package storage provides abstractions for persistent data storage.
package storage

import (
	"context"

	"github.com/ritikas/giftpool/internal/models"
)

// Store defines the interface for the ledger store: coworkers, contribution
// cycles, the payment-info singleton, and the organizer claim. This
// abstraction allows swapping storage backends (SQLite, PostgreSQL, etc.)
// without changing the service layer.
type Store interface {
	// CreateCoworker persists a new coworker. The coworker.ID field will
	// be populated by the store if empty.
	CreateCoworker(ctx context.Context, coworker *models.Coworker) error

	// GetCoworker retrieves a coworker by ID. Returns nil, nil when the
	// coworker does not exist.
	GetCoworker(ctx context.Context, id string) (*models.Coworker, error)

	// ListCoworkers retrieves all coworkers ordered by creation time.
	ListCoworkers(ctx context.Context) ([]models.Coworker, error)

	// UpdateCoworker replaces the name and birthday of an existing
	// coworker. Returns an error if the coworker is not found.
	UpdateCoworker(ctx context.Context, coworker *models.Coworker) error

	// DeleteCoworker removes the coworker and, atomically in the same
	// transaction, every contribution entry that references it as
	// recipient or contributor. Partial application is never observable.
	DeleteCoworker(ctx context.Context, id string) error

	// GetContribution retrieves one contribution cycle. Returns nil, nil
	// when no entry exists for the (recipient, year) pair yet.
	GetContribution(ctx context.Context, recipientID string, year int) (*models.Contribution, error)

	// ListContributions retrieves every contribution cycle.
	ListContributions(ctx context.Context) ([]models.Contribution, error)

	// SetContributorEntry merges one contributor's entry into the cycle,
	// creating the cycle lazily on first write.
	SetContributorEntry(ctx context.Context, recipientID string, year int, contributorID string, entry models.ContributorEntry) error

	// GetPaymentInfo retrieves the payment-info singleton. Returns
	// nil, nil until it has been set.
	GetPaymentInfo(ctx context.Context) (*models.PaymentInfo, error)

	// SetPaymentInfo overwrites the payment-info singleton wholesale.
	SetPaymentInfo(ctx context.Context, info models.PaymentInfo) error

	// ClaimOrganizer attempts a create-if-absent write of uid as the
	// organizer claim and returns the uid that actually holds the claim
	// afterwards. The first writer wins; later calls are reads.
	ClaimOrganizer(ctx context.Context, uid string) (string, error)

	// GetOrganizer returns the organizer claim, or nil, nil when no
	// claim exists yet.
	GetOrganizer(ctx context.Context) (*models.OrganizerClaim, error)

	// Close releases any resources held by the store.
	Close() error
}
