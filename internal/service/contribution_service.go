package service

import (
	"context"
	"log/slog"
	"time"

	"github.com/ritikas/giftpool/internal/calculator"
	"github.com/ritikas/giftpool/internal/models"
	"github.com/ritikas/giftpool/internal/sse"
	"github.com/ritikas/giftpool/internal/storage"
)

// ContributionService tracks pledge/payment state per contribution cycle and
// derives the upcoming-birthday view.
type ContributionService struct {
	store storage.Store
	hub   *sse.Hub

	// now is swappable for tests.
	now func() time.Time
}

// NewContributionService creates a new ContributionService.
func NewContributionService(store storage.Store, hub *sse.Hub) *ContributionService {
	return &ContributionService{store: store, hub: hub, now: time.Now}
}

// List retrieves every contribution cycle.
func (s *ContributionService) List(ctx context.Context) ([]models.Contribution, error) {
	contributions, err := s.store.ListContributions(ctx)
	if err != nil {
		slog.Error("ListContributions failed", "error", err)
		return nil, err
	}
	return contributions, nil
}

// Advance moves one contributor's cell a single step around the pledge cycle
// and merges the result into the store. pledgeAmount is only consulted on the
// unpaid->pledged edge. Any authenticated session may advance any cell, the
// way any cell is clickable in the UI; anonymous identities cannot be bound
// to coworker rows.
func (s *ContributionService) Advance(ctx context.Context, recipientID string, year int, contributorID string, pledgeAmount float64) (models.ContributorEntry, error) {
	slog.Info("Advance contribution request",
		"recipient_id", recipientID,
		"year", year,
		"contributor_id", contributorID,
	)

	if contributorID == recipientID {
		return models.ContributorEntry{}, ErrSelfContribution
	}

	for _, id := range []string{recipientID, contributorID} {
		coworker, err := s.store.GetCoworker(ctx, id)
		if err != nil {
			slog.Error("Advance contribution failed", "coworker_id", id, "error", err)
			return models.ContributorEntry{}, err
		}
		if coworker == nil {
			return models.ContributorEntry{}, ErrCoworkerNotFound
		}
	}

	// Missing entry is the implicit unpaid/0 starting state.
	current := models.ContributorEntry{Status: models.StatusUnpaid}
	contribution, err := s.store.GetContribution(ctx, recipientID, year)
	if err != nil {
		slog.Error("Advance contribution failed", "recipient_id", recipientID, "error", err)
		return models.ContributorEntry{}, err
	}
	if contribution != nil {
		if entry, ok := contribution.Contributors[contributorID]; ok {
			current = entry
		}
	}

	next, err := calculator.Advance(current, pledgeAmount)
	if err != nil {
		return current, err
	}

	if err := s.store.SetContributorEntry(ctx, recipientID, year, contributorID, next); err != nil {
		slog.Error("Advance contribution failed", "recipient_id", recipientID, "error", err)
		return current, err
	}

	slog.Info("Contribution advanced",
		"cycle_id", models.ContributionID(recipientID, year),
		"contributor_id", contributorID,
		"status", next.Status,
	)
	s.broadcastContributions(ctx)
	return next, nil
}

// UpcomingEntry is one upcoming birthday with its cycle state, ready to
// render: every eligible contributor appears in Contributors, implicit unpaid
// cells included.
type UpcomingEntry struct {
	Coworker     models.Coworker                    `json:"coworker"`
	Date         time.Time                          `json:"date"`
	Year         int                                `json:"year"`
	Summary      calculator.Summary                 `json:"summary"`
	Contributors map[string]models.ContributorEntry `json:"contributors"`
}

// Upcoming resolves the 30-day birthday window and attaches each recipient's
// cycle summary. The cycle year is the year the resolved birthday falls in,
// so a January birthday viewed in December already collects for next year.
func (s *ContributionService) Upcoming(ctx context.Context) ([]UpcomingEntry, error) {
	coworkers, err := s.store.ListCoworkers(ctx)
	if err != nil {
		slog.Error("Upcoming failed", "error", err)
		return nil, err
	}

	var entries []UpcomingEntry
	for _, upcoming := range calculator.Upcoming(coworkers, s.now()) {
		year := upcoming.Date.Year()

		contribution, err := s.store.GetContribution(ctx, upcoming.Coworker.ID, year)
		if err != nil {
			slog.Error("Upcoming failed", "recipient_id", upcoming.Coworker.ID, "error", err)
			return nil, err
		}

		contributors := make(map[string]models.ContributorEntry)
		for _, cw := range coworkers {
			if cw.ID == upcoming.Coworker.ID {
				continue
			}
			contributors[cw.ID] = models.ContributorEntry{Status: models.StatusUnpaid}
		}
		if contribution != nil {
			for id, entry := range contribution.Contributors {
				if _, eligible := contributors[id]; eligible {
					// Unpaid cells always display as amount 0.
					entry.Amount = entry.DisplayAmount()
					contributors[id] = entry
				}
			}
		}

		entries = append(entries, UpcomingEntry{
			Coworker:     upcoming.Coworker,
			Date:         upcoming.Date,
			Year:         year,
			Summary:      calculator.Summarize(contribution, len(coworkers)),
			Contributors: contributors,
		})
	}

	return entries, nil
}

func (s *ContributionService) broadcastContributions(ctx context.Context) {
	contributions, err := s.store.ListContributions(ctx)
	if err != nil {
		slog.Error("Contribution snapshot reload failed", "error", err)
		return
	}
	s.hub.Broadcast(sse.Snapshot{Collection: sse.CollectionContributions, Data: contributions})
}
