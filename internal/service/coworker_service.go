package service

import (
	"context"
	"log/slog"

	"github.com/ritikas/giftpool/internal/models"
	"github.com/ritikas/giftpool/internal/sse"
	"github.com/ritikas/giftpool/internal/storage"
)

// CoworkerService manages the coworker collection. Organizer-only operations
// are gated at the transport layer; this service trusts its callers.
type CoworkerService struct {
	store storage.Store
	hub   *sse.Hub
}

// NewCoworkerService creates a new CoworkerService with the given storage
// backend and snapshot hub.
func NewCoworkerService(store storage.Store, hub *sse.Hub) *CoworkerService {
	return &CoworkerService{store: store, hub: hub}
}

// List retrieves all coworkers.
func (s *CoworkerService) List(ctx context.Context) ([]models.Coworker, error) {
	coworkers, err := s.store.ListCoworkers(ctx)
	if err != nil {
		slog.Error("ListCoworkers failed", "error", err)
		return nil, err
	}
	return coworkers, nil
}

// Create adds a coworker with an optional birthday. Organizer operation.
func (s *CoworkerService) Create(ctx context.Context, name string, birthday *models.Date) (*models.Coworker, error) {
	slog.Info("Create coworker request", "name", name, "has_birthday", birthday != nil)

	if name == "" {
		return nil, ErrNameRequired
	}
	if birthday != nil && !birthday.Valid() {
		return nil, ErrInvalidBirthday
	}

	coworker := &models.Coworker{Name: name, Birthday: birthday}
	if err := s.store.CreateCoworker(ctx, coworker); err != nil {
		slog.Error("Create coworker failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Coworker created", "coworker_id", coworker.ID)
	s.broadcastCoworkers(ctx)
	return coworker, nil
}

// Register adds a self-registered contributor-only coworker: name required,
// never a birthday.
func (s *CoworkerService) Register(ctx context.Context, name string) (*models.Coworker, error) {
	slog.Info("Register contributor request", "name", name)

	if name == "" {
		return nil, ErrNameRequired
	}

	coworker := &models.Coworker{Name: name}
	if err := s.store.CreateCoworker(ctx, coworker); err != nil {
		slog.Error("Register contributor failed", "name", name, "error", err)
		return nil, err
	}

	slog.Info("Contributor registered", "coworker_id", coworker.ID)
	s.broadcastCoworkers(ctx)
	return coworker, nil
}

// Update replaces the name and birthday of an existing coworker. Organizer
// operation.
func (s *CoworkerService) Update(ctx context.Context, id, name string, birthday *models.Date) (*models.Coworker, error) {
	slog.Info("Update coworker request", "coworker_id", id)

	if name == "" {
		return nil, ErrNameRequired
	}
	if birthday != nil && !birthday.Valid() {
		return nil, ErrInvalidBirthday
	}

	existing, err := s.store.GetCoworker(ctx, id)
	if err != nil {
		slog.Error("Update coworker failed", "coworker_id", id, "error", err)
		return nil, err
	}
	if existing == nil {
		return nil, ErrCoworkerNotFound
	}

	coworker := &models.Coworker{ID: id, Name: name, Birthday: birthday, CreatedAt: existing.CreatedAt}
	if err := s.store.UpdateCoworker(ctx, coworker); err != nil {
		slog.Error("Update coworker failed", "coworker_id", id, "error", err)
		return nil, err
	}

	slog.Info("Coworker updated", "coworker_id", id)
	s.broadcastCoworkers(ctx)
	return coworker, nil
}

// Delete removes a coworker and every contribution entry referencing it, in
// one atomic store operation. Organizer operation. Both affected collections
// re-broadcast afterwards.
func (s *CoworkerService) Delete(ctx context.Context, id string) error {
	slog.Info("Delete coworker request", "coworker_id", id)

	existing, err := s.store.GetCoworker(ctx, id)
	if err != nil {
		slog.Error("Delete coworker failed", "coworker_id", id, "error", err)
		return err
	}
	if existing == nil {
		return ErrCoworkerNotFound
	}

	if err := s.store.DeleteCoworker(ctx, id); err != nil {
		slog.Error("Delete coworker failed", "coworker_id", id, "error", err)
		return err
	}

	slog.Info("Coworker deleted", "coworker_id", id)
	s.broadcastCoworkers(ctx)
	s.broadcastContributions(ctx)
	return nil
}

// broadcastCoworkers reloads the collection and pushes a snapshot. A reload
// failure only costs the snapshot; the write that triggered it has already
// succeeded.
func (s *CoworkerService) broadcastCoworkers(ctx context.Context) {
	coworkers, err := s.store.ListCoworkers(ctx)
	if err != nil {
		slog.Error("Coworker snapshot reload failed", "error", err)
		return
	}
	s.hub.Broadcast(sse.Snapshot{Collection: sse.CollectionCoworkers, Data: coworkers})
}

func (s *CoworkerService) broadcastContributions(ctx context.Context) {
	contributions, err := s.store.ListContributions(ctx)
	if err != nil {
		slog.Error("Contribution snapshot reload failed", "error", err)
		return
	}
	s.hub.Broadcast(sse.Snapshot{Collection: sse.CollectionContributions, Data: contributions})
}
