package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ritikas/giftpool/internal/models"
	"github.com/ritikas/giftpool/internal/sse"
)

func TestCoworkerCreate(t *testing.T) {
	store := newTestStore(t)
	svc := NewCoworkerService(store, sse.NewHub())
	ctx := context.Background()

	t.Run("with birthday", func(t *testing.T) {
		coworker, err := svc.Create(ctx, "Alice", &models.Date{Month: time.June, Day: 15})
		if err != nil {
			t.Fatalf("Create failed: %v", err)
		}
		if coworker.ID == "" {
			t.Error("Expected ID to be generated")
		}
		if coworker.Birthday == nil {
			t.Error("Expected birthday to be kept")
		}
	})

	t.Run("empty name rejected", func(t *testing.T) {
		if _, err := svc.Create(ctx, "", nil); !errors.Is(err, ErrNameRequired) {
			t.Errorf("Create error = %v, want ErrNameRequired", err)
		}
	})

	t.Run("impossible date rejected", func(t *testing.T) {
		if _, err := svc.Create(ctx, "Bob", &models.Date{Month: time.April, Day: 31}); !errors.Is(err, ErrInvalidBirthday) {
			t.Errorf("Create error = %v, want ErrInvalidBirthday", err)
		}
	})

	t.Run("create broadcasts coworkers snapshot", func(t *testing.T) {
		hub := sse.NewHub()
		svc := NewCoworkerService(store, hub)
		client := hub.Register()
		defer hub.Unregister(client)

		if _, err := svc.Create(ctx, "Carol", nil); err != nil {
			t.Fatalf("Create failed: %v", err)
		}

		select {
		case snapshot := <-client.Outbound:
			if snapshot.Collection != sse.CollectionCoworkers {
				t.Errorf("collection = %s, want coworkers", snapshot.Collection)
			}
		default:
			t.Error("no snapshot broadcast after create")
		}
	})
}

func TestCoworkerRegister(t *testing.T) {
	store := newTestStore(t)
	svc := NewCoworkerService(store, sse.NewHub())
	ctx := context.Background()

	coworker, err := svc.Register(ctx, "Self Starter")
	if err != nil {
		t.Fatalf("Register failed: %v", err)
	}
	if coworker.Birthday != nil {
		t.Errorf("Birthday = %+v, want nil for self-registered contributor", coworker.Birthday)
	}

	if _, err := svc.Register(ctx, ""); !errors.Is(err, ErrNameRequired) {
		t.Errorf("Register error = %v, want ErrNameRequired", err)
	}
}

func TestCoworkerUpdate(t *testing.T) {
	store := newTestStore(t)
	svc := NewCoworkerService(store, sse.NewHub())
	ctx := context.Background()

	coworker, err := svc.Create(ctx, "Dave", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	updated, err := svc.Update(ctx, coworker.ID, "David", &models.Date{Month: time.April, Day: 1})
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Name != "David" || updated.Birthday == nil {
		t.Errorf("updated = %+v, want David with birthday", updated)
	}

	if _, err := svc.Update(ctx, "no-such-id", "X", nil); !errors.Is(err, ErrCoworkerNotFound) {
		t.Errorf("Update error = %v, want ErrCoworkerNotFound", err)
	}
}

func TestCoworkerDelete(t *testing.T) {
	store := newTestStore(t)
	hub := sse.NewHub()
	coworkers := NewCoworkerService(store, hub)
	contributions := NewContributionService(store, sse.NewHub())
	ctx := context.Background()

	rita, err := coworkers.Create(ctx, "Rita", &models.Date{Month: time.June, Day: 15})
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	xavier, err := coworkers.Create(ctx, "Xavier", nil)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}
	if _, err := contributions.Advance(ctx, rita.ID, 2025, xavier.ID, 100); err != nil {
		t.Fatalf("Advance failed: %v", err)
	}

	client := hub.Register()
	defer hub.Unregister(client)

	if err := coworkers.Delete(ctx, xavier.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	// Xavier's contribution entry went with the record.
	contribution, err := store.GetContribution(ctx, rita.ID, 2025)
	if err != nil {
		t.Fatalf("GetContribution failed: %v", err)
	}
	if contribution != nil {
		t.Errorf("contribution = %+v, want nil after cascade", contribution)
	}

	// Both collections re-broadcast.
	seen := map[sse.Collection]bool{}
	for i := 0; i < 2; i++ {
		select {
		case snapshot := <-client.Outbound:
			seen[snapshot.Collection] = true
		default:
			t.Fatalf("expected 2 snapshots after delete, got %d", i)
		}
	}
	if !seen[sse.CollectionCoworkers] || !seen[sse.CollectionContributions] {
		t.Errorf("snapshots seen = %v, want coworkers and contributions", seen)
	}

	if err := coworkers.Delete(ctx, "no-such-id"); !errors.Is(err, ErrCoworkerNotFound) {
		t.Errorf("Delete error = %v, want ErrCoworkerNotFound", err)
	}
}
