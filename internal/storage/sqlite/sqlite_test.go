package sqlite

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ritikas/giftpool/internal/models"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()

	tempDir, err := os.MkdirTemp("", "giftpool-test-*")
	if err != nil {
		t.Fatalf("Failed to create temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(tempDir) })

	store, err := New(filepath.Join(tempDir, "test.db"))
	if err != nil {
		t.Fatalf("Failed to create store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	return store
}

func TestCoworkers(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	t.Run("CreateCoworker generates ID and CreatedAt", func(t *testing.T) {
		coworker := &models.Coworker{
			Name:     "Alice",
			Birthday: &models.Date{Month: time.June, Day: 15},
		}

		if err := store.CreateCoworker(ctx, coworker); err != nil {
			t.Fatalf("CreateCoworker failed: %v", err)
		}
		if coworker.ID == "" {
			t.Error("Expected coworker ID to be generated")
		}
		if coworker.CreatedAt == 0 {
			t.Error("Expected CreatedAt to be set")
		}
	})

	t.Run("GetCoworker round-trips the birthday", func(t *testing.T) {
		original := &models.Coworker{
			Name:     "Bob",
			Birthday: &models.Date{Month: time.December, Day: 25},
		}
		if err := store.CreateCoworker(ctx, original); err != nil {
			t.Fatalf("CreateCoworker failed: %v", err)
		}

		retrieved, err := store.GetCoworker(ctx, original.ID)
		if err != nil {
			t.Fatalf("GetCoworker failed: %v", err)
		}
		if retrieved == nil {
			t.Fatal("GetCoworker returned nil for existing coworker")
		}
		if retrieved.Name != "Bob" {
			t.Errorf("Name = %s, want Bob", retrieved.Name)
		}
		if retrieved.Birthday == nil || retrieved.Birthday.Month != time.December || retrieved.Birthday.Day != 25 {
			t.Errorf("Birthday = %+v, want Dec 25", retrieved.Birthday)
		}
	})

	t.Run("GetCoworker returns nil for missing ID", func(t *testing.T) {
		got, err := store.GetCoworker(ctx, "no-such-id")
		if err != nil {
			t.Fatalf("GetCoworker failed: %v", err)
		}
		if got != nil {
			t.Errorf("GetCoworker = %+v, want nil", got)
		}
	})

	t.Run("coworker without birthday stays nil", func(t *testing.T) {
		contributor := &models.Coworker{Name: "Carol"}
		if err := store.CreateCoworker(ctx, contributor); err != nil {
			t.Fatalf("CreateCoworker failed: %v", err)
		}

		retrieved, err := store.GetCoworker(ctx, contributor.ID)
		if err != nil {
			t.Fatalf("GetCoworker failed: %v", err)
		}
		if retrieved.Birthday != nil {
			t.Errorf("Birthday = %+v, want nil", retrieved.Birthday)
		}
	})

	t.Run("UpdateCoworker replaces name and birthday", func(t *testing.T) {
		coworker := &models.Coworker{Name: "Dave"}
		if err := store.CreateCoworker(ctx, coworker); err != nil {
			t.Fatalf("CreateCoworker failed: %v", err)
		}

		coworker.Name = "David"
		coworker.Birthday = &models.Date{Month: time.April, Day: 1}
		if err := store.UpdateCoworker(ctx, coworker); err != nil {
			t.Fatalf("UpdateCoworker failed: %v", err)
		}

		retrieved, err := store.GetCoworker(ctx, coworker.ID)
		if err != nil {
			t.Fatalf("GetCoworker failed: %v", err)
		}
		if retrieved.Name != "David" {
			t.Errorf("Name = %s, want David", retrieved.Name)
		}
		if retrieved.Birthday == nil || retrieved.Birthday.Month != time.April {
			t.Errorf("Birthday = %+v, want April 1", retrieved.Birthday)
		}
	})

	t.Run("UpdateCoworker on missing ID errors", func(t *testing.T) {
		err := store.UpdateCoworker(ctx, &models.Coworker{ID: "no-such-id", Name: "X"})
		if err == nil {
			t.Error("Expected error for unknown coworker")
		}
	})
}

func TestContributions(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	recipient := &models.Coworker{Name: "Rita", Birthday: &models.Date{Month: time.June, Day: 15}}
	if err := store.CreateCoworker(ctx, recipient); err != nil {
		t.Fatalf("CreateCoworker failed: %v", err)
	}

	t.Run("GetContribution is nil before any entry", func(t *testing.T) {
		got, err := store.GetContribution(ctx, recipient.ID, 2025)
		if err != nil {
			t.Fatalf("GetContribution failed: %v", err)
		}
		if got != nil {
			t.Errorf("GetContribution = %+v, want nil", got)
		}
	})

	t.Run("SetContributorEntry creates cycle lazily and merges", func(t *testing.T) {
		err := store.SetContributorEntry(ctx, recipient.ID, 2025, "x",
			models.ContributorEntry{Amount: 500, Status: models.StatusPledged})
		if err != nil {
			t.Fatalf("SetContributorEntry failed: %v", err)
		}
		err = store.SetContributorEntry(ctx, recipient.ID, 2025, "y",
			models.ContributorEntry{Amount: 200, Status: models.StatusPaid})
		if err != nil {
			t.Fatalf("SetContributorEntry failed: %v", err)
		}

		// Overwrite x's entry; y must be untouched.
		err = store.SetContributorEntry(ctx, recipient.ID, 2025, "x",
			models.ContributorEntry{Amount: 500, Status: models.StatusPaid})
		if err != nil {
			t.Fatalf("SetContributorEntry failed: %v", err)
		}

		got, err := store.GetContribution(ctx, recipient.ID, 2025)
		if err != nil {
			t.Fatalf("GetContribution failed: %v", err)
		}
		if got == nil {
			t.Fatal("GetContribution returned nil after writes")
		}
		if got.BirthdayCoworkerID != recipient.ID || got.Year != 2025 {
			t.Errorf("cycle key = (%s, %d), want (%s, 2025)", got.BirthdayCoworkerID, got.Year, recipient.ID)
		}
		if len(got.Contributors) != 2 {
			t.Fatalf("Contributors count = %d, want 2", len(got.Contributors))
		}
		if got.Contributors["x"].Status != models.StatusPaid || got.Contributors["x"].Amount != 500 {
			t.Errorf("x = %+v, want paid/500", got.Contributors["x"])
		}
		if got.Contributors["y"].Status != models.StatusPaid || got.Contributors["y"].Amount != 200 {
			t.Errorf("y = %+v, want paid/200", got.Contributors["y"])
		}
	})

	t.Run("cycles are scoped by year", func(t *testing.T) {
		err := store.SetContributorEntry(ctx, recipient.ID, 2026, "x",
			models.ContributorEntry{Amount: 100, Status: models.StatusPledged})
		if err != nil {
			t.Fatalf("SetContributorEntry failed: %v", err)
		}

		cycles, err := store.ListContributions(ctx)
		if err != nil {
			t.Fatalf("ListContributions failed: %v", err)
		}
		if len(cycles) != 2 {
			t.Fatalf("ListContributions count = %d, want 2", len(cycles))
		}
	})
}

func TestDeleteCoworkerCascade(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	rita := &models.Coworker{Name: "Rita", Birthday: &models.Date{Month: time.June, Day: 15}}
	sam := &models.Coworker{Name: "Sam", Birthday: &models.Date{Month: time.July, Day: 4}}
	xavier := &models.Coworker{Name: "Xavier"}
	for _, cw := range []*models.Coworker{rita, sam, xavier} {
		if err := store.CreateCoworker(ctx, cw); err != nil {
			t.Fatalf("CreateCoworker failed: %v", err)
		}
	}

	// Xavier contributes to both Rita's and Sam's cycles.
	entries := []struct {
		recipientID   string
		contributorID string
	}{
		{rita.ID, xavier.ID},
		{rita.ID, sam.ID},
		{sam.ID, xavier.ID},
	}
	for _, e := range entries {
		err := store.SetContributorEntry(ctx, e.recipientID, 2025, e.contributorID,
			models.ContributorEntry{Amount: 100, Status: models.StatusPaid})
		if err != nil {
			t.Fatalf("SetContributorEntry failed: %v", err)
		}
	}

	if err := store.DeleteCoworker(ctx, xavier.ID); err != nil {
		t.Fatalf("DeleteCoworker failed: %v", err)
	}

	// Xavier's record is gone.
	got, err := store.GetCoworker(ctx, xavier.ID)
	if err != nil {
		t.Fatalf("GetCoworker failed: %v", err)
	}
	if got != nil {
		t.Error("Expected coworker record to be deleted")
	}

	// Xavier's key is gone from both cycles; Sam's entry survives.
	ritaCycle, err := store.GetContribution(ctx, rita.ID, 2025)
	if err != nil {
		t.Fatalf("GetContribution failed: %v", err)
	}
	if ritaCycle == nil {
		t.Fatal("Rita's cycle vanished entirely")
	}
	if _, ok := ritaCycle.Contributors[xavier.ID]; ok {
		t.Error("Xavier still present in Rita's cycle")
	}
	if _, ok := ritaCycle.Contributors[sam.ID]; !ok {
		t.Error("Sam's entry was lost from Rita's cycle")
	}

	samCycle, err := store.GetContribution(ctx, sam.ID, 2025)
	if err != nil {
		t.Fatalf("GetContribution failed: %v", err)
	}
	if samCycle != nil {
		t.Errorf("Sam's cycle = %+v, want nil (only entry was Xavier's)", samCycle)
	}

	t.Run("deleting a recipient removes their cycles", func(t *testing.T) {
		if err := store.DeleteCoworker(ctx, rita.ID); err != nil {
			t.Fatalf("DeleteCoworker failed: %v", err)
		}
		cycles, err := store.ListContributions(ctx)
		if err != nil {
			t.Fatalf("ListContributions failed: %v", err)
		}
		if len(cycles) != 0 {
			t.Errorf("ListContributions = %+v, want empty", cycles)
		}
	})

	t.Run("deleting a missing coworker errors", func(t *testing.T) {
		if err := store.DeleteCoworker(ctx, "no-such-id"); err == nil {
			t.Error("Expected error for unknown coworker")
		}
	})
}

func TestPaymentInfo(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	got, err := store.GetPaymentInfo(ctx)
	if err != nil {
		t.Fatalf("GetPaymentInfo failed: %v", err)
	}
	if got != nil {
		t.Errorf("GetPaymentInfo = %+v, want nil before first set", got)
	}

	if err := store.SetPaymentInfo(ctx, models.PaymentInfo{Method: "Swish", Details: "070-123 45 67"}); err != nil {
		t.Fatalf("SetPaymentInfo failed: %v", err)
	}

	// Wholesale overwrite.
	if err := store.SetPaymentInfo(ctx, models.PaymentInfo{Method: "MobilePay", Details: "Box 1234"}); err != nil {
		t.Fatalf("SetPaymentInfo failed: %v", err)
	}

	got, err = store.GetPaymentInfo(ctx)
	if err != nil {
		t.Fatalf("GetPaymentInfo failed: %v", err)
	}
	if got == nil || got.Method != "MobilePay" || got.Details != "Box 1234" {
		t.Errorf("GetPaymentInfo = %+v, want MobilePay/Box 1234", got)
	}
}

func TestOrganizerClaim(t *testing.T) {
	store := newTestStore(t)
	ctx := context.Background()

	claim, err := store.GetOrganizer(ctx)
	if err != nil {
		t.Fatalf("GetOrganizer failed: %v", err)
	}
	if claim != nil {
		t.Errorf("GetOrganizer = %+v, want nil before claim", claim)
	}

	winner, err := store.ClaimOrganizer(ctx, "first-session")
	if err != nil {
		t.Fatalf("ClaimOrganizer failed: %v", err)
	}
	if winner != "first-session" {
		t.Errorf("winner = %q, want first-session", winner)
	}

	// A later session's claim attempt must not displace the first.
	winner, err = store.ClaimOrganizer(ctx, "second-session")
	if err != nil {
		t.Fatalf("ClaimOrganizer failed: %v", err)
	}
	if winner != "first-session" {
		t.Errorf("winner = %q, want first-session to keep the claim", winner)
	}

	claim, err = store.GetOrganizer(ctx)
	if err != nil {
		t.Fatalf("GetOrganizer failed: %v", err)
	}
	if claim == nil || claim.OrganizerUID != "first-session" {
		t.Errorf("GetOrganizer = %+v, want first-session", claim)
	}
}
