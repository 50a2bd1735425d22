// Package database_test tests the activity-log store against a real SQLite
// file with migrations applied.
package database_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/akiratakt/dawnfm/internal/database"

	_ "modernc.org/sqlite"
)

func newTestStore(t *testing.T) database.Store {
	t.Helper()

	db, err := database.NewDB(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	t.Cleanup(func() { database.CloseDB(db) })

	return database.NewStore(db, nil)
}

// TestLogUserIdempotent verifies that re-logging a known user is a no-op and
// the first-seen record wins.
func TestLogUserIdempotent(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	first := &database.UserRecord{
		UserID:    42,
		FirstName: "Abel",
		Username:  "abel",
		StartedAt: time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC),
	}
	if err := store.LogUser(ctx, first); err != nil {
		t.Fatalf("LogUser failed: %v", err)
	}

	// Same user with different profile data must not overwrite.
	second := &database.UserRecord{
		UserID:    42,
		FirstName: "Changed",
		Username:  "changed",
		StartedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
	}
	if err := store.LogUser(ctx, second); err != nil {
		t.Fatalf("LogUser (repeat) failed: %v", err)
	}

	users, err := store.AllUsers(ctx)
	if err != nil {
		t.Fatalf("AllUsers failed: %v", err)
	}
	if len(users) != 1 {
		t.Fatalf("expected 1 user, got %d", len(users))
	}
	got := users[42]
	if got == nil || got.Username != "abel" || got.FirstName != "Abel" {
		t.Errorf("first-seen record not preserved: %+v", got)
	}
}

// TestLogUserValidation verifies nil and zero-id records are rejected.
func TestLogUserValidation(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	ctx := context.Background()

	if err := store.LogUser(ctx, nil); err == nil {
		t.Error("expected error for nil record")
	}
	if err := store.LogUser(ctx, &database.UserRecord{StartedAt: time.Now()}); err == nil {
		t.Error("expected error for zero user_id")
	}
}

// TestAllUsersEmpty verifies the export shape for an empty log.
func TestAllUsersEmpty(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)

	users, err := store.AllUsers(context.Background())
	if err != nil {
		t.Fatalf("AllUsers failed: %v", err)
	}
	if len(users) != 0 {
		t.Errorf("expected empty log, got %d records", len(users))
	}
}

// TestRunMaintenance verifies the maintenance statements execute cleanly.
func TestRunMaintenance(t *testing.T) {
	t.Parallel()

	store := newTestStore(t)
	if err := store.RunMaintenance(context.Background()); err != nil {
		t.Errorf("RunMaintenance failed: %v", err)
	}
}
