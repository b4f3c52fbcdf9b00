// Package testutil provides test utilities for the hearth project:
// in-memory databases with migrations applied and builders for audit
// fixtures.
package testutil

import (
	"context"
	"testing"

	"github.com/google/uuid"

	"github.com/hearthaudit/hearth/internal/model"
	"github.com/hearthaudit/hearth/internal/service"
	"github.com/hearthaudit/hearth/internal/storage"
)

// TestDB wraps an in-memory storage for one test.
type TestDB struct {
	Storage service.Storage
	t       *testing.T
}

// SetupTestDB creates a new in-memory test database with migrations
// applied and cleanup registered.
func SetupTestDB(t *testing.T) *TestDB {
	t.Helper()

	store, err := storage.NewSQLiteStorage(":memory:")
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}

	ctx := context.Background()
	if err := store.Migrate(ctx); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}

	t.Cleanup(func() {
		_ = store.Close()
	})

	return &TestDB{Storage: store, t: t}
}

// MustSaveHome saves a home or fails the test, returning its ID.
func (db *TestDB) MustSaveHome(home *model.Home) uuid.UUID {
	db.t.Helper()
	if err := db.Storage.SaveHome(context.Background(), home); err != nil {
		db.t.Fatalf("failed to save home: %v", err)
	}
	return home.ID
}

// MustSaveRoom saves a room or fails the test.
func (db *TestDB) MustSaveRoom(room *model.Room) {
	db.t.Helper()
	if err := db.Storage.SaveRoom(context.Background(), room); err != nil {
		db.t.Fatalf("failed to save room: %v", err)
	}
}

// MustGetHome loads a full home aggregate or fails the test.
func (db *TestDB) MustGetHome(id uuid.UUID) *model.Home {
	db.t.Helper()
	home, err := db.Storage.GetHome(context.Background(), id)
	if err != nil {
		db.t.Fatalf("failed to get home: %v", err)
	}
	return home
}
