package testutil

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/geektoshi/nebula-harvest/internal/storage"
)

// SetupTestDB opens a migrated SQLite store in a temporary directory and
// closes it when the test ends.
func SetupTestDB(t *testing.T) *storage.SQLiteStorage {
	t.Helper()

	store, err := storage.NewSQLiteStorage(TestDBPath(t))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() {
		_ = store.Close()
	})

	if err := store.Migrate(context.Background()); err != nil {
		t.Fatalf("failed to run migrations: %v", err)
	}
	return store
}

// TestDBPath returns a fresh database path under the test's temp directory.
func TestDBPath(t *testing.T) string {
	t.Helper()
	return filepath.Join(t.TempDir(), "harvest.db")
}
