// ABOUTME: Shared test helpers for storage tests.
// ABOUTME: Provides an isolated SQLite database and a registered test user.
package storage

import (
	"path/filepath"
	"testing"

	"rehealth/internal/models"
)

func setupTestDB(t *testing.T) *DB {
	t.Helper()
	dbPath := filepath.Join(t.TempDir(), "test.db")
	db, err := Open(dbPath)
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func createTestUser(t *testing.T, db *DB, username string) *models.User {
	t.Helper()
	u := models.NewUser(username)
	if err := u.SetPassword("hunter22"); err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}
	if err := db.CreateUser(u); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}
	return u
}
