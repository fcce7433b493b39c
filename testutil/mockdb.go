package testutil

import (
	"database/sql"
	"testing"

	_ "modernc.org/sqlite"
)

// CreateInMemoryDB creates an in-memory SQLite database with the
// guestActionKV schema for testing
func CreateInMemoryDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("Failed to create in-memory database: %v", err)
	}

	createTableSQL := `
	CREATE TABLE IF NOT EXISTS guestActionKV (
		key TEXT PRIMARY KEY,
		value TEXT
	)`
	if _, err := db.Exec(createTableSQL); err != nil {
		db.Close()
		t.Fatalf("Failed to create guestActionKV table: %v", err)
	}

	return db
}

// CreateTestDB creates a test database seeded with sample pending actions
func CreateTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db := CreateInMemoryDB(t)

	entries := []struct {
		key   string
		value string
	}{
		{
			key:   "pendingAction:notes",
			value: `{"id":"a1","version":"v1","kind":"note","targetScreen":"notes","payload":{"title":"Buy milk","body":"2% if they have it"},"formSnapshot":{"title":"Buy milk","body":"2% if they have it"},"capturedAt":1700000000000}`,
		},
		{
			key:   "pendingAction:quickjot",
			value: `{"id":"a2","version":"v2","kind":"jot","targetScreen":"quickjot","payload":{"title":"Morning jot","subitems":[{"title":"Email the landlord","category":"work"},{"title":"Pick up groceries","category":"errands"}]},"capturedAt":1700000100000}`,
		},
		{
			key:   "prefillSignal:notes",
			value: "1",
		},
	}

	insertSQL := "INSERT INTO guestActionKV (key, value) VALUES (?, ?)"
	for _, entry := range entries {
		if _, err := db.Exec(insertSQL, entry.key, entry.value); err != nil {
			db.Close()
			t.Fatalf("Failed to seed guestActionKV: %v", err)
		}
	}

	return db
}

// InsertKV inserts a raw key-value pair into the store table
func InsertKV(t *testing.T, db *sql.DB, key, value string) {
	t.Helper()
	insertSQL := "INSERT OR REPLACE INTO guestActionKV (key, value) VALUES (?, ?)"
	if _, err := db.Exec(insertSQL, key, value); err != nil {
		t.Fatalf("Failed to insert kv pair: %v", err)
	}
}

// CountKeys counts rows whose key matches the LIKE pattern
func CountKeys(t *testing.T, db *sql.DB, pattern string) int {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM guestActionKV WHERE key LIKE ?", pattern).Scan(&count); err != nil {
		t.Fatalf("Failed to count keys: %v", err)
	}
	return count
}
