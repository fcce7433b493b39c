package internal

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// Schema for the local guest action store. A single kv table keeps the
// format forward-compatible: new key prefixes cost nothing.
const createGuestActionKV = `
CREATE TABLE IF NOT EXISTS guestActionKV (
	key TEXT PRIMARY KEY,
	value TEXT
)`

// OpenDatabase opens (and initializes) the guest action SQLite database
func OpenDatabase(path string) (*sql.DB, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}

	if err := EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return db, nil
}

// EnsureSchema creates the guestActionKV table if it does not exist
func EnsureSchema(db *sql.DB) error {
	if _, err := db.Exec(createGuestActionKV); err != nil {
		return fmt.Errorf("failed to create guestActionKV table: %w", err)
	}
	return nil
}

// KeyValuePair represents a key-value pair from guestActionKV
type KeyValuePair struct {
	Key   string
	Value string
}

// QueryGuestActionKV queries the guestActionKV table with a LIKE pattern
func QueryGuestActionKV(db *sql.DB, pattern string) ([]KeyValuePair, error) {
	query := "SELECT key, value FROM guestActionKV WHERE key LIKE ? AND value IS NOT NULL"
	rows, err := db.Query(query, pattern)
	if err != nil {
		return nil, fmt.Errorf("query failed: %w", err)
	}
	defer rows.Close()

	var pairs []KeyValuePair
	for rows.Next() {
		var pair KeyValuePair
		var value sql.NullString
		if err := rows.Scan(&pair.Key, &value); err != nil {
			return nil, fmt.Errorf("scan failed: %w", err)
		}
		if value.Valid {
			pair.Value = value.String
			pairs = append(pairs, pair)
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return pairs, nil
}

// GetGuestActionKV returns a single value, with ok=false when absent
func GetGuestActionKV(db *sql.DB, key string) (string, bool, error) {
	var value sql.NullString
	err := db.QueryRow("SELECT value FROM guestActionKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("query failed: %w", err)
	}
	if !value.Valid {
		return "", false, nil
	}
	return value.String, true, nil
}

// PutGuestActionKV upserts a key-value pair
func PutGuestActionKV(db *sql.DB, key, value string) error {
	_, err := db.Exec(
		"INSERT INTO guestActionKV (key, value) VALUES (?, ?) ON CONFLICT(key) DO UPDATE SET value = excluded.value",
		key, value,
	)
	if err != nil {
		return fmt.Errorf("upsert failed: %w", err)
	}
	return nil
}

// DeleteGuestActionKV removes a key; deleting an absent key is not an error
func DeleteGuestActionKV(db *sql.DB, key string) error {
	if _, err := db.Exec("DELETE FROM guestActionKV WHERE key = ?", key); err != nil {
		return fmt.Errorf("delete failed: %w", err)
	}
	return nil
}

// ExistsGuestActionKV is a cheap existence check that never deserializes
// the stored value.
func ExistsGuestActionKV(db *sql.DB, pattern string) (bool, error) {
	var one int
	err := db.QueryRow(
		"SELECT 1 FROM guestActionKV WHERE key LIKE ? AND value IS NOT NULL LIMIT 1",
		pattern,
	).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("query failed: %w", err)
	}
	return true, nil
}
