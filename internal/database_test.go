package internal_test

import (
	"guestjot/internal"

	"path/filepath"
	"testing"

	"guestjot/testutil"
)

func TestOpenDatabase_CreatesSchema(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	db, err := internal.OpenDatabase(filepath.Join(dir, "pending.db"))
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	defer db.Close()

	// The table exists and is usable right away.
	if err := internal.PutGuestActionKV(db, "pendingAction:notes", "{}"); err != nil {
		t.Fatalf("PutGuestActionKV() after open error = %v", err)
	}
}

func TestPutGetDeleteGuestActionKV(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	if err := internal.PutGuestActionKV(db, "pendingAction:notes", "v1"); err != nil {
		t.Fatalf("PutGuestActionKV() error = %v", err)
	}

	value, ok, err := internal.GetGuestActionKV(db, "pendingAction:notes")
	if err != nil {
		t.Fatalf("GetGuestActionKV() error = %v", err)
	}
	if !ok || value != "v1" {
		t.Errorf("GetGuestActionKV() = (%q, %v), want (%q, true)", value, ok, "v1")
	}

	// Upsert overwrites.
	if err := internal.PutGuestActionKV(db, "pendingAction:notes", "v2"); err != nil {
		t.Fatalf("PutGuestActionKV() upsert error = %v", err)
	}
	value, _, err = internal.GetGuestActionKV(db, "pendingAction:notes")
	if err != nil {
		t.Fatalf("GetGuestActionKV() error = %v", err)
	}
	if value != "v2" {
		t.Errorf("GetGuestActionKV() after upsert = %q, want %q", value, "v2")
	}

	if err := internal.DeleteGuestActionKV(db, "pendingAction:notes"); err != nil {
		t.Fatalf("DeleteGuestActionKV() error = %v", err)
	}
	_, ok, err = internal.GetGuestActionKV(db, "pendingAction:notes")
	if err != nil {
		t.Fatalf("GetGuestActionKV() error = %v", err)
	}
	if ok {
		t.Error("GetGuestActionKV() found a deleted key")
	}

	// Deleting an absent key is fine.
	if err := internal.DeleteGuestActionKV(db, "pendingAction:notes"); err != nil {
		t.Errorf("DeleteGuestActionKV() of absent key error = %v", err)
	}
}

func TestExistsGuestActionKV(t *testing.T) {
	db := testutil.CreateInMemoryDB(t)
	defer db.Close()

	ok, err := internal.ExistsGuestActionKV(db, "pendingAction:%")
	if err != nil {
		t.Fatalf("ExistsGuestActionKV() error = %v", err)
	}
	if ok {
		t.Error("ExistsGuestActionKV() = true on empty table")
	}

	testutil.InsertKV(t, db, "pendingAction:notes", "{}")

	ok, err = internal.ExistsGuestActionKV(db, "pendingAction:%")
	if err != nil {
		t.Fatalf("ExistsGuestActionKV() error = %v", err)
	}
	if !ok {
		t.Error("ExistsGuestActionKV() = false with a matching row")
	}

	ok, err = internal.ExistsGuestActionKV(db, "prefillSignal:%")
	if err != nil {
		t.Fatalf("ExistsGuestActionKV() error = %v", err)
	}
	if ok {
		t.Error("ExistsGuestActionKV() matched the wrong prefix")
	}
}

func TestQueryGuestActionKV(t *testing.T) {
	db := testutil.CreateTestDB(t)
	defer db.Close()

	pairs, err := internal.QueryGuestActionKV(db, "pendingAction:%")
	if err != nil {
		t.Fatalf("QueryGuestActionKV() error = %v", err)
	}
	if len(pairs) != 2 {
		t.Errorf("QueryGuestActionKV() returned %d pairs, want 2", len(pairs))
	}
	for _, pair := range pairs {
		if pair.Value == "" {
			t.Errorf("pair %q has empty value", pair.Key)
		}
	}
}
