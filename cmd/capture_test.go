package cmd

import (
	"bytes"
	"path/filepath"
	"testing"

	"guestjot/internal"
	"guestjot/testutil"
)

// runCommand executes the root command with the given args against
// isolated config and storage paths.
func runCommand(t *testing.T, cfgPath, dbPath string, args ...string) error {
	t.Helper()

	full := append([]string{"--config", cfgPath, "--storage", dbPath}, args...)

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(full)
	return rootCmd.Execute()
}

func openTestStore(t *testing.T, dbPath string) *internal.PendingActionStore {
	t.Helper()

	db, err := internal.OpenDatabase(dbPath)
	if err != nil {
		t.Fatalf("OpenDatabase() error = %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return internal.NewPendingActionStore(db)
}

func TestCaptureNote_GuestSavesLocally(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "pending.db")

	err := runCommand(t, cfgPath, dbPath, "capture", "note", "--title", "Buy milk", "--body", "2% if they have it")
	if err != nil {
		t.Fatalf("capture note failed: %v", err)
	}

	store := openTestStore(t, dbPath)
	action, err := store.Load("notes")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if action == nil {
		t.Fatal("expected a pending action on the notes screen")
	}
	if action.Kind != internal.KindNote {
		t.Errorf("Kind = %q, want %q", action.Kind, internal.KindNote)
	}
	if action.Payload.Title != "Buy milk" {
		t.Errorf("Title = %q, want %q", action.Payload.Title, "Buy milk")
	}
	if action.FormSnapshot["body"] != "2% if they have it" {
		t.Errorf("FormSnapshot body = %q", action.FormSnapshot["body"])
	}

	has, err := store.HasPrefillSignal("notes")
	if err != nil {
		t.Fatalf("HasPrefillSignal() error = %v", err)
	}
	if !has {
		t.Error("expected a prefill signal after a guest capture")
	}
}

func TestCaptureTask_DerivesCategory(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "pending.db")

	err := runCommand(t, cfgPath, dbPath, "capture", "task", "--title", "Email the landlord")
	if err != nil {
		t.Fatalf("capture task failed: %v", err)
	}

	store := openTestStore(t, dbPath)
	action, err := store.Load("todos")
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if action == nil {
		t.Fatal("expected a pending action on the todos screen")
	}
	if action.Payload.Category != "work" {
		t.Errorf("Category = %q, want %q", action.Payload.Category, "work")
	}
}

func TestCaptureNote_RequiresContent(t *testing.T) {
	dir := testutil.CreateTempDir(t)
	cfgPath := filepath.Join(dir, "config.yaml")
	dbPath := filepath.Join(dir, "pending.db")

	err := runCommand(t, cfgPath, dbPath, "capture", "note", "--title", "", "--body", "")
	if err == nil {
		t.Fatal("expected an error when the capture is empty")
	}
}
