package internal

import (
	"testing"
	"time"
)

func TestActionKeyRoundTrip(t *testing.T) {
	key := ActionKey("notes")
	if key != "pendingAction:notes" {
		t.Errorf("ActionKey() = %q", key)
	}

	screen, err := ScreenFromKey(key)
	if err != nil {
		t.Fatalf("ScreenFromKey() error = %v", err)
	}
	if screen != "notes" {
		t.Errorf("ScreenFromKey() = %q, want %q", screen, "notes")
	}
}

func TestScreenFromKey_Invalid(t *testing.T) {
	tests := []string{
		"prefillSignal:notes",
		"pendingAction:",
		"notes",
		"",
	}
	for _, key := range tests {
		if _, err := ScreenFromKey(key); err == nil {
			t.Errorf("ScreenFromKey(%q) expected error", key)
		}
	}
}

func TestParsePendingAction(t *testing.T) {
	value := `{"id":"a1","version":"v1","kind":"note","targetScreen":"stale-value","payload":{"title":"Buy milk"},"capturedAt":1700000000000}`

	action, err := ParsePendingAction("pendingAction:notes", value)
	if err != nil {
		t.Fatalf("ParsePendingAction() error = %v", err)
	}
	if action.Kind != KindNote {
		t.Errorf("Kind = %q, want %q", action.Kind, KindNote)
	}
	// The key is authoritative for the screen.
	if action.TargetScreen != "notes" {
		t.Errorf("TargetScreen = %q, want %q", action.TargetScreen, "notes")
	}
	if action.Payload.Title != "Buy milk" {
		t.Errorf("Payload.Title = %q", action.Payload.Title)
	}
}

func TestParsePendingAction_InvalidJSON(t *testing.T) {
	_, err := ParsePendingAction("pendingAction:notes", "not json")
	if err == nil {
		t.Fatal("ParsePendingAction() expected error for invalid JSON")
	}
	if _, ok := err.(*ParseError); !ok {
		t.Errorf("error type = %T, want *ParseError", err)
	}
}

func TestPendingAction_EncodeRoundTrip(t *testing.T) {
	action := &PendingAction{
		ID:           "a1",
		Version:      "v1",
		Kind:         KindJot,
		TargetScreen: "quickjot",
		Payload: Payload{
			Title:    "Morning jot",
			Subitems: []Subitem{{Title: "Email the landlord", Category: "work"}},
		},
		FormSnapshot: FormSnapshot{"body": "email landlord"},
		CapturedAt:   1700000000000,
	}

	value, err := action.Encode()
	if err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	parsed, err := ParsePendingAction(ActionKey("quickjot"), value)
	if err != nil {
		t.Fatalf("ParsePendingAction() error = %v", err)
	}
	if parsed.ID != action.ID || parsed.Version != action.Version {
		t.Error("identity fields did not round-trip")
	}
	if len(parsed.Payload.Subitems) != 1 || parsed.Payload.Subitems[0].Title != "Email the landlord" {
		t.Error("subitems did not round-trip")
	}
	if parsed.FormSnapshot["body"] != "email landlord" {
		t.Error("form snapshot did not round-trip")
	}
}

func TestPendingAction_ItemCount(t *testing.T) {
	plain := &PendingAction{Kind: KindNote}
	if plain.ItemCount() != 1 {
		t.Errorf("ItemCount() = %d, want 1", plain.ItemCount())
	}

	fanOut := &PendingAction{
		Kind:    KindJot,
		Payload: Payload{Subitems: []Subitem{{Title: "a"}, {Title: "b"}, {Title: "c"}}},
	}
	if fanOut.ItemCount() != 3 {
		t.Errorf("ItemCount() = %d, want 3", fanOut.ItemCount())
	}
}

func TestPendingAction_CapturedTime(t *testing.T) {
	action := &PendingAction{CapturedAt: 1700000000000}
	want := time.Unix(0, 1700000000000*int64(time.Millisecond))
	if !action.CapturedTime().Equal(want) {
		t.Errorf("CapturedTime() = %v, want %v", action.CapturedTime(), want)
	}

	zero := &PendingAction{}
	if !zero.CapturedTime().IsZero() {
		t.Error("CapturedTime() of zero timestamp should be the zero time")
	}
}

func TestValidKind(t *testing.T) {
	for _, kind := range []ActionKind{KindNote, KindTask, KindJot, KindJournal, KindMemory} {
		if !ValidKind(kind) {
			t.Errorf("ValidKind(%q) = false", kind)
		}
	}
	if ValidKind("reminder") {
		t.Error(`ValidKind("reminder") = true`)
	}
}

func TestPendingAction_DisplayTitle(t *testing.T) {
	tests := []struct {
		name   string
		action PendingAction
		want   string
	}{
		{"title wins", PendingAction{Payload: Payload{Title: "Buy milk", Body: "long body"}}, "Buy milk"},
		{"body fallback", PendingAction{Payload: Payload{Body: "short body"}}, "short body"},
		{"untitled", PendingAction{}, "(untitled)"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.action.DisplayTitle(); got != tt.want {
				t.Errorf("DisplayTitle() = %q, want %q", got, tt.want)
			}
		})
	}
}
