package internal

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// ActionKind identifies the type of content a pending action will create.
type ActionKind string

const (
	KindNote    ActionKind = "note"
	KindTask    ActionKind = "task"
	KindJot     ActionKind = "jot"
	KindJournal ActionKind = "journal"
	KindMemory  ActionKind = "memory"
)

// ValidKind reports whether k is a known action kind.
func ValidKind(k ActionKind) bool {
	switch k {
	case KindNote, KindTask, KindJot, KindJournal, KindMemory:
		return true
	}
	return false
}

// Key prefixes in the guestActionKV table.
const (
	ActionKeyPrefix  = "pendingAction:"
	PrefillKeyPrefix = "prefillSignal:"
)

// PendingAction is a locally persisted unit of content authored while
// signed out. It survives until it is replayed into backend records or
// explicitly discarded.
type PendingAction struct {
	ID           string       `json:"id"`
	Version      string       `json:"version"` // compare-and-swap token for Clear
	Kind         ActionKind   `json:"kind"`
	TargetScreen string       `json:"targetScreen"`
	Payload      Payload      `json:"payload"`
	FormSnapshot FormSnapshot `json:"formSnapshot,omitempty"`
	CapturedAt   int64        `json:"capturedAt"` // epoch millis
}

// Payload holds the fields needed to create the backend entity.
type Payload struct {
	Title    string    `json:"title,omitempty"`
	Body     string    `json:"body,omitempty"`
	Category string    `json:"category,omitempty"`
	Subitems []Subitem `json:"subitems,omitempty"`
}

// Subitem is one derived entry of a fan-out capture, e.g. a subtask
// produced by quick-jot breakdown. Each subitem becomes its own backend
// create call during replay.
type Subitem struct {
	Title    string `json:"title"`
	Category string `json:"category,omitempty"`
}

// FormSnapshot is a copy of raw form-field values exactly as typed, kept
// so an abandoned edit session can be restored verbatim.
type FormSnapshot map[string]string

// ActionKey returns the storage key for a screen's pending action slot.
func ActionKey(screen string) string {
	return ActionKeyPrefix + screen
}

// PrefillKey returns the storage key for a screen's show-once prefill flag.
func PrefillKey(screen string) string {
	return PrefillKeyPrefix + screen
}

// ScreenFromKey extracts the targetScreen from a pendingAction key.
func ScreenFromKey(key string) (string, error) {
	if !strings.HasPrefix(key, ActionKeyPrefix) {
		return "", fmt.Errorf("invalid pendingAction key format: %s", key)
	}
	screen := key[len(ActionKeyPrefix):]
	if screen == "" {
		return "", fmt.Errorf("invalid pendingAction key format: %s", key)
	}
	return screen, nil
}

// ParsePendingAction parses a stored kv value into a PendingAction. The
// targetScreen encoded in the key wins over whatever the value claims.
func ParsePendingAction(key, value string) (*PendingAction, error) {
	screen, err := ScreenFromKey(key)
	if err != nil {
		return nil, err
	}

	var action PendingAction
	if err := json.Unmarshal([]byte(value), &action); err != nil {
		return nil, &ParseError{Key: key, Err: err}
	}
	action.TargetScreen = screen

	return &action, nil
}

// Encode serializes the action for storage.
func (a *PendingAction) Encode() (string, error) {
	data, err := json.Marshal(a)
	if err != nil {
		return "", fmt.Errorf("failed to encode pending action: %w", err)
	}
	return string(data), nil
}

// CapturedTime returns the capture timestamp as a time.Time.
func (a *PendingAction) CapturedTime() time.Time {
	if a.CapturedAt == 0 {
		return time.Time{}
	}
	return time.Unix(0, a.CapturedAt*int64(time.Millisecond))
}

// ItemCount returns the number of backend create calls this action fans
// out into. Actions without subitems create exactly one record.
func (a *PendingAction) ItemCount() int {
	if len(a.Payload.Subitems) > 0 {
		return len(a.Payload.Subitems)
	}
	return 1
}

// DisplayTitle returns a human-readable label for listings.
func (a *PendingAction) DisplayTitle() string {
	if a.Payload.Title != "" {
		return a.Payload.Title
	}
	if a.Payload.Body != "" {
		body := a.Payload.Body
		if len(body) > 40 {
			body = body[:40] + "…"
		}
		return body
	}
	return "(untitled)"
}
