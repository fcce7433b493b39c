package internal

import (
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
)

// saveAttempts bounds the write-verify-retry loop in Save. The retry
// lives here so every caller gets the same behavior.
const saveAttempts = 2

// PendingActionStore provides durable local persistence of pending guest
// actions over the guestActionKV table. One slot per targetScreen: a new
// capture for a screen replaces that screen's slot, captures for
// different screens coexist as a small ordered queue.
type PendingActionStore struct {
	db *sql.DB
}

// NewPendingActionStore creates a new PendingActionStore instance
func NewPendingActionStore(db *sql.DB) *PendingActionStore {
	return &PendingActionStore{db: db}
}

// Save serializes and writes the action, overwriting any previous
// unflushed action for the same targetScreen. Missing identity fields
// are filled in: ID and Version get fresh UUIDs, CapturedAt gets the
// current time. Version is always regenerated so a superseded flow's
// Clear cannot wipe this capture.
//
// The write is verified with an existence check and retried once on
// verification failure before giving up.
func (s *PendingActionStore) Save(action *PendingAction) error {
	if action.ID == "" {
		action.ID = uuid.NewString()
	}
	action.Version = uuid.NewString()
	if action.CapturedAt == 0 {
		action.CapturedAt = time.Now().UnixMilli()
	}

	key := ActionKey(action.TargetScreen)
	value, err := action.Encode()
	if err != nil {
		return &StorageError{Key: key, Op: "write", Err: err}
	}

	var lastErr error
	for attempt := 0; attempt < saveAttempts; attempt++ {
		if attempt > 0 {
			LogWarn("Pending action write for %q did not verify, retrying", action.TargetScreen)
		}
		if err := PutGuestActionKV(s.db, key, value); err != nil {
			lastErr = err
			continue
		}
		ok, err := ExistsGuestActionKV(s.db, key)
		if err != nil {
			lastErr = err
			continue
		}
		if ok {
			// The show-once prefill signal rides along with every
			// capture; consuming it later does not touch the action.
			if err := PutGuestActionKV(s.db, PrefillKey(action.TargetScreen), "1"); err != nil {
				LogDebug("Failed to set prefill signal for %q: %v", action.TargetScreen, err)
			}
			return nil
		}
		lastErr = errVerifyFailed
	}

	return &StorageError{Key: key, Op: "write", Err: lastErr}
}

var errVerifyFailed = errors.New("write verification failed")

// HasUnsavedData reports whether any pending action exists. It never
// deserializes stored payloads.
func (s *PendingActionStore) HasUnsavedData() (bool, error) {
	ok, err := ExistsGuestActionKV(s.db, ActionKeyPrefix+"%")
	if err != nil {
		return false, &StorageError{Key: ActionKeyPrefix + "%", Op: "read", Err: err}
	}
	return ok, nil
}

// HasPendingFor reports whether a pending action exists for one screen.
func (s *PendingActionStore) HasPendingFor(screen string) (bool, error) {
	ok, err := ExistsGuestActionKV(s.db, ActionKey(screen))
	if err != nil {
		return false, &StorageError{Key: ActionKey(screen), Op: "read", Err: err}
	}
	return ok, nil
}

// Load returns the stored action for a screen, or nil when absent.
// Malformed rows are treated as absent so a corrupt slot never blocks
// normal use.
func (s *PendingActionStore) Load(screen string) (*PendingAction, error) {
	key := ActionKey(screen)
	value, ok, err := GetGuestActionKV(s.db, key)
	if err != nil {
		return nil, &StorageError{Key: key, Op: "read", Err: err}
	}
	if !ok {
		return nil, nil
	}

	action, err := ParsePendingAction(key, value)
	if err != nil {
		LogDebug("Skipping malformed pending action %s: %v", key, err)
		return nil, nil
	}
	return action, nil
}

// LoadAll returns every stored pending action ordered by capture time.
func (s *PendingActionStore) LoadAll() ([]*PendingAction, error) {
	pairs, err := QueryGuestActionKV(s.db, ActionKeyPrefix+"%")
	if err != nil {
		return nil, &StorageError{Key: ActionKeyPrefix + "%", Op: "read", Err: err}
	}

	actions := make([]*PendingAction, 0, len(pairs))
	for _, pair := range pairs {
		action, err := ParsePendingAction(pair.Key, pair.Value)
		if err != nil {
			LogDebug("Skipping malformed pending action %s: %v", pair.Key, err)
			continue
		}
		actions = append(actions, action)
	}

	sort.Slice(actions, func(i, j int) bool {
		return actions[i].CapturedAt < actions[j].CapturedAt
	})

	return actions, nil
}

// Clear removes a screen's pending action only if the stored version
// matches. A mismatch means the slot was overwritten by a newer capture
// after this flow loaded it; the newer capture is left alone. Clearing
// an empty slot is a no-op, not an error.
func (s *PendingActionStore) Clear(screen, version string) error {
	key := ActionKey(screen)

	tx, err := s.db.Begin()
	if err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}
	defer tx.Rollback()

	var value sql.NullString
	err = tx.QueryRow("SELECT value FROM guestActionKV WHERE key = ?", key).Scan(&value)
	if err == sql.ErrNoRows {
		return nil
	}
	if err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}

	if value.Valid {
		action, parseErr := ParsePendingAction(key, value.String)
		if parseErr == nil && action.Version != version {
			LogDebug("Skipping clear of %q: stored version %s, caller has %s", screen, action.Version, version)
			return nil
		}
	}

	if _, err := tx.Exec("DELETE FROM guestActionKV WHERE key = ?", key); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}
	if _, err := tx.Exec("DELETE FROM guestActionKV WHERE key = ?", PrefillKey(screen)); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}

	if err := tx.Commit(); err != nil {
		return &StorageError{Key: key, Op: "delete", Err: err}
	}
	return nil
}

// Discard unconditionally removes a screen's pending action and prefill
// signal. This is the explicit forfeit path; replay uses Clear.
func (s *PendingActionStore) Discard(screen string) error {
	if err := DeleteGuestActionKV(s.db, ActionKey(screen)); err != nil {
		return &StorageError{Key: ActionKey(screen), Op: "delete", Err: err}
	}
	if err := DeleteGuestActionKV(s.db, PrefillKey(screen)); err != nil {
		return &StorageError{Key: PrefillKey(screen), Op: "delete", Err: err}
	}
	return nil
}

// DiscardAll removes every pending action and prefill signal.
func (s *PendingActionStore) DiscardAll() error {
	for _, prefix := range []string{ActionKeyPrefix, PrefillKeyPrefix} {
		if _, err := s.db.Exec("DELETE FROM guestActionKV WHERE key LIKE ?", prefix+"%"); err != nil {
			return &StorageError{Key: prefix + "%", Op: "delete", Err: err}
		}
	}
	return nil
}

// HasPrefillSignal reports whether a fresh prefill is waiting to be
// shown for a screen.
func (s *PendingActionStore) HasPrefillSignal(screen string) (bool, error) {
	ok, err := ExistsGuestActionKV(s.db, PrefillKey(screen))
	if err != nil {
		return false, &StorageError{Key: PrefillKey(screen), Op: "read", Err: err}
	}
	return ok, nil
}

// ConsumePrefillSignal clears only the show-once flag. The underlying
// pending action is untouched; it still needs replay.
func (s *PendingActionStore) ConsumePrefillSignal(screen string) error {
	if err := DeleteGuestActionKV(s.db, PrefillKey(screen)); err != nil {
		return &StorageError{Key: PrefillKey(screen), Op: "delete", Err: err}
	}
	return nil
}
