package internal

// PrefillRestorer reconstructs in-progress form state when a capture
// screen is revisited before authentication completes. It reads through
// the store and never consumes the pending action itself; only a
// successful replay does that.
type PrefillRestorer struct {
	store *PendingActionStore
}

// NewPrefillRestorer creates a new PrefillRestorer
func NewPrefillRestorer(store *PendingActionStore) *PrefillRestorer {
	return &PrefillRestorer{store: store}
}

// GetPrefillFor returns the form snapshot for a screen, with ok=false
// when no pending action targets it. Pure read, no mutation. Actions
// captured without an explicit snapshot fall back to one derived from
// the payload so the screen is never left blank.
func (p *PrefillRestorer) GetPrefillFor(screen string) (FormSnapshot, bool, error) {
	action, err := p.store.Load(screen)
	if err != nil {
		return nil, false, err
	}
	if action == nil {
		return nil, false, nil
	}

	if len(action.FormSnapshot) > 0 {
		return action.FormSnapshot, true, nil
	}
	return snapshotFromPayload(action.Payload), true, nil
}

// HasFreshPrefill reports whether a screen has both a pending action and
// an unconsumed show-once signal.
func (p *PrefillRestorer) HasFreshPrefill(screen string) (bool, error) {
	hasAction, err := p.store.HasPendingFor(screen)
	if err != nil || !hasAction {
		return false, err
	}
	return p.store.HasPrefillSignal(screen)
}

// ConsumePrefillSignal clears only the show-once flag, so the prefill is
// not re-applied on every remount. The stored action survives until it
// is replayed or discarded.
func (p *PrefillRestorer) ConsumePrefillSignal(screen string) error {
	return p.store.ConsumePrefillSignal(screen)
}

func snapshotFromPayload(p Payload) FormSnapshot {
	snapshot := FormSnapshot{}
	if p.Title != "" {
		snapshot["title"] = p.Title
	}
	if p.Body != "" {
		snapshot["body"] = p.Body
	}
	if p.Category != "" {
		snapshot["category"] = p.Category
	}
	return snapshot
}
