package internal

// CaptureResult tells the calling screen what happened to a save
// attempt and what it should render next. Modal visibility is the
// caller's decision; the coordinator only signals it.
type CaptureResult struct {
	// Routed is true when the actor was a guest and the action went to
	// the local store. False means the caller should create the record
	// against the backend directly.
	Routed bool

	// Saved is true when the local write completed and verified.
	Saved bool

	// PromptSignIn is true when the caller should present the
	// "save your work" prompt. It is set for every guest capture, even
	// when the local write failed, so the user is never blocked.
	PromptSignIn bool

	// Err carries a storage failure for diagnostics. A non-nil Err with
	// PromptSignIn still true is the degraded path: the prompt is shown
	// but the content is at risk of being lost.
	Err error
}

// GuestSessionCoordinator decides, per save attempt, whether the actor
// is a guest and routes guest content to the local store instead of the
// backend.
type GuestSessionCoordinator struct {
	session SessionProvider
	store   *PendingActionStore
}

// NewGuestSessionCoordinator creates a new GuestSessionCoordinator
func NewGuestSessionCoordinator(session SessionProvider, store *PendingActionStore) *GuestSessionCoordinator {
	return &GuestSessionCoordinator{session: session, store: store}
}

// IsGuest reports whether no valid authenticated session exists. It is
// evaluated fresh on every call; sign-in can complete out-of-band at
// any moment.
func (c *GuestSessionCoordinator) IsGuest() bool {
	return !c.session.IsAuthenticated()
}

// Capture intercepts a save attempt. Authenticated actors pass through
// untouched. For guests the action is persisted locally and the result
// asks the caller to show the sign-in prompt. Storage failures never
// propagate as panics or block the flow; they are logged and carried in
// the result.
func (c *GuestSessionCoordinator) Capture(action *PendingAction) CaptureResult {
	if !c.IsGuest() {
		return CaptureResult{}
	}

	if err := c.store.Save(action); err != nil {
		LogError("Failed to persist guest action for %q: %v", action.TargetScreen, err)
		return CaptureResult{Routed: true, PromptSignIn: true, Err: err}
	}

	return CaptureResult{Routed: true, Saved: true, PromptSignIn: true}
}
