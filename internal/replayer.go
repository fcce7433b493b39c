package internal

import (
	"context"
	"fmt"
	"sync"
)

// ReplayState is the lifecycle of one replay pass.
type ReplayState int

const (
	StateIdle ReplayState = iota
	StatePendingDetected
	StateReplaying
	StateCompleted
	StateReplayFailed
)

func (s ReplayState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePendingDetected:
		return "pending-detected"
	case StateReplaying:
		return "replaying"
	case StateCompleted:
		return "completed"
	case StateReplayFailed:
		return "replay-failed"
	default:
		return fmt.Sprintf("unknown(%d)", int(s))
	}
}

// ItemResult reports one fan-out create call.
type ItemResult struct {
	Title    string
	RecordID string
	Attempts int
	Err      error
}

// ActionReport reports the replay of one pending action.
type ActionReport struct {
	Screen  string
	Kind    ActionKind
	Items   []ItemResult
	Cleared bool
}

// FailedItems returns the items that exhausted their retries.
func (r *ActionReport) FailedItems() []ItemResult {
	var failed []ItemResult
	for _, item := range r.Items {
		if item.Err != nil {
			failed = append(failed, item)
		}
	}
	return failed
}

// ReplayReport is the outcome of a full Flush pass.
type ReplayReport struct {
	State   ReplayState
	Actions []ActionReport
}

// defaultItemAttempts bounds per-item create retries during replay.
const defaultItemAttempts = 2

// AuthTransitionReplayer migrates pending guest actions into
// authenticated backend records after a sign-in succeeds. Each action is
// replayed at most once: the store slot is cleared (compare-and-swap on
// the action's version) only after every fanned-out create call
// succeeded, so a later pass retries exactly the work that failed.
type AuthTransitionReplayer struct {
	store        *PendingActionStore
	backend      Backend
	itemAttempts int
	onState      func(ReplayState)
}

// NewAuthTransitionReplayer creates a new AuthTransitionReplayer
func NewAuthTransitionReplayer(store *PendingActionStore, backend Backend) *AuthTransitionReplayer {
	return &AuthTransitionReplayer{
		store:        store,
		backend:      backend,
		itemAttempts: defaultItemAttempts,
	}
}

// OnStateChange registers a callback fired on every state transition.
// Callers use it to drive a "restoring your work" indicator.
func (r *AuthTransitionReplayer) OnStateChange(fn func(ReplayState)) {
	r.onState = fn
}

func (r *AuthTransitionReplayer) setState(report *ReplayReport, s ReplayState) {
	report.State = s
	if r.onState != nil {
		r.onState(s)
	}
}

// Flush runs one replay pass. It returns a report in every case; the
// error is non-nil only when at least one item exhausted its retries, in
// which case the affected actions stay in the store for a later pass.
//
// A store read failure is treated as "no pending work" so a corrupt
// local database never blocks sign-in.
func (r *AuthTransitionReplayer) Flush(ctx context.Context) (*ReplayReport, error) {
	report := &ReplayReport{State: StateIdle}

	has, err := r.store.HasUnsavedData()
	if err != nil {
		LogWarn("Pending action check failed, skipping replay: %v", err)
		return report, nil
	}
	if !has {
		return report, nil
	}
	r.setState(report, StatePendingDetected)

	actions, err := r.store.LoadAll()
	if err != nil {
		LogWarn("Failed to load pending actions, skipping replay: %v", err)
		return report, nil
	}
	if len(actions) == 0 {
		return report, nil
	}

	r.setState(report, StateReplaying)

	var firstErr error
	for _, action := range actions {
		actionReport := r.replayAction(ctx, action)
		report.Actions = append(report.Actions, actionReport)

		if failed := actionReport.FailedItems(); len(failed) > 0 {
			err := &ReplayError{
				Screen: action.TargetScreen,
				Kind:   action.Kind,
				Failed: len(failed),
				Total:  len(actionReport.Items),
				Err:    failed[0].Err,
			}
			LogError("Replay incomplete: %v", err)
			if firstErr == nil {
				firstErr = err
			}
		}
	}

	if firstErr != nil {
		r.setState(report, StateReplayFailed)
		return report, firstErr
	}

	r.setState(report, StateCompleted)
	return report, nil
}

// replayAction fans an action out into create calls. Items run
// concurrently; Clear is a strict join barrier after all of them and is
// only invoked when every item succeeded.
func (r *AuthTransitionReplayer) replayAction(ctx context.Context, action *PendingAction) ActionReport {
	report := ActionReport{Screen: action.TargetScreen, Kind: action.Kind}
	items := r.expandItems(action)
	report.Items = make([]ItemResult, len(items))

	var wg sync.WaitGroup
	for i, item := range items {
		wg.Add(1)
		go func(i int, item replayItem) {
			defer wg.Done()
			report.Items[i] = r.createItem(ctx, item)
		}(i, item)
	}
	wg.Wait()

	for _, item := range report.Items {
		if item.Err != nil {
			return report
		}
	}

	if err := r.store.Clear(action.TargetScreen, action.Version); err != nil {
		// The records exist; a retained slot risks duplicates on the
		// next pass, so this is loud.
		LogError("Replay succeeded but clear failed for %q: %v", action.TargetScreen, err)
		return report
	}
	report.Cleared = true
	return report
}

// replayItem is one backend create call derived from a pending action.
type replayItem struct {
	label  string
	create func(ctx context.Context) (string, error)
}

// expandItems maps an action's kind and payload onto backend create
// operations. Subitems (quick-jot breakdown) each become a task; a jot
// without subitems falls back to a plain note.
func (r *AuthTransitionReplayer) expandItems(action *PendingAction) []replayItem {
	p := action.Payload

	if len(p.Subitems) > 0 {
		items := make([]replayItem, 0, len(p.Subitems))
		for _, sub := range p.Subitems {
			sub := sub
			items = append(items, replayItem{
				label: sub.Title,
				create: func(ctx context.Context) (string, error) {
					return r.backend.CreateTask(ctx, sub.Title, sub.Category)
				},
			})
		}
		return items
	}

	switch action.Kind {
	case KindTask:
		return []replayItem{{
			label: p.Title,
			create: func(ctx context.Context) (string, error) {
				return r.backend.CreateTask(ctx, p.Title, p.Category)
			},
		}}
	case KindJournal:
		return []replayItem{{
			label: action.DisplayTitle(),
			create: func(ctx context.Context) (string, error) {
				return r.backend.CreateJournalEntry(ctx, p.Body)
			},
		}}
	case KindMemory:
		return []replayItem{{
			label: action.DisplayTitle(),
			create: func(ctx context.Context) (string, error) {
				return r.backend.CreateCoreMemory(ctx, p.Body)
			},
		}}
	default:
		// KindNote, and KindJot captures that were never broken down.
		return []replayItem{{
			label: action.DisplayTitle(),
			create: func(ctx context.Context) (string, error) {
				return r.backend.CreateNote(ctx, p.Title, p.Body)
			},
		}}
	}
}

func (r *AuthTransitionReplayer) createItem(ctx context.Context, item replayItem) ItemResult {
	result := ItemResult{Title: item.label}

	for attempt := 1; attempt <= r.itemAttempts; attempt++ {
		result.Attempts = attempt
		if err := ctx.Err(); err != nil {
			result.Err = err
			return result
		}

		id, err := item.create(ctx)
		if err == nil {
			result.RecordID = id
			result.Err = nil
			return result
		}
		result.Err = err
		LogDebug("Create %q attempt %d failed: %v", item.label, attempt, err)
	}

	return result
}
