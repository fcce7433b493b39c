package testutil

import (
	"context"
	"fmt"
	"sync"
)

// FakeSession is a deterministic SessionProvider for tests
type FakeSession struct {
	Authenticated bool
}

// IsAuthenticated reports the configured state
func (f *FakeSession) IsAuthenticated() bool {
	return f.Authenticated
}

// BackendCall records one create call made against the RecordingBackend
type BackendCall struct {
	Op       string // "createNote", "createTask", "createJournalEntry", "createCoreMemory"
	Title    string
	Body     string
	Category string
}

// RecordingBackend records create calls and can be programmed to fail
// specific item titles a given number of times.
type RecordingBackend struct {
	mu      sync.Mutex
	calls   []BackendCall
	failFor map[string]int // title -> remaining failures
	nextID  int
}

// NewRecordingBackend creates an empty RecordingBackend
func NewRecordingBackend() *RecordingBackend {
	return &RecordingBackend{failFor: make(map[string]int)}
}

// FailTitle makes the next n create calls carrying the given title fail
func (r *RecordingBackend) FailTitle(title string, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.failFor[title] = n
}

// Calls returns a copy of all recorded calls
func (r *RecordingBackend) Calls() []BackendCall {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]BackendCall, len(r.calls))
	copy(out, r.calls)
	return out
}

// CallsFor returns recorded calls for one operation
func (r *RecordingBackend) CallsFor(op string) []BackendCall {
	var out []BackendCall
	for _, call := range r.Calls() {
		if call.Op == op {
			out = append(out, call)
		}
	}
	return out
}

func (r *RecordingBackend) record(call BackendCall) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if remaining, ok := r.failFor[call.Title]; ok && remaining > 0 {
		r.failFor[call.Title] = remaining - 1
		return "", fmt.Errorf("injected failure for %q", call.Title)
	}

	r.calls = append(r.calls, call)
	r.nextID++
	return fmt.Sprintf("rec-%d", r.nextID), nil
}

// CreateNote records a note create call
func (r *RecordingBackend) CreateNote(_ context.Context, title, body string) (string, error) {
	return r.record(BackendCall{Op: "createNote", Title: title, Body: body})
}

// CreateTask records a task create call
func (r *RecordingBackend) CreateTask(_ context.Context, title, category string) (string, error) {
	return r.record(BackendCall{Op: "createTask", Title: title, Category: category})
}

// CreateJournalEntry records a journal create call
func (r *RecordingBackend) CreateJournalEntry(_ context.Context, body string) (string, error) {
	return r.record(BackendCall{Op: "createJournalEntry", Body: body})
}

// CreateCoreMemory records a core memory create call
func (r *RecordingBackend) CreateCoreMemory(_ context.Context, body string) (string, error) {
	return r.record(BackendCall{Op: "createCoreMemory", Body: body})
}
