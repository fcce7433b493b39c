package testutil

import (
	"guestjot/internal"
)

// NoteAction builds a pending note action for tests
func NoteAction(title, body string) *internal.PendingAction {
	return &internal.PendingAction{
		Kind:         internal.KindNote,
		TargetScreen: "notes",
		Payload:      internal.Payload{Title: title, Body: body},
		FormSnapshot: internal.FormSnapshot{"title": title, "body": body},
	}
}

// TaskAction builds a pending task action for tests
func TaskAction(title, category string) *internal.PendingAction {
	return &internal.PendingAction{
		Kind:         internal.KindTask,
		TargetScreen: "todos",
		Payload:      internal.Payload{Title: title, Category: category},
		FormSnapshot: internal.FormSnapshot{"title": title, "category": category},
	}
}

// JotAction builds a pending quick-jot action with derived subtasks
func JotAction(title string, subtasks ...string) *internal.PendingAction {
	subitems := make([]internal.Subitem, 0, len(subtasks))
	for _, sub := range subtasks {
		subitems = append(subitems, internal.Subitem{Title: sub})
	}
	return &internal.PendingAction{
		Kind:         internal.KindJot,
		TargetScreen: "quickjot",
		Payload:      internal.Payload{Title: title, Subitems: subitems},
	}
}
