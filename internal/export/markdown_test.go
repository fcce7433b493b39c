package export

import (
	"bytes"
	"strings"
	"testing"

	"guestjot/internal"
)

func TestMarkdownExporter(t *testing.T) {
	actions := []*internal.PendingAction{
		{
			ID:           "a1",
			Kind:         internal.KindJot,
			TargetScreen: "quickjot",
			Payload: internal.Payload{
				Title: "Morning jot",
				Subitems: []internal.Subitem{
					{Title: "Email the landlord", Category: "work"},
					{Title: "Pick up groceries", Category: "errands"},
				},
			},
			CapturedAt: 1700000000000,
		},
		{
			ID:           "a2",
			Kind:         internal.KindNote,
			TargetScreen: "notes",
			Payload:      internal.Payload{Title: "Buy milk", Body: "2% if they have it"},
		},
	}

	var buf bytes.Buffer
	exporter := &MarkdownExporter{}
	if err := exporter.Export(actions, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	out := buf.String()
	for _, want := range []string{
		"# Pending Guest Actions",
		"**Count:** 2",
		"## Morning jot",
		"- Email the landlord (work)",
		"- Pick up groceries (errands)",
		"## Buy milk",
		"2% if they have it",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Export() output missing %q:\n%s", want, out)
		}
	}
}
