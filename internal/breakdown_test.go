package internal

import (
	"testing"
	"time"
)

func TestBreakdownJot(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "bullet list",
			text: "- Email the landlord\n- Pick up groceries\n- Fix the sink",
			want: []string{"Email the landlord", "Pick up groceries", "Fix the sink"},
		},
		{
			name: "numbered list",
			text: "1. Email the landlord\n2) Pick up groceries",
			want: []string{"Email the landlord", "Pick up groceries"},
		},
		{
			name: "checkboxes",
			text: "[ ] Email the landlord\n[x] Pick up groceries",
			want: []string{"Email the landlord", "Pick up groceries"},
		},
		{
			name: "single line with semicolons",
			text: "Email the landlord; Pick up groceries",
			want: []string{"Email the landlord", "Pick up groceries"},
		},
		{
			name: "blank lines skipped",
			text: "Email the landlord\n\n\nPick up groceries\n",
			want: []string{"Email the landlord", "Pick up groceries"},
		},
		{
			name: "case-insensitive dedupe",
			text: "Buy milk\nbuy milk\nBuy eggs",
			want: []string{"Buy milk", "Buy eggs"},
		},
		{
			name: "empty input",
			text: "   \n  ",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := BreakdownJot(tt.text)
			if len(got) != len(tt.want) {
				t.Fatalf("BreakdownJot() returned %d items, want %d: %+v", len(got), len(tt.want), got)
			}
			for i, sub := range got {
				if sub.Title != tt.want[i] {
					t.Errorf("item[%d] = %q, want %q", i, sub.Title, tt.want[i])
				}
				if sub.Category == "" {
					t.Errorf("item[%d] has no category", i)
				}
			}
		})
	}
}

func TestBreakdownJot_CapsSubitems(t *testing.T) {
	text := ""
	for i := 0; i < 20; i++ {
		text += "- item " + string(rune('a'+i)) + "\n"
	}
	got := BreakdownJot(text)
	if len(got) != maxJotSubitems {
		t.Errorf("BreakdownJot() returned %d items, want cap %d", len(got), maxJotSubitems)
	}
}

func TestCategorizeTask(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Buy milk", "errands"},
		{"Pick up the dry cleaning", "errands"},
		{"Email the landlord", "work"},
		{"Prep slides for standup", "work"},
		{"Book a dentist appointment", "health"},
		{"Morning gym session", "health"},
		{"Do the laundry", "home"},
		{"Water plants", "home"},
		{"Think about vacation", "general"},
	}
	for _, tt := range tests {
		t.Run(tt.title, func(t *testing.T) {
			if got := CategorizeTask(tt.title); got != tt.want {
				t.Errorf("CategorizeTask(%q) = %q, want %q", tt.title, got, tt.want)
			}
		})
	}
}

func TestAgeBucket(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 0, 0, 0, time.UTC)
	millis := func(t time.Time) int64 { return t.UnixMilli() }

	tests := []struct {
		name     string
		captured time.Time
		want     string
	}{
		{"an hour ago", now.Add(-time.Hour), "today"},
		{"midnight today", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), "today"},
		{"last night", time.Date(2024, 3, 14, 23, 0, 0, 0, time.UTC), "yesterday"},
		{"four days ago", now.AddDate(0, 0, -4), "this week"},
		{"two weeks ago", now.AddDate(0, 0, -14), "older"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := AgeBucket(millis(tt.captured), now); got != tt.want {
				t.Errorf("AgeBucket(%v) = %q, want %q", tt.captured, got, tt.want)
			}
		})
	}
}
