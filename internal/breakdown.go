package internal

import (
	"strings"
	"time"
	"unicode"
)

// maxJotSubitems caps how many subtasks one quick-jot can fan out into.
const maxJotSubitems = 10

// BreakdownJot splits free-form quick-jot text into derived subtasks.
// Bullet and numbered lines are treated as one subtask each; a single
// unstructured line is split on semicolons. Duplicates (case-insensitive)
// are dropped and each subtask gets a heuristic category.
func BreakdownJot(text string) []Subitem {
	lines := strings.Split(text, "\n")
	if len(lines) == 1 {
		lines = strings.Split(text, ";")
	}

	seen := make(map[string]bool)
	var items []Subitem
	for _, line := range lines {
		title := stripBulletPrefix(strings.TrimSpace(line))
		if title == "" {
			continue
		}
		lower := strings.ToLower(title)
		if seen[lower] {
			continue
		}
		seen[lower] = true

		items = append(items, Subitem{
			Title:    title,
			Category: CategorizeTask(title),
		})
		if len(items) == maxJotSubitems {
			break
		}
	}

	return items
}

// stripBulletPrefix removes leading list markers: "-", "*", "•", "1.",
// "2)", checkbox brackets.
func stripBulletPrefix(s string) string {
	s = strings.TrimLeft(s, "-*•– ")
	s = strings.TrimSpace(s)

	// numbered prefixes like "1." or "12)"
	i := 0
	for i < len(s) && unicode.IsDigit(rune(s[i])) {
		i++
	}
	if i > 0 && i < len(s) && (s[i] == '.' || s[i] == ')') {
		s = strings.TrimSpace(s[i+1:])
	}

	// checkbox prefix "[ ]" / "[x]"
	if strings.HasPrefix(s, "[") {
		if end := strings.Index(s, "]"); end >= 0 && end <= 3 {
			s = strings.TrimSpace(s[end+1:])
		}
	}

	return s
}

var categoryKeywords = map[string][]string{
	"errands": {"buy", "pick up", "grocery", "groceries", "shop", "order", "return", "mail", "post"},
	"work":    {"email", "meeting", "report", "review", "deadline", "call", "slides", "standup", "deploy"},
	"health":  {"gym", "run", "workout", "doctor", "dentist", "meds", "medication", "yoga", "sleep"},
	"home":    {"clean", "laundry", "dishes", "fix", "repair", "water plants", "vacuum", "trash"},
}

// CategorizeTask assigns a category from keyword heuristics, defaulting
// to "general".
func CategorizeTask(title string) string {
	lower := strings.ToLower(title)
	for _, category := range []string{"errands", "work", "health", "home"} {
		for _, keyword := range categoryKeywords[category] {
			if strings.Contains(lower, keyword) {
				return category
			}
		}
	}
	return "general"
}

// AgeBucket buckets a capture timestamp relative to now for listings:
// "today", "yesterday", "this week", "older".
func AgeBucket(capturedAtMillis int64, now time.Time) string {
	captured := time.Unix(0, capturedAtMillis*int64(time.Millisecond))

	y, m, d := now.Date()
	startOfToday := time.Date(y, m, d, 0, 0, 0, 0, now.Location())

	switch {
	case !captured.Before(startOfToday):
		return "today"
	case !captured.Before(startOfToday.AddDate(0, 0, -1)):
		return "yesterday"
	case !captured.Before(startOfToday.AddDate(0, 0, -6)):
		return "this week"
	default:
		return "older"
	}
}
