package export

import (
	"fmt"
	"io"
	"time"

	"guestjot/internal"
)

// MarkdownExporter exports pending actions in Markdown format
type MarkdownExporter struct{}

// Export exports pending actions to Markdown format
func (e *MarkdownExporter) Export(actions []*internal.PendingAction, w io.Writer) error {
	_, _ = fmt.Fprintf(w, "# Pending Guest Actions\n\n")
	_, _ = fmt.Fprintf(w, "**Count:** %d\n\n", len(actions))

	for i, action := range actions {
		_, _ = fmt.Fprintf(w, "## %s\n\n", action.DisplayTitle())
		_, _ = fmt.Fprintf(w, "**Kind:** %s  \n", action.Kind)
		_, _ = fmt.Fprintf(w, "**Screen:** %s  \n", action.TargetScreen)
		if captured := action.CapturedTime(); !captured.IsZero() {
			_, _ = fmt.Fprintf(w, "**Captured:** %s  \n", captured.Format(time.RFC3339))
		}
		_, _ = fmt.Fprintf(w, "\n")

		if action.Payload.Body != "" {
			_, _ = fmt.Fprintf(w, "%s\n\n", action.Payload.Body)
		}

		if len(action.Payload.Subitems) > 0 {
			_, _ = fmt.Fprintf(w, "**Subtasks:**\n\n")
			for _, sub := range action.Payload.Subitems {
				if sub.Category != "" {
					_, _ = fmt.Fprintf(w, "- %s (%s)\n", sub.Title, sub.Category)
				} else {
					_, _ = fmt.Fprintf(w, "- %s\n", sub.Title)
				}
			}
			_, _ = fmt.Fprintf(w, "\n")
		}

		if i < len(actions)-1 {
			_, _ = fmt.Fprintf(w, "---\n\n")
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *MarkdownExporter) Extension() string {
	return "md"
}
