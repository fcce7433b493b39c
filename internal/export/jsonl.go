package export

import (
	"encoding/json"
	"fmt"
	"io"

	"guestjot/internal"
)

// JSONLExporter exports pending actions in JSONL format (one action per line)
type JSONLExporter struct{}

// Export exports pending actions to JSONL format
func (e *JSONLExporter) Export(actions []*internal.PendingAction, w io.Writer) error {
	enc := json.NewEncoder(w)

	for _, action := range actions {
		if err := enc.Encode(action); err != nil {
			return fmt.Errorf("failed to encode pending action: %w", err)
		}
	}

	return nil
}

// Extension returns the file extension for this format
func (e *JSONLExporter) Extension() string {
	return "jsonl"
}
