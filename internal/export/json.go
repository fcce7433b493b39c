package export

import (
	"encoding/json"
	"io"

	"guestjot/internal"
)

// JSONExporter exports pending actions in JSON format (pretty-printed)
type JSONExporter struct{}

// Export exports pending actions to JSON format
func (e *JSONExporter) Export(actions []*internal.PendingAction, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(actions)
}

// Extension returns the file extension for this format
func (e *JSONExporter) Extension() string {
	return "json"
}
