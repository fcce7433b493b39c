package export

import (
	"io"

	"guestjot/internal"
	"gopkg.in/yaml.v3"
)

// YAMLExporter exports pending actions in YAML format
type YAMLExporter struct{}

// Export exports pending actions to YAML format
func (e *YAMLExporter) Export(actions []*internal.PendingAction, w io.Writer) error {
	enc := yaml.NewEncoder(w)
	defer func() { _ = enc.Close() }()

	return enc.Encode(actions)
}

// Extension returns the file extension for this format
func (e *YAMLExporter) Extension() string {
	return "yaml"
}
