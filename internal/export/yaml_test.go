package export

import (
	"bytes"
	"testing"

	"guestjot/internal"
	"gopkg.in/yaml.v3"
)

func TestYAMLExporter(t *testing.T) {
	actions := []*internal.PendingAction{
		{ID: "a1", Kind: internal.KindTask, TargetScreen: "todos", Payload: internal.Payload{Title: "Email the landlord", Category: "work"}},
	}

	var buf bytes.Buffer
	exporter := &YAMLExporter{}
	if err := exporter.Export(actions, &buf); err != nil {
		t.Fatalf("Export() error = %v", err)
	}

	var decoded []map[string]interface{}
	if err := yaml.Unmarshal(buf.Bytes(), &decoded); err != nil {
		t.Fatalf("output is not valid YAML: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("decoded %d actions, want 1", len(decoded))
	}
}
