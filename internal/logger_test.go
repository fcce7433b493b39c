package internal

import (
	"testing"
)

func TestSetVerbose(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()

	SetVerbose(true)
	if logLevel != LogLevelDebug {
		t.Errorf("SetVerbose(true) logLevel = %v, want LogLevelDebug", logLevel)
	}

	SetVerbose(false)
	if logLevel != LogLevelInfo {
		t.Errorf("SetVerbose(false) logLevel = %v, want LogLevelInfo", logLevel)
	}
}

func TestLogFunctions(t *testing.T) {
	originalLevel := logLevel
	defer func() { logLevel = originalLevel }()
	SetLogLevel(LogLevelDebug)

	LogError("store error: %v", "boom")
	LogWarn("degraded capture")
	LogInfo("replay complete")
	LogDebug("skipping stale clear")
}
