package internal

import "fmt"

// StorageError represents errors reading or writing the local store
type StorageError struct {
	Key string
	Op  string // "open", "read", "write", "delete", "verify"
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage error: %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// ParseError represents errors parsing a stored value
type ParseError struct {
	Key string // storage key
	Err error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error %s: %v", e.Key, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

// ReplayError represents a failure migrating one pending action into
// backend records. Item-level failures are carried in the replay report;
// this error covers the action as a whole.
type ReplayError struct {
	Screen string
	Kind   ActionKind
	Failed int // items that exhausted retries
	Total  int
	Err    error
}

func (e *ReplayError) Error() string {
	return fmt.Sprintf("replay error [%s/%s]: %d of %d item(s) failed: %v", e.Kind, e.Screen, e.Failed, e.Total, e.Err)
}

func (e *ReplayError) Unwrap() error {
	return e.Err
}

// ConfigError represents errors loading or saving the config file
type ConfigError struct {
	Path string
	Op   string // "read", "parse", "write"
	Err  error
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("config error: %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}
