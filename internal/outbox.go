package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
)

// OutboxBackend is a local stand-in for the hosted backend: created
// records are appended to a JSONL file. It makes replay observable when
// no backend URL is configured, e.g. offline or in development.
type OutboxBackend struct {
	Path string

	mu sync.Mutex
}

// NewOutboxBackend creates an OutboxBackend writing to the given file
func NewOutboxBackend(path string) *OutboxBackend {
	return &OutboxBackend{Path: path}
}

// OutboxRecord is one created record in the outbox file
type OutboxRecord struct {
	ID        string `json:"id"`
	Type      string `json:"type"`
	Title     string `json:"title,omitempty"`
	Body      string `json:"body,omitempty"`
	Category  string `json:"category,omitempty"`
	CreatedAt string `json:"createdAt"`
}

func (o *OutboxBackend) append(record OutboxRecord) (string, error) {
	o.mu.Lock()
	defer o.mu.Unlock()

	record.ID = uuid.NewString()
	record.CreatedAt = time.Now().UTC().Format(time.RFC3339)

	if err := os.MkdirAll(filepath.Dir(o.Path), 0700); err != nil {
		return "", fmt.Errorf("failed to create outbox directory: %w", err)
	}

	f, err := os.OpenFile(o.Path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return "", fmt.Errorf("failed to open outbox: %w", err)
	}
	defer f.Close()

	enc := json.NewEncoder(f)
	if err := enc.Encode(record); err != nil {
		return "", fmt.Errorf("failed to append outbox record: %w", err)
	}

	return record.ID, nil
}

// CreateNote appends a note record to the outbox
func (o *OutboxBackend) CreateNote(_ context.Context, title, body string) (string, error) {
	return o.append(OutboxRecord{Type: "note", Title: title, Body: body})
}

// CreateTask appends a task record to the outbox
func (o *OutboxBackend) CreateTask(_ context.Context, title, category string) (string, error) {
	return o.append(OutboxRecord{Type: "task", Title: title, Category: category})
}

// CreateJournalEntry appends a journal record to the outbox
func (o *OutboxBackend) CreateJournalEntry(_ context.Context, body string) (string, error) {
	return o.append(OutboxRecord{Type: "journal", Body: body})
}

// CreateCoreMemory appends a core memory record to the outbox
func (o *OutboxBackend) CreateCoreMemory(_ context.Context, body string) (string, error) {
	return o.append(OutboxRecord{Type: "memory", Body: body})
}

// ReadOutbox loads every record from an outbox file, skipping malformed
// lines.
func ReadOutbox(path string) ([]OutboxRecord, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read outbox: %w", err)
	}

	var records []OutboxRecord
	dec := json.NewDecoder(bytes.NewReader(data))
	for dec.More() {
		var record OutboxRecord
		if err := dec.Decode(&record); err != nil {
			LogDebug("Skipping malformed outbox record: %v", err)
			break
		}
		records = append(records, record)
	}

	return records, nil
}
