package internal

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Backend is the narrow create-operation contract the replayer depends
// on. The managed backend's broader schema is out of scope; replay only
// needs to mint records.
type Backend interface {
	CreateNote(ctx context.Context, title, body string) (string, error)
	CreateTask(ctx context.Context, title, category string) (string, error)
	CreateJournalEntry(ctx context.Context, body string) (string, error)
	CreateCoreMemory(ctx context.Context, body string) (string, error)
}

// HTTPBackend talks to the hosted backend over JSON POSTs. Each create
// operation maps to one collection endpoint and returns the created
// record's identifier.
type HTTPBackend struct {
	BaseURL string
	Token   string
	Client  *http.Client
}

// NewHTTPBackend creates an HTTPBackend with a sane default timeout
func NewHTTPBackend(baseURL, token string) *HTTPBackend {
	return &HTTPBackend{
		BaseURL: baseURL,
		Token:   token,
		Client:  &http.Client{Timeout: 15 * time.Second},
	}
}

type createResponse struct {
	ID string `json:"id"`
}

func (b *HTTPBackend) create(ctx context.Context, path string, payload interface{}) (string, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if b.Token != "" {
		req.Header.Set("Authorization", "Bearer "+b.Token)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := client.Do(req)
	if err != nil {
		return "", fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("backend returned %d: %s", resp.StatusCode, string(data))
	}

	var created createResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return "", fmt.Errorf("failed to decode response: %w", err)
	}
	if created.ID == "" {
		return "", fmt.Errorf("backend returned no record id")
	}

	return created.ID, nil
}

// CreateNote creates a note record
func (b *HTTPBackend) CreateNote(ctx context.Context, title, body string) (string, error) {
	return b.create(ctx, "/notes", map[string]string{"title": title, "body": body})
}

// CreateTask creates a task record
func (b *HTTPBackend) CreateTask(ctx context.Context, title, category string) (string, error) {
	return b.create(ctx, "/tasks", map[string]string{"title": title, "category": category})
}

// CreateJournalEntry creates a journal entry record
func (b *HTTPBackend) CreateJournalEntry(ctx context.Context, body string) (string, error) {
	return b.create(ctx, "/journal", map[string]string{"body": body})
}

// CreateCoreMemory creates a core memory record
func (b *HTTPBackend) CreateCoreMemory(ctx context.Context, body string) (string, error) {
	return b.create(ctx, "/memories", map[string]string{"body": body})
}
