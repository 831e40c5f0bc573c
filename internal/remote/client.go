// Package remote syncs the question list with a shared document store over
// HTTP. The store is a plain collection API: POST adds a document, GET lists
// the collection. Sync is optional; without a configured URL every call
// reports the client as disabled.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/opositest/backend/internal/domain/question"
)

const collectionPath = "/preguntas"

// ErrDisabled is returned when no remote URL is configured.
var ErrDisabled = errors.New("remote sync is not configured")

// Client talks to the shared question collection.
type Client struct {
	url    string // base URL, empty disables the client
	client *http.Client
}

// NewClient builds a client for the given base URL. An empty URL yields a
// disabled client rather than an error: running without sync is a supported
// configuration.
func NewClient(url string) *Client {
	return &Client{
		url: url,
		client: &http.Client{
			Timeout: 15 * time.Second,
		},
	}
}

// Enabled reports whether a remote URL is configured.
func (c *Client) Enabled() bool {
	return c.url != ""
}

// document is the wire shape of one stored question. The creation date is
// set by the sender and only used server-side.
type document struct {
	ID       string          `json:"id,omitempty"`
	Question string          `json:"question"`
	Options  []string        `json:"options"`
	Answer   question.Letter `json:"answer"`
	Topic    string          `json:"tema"`
	Created  time.Time       `json:"fechaCreacion,omitempty"`
}

// AddQuestion uploads one question to the shared collection. A single
// attempt: on failure the question stays local and the caller reports it.
func (c *Client) AddQuestion(ctx context.Context, q question.Question) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	doc := document{
		Question: q.Text,
		Options:  q.Options,
		Answer:   q.Answer,
		Topic:    q.Topic,
		Created:  time.Now(),
	}
	jsonData, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("failed to marshal question: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.url+collectionPath, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("remote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return fmt.Errorf("remote returned status %d", resp.StatusCode)
	}
	return nil
}

// ListQuestions downloads the full shared collection. Documents that fail
// local validation are skipped, never fatal: one bad document must not block
// the fetch.
func (c *Client) ListQuestions(ctx context.Context) ([]question.Question, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url+collectionPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("remote request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("remote returned status %d", resp.StatusCode)
	}

	var docs []document
	if err := json.NewDecoder(resp.Body).Decode(&docs); err != nil {
		return nil, fmt.Errorf("failed to decode collection: %w", err)
	}

	qs := make([]question.Question, 0, len(docs))
	for _, doc := range docs {
		q, err := question.New(doc.Question, doc.Options, doc.Answer, doc.Topic)
		if err != nil {
			continue
		}
		if doc.ID != "" {
			q.ID = doc.ID
		}
		qs = append(qs, q)
	}
	return qs, nil
}
