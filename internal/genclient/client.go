// Package genclient is the HTTP client for a remote content-generation
// endpoint. One authenticated POST per artifact; the endpoint does its
// own existence check server-side and may answer "skipped" instead of
// doing work. All failure causes — network, non-2xx, ok:false — collapse
// into a Failed result with a short human-readable reason. The client
// never retries; re-running a topic is the retry mechanism.
package genclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
)

// Status tags a generation result.
type Status string

const (
	StatusCreated Status = "created"
	StatusExists  Status = "exists"
	StatusFailed  Status = "failed"
)

// Result is the classified outcome of one generation request.
type Result struct {
	Status   Status
	Message  string // failure reason, or a short success/skip note
	Inserted int    // questions inserted (practice endpoint)
	Existing int    // questions already present (practice endpoint)
}

// envelope is the endpoint's JSON response shape.
type envelope struct {
	OK       bool   `json:"ok"`
	Error    string `json:"error"`
	Skipped  bool   `json:"skipped"`
	Existing int    `json:"existing"`
	Inserted int    `json:"inserted"`
}

// Client issues generation requests against a remote endpoint.
type Client struct {
	cfg  Config
	http *http.Client
}

// New creates a Client from cfg.
func New(cfg Config) (*Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Client{
		cfg: cfg,
		// The timeout is the only cancellation the orchestrator has for a
		// hung upstream call; without it a stuck request stalls its topic
		// until the session ends.
		http: &http.Client{Timeout: cfg.Timeout},
	}, nil
}

// GenerateLesson requests lesson generation for one subtopic.
func (c *Client) GenerateLesson(ctx context.Context, subtopicID string) (Result, error) {
	return c.post(ctx, c.cfg.LessonPath, map[string]any{
		"subtopic_id": subtopicID,
	})
}

// GeneratePractice requests count extended practice questions for one
// subtopic.
func (c *Client) GeneratePractice(ctx context.Context, subtopicID string, count int) (Result, error) {
	return c.post(ctx, c.cfg.PracticePath, map[string]any{
		"subtopic_id": subtopicID,
		"count":       count,
	})
}

func (c *Client) post(ctx context.Context, path string, body map[string]any) (Result, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return Result{}, fmt.Errorf("marshal request: %w", err)
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + path
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
	if err != nil {
		return Result{}, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if c.cfg.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.cfg.Token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return Result{Status: StatusFailed, Message: err.Error()}, nil
	}
	defer resp.Body.Close()

	raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return Result{
			Status:  StatusFailed,
			Message: httpFailure(resp.StatusCode, raw),
		}, nil
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return Result{Status: StatusFailed, Message: "bad response: " + truncate(string(raw), 80)}, nil
	}

	switch {
	case !env.OK:
		msg := env.Error
		if msg == "" {
			msg = "endpoint reported failure"
		}
		return Result{Status: StatusFailed, Message: msg}, nil
	case env.Skipped:
		return Result{
			Status:   StatusExists,
			Message:  fmt.Sprintf("already has %d", env.Existing),
			Existing: env.Existing,
		}, nil
	default:
		return Result{Status: StatusCreated, Inserted: env.Inserted}, nil
	}
}

// httpFailure formats a non-2xx response as "HTTP <status>: <truncated body>".
func httpFailure(status int, body []byte) string {
	text := truncate(strings.TrimSpace(string(body)), 80)
	if text == "" {
		return fmt.Sprintf("HTTP %d", status)
	}
	return fmt.Sprintf("HTTP %d: %s", status, text)
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
