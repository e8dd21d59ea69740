package genclient

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Token = "test-token"
	c, err := New(cfg)
	require.NoError(t, err)
	return c
}

func TestGenerateLessonCreated(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody map[string]any

	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	})

	res, err := c.GenerateLesson(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, StatusCreated, res.Status)
	assert.Equal(t, "Bearer test-token", gotAuth)
	assert.Equal(t, "/functions/v1/generate-lesson", gotPath)
	assert.Equal(t, "sub-1", gotBody["subtopic_id"])
}

func TestGeneratePracticeSkipped(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		var body map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, float64(30), body["count"])
		json.NewEncoder(w).Encode(map[string]any{"ok": true, "skipped": true, "existing": 42})
	})

	res, err := c.GeneratePractice(context.Background(), "sub-1", 30)
	require.NoError(t, err)
	assert.Equal(t, StatusExists, res.Status)
	assert.Equal(t, 42, res.Existing)
	assert.Contains(t, res.Message, "42")
}

func TestNon2xxCollapsesToFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte("upstream model unavailable"))
	})

	res, err := c.GenerateLesson(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Contains(t, res.Message, "HTTP 500")
	assert.Contains(t, res.Message, "upstream model unavailable")
}

func TestOkFalseCollapsesToFailed(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"ok": false, "error": "Subtopic not found"})
	})

	res, err := c.GenerateLesson(context.Background(), "missing")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.Equal(t, "Subtopic not found", res.Message)
}

func TestLongErrorBodyTruncated(t *testing.T) {
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte(strings.Repeat("x", 500)))
	})

	res, err := c.GenerateLesson(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.LessOrEqual(t, len(res.Message), len("HTTP 502: ")+80)
}

func TestTimeoutCollapsesToFailed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		json.NewEncoder(w).Encode(map[string]any{"ok": true})
	}))
	t.Cleanup(srv.Close)

	cfg := DefaultConfig()
	cfg.BaseURL = srv.URL
	cfg.Timeout = 20 * time.Millisecond
	c, err := New(cfg)
	require.NoError(t, err)

	res, err := c.GenerateLesson(context.Background(), "sub-1")
	require.NoError(t, err)
	assert.Equal(t, StatusFailed, res.Status)
	assert.NotEmpty(t, res.Message)
}

func TestValidateRequiresBaseURL(t *testing.T) {
	_, err := New(DefaultConfig())
	require.Error(t, err)
}
