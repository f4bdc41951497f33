package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threerivers/guide/internal/config"
	"github.com/threerivers/guide/internal/domain"
	"github.com/threerivers/guide/internal/logger"
)

func testConfig(baseURL string) config.LLMConfig {
	return config.LLMConfig{
		APIKey:            "test-key",
		BaseURL:           baseURL,
		Model:             "test-model",
		Timeout:           2 * time.Second,
		MaxHistory:        3,
		RequestsPerSecond: 100,
	}
}

func completionResponse(text string) string {
	return `{"choices": [{"message": {"role": "assistant", "content": ` +
		mustJSON(text) + `}}]}`
}

func mustJSON(s string) string {
	b, _ := json.Marshal(s)
	return string(b)
}

func TestEnhance_Success(t *testing.T) {
	t.Parallel()

	var gotReq chatRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionResponse("Try Morcilla.")))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.NewNop())

	got, err := c.Enhance(context.Background(), "where should I eat", nil)
	require.NoError(t, err)
	assert.Equal(t, "Try Morcilla.", got)

	assert.Equal(t, "Bearer test-key", gotAuth)
	assert.Equal(t, "test-model", gotReq.Model)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Contains(t, gotReq.Messages[0].Content, "Pittsburgh")
	assert.Equal(t, "user", gotReq.Messages[1].Role)
	assert.Equal(t, "where should I eat", gotReq.Messages[1].Content)
}

func TestEnhance_TrimsHistory(t *testing.T) {
	t.Parallel()

	var gotReq chatRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		_, _ = w.Write([]byte(completionResponse("ok")))
	}))
	defer srv.Close()

	c := NewClient(testConfig(srv.URL), logger.NewNop())

	history := []domain.Message{
		{Role: domain.RoleUser, Content: "one"},
		{Role: domain.RoleAssistant, Content: "two"},
		{Role: domain.RoleUser, Content: "three"},
		{Role: domain.RoleAssistant, Content: "four"},
		{Role: domain.RoleUser, Content: "five"},
	}
	_, err := c.Enhance(context.Background(), "question", history)
	require.NoError(t, err)

	// system + last 3 history turns + question
	require.Len(t, gotReq.Messages, 5)
	assert.Equal(t, "three", gotReq.Messages[1].Content)
	assert.Equal(t, "four", gotReq.Messages[2].Content)
	assert.Equal(t, "five", gotReq.Messages[3].Content)
}

func TestEnhance_Failures(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			"server error", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			},
		},
		{
			"rate limited upstream", func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusTooManyRequests)
			},
		},
		{
			"malformed body", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices": `))
			},
		},
		{
			"no choices", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(`{"choices": []}`))
			},
		},
		{
			"empty answer", func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(completionResponse("   ")))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			c := NewClient(testConfig(srv.URL), logger.NewNop())
			_, err := c.Enhance(context.Background(), "question", nil)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrUnavailable), "got %v", err)
		})
	}
}

func TestEnhance_UnreachableHost(t *testing.T) {
	t.Parallel()

	c := NewClient(testConfig("http://127.0.0.1:1"), logger.NewNop())
	_, err := c.Enhance(context.Background(), "question", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestEnhance_RateLimiter(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(completionResponse("ok")))
	}))
	defer srv.Close()

	cfg := testConfig(srv.URL)
	cfg.RequestsPerSecond = 1
	c := NewClient(cfg, logger.NewNop())

	_, err := c.Enhance(context.Background(), "first", nil)
	require.NoError(t, err)

	// Burst of 1 is spent; the immediate second call is rejected locally.
	_, err = c.Enhance(context.Background(), "second", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnavailable)
}
