package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/threerivers/guide/internal/catalog"
	"github.com/threerivers/guide/internal/domain"
	"github.com/threerivers/guide/internal/guide"
	"github.com/threerivers/guide/internal/intent"
	"github.com/threerivers/guide/internal/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestCatalog() *catalog.Catalog {
	return catalog.New(catalog.WithClock(func() time.Time {
		return time.Date(2026, time.January, 7, 12, 0, 0, 0, time.UTC)
	}))
}

func newTestRouter(handler *Handler) *gin.Engine {
	router := gin.New()
	SetupRoutes(router, handler)
	return router
}

func newTestHandler(dir guide.Directory, enhancer Enhancer) *Handler {
	log := logger.NewNop()
	classifier := intent.NewClassifier(intent.DefaultRules(), log)
	return NewHandler(classifier, guide.New(dir, log), enhancer, nil, log)
}

func postQuestion(t *testing.T, router *gin.Engine, body string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/ai-guide",
		bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	router.ServeHTTP(w, req)
	return w
}

func TestAsk_Success(t *testing.T) {
	t.Parallel()

	router := newTestRouter(newTestHandler(newTestCatalog(), nil))
	w := postQuestion(t, router, `{"question": "where should I eat tonight?"}`)

	require.Equal(t, http.StatusOK, w.Code)

	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.Answer)
	assert.Len(t, resp.Suggestions, 4)
}

func TestAsk_InvalidQuestion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{"empty question", `{"question": ""}`},
		{"whitespace question", `{"question": "   "}`},
		{"missing question", `{}`},
		{"non-string question", `{"question": 42}`},
		{"malformed json", `{"question": `},
	}

	router := newTestRouter(newTestHandler(newTestCatalog(), nil))
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			w := postQuestion(t, router, tt.body)

			require.Equal(t, http.StatusBadRequest, w.Code)
			assert.JSONEq(t, `{"error": "Invalid question"}`, w.Body.String())
		})
	}
}

// panickyDirectory simulates a broken data provider.
type panickyDirectory struct {
	guide.Directory
}

func (panickyDirectory) Restaurants() []domain.Restaurant { panic("fixture store unavailable") }

func TestAsk_InternalErrorReturnsApology(t *testing.T) {
	t.Parallel()

	dir := panickyDirectory{Directory: newTestCatalog()}
	router := newTestRouter(newTestHandler(dir, nil))

	w := postQuestion(t, router, `{"question": "where should I eat"}`)

	require.Equal(t, http.StatusInternalServerError, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Server error", resp["error"])
	assert.Equal(t, apologyAnswer, resp["answer"])
	assert.NotContains(t, resp, "suggestions")
}

// stubEnhancer returns a canned answer or error.
type stubEnhancer struct {
	text string
	err  error

	gotQuestion string
	gotHistory  []domain.Message
}

func (s *stubEnhancer) Enhance(_ context.Context, question string, history []domain.Message) (string, error) {
	s.gotQuestion = question
	s.gotHistory = history
	return s.text, s.err
}

func TestAsk_NoEnhancerKeepsComposedAnswer(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog()
	log := logger.NewNop()
	g := guide.New(cat, log)

	const question = "best brunch restaurants"
	want := g.Answer(intent.Dining, question)

	router := newTestRouter(newTestHandler(cat, nil))
	w := postQuestion(t, router, `{"question": "`+question+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, want.Text, resp.Answer)
	assert.Equal(t, want.Suggestions, resp.Suggestions)
}

func TestAsk_EnhancerFailureFallsBack(t *testing.T) {
	t.Parallel()

	cat := newTestCatalog()
	g := guide.New(cat, logger.NewNop())

	const question = "best brunch restaurants"
	want := g.Answer(intent.Dining, question)

	enhancer := &stubEnhancer{err: errors.New("model offline")}
	router := newTestRouter(newTestHandler(cat, enhancer))
	w := postQuestion(t, router, `{"question": "`+question+`"}`)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, want.Text, resp.Answer, "enhancer failure must not change the answer")
}

func TestAsk_EnhancerSuccessOverridesAnswer(t *testing.T) {
	t.Parallel()

	enhancer := &stubEnhancer{text: "Here's a better answer."}
	router := newTestRouter(newTestHandler(newTestCatalog(), enhancer))

	body := `{"question": "best brunch restaurants", "conversationHistory": [{"role": "user", "content": "hi"}]}`
	w := postQuestion(t, router, body)

	require.Equal(t, http.StatusOK, w.Code)
	var resp AskResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Here's a better answer.", resp.Answer)
	// Suggestions stay rule-based even when the text is replaced.
	assert.Len(t, resp.Suggestions, 4)

	assert.Equal(t, "best brunch restaurants", enhancer.gotQuestion)
	require.Len(t, enhancer.gotHistory, 1)
	assert.Equal(t, domain.RoleUser, enhancer.gotHistory[0].Role)
}
