package httpserver_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	ginpkg "github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/threerivers/guide/internal/httpserver"
	"github.com/threerivers/guide/internal/logger"
)

func init() {
	ginpkg.SetMode(ginpkg.TestMode)
}

func newTestRouter() *ginpkg.Engine {
	log := logger.NewNop()
	router := ginpkg.New()
	router.Use(httpserver.RecoveryMiddleware(log))
	router.Use(httpserver.RequestIDMiddleware())
	router.Use(httpserver.LoggerMiddleware(log))
	router.Use(httpserver.CORSMiddleware(httpserver.CORSConfig{Enabled: true}))
	router.GET("/test", func(c *ginpkg.Context) {
		c.String(http.StatusOK, "ok")
	})
	return router
}

func TestRequestIDMiddleware_GeneratesID(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	router.ServeHTTP(w, req)

	reqID := w.Header().Get("X-Request-ID")
	if reqID == "" {
		t.Fatal("X-Request-ID response header is empty, want a generated ID")
	}
	if _, err := uuid.Parse(reqID); err != nil {
		t.Errorf("generated request ID %q is not a UUID: %v", reqID, err)
	}
}

func TestRequestIDMiddleware_PreservesExistingID(t *testing.T) {
	t.Parallel()

	const inboundID = "trace-from-upstream-abc123"

	router := ginpkg.New()
	router.Use(httpserver.RequestIDMiddleware())

	var gotGinCtxID string
	router.GET("/test", func(c *ginpkg.Context) {
		gotGinCtxID = c.GetString(httpserver.RequestIDKey)
		c.String(http.StatusOK, "ok")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/test", http.NoBody)
	req.Header.Set("X-Request-ID", inboundID)
	router.ServeHTTP(w, req)

	if got := w.Header().Get("X-Request-ID"); got != inboundID {
		t.Errorf("response X-Request-ID = %q, want %q", got, inboundID)
	}
	if gotGinCtxID != inboundID {
		t.Errorf("gin context request_id = %q, want %q", gotGinCtxID, inboundID)
	}
}

func TestRecoveryMiddleware_Returns500(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	router.Use(httpserver.RecoveryMiddleware(logger.NewNop()))
	router.GET("/boom", func(*ginpkg.Context) {
		panic("kaboom")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", http.NoBody)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
}

func TestCORSMiddleware_Preflight(t *testing.T) {
	t.Parallel()

	router := newTestRouter()

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/test", http.NoBody)
	req.Header.Set("Origin", "https://example.com")
	router.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Errorf("preflight status = %d, want %d", w.Code, http.StatusNoContent)
	}
	if got := w.Header().Get("Access-Control-Allow-Origin"); got != "*" {
		t.Errorf("Access-Control-Allow-Origin = %q, want %q", got, "*")
	}
}

func TestHealthRoutes(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	httpserver.RegisterHealthRoutes(router, httpserver.HealthOptions{
		ServiceName:    "guide",
		ServiceVersion: "test",
	})

	for _, path := range []string{"/health", "/health/live", "/health/ready"} {
		w := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, path, http.NoBody)
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("GET %s status = %d, want %d", path, w.Code, http.StatusOK)
		}
	}
}

func TestHealthReady_FailingCheck(t *testing.T) {
	t.Parallel()

	router := ginpkg.New()
	httpserver.RegisterHealthRoutes(router, httpserver.HealthOptions{
		ServiceName:    "guide",
		ServiceVersion: "test",
		Checks: map[string]httpserver.HealthChecker{
			"catalog": func() error { return http.ErrServerClosed },
		},
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/health/ready", http.NoBody)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusServiceUnavailable {
		t.Errorf("status = %d, want %d", w.Code, http.StatusServiceUnavailable)
	}
}
