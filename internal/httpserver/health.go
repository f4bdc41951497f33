package httpserver

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// HealthChecker reports whether a named dependency is usable.
type HealthChecker func() error

// HealthOptions configures the health endpoints.
type HealthOptions struct {
	ServiceName    string
	ServiceVersion string
	Checks         map[string]HealthChecker
}

type healthResponse struct {
	Status    string            `json:"status"`
	Service   string            `json:"service"`
	Version   string            `json:"version"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

// RegisterHealthRoutes mounts /health, /health/live, and /health/ready.
// Liveness always succeeds once the process is serving; readiness runs the
// configured dependency checks and degrades to 503 when any fails.
func RegisterHealthRoutes(router *gin.Engine, opts HealthOptions) {
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, baseHealth(opts, "healthy"))
	})

	router.GET("/health/live", func(c *gin.Context) {
		c.JSON(http.StatusOK, baseHealth(opts, "alive"))
	})

	router.GET("/health/ready", func(c *gin.Context) {
		resp := baseHealth(opts, "ready")
		status := http.StatusOK

		if len(opts.Checks) > 0 {
			resp.Checks = make(map[string]string, len(opts.Checks))
			for name, check := range opts.Checks {
				if err := check(); err != nil {
					resp.Checks[name] = err.Error()
					resp.Status = "not ready"
					status = http.StatusServiceUnavailable
					continue
				}
				resp.Checks[name] = "ok"
			}
		}

		c.JSON(status, resp)
	})
}

func baseHealth(opts HealthOptions, status string) healthResponse {
	return healthResponse{
		Status:    status,
		Service:   opts.ServiceName,
		Version:   opts.ServiceVersion,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
