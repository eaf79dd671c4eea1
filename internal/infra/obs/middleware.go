package obs

import (
	"log/slog"
	"net/http"
	"time"

	gin "github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const requestIDHeader = "X-Request-ID"

// Middleware bundles observability middleware for the HTTP server.
type Middleware struct {
	Logger *slog.Logger
}

// RequestID attaches a request id to the context and response.
func (m Middleware) RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(requestIDHeader)
		if id == "" {
			id = uuid.NewString()
		}
		c.Set("request_id", id)
		c.Writer.Header().Set(requestIDHeader, id)
		c.Next()
	}
}

// LoggerMiddleware logs each request with latency and status.
func (m Middleware) LoggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		if m.Logger == nil {
			return
		}
		m.Logger.Info("http request",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"status", c.Writer.Status(),
			"elapsed", time.Since(start),
			"request_id", c.GetString("request_id"),
		)
	}
}

// HealthHandlers expose liveness and readiness probes.
type HealthHandlers struct {
	Ready func() error
}

func (h HealthHandlers) Livez(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h HealthHandlers) Readyz(c *gin.Context) {
	if h.Ready != nil {
		if err := h.Ready(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "error": err.Error()})
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
