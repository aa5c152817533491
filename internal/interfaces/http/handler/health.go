package handler

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger reports whether a backing dependency is reachable
type Pinger interface {
	Ping() error
}

// HealthHandler serves liveness and readiness probes
type HealthHandler struct {
	BaseHandler
	db      Pinger
	version string
	started time.Time
}

// NewHealthHandler creates a new HealthHandler
func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{
		db:      db,
		version: version,
		started: time.Now(),
	}
}

// Register registers the health endpoint on the engine root, outside
// the versioned API group
func (h *HealthHandler) Register(engine *gin.Engine) {
	engine.GET("/health", h.Health)
}

// Health handles GET /health
func (h *HealthHandler) Health(c *gin.Context) {
	status := "ok"
	code := http.StatusOK

	dbStatus := "ok"
	if h.db != nil {
		if err := h.db.Ping(); err != nil {
			dbStatus = "unreachable"
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
	}

	c.JSON(code, gin.H{
		"status":   status,
		"version":  h.version,
		"uptime":   time.Since(h.started).Round(time.Second).String(),
		"database": dbStatus,
	})
}
