package handler

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	coreport "github.com/amirhossein-jamali/payment-engine/internal/domain/port/core"
)

// HealthProbe checks a dependency the service cannot run without
type HealthProbe func(ctx context.Context) error

// HealthHandler reports whether the service can serve requests
type HealthHandler struct {
	probes  map[string]HealthProbe
	details map[string]func() any
	logger  coreport.Logger
}

// NewHealthHandler creates a health handler over the named probes
func NewHealthHandler(probes map[string]HealthProbe, logger coreport.Logger) *HealthHandler {
	return &HealthHandler{probes: probes, details: map[string]func() any{}, logger: logger}
}

// WithDetail reports the value of fn under name on every health response
func (h *HealthHandler) WithDetail(name string, fn func() any) *HealthHandler {
	h.details[name] = fn
	return h
}

// Health handles the GET /health endpoint
func (h *HealthHandler) Health(c *gin.Context) {
	status := http.StatusOK
	checks := make(map[string]string, len(h.probes))

	for name, probe := range h.probes {
		if err := probe(c.Request.Context()); err != nil {
			h.logger.Warn("Health probe failed", map[string]any{
				"probe": name,
				"error": err.Error(),
			})
			checks[name] = "down"
			status = http.StatusServiceUnavailable
			continue
		}
		checks[name] = "up"
	}

	body := gin.H{"status": http.StatusText(status), "checks": checks}
	if len(h.details) > 0 {
		details := make(map[string]any, len(h.details))
		for name, fn := range h.details {
			details[name] = fn()
		}
		body["details"] = details
	}
	c.JSON(status, body)
}
