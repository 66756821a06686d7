package http

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/render"
)

// HealthHandler answers liveness probes with load status.
type HealthHandler struct {
	service PipelineService
	logger  *slog.Logger
	started time.Time
}

// NewHealthHandler creates a new health handler.
func NewHealthHandler(service PipelineService, logger *slog.Logger) *HealthHandler {
	return &HealthHandler{
		service: service,
		logger:  logger.With(slog.String("handler", "health")),
		started: time.Now(),
	}
}

// HealthCheck handles GET /api/health.
func (h *HealthHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	loaded, loadedAt := h.service.Loaded()

	status := "ok"
	if !loaded {
		status = "degraded"
	}

	response := map[string]interface{}{
		"status":    status,
		"loaded":    loaded,
		"uptime":    time.Since(h.started).String(),
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	}
	if loaded {
		response["loaded_at"] = loadedAt.UTC().Format(time.RFC3339)
		response["records"] = len(h.service.Records())
	}
	render.JSON(w, r, response)
}
