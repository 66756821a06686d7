package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/render"

	apierrors "github.com/kmiernik/Chart-of-nuclides-drawer/internal/errors"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/exporter"
	"github.com/kmiernik/Chart-of-nuclides-drawer/internal/massgrid"
)

// NuclideHandler serves the parsed records, the derived separation
// energies and the chart rendering.
type NuclideHandler struct {
	service      PipelineService
	logger       *slog.Logger
	errorHandler *apierrors.ErrorHandler
	validate     *validator
}

// NewNuclideHandler creates a new nuclide handler.
func NewNuclideHandler(service PipelineService, logger *slog.Logger, errorHandler *apierrors.ErrorHandler) *NuclideHandler {
	return &NuclideHandler{
		service:      service,
		logger:       logger.With(slog.String("handler", "nuclide")),
		errorHandler: errorHandler,
		validate:     newValidator(),
	}
}

// Routes returns the nuclide API routes.
func (h *NuclideHandler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(render.SetContentType(render.ContentTypeJSON))
	r.Get("/nuclides", h.GetNuclides)
	r.Get("/separation", h.GetSeparation)
	return r
}

// GetNuclides handles GET /api/nuclides.
func (h *NuclideHandler) GetNuclides(w http.ResponseWriter, r *http.Request) {
	if loaded, _ := h.service.Loaded(); !loaded {
		h.errorHandler.HandleError(w, r, apierrors.ErrTableNotLoaded)
		return
	}

	records := h.service.Records()
	render.JSON(w, r, map[string]interface{}{
		"count":    len(records),
		"nuclides": records,
	})
}

// GetSeparation handles GET /api/separation?kind=s2n|s2p.
func (h *NuclideHandler) GetSeparation(w http.ResponseWriter, r *http.Request) {
	req := separationRequest{Kind: r.URL.Query().Get("kind")}
	if req.Kind == "" {
		req.Kind = string(massgrid.S2n)
	}
	if err := h.validate.Struct(req); err != nil {
		h.errorHandler.HandleError(w, r,
			apierrors.InvalidParameter("kind", "must be s2n or s2p"))
		return
	}

	kind, err := massgrid.ParseKind(req.Kind)
	if err != nil {
		h.errorHandler.HandleError(w, r, apierrors.InvalidParameter("kind", err.Error()))
		return
	}

	points, err := h.service.Derive(r.Context(), kind)
	if err != nil {
		h.logger.ErrorContext(r.Context(), "derivation failed",
			slog.String("kind", string(kind)),
			slog.String("error", err.Error()))
		h.errorHandler.HandleError(w, r, apierrors.ErrTableNotLoaded)
		return
	}

	render.JSON(w, r, map[string]interface{}{
		"kind":   string(kind),
		"count":  len(points),
		"points": points,
	})
}

// GetChart handles GET /chart.svg, streaming the rendered chart.
func (h *NuclideHandler) GetChart(w http.ResponseWriter, r *http.Request) {
	if loaded, _ := h.service.Loaded(); !loaded {
		h.errorHandler.HandleError(w, r, apierrors.ErrTableNotLoaded)
		return
	}

	w.Header().Set("Content-Type", "image/svg+xml")
	if err := exporter.WriteChart(w, h.service.Records()); err != nil {
		h.logger.ErrorContext(r.Context(), "chart rendering failed",
			slog.String("error", err.Error()))
	}
}

type separationRequest struct {
	Kind string `validate:"required,oneof=s2n s2p"`
}
