package handlers

import (
	"log/slog"
	"net/http"

	"github.com/preston-bernstein/isoanalytics/internal/domain/teams"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/view"
)

// Handler serves the view models over HTTP. It never sees upstream errors;
// the source has already degraded them to empty values.
type Handler struct {
	source  view.Source
	deriver view.Deriver
	metrics *metrics.Recorder
	logger  *slog.Logger
}

// NewHandler constructs a Handler.
func NewHandler(source view.Source, deriver view.Deriver, rec *metrics.Recorder, logger *slog.Logger) *Handler {
	return &Handler{
		source:  source,
		deriver: deriver,
		metrics: rec,
		logger:  logger,
	}
}

// Health reports the service health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	if err := r.Context().Err(); err != nil {
		writeError(w, r, http.StatusServiceUnavailable, "shutting down", h.logger)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"}, h.logger)
}

// Teams returns the team codes and positions backing the list filters.
func (h *Handler) Teams(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, teams.NewCatalog(), h.logger)
}

// NotFound answers unknown routes with the JSON error body.
func (h *Handler) NotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusNotFound, "not found", h.logger)
}

// MethodNotAllowed answers known routes hit with the wrong method.
func (h *Handler) MethodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, http.StatusMethodNotAllowed, "method not allowed", h.logger)
}
