package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/shots"
	"github.com/preston-bernstein/isoanalytics/internal/view"
)

// ListPlayers serves the filtered, sorted, paginated player table.
func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	q, err := listing.ParseQuery(values)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	sortKey, err := listing.ParseSortKey(values.Get("sort"))
	if err != nil {
		writeError(w, r, http.StatusBadRequest, err.Error(), h.logger)
		return
	}
	page := 1
	if raw := values.Get("page"); raw != "" {
		page, err = strconv.Atoi(raw)
		if err != nil {
			writeError(w, r, http.StatusBadRequest, "invalid page number", h.logger)
			return
		}
	}

	list := view.BuildPlayerList(r.Context(), h.source, view.ListRequest{Query: q, Sort: sortKey, Page: page})
	logging.Info(loggerFromContext(r, h.logger), "served player list",
		slog.Int(logging.FieldCount, len(list.Page.Items)),
		slog.Int("total", list.Page.TotalItems),
	)
	writeJSON(w, http.StatusOK, list, h.logger)
}

// PlayerDashboard serves the dashboard for one player. A player the upstream
// cannot deliver still answers 200 with loaded=false.
func (h *Handler) PlayerDashboard(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	dash := view.NewDashboard(h.source, h.deriver, h.metrics, h.logger)
	writeJSON(w, http.StatusOK, dash.Navigate(r.Context(), id), h.logger)
}

// ShotChartSVG draws the player's shot chart. An unavailable player gets the bare court.
func (h *Handler) ShotChartSVG(w http.ResponseWriter, r *http.Request) {
	id, ok := h.playerID(w, r)
	if !ok {
		return
	}
	dash := view.NewDashboard(h.source, h.deriver, h.metrics, h.logger)
	state := dash.Navigate(r.Context(), id)

	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	shots.RenderSVG(w, state.Chart)
}

func (h *Handler) playerID(w http.ResponseWriter, r *http.Request) (string, bool) {
	id := strings.TrimSpace(chi.URLParam(r, "id"))
	if id == "" || strings.ContainsAny(id, " \t/") {
		writeError(w, r, http.StatusBadRequest, "invalid player id", h.logger)
		return "", false
	}
	return id, true
}
