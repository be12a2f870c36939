package handlers

import (
	"net/http"
	"strings"

	"github.com/preston-bernstein/isoanalytics/internal/view"
)

// Compare serves two player cards side by side. Either id may be omitted.
func (h *Handler) Compare(w http.ResponseWriter, r *http.Request) {
	values := r.URL.Query()
	cmp := view.NewCompare(h.source, h.deriver, h.metrics, h.logger)
	state := cmp.Load(r.Context(),
		strings.TrimSpace(values.Get("left")),
		strings.TrimSpace(values.Get("right")),
	)
	writeJSON(w, http.StatusOK, state, h.logger)
}

// Search serves live-search matches for the compare pickers.
func (h *Handler) Search(w http.ResponseWriter, r *http.Request) {
	q := strings.TrimSpace(r.URL.Query().Get("q"))
	writeJSON(w, http.StatusOK, view.Search(r.Context(), h.source, q), h.logger)
}
