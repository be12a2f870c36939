package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/isoanalytics/internal/http/handlers"
	"github.com/preston-bernstein/isoanalytics/internal/http/middleware"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
)

// RouterConfig carries the cross-cutting dependencies of the router.
type RouterConfig struct {
	Logger         *slog.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers the BFF routes on a chi router.
func NewRouter(h *handlers.Handler, cfg RouterConfig) nethttp.Handler {
	r := chi.NewRouter()
	r.Use(chimw.Recoverer)
	r.Use(middleware.Logging(cfg.Logger, cfg.Metrics))
	if len(cfg.AllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: cfg.AllowedOrigins,
			AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodOptions},
			AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
			ExposedHeaders: []string{"X-Request-ID"},
			MaxAge:         300,
		}))
	}

	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)

	r.Get("/health", h.Health)
	r.Route("/api", func(r chi.Router) {
		r.Get("/teams", h.Teams)
		r.Get("/players", h.ListPlayers)
		r.Get("/players/{id}", h.PlayerDashboard)
		r.Get("/players/{id}/shotchart.svg", h.ShotChartSVG)
		r.Get("/compare", h.Compare)
		r.Get("/search", h.Search)
	})
	return r
}
