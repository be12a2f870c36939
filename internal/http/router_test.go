package http

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	appplayers "github.com/preston-bernstein/isoanalytics/internal/app/players"
	"github.com/preston-bernstein/isoanalytics/internal/derive"
	"github.com/preston-bernstein/isoanalytics/internal/http/handlers"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/providers/fixture"
	"github.com/preston-bernstein/isoanalytics/internal/testutil"
	"github.com/preston-bernstein/isoanalytics/internal/view"
)

func newTestRouter(t *testing.T, origins []string) (http.Handler, *metrics.Recorder) {
	t.Helper()
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	svc := appplayers.NewService(fixture.New(), logger, rec)
	deriver := view.Deriver{Calibration: derive.DefaultCalibration()}
	h := handlers.NewHandler(svc, deriver, rec, logger)
	return NewRouter(h, RouterConfig{Logger: logger, Metrics: rec, AllowedOrigins: origins}), rec
}

func TestRouterRoutesKnownPaths(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	cases := map[string]int{
		"/health":                              http.StatusOK,
		"/api/teams":                           http.StatusOK,
		"/api/players":                         http.StatusOK,
		"/api/players?team=XXX":                http.StatusBadRequest,
		"/api/players/jokicni01":               http.StatusOK,
		"/api/players/jokicni01/shotchart.svg": http.StatusOK,
		"/api/compare":                         http.StatusOK,
		"/api/search?q=jok":                    http.StatusOK,
	}

	for path, expected := range cases {
		rr := testutil.Serve(router, http.MethodGet, path, nil)
		if rr.Code != expected {
			t.Fatalf("route %s expected status %d, got %d", path, expected, rr.Code)
		}
	}
}

func TestRouterUnknownRouteReturns404(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	body := testutil.DecodeError(t, testutil.Serve(router, http.MethodGet, "/unknown", nil), http.StatusNotFound)
	if body["error"] != "not found" || body["requestId"] == "" {
		t.Fatalf("unexpected not found body %+v", body)
	}
}

func TestRouterRejectsWrongMethod(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := testutil.Serve(router, http.MethodPost, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestRouterUnknownPlayerDegradesToNotLoaded(t *testing.T) {
	router, rec := newTestRouter(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/players/nobody01", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var body view.DashboardState
	testutil.DecodeJSON(t, rr, &body)
	if body.Loaded || body.Card != nil || body.PlayerID != "nobody01" {
		t.Fatalf("expected not-loaded dashboard, got %+v", body)
	}
	if got := rec.Degraded(appplayers.OpPlayer); got != 1 {
		t.Fatalf("expected one degraded player read, got %d", got)
	}
}

func TestRouterCORSPreflight(t *testing.T) {
	router, _ := newTestRouter(t, []string{"http://localhost:5173"})

	req := httptest.NewRequest(http.MethodOptions, "/api/players", nil)
	req.Header.Set("Origin", "http://localhost:5173")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	rr := testutil.ServeRequest(router, req)

	if got := rr.Header().Get("Access-Control-Allow-Origin"); got != "http://localhost:5173" {
		t.Fatalf("expected allowed origin echoed, got %q", got)
	}
}

func TestRouterShotChartContentType(t *testing.T) {
	router, _ := newTestRouter(t, nil)

	rr := testutil.Serve(router, http.MethodGet, "/api/players/jokicni01/shotchart.svg", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContentType(t, rr, "image/svg+xml")
	if !strings.Contains(rr.Body.String(), "<svg") {
		t.Fatalf("expected svg document")
	}
}
