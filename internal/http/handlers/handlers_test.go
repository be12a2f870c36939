package handlers

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	appplayers "github.com/preston-bernstein/isoanalytics/internal/app/players"
	"github.com/preston-bernstein/isoanalytics/internal/derive"
	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/domain/teams"
	"github.com/preston-bernstein/isoanalytics/internal/http/middleware"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/teststubs"
	"github.com/preston-bernstein/isoanalytics/internal/testutil"
	"github.com/preston-bernstein/isoanalytics/internal/view"
)

func f(v float64) *float64 { return &v }

func newStub() *teststubs.StubProvider {
	x, y := 250.0, 100.0
	roster := make([]players.Profile, 0, 25)
	stats := make([]players.SeasonStat, 0, 25)
	for i := 0; i < 25; i++ {
		id := fmt.Sprintf("p%02d", i)
		roster = append(roster, players.Profile{ID: id, Name: fmt.Sprintf("Player %02d", i), Team: "LAL"})
		stats = append(stats, players.SeasonStat{PlayerID: id, Points: f(float64(i))})
	}
	roster[0].Name = "Nikola Jokic"
	return &teststubs.StubProvider{
		Roster: roster,
		Stats:  stats,
		Details: map[string]players.Detail{
			"p00": {
				Player: players.Profile{ID: "p00", Name: "Nikola Jokic", BirthDate: "1995-02-19"},
				Shots:  []players.Shot{{X: &x, Y: &y, Points: 2, Made: true}},
			},
			"p01": {Player: players.Profile{ID: "p01", Name: "Player 01"}},
		},
	}
}

func newHandler(p *teststubs.StubProvider) (*Handler, *metrics.Recorder) {
	logger, _ := testutil.NewBufferLogger()
	rec := metrics.NewRecorder()
	deriver := view.Deriver{
		Rankings:    teststubs.StubRankings{"Nikola Jokic": {Player: "Nikola Jokic", Off: 4, Def: 1, Tot: 5}},
		Calibration: derive.DefaultCalibration(),
		Now:         testutil.NowAt(testutil.Date(2024, time.March, 1)),
	}
	return NewHandler(appplayers.NewService(p, logger, rec), deriver, rec, logger), rec
}

// routed mounts the handler on chi so URL params resolve.
func routed(h *Handler) http.Handler {
	r := chi.NewRouter()
	r.Get("/health", h.Health)
	r.Get("/api/teams", h.Teams)
	r.Get("/api/players", h.ListPlayers)
	r.Get("/api/players/{id}", h.PlayerDashboard)
	r.Get("/api/players/{id}/shotchart.svg", h.ShotChartSVG)
	r.Get("/api/compare", h.Compare)
	r.Get("/api/search", h.Search)
	r.NotFound(h.NotFound)
	r.MethodNotAllowed(h.MethodNotAllowed)
	return r
}

func TestHealth(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/health", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestHealthShuttingDownReturnsServiceUnavailable(t *testing.T) {
	h, _ := newHandler(newStub())

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	ctx, cancel := context.WithCancel(req.Context())
	cancel()
	req = req.WithContext(ctx)
	rr := testutil.ServeRequest(http.HandlerFunc(h.Health), req)

	testutil.AssertStatus(t, rr, http.StatusServiceUnavailable)
	var resp map[string]string
	testutil.DecodeJSON(t, rr, &resp)
	if resp["error"] != "shutting down" {
		t.Fatalf("unexpected error %q", resp["error"])
	}
}

func TestTeamsReturnsCatalog(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var cat teams.Catalog
	testutil.DecodeJSON(t, rr, &cat)
	if len(cat.Teams) != 30 || len(cat.Positions) == 0 {
		t.Fatalf("unexpected catalog %+v", cat)
	}
}

func TestListPlayersSortsAndPaginates(t *testing.T) {
	stub := newStub()
	h, _ := newHandler(stub)

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players?team=LAL&page=2", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var list view.PlayerList
	testutil.DecodeJSON(t, rr, &list)
	if list.Page.Page != 2 || list.Page.TotalItems != 25 || len(list.Page.Items) != 5 {
		t.Fatalf("unexpected page %+v", list.Page)
	}
	if list.Page.RangeStart != 21 || list.Page.RangeEnd != 25 || list.Page.HasNext {
		t.Fatalf("unexpected page range %+v", list.Page)
	}
	// Descending by points, so page two starts at the 21st highest (4 points).
	if got := list.Page.Items[0].Player.ID; got != "p04" {
		t.Fatalf("expected p04 first on page two, got %s", got)
	}
	if list.PrevPage != 1 || list.NextPage != 2 {
		t.Fatalf("expected clamped prev/next 1/2, got %d/%d", list.PrevPage, list.NextPage)
	}
	if q := stub.Queries(); len(q) != 1 || q[0].Team != "LAL" {
		t.Fatalf("expected team filter forwarded upstream, got %+v", q)
	}
}

func TestListPlayersRejectsBadInput(t *testing.T) {
	h, _ := newHandler(newStub())

	cases := map[string]string{
		"/api/players?team=XYZ":    `unknown team "XYZ"`,
		"/api/players?position=PG": `unknown position "PG"`,
		"/api/players?sort=blocks": `unknown sort key "blocks"`,
		"/api/players?page=two":    "invalid page number",
	}
	for path, msg := range cases {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Header.Set("X-Request-ID", "req-1")
		body := testutil.DecodeError(t, testutil.ServeRequest(routed(h), req), http.StatusBadRequest)
		if body["error"] != msg || body["requestId"] != "req-1" {
			t.Fatalf("path %s unexpected error body %+v", path, body)
		}
	}
}

func TestListPlayersHugePageIsEmpty(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players?page=461168601842738792", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var list view.PlayerList
	testutil.DecodeJSON(t, rr, &list)
	if len(list.Page.Items) != 0 || list.Page.TotalItems != 25 || list.Page.HasNext {
		t.Fatalf("expected an empty page past the end, got %+v", list.Page)
	}
}

func TestListPlayersDegradesToEmptyTable(t *testing.T) {
	stub := newStub()
	stub.Err = errors.New("boom")
	h, rec := newHandler(stub)

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var list view.PlayerList
	testutil.DecodeJSON(t, rr, &list)
	if list.Page.TotalItems != 0 || len(list.Page.Items) != 0 {
		t.Fatalf("expected empty table, got %+v", list.Page)
	}
	if rec.Degraded(appplayers.OpRoster) != 1 {
		t.Fatalf("expected degraded roster read to be counted")
	}
}

func TestPlayerDashboard(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players/p00", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var state view.DashboardState
	testutil.DecodeJSON(t, rr, &state)
	if !state.Loaded || state.Card == nil || state.PlayerID != "p00" {
		t.Fatalf("expected loaded dashboard, got %+v", state)
	}
	if state.Card.Age == nil || *state.Card.Age != 29 {
		t.Fatalf("expected age 29, got %v", state.Card.Age)
	}
	if !state.Percentiles.Available || state.Percentiles.Offense != 100 {
		t.Fatalf("unexpected percentiles %+v", state.Percentiles)
	}
	if len(state.Chart.Markers) != 1 || state.Chart.Markers[0].Y != 300 {
		t.Fatalf("expected one projected marker, got %+v", state.Chart.Markers)
	}
}

func TestPlayerDashboardUnavailableStillRenders(t *testing.T) {
	stub := newStub()
	stub.Err = errors.New("upstream down")
	h, rec := newHandler(stub)

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players/p00", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var state view.DashboardState
	testutil.DecodeJSON(t, rr, &state)
	if state.Loaded || state.Card != nil || state.Percentiles.Available {
		t.Fatalf("expected no-data dashboard, got %+v", state)
	}
	if rec.Degraded(appplayers.OpPlayer) != 1 {
		t.Fatalf("expected degraded player read to be counted")
	}
}

func TestPlayerIDValidation(t *testing.T) {
	h, _ := newHandler(newStub())

	req := httptest.NewRequest(http.MethodGet, "/api/players/%20", nil)
	rr := testutil.ServeRequest(routed(h), req)
	testutil.AssertStatus(t, rr, http.StatusBadRequest)
}

func TestShotChartSVG(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/players/p00/shotchart.svg", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	testutil.AssertContentType(t, rr, "image/svg+xml")
	body := rr.Body.String()
	if !strings.Contains(body, "<svg") || !strings.Contains(body, "#22c55e") {
		t.Fatalf("expected made marker in svg, got %q", body)
	}
}

func TestCompareDefaultsToFirstTwo(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/compare", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var state view.CompareState
	testutil.DecodeJSON(t, rr, &state)
	if state.Left.PlayerID != "p00" || state.Right.PlayerID != "p01" {
		t.Fatalf("expected default pair p00/p01, got %s/%s", state.Left.PlayerID, state.Right.PlayerID)
	}
	if !state.Left.Loaded || !state.Right.Loaded {
		t.Fatalf("expected both sides loaded, got %+v", state)
	}
}

func TestCompareExplicitIDs(t *testing.T) {
	stub := newStub()
	h, _ := newHandler(stub)

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/compare?left=p01&right=p00", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)

	var state view.CompareState
	testutil.DecodeJSON(t, rr, &state)
	if state.Left.PlayerID != "p01" || state.Right.PlayerID != "p00" {
		t.Fatalf("expected explicit pair, got %s/%s", state.Left.PlayerID, state.Right.PlayerID)
	}
	if len(stub.Queries()) != 0 {
		t.Fatalf("expected no roster fetch when both ids are given")
	}
}

func TestSearch(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/api/search?q=jokic", nil)
	testutil.AssertStatus(t, rr, http.StatusOK)
	var res view.SearchResult
	testutil.DecodeJSON(t, rr, &res)
	if len(res.Matches) != 1 || res.Matches[0].ID != "p00" || res.Suggestion != nil {
		t.Fatalf("unexpected search result %+v", res)
	}

	rr = testutil.Serve(routed(h), http.MethodGet, "/api/search?q=Nikola+Jokoc", nil)
	testutil.DecodeJSON(t, rr, &res)
	if len(res.Matches) != 0 || res.Suggestion == nil || res.Suggestion.ID != "p00" {
		t.Fatalf("expected did-you-mean suggestion, got %+v", res)
	}
}

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	h, _ := newHandler(newStub())

	rr := testutil.Serve(routed(h), http.MethodGet, "/nope", nil)
	testutil.AssertStatus(t, rr, http.StatusNotFound)

	rr = testutil.Serve(routed(h), http.MethodDelete, "/api/teams", nil)
	testutil.AssertStatus(t, rr, http.StatusMethodNotAllowed)
}

func TestWriteErrorUsesContextRequestID(t *testing.T) {
	logger, _ := testutil.NewBufferLogger()
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, r, http.StatusBadRequest, "bad", logger)
	})
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set("X-Request-ID", "ctx-id")
	rr := testutil.ServeRequest(middleware.LoggingMiddleware(logger, nil, inner), req)

	var body map[string]string
	testutil.DecodeJSON(t, rr, &body)
	if body["requestId"] != "ctx-id" {
		t.Fatalf("expected request id from context, got %+v", body)
	}
}

func TestWriteJSONLogsEncodeFailure(t *testing.T) {
	logger, buf := testutil.NewBufferLogger()
	rr := httptest.NewRecorder()
	writeJSON(rr, http.StatusOK, map[string]any{"bad": make(chan int)}, logger)
	if !strings.Contains(buf.String(), "failed to encode response") {
		t.Fatalf("expected encode failure to be logged, got %q", buf.String())
	}
}
