package view

import (
	"context"
	"log/slog"
	"sync"

	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/shots"
)

// DashboardState is the single-player dashboard: card, bars and shot chart.
type DashboardState struct {
	Profile
	Chart shots.Chart `json:"chart"`
}

// Dashboard holds the state of one dashboard view across navigations.
type Dashboard struct {
	source  PlayerSource
	deriver Deriver
	metrics *metrics.Recorder
	logger  *slog.Logger

	guard Guard
	mu    sync.Mutex
	state DashboardState
}

// NewDashboard constructs an empty dashboard view.
func NewDashboard(source PlayerSource, deriver Deriver, rec *metrics.Recorder, logger *slog.Logger) *Dashboard {
	return &Dashboard{source: source, deriver: deriver, metrics: rec, logger: logger}
}

// Navigate points the dashboard at id, loads it and returns the resulting state.
// If another Navigate started meanwhile, this load's result is dropped and the
// returned state is whatever the latest navigation produced.
func (d *Dashboard) Navigate(ctx context.Context, id string) DashboardState {
	ticket := d.guard.Begin(id)

	detail, ok := d.source.Player(ctx, id)
	next := DashboardState{Profile: d.deriver.profile(id, detail, ok), Chart: shots.NewChart(detail.Shots)}

	applied := d.guard.Apply(ticket, func() {
		d.mu.Lock()
		d.state = next
		d.mu.Unlock()
	})
	if !applied {
		d.metrics.RecordStaleDiscard("dashboard")
		logging.Debug(logging.FromContext(ctx, d.logger), "discarded stale dashboard response",
			slog.String(logging.FieldPlayerID, id))
	}
	return d.State()
}

// State returns the currently applied state.
func (d *Dashboard) State() DashboardState {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.state
}
