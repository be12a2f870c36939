// Package players is where upstream failures stop. Every method answers with a
// renderable value: an empty slice, or a Detail flagged as not loaded.
package players

import (
	"context"
	"log/slog"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/join"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/providers"
	"github.com/preston-bernstein/isoanalytics/internal/statsapi"
)

// Degraded operation names, used as metric attributes.
const (
	OpRoster      = "roster"
	OpPlayer      = "player"
	OpSeasonStats = "season_stats"
)

// Service coordinates player reads against a StatsProvider and degrades failures.
type Service struct {
	provider providers.StatsProvider
	logger   *slog.Logger
	metrics  *metrics.Recorder
}

// NewService constructs a Service. A nil provider degrades every call.
func NewService(provider providers.StatsProvider, logger *slog.Logger, rec *metrics.Recorder) *Service {
	return &Service{provider: provider, logger: logger, metrics: rec}
}

// Roster returns the filtered roster, or an empty one when the upstream fails.
func (s *Service) Roster(ctx context.Context, q listing.Query) []players.Profile {
	if s.provider == nil {
		s.degrade(ctx, OpRoster, providers.ErrProviderUnavailable)
		return []players.Profile{}
	}
	roster, err := s.provider.FetchPlayers(ctx, q)
	if err != nil {
		s.degrade(ctx, OpRoster, err)
		return []players.Profile{}
	}
	if roster == nil {
		roster = []players.Profile{}
	}
	return roster
}

// Player returns one player's detail. ok is false when it could not be fetched,
// which views render as "no data available".
func (s *Service) Player(ctx context.Context, id string) (players.Detail, bool) {
	if s.provider == nil {
		s.degrade(ctx, OpPlayer, providers.ErrProviderUnavailable, slog.String(logging.FieldPlayerID, id))
		return players.Detail{}, false
	}
	d, err := s.provider.FetchPlayer(ctx, id)
	if err != nil {
		s.degrade(ctx, OpPlayer, err, slog.String(logging.FieldPlayerID, id))
		return players.Detail{}, false
	}
	if d.Awards == nil {
		d.Awards = []players.Award{}
	}
	if d.Shots == nil {
		d.Shots = []players.Shot{}
	}
	return d, true
}

// SeasonStats returns every season line, or none when the upstream fails. Missing
// stats then surface as empty records through the join.
func (s *Service) SeasonStats(ctx context.Context) []players.SeasonStat {
	if s.provider == nil {
		s.degrade(ctx, OpSeasonStats, providers.ErrProviderUnavailable)
		return []players.SeasonStat{}
	}
	stats, err := s.provider.FetchSeasonStats(ctx)
	if err != nil {
		s.degrade(ctx, OpSeasonStats, err)
		return []players.SeasonStat{}
	}
	if stats == nil {
		stats = []players.SeasonStat{}
	}
	return stats
}

// Rows fetches the roster and season stats and joins them in roster order.
func (s *Service) Rows(ctx context.Context, q listing.Query) []join.Row {
	roster := s.Roster(ctx, q)
	if len(roster) == 0 {
		return []join.Row{}
	}
	stats := s.SeasonStats(ctx)
	return join.Rows(roster, join.Join(roster, stats))
}

func (s *Service) degrade(ctx context.Context, op string, err error, args ...any) {
	s.metrics.RecordDegraded(op)
	logger := logging.FromContext(ctx, s.logger)
	args = append(args,
		slog.String(logging.FieldOperation, op),
		slog.Any(logging.FieldError, err),
	)
	if statusErr, ok := statsapi.AsStatusError(err); ok {
		args = append(args, slog.Int(logging.FieldStatusCode, statusErr.StatusCode))
	}
	logging.Warn(logger, "upstream read degraded to empty result", args...)
}
