package providers

import (
	"context"
	"log/slog"
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/logging"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
)

// logWithProvider emits a log entry if logger is non-nil and always includes provider name.
func logWithProvider(ctx context.Context, logger *slog.Logger, level slog.Level, provider string, msg string, args ...any) {
	logger = logging.FromContext(ctx, logger)
	if logger == nil {
		return
	}
	args = append(args, slog.String(logging.FieldProvider, provider))
	logger.Log(ctx, level, msg, args...)
}

// instrumentedProvider records one attempt per call and logs the outcome.
type instrumentedProvider struct {
	name    string
	next    StatsProvider
	metrics *metrics.Recorder
	logger  *slog.Logger
	now     func() time.Time
}

// NewInstrumentedProvider wraps next with per-call metrics and debug logging.
// Rate limit errors are additionally counted with their Retry-After.
func NewInstrumentedProvider(name string, next StatsProvider, rec *metrics.Recorder, logger *slog.Logger) StatsProvider {
	return &instrumentedProvider{
		name:    name,
		next:    next,
		metrics: rec,
		logger:  logger,
		now:     time.Now,
	}
}

func (p *instrumentedProvider) FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error) {
	start := p.now()
	out, err := p.next.FetchPlayers(ctx, q)
	p.observe(ctx, "players", start, len(out), err)
	return out, err
}

func (p *instrumentedProvider) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	start := p.now()
	out, err := p.next.FetchPlayer(ctx, id)
	p.observe(ctx, "player", start, len(out.Shots), err, slog.String(logging.FieldPlayerID, id))
	return out, err
}

func (p *instrumentedProvider) FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error) {
	start := p.now()
	out, err := p.next.FetchSeasonStats(ctx)
	p.observe(ctx, "season_stats", start, len(out), err)
	return out, err
}

func (p *instrumentedProvider) observe(ctx context.Context, endpoint string, start time.Time, count int, err error, extra ...any) {
	duration := p.now().Sub(start)
	p.metrics.RecordUpstreamAttempt(p.name, duration, err)

	args := append([]any{
		slog.String(logging.FieldEndpoint, endpoint),
		slog.Int64(logging.FieldDurationMS, duration.Milliseconds()),
	}, extra...)

	if rl, ok := AsRateLimitError(err); ok {
		p.metrics.RecordRateLimit(p.name, rl.RetryAfter)
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream rate limited",
			append(args, slog.Duration("retry_after", rl.RetryAfter))...)
		return
	}
	if err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, p.name, "upstream fetch failed",
			append(args, slog.Any(logging.FieldError, err))...)
		return
	}
	logWithProvider(ctx, p.logger, slog.LevelDebug, p.name, "upstream fetch",
		append(args, slog.Int(logging.FieldCount, count))...)
}
