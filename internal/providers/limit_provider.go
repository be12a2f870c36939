package providers

import (
	"context"
	"fmt"
	"log/slog"

	"golang.org/x/time/rate"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

const defaultRequestsPerMinute = 120

// rateLimitedProvider gates every upstream call through one token bucket.
type rateLimitedProvider struct {
	next    StatsProvider
	limiter *rate.Limiter
	logger  *slog.Logger
}

// NewRateLimitedProvider returns a StatsProvider allowing requestsPerMinute calls
// with a burst of one. Calls wait for a token or for ctx to end.
func NewRateLimitedProvider(next StatsProvider, requestsPerMinute int, logger *slog.Logger) StatsProvider {
	if requestsPerMinute <= 0 {
		requestsPerMinute = defaultRequestsPerMinute
	}
	rps := float64(requestsPerMinute) / 60.0
	return &rateLimitedProvider{
		next:    next,
		limiter: rate.NewLimiter(rate.Limit(rps), 1),
		logger:  logger,
	}
}

func (p *rateLimitedProvider) FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error) {
	if err := p.wait(ctx, "players"); err != nil {
		return nil, err
	}
	return p.next.FetchPlayers(ctx, q)
}

func (p *rateLimitedProvider) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	if err := p.wait(ctx, "player"); err != nil {
		return players.Detail{}, err
	}
	return p.next.FetchPlayer(ctx, id)
}

func (p *rateLimitedProvider) FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error) {
	if err := p.wait(ctx, "season_stats"); err != nil {
		return nil, err
	}
	return p.next.FetchSeasonStats(ctx)
}

func (p *rateLimitedProvider) wait(ctx context.Context, endpoint string) error {
	if p == nil || p.next == nil {
		if p != nil {
			logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "provider unavailable")
		}
		return ErrProviderUnavailable
	}
	if err := p.limiter.Wait(ctx); err != nil {
		logWithProvider(ctx, p.logger, slog.LevelWarn, "rate-limited", "rate limit wait aborted",
			slog.String("endpoint", endpoint))
		return fmt.Errorf("rate limit wait: %w", err)
	}
	return nil
}
