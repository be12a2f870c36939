package server

import (
	"log/slog"

	"github.com/preston-bernstein/isoanalytics/internal/config"
	"github.com/preston-bernstein/isoanalytics/internal/metrics"
	"github.com/preston-bernstein/isoanalytics/internal/providers"
	"github.com/preston-bernstein/isoanalytics/internal/providers/fixture"
	"github.com/preston-bernstein/isoanalytics/internal/statsapi"
)

// providerFactory assembles the provider with shared wrappers (instrumentation + rate limit).
type providerFactory struct {
	logger  *slog.Logger
	metrics *metrics.Recorder
}

func newProviderFactory(logger *slog.Logger, metrics *metrics.Recorder) providerFactory {
	return providerFactory{logger: logger, metrics: metrics}
}

// build wraps the selected provider so every upstream attempt is measured and
// the rate limiter sits outside the measurement; a token wait is not latency.
func (f providerFactory) build(cfg config.Config) providers.StatsProvider {
	name, base := selectProvider(cfg)
	instrumented := providers.NewInstrumentedProvider(name, base, f.metrics, f.logger)
	if name == fixture.Name {
		return instrumented
	}
	return providers.NewRateLimitedProvider(instrumented, cfg.StatsAPI.RequestsPerMinute, f.logger)
}

func selectProvider(cfg config.Config) (string, providers.StatsProvider) {
	switch cfg.Provider {
	case config.ProviderStatsAPI:
		return statsapi.Name, statsapi.NewClient(statsapi.Config{
			BaseURL: cfg.StatsAPI.BaseURL,
			Timeout: cfg.StatsAPI.Timeout,
		})
	default:
		return fixture.Name, fixture.New()
	}
}
