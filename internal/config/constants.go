package config

const (
	// ProviderFixture serves the bundled sample roster.
	ProviderFixture = "fixture"
	// ProviderStatsAPI talks to the upstream stats API over HTTP.
	ProviderStatsAPI = "statsapi"

	defaultPort              = "4000"
	defaultProvider          = ProviderFixture
	defaultStatsAPIBaseURL   = "http://localhost:8000"
	defaultRequestsPerMinute = 120
	defaultRankingsPath      = "data/rapport_ranking.json"
	defaultMetricsPort       = "9090"
	defaultServiceName       = "isoanalytics"
)
