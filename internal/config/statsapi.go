package config

import "time"

// StatsAPIConfig controls how we talk to the upstream stats API.
type StatsAPIConfig struct {
	BaseURL           string        `envconfig:"STATS_API_BASE_URL" default:"http://localhost:8000"`
	Timeout           time.Duration `envconfig:"STATS_API_TIMEOUT" default:"10s"`
	RequestsPerMinute int           `envconfig:"STATS_API_REQUESTS_PER_MINUTE" default:"120"`
}
