package config

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// dotenvFile is loaded before the environment is read when it exists.
// Variables already set in the environment win.
var dotenvFile = ".env"

// Config holds runtime configuration for the server.
type Config struct {
	Port       string `envconfig:"PORT" default:"4000"`
	Provider   string `envconfig:"PROVIDER" default:"fixture"`
	StatsAPI   StatsAPIConfig
	Rankings   RankingsConfig
	Percentile PercentileConfig
	Metrics    MetricsConfig
	CORS       CORSConfig
	Log        LogConfig
}

// CORSConfig lists the browser origins allowed to call the API.
type CORSConfig struct {
	AllowedOrigins []string `envconfig:"CORS_ALLOWED_ORIGINS" default:"http://localhost:5173"`
}

// LogConfig selects the log level and handler format.
type LogConfig struct {
	Level  string `envconfig:"LOG_LEVEL" default:"info"`
	Format string `envconfig:"LOG_FORMAT" default:"text"`
}

// Load reads .env (when present) and then the environment. A malformed value
// or an unknown provider is an error.
func Load() (Config, error) {
	if _, err := os.Stat(dotenvFile); err == nil {
		if err := godotenv.Load(dotenvFile); err != nil {
			return Config{}, fmt.Errorf("load %s: %w", dotenvFile, err)
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, fmt.Errorf("load config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Provider {
	case ProviderFixture, ProviderStatsAPI:
	default:
		return fmt.Errorf("unknown provider %q", c.Provider)
	}
	if c.StatsAPI.Timeout <= 0 {
		return errors.New("STATS_API_TIMEOUT must be positive")
	}
	if c.StatsAPI.RequestsPerMinute <= 0 {
		return errors.New("STATS_API_REQUESTS_PER_MINUTE must be positive")
	}
	return nil
}
