package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/derive"
)

func useDotenv(t *testing.T, path string) {
	t.Helper()
	prev := dotenvFile
	dotenvFile = path
	t.Cleanup(func() { dotenvFile = prev })
}

func TestLoadDefaults(t *testing.T) {
	useDotenv(t, filepath.Join(t.TempDir(), "missing.env"))

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != defaultPort {
		t.Fatalf("expected default port %s, got %s", defaultPort, cfg.Port)
	}
	if cfg.Provider != defaultProvider {
		t.Fatalf("expected default provider %s, got %s", defaultProvider, cfg.Provider)
	}
	if cfg.StatsAPI.BaseURL != defaultStatsAPIBaseURL || cfg.StatsAPI.Timeout != 10*time.Second {
		t.Fatalf("unexpected stats api defaults %+v", cfg.StatsAPI)
	}
	if cfg.StatsAPI.RequestsPerMinute != defaultRequestsPerMinute {
		t.Fatalf("expected %d requests per minute, got %d", defaultRequestsPerMinute, cfg.StatsAPI.RequestsPerMinute)
	}
	if cfg.Rankings.Path != defaultRankingsPath {
		t.Fatalf("expected default rankings path, got %s", cfg.Rankings.Path)
	}
	if !cfg.Metrics.Enabled || cfg.Metrics.Port != defaultMetricsPort || cfg.Metrics.ServiceName != defaultServiceName {
		t.Fatalf("unexpected metrics defaults %+v", cfg.Metrics)
	}
	if !reflect.DeepEqual(cfg.CORS.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Log.Level != "info" || cfg.Log.Format != "text" {
		t.Fatalf("unexpected log defaults %+v", cfg.Log)
	}
	if cfg.Percentile.Calibration() != derive.DefaultCalibration() {
		t.Fatalf("expected default calibration, got %+v", cfg.Percentile.Calibration())
	}
}

func TestLoadOverrides(t *testing.T) {
	useDotenv(t, filepath.Join(t.TempDir(), "missing.env"))
	t.Setenv("PORT", "5000")
	t.Setenv("PROVIDER", "statsapi")
	t.Setenv("STATS_API_BASE_URL", "http://stats.internal:8000")
	t.Setenv("STATS_API_TIMEOUT", "3s")
	t.Setenv("STATS_API_REQUESTS_PER_MINUTE", "30")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test,http://b.test")
	t.Setenv("METRICS_ENABLED", "false")
	t.Setenv("PERCENTILE_OFFENSE_SCALE", "12.5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "5000" || cfg.Provider != ProviderStatsAPI {
		t.Fatalf("unexpected overrides %+v", cfg)
	}
	if cfg.StatsAPI.BaseURL != "http://stats.internal:8000" || cfg.StatsAPI.Timeout != 3*time.Second || cfg.StatsAPI.RequestsPerMinute != 30 {
		t.Fatalf("unexpected stats api overrides %+v", cfg.StatsAPI)
	}
	if len(cfg.CORS.AllowedOrigins) != 2 || cfg.CORS.AllowedOrigins[1] != "http://b.test" {
		t.Fatalf("unexpected cors origins %v", cfg.CORS.AllowedOrigins)
	}
	if cfg.Metrics.Enabled {
		t.Fatalf("expected metrics disabled")
	}
	if got := cfg.Percentile.Calibration().Offense.Scale; got != 12.5 {
		t.Fatalf("expected offense scale override, got %v", got)
	}
}

func TestLoadRejectsMalformedValues(t *testing.T) {
	useDotenv(t, filepath.Join(t.TempDir(), "missing.env"))

	cases := []struct {
		key string
		val string
	}{
		{"STATS_API_TIMEOUT", "not-a-duration"},
		{"STATS_API_TIMEOUT", "0s"},
		{"STATS_API_REQUESTS_PER_MINUTE", "many"},
		{"STATS_API_REQUESTS_PER_MINUTE", "0"},
		{"METRICS_ENABLED", "maybe"},
		{"PROVIDER", "espn"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			t.Setenv(tc.key, tc.val)
			if _, err := Load(); err == nil {
				t.Fatalf("expected error for %s=%s", tc.key, tc.val)
			}
		})
	}
}

func TestLoadReadsDotenvWithoutOverridingEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	if err := os.WriteFile(path, []byte("PORT=6000\nRANKINGS_PATH=/tmp/rank.json\n"), 0o600); err != nil {
		t.Fatalf("write dotenv: %v", err)
	}
	useDotenv(t, path)
	t.Setenv("PORT", "7000")
	// godotenv sets variables process-wide; register cleanup through t.Setenv first.
	t.Setenv("RANKINGS_PATH", "")
	os.Unsetenv("RANKINGS_PATH")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "7000" {
		t.Fatalf("expected environment to win over dotenv, got %s", cfg.Port)
	}
	if cfg.Rankings.Path != "/tmp/rank.json" {
		t.Fatalf("expected dotenv value, got %s", cfg.Rankings.Path)
	}
}
