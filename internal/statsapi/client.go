// Package statsapi is the HTTP client for the basketball stats API.
package statsapi

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/providers"
)

// Config controls how the client reaches the upstream API.
type Config struct {
	BaseURL    string
	Timeout    time.Duration
	HTTPClient *http.Client
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client fetches players, player detail and season stats and maps them to domain types.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a stats API client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient, cfg.Timeout),
		now:        time.Now,
	}
}

// FetchPlayers returns the roster filtered upstream by q.
func (c *Client) FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error) {
	var payload []playerResponse
	if err := c.get(ctx, EndpointPlayers, "/players", q.Values(), &payload); err != nil {
		return nil, err
	}
	out := make([]players.Profile, 0, len(payload))
	for _, p := range payload {
		out = append(out, mapPlayer(p))
	}
	return out, nil
}

// FetchPlayer returns one player's bio, stats, awards, headshot and shots.
func (c *Client) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return players.Detail{}, fmt.Errorf("statsapi %s: player id required", EndpointPlayer)
	}
	var payload playerDetailResponse
	if err := c.get(ctx, EndpointPlayer, "/player/"+url.PathEscape(id), nil, &payload); err != nil {
		return players.Detail{}, err
	}
	detail := mapDetail(payload)
	if detail.Player.ID == "" {
		detail.Player.ID = id
	}
	return detail, nil
}

// FetchSeasonStats returns every player's season line.
func (c *Client) FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error) {
	var payload []seasonStatResponse
	if err := c.get(ctx, EndpointSeasonStats, "/season_stats", nil, &payload); err != nil {
		return nil, err
	}
	out := make([]players.SeasonStat, 0, len(payload))
	for _, s := range payload {
		out = append(out, mapSeasonStat(s))
	}
	return out, nil
}

func (c *Client) get(ctx context.Context, endpoint, path string, params url.Values, dest any) error {
	u := c.baseURL + path
	if len(params) > 0 {
		u += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return fmt.Errorf("statsapi %s: create request: %w", endpoint, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("statsapi %s: %w", endpoint, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusTooManyRequests {
		return &providers.RateLimitError{
			Provider:   Name,
			StatusCode: resp.StatusCode,
			RetryAfter: parseRetryAfter(resp.Header.Get("Retry-After"), c.now()),
			Message:    fmt.Sprintf("statsapi %s rate limited", endpoint),
		}
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, errorBodyLimit))
		return &StatusError{
			Endpoint:   endpoint,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(body)),
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return fmt.Errorf("statsapi %s: decode response: %w", endpoint, err)
	}
	return nil
}

// parseRetryAfter reads either delay-seconds or an HTTP date.
func parseRetryAfter(v string, now time.Time) time.Duration {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0
	}
	if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
		return time.Duration(secs) * time.Second
	}
	if at, err := http.ParseTime(v); err == nil {
		if d := at.Sub(now); d > 0 {
			return d
		}
	}
	return 0
}

func resolveHTTPClient(client *http.Client, timeout time.Duration) httpDoer {
	if client != nil {
		return client
	}
	if timeout <= 0 {
		timeout = defaultHTTPTimeout
	}
	return &http.Client{Timeout: timeout}
}

func normalizeBaseURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		raw = defaultBaseURL
	}
	return strings.TrimSuffix(raw, "/")
}
