package statsapi

import "time"

// Name identifies this upstream in logs and metrics.
const Name = "statsapi"

const (
	defaultBaseURL     = "http://localhost:8000"
	defaultHTTPTimeout = 10 * time.Second
	errorBodyLimit     = 512
)

// Endpoint labels used in errors and metrics.
const (
	EndpointPlayers     = "players"
	EndpointPlayer      = "player"
	EndpointSeasonStats = "season_stats"
)
