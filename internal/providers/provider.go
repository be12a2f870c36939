package providers

import (
	"context"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

// StatsProvider fetches normalized player data from an upstream.
// Implementations return errors; callers decide how to degrade.
type StatsProvider interface {
	// FetchPlayers returns the roster with filters applied upstream.
	FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error)
	// FetchPlayer returns the full single-player payload.
	FetchPlayer(ctx context.Context, id string) (players.Detail, error)
	// FetchSeasonStats returns every player's season line.
	FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error)
}
