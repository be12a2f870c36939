package view

import (
	"context"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/join"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

// PlayerSource loads one player's detail; ok is false when it is unavailable.
type PlayerSource interface {
	Player(ctx context.Context, id string) (players.Detail, bool)
}

// RosterSource loads a filtered roster.
type RosterSource interface {
	Roster(ctx context.Context, q listing.Query) []players.Profile
}

// RowSource loads the roster joined with season stats.
type RowSource interface {
	Rows(ctx context.Context, q listing.Query) []join.Row
}

// Source is everything the views read. The players service satisfies it.
type Source interface {
	PlayerSource
	RosterSource
	RowSource
}
