package view

import (
	"context"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
	"github.com/preston-bernstein/isoanalytics/internal/search"
)

// SearchResult backs the compare view's live-search suggestions.
type SearchResult struct {
	Query      string            `json:"query"`
	Matches    []players.Profile `json:"matches"`
	Suggestion *players.Profile  `json:"suggestion,omitempty"`
}

// Search matches q against the full roster. A suggestion is offered only when
// a non-empty query matches nothing.
func Search(ctx context.Context, source RosterSource, q string) SearchResult {
	res := SearchResult{Query: q, Matches: []players.Profile{}}
	if q == "" {
		return res
	}
	roster := source.Roster(ctx, listing.Query{})
	res.Matches = search.MatchByName(roster, q)
	if len(res.Matches) == 0 {
		if p, ok := search.Closest(roster, q); ok {
			res.Suggestion = &p
		}
	}
	return res
}
