package teststubs

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

// StubProvider is a test double for providers.StatsProvider.
// A channel in Gates blocks FetchPlayer for that id until it is closed or ctx ends.
type StubProvider struct {
	Roster  []players.Profile
	Details map[string]players.Detail
	Stats   []players.SeasonStat
	Err     error
	Gates   map[string]chan struct{}
	Calls   atomic.Int32

	mu      sync.Mutex
	queries []listing.Query
	ids     []string
}

// FetchPlayers returns the configured roster and error while recording the query.
func (s *StubProvider) FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.queries = append(s.queries, q)
	s.mu.Unlock()
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Roster, nil
}

// FetchPlayer returns the detail configured for id, waiting on its gate first.
func (s *StubProvider) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	s.Calls.Add(1)
	s.mu.Lock()
	s.ids = append(s.ids, id)
	gate := s.Gates[id]
	s.mu.Unlock()

	if gate != nil {
		select {
		case <-gate:
		case <-ctx.Done():
			return players.Detail{}, ctx.Err()
		}
	}
	if s.Err != nil {
		return players.Detail{}, s.Err
	}
	return s.Details[id], nil
}

// FetchSeasonStats returns the configured stats and error.
func (s *StubProvider) FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error) {
	s.Calls.Add(1)
	if s.Err != nil {
		return nil, s.Err
	}
	return s.Stats, nil
}

// Queries returns the roster queries seen so far.
func (s *StubProvider) Queries() []listing.Query {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]listing.Query(nil), s.queries...)
}

// PlayerIDs returns the detail ids requested so far.
func (s *StubProvider) PlayerIDs() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.ids...)
}

// StubRankings is a test double for rankings.Store.
type StubRankings map[string]players.Ranking

// Lookup returns the row stored under name.
func (s StubRankings) Lookup(name string) (*players.Ranking, bool) {
	r, ok := s[name]
	if !ok {
		return nil, false
	}
	return &r, true
}
