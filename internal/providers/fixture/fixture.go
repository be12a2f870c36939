package fixture

import (
	"context"
	"fmt"
	"strings"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/listing"
)

// Name identifies the fixture provider in logs and metrics.
const Name = "fixture"

// Provider serves a static roster useful for local runs without the stats API.
// It applies roster filters itself the way the upstream does.
type Provider struct {
	roster  []players.Profile
	stats   []players.SeasonStat
	details map[string]players.Detail
}

// New creates a fixture provider.
func New() *Provider {
	roster := sampleRoster()
	stats := sampleStats()
	details := make(map[string]players.Detail, len(roster))
	statsByID := make(map[string]players.SeasonStat, len(stats))
	for _, s := range stats {
		statsByID[s.PlayerID] = s
	}
	for _, p := range roster {
		details[p.ID] = players.Detail{
			Player:      p,
			Stats:       statsByID[p.ID],
			Awards:      sampleAwards(p.ID),
			HeadshotURL: fmt.Sprintf("https://cdn.example.test/headshots/%s.png", p.ID),
			Shots:       sampleShots(p.ID),
		}
	}
	return &Provider{roster: roster, stats: stats, details: details}
}

// FetchPlayers returns the roster filtered by name substring (case-insensitive), team and position.
func (p *Provider) FetchPlayers(ctx context.Context, q listing.Query) ([]players.Profile, error) {
	_ = ctx
	name := strings.ToLower(q.Name)
	out := make([]players.Profile, 0, len(p.roster))
	for _, pl := range p.roster {
		if name != "" && !strings.Contains(strings.ToLower(pl.Name), name) {
			continue
		}
		if q.Team != "" && pl.Team != q.Team {
			continue
		}
		if q.Position != "" && pl.Position != q.Position {
			continue
		}
		out = append(out, pl)
	}
	return out, nil
}

// FetchPlayer returns the fixture detail for id.
func (p *Provider) FetchPlayer(ctx context.Context, id string) (players.Detail, error) {
	_ = ctx
	d, ok := p.details[id]
	if !ok {
		return players.Detail{}, fmt.Errorf("fixture: player %q not found", id)
	}
	return d, nil
}

// FetchSeasonStats returns the fixture season lines. Not every roster player has one.
func (p *Provider) FetchSeasonStats(ctx context.Context) ([]players.SeasonStat, error) {
	_ = ctx
	return append([]players.SeasonStat(nil), p.stats...), nil
}
