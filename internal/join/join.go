// Package join combines the roster and season-stats collections, which the
// stats API serves from separate endpoints.
package join

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

// Row is one roster entry paired with its season line.
type Row struct {
	Player players.Profile    `json:"player"`
	Stats  players.SeasonStat `json:"stats"`
}

// Join returns one stats entry per roster player keyed by player id. Players
// without a stats row map to the empty SeasonStat. Duplicate stats rows for
// the same id resolve to the last one seen.
func Join(roster []players.Profile, stats []players.SeasonStat) map[string]players.SeasonStat {
	lookup := make(map[string]players.SeasonStat, len(stats))
	for _, s := range stats {
		lookup[s.PlayerID] = s
	}

	joined := make(map[string]players.SeasonStat, len(roster))
	for _, p := range roster {
		joined[p.ID] = lookup[p.ID]
	}
	return joined
}

// Rows pairs each roster player with its joined stats, preserving roster order.
func Rows(roster []players.Profile, joined map[string]players.SeasonStat) []Row {
	rows := make([]Row, 0, len(roster))
	for _, p := range roster {
		rows = append(rows, Row{Player: p, Stats: joined[p.ID]})
	}
	return rows
}
