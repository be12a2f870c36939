package listing

import (
	"fmt"
	"sort"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/join"
)

// SortKey names a sortable season statistic using the stats API's column names.
type SortKey string

const (
	SortPoints    SortKey = "pts"
	SortAssists   SortKey = "ast"
	SortRebounds  SortKey = "trb"
	SortFGPct     SortKey = "fg_per"
	SortFG3Pct    SortKey = "fg3_per"
	SortEFGPct    SortKey = "efg_per"
	SortPER       SortKey = "per"
	SortWinShares SortKey = "ws"
	SortGames     SortKey = "g"
)

// DefaultSort is used when the request names no sort key.
const DefaultSort = SortPoints

var sortValues = map[SortKey]func(players.SeasonStat) float64{
	SortPoints:    func(s players.SeasonStat) float64 { return deref(s.Points) },
	SortAssists:   func(s players.SeasonStat) float64 { return deref(s.Assists) },
	SortRebounds:  func(s players.SeasonStat) float64 { return deref(s.Rebounds) },
	SortFGPct:     func(s players.SeasonStat) float64 { return deref(s.FGPct) },
	SortFG3Pct:    func(s players.SeasonStat) float64 { return deref(s.FG3Pct) },
	SortEFGPct:    func(s players.SeasonStat) float64 { return deref(s.EFGPct) },
	SortPER:       func(s players.SeasonStat) float64 { return deref(s.PER) },
	SortWinShares: func(s players.SeasonStat) float64 { return deref(s.WinShares) },
	SortGames: func(s players.SeasonStat) float64 {
		if s.Games == nil {
			return 0
		}
		return float64(*s.Games)
	},
}

// ParseSortKey maps a request value to a SortKey. Empty selects DefaultSort.
func ParseSortKey(raw string) (SortKey, error) {
	if raw == "" {
		return DefaultSort, nil
	}
	key := SortKey(raw)
	if _, ok := sortValues[key]; !ok {
		return "", fmt.Errorf("unknown sort key %q", raw)
	}
	return key, nil
}

// SortBy returns a copy of rows ordered descending by key. The sort is stable and
// a missing value orders as 0 without altering the row.
func SortBy(rows []join.Row, key SortKey) []join.Row {
	value, ok := sortValues[key]
	if !ok {
		value = sortValues[DefaultSort]
	}
	out := append([]join.Row(nil), rows...)
	sort.SliceStable(out, func(i, j int) bool {
		return value(out[i].Stats) > value(out[j].Stats)
	})
	return out
}

// SortByPoints is SortBy with the default points ordering.
func SortByPoints(rows []join.Row) []join.Row {
	return SortBy(rows, SortPoints)
}

func deref(v *float64) float64 {
	if v == nil {
		return 0
	}
	return *v
}
