package derive

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

// AwardTally counts a player's honors per recognized category.
type AwardTally struct {
	Champion     int `json:"champion"`
	MVP          int `json:"mvp"`
	AllNBA       int `json:"allNba"`
	AllDefensive int `json:"allDefensive"`
}

// Badge is one award slot on the player card; Active is false when the count is zero.
type Badge struct {
	Label  string `json:"label"`
	Count  int    `json:"count"`
	Active bool   `json:"active"`
}

// TallyAwards counts awards by category. Unrecognized categories are skipped.
func TallyAwards(awards []players.Award) AwardTally {
	var tally AwardTally
	for _, a := range awards {
		switch a.Category {
		case players.AwardChampion:
			tally.Champion++
		case players.AwardMVP:
			tally.MVP++
		case players.AwardAllNBA:
			tally.AllNBA++
		case players.AwardAllDefensive:
			tally.AllDefensive++
		}
	}
	return tally
}

// Badges returns the card's award slots in display order.
func (t AwardTally) Badges() []Badge {
	return []Badge{
		newBadge("Champion", t.Champion),
		newBadge("MVP", t.MVP),
		newBadge("All-NBA", t.AllNBA),
		newBadge("All-Defensive", t.AllDefensive),
	}
}

func newBadge(label string, count int) Badge {
	return Badge{Label: label, Count: count, Active: count > 0}
}
