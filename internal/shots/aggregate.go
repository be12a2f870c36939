package shots

import (
	"math"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
)

// Split is a make/attempt count with its percentage rounded to one decimal.
type Split struct {
	Made      int     `json:"made"`
	Attempted int     `json:"attempted"`
	Pct       float64 `json:"pct"`
}

// Shooting holds the per-zone splits.
type Shooting struct {
	TwoPoint   Split `json:"twoPoint"`
	ThreePoint Split `json:"threePoint"`
}

// Aggregate partitions shots by point value. Values other than 2 and 3 are excluded.
func Aggregate(shots []players.Shot) Shooting {
	var out Shooting
	for _, s := range shots {
		var split *Split
		switch s.Points {
		case 2:
			split = &out.TwoPoint
		case 3:
			split = &out.ThreePoint
		default:
			continue
		}
		split.Attempted++
		if s.Made {
			split.Made++
		}
	}
	out.TwoPoint.Pct = pct(out.TwoPoint.Made, out.TwoPoint.Attempted)
	out.ThreePoint.Pct = pct(out.ThreePoint.Made, out.ThreePoint.Attempted)
	return out
}

func pct(made, attempted int) float64 {
	if attempted == 0 {
		return 0
	}
	return math.Round(float64(made)/float64(attempted)*1000) / 10
}
