package derive

import (
	"math"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
)

// Axis is an affine calibration: value = round((raw + Offset) * Scale), clamped to [0, 100].
type Axis struct {
	Offset float64
	Scale  float64
}

// Calibration holds the per-axis constants for the percentile bars. The
// defaults were fitted to one reference season's ranking distribution and are
// configuration rather than derived values.
type Calibration struct {
	Offense Axis
	Defense Axis
	Overall Axis
}

// DefaultCalibration returns offense (+6, x10), defense (+3, x15), overall (+7, x8).
func DefaultCalibration() Calibration {
	return Calibration{
		Offense: Axis{Offset: 6, Scale: 10},
		Defense: Axis{Offset: 3, Scale: 15},
		Overall: Axis{Offset: 7, Scale: 8},
	}
}

// Percentiles are the three bar values. Available is false when no ranking
// row matched, in which case every value is 0 and views show "no data".
type Percentiles struct {
	Offense   int  `json:"offense"`
	Defense   int  `json:"defense"`
	Overall   int  `json:"overall"`
	Available bool `json:"available"`
}

// Bars maps a ranking row onto the three bars. A nil row yields the zeroed, unavailable form.
func (c Calibration) Bars(r *players.Ranking) Percentiles {
	if r == nil {
		return Percentiles{}
	}
	return Percentiles{
		Offense:   c.Offense.Apply(r.Off),
		Defense:   c.Defense.Apply(r.Def),
		Overall:   c.Overall.Apply(r.Tot),
		Available: true,
	}
}

// Apply runs the affine transform and clamps the result into [0, 100].
func (a Axis) Apply(raw float64) int {
	v := math.Round((raw + a.Offset) * a.Scale)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 100:
		return 100
	default:
		return int(v)
	}
}
