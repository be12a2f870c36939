package shots

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

// Court space, in chart units.
const (
	CourtWidth  = 500
	CourtHeight = 400
)

// Point is a position in render space (origin top-left, y growing downward).
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// ProjectToCourt flips the stored baseline-up y into render space. ok is false
// when either coordinate is missing; such shots still count toward splits.
func ProjectToCourt(s players.Shot) (Point, bool) {
	if s.X == nil || s.Y == nil {
		return Point{}, false
	}
	return Point{X: *s.X, Y: CourtHeight - *s.Y}, true
}
