package shots

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

// Glyph is the marker shape for a shot.
type Glyph string

const (
	GlyphCircle Glyph = "circle" // 2-point attempts
	GlyphCross  Glyph = "cross"  // 3-point attempts
)

// Marker colors keyed by result.
const (
	MadeColor   = "#22c55e"
	MissedColor = "#ef4444"
)

// MarkerRadius is the circle radius and half the cross arm length.
const MarkerRadius = 5

// Marker is one plotted shot.
type Marker struct {
	Point
	Points int    `json:"points"`
	Made   bool   `json:"made"`
	Glyph  Glyph  `json:"glyph"`
	Color  string `json:"color"`
}

// Chart is the shot-chart view model.
type Chart struct {
	Width    int      `json:"width"`
	Height   int      `json:"height"`
	Markers  []Marker `json:"markers"`
	Shooting Shooting `json:"shooting"`
}

// NewChart projects and classifies every plottable shot and computes the splits.
func NewChart(shots []players.Shot) Chart {
	return Chart{
		Width:    CourtWidth,
		Height:   CourtHeight,
		Markers:  Markers(shots),
		Shooting: Aggregate(shots),
	}
}

// Markers projects shots into render space. Shots missing a coordinate or
// carrying an invalid point value are not plotted.
func Markers(shots []players.Shot) []Marker {
	out := make([]Marker, 0, len(shots))
	for _, s := range shots {
		glyph, ok := glyphFor(s.Points)
		if !ok {
			continue
		}
		p, ok := ProjectToCourt(s)
		if !ok {
			continue
		}
		out = append(out, Marker{
			Point:  p,
			Points: s.Points,
			Made:   s.Made,
			Glyph:  glyph,
			Color:  colorFor(s.Made),
		})
	}
	return out
}

func glyphFor(points int) (Glyph, bool) {
	switch points {
	case 2:
		return GlyphCircle, true
	case 3:
		return GlyphCross, true
	default:
		return "", false
	}
}

func colorFor(made bool) string {
	if made {
		return MadeColor
	}
	return MissedColor
}
