package shots

import (
	"fmt"
	"io"
	"math"

	svg "github.com/ajstarks/svgo"
)

const courtStyle = "fill:none;stroke:black;stroke-width:2"

// RenderSVG draws the half court and the chart's markers.
func RenderSVG(w io.Writer, chart Chart) {
	canvas := svg.New(w)
	canvas.Startview(CourtWidth, CourtHeight, 0, 0, CourtWidth, CourtHeight)

	canvas.Rect(0, 0, CourtWidth, CourtHeight, courtStyle)
	canvas.Path("M 0,300 A 240,240 0 0,1 500,300", courtStyle)
	canvas.Circle(250, 300, 60, courtStyle)
	canvas.Rect(170, 300, 160, 100, courtStyle)
	canvas.Line(220, 400, 280, 400, "stroke:black;stroke-width:4")
	canvas.Circle(250, 400, 8, courtStyle)

	canvas.Gid("shots")
	for _, m := range chart.Markers {
		x, y := round(m.X), round(m.Y)
		switch m.Glyph {
		case GlyphCircle:
			canvas.Circle(x, y, MarkerRadius, "fill:"+m.Color)
		case GlyphCross:
			r := MarkerRadius
			canvas.Path(
				fmt.Sprintf("M %d,%d L %d,%d M %d,%d L %d,%d", x-r, y-r, x+r, y+r, x-r, y+r, x+r, y-r),
				"stroke:"+m.Color+";stroke-width:2",
			)
		}
	}
	canvas.Gend()
	canvas.End()
}

func round(v float64) int {
	return int(math.Round(v))
}
