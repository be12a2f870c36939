// Package shots turns raw shot events into chart markers and shooting splits.
//
// The stats API is inconsistent about the shape of shot_data: it may be a flat
// list, a list wrapping one list, a single event, or the scraper's
// {"playerId", "shots"} wrapper. Normalize is the only place that knows this;
// the rest of the package works on the flat []players.Shot form.
package shots

import (
	"bytes"
	"encoding/json"
	"math"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
)

type wireShot struct {
	X        *float64 `json:"x"`
	Y        *float64 `json:"y"`
	ShotPts  float64  `json:"shotPts"`
	MadeShot bool     `json:"madeShot"`
}

type wireWrapper struct {
	Shots json.RawMessage `json:"shots"`
}

// Normalize decodes any supported shot_data shape into a flat, ordered slice.
// Entries that fail to decode or carry neither coordinate are dropped.
func Normalize(raw json.RawMessage) []players.Shot {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return []players.Shot{}
	}

	switch raw[0] {
	case '[':
		return fromList(raw)
	case '{':
		return fromObject(raw)
	default:
		return []players.Shot{}
	}
}

func fromList(raw json.RawMessage) []players.Shot {
	var items []json.RawMessage
	if err := json.Unmarshal(raw, &items); err != nil {
		return []players.Shot{}
	}
	if len(items) > 0 {
		if first := bytes.TrimSpace(items[0]); len(first) > 0 && first[0] == '[' {
			// Nested payload: only the first inner list is used.
			return fromList(first)
		}
	}

	out := make([]players.Shot, 0, len(items))
	for _, item := range items {
		if shot, ok := decodeShot(item); ok {
			out = append(out, shot)
		}
	}
	return out
}

func fromObject(raw json.RawMessage) []players.Shot {
	var wrapper wireWrapper
	if err := json.Unmarshal(raw, &wrapper); err == nil && len(wrapper.Shots) > 0 {
		return Normalize(wrapper.Shots)
	}
	if shot, ok := decodeShot(raw); ok {
		return []players.Shot{shot}
	}
	return []players.Shot{}
}

func decodeShot(raw json.RawMessage) (players.Shot, bool) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '{' {
		return players.Shot{}, false
	}
	var w wireShot
	if err := json.Unmarshal(raw, &w); err != nil {
		return players.Shot{}, false
	}
	if w.X == nil && w.Y == nil {
		return players.Shot{}, false
	}
	return players.Shot{
		X:      w.X,
		Y:      w.Y,
		Points: shotPoints(w.ShotPts),
		Made:   w.MadeShot,
	}, true
}

// shotPoints keeps whole point values. Fractional or out-of-range values become 0,
// which Aggregate and Markers skip.
func shotPoints(v float64) int {
	if v != math.Trunc(v) || math.Abs(v) > 3 {
		return 0
	}
	return int(v)
}
