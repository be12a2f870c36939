package view

import (
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/derive"
	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/rankings"
)

// Profile is one loaded player card plus its percentile bars.
// Card is nil when Loaded is false.
type Profile struct {
	PlayerID    string             `json:"playerId"`
	Loaded      bool               `json:"loaded"`
	Card        *derive.Card       `json:"card"`
	Percentiles derive.Percentiles `json:"percentiles"`
}

// Deriver turns fetched details into profiles.
type Deriver struct {
	Rankings    rankings.Store
	Calibration derive.Calibration
	Now         func() time.Time
}

func (d Deriver) profile(id string, detail players.Detail, ok bool) Profile {
	p := Profile{PlayerID: id}
	if !ok {
		return p
	}
	now := time.Now
	if d.Now != nil {
		now = d.Now
	}
	card := derive.NewCard(detail, now())
	p.Loaded = true
	p.Card = &card

	var row *players.Ranking
	if d.Rankings != nil {
		row, _ = d.Rankings.Lookup(detail.Player.Name)
	}
	p.Percentiles = d.Calibration.Bars(row)
	return p
}
