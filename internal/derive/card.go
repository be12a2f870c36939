package derive

import (
	"fmt"
	"time"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
)

// Card is the player-card view model.
type Card struct {
	Player      players.Profile    `json:"player"`
	Stats       players.SeasonStat `json:"stats"`
	HeadshotURL string             `json:"headshotUrl"`
	Age         *int               `json:"age"`
	Seasons     *int               `json:"seasons"`
	Awards      AwardTally         `json:"awards"`
	Badges      []Badge            `json:"badges"`
	Draft       string             `json:"draft"`
}

// NewCard derives the card for a fetched player relative to ref.
func NewCard(d players.Detail, ref time.Time) Card {
	tally := TallyAwards(d.Awards)
	card := Card{
		Player:      d.Player,
		Stats:       d.Stats,
		HeadshotURL: d.HeadshotURL,
		Awards:      tally,
		Badges:      tally.Badges(),
		Draft:       DraftLine(d.Player),
	}
	if age, ok := Age(d.Player.BirthDate, ref); ok {
		card.Age = &age
	}
	if seasons, ok := Seasons(d.Player.FirstYear, d.Player.LastYear); ok {
		card.Seasons = &seasons
	}
	return card
}

// DraftLine formats "No. N overall, YEAR", or "" when the player was not drafted.
func DraftLine(p players.Profile) string {
	if p.DraftNumber == nil || p.DraftYear == nil {
		return ""
	}
	return fmt.Sprintf("No. %d overall, %d", *p.DraftNumber, *p.DraftYear)
}
