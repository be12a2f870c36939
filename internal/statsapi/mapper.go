package statsapi

import (
	"math"
	"strings"

	"github.com/preston-bernstein/isoanalytics/internal/domain/players"
	"github.com/preston-bernstein/isoanalytics/internal/shots"
)

func mapPlayer(p playerResponse) players.Profile {
	return players.Profile{
		ID:          string(p.PlayerID),
		Name:        strings.TrimSpace(p.Player),
		Position:    strings.TrimSpace(p.Position),
		Team:        strings.TrimSpace(p.Team),
		Height:      strings.TrimSpace(p.Height),
		Weight:      p.Weight,
		BirthDate:   deref(p.BirthDate),
		College:     deref(p.Colleges),
		DraftYear:   toInt(p.DraftYear),
		DraftRound:  toInt(p.DraftRound),
		DraftNumber: toInt(p.DraftNumber),
		FirstYear:   toInt(p.From),
		LastYear:    toInt(p.To),
	}
}

func mapSeasonStat(s seasonStatResponse) players.SeasonStat {
	return players.SeasonStat{
		PlayerID:  string(s.PlayerID),
		Games:     toInt(s.G),
		Points:    s.Pts,
		Rebounds:  s.Trb,
		Assists:   s.Ast,
		FGPct:     s.FGPer,
		FG3Pct:    s.FG3Per,
		FTPct:     s.FTPer,
		EFGPct:    s.EFGPer,
		PER:       s.PER,
		WinShares: s.WS,
	}
}

func mapAward(a awardResponse) players.Award {
	return players.Award{
		PlayerID: string(a.PlayerID),
		Season:   strings.TrimSpace(a.Season),
		Category: strings.TrimSpace(a.Award),
	}
}

func mapDetail(d playerDetailResponse) players.Detail {
	detail := players.Detail{
		Player:      mapPlayer(d.Player),
		Awards:      make([]players.Award, 0, len(d.Awards)),
		HeadshotURL: deref(d.HeadshotURL),
		Shots:       shots.Normalize(d.ShotData),
	}
	if d.Stats != nil {
		detail.Stats = mapSeasonStat(*d.Stats)
	}
	if detail.Stats.PlayerID == "" && !detail.Stats.IsEmpty() {
		detail.Stats.PlayerID = detail.Player.ID
	}
	for _, a := range d.Awards {
		detail.Awards = append(detail.Awards, mapAward(a))
	}
	return detail
}

// toInt rounds whole-number floats such as 2025.0 into ints. NaN and Inf are unknown.
func toInt(v *float64) *int {
	if v == nil || math.IsNaN(*v) || math.IsInf(*v, 0) {
		return nil
	}
	i := int(math.Round(*v))
	return &i
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
