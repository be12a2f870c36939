package testutil

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

func floatp(v float64) *float64 { return &v }
func intp(v int) *int           { return &v }

// SampleProfile returns a minimal roster entry with the provided id and name.
func SampleProfile(id, name string) players.Profile {
	return players.Profile{
		ID:          id,
		Name:        name,
		Position:    "G",
		Team:        "BOS",
		Height:      "6-4",
		Weight:      floatp(200),
		BirthDate:   "1998-05-01",
		DraftYear:   intp(2019),
		DraftRound:  intp(1),
		DraftNumber: intp(10),
		FirstYear:   intp(2020),
		LastYear:    intp(2024),
	}
}

// SampleStat returns a season line for id with the given points per game.
func SampleStat(id string, points float64) players.SeasonStat {
	return players.SeasonStat{
		PlayerID: id,
		Games:    intp(70),
		Points:   floatp(points),
		Rebounds: floatp(5),
		Assists:  floatp(4),
		FG3Pct:   floatp(0.375),
	}
}

// SampleDetail returns a full player payload with one made two and one missed three.
func SampleDetail(id, name string) players.Detail {
	return players.Detail{
		Player: SampleProfile(id, name),
		Stats:  SampleStat(id, 20),
		Awards: []players.Award{
			{PlayerID: id, Season: "2023-24", Category: players.AwardAllNBA},
		},
		HeadshotURL: "https://example.test/" + id + ".png",
		Shots: []players.Shot{
			{X: floatp(250), Y: floatp(60), Points: 2, Made: true},
			{X: floatp(40), Y: floatp(30), Points: 3, Made: false},
		},
	}
}
