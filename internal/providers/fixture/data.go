package fixture

import "github.com/preston-bernstein/isoanalytics/internal/domain/players"

func intp(v int) *int           { return &v }
func floatp(v float64) *float64 { return &v }

func sampleRoster() []players.Profile {
	return []players.Profile{
		{
			ID: "jokicni01", Name: "Nikola Jokic", Position: "C", Team: "DEN", Height: "6-11",
			Weight: floatp(284), BirthDate: "1995-02-19",
			DraftYear: intp(2014), DraftRound: intp(2), DraftNumber: intp(41),
			FirstYear: intp(2016), LastYear: intp(2025),
		},
		{
			ID: "tatumja01", Name: "Jayson Tatum", Position: "F", Team: "BOS", Height: "6-8",
			Weight: floatp(210), BirthDate: "1998-03-03", College: "Duke",
			DraftYear: intp(2017), DraftRound: intp(1), DraftNumber: intp(3),
			FirstYear: intp(2018), LastYear: intp(2025),
		},
		{
			ID: "jamesle01", Name: "LeBron James", Position: "F", Team: "LAL", Height: "6-9",
			Weight: floatp(250), BirthDate: "1984-12-30",
			DraftYear: intp(2003), DraftRound: intp(1), DraftNumber: intp(1),
			FirstYear: intp(2004), LastYear: intp(2025),
		},
		{
			ID: "curryst01", Name: "Stephen Curry", Position: "G", Team: "GSW", Height: "6-2",
			Weight: floatp(185), BirthDate: "1988-03-14", College: "Davidson",
			DraftYear: intp(2009), DraftRound: intp(1), DraftNumber: intp(7),
			FirstYear: intp(2010), LastYear: intp(2025),
		},
		{
			ID: "bridgmi01", Name: "Mikal Bridges", Position: "G-F", Team: "NYK", Height: "6-6",
			Weight: floatp(209), BirthDate: "1996-08-30", College: "Villanova",
			DraftYear: intp(2018), DraftRound: intp(1), DraftNumber: intp(10),
			FirstYear: intp(2019), LastYear: intp(2025),
		},
		{
			// Undrafted rookie with sparse bio and no season line.
			ID: "rookiex01", Name: "Alex Rookie", Position: "F-C", Team: "SAS", Height: "6-10",
			FirstYear: intp(2025), LastYear: intp(2025),
		},
	}
}

func sampleStats() []players.SeasonStat {
	return []players.SeasonStat{
		{PlayerID: "jokicni01", Games: intp(70), Points: floatp(29.6), Rebounds: floatp(12.7), Assists: floatp(10.2),
			FGPct: floatp(0.576), FG3Pct: floatp(0.417), FTPct: floatp(0.800), EFGPct: floatp(0.627), PER: floatp(32.0), WinShares: floatp(16.4)},
		{PlayerID: "tatumja01", Games: intp(72), Points: floatp(26.8), Rebounds: floatp(8.7), Assists: floatp(6.0),
			FGPct: floatp(0.452), FG3Pct: floatp(0.343), FTPct: floatp(0.814), EFGPct: floatp(0.536), PER: floatp(21.7), WinShares: floatp(9.8)},
		{PlayerID: "jamesle01", Games: intp(70), Points: floatp(24.4), Rebounds: floatp(7.8), Assists: floatp(8.2),
			FGPct: floatp(0.513), FG3Pct: floatp(0.376), FTPct: floatp(0.782), EFGPct: floatp(0.578), PER: floatp(22.8), WinShares: floatp(8.1)},
		{PlayerID: "curryst01", Games: intp(70), Points: floatp(24.5), Rebounds: floatp(4.4), Assists: floatp(6.0),
			FGPct: floatp(0.448), FG3Pct: floatp(0.397), FTPct: floatp(0.933), EFGPct: floatp(0.583), PER: floatp(21.4), WinShares: floatp(8.0)},
		{PlayerID: "bridgmi01", Games: intp(82), Points: floatp(17.6), Rebounds: floatp(3.2), Assists: floatp(3.7),
			FGPct: floatp(0.500), FG3Pct: floatp(0.355), FTPct: floatp(0.804), EFGPct: floatp(0.559), PER: floatp(14.2), WinShares: floatp(6.4)},
	}
}

func sampleAwards(id string) []players.Award {
	byPlayer := map[string][]players.Award{
		"jokicni01": {
			{PlayerID: "jokicni01", Season: "2020-21", Category: players.AwardMVP},
			{PlayerID: "jokicni01", Season: "2021-22", Category: players.AwardMVP},
			{PlayerID: "jokicni01", Season: "2022-23", Category: players.AwardChampion},
			{PlayerID: "jokicni01", Season: "2023-24", Category: players.AwardMVP},
			{PlayerID: "jokicni01", Season: "2023-24", Category: players.AwardAllNBA},
		},
		"tatumja01": {
			{PlayerID: "tatumja01", Season: "2023-24", Category: players.AwardChampion},
			{PlayerID: "tatumja01", Season: "2022-23", Category: players.AwardAllNBA},
			{PlayerID: "tatumja01", Season: "2023-24", Category: players.AwardAllNBA},
		},
		"jamesle01": {
			{PlayerID: "jamesle01", Season: "2011-12", Category: players.AwardChampion},
			{PlayerID: "jamesle01", Season: "2012-13", Category: players.AwardMVP},
			{PlayerID: "jamesle01", Season: "2012-13", Category: players.AwardAllDefensive},
			{PlayerID: "jamesle01", Season: "2019-20", Category: players.AwardChampion},
		},
		"curryst01": {
			{PlayerID: "curryst01", Season: "2015-16", Category: players.AwardMVP},
			{PlayerID: "curryst01", Season: "2021-22", Category: players.AwardChampion},
			{PlayerID: "curryst01", Season: "2021-22", Category: "Finals MVP"},
		},
		"bridgmi01": {
			{PlayerID: "bridgmi01", Season: "2021-22", Category: players.AwardAllDefensive},
		},
	}
	return append([]players.Award{}, byPlayer[id]...)
}

// sampleShots spreads a deterministic pattern over the half court. The rookie has none.
func sampleShots(id string) []players.Shot {
	if id == "rookiex01" {
		return []players.Shot{}
	}
	seed := 0
	for _, r := range id {
		seed += int(r)
	}
	out := make([]players.Shot, 0, 24)
	for i := 0; i < 24; i++ {
		n := seed + i*37
		points := 2
		x := float64(150 + n%200)
		y := float64(20 + n%120)
		if i%3 == 0 {
			points = 3
			x = float64(20 + n%460)
			y = float64(150 + n%60)
		}
		out = append(out, players.Shot{
			X:      floatp(x),
			Y:      floatp(y),
			Points: points,
			Made:   n%5 < 2,
		})
	}
	return out
}
