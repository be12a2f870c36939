package config

import "github.com/preston-bernstein/isoanalytics/internal/derive"

// RankingsConfig points at the advanced ranking table.
type RankingsConfig struct {
	Path string `envconfig:"RANKINGS_PATH" default:"data/rapport_ranking.json"`
}

// PercentileConfig overrides the percentile bar calibration.
type PercentileConfig struct {
	OffenseOffset float64 `envconfig:"PERCENTILE_OFFENSE_OFFSET" default:"6"`
	OffenseScale  float64 `envconfig:"PERCENTILE_OFFENSE_SCALE" default:"10"`
	DefenseOffset float64 `envconfig:"PERCENTILE_DEFENSE_OFFSET" default:"3"`
	DefenseScale  float64 `envconfig:"PERCENTILE_DEFENSE_SCALE" default:"15"`
	OverallOffset float64 `envconfig:"PERCENTILE_OVERALL_OFFSET" default:"7"`
	OverallScale  float64 `envconfig:"PERCENTILE_OVERALL_SCALE" default:"8"`
}

// Calibration converts the configured constants for the derive package.
func (p PercentileConfig) Calibration() derive.Calibration {
	return derive.Calibration{
		Offense: derive.Axis{Offset: p.OffenseOffset, Scale: p.OffenseScale},
		Defense: derive.Axis{Offset: p.DefenseOffset, Scale: p.DefenseScale},
		Overall: derive.Axis{Offset: p.OverallOffset, Scale: p.OverallScale},
	}
}
