package players

// Profile is the normalized player bio as served by the stats API.
// Pointer fields are nil when the upstream has no value; nil is "unknown", never zero.
type Profile struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Position    string   `json:"position"`
	Team        string   `json:"team"`
	Height      string   `json:"height"`
	Weight      *float64 `json:"weight"`
	BirthDate   string   `json:"birthDate"`
	College     string   `json:"college"`
	DraftYear   *int     `json:"draftYear"`
	DraftRound  *int     `json:"draftRound"`
	DraftNumber *int     `json:"draftNumber"`
	FirstYear   *int     `json:"firstYear"`
	LastYear    *int     `json:"lastYear"`
}

// SeasonStat holds one player's season line. A zero value is the empty record
// used when a player has no stats row.
type SeasonStat struct {
	PlayerID  string   `json:"playerId,omitempty"`
	Games     *int     `json:"games"`
	Points    *float64 `json:"points"`
	Rebounds  *float64 `json:"rebounds"`
	Assists   *float64 `json:"assists"`
	FGPct     *float64 `json:"fgPct"`
	FG3Pct    *float64 `json:"fg3Pct"`
	FTPct     *float64 `json:"ftPct"`
	EFGPct    *float64 `json:"efgPct"`
	PER       *float64 `json:"per"`
	WinShares *float64 `json:"winShares"`
}

// IsEmpty reports whether no numeric field is known.
func (s SeasonStat) IsEmpty() bool {
	return s.Games == nil &&
		s.Points == nil &&
		s.Rebounds == nil &&
		s.Assists == nil &&
		s.FGPct == nil &&
		s.FG3Pct == nil &&
		s.FTPct == nil &&
		s.EFGPct == nil &&
		s.PER == nil &&
		s.WinShares == nil
}

// Award categories recognized by the award tally. Other strings are carried but not counted.
const (
	AwardAllDefensive = "All-Defensive"
	AwardChampion     = "NBA Champion"
	AwardAllNBA       = "All-NBA"
	AwardMVP          = "MVP"
)

// Award is a single (player, category) honor for a season.
type Award struct {
	PlayerID string `json:"playerId"`
	Season   string `json:"season"`
	Category string `json:"award"`
}

// Shot is one field-goal attempt in court space (0-500 x 0-400, y measured up from the baseline).
type Shot struct {
	X      *float64 `json:"x"`
	Y      *float64 `json:"y"`
	Points int      `json:"points"`
	Made   bool     `json:"made"`
}

// Detail is the full single-player payload backing the dashboard and compare views.
type Detail struct {
	Player      Profile    `json:"player"`
	Stats       SeasonStat `json:"stats"`
	Awards      []Award    `json:"awards"`
	HeadshotURL string     `json:"headshotUrl"`
	Shots       []Shot     `json:"shots"`
}

// Ranking is one row of the advanced ranking table, matched to players by exact name.
type Ranking struct {
	Player string  `json:"Player"`
	Off    float64 `json:"Off"`
	Def    float64 `json:"Def"`
	Tot    float64 `json:"Tot"`
	WAR    float64 `json:"WAR"`
	WAR82  float64 `json:"WAR82"`
}
