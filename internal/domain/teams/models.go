package teams

// Codes lists the team abbreviations the stats API uses, in filter-select order.
var Codes = []string{
	"ATL", "BOS", "BRK", "CHI", "CHO", "CLE", "DAL", "DEN", "DET", "GSW",
	"HOU", "IND", "LAC", "LAL", "MEM", "MIA", "MIL", "MIN", "NOP", "NYK",
	"OKC", "ORL", "PHI", "PHO", "POR", "SAC", "SAS", "TOR", "UTA", "WAS",
}

// Positions lists the position labels a roster may carry.
var Positions = []string{"G", "F", "C", "G-F", "F-G", "F-C", "C-F"}

// Catalog is the payload backing the list view's team/position selects.
type Catalog struct {
	Teams     []string `json:"teams"`
	Positions []string `json:"positions"`
}

// NewCatalog returns copies of the known codes so callers cannot mutate the package lists.
func NewCatalog() Catalog {
	return Catalog{
		Teams:     append([]string(nil), Codes...),
		Positions: append([]string(nil), Positions...),
	}
}

// IsTeam reports whether code is a known team abbreviation (exact, case-sensitive).
func IsTeam(code string) bool {
	return contains(Codes, code)
}

// IsPosition reports whether pos is a known position label (exact, case-sensitive).
func IsPosition(pos string) bool {
	return contains(Positions, pos)
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}
