// Package listing builds the player list: upstream filter queries, stat sorting and pagination.
package listing

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/preston-bernstein/isoanalytics/internal/domain/teams"
)

// Query holds the optional roster filters. They combine with AND upstream.
type Query struct {
	Name     string `json:"name,omitempty"`
	Team     string `json:"team,omitempty"`
	Position string `json:"position,omitempty"`
}

// ParseQuery reads filters from request query values and validates the enumerated ones.
func ParseQuery(v url.Values) (Query, error) {
	q := Query{
		Name:     strings.TrimSpace(v.Get("name")),
		Team:     strings.TrimSpace(v.Get("team")),
		Position: strings.TrimSpace(v.Get("position")),
	}
	return q, q.Validate()
}

// Validate rejects team and position values outside the known sets. Name is free text.
func (q Query) Validate() error {
	if q.Team != "" && !teams.IsTeam(q.Team) {
		return fmt.Errorf("unknown team %q", q.Team)
	}
	if q.Position != "" && !teams.IsPosition(q.Position) {
		return fmt.Errorf("unknown position %q", q.Position)
	}
	return nil
}

// Values encodes the filters for the upstream /players request. Empty filters are omitted.
func (q Query) Values() url.Values {
	v := url.Values{}
	if q.Name != "" {
		v.Set("name", q.Name)
	}
	if q.Team != "" {
		v.Set("team", q.Team)
	}
	if q.Position != "" {
		v.Set("position", q.Position)
	}
	return v
}
