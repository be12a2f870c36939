package statsapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// flexID accepts a player id sent either as a JSON string or a number.
type flexID string

func (id *flexID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = flexID(strings.TrimSpace(s))
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("player id: %w", err)
	}
	if i, err := n.Int64(); err == nil {
		*id = flexID(strconv.FormatInt(i, 10))
		return nil
	}
	f, err := n.Float64()
	if err != nil {
		return fmt.Errorf("player id: %w", err)
	}
	*id = flexID(strconv.FormatFloat(f, 'f', -1, 64))
	return nil
}

type playerResponse struct {
	PlayerID    flexID   `json:"player_id"`
	Player      string   `json:"player"`
	Position    string   `json:"position"`
	Team        string   `json:"team"`
	Height      string   `json:"height"`
	Weight      *float64 `json:"weight"`
	BirthDate   *string  `json:"birth_date"`
	Colleges    *string  `json:"colleges"`
	From        *float64 `json:"from"`
	To          *float64 `json:"to"`
	DraftYear   *float64 `json:"draft_year"`
	DraftRound  *float64 `json:"draft_round"`
	DraftNumber *float64 `json:"draft_number"`
}

type seasonStatResponse struct {
	PlayerID flexID   `json:"player_id"`
	G        *float64 `json:"g"`
	Pts      *float64 `json:"pts"`
	Trb      *float64 `json:"trb"`
	Ast      *float64 `json:"ast"`
	FGPer    *float64 `json:"fg_per"`
	FG3Per   *float64 `json:"fg3_per"`
	FTPer    *float64 `json:"ft_per"`
	EFGPer   *float64 `json:"efg_per"`
	PER      *float64 `json:"per"`
	WS       *float64 `json:"ws"`
}

type awardResponse struct {
	PlayerID flexID `json:"player_id"`
	Season   string `json:"season"`
	Award    string `json:"award"`
}

type playerDetailResponse struct {
	Player      playerResponse      `json:"player"`
	Stats       *seasonStatResponse `json:"stats"`
	Awards      []awardResponse     `json:"awards"`
	HeadshotURL *string             `json:"headshot_url"`
	ShotData    json.RawMessage     `json:"shot_data"`
}
