package models

// StandingsRow is computed on every query and never persisted.
type StandingsRow struct {
	Rank           int     `json:"rank"`
	PlayerID       int64   `json:"player_id"`
	Name           string  `json:"name"`
	Color          string  `json:"color"`
	Icon           string  `json:"icon"`
	Rating         int     `json:"rating"`
	Provisional    bool    `json:"provisional"`
	Score          float64 `json:"score"`
	Participations int     `json:"participations"`
	Qualifying     int     `json:"qualifying"`
}
