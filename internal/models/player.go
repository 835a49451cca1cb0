package models

type Player struct {
	ID                 int64  `json:"id"`
	Name               string `json:"name"`
	Rating             int    `json:"rating"`
	MatchesPlayed      int    `json:"matches_played"`
	ProvisionalMatches int    `json:"provisional_matches"`
	Color              string `json:"color"`
	Icon               string `json:"icon"`
	Info               string `json:"info"`
}

// Provisional reports whether the player's rating is not yet stable.
func (p Player) Provisional() bool {
	return p.ProvisionalMatches > 0
}
