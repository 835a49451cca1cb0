package models

import "time"

// Category partitions tournaments for standings.
type Category string

const (
	CategoryLeague Category = "league"
	CategoryNormal Category = "normal"
	CategoryFun    Category = "fun"

	// CategoryAll selects every category. It is only accepted by the years index.
	CategoryAll Category = "all"
)

// Valid reports whether c names a concrete category.
func (c Category) Valid() bool {
	switch c {
	case CategoryLeague, CategoryNormal, CategoryFun:
		return true
	}
	return false
}

type Tournament struct {
	ID                   int64     `json:"id"`
	Code                 string    `json:"code"`
	Name                 string    `json:"name"`
	Category             Category  `json:"category"`
	SeasonYear           *int      `json:"season_year"`
	MatchSize            int       `json:"match_size"`
	Status               string    `json:"status"`
	SuperfinalEloEnabled bool      `json:"superfinal_elo_enabled"`
	LocationID           *int64    `json:"location_id"`
	CreatedAt            time.Time `json:"created_at"`
}

// TournamentFilter selects tournaments for season aggregation. Tournaments
// without a season year never match.
type TournamentFilter struct {
	Category   Category
	SeasonYear *int
	MatchSize  *int
}
