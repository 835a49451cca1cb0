package models

import "time"

type Round struct {
	ID           int64 `json:"id"`
	TournamentID int64 `json:"tournament_id"`
	Number       int   `json:"number"`
	// IsFinal marks the super-final phase of a tournament.
	IsFinal bool `json:"is_final"`
	// EloEnabled is nil when the flag was never set on the round.
	EloEnabled *bool     `json:"elo_enabled"`
	CreatedAt  time.Time `json:"created_at"`
}

// Result is one player's outcome in a round. Score is precomputed upstream.
type Result struct {
	ID           int64     `json:"id"`
	RoundID      int64     `json:"round_id"`
	TournamentID int64     `json:"tournament_id"`
	PlayerID     int64     `json:"player_id"`
	Score        float64   `json:"score"`
	CreatedAt    time.Time `json:"created_at"`
}
