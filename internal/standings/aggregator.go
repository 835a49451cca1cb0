// Package standings turns season results into ordered player standings.
package standings

import (
	"cmp"
	"slices"

	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/rating"
)

// Input is everything the aggregator needs, already loaded from the store.
type Input struct {
	Tournaments map[int64]models.Tournament
	Rounds      map[int64]models.Round
	Results     []models.Result
	Players     map[int64]models.Player
}

// NewInput indexes loaded records by id.
func NewInput(tournaments []models.Tournament, rounds []models.Round, results []models.Result, players []models.Player) Input {
	in := Input{
		Tournaments: make(map[int64]models.Tournament, len(tournaments)),
		Rounds:      make(map[int64]models.Round, len(rounds)),
		Results:     results,
		Players:     make(map[int64]models.Player, len(players)),
	}
	for _, t := range tournaments {
		in.Tournaments[t.ID] = t
	}
	for _, r := range rounds {
		in.Rounds[r.ID] = r
	}
	for _, p := range players {
		in.Players[p.ID] = p
	}
	return in
}

// Aggregate computes standings for the selected tournaments in in.
//
// Results outside the selected tournaments are ignored. When f.Rated is set a
// result only qualifies if its round is rating-eligible. Each player's
// qualifying results are ranked by score (earliest result first on ties), the
// best f.BestN are summed, and players with fewer than f.ParticipationMin
// qualifying results are dropped. The returned order is total: score desc,
// participations desc, name asc, player id asc.
func Aggregate(in Input, f Filter) []models.StandingsRow {
	byPlayer := make(map[int64][]models.Result)
	for _, res := range in.Results {
		round, ok := in.Rounds[res.RoundID]
		if !ok {
			continue
		}
		tournament, ok := in.Tournaments[round.TournamentID]
		if !ok {
			continue
		}
		if f.Rated && !rating.Eligible(round, tournament) {
			continue
		}
		byPlayer[res.PlayerID] = append(byPlayer[res.PlayerID], res)
	}

	rows := make([]models.StandingsRow, 0, len(byPlayer))
	for playerID, results := range byPlayer {
		if len(results) < f.ParticipationMin {
			continue
		}
		kept := bestResults(results, f.BestN)

		var score float64
		for _, res := range kept {
			score += res.Score
		}

		player := in.Players[playerID]
		rows = append(rows, models.StandingsRow{
			PlayerID:       playerID,
			Name:           player.Name,
			Color:          player.Color,
			Icon:           player.Icon,
			Rating:         player.Rating,
			Provisional:    player.Provisional(),
			Score:          score,
			Participations: len(kept),
			Qualifying:     len(results),
		})
	}

	slices.SortFunc(rows, compareRows)
	for i := range rows {
		rows[i].Rank = i + 1
	}
	return rows
}

// bestResults orders results by score desc, created_at asc, id asc and keeps
// the first n. A nil n keeps everything.
func bestResults(results []models.Result, n *int) []models.Result {
	sorted := slices.Clone(results)
	slices.SortFunc(sorted, func(a, b models.Result) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	if n != nil && *n < len(sorted) {
		sorted = sorted[:*n]
	}
	return sorted
}

func compareRows(a, b models.StandingsRow) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	if c := cmp.Compare(b.Participations, a.Participations); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Name, b.Name); c != 0 {
		return c
	}
	return cmp.Compare(a.PlayerID, b.PlayerID)
}
