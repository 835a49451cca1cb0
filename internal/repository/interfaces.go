package repository

import (
	"context"

	"github.com/vytor/seasonrank/internal/models"
)

// TournamentRepository handles tournament data access
type TournamentRepository interface {
	List(ctx context.Context, filter models.TournamentFilter) ([]models.Tournament, error)
	GetByCode(ctx context.Context, code string) (*models.Tournament, error)
	// SeasonYears returns the season years of tournaments in category, or of
	// every tournament when category is empty. NULL years are skipped.
	SeasonYears(ctx context.Context, category models.Category) ([]int, error)
	SetSuperfinalElo(ctx context.Context, code string, enabled bool) (bool, error)
}

// RoundRepository handles round data access
type RoundRepository interface {
	ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Round, error)
	SetEloEnabled(ctx context.Context, id int64, enabled bool) (bool, error)
}

// ResultRepository reads per-round results
type ResultRepository interface {
	ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Result, error)
}

// PlayerRepository reads player profiles
type PlayerRepository interface {
	ListByIDs(ctx context.Context, ids []int64) ([]models.Player, error)
}

// FilterPresetRepository handles saved filter presets
type FilterPresetRepository interface {
	List(ctx context.Context, presetContext string) ([]models.FilterPreset, error)
	Get(ctx context.Context, id string) (*models.FilterPreset, error)
	Insert(ctx context.Context, preset models.FilterPreset) error
	Update(ctx context.Context, preset models.FilterPreset) (bool, error)
	Delete(ctx context.Context, id string) (bool, error)
}
