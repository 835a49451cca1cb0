package services

import (
	"context"
	"strings"

	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

// TournamentService handles the rating toggles stored on rounds and tournaments
type TournamentService interface {
	GetTournament(ctx context.Context, code string) (*models.Tournament, error)
	SetRoundElo(ctx context.Context, roundID int64, enabled *bool) error
	SetSuperfinalElo(ctx context.Context, code string, enabled bool) error
}

type tournamentService struct {
	tournamentRepo repository.TournamentRepository
	roundRepo      repository.RoundRepository
}

// NewTournamentService creates a new TournamentService
func NewTournamentService(tournamentRepo repository.TournamentRepository, roundRepo repository.RoundRepository) TournamentService {
	return &tournamentService{tournamentRepo: tournamentRepo, roundRepo: roundRepo}
}

// NormalizeCode canonicalises a tournament code the way codes are stored.
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

func (s *tournamentService) GetTournament(ctx context.Context, code string) (*models.Tournament, error) {
	log := logger.FromContext(ctx)
	code = NormalizeCode(code)
	log.Debug("getting tournament: code=%s", code)

	if code == "" {
		return nil, errors.NewValidationError("code", "cannot be empty")
	}

	tournament, err := s.tournamentRepo.GetByCode(ctx, code)
	if err != nil {
		log.Error("failed to get tournament: %v", err)
		return nil, errors.NewStoreError("get tournament", err)
	}
	if tournament == nil {
		return nil, errors.NewNotFoundError("tournament", code)
	}
	return tournament, nil
}

// SetRoundElo sets a round's rating toggle. Standings are computed per
// request, so nothing is recomputed here.
func (s *tournamentService) SetRoundElo(ctx context.Context, roundID int64, enabled *bool) error {
	log := logger.FromContext(ctx)
	log.Debug("setting round elo: round_id=%d", roundID)

	if roundID <= 0 {
		return errors.NewValidationError("roundId", "must be a positive integer")
	}
	if enabled == nil {
		return errors.NewValidationError("eloEnabled", "is required")
	}

	found, err := s.roundRepo.SetEloEnabled(ctx, roundID, *enabled)
	if err != nil {
		log.Error("failed to set round elo: %v", err)
		return errors.NewStoreError("set round elo", err)
	}
	if !found {
		return errors.NewNotFoundError("round", roundID)
	}

	log.Info("round %d elo_enabled=%t", roundID, *enabled)
	return nil
}

func (s *tournamentService) SetSuperfinalElo(ctx context.Context, code string, enabled bool) error {
	log := logger.FromContext(ctx)
	code = NormalizeCode(code)
	log.Debug("setting superfinal elo: code=%s", code)

	if code == "" {
		return errors.NewValidationError("code", "cannot be empty")
	}

	found, err := s.tournamentRepo.SetSuperfinalElo(ctx, code, enabled)
	if err != nil {
		log.Error("failed to set superfinal elo: %v", err)
		return errors.NewStoreError("set superfinal elo", err)
	}
	if !found {
		return errors.NewNotFoundError("tournament", code)
	}

	log.Info("tournament %s superfinal_elo_enabled=%t", code, enabled)
	return nil
}
