package services

import (
	"context"
	"slices"

	"github.com/vytor/seasonrank/internal/errors"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
	"github.com/vytor/seasonrank/internal/standings"
	"golang.org/x/sync/errgroup"
)

const (
	DefaultBatchSize      = 500
	DefaultMaxConcurrency = 4
)

// StandingsService computes season standings and the years index
type StandingsService interface {
	ComputeStandings(ctx context.Context, filter standings.Filter) ([]models.StandingsRow, error)
	ListYears(ctx context.Context, category string) ([]int, error)
}

type standingsService struct {
	tournamentRepo repository.TournamentRepository
	roundRepo      repository.RoundRepository
	resultRepo     repository.ResultRepository
	playerRepo     repository.PlayerRepository
	batchSize      int
	maxConcurrency int
}

// NewStandingsService creates a new StandingsService. batchSize bounds the
// number of ids per store read and maxConcurrency the reads in flight.
func NewStandingsService(
	tournamentRepo repository.TournamentRepository,
	roundRepo repository.RoundRepository,
	resultRepo repository.ResultRepository,
	playerRepo repository.PlayerRepository,
	batchSize, maxConcurrency int,
) StandingsService {
	if batchSize <= 0 {
		batchSize = DefaultBatchSize
	}
	if maxConcurrency <= 0 {
		maxConcurrency = DefaultMaxConcurrency
	}
	return &standingsService{
		tournamentRepo: tournamentRepo,
		roundRepo:      roundRepo,
		resultRepo:     resultRepo,
		playerRepo:     playerRepo,
		batchSize:      batchSize,
		maxConcurrency: maxConcurrency,
	}
}

func (s *standingsService) ComputeStandings(ctx context.Context, filter standings.Filter) ([]models.StandingsRow, error) {
	log := logger.FromContext(ctx).WithPrefix("standings")
	log.Debug("computing standings: %s", filter.Key())

	if !filter.Category.Valid() {
		log.Debug("unknown category %q, returning empty standings", filter.Category)
		return []models.StandingsRow{}, nil
	}

	tournaments, err := s.tournamentRepo.List(ctx, filter.TournamentFilter())
	if err != nil {
		log.Error("failed to list tournaments: %v", err)
		return nil, errors.NewStoreError("aggregation", err)
	}
	if len(tournaments) == 0 {
		return []models.StandingsRow{}, nil
	}

	tournamentIDs := make([]int64, len(tournaments))
	for i, t := range tournaments {
		tournamentIDs[i] = t.ID
	}

	var (
		rounds  []models.Round
		results []models.Result
	)
	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		rounds, err = loadChunked(gCtx, tournamentIDs, s.batchSize, s.maxConcurrency, s.roundRepo.ListByTournaments)
		return err
	})
	g.Go(func() error {
		var err error
		results, err = loadChunked(gCtx, tournamentIDs, s.batchSize, s.maxConcurrency, s.resultRepo.ListByTournaments)
		return err
	})
	if err := g.Wait(); err != nil {
		log.Error("failed to load rounds and results: %v", err)
		return nil, errors.NewStoreError("aggregation", err)
	}

	players, err := loadChunked(ctx, playerIDs(results), s.batchSize, s.maxConcurrency, s.playerRepo.ListByIDs)
	if err != nil {
		log.Error("failed to load players: %v", err)
		return nil, errors.NewStoreError("aggregation", err)
	}

	rows := standings.Aggregate(standings.NewInput(tournaments, rounds, results, players), filter)
	log.Debug("computed %d standings rows from %d tournaments, %d results", len(rows), len(tournaments), len(results))
	return rows, nil
}

func (s *standingsService) ListYears(ctx context.Context, category string) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("standings")
	log.Debug("listing season years: category=%s", category)

	c := standings.ParseCategory(category)
	switch {
	case c == models.CategoryAll:
		c = ""
	case !c.Valid():
		log.Debug("unknown category %q, returning no years", c)
		return []int{}, nil
	}

	years, err := s.tournamentRepo.SeasonYears(ctx, c)
	if err != nil {
		log.Error("failed to list season years: %v", err)
		return nil, errors.NewStoreError("aggregation", err)
	}
	return standings.DistinctYearsDesc(years), nil
}

// loadChunked calls load for consecutive chunks of ids, at most limit at a
// time, and concatenates the results in chunk order. The first failure
// cancels the remaining reads.
func loadChunked[T any](ctx context.Context, ids []int64, size, limit int, load func(context.Context, []int64) ([]T, error)) ([]T, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	chunks := slices.Collect(slices.Chunk(ids, size))
	parts := make([][]T, len(chunks))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, chunk := range chunks {
		g.Go(func() error {
			if err := gCtx.Err(); err != nil {
				return err
			}
			part, err := load(gCtx, chunk)
			if err != nil {
				return err
			}
			parts[i] = part
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return slices.Concat(parts...), nil
}

func playerIDs(results []models.Result) []int64 {
	seen := make(map[int64]struct{}, len(results))
	ids := make([]int64, 0, len(results))
	for _, r := range results {
		if _, ok := seen[r.PlayerID]; ok {
			continue
		}
		seen[r.PlayerID] = struct{}{}
		ids = append(ids, r.PlayerID)
	}
	slices.Sort(ids)
	return ids
}
