package sqlstore

import (
	"context"
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

var tournamentColumns = []string{
	"id", "code", "name", "category", "season_year", "match_size", "status",
	"superfinal_elo_enabled", "location_id", "created_at",
}

type tournamentRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewTournamentRepository creates a new TournamentRepository implementation
func NewTournamentRepository(db *sql.DB, driver string) repository.TournamentRepository {
	return &tournamentRepository{db: db, sb: builderFor(driver)}
}

func scanTournament(row interface{ Scan(...any) error }) (models.Tournament, error) {
	var t models.Tournament
	err := row.Scan(&t.ID, &t.Code, &t.Name, &t.Category, &t.SeasonYear, &t.MatchSize, &t.Status,
		&t.SuperfinalEloEnabled, &t.LocationID, &t.CreatedAt)
	return t, err
}

func (r *tournamentRepository) List(ctx context.Context, filter models.TournamentFilter) ([]models.Tournament, error) {
	log := logger.FromContext(ctx).WithPrefix("tournament_repo")
	log.Debug("listing season tournaments: category=%s, year=%v, match_size=%v",
		filter.Category, derefInt(filter.SeasonYear), derefInt(filter.MatchSize))

	query := r.sb.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.NotEq{"season_year": nil})

	if filter.Category != "" {
		query = query.Where(squirrel.Eq{"category": string(filter.Category)})
	}
	if filter.SeasonYear != nil {
		query = query.Where(squirrel.Eq{"season_year": *filter.SeasonYear})
	}
	if filter.MatchSize != nil {
		query = query.Where(squirrel.Eq{"match_size": *filter.MatchSize})
	}
	query = query.OrderBy("id ASC")

	sqlStr, args, err := query.ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list tournaments: %v", err)
		return nil, err
	}
	defer rows.Close()

	var tournaments []models.Tournament
	for rows.Next() {
		t, err := scanTournament(rows)
		if err != nil {
			log.Error("failed to scan tournament row: %v", err)
			return nil, err
		}
		tournaments = append(tournaments, t)
	}
	log.Debug("found %d tournaments", len(tournaments))
	return tournaments, rows.Err()
}

func (r *tournamentRepository) GetByCode(ctx context.Context, code string) (*models.Tournament, error) {
	log := logger.FromContext(ctx).WithPrefix("tournament_repo")
	log.Debug("getting tournament: code=%s", code)

	sqlStr, args, err := r.sb.Select(tournamentColumns...).
		From("tournaments").
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return nil, err
	}

	t, err := scanTournament(r.db.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("tournament not found: code=%s", code)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get tournament: %v", err)
		return nil, err
	}
	return &t, nil
}

func (r *tournamentRepository) SeasonYears(ctx context.Context, category models.Category) ([]int, error) {
	log := logger.FromContext(ctx).WithPrefix("tournament_repo")
	log.Debug("listing season years: category=%s", category)

	query := r.sb.Select("DISTINCT season_year").
		From("tournaments").
		Where(squirrel.NotEq{"season_year": nil})
	if category != "" {
		query = query.Where(squirrel.Eq{"category": string(category)})
	}
	sqlStr, args, err := query.OrderBy("season_year DESC").ToSql()
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list season years: %v", err)
		return nil, err
	}
	defer rows.Close()

	var years []int
	for rows.Next() {
		var y int
		if err := rows.Scan(&y); err != nil {
			log.Error("failed to scan season year: %v", err)
			return nil, err
		}
		years = append(years, y)
	}
	return years, rows.Err()
}

func (r *tournamentRepository) SetSuperfinalElo(ctx context.Context, code string, enabled bool) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("tournament_repo")
	log.Debug("setting superfinal elo: code=%s, enabled=%t", code, enabled)

	sqlStr, args, err := r.sb.Update("tournaments").
		Set("superfinal_elo_enabled", enabled).
		Where(squirrel.Eq{"code": code}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to update superfinal elo: %v", err)
		return false, err
	}
	return affected(res)
}

func derefInt(v *int) any {
	if v == nil {
		return "any"
	}
	return *v
}
