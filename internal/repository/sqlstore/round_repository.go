package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

type roundRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewRoundRepository creates a new RoundRepository implementation
func NewRoundRepository(db *sql.DB, driver string) repository.RoundRepository {
	return &roundRepository{db: db, sb: builderFor(driver)}
}

func (r *roundRepository) ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Round, error) {
	log := logger.FromContext(ctx).WithPrefix("round_repo")
	if len(tournamentIDs) == 0 {
		return nil, nil
	}
	log.Debug("listing rounds for %d tournaments", len(tournamentIDs))

	sqlStr, args, err := r.sb.Select("id", "tournament_id", "number", "is_final", "elo_enabled", "created_at").
		From("rounds").
		Where(squirrel.Eq{"tournament_id": tournamentIDs}).
		OrderBy("tournament_id ASC", "number ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list rounds: %v", err)
		return nil, err
	}
	defer rows.Close()

	var rounds []models.Round
	for rows.Next() {
		var rd models.Round
		if err := rows.Scan(&rd.ID, &rd.TournamentID, &rd.Number, &rd.IsFinal, &rd.EloEnabled, &rd.CreatedAt); err != nil {
			log.Error("failed to scan round row: %v", err)
			return nil, err
		}
		rounds = append(rounds, rd)
	}
	log.Debug("found %d rounds", len(rounds))
	return rounds, rows.Err()
}

func (r *roundRepository) SetEloEnabled(ctx context.Context, id int64, enabled bool) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("round_repo")
	log.Debug("setting round elo: id=%d, enabled=%t", id, enabled)

	sqlStr, args, err := r.sb.Update("rounds").
		Set("elo_enabled", enabled).
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to update round elo: %v", err)
		return false, err
	}
	return affected(res)
}
