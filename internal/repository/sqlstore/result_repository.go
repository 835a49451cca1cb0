package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

type resultRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewResultRepository creates a new ResultRepository implementation
func NewResultRepository(db *sql.DB, driver string) repository.ResultRepository {
	return &resultRepository{db: db, sb: builderFor(driver)}
}

func (r *resultRepository) ListByTournaments(ctx context.Context, tournamentIDs []int64) ([]models.Result, error) {
	log := logger.FromContext(ctx).WithPrefix("result_repo")
	if len(tournamentIDs) == 0 {
		return nil, nil
	}
	log.Debug("listing results for %d tournaments", len(tournamentIDs))

	sqlStr, args, err := r.sb.Select("res.id", "res.round_id", "rd.tournament_id", "res.player_id", "res.score", "res.created_at").
		From("results res").
		Join("rounds rd ON rd.id = res.round_id").
		Where(squirrel.Eq{"rd.tournament_id": tournamentIDs}).
		OrderBy("res.id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list results: %v", err)
		return nil, err
	}
	defer rows.Close()

	var results []models.Result
	for rows.Next() {
		var res models.Result
		if err := rows.Scan(&res.ID, &res.RoundID, &res.TournamentID, &res.PlayerID, &res.Score, &res.CreatedAt); err != nil {
			log.Error("failed to scan result row: %v", err)
			return nil, err
		}
		results = append(results, res)
	}
	log.Debug("found %d results", len(results))
	return results, rows.Err()
}
