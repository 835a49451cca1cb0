package sqlstore

import (
	"context"
	"database/sql"

	"github.com/Masterminds/squirrel"
	"github.com/vytor/seasonrank/internal/logger"
	"github.com/vytor/seasonrank/internal/models"
	"github.com/vytor/seasonrank/internal/repository"
)

type playerRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewPlayerRepository creates a new PlayerRepository implementation
func NewPlayerRepository(db *sql.DB, driver string) repository.PlayerRepository {
	return &playerRepository{db: db, sb: builderFor(driver)}
}

func (r *playerRepository) ListByIDs(ctx context.Context, ids []int64) ([]models.Player, error) {
	log := logger.FromContext(ctx).WithPrefix("player_repo")
	if len(ids) == 0 {
		return nil, nil
	}
	log.Debug("listing %d players", len(ids))

	sqlStr, args, err := r.sb.Select("id", "name", "rating", "matches_played", "provisional_matches", "color", "icon", "info").
		From("players").
		Where(squirrel.Eq{"id": ids}).
		OrderBy("id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list players: %v", err)
		return nil, err
	}
	defer rows.Close()

	var players []models.Player
	for rows.Next() {
		var p models.Player
		if err := rows.Scan(&p.ID, &p.Name, &p.Rating, &p.MatchesPlayed, &p.ProvisionalMatches, &p.Color, &p.Icon, &p.Info); err != nil {
			log.Error("failed to scan player row: %v", err)
			return nil, err
		}
		players = append(players, p)
	}
	return players, rows.Err()
}
