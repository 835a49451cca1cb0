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

var filterPresetColumns = []string{
	"id", "context", "label", "category", "name", "date_from", "date_to",
	"pinned", "sort_order", "created_at", "updated_at",
}

type filterPresetRepository struct {
	db *sql.DB
	sb squirrel.StatementBuilderType
}

// NewFilterPresetRepository creates a new FilterPresetRepository implementation
func NewFilterPresetRepository(db *sql.DB, driver string) repository.FilterPresetRepository {
	return &filterPresetRepository{db: db, sb: builderFor(driver)}
}

func scanFilterPreset(row interface{ Scan(...any) error }) (models.FilterPreset, error) {
	var p models.FilterPreset
	err := row.Scan(&p.ID, &p.Context, &p.Label, &p.Category, &p.Name, &p.DateFrom, &p.DateTo,
		&p.Pinned, &p.SortOrder, &p.CreatedAt, &p.UpdatedAt)
	return p, err
}

func (r *filterPresetRepository) List(ctx context.Context, presetContext string) ([]models.FilterPreset, error) {
	log := logger.FromContext(ctx).WithPrefix("filter_preset_repo")
	log.Debug("listing filter presets: context=%s", presetContext)

	sqlStr, args, err := r.sb.Select(filterPresetColumns...).
		From("filter_presets").
		Where(squirrel.Eq{"context": presetContext}).
		OrderBy("pinned DESC", "sort_order ASC", "created_at ASC", "id ASC").
		ToSql()
	if err != nil {
		log.Error("failed to build query: %v", err)
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to list filter presets: %v", err)
		return nil, err
	}
	defer rows.Close()

	var presets []models.FilterPreset
	for rows.Next() {
		p, err := scanFilterPreset(rows)
		if err != nil {
			log.Error("failed to scan filter preset row: %v", err)
			return nil, err
		}
		presets = append(presets, p)
	}
	log.Debug("found %d filter presets", len(presets))
	return presets, rows.Err()
}

func (r *filterPresetRepository) Get(ctx context.Context, id string) (*models.FilterPreset, error) {
	log := logger.FromContext(ctx).WithPrefix("filter_preset_repo")
	log.Debug("getting filter preset: id=%s", id)

	sqlStr, args, err := r.sb.Select(filterPresetColumns...).
		From("filter_presets").
		Where(squirrel.Eq{"id": id}).
		ToSql()
	if err != nil {
		return nil, err
	}

	p, err := scanFilterPreset(r.db.QueryRowContext(ctx, sqlStr, args...))
	if errors.Is(err, sql.ErrNoRows) {
		log.Debug("filter preset not found: id=%s", id)
		return nil, nil
	}
	if err != nil {
		log.Error("failed to get filter preset: %v", err)
		return nil, err
	}
	return &p, nil
}

func (r *filterPresetRepository) Insert(ctx context.Context, p models.FilterPreset) error {
	log := logger.FromContext(ctx).WithPrefix("filter_preset_repo")
	log.Debug("inserting filter preset: context=%s, label=%s", p.Context, p.Label)

	sqlStr, args, err := r.sb.Insert("filter_presets").
		Columns(filterPresetColumns...).
		Values(p.ID, p.Context, p.Label, p.Category, p.Name, p.DateFrom, p.DateTo,
			p.Pinned, p.SortOrder, p.CreatedAt, p.UpdatedAt).
		ToSql()
	if err != nil {
		return err
	}

	if _, err := r.db.ExecContext(ctx, sqlStr, args...); err != nil {
		log.Error("failed to insert filter preset: %v", err)
		return err
	}
	log.Debug("filter preset inserted: id=%s", p.ID)
	return nil
}

// Update overwrites the mutable columns verbatim. created_at is never touched.
func (r *filterPresetRepository) Update(ctx context.Context, p models.FilterPreset) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("filter_preset_repo")
	log.Debug("updating filter preset: id=%s, pinned=%t, sort_order=%d", p.ID, p.Pinned, p.SortOrder)

	sqlStr, args, err := r.sb.Update("filter_presets").
		SetMap(map[string]interface{}{
			"context":    p.Context,
			"label":      p.Label,
			"category":   p.Category,
			"name":       p.Name,
			"date_from":  p.DateFrom,
			"date_to":    p.DateTo,
			"pinned":     p.Pinned,
			"sort_order": p.SortOrder,
			"updated_at": p.UpdatedAt,
		}).
		Where(squirrel.Eq{"id": p.ID}).
		ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to update filter preset: %v", err)
		return false, err
	}
	return affected(res)
}

func (r *filterPresetRepository) Delete(ctx context.Context, id string) (bool, error) {
	log := logger.FromContext(ctx).WithPrefix("filter_preset_repo")
	log.Debug("deleting filter preset: id=%s", id)

	sqlStr, args, err := r.sb.Delete("filter_presets").Where(squirrel.Eq{"id": id}).ToSql()
	if err != nil {
		return false, err
	}

	res, err := r.db.ExecContext(ctx, sqlStr, args...)
	if err != nil {
		log.Error("failed to delete filter preset: %v", err)
		return false, err
	}
	return affected(res)
}
