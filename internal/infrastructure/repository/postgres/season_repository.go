package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dadifc/teamstats/internal/domain/season"
	qb "github.com/dadifc/teamstats/internal/platform/querybuilder"
)

type SeasonRepository struct {
	db *sqlx.DB
}

func NewSeasonRepository(db *sqlx.DB) *SeasonRepository {
	return &SeasonRepository{db: db}
}

func (r *SeasonRepository) List(ctx context.Context, filter season.ListFilter) ([]season.Season, error) {
	builder := qb.Select("*").From("seasons").
		OrderBy("start_date DESC", "id").
		Limit(filter.Limit).
		Offset(filter.Skip)
	if filter.TeamID != "" {
		builder.Where(qb.Eq("team_id", filter.TeamID))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list seasons query: %w", err)
	}

	var rows []seasonTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	out := make([]season.Season, 0, len(rows))
	for _, row := range rows {
		out = append(out, seasonFromRow(row))
	}

	return out, nil
}

func (r *SeasonRepository) GetByID(ctx context.Context, seasonID string) (season.Season, bool, error) {
	query, args, err := qb.Select("*").From("seasons").
		Where(qb.Eq("id", seasonID)).
		ToSQL()
	if err != nil {
		return season.Season{}, false, fmt.Errorf("build get season by id query: %w", err)
	}

	var row seasonTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return season.Season{}, false, nil
		}
		return season.Season{}, false, fmt.Errorf("get season by id: %w", err)
	}

	return seasonFromRow(row), true, nil
}

func (r *SeasonRepository) Create(ctx context.Context, item season.Season) error {
	query, args, err := qb.InsertModel("seasons", seasonToRow(item), "")
	if err != nil {
		return fmt.Errorf("build create season query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create season: %w", err)
	}

	return nil
}

func (r *SeasonRepository) Update(ctx context.Context, seasonID string, update season.Update) (bool, error) {
	builder := qb.Update("seasons").SetExpr("updated_at", "NOW()")
	if update.Name != nil {
		builder.Set("name", *update.Name)
	}
	if update.StartDate != nil {
		builder.Set("start_date", *update.StartDate)
	}
	if update.EndDate != nil {
		builder.Set("end_date", *update.EndDate)
	}

	query, args, err := builder.Where(qb.Eq("id", seasonID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update season query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update season: %w", err)
	}

	return affected > 0, nil
}

func (r *SeasonRepository) Delete(ctx context.Context, seasonID string) (bool, error) {
	query, args, err := qb.DeleteFrom("seasons").
		Where(qb.Eq("id", seasonID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete season query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete season: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete season: %w", err)
	}

	return affected > 0, nil
}
