package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dadifc/teamstats/internal/domain/player"
	qb "github.com/dadifc/teamstats/internal/platform/querybuilder"
)

type PlayerRepository struct {
	db *sqlx.DB
}

func NewPlayerRepository(db *sqlx.DB) *PlayerRepository {
	return &PlayerRepository{db: db}
}

func (r *PlayerRepository) List(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	builder := qb.Select("*").From("players").
		OrderBy("number", "id").
		Limit(filter.Limit).
		Offset(filter.Skip)
	if filter.TeamID != "" {
		builder.Where(qb.Eq("team_id", filter.TeamID))
	}
	if filter.Position != "" {
		builder.Where(qb.Eq("position", string(filter.Position)))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list players query: %w", err)
	}

	var rows []playerTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	out := make([]player.Player, 0, len(rows))
	for _, row := range rows {
		out = append(out, playerFromRow(row))
	}

	return out, nil
}

func (r *PlayerRepository) GetByID(ctx context.Context, playerID string) (player.Player, bool, error) {
	query, args, err := qb.Select("*").From("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return player.Player{}, false, fmt.Errorf("build get player by id query: %w", err)
	}

	var row playerTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return player.Player{}, false, nil
		}
		return player.Player{}, false, fmt.Errorf("get player by id: %w", err)
	}

	return playerFromRow(row), true, nil
}

func (r *PlayerRepository) Create(ctx context.Context, item player.Player) error {
	query, args, err := qb.InsertModel("players", playerToRow(item), "")
	if err != nil {
		return fmt.Errorf("build create player query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create player: %w", err)
	}

	return nil
}

func (r *PlayerRepository) Update(ctx context.Context, playerID string, update player.Update) (bool, error) {
	builder := qb.Update("players").SetExpr("updated_at", "NOW()")
	if update.TeamID != nil {
		builder.Set("team_id", *update.TeamID)
	}
	if update.Name != nil {
		builder.Set("name", *update.Name)
	}
	if update.Number != nil {
		builder.Set("number", *update.Number)
	}
	if update.Position != nil {
		builder.Set("position", string(*update.Position))
	}
	if update.Birthday != nil {
		builder.Set("birthday", *update.Birthday)
	}
	if update.Height != nil {
		builder.Set("height", *update.Height)
	}
	if update.Weight != nil {
		builder.Set("weight", *update.Weight)
	}
	if update.IsCaptain != nil {
		builder.Set("is_captain", *update.IsCaptain)
	}
	if update.Photo != nil {
		builder.Set("photo", *update.Photo)
	}

	query, args, err := builder.Where(qb.Eq("id", playerID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update player: %w", err)
	}

	return affected > 0, nil
}

func (r *PlayerRepository) Delete(ctx context.Context, playerID string) (bool, error) {
	query, args, err := qb.DeleteFrom("players").
		Where(qb.Eq("id", playerID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete player query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete player: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete player: %w", err)
	}

	return affected > 0, nil
}
