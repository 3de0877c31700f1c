package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/dadifc/teamstats/internal/domain/matchstat"
	qb "github.com/dadifc/teamstats/internal/platform/querybuilder"
)

type StatRepository struct {
	db *sqlx.DB
}

func NewStatRepository(db *sqlx.DB) *StatRepository {
	return &StatRepository{db: db}
}

func (r *StatRepository) ListByMatch(ctx context.Context, matchID string) ([]matchstat.Stat, error) {
	query, args, err := qb.Select("*").From("match_player_stats").
		Where(qb.Eq("match_id", matchID)).
		OrderBy("player_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by match query: %w", err)
	}

	var rows []statTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stats by match: %w", err)
	}

	out := make([]matchstat.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, statFromRow(row))
	}

	return out, nil
}

func (r *StatRepository) ListByMatches(ctx context.Context, matchIDs []string) ([]matchstat.Stat, error) {
	ids := make([]any, 0, len(matchIDs))
	for _, id := range matchIDs {
		ids = append(ids, id)
	}

	query, args, err := qb.Select("*").From("match_player_stats").
		Where(qb.In("match_id", ids)).
		OrderBy("match_id", "player_number", "id").
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list stats by matches query: %w", err)
	}

	var rows []statTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list stats by matches: %w", err)
	}

	out := make([]matchstat.Stat, 0, len(rows))
	for _, row := range rows {
		out = append(out, statFromRow(row))
	}

	return out, nil
}

// ReplaceForMatch swaps a match's whole stat sheet inside one
// transaction so readers never observe a half-written sheet.
func (r *StatRepository) ReplaceForMatch(ctx context.Context, matchID string, stats []matchstat.Stat) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace match stats: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	deleteQuery, deleteArgs, err := qb.DeleteFrom("match_player_stats").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete match stats query: %w", err)
	}
	if _, err := tx.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("delete match stats: %w", err)
	}

	if len(stats) > 0 {
		builder := qb.InsertInto("match_player_stats").
			Columns("id", "match_id", "player_id", "player_name", "player_number",
				"player_position", "is_playing", "goals", "assists", "created_at")
		for _, item := range stats {
			builder.Values(item.ID, matchID, item.PlayerID, item.PlayerName, item.PlayerNumber,
				item.PlayerPosition, item.IsPlaying, item.Goals, item.Assists, item.CreatedAt)
		}

		insertQuery, insertArgs, err := builder.ToSQL()
		if err != nil {
			return fmt.Errorf("build insert match stats query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
			return fmt.Errorf("insert match stats: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace match stats tx: %w", err)
	}

	return nil
}

func (r *StatRepository) DeleteByMatch(ctx context.Context, matchID string) error {
	query, args, err := qb.DeleteFrom("match_player_stats").
		Where(qb.Eq("match_id", matchID)).
		ToSQL()
	if err != nil {
		return fmt.Errorf("build delete stats by match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("delete stats by match: %w", err)
	}

	return nil
}
