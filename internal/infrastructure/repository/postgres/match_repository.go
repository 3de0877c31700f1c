package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/dadifc/teamstats/internal/domain/match"
	qb "github.com/dadifc/teamstats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	builder := qb.Select("*").From("matches").
		OrderBy("date DESC", "id").
		Limit(filter.Limit).
		Offset(filter.Skip)
	if filter.TeamID != "" {
		builder.Where(qb.Eq("team_id", filter.TeamID))
	}
	if filter.Status != "" {
		builder.Where(qb.Eq("status", string(filter.Status)))
	}

	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build list matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, matchFromRow(row))
	}

	return out, nil
}

func (r *MatchRepository) GetByID(ctx context.Context, matchID string) (match.Match, bool, error) {
	query, args, err := qb.Select("*").From("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return match.Match{}, false, fmt.Errorf("build get match by id query: %w", err)
	}

	var row matchTableModel
	if err := r.db.GetContext(ctx, &row, query, args...); err != nil {
		if isNotFound(err) {
			return match.Match{}, false, nil
		}
		return match.Match{}, false, fmt.Errorf("get match by id: %w", err)
	}

	return matchFromRow(row), true, nil
}

func (r *MatchRepository) Create(ctx context.Context, item match.Match) error {
	query, args, err := qb.InsertModel("matches", matchToRow(item), "")
	if err != nil {
		return fmt.Errorf("build create match query: %w", err)
	}
	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("create match: %w", err)
	}

	return nil
}

func (r *MatchRepository) Update(ctx context.Context, matchID string, update match.Update) (bool, error) {
	builder := qb.Update("matches").SetExpr("updated_at", "NOW()")
	if update.TeamID != nil {
		builder.Set("team_id", *update.TeamID)
	}
	if update.Opponent != nil {
		builder.Set("opponent", *update.Opponent)
	}
	if update.Date != nil {
		builder.Set("date", *update.Date)
	}
	if update.MatchType != nil {
		builder.Set("match_type", string(*update.MatchType))
	}
	if update.MatchNature != nil {
		builder.Set("match_nature", string(*update.MatchNature))
	}
	if update.Location != nil {
		builder.Set("location", *update.Location)
	}
	if update.ScoreHome != nil {
		builder.Set("score_home", *update.ScoreHome)
	}
	if update.ScoreAway != nil {
		builder.Set("score_away", *update.ScoreAway)
	}
	if update.Status != nil {
		builder.Set("status", string(*update.Status))
	}
	if update.Videos != nil {
		builder.Set("videos", pq.StringArray(*update.Videos))
	}

	query, args, err := builder.Where(qb.Eq("id", matchID)).ToSQL()
	if err != nil {
		return false, fmt.Errorf("build update match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("update match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected update match: %w", err)
	}

	return affected > 0, nil
}

// Delete relies on the FK cascade to drop the match's stat lines with it.
func (r *MatchRepository) Delete(ctx context.Context, matchID string) (bool, error) {
	query, args, err := qb.DeleteFrom("matches").
		Where(qb.Eq("id", matchID)).
		ToSQL()
	if err != nil {
		return false, fmt.Errorf("build delete match query: %w", err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("delete match: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("rows affected delete match: %w", err)
	}

	return affected > 0, nil
}
