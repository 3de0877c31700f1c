package postgres

import (
	"database/sql"
	"time"

	"github.com/dadifc/teamstats/internal/domain/player"
)

type playerTableModel struct {
	ID        string        `db:"id"`
	TeamID    string        `db:"team_id"`
	Name      string        `db:"name"`
	Number    int           `db:"number"`
	Position  string        `db:"position"`
	Birthday  time.Time     `db:"birthday"`
	Height    sql.NullInt64 `db:"height"`
	Weight    sql.NullInt64 `db:"weight"`
	IsCaptain bool          `db:"is_captain"`
	Photo     string        `db:"photo"`
	CreatedAt time.Time     `db:"created_at"`
	UpdatedAt time.Time     `db:"updated_at"`
}

func playerFromRow(row playerTableModel) player.Player {
	return player.Player{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Name:      row.Name,
		Number:    row.Number,
		Position:  player.Position(row.Position),
		Birthday:  row.Birthday,
		Height:    nullInt64ToIntPtr(row.Height),
		Weight:    nullInt64ToIntPtr(row.Weight),
		IsCaptain: row.IsCaptain,
		Photo:     row.Photo,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func playerToRow(item player.Player) playerTableModel {
	return playerTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		Number:    item.Number,
		Position:  string(item.Position),
		Birthday:  item.Birthday,
		Height:    intPtrToNullInt64(item.Height),
		Weight:    intPtrToNullInt64(item.Weight),
		IsCaptain: item.IsCaptain,
		Photo:     item.Photo,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}

func nullInt64ToIntPtr(v sql.NullInt64) *int {
	if !v.Valid {
		return nil
	}
	n := int(v.Int64)

	return &n
}

func intPtrToNullInt64(v *int) sql.NullInt64 {
	if v == nil {
		return sql.NullInt64{}
	}

	return sql.NullInt64{Int64: int64(*v), Valid: true}
}
