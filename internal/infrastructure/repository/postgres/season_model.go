package postgres

import (
	"time"

	"github.com/dadifc/teamstats/internal/domain/season"
)

type seasonTableModel struct {
	ID        string     `db:"id"`
	TeamID    string     `db:"team_id"`
	Name      string     `db:"name"`
	StartDate time.Time  `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
}

func seasonFromRow(row seasonTableModel) season.Season {
	return season.Season{
		ID:        row.ID,
		TeamID:    row.TeamID,
		Name:      row.Name,
		StartDate: row.StartDate,
		EndDate:   row.EndDate,
		CreatedAt: row.CreatedAt,
		UpdatedAt: row.UpdatedAt,
	}
}

func seasonToRow(item season.Season) seasonTableModel {
	return seasonTableModel{
		ID:        item.ID,
		TeamID:    item.TeamID,
		Name:      item.Name,
		StartDate: item.StartDate,
		EndDate:   item.EndDate,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
}
