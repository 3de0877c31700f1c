package postgres

import (
	"time"

	"github.com/dadifc/teamstats/internal/domain/team"
)

type teamTableModel struct {
	ID          string    `db:"id"`
	Name        string    `db:"name"`
	Logo        string    `db:"logo"`
	Color       string    `db:"color"`
	FoundedYear int       `db:"founded_year"`
	Coach       string    `db:"coach"`
	CreatedAt   time.Time `db:"created_at"`
	UpdatedAt   time.Time `db:"updated_at"`
}

func teamFromRow(row teamTableModel) team.Team {
	return team.Team{
		ID:          row.ID,
		Name:        row.Name,
		Logo:        row.Logo,
		Color:       row.Color,
		FoundedYear: row.FoundedYear,
		Coach:       row.Coach,
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func teamToRow(item team.Team) teamTableModel {
	return teamTableModel{
		ID:          item.ID,
		Name:        item.Name,
		Logo:        item.Logo,
		Color:       item.Color,
		FoundedYear: item.FoundedYear,
		Coach:       item.Coach,
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
