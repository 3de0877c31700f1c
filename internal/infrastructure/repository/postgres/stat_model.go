package postgres

import (
	"time"

	"github.com/dadifc/teamstats/internal/domain/matchstat"
)

type statTableModel struct {
	ID             string    `db:"id"`
	MatchID        string    `db:"match_id"`
	PlayerID       string    `db:"player_id"`
	PlayerName     string    `db:"player_name"`
	PlayerNumber   int       `db:"player_number"`
	PlayerPosition string    `db:"player_position"`
	IsPlaying      bool      `db:"is_playing"`
	Goals          int       `db:"goals"`
	Assists        int       `db:"assists"`
	CreatedAt      time.Time `db:"created_at"`
}

func statFromRow(row statTableModel) matchstat.Stat {
	return matchstat.Stat{
		ID:             row.ID,
		MatchID:        row.MatchID,
		PlayerID:       row.PlayerID,
		PlayerName:     row.PlayerName,
		PlayerNumber:   row.PlayerNumber,
		PlayerPosition: row.PlayerPosition,
		IsPlaying:      row.IsPlaying,
		Goals:          row.Goals,
		Assists:        row.Assists,
		CreatedAt:      row.CreatedAt,
	}
}
