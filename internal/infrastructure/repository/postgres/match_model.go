package postgres

import (
	"time"

	"github.com/lib/pq"

	"github.com/dadifc/teamstats/internal/domain/match"
)

type matchTableModel struct {
	ID          string         `db:"id"`
	TeamID      string         `db:"team_id"`
	Opponent    string         `db:"opponent"`
	Date        time.Time      `db:"date"`
	MatchType   string         `db:"match_type"`
	MatchNature string         `db:"match_nature"`
	Location    string         `db:"location"`
	ScoreHome   int            `db:"score_home"`
	ScoreAway   int            `db:"score_away"`
	Status      string         `db:"status"`
	Videos      pq.StringArray `db:"videos"`
	CreatedAt   time.Time      `db:"created_at"`
	UpdatedAt   time.Time      `db:"updated_at"`
}

func matchFromRow(row matchTableModel) match.Match {
	return match.Match{
		ID:          row.ID,
		TeamID:      row.TeamID,
		Opponent:    row.Opponent,
		Date:        row.Date,
		MatchType:   match.Type(row.MatchType),
		MatchNature: match.Nature(row.MatchNature),
		Location:    row.Location,
		ScoreHome:   row.ScoreHome,
		ScoreAway:   row.ScoreAway,
		Status:      match.Status(row.Status),
		Videos:      append([]string(nil), row.Videos...),
		CreatedAt:   row.CreatedAt,
		UpdatedAt:   row.UpdatedAt,
	}
}

func matchToRow(item match.Match) matchTableModel {
	return matchTableModel{
		ID:          item.ID,
		TeamID:      item.TeamID,
		Opponent:    item.Opponent,
		Date:        item.Date,
		MatchType:   string(item.MatchType),
		MatchNature: string(item.MatchNature),
		Location:    item.Location,
		ScoreHome:   item.ScoreHome,
		ScoreAway:   item.ScoreAway,
		Status:      string(item.Status),
		Videos:      pq.StringArray(item.Videos),
		CreatedAt:   item.CreatedAt,
		UpdatedAt:   item.UpdatedAt,
	}
}
