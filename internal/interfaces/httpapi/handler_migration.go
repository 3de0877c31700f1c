package httpapi

import (
	"net/http"
	"time"

	"github.com/dadifc/teamstats/internal/usecase"
)

// Migrate imports a legacy client-side data dump. Items are processed
// independently, so the response reports per-entity counts instead of
// failing the whole batch on the first bad row.
func (h *Handler) Migrate(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Migrate")
	defer span.End()

	var req migrationRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	input := usecase.MigrationInput{MaxWorkers: req.MaxWorkers}
	for _, item := range req.Teams {
		input.Teams = append(input.Teams, usecase.MigrationTeam{
			ID:          item.ID,
			Name:        item.Name,
			Logo:        item.Logo,
			Color:       item.Color,
			FoundedYear: item.FoundedYear,
			Coach:       item.Coach,
		})
	}
	for _, item := range req.Players {
		input.Players = append(input.Players, usecase.MigrationPlayer{
			ID:        item.ID,
			TeamID:    item.TeamID,
			Name:      item.Name,
			Number:    item.Number,
			Position:  item.Position,
			Positions: item.Positions,
			Birthday:  item.Birthday,
			Height:    item.Height,
			Weight:    item.Weight,
			IsCaptain: item.IsCaptain,
			Photo:     item.Photo,
		})
	}
	for _, item := range req.Matches {
		input.Matches = append(input.Matches, usecase.MigrationMatch{
			ID:          item.ID,
			TeamID:      item.TeamID,
			Opponent:    item.Opponent,
			Date:        item.Date,
			MatchType:   item.MatchType,
			MatchNature: item.MatchNature,
			Location:    item.Location,
			ScoreHome:   item.ScoreHome,
			ScoreAway:   item.ScoreAway,
			Status:      item.Status,
			Videos:      item.Videos,
		})
		// Legacy dumps nest each match's stat sheet under the match.
		for _, stat := range item.PlayerStats {
			input.MatchStats = append(input.MatchStats, usecase.MigrationStat{
				ID:             stat.ID,
				MatchID:        item.ID,
				PlayerID:       stat.PlayerID,
				PlayerName:     stat.PlayerName,
				PlayerNumber:   stat.PlayerNumber,
				PlayerPosition: stat.PlayerPosition,
				IsPlaying:      stat.IsPlaying,
				Goals:          stat.Goals,
				Assists:        stat.Assists,
			})
		}
	}
	for _, item := range req.Seasons {
		input.Seasons = append(input.Seasons, usecase.MigrationSeason{
			ID:        item.ID,
			TeamID:    item.TeamID,
			Name:      item.Name,
			StartDate: item.StartDate,
			EndDate:   item.EndDate,
		})
	}

	result, err := h.migrationService.Migrate(ctx, input)
	if err != nil {
		h.logger.ErrorContext(ctx, "migration failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, result)
}

type migrationRequest struct {
	Teams      []migrationTeamRequest   `json:"teams" validate:"dive"`
	Players    []migrationPlayerRequest `json:"players" validate:"dive"`
	Matches    []migrationMatchRequest  `json:"matches" validate:"dive"`
	Seasons    []migrationSeasonRequest `json:"seasons" validate:"dive"`
	MaxWorkers int                      `json:"maxWorkers" validate:"omitempty,gte=1,lte=8"`
}

type migrationTeamRequest struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Logo        string `json:"logo"`
	Color       string `json:"color"`
	FoundedYear int    `json:"foundedYear"`
	Coach       string `json:"coach"`
}

type migrationPlayerRequest struct {
	ID        string    `json:"id"`
	TeamID    string    `json:"teamId"`
	Name      string    `json:"name"`
	Number    int       `json:"number"`
	Position  string    `json:"position"`
	Positions []string  `json:"positions"`
	Birthday  time.Time `json:"birthday"`
	Height    *int      `json:"height"`
	Weight    *int      `json:"weight"`
	IsCaptain bool      `json:"isCaptain"`
	Photo     string    `json:"photo"`
}

type migrationMatchRequest struct {
	ID          string                 `json:"id"`
	TeamID      string                 `json:"teamId"`
	Opponent    string                 `json:"opponent"`
	Date        time.Time              `json:"date"`
	MatchType   string                 `json:"matchType"`
	MatchNature string                 `json:"matchNature"`
	Location    string                 `json:"location"`
	ScoreHome   int                    `json:"scoreHome"`
	ScoreAway   int                    `json:"scoreAway"`
	Status      string                 `json:"status"`
	Videos      []string               `json:"videos"`
	PlayerStats []migrationStatRequest `json:"playerStats"`
}

type migrationStatRequest struct {
	ID             string `json:"id"`
	PlayerID       string `json:"playerId"`
	PlayerName     string `json:"playerName"`
	PlayerNumber   int    `json:"playerNumber"`
	PlayerPosition string `json:"playerPosition"`
	IsPlaying      bool   `json:"isPlaying"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
}

type migrationSeasonRequest struct {
	ID        string     `json:"id"`
	TeamID    string     `json:"teamId"`
	Name      string     `json:"name"`
	StartDate time.Time  `json:"startDate"`
	EndDate   *time.Time `json:"endDate"`
}
