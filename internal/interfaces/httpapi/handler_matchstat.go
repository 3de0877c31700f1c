package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/matchstat"
	"github.com/dadifc/teamstats/internal/usecase"
)

func (h *Handler) GetMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatchStats")
	defer span.End()

	matchID := r.PathValue("matchID")
	stats, err := h.statService.GetMatchStats(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTOs(ctx, stats))
}

// GetStatsByMatches serves the batch route: one request returns the
// stat sheets for every match id in the matchIds query parameter.
func (h *Handler) GetStatsByMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetStatsByMatches")
	defer span.End()

	raw := strings.TrimSpace(r.URL.Query().Get("matchIds"))
	matchIDs := strings.Split(raw, ",")

	byMatch, err := h.statService.GetStatsByMatches(ctx, matchIDs)
	if err != nil {
		h.logger.WarnContext(ctx, "batch match stats failed", "match_ids", raw, "error", err)
		writeError(ctx, w, err)
		return
	}

	out := make(map[string][]statDTO, len(byMatch))
	for matchID, stats := range byMatch {
		out[matchID] = statsToDTOs(ctx, stats)
	}

	writeSuccess(ctx, w, http.StatusOK, out)
}

// SaveMatchStats replaces the whole stat sheet for a match.
func (h *Handler) SaveMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SaveMatchStats")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req statSheetRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	lines := make([]usecase.StatLineInput, 0, len(req.Stats))
	for _, line := range req.Stats {
		lines = append(lines, usecase.StatLineInput{
			PlayerID:       line.PlayerID,
			PlayerName:     line.PlayerName,
			PlayerNumber:   line.PlayerNumber,
			PlayerPosition: line.PlayerPosition,
			IsPlaying:      line.IsPlaying,
			Goals:          line.Goals,
			Assists:        line.Assists,
		})
	}

	stats, err := h.statService.ReplaceMatchStats(ctx, matchID, lines)
	if err != nil {
		h.logger.WarnContext(ctx, "save match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, statsToDTOs(ctx, stats))
}

func (h *Handler) DeleteMatchStats(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatchStats")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.statService.DeleteMatchStats(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match stats failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Success: true})
}

type statSheetRequest struct {
	Stats []statLineRequest `json:"stats" validate:"dive"`
}

type statLineRequest struct {
	PlayerID       string `json:"playerId" validate:"required"`
	PlayerName     string `json:"playerName"`
	PlayerNumber   int    `json:"playerNumber" validate:"gte=0,lte=999"`
	PlayerPosition string `json:"playerPosition"`
	IsPlaying      bool   `json:"isPlaying"`
	Goals          int    `json:"goals" validate:"gte=0"`
	Assists        int    `json:"assists" validate:"gte=0"`
}

type statDTO struct {
	ID             string `json:"id"`
	MatchID        string `json:"matchId"`
	PlayerID       string `json:"playerId"`
	PlayerName     string `json:"playerName"`
	PlayerNumber   int    `json:"playerNumber"`
	PlayerPosition string `json:"playerPosition"`
	IsPlaying      bool   `json:"isPlaying"`
	Goals          int    `json:"goals"`
	Assists        int    `json:"assists"`
	CreatedAt      string `json:"createdAt"`
}

func statsToDTOs(ctx context.Context, stats []matchstat.Stat) []statDTO {
	items := make([]statDTO, 0, len(stats))
	for _, item := range stats {
		items = append(items, statToDTO(ctx, item))
	}

	return items
}

func statToDTO(ctx context.Context, v matchstat.Stat) statDTO {
	ctx, span := startSpan(ctx, "httpapi.statToDTO")
	defer span.End()

	return statDTO{
		ID:             v.ID,
		MatchID:        v.MatchID,
		PlayerID:       v.PlayerID,
		PlayerName:     v.PlayerName,
		PlayerNumber:   v.PlayerNumber,
		PlayerPosition: v.PlayerPosition,
		IsPlaying:      v.IsPlaying,
		Goals:          v.Goals,
		Assists:        v.Assists,
		CreatedAt:      v.CreatedAt.UTC().Format(time.RFC3339),
	}
}
