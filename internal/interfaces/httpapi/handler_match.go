package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/usecase"
)

func (h *Handler) ListMatches(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatches")
	defer span.End()

	limit, skip, err := paginationParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := match.ListFilter{
		TeamID: strings.TrimSpace(r.URL.Query().Get("teamId")),
		Status: match.Status(strings.TrimSpace(r.URL.Query().Get("status"))),
		Limit:  limit,
		Skip:   skip,
	}

	matches, err := h.matchService.ListMatches(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list matches failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(ctx, matches))
}

func (h *Handler) ListMatchesByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMatchesByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	matches, err := h.matchService.ListMatchesByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list matches by team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchesToDTOs(ctx, matches))
}

func (h *Handler) GetMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	item, err := h.matchService.GetMatch(ctx, matchID)
	if err != nil {
		h.logger.WarnContext(ctx, "get match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, item))
}

func (h *Handler) CreateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateMatch")
	defer span.End()

	var req matchCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.matchService.CreateMatch(ctx, usecase.MatchCreateInput{
		TeamID:      req.TeamID,
		Opponent:    req.Opponent,
		Date:        req.Date,
		MatchType:   match.Type(req.MatchType),
		MatchNature: match.Nature(req.MatchNature),
		Location:    req.Location,
		ScoreHome:   req.ScoreHome,
		ScoreAway:   req.ScoreAway,
		Status:      match.Status(req.Status),
		Videos:      req.Videos,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create match failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, matchToDTO(ctx, item))
}

func (h *Handler) UpdateMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	var req matchUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	update := match.Update{
		TeamID:    req.TeamID,
		Opponent:  req.Opponent,
		Date:      req.Date,
		Location:  req.Location,
		ScoreHome: req.ScoreHome,
		ScoreAway: req.ScoreAway,
		Videos:    req.Videos,
	}
	if req.MatchType != nil {
		matchType := match.Type(*req.MatchType)
		update.MatchType = &matchType
	}
	if req.MatchNature != nil {
		nature := match.Nature(*req.MatchNature)
		update.MatchNature = &nature
	}
	if req.Status != nil {
		status := match.Status(*req.Status)
		update.Status = &status
	}

	item, err := h.matchService.UpdateMatch(ctx, matchID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, matchToDTO(ctx, item))
}

func (h *Handler) DeleteMatch(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeleteMatch")
	defer span.End()

	matchID := r.PathValue("matchID")
	if err := h.matchService.DeleteMatch(ctx, matchID); err != nil {
		h.logger.WarnContext(ctx, "delete match failed", "match_id", matchID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Success: true})
}

type matchCreateRequest struct {
	TeamID      string    `json:"teamId" validate:"required"`
	Opponent    string    `json:"opponent" validate:"required"`
	Date        time.Time `json:"date" validate:"required"`
	MatchType   string    `json:"matchType" validate:"required"`
	MatchNature string    `json:"matchNature" validate:"required"`
	Location    string    `json:"location"`
	ScoreHome   int       `json:"scoreHome" validate:"gte=0"`
	ScoreAway   int       `json:"scoreAway" validate:"gte=0"`
	Status      string    `json:"status"`
	Videos      []string  `json:"videos"`
}

type matchUpdateRequest struct {
	TeamID      *string    `json:"teamId"`
	Opponent    *string    `json:"opponent"`
	Date        *time.Time `json:"date"`
	MatchType   *string    `json:"matchType"`
	MatchNature *string    `json:"matchNature"`
	Location    *string    `json:"location"`
	ScoreHome   *int       `json:"scoreHome" validate:"omitempty,gte=0"`
	ScoreAway   *int       `json:"scoreAway" validate:"omitempty,gte=0"`
	Status      *string    `json:"status"`
	Videos      *[]string  `json:"videos"`
}

type matchDTO struct {
	ID          string   `json:"id"`
	TeamID      string   `json:"teamId"`
	Opponent    string   `json:"opponent"`
	Date        string   `json:"date"`
	MatchType   string   `json:"matchType"`
	MatchNature string   `json:"matchNature"`
	Location    string   `json:"location"`
	ScoreHome   int      `json:"scoreHome"`
	ScoreAway   int      `json:"scoreAway"`
	Status      string   `json:"status"`
	Videos      []string `json:"videos"`
	CreatedAt   string   `json:"createdAt"`
	UpdatedAt   string   `json:"updatedAt"`
}

func matchesToDTOs(ctx context.Context, matches []match.Match) []matchDTO {
	items := make([]matchDTO, 0, len(matches))
	for _, item := range matches {
		items = append(items, matchToDTO(ctx, item))
	}

	return items
}

func matchToDTO(ctx context.Context, v match.Match) matchDTO {
	ctx, span := startSpan(ctx, "httpapi.matchToDTO")
	defer span.End()

	videos := v.Videos
	if videos == nil {
		videos = []string{}
	}

	return matchDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Opponent:    v.Opponent,
		Date:        v.Date.UTC().Format(time.RFC3339),
		MatchType:   string(v.MatchType),
		MatchNature: string(v.MatchNature),
		Location:    v.Location,
		ScoreHome:   v.ScoreHome,
		ScoreAway:   v.ScoreAway,
		Status:      string(v.Status),
		Videos:      videos,
		CreatedAt:   v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
