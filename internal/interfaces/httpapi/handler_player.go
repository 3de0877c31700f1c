package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/usecase"
)

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	limit, skip, err := paginationParams(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	filter := player.ListFilter{
		TeamID:   strings.TrimSpace(r.URL.Query().Get("teamId")),
		Position: player.Position(strings.TrimSpace(r.URL.Query().Get("position"))),
		Limit:    limit,
		Skip:     skip,
	}

	players, err := h.playerService.ListPlayers(ctx, filter)
	if err != nil {
		h.logger.ErrorContext(ctx, "list players failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(ctx, players))
}

func (h *Handler) ListPlayersByTeam(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayersByTeam")
	defer span.End()

	teamID := r.PathValue("teamID")
	players, err := h.playerService.ListPlayersByTeam(ctx, teamID)
	if err != nil {
		h.logger.WarnContext(ctx, "list players by team failed", "team_id", teamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playersToDTOs(ctx, players))
}

func (h *Handler) GetPlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	item, err := h.playerService.GetPlayer(ctx, playerID)
	if err != nil {
		h.logger.WarnContext(ctx, "get player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) CreatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreatePlayer")
	defer span.End()

	var req playerCreateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	item, err := h.playerService.CreatePlayer(ctx, usecase.PlayerCreateInput{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Number:    req.Number,
		Position:  player.Position(req.Position),
		Birthday:  req.Birthday,
		Height:    req.Height,
		Weight:    req.Weight,
		IsCaptain: req.IsCaptain,
		Photo:     req.Photo,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "create player failed", "team_id", req.TeamID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, playerToDTO(ctx, item))
}

func (h *Handler) UpdatePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdatePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	var req playerUpdateRequest
	if err := h.decodeRequest(ctx, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	update := player.Update{
		TeamID:    req.TeamID,
		Name:      req.Name,
		Number:    req.Number,
		Birthday:  req.Birthday,
		Height:    req.Height,
		Weight:    req.Weight,
		IsCaptain: req.IsCaptain,
		Photo:     req.Photo,
	}
	if req.Position != nil {
		position := player.Position(*req.Position)
		update.Position = &position
	}

	item, err := h.playerService.UpdatePlayer(ctx, playerID, update)
	if err != nil {
		h.logger.WarnContext(ctx, "update player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, playerToDTO(ctx, item))
}

func (h *Handler) DeletePlayer(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.DeletePlayer")
	defer span.End()

	playerID := r.PathValue("playerID")
	if err := h.playerService.DeletePlayer(ctx, playerID); err != nil {
		h.logger.WarnContext(ctx, "delete player failed", "player_id", playerID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, deletedDTO{Success: true})
}

type playerCreateRequest struct {
	TeamID    string    `json:"teamId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Number    int       `json:"number" validate:"gte=0,lte=999"`
	Position  string    `json:"position" validate:"required"`
	Birthday  time.Time `json:"birthday" validate:"required"`
	Height    *int      `json:"height" validate:"omitempty,gt=0"`
	Weight    *int      `json:"weight" validate:"omitempty,gt=0"`
	IsCaptain bool      `json:"isCaptain"`
	Photo     string    `json:"photo"`
}

type playerUpdateRequest struct {
	TeamID    *string    `json:"teamId"`
	Name      *string    `json:"name"`
	Number    *int       `json:"number" validate:"omitempty,gte=0,lte=999"`
	Position  *string    `json:"position"`
	Birthday  *time.Time `json:"birthday"`
	Height    *int       `json:"height" validate:"omitempty,gt=0"`
	Weight    *int       `json:"weight" validate:"omitempty,gt=0"`
	IsCaptain *bool      `json:"isCaptain"`
	Photo     *string    `json:"photo"`
}

type playerDTO struct {
	ID        string `json:"id"`
	TeamID    string `json:"teamId"`
	Name      string `json:"name"`
	Number    int    `json:"number"`
	Position  string `json:"position"`
	Birthday  string `json:"birthday"`
	Height    *int   `json:"height,omitempty"`
	Weight    *int   `json:"weight,omitempty"`
	IsCaptain bool   `json:"isCaptain"`
	Photo     string `json:"photo"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

func playersToDTOs(ctx context.Context, players []player.Player) []playerDTO {
	items := make([]playerDTO, 0, len(players))
	for _, item := range players {
		items = append(items, playerToDTO(ctx, item))
	}

	return items
}

func playerToDTO(ctx context.Context, v player.Player) playerDTO {
	ctx, span := startSpan(ctx, "httpapi.playerToDTO")
	defer span.End()

	return playerDTO{
		ID:        v.ID,
		TeamID:    v.TeamID,
		Name:      v.Name,
		Number:    v.Number,
		Position:  string(v.Position),
		Birthday:  v.Birthday.UTC().Format(time.RFC3339),
		Height:    v.Height,
		Weight:    v.Weight,
		IsCaptain: v.IsCaptain,
		Photo:     v.Photo,
		CreatedAt: v.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt: v.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
