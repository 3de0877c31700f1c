package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type PlayerService struct {
	playerRepo player.Repository
	teamRepo   team.Repository
	ids        id.Generator
}

func NewPlayerService(playerRepo player.Repository, teamRepo team.Repository, ids id.Generator) *PlayerService {
	return &PlayerService{
		playerRepo: playerRepo,
		teamRepo:   teamRepo,
		ids:        ids,
	}
}

type PlayerCreateInput struct {
	TeamID    string
	Name      string
	Number    int
	Position  player.Position
	Birthday  time.Time
	Height    *int
	Weight    *int
	IsCaptain bool
	Photo     string
}

func (s *PlayerService) CreatePlayer(ctx context.Context, input PlayerCreateInput) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.CreatePlayer")
	defer span.End()

	teamID := strings.TrimSpace(input.TeamID)
	name := strings.TrimSpace(input.Name)
	if teamID == "" {
		return player.Player{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if name == "" {
		return player.Player{}, fmt.Errorf("%w: player name is required", ErrInvalidInput)
	}
	if _, ok := player.AllPositions[input.Position]; !ok {
		return player.Player{}, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, input.Position)
	}

	if err := s.requireTeam(ctx, teamID); err != nil {
		return player.Player{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return player.Player{}, fmt.Errorf("generate player id: %w", err)
	}

	now := time.Now().UTC()
	item := player.Player{
		ID:        newID,
		TeamID:    teamID,
		Name:      name,
		Number:    input.Number,
		Position:  input.Position,
		Birthday:  input.Birthday,
		Height:    input.Height,
		Weight:    input.Weight,
		IsCaptain: input.IsCaptain,
		Photo:     strings.TrimSpace(input.Photo),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}

	return item, nil
}

func (s *PlayerService) ListPlayers(ctx context.Context, filter player.ListFilter) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayers")
	defer span.End()

	if filter.Position != "" {
		if _, ok := player.AllPositions[filter.Position]; !ok {
			return nil, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, filter.Position)
		}
	}

	items, err := s.playerRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list players: %w", err)
	}

	return items, nil
}

func (s *PlayerService) ListPlayersByTeam(ctx context.Context, teamID string) ([]player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.ListPlayersByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.playerRepo.List(ctx, player.ListFilter{TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("list players by team: %w", err)
	}

	return items, nil
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.GetPlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, playerID string, update player.Update) (player.Player, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.UpdatePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return player.Player{}, fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}
	if update.Empty() {
		return player.Player{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return player.Player{}, fmt.Errorf("%w: player name must not be empty", ErrInvalidInput)
	}
	if update.Position != nil {
		if _, ok := player.AllPositions[*update.Position]; !ok {
			return player.Player{}, fmt.Errorf("%w: invalid position %q", ErrInvalidInput, *update.Position)
		}
	}
	if update.TeamID != nil {
		if err := s.requireTeam(ctx, strings.TrimSpace(*update.TeamID)); err != nil {
			return player.Player{}, err
		}
	}

	updated, err := s.playerRepo.Update(ctx, playerID, update)
	if err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	if !updated {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.PlayerService.DeletePlayer")
	defer span.End()

	playerID = strings.TrimSpace(playerID)
	if playerID == "" {
		return fmt.Errorf("%w: player id is required", ErrInvalidInput)
	}

	deleted, err := s.playerRepo.Delete(ctx, playerID)
	if err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return nil
}

func (s *PlayerService) requireTeam(ctx context.Context, teamID string) error {
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
