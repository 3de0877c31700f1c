package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/season"
	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type SeasonService struct {
	seasonRepo season.Repository
	teamRepo   team.Repository
	ids        id.Generator
}

func NewSeasonService(seasonRepo season.Repository, teamRepo team.Repository, ids id.Generator) *SeasonService {
	return &SeasonService{
		seasonRepo: seasonRepo,
		teamRepo:   teamRepo,
		ids:        ids,
	}
}

type SeasonCreateInput struct {
	TeamID    string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}

func (s *SeasonService) CreateSeason(ctx context.Context, input SeasonCreateInput) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.CreateSeason")
	defer span.End()

	teamID := strings.TrimSpace(input.TeamID)
	name := strings.TrimSpace(input.Name)
	if teamID == "" {
		return season.Season{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if name == "" {
		return season.Season{}, fmt.Errorf("%w: season name is required", ErrInvalidInput)
	}

	if err := s.requireTeam(ctx, teamID); err != nil {
		return season.Season{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return season.Season{}, fmt.Errorf("generate season id: %w", err)
	}

	now := time.Now().UTC()
	item := season.Season{
		ID:        newID,
		TeamID:    teamID,
		Name:      name,
		StartDate: input.StartDate,
		EndDate:   input.EndDate,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := item.Validate(); err != nil {
		return season.Season{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.seasonRepo.Create(ctx, item); err != nil {
		return season.Season{}, fmt.Errorf("create season: %w", err)
	}

	return item, nil
}

func (s *SeasonService) ListSeasons(ctx context.Context, filter season.ListFilter) ([]season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.ListSeasons")
	defer span.End()

	items, err := s.seasonRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list seasons: %w", err)
	}

	return items, nil
}

func (s *SeasonService) GetSeason(ctx context.Context, seasonID string) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.GetSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season by id: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return item, nil
}

func (s *SeasonService) UpdateSeason(ctx context.Context, seasonID string, update season.Update) (season.Season, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.UpdateSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return season.Season{}, fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}
	if update.Empty() {
		return season.Season{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return season.Season{}, fmt.Errorf("%w: season name must not be empty", ErrInvalidInput)
	}

	updated, err := s.seasonRepo.Update(ctx, seasonID, update)
	if err != nil {
		return season.Season{}, fmt.Errorf("update season: %w", err)
	}
	if !updated {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	item, exists, err := s.seasonRepo.GetByID(ctx, seasonID)
	if err != nil {
		return season.Season{}, fmt.Errorf("get season by id: %w", err)
	}
	if !exists {
		return season.Season{}, fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return item, nil
}

func (s *SeasonService) DeleteSeason(ctx context.Context, seasonID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.SeasonService.DeleteSeason")
	defer span.End()

	seasonID = strings.TrimSpace(seasonID)
	if seasonID == "" {
		return fmt.Errorf("%w: season id is required", ErrInvalidInput)
	}

	deleted, err := s.seasonRepo.Delete(ctx, seasonID)
	if err != nil {
		return fmt.Errorf("delete season: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: season=%s", ErrNotFound, seasonID)
	}

	return nil
}

func (s *SeasonService) requireTeam(ctx context.Context, teamID string) error {
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
