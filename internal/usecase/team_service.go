package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type TeamService struct {
	teamRepo team.Repository
	ids      id.Generator
}

func NewTeamService(teamRepo team.Repository, ids id.Generator) *TeamService {
	return &TeamService{
		teamRepo: teamRepo,
		ids:      ids,
	}
}

type TeamCreateInput struct {
	Name        string
	Logo        string
	Color       string
	FoundedYear int
	Coach       string
}

func (s *TeamService) CreateTeam(ctx context.Context, input TeamCreateInput) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.CreateTeam")
	defer span.End()

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return team.Team{}, fmt.Errorf("%w: team name is required", ErrInvalidInput)
	}

	color := strings.TrimSpace(input.Color)
	if color == "" {
		color = team.DefaultColor
	}
	foundedYear := input.FoundedYear
	if foundedYear == 0 {
		foundedYear = team.DefaultFoundedYear
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return team.Team{}, fmt.Errorf("generate team id: %w", err)
	}

	now := time.Now().UTC()
	item := team.Team{
		ID:          newID,
		Name:        name,
		Logo:        strings.TrimSpace(input.Logo),
		Color:       color,
		FoundedYear: foundedYear,
		Coach:       strings.TrimSpace(input.Coach),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return team.Team{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.teamRepo.Create(ctx, item); err != nil {
		if errors.Is(err, team.ErrDuplicateName) {
			return team.Team{}, fmt.Errorf("%w: team name %q already exists", ErrConflict, name)
		}
		return team.Team{}, fmt.Errorf("create team: %w", err)
	}

	return item, nil
}

func (s *TeamService) ListTeams(ctx context.Context, filter team.ListFilter) ([]team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.ListTeams")
	defer span.End()

	items, err := s.teamRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list teams: %w", err)
	}

	return items, nil
}

func (s *TeamService) GetTeam(ctx context.Context, teamID string) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.GetTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) UpdateTeam(ctx context.Context, teamID string, update team.Update) (team.Team, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.UpdateTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return team.Team{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if update.Empty() {
		return team.Team{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.Name != nil && strings.TrimSpace(*update.Name) == "" {
		return team.Team{}, fmt.Errorf("%w: team name must not be empty", ErrInvalidInput)
	}

	updated, err := s.teamRepo.Update(ctx, teamID, update)
	if err != nil {
		if errors.Is(err, team.ErrDuplicateName) {
			return team.Team{}, fmt.Errorf("%w: team name already exists", ErrConflict)
		}
		return team.Team{}, fmt.Errorf("update team: %w", err)
	}
	if !updated {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	item, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return team.Team{}, fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return team.Team{}, fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return item, nil
}

func (s *TeamService) DeleteTeam(ctx context.Context, teamID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.TeamService.DeleteTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	deleted, err := s.teamRepo.Delete(ctx, teamID)
	if err != nil {
		return fmt.Errorf("delete team: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}

	return nil
}
