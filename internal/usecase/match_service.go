package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type MatchService struct {
	matchRepo match.Repository
	teamRepo  team.Repository
	ids       id.Generator
}

func NewMatchService(matchRepo match.Repository, teamRepo team.Repository, ids id.Generator) *MatchService {
	return &MatchService{
		matchRepo: matchRepo,
		teamRepo:  teamRepo,
		ids:       ids,
	}
}

type MatchCreateInput struct {
	TeamID      string
	Opponent    string
	Date        time.Time
	MatchType   match.Type
	MatchNature match.Nature
	Location    string
	ScoreHome   int
	ScoreAway   int
	Status      match.Status
	Videos      []string
}

func (s *MatchService) CreateMatch(ctx context.Context, input MatchCreateInput) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.CreateMatch")
	defer span.End()

	teamID := strings.TrimSpace(input.TeamID)
	opponent := strings.TrimSpace(input.Opponent)
	if teamID == "" {
		return match.Match{}, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}
	if opponent == "" {
		return match.Match{}, fmt.Errorf("%w: opponent is required", ErrInvalidInput)
	}
	if input.Date.IsZero() {
		return match.Match{}, fmt.Errorf("%w: match date is required", ErrInvalidInput)
	}

	status := input.Status
	if status == "" {
		status = match.StatusCompleted
	}

	if err := s.requireTeam(ctx, teamID); err != nil {
		return match.Match{}, err
	}

	newID, err := s.ids.NewID()
	if err != nil {
		return match.Match{}, fmt.Errorf("generate match id: %w", err)
	}

	now := time.Now().UTC()
	item := match.Match{
		ID:          newID,
		TeamID:      teamID,
		Opponent:    opponent,
		Date:        input.Date,
		MatchType:   input.MatchType,
		MatchNature: input.MatchNature,
		Location:    strings.TrimSpace(input.Location),
		ScoreHome:   input.ScoreHome,
		ScoreAway:   input.ScoreAway,
		Status:      status,
		Videos:      append([]string(nil), input.Videos...),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := item.Validate(); err != nil {
		return match.Match{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.matchRepo.Create(ctx, item); err != nil {
		return match.Match{}, fmt.Errorf("create match: %w", err)
	}

	return item, nil
}

func (s *MatchService) ListMatches(ctx context.Context, filter match.ListFilter) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatches")
	defer span.End()

	if filter.Status != "" {
		if _, ok := match.AllStatuses[filter.Status]; !ok {
			return nil, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, filter.Status)
		}
	}

	items, err := s.matchRepo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}

	return items, nil
}

func (s *MatchService) ListMatchesByTeam(ctx context.Context, teamID string) ([]match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.ListMatchesByTeam")
	defer span.End()

	teamID = strings.TrimSpace(teamID)
	if teamID == "" {
		return nil, fmt.Errorf("%w: team id is required", ErrInvalidInput)
	}

	items, err := s.matchRepo.List(ctx, match.ListFilter{TeamID: teamID})
	if err != nil {
		return nil, fmt.Errorf("list matches by team: %w", err)
	}

	return items, nil
}

func (s *MatchService) GetMatch(ctx context.Context, matchID string) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.GetMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) UpdateMatch(ctx context.Context, matchID string, update match.Update) (match.Match, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.UpdateMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return match.Match{}, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}
	if update.Empty() {
		return match.Match{}, fmt.Errorf("%w: no fields to update", ErrInvalidInput)
	}
	if update.Opponent != nil && strings.TrimSpace(*update.Opponent) == "" {
		return match.Match{}, fmt.Errorf("%w: opponent must not be empty", ErrInvalidInput)
	}
	if update.MatchType != nil {
		if _, ok := match.AllTypes[*update.MatchType]; !ok {
			return match.Match{}, fmt.Errorf("%w: invalid match type %q", ErrInvalidInput, *update.MatchType)
		}
	}
	if update.MatchNature != nil {
		if _, ok := match.AllNatures[*update.MatchNature]; !ok {
			return match.Match{}, fmt.Errorf("%w: invalid match nature %q", ErrInvalidInput, *update.MatchNature)
		}
	}
	if update.Status != nil {
		if _, ok := match.AllStatuses[*update.Status]; !ok {
			return match.Match{}, fmt.Errorf("%w: invalid status %q", ErrInvalidInput, *update.Status)
		}
	}
	if (update.ScoreHome != nil && *update.ScoreHome < 0) || (update.ScoreAway != nil && *update.ScoreAway < 0) {
		return match.Match{}, fmt.Errorf("%w: scores must not be negative", ErrInvalidInput)
	}
	if update.TeamID != nil {
		if err := s.requireTeam(ctx, strings.TrimSpace(*update.TeamID)); err != nil {
			return match.Match{}, err
		}
	}

	updated, err := s.matchRepo.Update(ctx, matchID, update)
	if err != nil {
		return match.Match{}, fmt.Errorf("update match: %w", err)
	}
	if !updated {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	item, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return match.Match{}, fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return match.Match{}, fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return item, nil
}

func (s *MatchService) DeleteMatch(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchService.DeleteMatch")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	deleted, err := s.matchRepo.Delete(ctx, matchID)
	if err != nil {
		return fmt.Errorf("delete match: %w", err)
	}
	if !deleted {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return nil
}

func (s *MatchService) requireTeam(ctx context.Context, teamID string) error {
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
