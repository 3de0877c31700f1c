package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/domain/matchstat"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type MatchStatService struct {
	statRepo  matchstat.Repository
	matchRepo match.Repository
	ids       id.Generator
}

func NewMatchStatService(statRepo matchstat.Repository, matchRepo match.Repository, ids id.Generator) *MatchStatService {
	return &MatchStatService{
		statRepo:  statRepo,
		matchRepo: matchRepo,
		ids:       ids,
	}
}

// StatLineInput is one player's row on an incoming stat sheet. Name,
// number and position are denormalized onto the sheet at save time.
type StatLineInput struct {
	PlayerID       string
	PlayerName     string
	PlayerNumber   int
	PlayerPosition string
	IsPlaying      bool
	Goals          int
	Assists        int
}

func (s *MatchStatService) GetMatchStats(ctx context.Context, matchID string) ([]matchstat.Stat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatService.GetMatchStats")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	items, err := s.statRepo.ListByMatch(ctx, matchID)
	if err != nil {
		return nil, fmt.Errorf("list stats by match: %w", err)
	}

	return items, nil
}

// GetStatsByMatches loads stat sheets for several matches in one
// backend query. Every requested id gets a map entry, empty when the
// match has no sheet, so callers can range without existence checks.
func (s *MatchStatService) GetStatsByMatches(ctx context.Context, matchIDs []string) (map[string][]matchstat.Stat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatService.GetStatsByMatches")
	defer span.End()

	ids := make([]string, 0, len(matchIDs))
	seen := make(map[string]struct{}, len(matchIDs))
	for _, matchID := range matchIDs {
		matchID = strings.TrimSpace(matchID)
		if matchID == "" {
			continue
		}
		if _, dup := seen[matchID]; dup {
			continue
		}
		seen[matchID] = struct{}{}
		ids = append(ids, matchID)
	}

	out := make(map[string][]matchstat.Stat, len(ids))
	for _, matchID := range ids {
		out[matchID] = []matchstat.Stat{}
	}
	if len(ids) == 0 {
		return out, nil
	}

	items, err := s.statRepo.ListByMatches(ctx, ids)
	if err != nil {
		return nil, fmt.Errorf("list stats by matches: %w", err)
	}
	for _, item := range items {
		out[item.MatchID] = append(out[item.MatchID], item)
	}

	return out, nil
}

// ReplaceMatchStats swaps the whole stat sheet for a match.
func (s *MatchStatService) ReplaceMatchStats(ctx context.Context, matchID string, lines []StatLineInput) ([]matchstat.Stat, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatService.ReplaceMatchStats")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return nil, fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	items := make([]matchstat.Stat, 0, len(lines))
	for idx, line := range lines {
		playerID := strings.TrimSpace(line.PlayerID)
		if playerID == "" {
			return nil, fmt.Errorf("%w: stat line %d is missing player id", ErrInvalidInput, idx)
		}

		newID, err := s.ids.NewID()
		if err != nil {
			return nil, fmt.Errorf("generate stat id: %w", err)
		}

		item := matchstat.Stat{
			ID:             newID,
			MatchID:        matchID,
			PlayerID:       playerID,
			PlayerName:     strings.TrimSpace(line.PlayerName),
			PlayerNumber:   line.PlayerNumber,
			PlayerPosition: strings.TrimSpace(line.PlayerPosition),
			IsPlaying:      line.IsPlaying,
			Goals:          line.Goals,
			Assists:        line.Assists,
			CreatedAt:      now,
		}
		if err := item.Validate(); err != nil {
			return nil, fmt.Errorf("%w: stat line %d: %v", ErrInvalidInput, idx, err)
		}
		items = append(items, item)
	}

	if err := s.statRepo.ReplaceForMatch(ctx, matchID, items); err != nil {
		return nil, fmt.Errorf("replace match stats: %w", err)
	}

	return items, nil
}

func (s *MatchStatService) DeleteMatchStats(ctx context.Context, matchID string) error {
	ctx, span := startUsecaseSpan(ctx, "usecase.MatchStatService.DeleteMatchStats")
	defer span.End()

	matchID = strings.TrimSpace(matchID)
	if matchID == "" {
		return fmt.Errorf("%w: match id is required", ErrInvalidInput)
	}

	if err := s.requireMatch(ctx, matchID); err != nil {
		return err
	}

	if err := s.statRepo.DeleteByMatch(ctx, matchID); err != nil {
		return fmt.Errorf("delete stats by match: %w", err)
	}

	return nil
}

func (s *MatchStatService) requireMatch(ctx context.Context, matchID string) error {
	_, exists, err := s.matchRepo.GetByID(ctx, matchID)
	if err != nil {
		return fmt.Errorf("get match by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: match=%s", ErrNotFound, matchID)
	}

	return nil
}
