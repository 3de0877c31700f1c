package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/panjf2000/ants/v2"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/domain/matchstat"
	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/domain/season"
	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/platform/id"
)

// MigrationService imports a legacy data dump. Entities run in four
// sequential phases so foreign keys resolve (teams before players and
// matches, matches before stat sheets); items inside a phase import
// concurrently and fail independently.
type MigrationService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	matchRepo  match.Repository
	statRepo   matchstat.Repository
	seasonRepo season.Repository
	ids        id.Generator
}

func NewMigrationService(
	teamRepo team.Repository,
	playerRepo player.Repository,
	matchRepo match.Repository,
	statRepo matchstat.Repository,
	seasonRepo season.Repository,
	ids id.Generator,
) *MigrationService {
	return &MigrationService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		matchRepo:  matchRepo,
		statRepo:   statRepo,
		seasonRepo: seasonRepo,
		ids:        ids,
	}
}

type MigrationInput struct {
	Teams      []MigrationTeam
	Players    []MigrationPlayer
	Matches    []MigrationMatch
	MatchStats []MigrationStat
	Seasons    []MigrationSeason
	MaxWorkers int
}

type MigrationTeam struct {
	ID          string
	Name        string
	Logo        string
	Color       string
	FoundedYear int
	Coach       string
}

type MigrationPlayer struct {
	ID     string
	TeamID string
	Name   string
	Number int
	// Position holds the canonical single position. Positions carries
	// the legacy two-slot array; when present its first entry wins.
	Position  string
	Positions []string
	Birthday  time.Time
	Height    *int
	Weight    *int
	IsCaptain bool
	Photo     string
}

type MigrationMatch struct {
	ID          string
	TeamID      string
	Opponent    string
	Date        time.Time
	MatchType   string
	MatchNature string
	Location    string
	ScoreHome   int
	ScoreAway   int
	Status      string
	Videos      []string
}

type MigrationStat struct {
	ID             string
	MatchID        string
	PlayerID       string
	PlayerName     string
	PlayerNumber   int
	PlayerPosition string
	IsPlaying      bool
	Goals          int
	Assists        int
}

type MigrationSeason struct {
	ID        string
	TeamID    string
	Name      string
	StartDate time.Time
	EndDate   *time.Time
}

type MigrationSection struct {
	Success int      `json:"success"`
	Failed  int      `json:"failed"`
	Errors  []string `json:"errors,omitempty"`
}

type MigrationResult struct {
	Teams      MigrationSection `json:"teams"`
	Players    MigrationSection `json:"players"`
	Matches    MigrationSection `json:"matches"`
	MatchStats MigrationSection `json:"matchStats"`
	Seasons    MigrationSection `json:"seasons"`
	Summary    MigrationSummary `json:"summary"`
}

type MigrationSummary struct {
	TotalSuccess int `json:"totalSuccess"`
	TotalFailed  int `json:"totalFailed"`
}

func (s *MigrationService) Migrate(ctx context.Context, input MigrationInput) (MigrationResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.MigrationService.Migrate")
	defer span.End()

	workerCount := normalizeMigrationWorkerCount(input.MaxWorkers)
	pool, err := ants.NewPool(workerCount)
	if err != nil {
		return MigrationResult{}, fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var result MigrationResult
	result.Teams, err = s.migrateTeams(ctx, pool, input.Teams)
	if err != nil {
		return MigrationResult{}, err
	}
	result.Players, err = s.migratePlayers(ctx, pool, input.Players)
	if err != nil {
		return MigrationResult{}, err
	}
	result.Matches, err = s.migrateMatches(ctx, pool, input.Matches)
	if err != nil {
		return MigrationResult{}, err
	}
	result.MatchStats, err = s.migrateStats(ctx, pool, input.MatchStats)
	if err != nil {
		return MigrationResult{}, err
	}
	result.Seasons, err = s.migrateSeasons(ctx, pool, input.Seasons)
	if err != nil {
		return MigrationResult{}, err
	}

	for _, section := range []MigrationSection{result.Teams, result.Players, result.Matches, result.MatchStats, result.Seasons} {
		result.Summary.TotalSuccess += section.Success
		result.Summary.TotalFailed += section.Failed
	}

	return result, nil
}

func (s *MigrationService) migrateTeams(ctx context.Context, pool *ants.Pool, items []MigrationTeam) (MigrationSection, error) {
	tasks := make([]func() error, 0, len(items))
	for idx, item := range items {
		idx, item := idx, item
		tasks = append(tasks, func() error {
			name := strings.TrimSpace(item.Name)
			if name == "" {
				return fmt.Errorf("team %d: name is required", idx)
			}

			teamID, err := s.resolveID(item.ID)
			if err != nil {
				return fmt.Errorf("team %d: %w", idx, err)
			}
			color := strings.TrimSpace(item.Color)
			if color == "" {
				color = team.DefaultColor
			}
			foundedYear := item.FoundedYear
			if foundedYear == 0 {
				foundedYear = team.DefaultFoundedYear
			}

			now := time.Now().UTC()
			row := team.Team{
				ID:          teamID,
				Name:        name,
				Logo:        strings.TrimSpace(item.Logo),
				Color:       color,
				FoundedYear: foundedYear,
				Coach:       strings.TrimSpace(item.Coach),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := row.Validate(); err != nil {
				return fmt.Errorf("team %d: %w", idx, err)
			}
			if err := s.teamRepo.Create(ctx, row); err != nil {
				return fmt.Errorf("team %s: %w", teamID, err)
			}
			return nil
		})
	}

	return runMigrationPhase(pool, tasks)
}

func (s *MigrationService) migratePlayers(ctx context.Context, pool *ants.Pool, items []MigrationPlayer) (MigrationSection, error) {
	tasks := make([]func() error, 0, len(items))
	for idx, item := range items {
		idx, item := idx, item
		tasks = append(tasks, func() error {
			playerID, err := s.resolveID(item.ID)
			if err != nil {
				return fmt.Errorf("player %d: %w", idx, err)
			}

			position := strings.TrimSpace(item.Position)
			if len(item.Positions) > 0 && strings.TrimSpace(item.Positions[0]) != "" {
				position = strings.TrimSpace(item.Positions[0])
			}

			now := time.Now().UTC()
			row := player.Player{
				ID:        playerID,
				TeamID:    strings.TrimSpace(item.TeamID),
				Name:      strings.TrimSpace(item.Name),
				Number:    item.Number,
				Position:  player.Position(position),
				Birthday:  item.Birthday,
				Height:    item.Height,
				Weight:    item.Weight,
				IsCaptain: item.IsCaptain,
				Photo:     strings.TrimSpace(item.Photo),
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := row.Validate(); err != nil {
				return fmt.Errorf("player %d: %w", idx, err)
			}
			if err := s.playerRepo.Create(ctx, row); err != nil {
				return fmt.Errorf("player %s: %w", playerID, err)
			}
			return nil
		})
	}

	return runMigrationPhase(pool, tasks)
}

func (s *MigrationService) migrateMatches(ctx context.Context, pool *ants.Pool, items []MigrationMatch) (MigrationSection, error) {
	tasks := make([]func() error, 0, len(items))
	for idx, item := range items {
		idx, item := idx, item
		tasks = append(tasks, func() error {
			matchID, err := s.resolveID(item.ID)
			if err != nil {
				return fmt.Errorf("match %d: %w", idx, err)
			}

			status := strings.TrimSpace(item.Status)
			if status == "" {
				status = string(match.StatusCompleted)
			}

			now := time.Now().UTC()
			row := match.Match{
				ID:          matchID,
				TeamID:      strings.TrimSpace(item.TeamID),
				Opponent:    strings.TrimSpace(item.Opponent),
				Date:        item.Date,
				MatchType:   match.Type(strings.TrimSpace(item.MatchType)),
				MatchNature: match.Nature(strings.TrimSpace(item.MatchNature)),
				Location:    strings.TrimSpace(item.Location),
				ScoreHome:   item.ScoreHome,
				ScoreAway:   item.ScoreAway,
				Status:      match.Status(status),
				Videos:      append([]string(nil), item.Videos...),
				CreatedAt:   now,
				UpdatedAt:   now,
			}
			if err := row.Validate(); err != nil {
				return fmt.Errorf("match %d: %w", idx, err)
			}
			if err := s.matchRepo.Create(ctx, row); err != nil {
				return fmt.Errorf("match %s: %w", matchID, err)
			}
			return nil
		})
	}

	return runMigrationPhase(pool, tasks)
}

func (s *MigrationService) migrateStats(ctx context.Context, pool *ants.Pool, items []MigrationStat) (MigrationSection, error) {
	byMatch := make(map[string][]MigrationStat)
	for _, item := range items {
		matchID := strings.TrimSpace(item.MatchID)
		byMatch[matchID] = append(byMatch[matchID], item)
	}

	matchIDs := make([]string, 0, len(byMatch))
	for matchID := range byMatch {
		matchIDs = append(matchIDs, matchID)
	}
	sort.Strings(matchIDs)

	// Sheets import per match so a bad line fails only its own match;
	// counts stay per line so totals match the dump.
	type sheetOutcome struct {
		lines int
		err   error
	}
	outcomes := make(chan sheetOutcome, len(matchIDs))

	var workers sync.WaitGroup
	for _, matchID := range matchIDs {
		matchID := matchID
		lines := byMatch[matchID]
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()
			outcomes <- sheetOutcome{
				lines: len(lines),
				err:   s.importStatSheet(ctx, matchID, lines),
			}
		}); err != nil {
			workers.Done()
			return MigrationSection{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(outcomes)

	section := MigrationSection{}
	for outcome := range outcomes {
		if outcome.err != nil {
			section.Failed += outcome.lines
			section.Errors = append(section.Errors, outcome.err.Error())
			continue
		}
		section.Success += outcome.lines
	}
	sort.Strings(section.Errors)

	return section, nil
}

func (s *MigrationService) importStatSheet(ctx context.Context, matchID string, lines []MigrationStat) error {
	if matchID == "" {
		return fmt.Errorf("stat sheet with %d lines is missing match id", len(lines))
	}

	now := time.Now().UTC()
	rows := make([]matchstat.Stat, 0, len(lines))
	for idx, line := range lines {
		statID, err := s.resolveID(line.ID)
		if err != nil {
			return fmt.Errorf("match %s stat %d: %w", matchID, idx, err)
		}
		row := matchstat.Stat{
			ID:             statID,
			MatchID:        matchID,
			PlayerID:       strings.TrimSpace(line.PlayerID),
			PlayerName:     strings.TrimSpace(line.PlayerName),
			PlayerNumber:   line.PlayerNumber,
			PlayerPosition: strings.TrimSpace(line.PlayerPosition),
			IsPlaying:      line.IsPlaying,
			Goals:          line.Goals,
			Assists:        line.Assists,
			CreatedAt:      now,
		}
		if err := row.Validate(); err != nil {
			return fmt.Errorf("match %s stat %d: %w", matchID, idx, err)
		}
		rows = append(rows, row)
	}

	if err := s.statRepo.ReplaceForMatch(ctx, matchID, rows); err != nil {
		return fmt.Errorf("match %s stats: %w", matchID, err)
	}
	return nil
}

func (s *MigrationService) migrateSeasons(ctx context.Context, pool *ants.Pool, items []MigrationSeason) (MigrationSection, error) {
	tasks := make([]func() error, 0, len(items))
	for idx, item := range items {
		idx, item := idx, item
		tasks = append(tasks, func() error {
			seasonID, err := s.resolveID(item.ID)
			if err != nil {
				return fmt.Errorf("season %d: %w", idx, err)
			}

			now := time.Now().UTC()
			row := season.Season{
				ID:        seasonID,
				TeamID:    strings.TrimSpace(item.TeamID),
				Name:      strings.TrimSpace(item.Name),
				StartDate: item.StartDate,
				EndDate:   item.EndDate,
				CreatedAt: now,
				UpdatedAt: now,
			}
			if err := row.Validate(); err != nil {
				return fmt.Errorf("season %d: %w", idx, err)
			}
			if err := s.seasonRepo.Create(ctx, row); err != nil {
				return fmt.Errorf("season %s: %w", seasonID, err)
			}
			return nil
		})
	}

	return runMigrationPhase(pool, tasks)
}

func runMigrationPhase(pool *ants.Pool, tasks []func() error) (MigrationSection, error) {
	section := MigrationSection{}
	if len(tasks) == 0 {
		return section, nil
	}

	errCh := make(chan error, len(tasks))

	var successCount atomic.Int32
	var failedCount atomic.Int32

	var workers sync.WaitGroup
	for _, task := range tasks {
		task := task
		workers.Add(1)
		if err := pool.Submit(func() {
			defer workers.Done()

			if err := task(); err != nil {
				failedCount.Add(1)
				errCh <- err
				return
			}
			successCount.Add(1)
		}); err != nil {
			workers.Done()
			return MigrationSection{}, fmt.Errorf("submit task to worker pool: %w", err)
		}
	}

	workers.Wait()
	close(errCh)

	for err := range errCh {
		section.Errors = append(section.Errors, err.Error())
	}
	sort.Strings(section.Errors)

	section.Success = int(successCount.Load())
	section.Failed = int(failedCount.Load())
	return section, nil
}

func normalizeMigrationWorkerCount(value int) int {
	if value <= 0 {
		return 4
	}
	if value > 8 {
		return 8
	}
	return value
}

// resolveID keeps legacy ids stable across re-imports and mints one
// only when the dump has none.
func (s *MigrationService) resolveID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw != "" {
		return raw, nil
	}
	newID, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate id: %w", err)
	}
	return newID, nil
}
