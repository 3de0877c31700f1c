package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/domain/player"
	"github.com/dadifc/teamstats/internal/domain/team"
	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type migrationFixtures struct {
	svc     *MigrationService
	players *memory.PlayerRepository
	teams   *memory.TeamRepository
}

func newMigrationFixtures() migrationFixtures {
	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)

	return migrationFixtures{
		svc:     NewMigrationService(teamRepo, playerRepo, matchRepo, statRepo, seasonRepo, id.NewRandomGenerator()),
		players: playerRepo,
		teams:   teamRepo,
	}
}

func TestMigrationService_Migrate_ImportsFullDump(t *testing.T) {
	f := newMigrationFixtures()

	result, err := f.svc.Migrate(context.Background(), MigrationInput{
		Teams: []MigrationTeam{
			{ID: "t1", Name: "City Rovers"},
		},
		Players: []MigrationPlayer{
			{ID: "p1", TeamID: "t1", Name: "One", Number: 7, Position: "forward", Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "p2", TeamID: "t1", Name: "Two", Number: 1, Position: "goalkeeper", Birthday: time.Date(1999, 5, 5, 0, 0, 0, 0, time.UTC)},
		},
		Matches: []MigrationMatch{
			{ID: "m1", TeamID: "t1", Opponent: "United", Date: time.Date(2024, 11, 2, 14, 0, 0, 0, time.UTC), MatchType: "home", MatchNature: "league"},
		},
		MatchStats: []MigrationStat{
			{ID: "s1", MatchID: "m1", PlayerID: "p1", PlayerName: "One", PlayerNumber: 7, Goals: 1},
			{ID: "s2", MatchID: "m1", PlayerID: "p2", PlayerName: "Two", PlayerNumber: 1},
		},
		Seasons: []MigrationSeason{
			{ID: "se1", TeamID: "t1", Name: "2024/25", StartDate: time.Date(2024, 8, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Teams.Success)
	require.Equal(t, 2, result.Players.Success)
	require.Equal(t, 1, result.Matches.Success)
	require.Equal(t, 2, result.MatchStats.Success)
	require.Equal(t, 1, result.Seasons.Success)
	require.Equal(t, 7, result.Summary.TotalSuccess)
	require.Zero(t, result.Summary.TotalFailed)

	item, exists, err := f.players.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, player.PositionForward, item.Position)
}

func TestMigrationService_Migrate_CollapsesLegacyPositionsArray(t *testing.T) {
	f := newMigrationFixtures()

	result, err := f.svc.Migrate(context.Background(), MigrationInput{
		Teams: []MigrationTeam{{ID: "t1", Name: "City Rovers"}},
		Players: []MigrationPlayer{
			{ID: "p1", TeamID: "t1", Name: "One", Positions: []string{"midfielder", "forward"}, Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Players.Success)

	item, exists, err := f.players.GetByID(context.Background(), "p1")
	require.NoError(t, err)
	require.True(t, exists)
	require.Equal(t, player.PositionMidfielder, item.Position)
}

func TestMigrationService_Migrate_MintsMissingIDs(t *testing.T) {
	f := newMigrationFixtures()

	result, err := f.svc.Migrate(context.Background(), MigrationInput{
		Teams: []MigrationTeam{{Name: "City Rovers"}},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Teams.Success)

	items, err := f.teams.List(context.Background(), team.ListFilter{})
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.NotEmpty(t, items[0].ID)
}

func TestMigrationService_Migrate_IsolatesBadItems(t *testing.T) {
	f := newMigrationFixtures()

	result, err := f.svc.Migrate(context.Background(), MigrationInput{
		Teams: []MigrationTeam{
			{ID: "t1", Name: "City Rovers"},
			{Name: "   "},
		},
		Players: []MigrationPlayer{
			{ID: "p1", TeamID: "t1", Name: "One", Position: "forward", Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
			{ID: "p2", TeamID: "t1", Name: "Two", Position: "striker", Birthday: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
	})
	require.NoError(t, err)
	require.Equal(t, 1, result.Teams.Success)
	require.Equal(t, 1, result.Teams.Failed)
	require.Equal(t, 1, result.Players.Success)
	require.Equal(t, 1, result.Players.Failed)
	require.NotEmpty(t, result.Players.Errors)
	require.Equal(t, 2, result.Summary.TotalSuccess)
	require.Equal(t, 2, result.Summary.TotalFailed)
}
