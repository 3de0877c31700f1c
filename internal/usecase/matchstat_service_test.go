package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/domain/match"
	"github.com/dadifc/teamstats/internal/infrastructure/repository/memory"
	"github.com/dadifc/teamstats/internal/platform/id"
)

type statFixtures struct {
	stats   *MatchStatService
	matches *MatchService
	teams   *TeamService
}

func newStatFixtures() statFixtures {
	statRepo := memory.NewStatRepository()
	playerRepo := memory.NewPlayerRepository(statRepo)
	matchRepo := memory.NewMatchRepository(statRepo)
	seasonRepo := memory.NewSeasonRepository()
	teamRepo := memory.NewTeamRepository(playerRepo, matchRepo, seasonRepo)
	ids := id.NewRandomGenerator()

	return statFixtures{
		stats:   NewMatchStatService(statRepo, matchRepo, ids),
		matches: NewMatchService(matchRepo, teamRepo, ids),
		teams:   NewTeamService(teamRepo, ids),
	}
}

func (f statFixtures) createMatch(t *testing.T) match.Match {
	t.Helper()

	teamItem, err := f.teams.CreateTeam(context.Background(), TeamCreateInput{Name: "City Rovers"})
	require.NoError(t, err)

	matchItem, err := f.matches.CreateMatch(context.Background(), MatchCreateInput{
		TeamID:      teamItem.ID,
		Opponent:    "United",
		Date:        time.Date(2025, 3, 8, 15, 0, 0, 0, time.UTC),
		MatchType:   match.TypeHome,
		MatchNature: match.NatureLeague,
	})
	require.NoError(t, err)

	return matchItem
}

func TestMatchStatService_ReplaceMatchStats_SwapsWholeSheet(t *testing.T) {
	f := newStatFixtures()
	matchItem := f.createMatch(t)

	first, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "p1", PlayerName: "One", PlayerNumber: 7, Goals: 2},
		{PlayerID: "p2", PlayerName: "Two", PlayerNumber: 9, Assists: 1},
	})
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "p3", PlayerName: "Three", PlayerNumber: 10, Goals: 1},
	})
	require.NoError(t, err)
	require.Len(t, second, 1)

	items, err := f.stats.GetMatchStats(context.Background(), matchItem.ID)
	require.NoError(t, err)
	require.Len(t, items, 1)
	require.Equal(t, "p3", items[0].PlayerID)
}

func TestMatchStatService_ReplaceMatchStats_UnknownMatch(t *testing.T) {
	f := newStatFixtures()

	_, err := f.stats.ReplaceMatchStats(context.Background(), "missing", []StatLineInput{
		{PlayerID: "p1"},
	})
	require.ErrorIs(t, err, ErrNotFound)
}

func TestMatchStatService_ReplaceMatchStats_RejectsLineWithoutPlayer(t *testing.T) {
	f := newStatFixtures()
	matchItem := f.createMatch(t)

	_, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "  "},
	})
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestMatchStatService_GetStatsByMatches_FillsEmptyEntries(t *testing.T) {
	f := newStatFixtures()
	matchItem := f.createMatch(t)

	_, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "p1", PlayerName: "One", PlayerNumber: 7, Goals: 1},
	})
	require.NoError(t, err)

	out, err := f.stats.GetStatsByMatches(context.Background(), []string{matchItem.ID, "no-sheet", matchItem.ID, " "})
	require.NoError(t, err)
	require.Len(t, out, 2)
	require.Len(t, out[matchItem.ID], 1)
	require.NotNil(t, out["no-sheet"])
	require.Empty(t, out["no-sheet"])
}

func TestMatchStatService_DeleteMatchStats(t *testing.T) {
	f := newStatFixtures()
	matchItem := f.createMatch(t)

	_, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "p1", PlayerNumber: 7},
	})
	require.NoError(t, err)

	require.NoError(t, f.stats.DeleteMatchStats(context.Background(), matchItem.ID))

	items, err := f.stats.GetMatchStats(context.Background(), matchItem.ID)
	require.NoError(t, err)
	require.Empty(t, items)
}

func TestMatchService_DeleteMatch_DropsStatSheet(t *testing.T) {
	f := newStatFixtures()
	matchItem := f.createMatch(t)

	_, err := f.stats.ReplaceMatchStats(context.Background(), matchItem.ID, []StatLineInput{
		{PlayerID: "p1", PlayerNumber: 7},
	})
	require.NoError(t, err)

	require.NoError(t, f.matches.DeleteMatch(context.Background(), matchItem.ID))

	_, err = f.stats.GetMatchStats(context.Background(), matchItem.ID)
	require.ErrorIs(t, err, ErrNotFound)
}
