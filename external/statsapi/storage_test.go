package statsapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dadifc/teamstats/internal/platform/logging"
)

type requestCounts struct {
	batchStats  atomic.Int32
	matchLists  atomic.Int32
	playerLists atomic.Int32
}

func newStorageFixture(t *testing.T) (*Storage, *Client, *requestCounts) {
	t.Helper()

	api := newAPIHandler(t)
	counts := &requestCounts{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method == http.MethodGet {
			switch {
			case r.URL.Path == "/api/match-stats":
				counts.batchStats.Add(1)
			case strings.HasPrefix(r.URL.Path, "/api/matches/by-team/"):
				counts.matchLists.Add(1)
			case strings.HasPrefix(r.URL.Path, "/api/players/by-team/"):
				counts.playerLists.Add(1)
			}
		}
		api.ServeHTTP(w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(ClientConfig{
		BaseURL: srv.URL,
		Timeout: 5 * time.Second,
		Logger:  logging.NewNop(),
	})

	return NewStorage(client, time.Minute), client, counts
}

func seedTeamWithMatches(t *testing.T, client *Client, matchCount int) Team {
	t.Helper()
	ctx := context.Background()

	team, err := client.Teams().Create(ctx, TeamCreate{Name: "Harbor FC"})
	require.NoError(t, err)

	for i := 0; i < matchCount; i++ {
		_, err := client.Matches().Create(ctx, MatchCreate{
			TeamID:      team.ID,
			Opponent:    "Opponent",
			Date:        time.Date(2026, 4, 1+i, 15, 0, 0, 0, time.UTC),
			MatchType:   "home",
			MatchNature: "league",
		})
		require.NoError(t, err)
	}

	return team
}

func TestStorage_MatchesByTeam_OneBatchStatsRequest(t *testing.T) {
	storage, client, counts := newStorageFixture(t)
	ctx := context.Background()

	team := seedTeamWithMatches(t, client, 3)

	matches, err := client.Matches().ListByTeam(ctx, team.ID)
	require.NoError(t, err)
	_, err = client.MatchStats().Replace(ctx, matches[0].ID, []StatLine{
		{PlayerID: "p1", PlayerName: "Chen Wei", PlayerNumber: 9, IsPlaying: true, Goals: 1},
	})
	require.NoError(t, err)

	counts.batchStats.Store(0)
	counts.matchLists.Store(0)

	withStats, err := storage.MatchesByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, withStats, 3)
	require.EqualValues(t, 1, counts.batchStats.Load())
	require.EqualValues(t, 1, counts.matchLists.Load())

	sheets := 0
	for _, item := range withStats {
		require.NotNil(t, item.PlayerStats)
		sheets += len(item.PlayerStats)
	}
	require.Equal(t, 1, sheets)
}

func TestStorage_MatchesByTeam_ServesRepeatsFromCache(t *testing.T) {
	storage, client, counts := newStorageFixture(t)
	ctx := context.Background()

	team := seedTeamWithMatches(t, client, 2)

	_, err := storage.MatchesByTeam(ctx, team.ID)
	require.NoError(t, err)
	_, err = storage.MatchesByTeam(ctx, team.ID)
	require.NoError(t, err)

	require.EqualValues(t, 1, counts.batchStats.Load())
	require.EqualValues(t, 1, counts.matchLists.Load())
}

func TestStorage_SaveMatchStats_InvalidatesMatchViews(t *testing.T) {
	storage, client, counts := newStorageFixture(t)
	ctx := context.Background()

	team := seedTeamWithMatches(t, client, 1)

	before, err := storage.MatchesByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Empty(t, before[0].PlayerStats)

	_, err = storage.SaveMatchStats(ctx, before[0].ID, []StatLine{
		{PlayerID: "p1", PlayerName: "Chen Wei", PlayerNumber: 9, IsPlaying: true, Goals: 2, Assists: 1},
	})
	require.NoError(t, err)

	after, err := storage.MatchesByTeam(ctx, team.ID)
	require.NoError(t, err)
	require.Len(t, after[0].PlayerStats, 1)
	require.Equal(t, 2, after[0].PlayerStats[0].Goals)
	require.EqualValues(t, 2, counts.batchStats.Load())
}

func TestStorage_Overview_FetchesAllFamilies(t *testing.T) {
	storage, client, counts := newStorageFixture(t)
	ctx := context.Background()

	team := seedTeamWithMatches(t, client, 2)

	_, err := client.Players().Create(ctx, PlayerCreate{
		TeamID:   team.ID,
		Name:     "Chen Wei",
		Number:   9,
		Position: "forward",
		Birthday: time.Date(1998, 6, 2, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = client.Seasons().Create(ctx, SeasonCreate{
		TeamID:    team.ID,
		Name:      "Spring 2026",
		StartDate: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	overview, err := storage.Overview(ctx, team.ID)
	require.NoError(t, err)
	require.Equal(t, team.ID, overview.Team.ID)
	require.Len(t, overview.Players, 1)
	require.Len(t, overview.Matches, 2)
	require.Len(t, overview.Seasons, 1)
	require.EqualValues(t, 1, counts.playerLists.Load())

	// A second overview is a pure cache hit.
	_, err = storage.Overview(ctx, team.ID)
	require.NoError(t, err)
	require.EqualValues(t, 1, counts.playerLists.Load())
	require.EqualValues(t, 1, counts.batchStats.Load())
}

func TestStorage_Overview_UnknownTeam(t *testing.T) {
	storage, _, _ := newStorageFixture(t)

	_, err := storage.Overview(context.Background(), "missing")
	require.ErrorIs(t, err, ErrNotFound)
}
